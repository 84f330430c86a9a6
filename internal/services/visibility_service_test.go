package services

import (
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/ports/mocks"
)

func TestAnnotateInsideScrollContainer(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()

	field := f.findOne(app, element.Query{Identifier: "search-field"})
	if field == nil {
		t.Fatal("fixture should contain the text field")
	}

	f.analyzer.Annotate(field)

	if field.Visibility == nil || !field.Visibility.InViewport {
		t.Fatalf("field should be fully visible, got %+v", field.Visibility)
	}

	if field.Visibility.Reason != element.ReasonFullyVisible {
		t.Errorf("Reason = %q", field.Visibility.Reason)
	}

	container := field.ScrollContainer
	if container == nil {
		t.Fatal("field should carry its scroll container")
	}

	if container.Role != element.RoleScrollArea {
		t.Errorf("container role = %q, expected AXScrollArea", container.Role)
	}

	if container.VisibleFrame != (element.Frame{X: 0, Y: 100, Width: 1200, Height: 800}) {
		t.Errorf("VisibleFrame = %+v", container.VisibleFrame)
	}

	// The vertical bar sits at 0.5: both directions possible.
	if !container.CanScrollUp || !container.CanScrollDown {
		t.Errorf("mid-scroll bar should allow both directions, got %+v", container)
	}
}

func TestAnnotateScrollBarPinnedAtTop(t *testing.T) {
	f := newFixture()
	app, _, _, _, scrollArea, _ := standardApp()

	scrollArea.Kids[0].Numbers[element.AttrValue] = 0.0

	field := f.findOne(app, element.Query{Identifier: "search-field"})
	f.analyzer.Annotate(field)

	container := field.ScrollContainer
	if container == nil {
		t.Fatal("missing scroll container")
	}

	if container.CanScrollUp {
		t.Error("a bar pinned at the top cannot scroll further up")
	}

	if !container.CanScrollDown {
		t.Error("a bar pinned at the top can still scroll down")
	}
}

func TestAnnotateScrollBarWithoutValue(t *testing.T) {
	f := newFixture()
	app, _, _, _, scrollArea, _ := standardApp()

	delete(scrollArea.Kids[0].Numbers, element.AttrValue)

	field := f.findOne(app, element.Query{Identifier: "search-field"})
	f.analyzer.Annotate(field)

	container := field.ScrollContainer
	if container == nil {
		t.Fatal("missing scroll container")
	}

	// No value exposed: both directions presumed possible.
	if !container.CanScrollUp || !container.CanScrollDown {
		t.Errorf("valueless bar should presume both directions, got %+v", container)
	}
}

func TestAnnotateOffscreenInContainer(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, textField := standardApp()

	textField.Pos = &element.Point{X: 800, Y: 2400}
	textField.Dim = &element.Size{Width: 40, Height: 20}

	field := f.findOne(app, element.Query{Identifier: "search-field"})
	f.analyzer.Annotate(field)

	vis := field.Visibility
	if vis == nil || vis.InViewport {
		t.Fatalf("element far below the container should be offscreen, got %+v", vis)
	}

	if vis.Reason != element.ReasonBelowViewport {
		t.Errorf("Reason = %q, expected below_viewport", vis.Reason)
	}

	if vis.RequiresScroll == nil || vis.RequiresScroll.Direction != element.ScrollDown {
		t.Fatalf("RequiresScroll = %+v", vis.RequiresScroll)
	}

	if vis.RequiresScroll.EstimatedPixels != 1910 {
		t.Errorf("EstimatedPixels = %d, expected 1910", vis.RequiresScroll.EstimatedPixels)
	}
}

func TestAnnotateWindowFallback(t *testing.T) {
	f := newFixture()

	// A button straight under the window: no scrollable ancestor.
	button := mocks.NewFakeElement("AXButton").
		WithFrame(100, 50, 80, 24).
		WithTitle("OK")

	window := mocks.NewFakeElement("AXWindow").
		WithFrame(0, 0, 1200, 900).
		WithChildren(button)

	app := mocks.NewFakeElement("AXApplication").WithChildren(window)

	elem := f.findOne(app, element.Query{Text: "OK"})
	f.analyzer.Annotate(elem)

	if elem.Visibility == nil || !elem.Visibility.InViewport {
		t.Fatalf("button inside the window should be visible, got %+v", elem.Visibility)
	}

	if elem.ScrollContainer != nil {
		t.Error("window fallback should not fabricate a scroll container")
	}
}

func TestAnnotateOutsideWindow(t *testing.T) {
	f := newFixture()

	button := mocks.NewFakeElement("AXButton").
		WithFrame(5000, 5000, 80, 24).
		WithTitle("OK")

	window := mocks.NewFakeElement("AXWindow").
		WithFrame(0, 0, 1200, 900).
		WithChildren(button)

	app := mocks.NewFakeElement("AXApplication").WithChildren(window)

	elem := f.findOne(app, element.Query{Text: "OK"})
	f.analyzer.Annotate(elem)

	vis := elem.Visibility
	if vis == nil {
		t.Fatal("missing visibility")
	}

	if vis.Reason != element.ReasonOutsideWindow {
		t.Errorf("Reason = %q, expected outside_window", vis.Reason)
	}

	if vis.RequiresScroll != nil {
		t.Error("no scrollable ancestor: scrolling cannot help")
	}
}

func TestAnnotateZeroSize(t *testing.T) {
	f := newFixture()

	elem := &element.Element{Role: "AXButton"}
	f.analyzer.Annotate(elem)

	if elem.Visibility == nil || elem.Visibility.Reason != element.ReasonZeroSize {
		t.Errorf("Visibility = %+v, expected zero_size", elem.Visibility)
	}
}

func TestAnnotateWebAreaPrefersScrollAreaParent(t *testing.T) {
	f := newFixture()

	link := mocks.NewFakeElement("AXLink").
		WithFrame(100, 200, 120, 20).
		WithTitle("Docs")

	webArea := mocks.NewFakeElement("AXWebArea").
		WithFrame(0, 100, 1200, 3000).
		WithChildren(link)

	scrollArea := mocks.NewFakeElement("AXScrollArea").
		WithFrame(0, 100, 1200, 800).
		WithChildren(webArea)

	window := mocks.NewFakeElement("AXWindow").
		WithFrame(0, 0, 1200, 900).
		WithChildren(scrollArea)

	app := mocks.NewFakeElement("AXApplication").WithChildren(window)

	elem := f.findOne(app, element.Query{Text: "Docs"})
	f.analyzer.Annotate(elem)

	if elem.ScrollContainer == nil {
		t.Fatal("missing scroll container")
	}

	// The scroll bars live on the scroll area hosting the web area.
	if elem.ScrollContainer.Role != element.RoleScrollArea {
		t.Errorf("container role = %q, expected the scroll-area host", elem.ScrollContainer.Role)
	}

	if elem.ScrollContainer.VisibleFrame.Height != 800 {
		t.Errorf("viewport height = %d, expected the scroll area's 800",
			elem.ScrollContainer.VisibleFrame.Height)
	}
}

func TestAnnotateAllMemoizesContainers(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()

	first := f.findOne(app, element.Query{Identifier: "search-field"})

	second := mocks.NewFakeElement("AXTextField").
		WithFrame(100, 260, 300, 30).
		WithAttr(element.AttrIdentifier, "second-field")
	contentGroup := first.Handle.(*mocks.FakeElement).ParentElem
	contentGroup.WithChildren(second)

	elems := []*element.Element{
		f.findOne(app, element.Query{Identifier: "search-field"}),
		f.findOne(app, element.Query{Identifier: "second-field"}),
	}

	f.analyzer.AnnotateAll(elems)

	if elems[0].ScrollContainer == nil || elems[1].ScrollContainer == nil {
		t.Fatal("both siblings should carry a container")
	}

	// Memoized by container identity: the same info value is shared.
	if elems[0].ScrollContainer != elems[1].ScrollContainer {
		t.Error("batched annotation should share one container entry across siblings")
	}
}

func TestAnnotateNoDisplay(t *testing.T) {
	f := newFixture()
	f.screen.HasDisplay = false

	// No window ancestor, no container, no display.
	orphan := mocks.NewFakeElement("AXButton").WithFrame(10, 10, 20, 20)

	elem := f.findOne(orphan, element.Query{Role: "Button"})
	f.analyzer.Annotate(elem)

	if elem.Visibility == nil || elem.Visibility.Reason != element.ReasonUnknown {
		t.Errorf("Visibility = %+v, expected unknown without any viewport", elem.Visibility)
	}
}
