package services

import (
	"context"
	"image"
	"math/rand"
	"sync"
	"time"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/domain/motion"
	"github.com/saucesteals/silk/internal/ports"
	"github.com/saucesteals/silk/internal/ports/mocks"
	"go.uber.org/zap"
)

// fixture wires the whole engine over mocks. Sleeps are recorded, not
// slept, so multi-step loops run instantly.
type fixture struct {
	client     *mocks.MockAccessibilityClient
	workspace  *mocks.MockWorkspace
	screen     *mocks.MockScreen
	dispatcher *mocks.RecordingDispatcher
	pasteboard *mocks.MockPasteboard

	walker   *Walker
	analyzer *VisibilityAnalyzer
	searcher *Searcher
	scroller *ScrollService
	actions  *ActionService

	sleepMu sync.Mutex
	sleeps  []time.Duration
}

func newFixture() *fixture {
	log := zap.NewNop()

	f := &fixture{
		client:     &mocks.MockAccessibilityClient{},
		workspace:  &mocks.MockWorkspace{},
		screen:     &mocks.MockScreen{Bounds: image.Rect(0, 0, 1440, 900), HasDisplay: true},
		dispatcher: &mocks.RecordingDispatcher{},
		pasteboard: &mocks.MockPasteboard{},
	}

	recordSleep := func(_ context.Context, d time.Duration) error {
		f.sleepMu.Lock()
		f.sleeps = append(f.sleeps, d)
		f.sleepMu.Unlock()

		return nil
	}

	f.walker = NewWalker(f.client, f.workspace, log)
	f.analyzer = NewVisibilityAnalyzer(f.screen, log)
	f.searcher = NewSearcher(f.walker, f.client, f.analyzer, log)

	f.scroller = NewScrollService(f.walker, f.client, f.analyzer, f.dispatcher, log)
	f.scroller.sleep = recordSleep

	f.actions = NewActionService(
		f.client,
		f.workspace,
		f.screen,
		f.dispatcher,
		f.analyzer,
		f.scroller,
		f.pasteboard,
		motion.NewGenerator(motion.DefaultParams(), rand.New(rand.NewSource(1))),
		DefaultActionParams(),
		rand.New(rand.NewSource(1)),
		log,
	)
	f.actions.sleep = recordSleep

	return f
}

// installApp registers a fake application root under the given pid and name
// so both the workspace listing and the accessibility client resolve it.
func (f *fixture) installApp(pid int, name string, root *mocks.FakeElement) {
	setPIDs(root, pid)

	f.workspace.Apps = append(f.workspace.Apps, ports.RunningApplication{
		PID:     pid,
		Name:    name,
		Regular: true,
	})

	previous := f.client.ApplicationElementFunc
	f.client.ApplicationElementFunc = func(requested int) element.UIElement {
		if requested == pid {
			return root
		}

		if previous != nil {
			return previous(requested)
		}

		return nil
	}
}

func setPIDs(node *mocks.FakeElement, pid int) {
	node.ProcessID = pid
	for _, child := range node.Kids {
		setPIDs(child, pid)
	}
}

// standardApp builds app -> window -> {toolbar(buttons), scroll area
// (scrollbar + content group with fields)} covering the common shapes.
func standardApp() (app, window, toolbar, saveButton, scrollArea, textField *mocks.FakeElement) {
	saveButton = mocks.NewFakeElement("AXButton").
		WithFrame(100, 50, 80, 24).
		WithTitle("Save Document").
		WithActions(element.ActionPress)

	cancelButton := mocks.NewFakeElement("AXButton").
		WithFrame(200, 50, 80, 24).
		WithTitle("Cancel").
		WithActions(element.ActionPress)

	toolbar = mocks.NewFakeElement("AXToolbar").
		WithFrame(0, 40, 1200, 40).
		WithChildren(saveButton, cancelButton)

	textField = mocks.NewFakeElement("AXTextField").
		WithFrame(100, 200, 300, 30).
		WithAttr(element.AttrIdentifier, "search-field")

	scrollBar := mocks.NewFakeElement("AXScrollBar").
		WithAttr(element.AttrOrientation, "AXVerticalOrientation")
	scrollBar.Numbers = map[string]float64{element.AttrValue: 0.5}

	content := mocks.NewFakeElement("AXGroup").
		WithFrame(0, 100, 1200, 2800).
		WithChildren(textField)

	scrollArea = mocks.NewFakeElement("AXScrollArea").
		WithFrame(0, 100, 1200, 800).
		WithChildren(scrollBar, content)

	window = mocks.NewFakeElement("AXWindow").
		WithFrame(0, 0, 1200, 900).
		WithTitle("Untitled").
		WithChildren(toolbar, scrollArea)

	app = mocks.NewFakeElement("AXApplication").
		WithTitle("SomeApp").
		WithChildren(window)

	return app, window, toolbar, saveButton, scrollArea, textField
}

// findOne walks the app root and returns the first element matching the
// query, as the engine would discover it.
func (f *fixture) findOne(root *mocks.FakeElement, query element.Query) *element.Element {
	var found *element.Element

	f.walker.Traverse(root, 0, func(e *element.Element) bool {
		if query.Matches(e) {
			found = e

			return false
		}

		return true
	})

	return found
}
