package services

import (
	"image"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

const (
	// maxAncestorSteps bounds the parent-chain walk.
	maxAncestorSteps = 50

	// Scroll bar value fractions beyond these bounds mean the bar is pinned
	// at an end and cannot move further that way.
	scrollBarMinFraction = 0.01
	scrollBarMaxFraction = 0.99
)

// Scroll bar orientation attribute values.
const (
	orientationVertical   = "AXVerticalOrientation"
	orientationHorizontal = "AXHorizontalOrientation"
)

// containerEntry memoizes one scroll container: the handle, its visible
// frame, and its introspected scroll-bar info. Keyed by the OS identity hash
// so annotating many siblings walks each container only once.
type containerEntry struct {
	handle element.UIElement
	frame  image.Rectangle
	info   *element.ScrollContainer
}

// VisibilityAnalyzer determines whether elements are rendered inside their
// effective viewport and how far they would need to scroll.
type VisibilityAnalyzer struct {
	screen ports.Screen
	logger *zap.Logger
}

// NewVisibilityAnalyzer creates the analyzer.
func NewVisibilityAnalyzer(screen ports.Screen, logger *zap.Logger) *VisibilityAnalyzer {
	return &VisibilityAnalyzer{screen: screen, logger: logger}
}

// Annotate computes the visibility and scroll-container annotations for one
// element.
func (a *VisibilityAnalyzer) Annotate(e *element.Element) {
	a.annotate(e, make(map[uint64]*containerEntry))
}

// AnnotateAll annotates a batch, memoizing container lookups by handle
// identity so sibling elements share the parent-chain walk, frame read and
// scroll-bar introspection.
func (a *VisibilityAnalyzer) AnnotateAll(elements []*element.Element) {
	memo := make(map[uint64]*containerEntry)

	for _, e := range elements {
		a.annotate(e, memo)
	}
}

func (a *VisibilityAnalyzer) annotate(e *element.Element, memo map[uint64]*containerEntry) {
	if !e.HasSize() {
		e.Visibility = &element.Visibility{Reason: element.ReasonZeroSize}

		return
	}

	if e.Handle == nil {
		e.Visibility = &element.Visibility{Reason: element.ReasonUnknown}

		return
	}

	entry, windowFrame, hasWindow := a.findViewport(e.Handle, memo)

	var viewport image.Rectangle
	fromContainer := entry != nil

	switch {
	case fromContainer:
		viewport = entry.frame
	case hasWindow:
		viewport = windowFrame
	default:
		bounds, ok := a.screen.MainDisplayBounds()
		if !ok {
			e.Visibility = &element.Visibility{Reason: element.ReasonUnknown}

			return
		}

		viewport = bounds
	}

	visibility := element.ComputeVisibility(e.Rect(), viewport)

	// Without a scrollable ancestor no amount of scrolling helps; report the
	// window/display miss instead of a scroll direction.
	if !fromContainer && !visibility.InViewport {
		if hasWindow {
			visibility.Reason = element.ReasonOutsideWindow
		} else {
			visibility.Reason = element.ReasonNoScrollContainer
		}

		visibility.RequiresScroll = nil
	}

	e.Visibility = &visibility

	if fromContainer {
		e.ScrollContainer = entry.info
	}
}

// findViewport walks the parent chain looking for the nearest scrollable
// ancestor, remembering the enclosing window frame as the fallback viewport.
// The walk stops at the application root or after maxAncestorSteps.
func (a *VisibilityAnalyzer) findViewport(
	handle element.UIElement,
	memo map[uint64]*containerEntry,
) (entry *containerEntry, windowFrame image.Rectangle, hasWindow bool) {
	current := handle.Parent()

	for step := 0; current != nil && step < maxAncestorSteps; step++ {
		if cached, ok := memo[current.Hash()]; ok {
			return cached, windowFrame, hasWindow
		}

		role, err := current.Role()
		if err != nil {
			break
		}

		if role == element.RoleApplication {
			break
		}

		if role == element.RoleWindow && !hasWindow {
			if frame, ok := frameOf(current); ok {
				windowFrame = frame
				hasWindow = true
			}
		}

		if element.ScrollableRoles[role] {
			container := current

			// A web area's scroll bars live on its scroll-area parent;
			// synthetic scrolls must target that host.
			if role == element.RoleWebArea {
				if parent := current.Parent(); parent != nil {
					if parentRole, roleErr := parent.Role(); roleErr == nil &&
						parentRole == element.RoleScrollArea {
						container = parent
					}
				}
			}

			built := a.buildContainerEntry(container)
			if built != nil {
				memo[container.Hash()] = built
				memo[current.Hash()] = built

				return built, windowFrame, hasWindow
			}
		}

		current = current.Parent()
	}

	return nil, windowFrame, hasWindow
}

// buildContainerEntry reads a container's frame and walks its direct
// children once for scroll bars.
func (a *VisibilityAnalyzer) buildContainerEntry(container element.UIElement) *containerEntry {
	frame, ok := frameOf(container)
	if !ok {
		a.logger.Debug("Scroll container has no readable frame")

		return nil
	}

	role, err := container.Role()
	if err != nil {
		return nil
	}

	info := &element.ScrollContainer{
		Role:         role,
		VisibleFrame: element.FrameFromRect(frame),
	}

	for _, child := range container.Children() {
		childRole, roleErr := child.Role()
		if roleErr != nil || childRole != element.RoleScrollBar {
			continue
		}

		orientation, _ := child.StringAttribute(element.AttrOrientation)
		fraction, hasValue := child.NumberAttribute(element.AttrValue)

		switch orientation {
		case orientationHorizontal:
			if hasValue {
				info.CanScrollLeft = fraction > scrollBarMinFraction
				info.CanScrollRight = fraction < scrollBarMaxFraction
			} else {
				// A bar with no value is presumed movable both ways.
				info.CanScrollLeft = true
				info.CanScrollRight = true
			}
		default:
			// Vertical orientation, or a bar that exposes none.
			if hasValue {
				info.CanScrollUp = fraction > scrollBarMinFraction
				info.CanScrollDown = fraction < scrollBarMaxFraction
			} else {
				info.CanScrollUp = true
				info.CanScrollDown = true
			}
		}
	}

	return &containerEntry{handle: container, frame: frame, info: info}
}

// frameOf reads a handle's bounding rectangle. False when either geometry
// attribute is unreadable or the size is degenerate.
func frameOf(handle element.UIElement) (image.Rectangle, bool) {
	position, okPosition := handle.PointAttribute(element.AttrPosition)
	size, okSize := handle.SizeAttribute(element.AttrSize)

	if !okPosition || !okSize || size.Width <= 0 || size.Height <= 0 {
		return image.Rectangle{}, false
	}

	return image.Rect(
		position.X,
		position.Y,
		position.X+size.Width,
		position.Y+size.Height,
	), true
}
