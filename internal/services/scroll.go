package services

import (
	"context"
	"image"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"go.uber.org/zap"
)

// pageFraction is the share of the viewport extent one "page" scrolls,
// leaving a strip of context visible.
const pageFraction = 0.9

// ScrollHereOptions describes a positional scroll: where to point and how
// far to move.
type ScrollHereOptions struct {
	Direction element.ScrollDirection

	// Pages scrolls a fraction of the resolved viewport extent per page.
	Pages float64

	// Pixels overrides Pages with an explicit distance.
	Pixels int

	// Target is the literal coordinate to scroll at. When nil, TargetQuery
	// resolves the point instead.
	Target *element.Point

	// TargetQuery names an element whose scrollable ancestor's center
	// becomes the scroll point.
	TargetQuery *element.Query
}

// ScrollHereResult reports what was posted.
type ScrollHereResult struct {
	Direction element.ScrollDirection `json:"direction"`
	Amount    int                     `json:"amount"`
	Point     element.Point           `json:"point"`
}

// ScrollHere moves the pointer to the resolved point and posts one scroll
// event of the computed magnitude.
func (a *ActionService) ScrollHere(
	ctx context.Context,
	searcher *Searcher,
	opts ScrollHereOptions,
) (*ScrollHereResult, error) {
	if opts.Direction == "" {
		return nil, derrors.New(derrors.CodeInvalidInput, "scroll direction is required")
	}

	point, viewport, err := a.resolveScrollPoint(ctx, searcher, opts)
	if err != nil {
		return nil, err
	}

	amount := opts.Pixels
	if amount <= 0 {
		pages := opts.Pages
		if pages <= 0 {
			pages = 1
		}

		extent := viewport.Dy()
		if opts.Direction == element.ScrollLeft || opts.Direction == element.ScrollRight {
			extent = viewport.Dx()
		}

		amount = int(pages * pageFraction * float64(extent))
	}

	if amount <= 0 {
		return nil, derrors.New(derrors.CodeInvalidInput, "scroll amount resolved to zero")
	}

	if err := a.dispatcher.MoveMouse(float64(point.X), float64(point.Y)); err != nil {
		return nil, err
	}

	var wheelX, wheelY int

	// Natural-scrolling wheel sign: advancing the view down means content
	// moves up, a negative wheel-y.
	switch opts.Direction {
	case element.ScrollDown:
		wheelY = -amount
	case element.ScrollUp:
		wheelY = amount
	case element.ScrollRight:
		wheelX = -amount
	case element.ScrollLeft:
		wheelX = amount
	default:
		return nil, derrors.Newf(derrors.CodeInvalidInput, "unknown scroll direction %q", opts.Direction)
	}

	if err := a.dispatcher.Scroll(wheelX, wheelY); err != nil {
		return nil, err
	}

	a.logger.Debug("Scrolled",
		zap.String("direction", string(opts.Direction)),
		zap.Int("amount", amount),
		zap.Int("x", point.X),
		zap.Int("y", point.Y))

	return &ScrollHereResult{Direction: opts.Direction, Amount: amount, Point: point}, nil
}

// ScrollToElement brings a queried element into view via the scroll service.
func (a *ActionService) ScrollToElement(
	ctx context.Context,
	target *element.Element,
) (*ScrollIntoViewResult, *element.Element, error) {
	return a.scroller.ScrollIntoView(ctx, target)
}

// resolveScrollPoint turns the options into a concrete pointer position and
// the viewport whose extent sizes a "page".
func (a *ActionService) resolveScrollPoint(
	ctx context.Context,
	searcher *Searcher,
	opts ScrollHereOptions,
) (element.Point, image.Rectangle, error) {
	if opts.Target != nil {
		point := *opts.Target

		return point, a.viewportAt(point), nil
	}

	if opts.TargetQuery == nil {
		return element.Point{}, image.Rectangle{}, derrors.New(
			derrors.CodeInvalidInput,
			"scroll needs a target point or a target query",
		)
	}

	result, err := searcher.Find(ctx, *opts.TargetQuery)
	if err != nil {
		return element.Point{}, image.Rectangle{}, err
	}

	if len(result.Elements) == 0 {
		return element.Point{}, image.Rectangle{}, derrors.Newf(
			derrors.CodeElementNotFound,
			"no element matched the scroll target query",
		)
	}

	target := result.Elements[0]

	if target.ScrollContainer != nil {
		frame := target.ScrollContainer.VisibleFrame.Rect()
		center := element.Point{
			X: frame.Min.X + frame.Dx()/2,
			Y: frame.Min.Y + frame.Dy()/2,
		}

		return center, frame, nil
	}

	// No scrollable ancestor: scroll at the element itself against its
	// window or display viewport.
	center := target.Center()

	return center, a.viewportAt(center), nil
}

// viewportAt resolves the effective viewport at a screen point: the scroll
// container under it, else the window, else the display owning the point.
func (a *ActionService) viewportAt(point element.Point) image.Rectangle {
	if handle := a.client.ElementAtPosition(point.X, point.Y); handle != nil {
		entry, windowFrame, hasWindow := a.analyzer.findViewport(
			handle,
			make(map[uint64]*containerEntry),
		)

		if entry != nil {
			return entry.frame
		}

		if hasWindow {
			return windowFrame
		}
	}

	if bounds, ok := a.screen.DisplayBoundsForPoint(point.X, point.Y); ok {
		return bounds
	}

	bounds, _ := a.screen.MainDisplayBounds()

	return bounds
}
