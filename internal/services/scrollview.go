package services

import (
	"context"
	"time"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// Scroll-into-view methods, in order of preference.
const (
	MethodNone      = "none"
	MethodNative    = "AXScrollToVisible"
	MethodSynthetic = "synthetic"
	MethodFailed    = "failed"
)

const (
	// defaultScrollSettle lets the UI settle and the accessibility tree
	// update after each scroll event.
	defaultScrollSettle = 100 * time.Millisecond

	// defaultScrollMaxAttempts bounds the synthetic scroll loop.
	defaultScrollMaxAttempts = 8

	// defaultScrollHardTimeout is the wall-clock ceiling for the whole
	// operation.
	defaultScrollHardTimeout = 10 * time.Second

	// minScrollDelta is the per-axis delta below which another scroll makes
	// no meaningful progress.
	minScrollDelta = 5

	// viewportOvershootMargin is subtracted from the viewport extent when
	// capping a scroll delta, so one scroll cannot fly past the target.
	viewportOvershootMargin = 100

	// requerySizeTolerance is the per-dimension pixel slack when matching
	// the target back after a scroll.
	requerySizeTolerance = 5
)

// ScrollIntoViewResult reports how an element was brought on-screen.
type ScrollIntoViewResult struct {
	Success       bool          `json:"success"`
	Attempts      int           `json:"attempts"`
	FinalPosition element.Point `json:"final_position"`
	ScrolledBy    element.Point `json:"scrolled_by"`
	Method        string        `json:"method"`
}

// ScrollService makes a target element fully visible inside its scroll
// container using the least intrusive mechanism that works.
type ScrollService struct {
	walker     *Walker
	client     ports.AccessibilityClient
	analyzer   *VisibilityAnalyzer
	dispatcher ports.Dispatcher
	logger     *zap.Logger

	// SettleDelay, MaxAttempts and HardTimeout tune the synthetic loop.
	SettleDelay time.Duration
	MaxAttempts int
	HardTimeout time.Duration

	sleep sleeper
}

// NewScrollService creates the scroll-into-view service with default tuning.
func NewScrollService(
	walker *Walker,
	client ports.AccessibilityClient,
	analyzer *VisibilityAnalyzer,
	dispatcher ports.Dispatcher,
	logger *zap.Logger,
) *ScrollService {
	return &ScrollService{
		walker:      walker,
		client:      client,
		analyzer:    analyzer,
		dispatcher:  dispatcher,
		logger:      logger,
		SettleDelay: defaultScrollSettle,
		MaxAttempts: defaultScrollMaxAttempts,
		HardTimeout: defaultScrollHardTimeout,
		sleep:       sleepCtx,
	}
}

// ScrollIntoView brings the element fully on-screen. It returns the result,
// the freshest discovery of the target (re-queried after any scrolling), and
// the failure, if any.
func (s *ScrollService) ScrollIntoView(
	ctx context.Context,
	target *element.Element,
) (*ScrollIntoViewResult, *element.Element, error) {
	start := time.Now()

	current := target
	if current.Visibility == nil {
		s.analyzer.Annotate(current)
	}

	result := &ScrollIntoViewResult{FinalPosition: current.Position}

	if current.HasSize() && current.Visibility != nil &&
		current.Visibility.Reason == element.ReasonFullyVisible {
		result.Success = true
		result.Method = MethodNone

		return result, current, nil
	}

	initialPosition := current.Position

	// Prefer the native action when the element advertises it.
	if element.SupportsAction(current.Handle, element.ActionScrollToVisible) {
		if err := current.Handle.Perform(element.ActionScrollToVisible); err == nil {
			if sleepErr := s.sleep(ctx, s.SettleDelay); sleepErr != nil {
				result.Method = MethodFailed

				return result, current, sleepErr
			}

			result.Attempts = 1

			if updated := s.requery(current); updated != nil {
				s.analyzer.Annotate(updated)
				current = updated

				if current.Visibility != nil && current.Visibility.InViewport {
					result.Success = true
					result.Method = MethodNative
					result.FinalPosition = current.Position
					result.ScrolledBy = element.Point{
						X: initialPosition.X - current.Position.X,
						Y: initialPosition.Y - current.Position.Y,
					}

					return result, current, nil
				}
			}
		} else {
			s.logger.Debug("Native scroll-to-visible failed", zap.Error(err))
		}
	}

	return s.scrollSynthetic(ctx, current, result, start)
}

// scrollSynthetic iteratively posts wheel events at the container's center,
// re-querying the target after each settle until it lands in the viewport.
func (s *ScrollService) scrollSynthetic(
	ctx context.Context,
	current *element.Element,
	result *ScrollIntoViewResult,
	start time.Time,
) (*ScrollIntoViewResult, *element.Element, error) {
	if current.Handle == nil {
		result.Method = MethodFailed

		return result, current, derrors.New(
			derrors.CodeNoScrollContainer,
			"element has no live handle to locate a scroll container from",
		)
	}

	entry, _, _ := s.analyzer.findViewport(current.Handle, make(map[uint64]*containerEntry))
	if entry == nil {
		result.Method = MethodFailed

		return result, current, derrors.Newf(
			derrors.CodeNoScrollContainer,
			"no scrollable ancestor found for %q",
			current.Label(),
		)
	}

	viewport := entry.frame

	// Synthetic scrolls land wherever the pointer is; park it over the
	// container first.
	centerX := float64(viewport.Min.X) + float64(viewport.Dx())/2
	centerY := float64(viewport.Min.Y) + float64(viewport.Dy())/2

	if err := s.dispatcher.MoveMouse(centerX, centerY); err != nil {
		result.Method = MethodFailed

		return result, current, err
	}

	var scrolledX, scrolledY int

	for attempt := 1; attempt <= s.MaxAttempts; attempt++ {
		if elapsed := time.Since(start); elapsed > s.HardTimeout {
			result.Method = MethodFailed

			return result, current, derrors.Newf(
				derrors.CodeTimeout,
				"scroll-into-view exceeded its %s ceiling after %d attempts (%.1fs elapsed)",
				s.HardTimeout,
				result.Attempts,
				elapsed.Seconds(),
			)
		}

		if ctx.Err() != nil {
			result.Method = MethodFailed

			return result, current, derrors.Wrap(
				ctx.Err(),
				derrors.CodeTimeout,
				"scroll-into-view canceled",
			)
		}

		deltaX, deltaY := element.ScrollDeltaToCenter(current.Rect(), viewport)
		deltaX = capDelta(deltaX, viewport.Dx()-viewportOvershootMargin)
		deltaY = capDelta(deltaY, viewport.Dy()-viewportOvershootMargin)

		if absInt(deltaX) < minScrollDelta && absInt(deltaY) < minScrollDelta {
			break
		}

		result.Attempts = attempt

		// Natural-scrolling wheel: positive wheel-y moves content down, so
		// the emitted sign is the opposite of the desired content delta.
		if err := s.dispatcher.Scroll(-deltaX, -deltaY); err != nil {
			result.Method = MethodFailed

			return result, current, err
		}

		scrolledX += deltaX
		scrolledY += deltaY

		if sleepErr := s.sleep(ctx, s.SettleDelay); sleepErr != nil {
			result.Method = MethodFailed

			return result, current, sleepErr
		}

		updated := s.requery(current)
		if updated == nil {
			result.Method = MethodFailed

			return result, current, derrors.Newf(
				derrors.CodeScrollNoProgress,
				"element %q disappeared from the tree while scrolling",
				current.Label(),
			)
		}

		current = updated
		s.analyzer.Annotate(current)

		if current.Visibility != nil && current.Visibility.InViewport {
			result.Success = true
			result.Method = MethodSynthetic
			result.FinalPosition = current.Position
			result.ScrolledBy = element.Point{X: scrolledX, Y: scrolledY}

			return result, current, nil
		}
	}

	result.Method = MethodFailed
	result.ScrolledBy = element.Point{X: scrolledX, Y: scrolledY}
	result.FinalPosition = current.Position

	if result.Attempts >= s.MaxAttempts {
		return result, current, derrors.Newf(
			derrors.CodeScrollMaxAttempts,
			"target still off-screen after %d scroll attempts",
			result.Attempts,
		)
	}

	return result, current, derrors.Newf(
		derrors.CodeScrollNoProgress,
		"remaining scroll delta below %dpx on both axes but %q is still not visible",
		minScrollDelta,
		current.Label(),
	)
}

// requery re-finds the target after a scroll by its identifying attributes,
// first with the full tuple, then tolerating a changed sibling index (some
// web views reorder focusable children when scrolled).
func (s *ScrollService) requery(previous *element.Element) *element.Element {
	if previous.Handle == nil {
		return nil
	}

	root := s.client.ApplicationElement(previous.Handle.PID())
	if root == nil {
		return nil
	}

	primary := element.Query{
		Text:         previous.Label(),
		Role:         previous.Role,
		Identifier:   previous.Identifier,
		SiblingIndex: previous.SiblingIndex,
		ParentRole:   previous.ParentRole,
	}

	if match := s.findWithSize(root, primary, previous.Size); match != nil {
		return match
	}

	relaxed := primary
	relaxed.SiblingIndex = nil

	return s.findWithSize(root, relaxed, previous.Size)
}

func (s *ScrollService) findWithSize(
	root element.UIElement,
	query element.Query,
	size element.Size,
) *element.Element {
	var found *element.Element

	s.walker.Traverse(root, 0, func(e *element.Element) bool {
		if !query.Matches(e) {
			return true
		}

		if !withinSizeTolerance(e.Size, size) {
			return true
		}

		found = e

		return false
	})

	return found
}

func withinSizeTolerance(a, b element.Size) bool {
	return absInt(a.Width-b.Width) <= requerySizeTolerance &&
		absInt(a.Height-b.Height) <= requerySizeTolerance
}

// capDelta clamps a scroll delta to the viewport extent minus the overshoot
// margin.
func capDelta(delta, limit int) int {
	if limit < 1 {
		limit = 1
	}

	if delta > limit {
		return limit
	}

	if delta < -limit {
		return -limit
	}

	return delta
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
