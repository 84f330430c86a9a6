package services

import (
	"context"
	"time"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/domain/motion"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
)

// DragMode selects how the pointer travels between the drag endpoints.
type DragMode string

// Drag modes.
const (
	// DragDirect posts one drag event straight to the destination.
	DragDirect DragMode = "direct"

	// DragInterpolated emits drag events at ~60Hz over a caller-specified
	// duration.
	DragInterpolated DragMode = "interpolated"

	// DragHumanized traces the humanized trajectory as drag events.
	DragHumanized DragMode = "humanized"
)

// dragFrameInterval is the ~60Hz spacing of interpolated drag events.
const dragFrameInterval = 16670 * time.Microsecond

// DragOptions configures one drag.
type DragOptions struct {
	Button   ports.MouseButton
	Mode     DragMode
	Duration time.Duration
}

// Drag presses at the source, travels to the destination per the selected
// mode, and releases.
func (a *ActionService) Drag(
	ctx context.Context,
	from, to element.Point,
	opts DragOptions,
) error {
	if opts.Mode == "" {
		opts.Mode = DragDirect
	}

	fromX, fromY := float64(from.X), float64(from.Y)
	toX, toY := float64(to.X), float64(to.Y)

	if err := a.dispatcher.MoveMouse(fromX, fromY); err != nil {
		return err
	}

	if err := a.dispatcher.MouseDown(opts.Button, fromX, fromY); err != nil {
		return err
	}

	if err := a.sleep(ctx, a.params.DragHold); err != nil {
		return err
	}

	var travelErr error

	switch opts.Mode {
	case DragDirect:
		travelErr = a.dispatcher.MouseDrag(opts.Button, toX, toY)

	case DragInterpolated:
		travelErr = a.dragInterpolated(ctx, opts, from, to)

	case DragHumanized:
		start := motion.PointF{X: fromX, Y: fromY}
		end := motion.PointF{X: toX, Y: toY}

		for _, step := range a.motionGen.Path(start, end, 10) {
			if travelErr = a.sleep(ctx, step.Delay); travelErr != nil {
				break
			}

			if travelErr = a.dispatcher.MouseDrag(opts.Button, step.Point.X, step.Point.Y); travelErr != nil {
				break
			}
		}

	default:
		travelErr = derrors.Newf(derrors.CodeInvalidInput, "unknown drag mode %q", opts.Mode)
	}

	// Always release, even when the travel failed mid-way; a stuck button is
	// worse than a short drag.
	if err := a.dispatcher.MouseUp(opts.Button, toX, toY); err != nil && travelErr == nil {
		travelErr = err
	}

	return travelErr
}

// dragInterpolated emits linearly interpolated drag events at ~60Hz with
// wall-clock-anchored sleeps so timing drift does not accumulate.
func (a *ActionService) dragInterpolated(
	ctx context.Context,
	opts DragOptions,
	from, to element.Point,
) error {
	duration := opts.Duration
	if duration <= 0 {
		duration = 500 * time.Millisecond
	}

	frames := int(duration / dragFrameInterval)
	if frames < 1 {
		frames = 1
	}

	anchor := time.Now()

	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		x := float64(from.X) + (float64(to.X)-float64(from.X))*t
		y := float64(from.Y) + (float64(to.Y)-float64(from.Y))*t

		if err := a.dispatcher.MouseDrag(opts.Button, x, y); err != nil {
			return err
		}

		if wait := time.Until(anchor.Add(time.Duration(i) * dragFrameInterval)); wait > 0 {
			if err := a.sleep(ctx, wait); err != nil {
				return err
			}
		}
	}

	return nil
}
