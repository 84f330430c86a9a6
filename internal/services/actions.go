package services

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/domain/motion"
	"github.com/saucesteals/silk/internal/domain/trace"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// ActionParams tunes the action layer's timing. All delays exist to produce
// plausible human pacing and to let the UI settle between steps.
type ActionParams struct {
	ActivationSettle time.Duration
	DwellMin         time.Duration
	DwellMax         time.Duration
	FocusSettle      time.Duration
	ValueVerify      time.Duration
	KeyHoldMin       time.Duration
	KeyHoldMax       time.Duration
	KeyDelayMin      time.Duration
	KeyDelayMax      time.Duration
	DragHold         time.Duration
	HumanizeMoves    bool
}

// DefaultActionParams returns the tuned defaults.
func DefaultActionParams() ActionParams {
	return ActionParams{
		ActivationSettle: 50 * time.Millisecond,
		DwellMin:         50 * time.Millisecond,
		DwellMax:         150 * time.Millisecond,
		FocusSettle:      200 * time.Millisecond,
		ValueVerify:      50 * time.Millisecond,
		KeyHoldMin:       20 * time.Millisecond,
		KeyHoldMax:       60 * time.Millisecond,
		KeyDelayMin:      30 * time.Millisecond,
		KeyDelayMax:      80 * time.Millisecond,
		DragHold:         50 * time.Millisecond,
		HumanizeMoves:    true,
	}
}

// ActionService composes the walker, analyzer, scroll service, movement
// generator and dispatcher into the user-visible element actions.
type ActionService struct {
	client     ports.AccessibilityClient
	workspace  ports.Workspace
	screen     ports.Screen
	dispatcher ports.Dispatcher
	analyzer   *VisibilityAnalyzer
	scroller   *ScrollService
	pasteboard ports.Pasteboard
	motionGen  *motion.Generator
	logger     *zap.Logger

	params ActionParams
	rng    *rand.Rand
	sleep  sleeper
}

// NewActionService wires the action layer. A nil rng falls back to a
// time-seeded source; tests inject a seeded one.
func NewActionService(
	client ports.AccessibilityClient,
	workspace ports.Workspace,
	screen ports.Screen,
	dispatcher ports.Dispatcher,
	analyzer *VisibilityAnalyzer,
	scroller *ScrollService,
	pasteboard ports.Pasteboard,
	motionGen *motion.Generator,
	params ActionParams,
	rng *rand.Rand,
	logger *zap.Logger,
) *ActionService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &ActionService{
		client:     client,
		workspace:  workspace,
		screen:     screen,
		dispatcher: dispatcher,
		analyzer:   analyzer,
		scroller:   scroller,
		pasteboard: pasteboard,
		motionGen:  motionGen,
		logger:     logger,
		params:     params,
		rng:        rng,
		sleep:      sleepCtx,
	}
}

// ClickOptions configures one click.
type ClickOptions struct {
	Button ports.MouseButton

	// Warp skips the humanized trajectory and jumps the pointer directly.
	Warp bool

	// NoAutoScroll disables the scroll-into-view pass for off-screen
	// targets.
	NoAutoScroll bool
}

// Click brings the element on-screen if needed, moves the pointer to its
// center, and presses with a realistic dwell. Returns the freshest discovery
// of the element (auto-scroll re-queries it).
func (a *ActionService) Click(
	ctx context.Context,
	target *element.Element,
	opts ClickOptions,
) (*element.Element, error) {
	ctx, traceID := trace.Ensure(ctx)
	log := a.logger.With(zap.String("trace_id", traceID.String()))

	current, err := a.ensureOnScreen(ctx, target, opts.NoAutoScroll, log)
	if err != nil {
		return target, err
	}

	if !current.HasSize() {
		return current, derrors.Newf(
			derrors.CodeElementNotVisible,
			"element %q has zero size",
			current.Label(),
		)
	}

	if err := a.activateOwner(ctx, current); err != nil {
		return current, err
	}

	center := current.Center()

	if err := a.moveTo(ctx, center, float64(current.Size.Width), opts.Warp); err != nil {
		return current, err
	}

	if err := a.pressAt(ctx, opts.Button, center); err != nil {
		return current, err
	}

	log.Debug("Clicked element",
		zap.String("role", current.Role),
		zap.String("label", current.Label()),
		zap.Int("x", center.X),
		zap.Int("y", center.Y))

	return current, nil
}

// Read returns the first present of the element's live value, title and
// description, falling back to the label captured at discovery time.
func (a *ActionService) Read(_ context.Context, target *element.Element) string {
	if target.Handle != nil {
		for _, name := range []string{
			element.AttrValue,
			element.AttrTitle,
			element.AttrDescription,
		} {
			if value, ok := target.Handle.StringAttribute(name); ok && value != "" {
				return value
			}
		}
	}

	return target.Label()
}

// Capture hands the element's frame to the screen-capture collaborator and
// returns the written path.
func (a *ActionService) Capture(
	_ context.Context,
	target *element.Element,
	outPath string,
) (string, error) {
	if !target.HasSize() {
		return "", derrors.Newf(
			derrors.CodeElementNotVisible,
			"cannot capture zero-size element %q",
			target.Label(),
		)
	}

	if !a.screen.RecordingGranted() {
		return "", derrors.PermissionDenied("screen-recording")
	}

	if err := a.screen.CaptureRegion(target.Rect(), outPath); err != nil {
		return "", derrors.Wrapf(
			err,
			derrors.CodeCaptureFailed,
			"failed to capture %q",
			target.Label(),
		)
	}

	return outPath, nil
}

// PerformAction passes a named accessibility action through to the element.
// Short names are canonicalized ("press" -> "AXPress").
func (a *ActionService) PerformAction(
	_ context.Context,
	target *element.Element,
	name string,
) error {
	if target.Handle == nil {
		return derrors.New(derrors.CodeActionFailed, "element has no live handle")
	}

	action := name
	if !strings.HasPrefix(action, "AX") {
		action = element.NormalizeRole(action)
	}

	if err := target.Handle.Perform(action); err != nil {
		return derrors.Wrapf(
			err,
			derrors.CodeActionFailed,
			"action %s rejected for %q",
			action,
			target.Label(),
		)
	}

	return nil
}

// ensureOnScreen applies the auto-scroll policy: zero-size or off-viewport
// targets are scrolled into view and re-queried before acting.
func (a *ActionService) ensureOnScreen(
	ctx context.Context,
	target *element.Element,
	noAutoScroll bool,
	log *zap.Logger,
) (*element.Element, error) {
	if target.Visibility == nil {
		a.analyzer.Annotate(target)
	}

	offscreen := !target.HasSize() ||
		(target.Visibility != nil && !target.Visibility.InViewport)

	if !offscreen || noAutoScroll || a.scroller == nil {
		return target, nil
	}

	result, updated, err := a.scroller.ScrollIntoView(ctx, target)
	if err != nil {
		return target, err
	}

	log.Debug("Auto-scrolled target into view",
		zap.String("method", result.Method),
		zap.Int("attempts", result.Attempts))

	return updated, nil
}

// activateOwner brings the element's application frontmost and waits a brief
// settle.
func (a *ActionService) activateOwner(ctx context.Context, target *element.Element) error {
	if target.Handle == nil || a.workspace == nil {
		return nil
	}

	pid := target.Handle.PID()
	if pid <= 0 {
		return nil
	}

	if err := a.workspace.Activate(pid); err != nil {
		return derrors.Wrapf(
			err,
			derrors.CodeActionFailed,
			"failed to activate application (pid %d)",
			pid,
		)
	}

	return a.sleep(ctx, a.params.ActivationSettle)
}

// moveTo drives the pointer to the point, either through a humanized
// trajectory or a direct warp.
func (a *ActionService) moveTo(
	ctx context.Context,
	point element.Point,
	targetWidth float64,
	warp bool,
) error {
	if warp || !a.params.HumanizeMoves || a.motionGen == nil {
		return a.dispatcher.MoveMouse(float64(point.X), float64(point.Y))
	}

	cursor := a.screen.CursorPosition()
	start := motion.PointF{X: float64(cursor.X), Y: float64(cursor.Y)}
	end := motion.PointF{X: float64(point.X), Y: float64(point.Y)}

	for _, step := range a.motionGen.Path(start, end, targetWidth) {
		if err := a.sleep(ctx, step.Delay); err != nil {
			return err
		}

		if err := a.dispatcher.MoveMouse(step.Point.X, step.Point.Y); err != nil {
			return err
		}
	}

	return nil
}

// pressAt posts button-down, dwells like a human click, and posts button-up.
func (a *ActionService) pressAt(
	ctx context.Context,
	button ports.MouseButton,
	point element.Point,
) error {
	x, y := float64(point.X), float64(point.Y)

	if err := a.dispatcher.MouseDown(button, x, y); err != nil {
		return err
	}

	if err := a.sleep(ctx, a.randDuration(a.params.DwellMin, a.params.DwellMax)); err != nil {
		return err
	}

	return a.dispatcher.MouseUp(button, x, y)
}

// randDuration picks uniformly in [min, max].
func (a *ActionService) randDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}

	return min + time.Duration(a.rng.Int63n(int64(max-min)+1))
}
