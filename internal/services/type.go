package services

import (
	"context"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/domain/keymap"
	"github.com/saucesteals/silk/internal/domain/trace"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// TypeOptions configures one typing operation.
type TypeOptions struct {
	// SkipClick assumes the element already holds focus.
	SkipClick bool

	// Paste routes the text through the pasteboard and a Cmd+V keystroke
	// instead of per-character events.
	Paste bool

	// ClearPasteboard drops the pasteboard contents after a paste instead of
	// restoring the snapshot.
	ClearPasteboard bool
}

// Type writes text into the element: focus it, try the direct value set,
// then fall back to keystroke injection (or the paste lane).
func (a *ActionService) Type(
	ctx context.Context,
	target *element.Element,
	text string,
	opts TypeOptions,
) error {
	ctx, traceID := trace.Ensure(ctx)
	log := a.logger.With(zap.String("trace_id", traceID.String()))

	if target.Handle == nil {
		return derrors.New(derrors.CodeActionFailed, "element has no live handle to type into")
	}

	if !opts.SkipClick {
		clicked, err := a.Click(ctx, target, ClickOptions{})
		if err != nil {
			return err
		}

		target = clicked
	}

	if err := target.Handle.SetFocused(true); err != nil {
		log.Debug("Failed to set focused attribute", zap.Error(err))
	}

	if err := a.sleep(ctx, a.params.FocusSettle); err != nil {
		return err
	}

	// Cheapest path first: write the value attribute and read it back.
	if err := target.Handle.SetStringAttribute(element.AttrValue, text); err == nil {
		if sleepErr := a.sleep(ctx, a.params.ValueVerify); sleepErr != nil {
			return sleepErr
		}

		if value, ok := target.Handle.StringAttribute(element.AttrValue); ok && value == text {
			log.Debug("Typed via value attribute", zap.Int("length", len(text)))

			return nil
		}
	}

	if opts.Paste && a.pasteboard != nil {
		return a.pasteText(ctx, text, opts.ClearPasteboard, log)
	}

	return a.typeKeystrokes(ctx, text, log)
}

// typeKeystrokes injects the text character by character with human pacing.
// Characters outside the keycode table go out as Unicode payloads.
func (a *ActionService) typeKeystrokes(ctx context.Context, text string, log *zap.Logger) error {
	first := true

	for _, r := range text {
		if !first {
			delay := a.randDuration(a.params.KeyDelayMin, a.params.KeyDelayMax)
			if err := a.sleep(ctx, delay); err != nil {
				return err
			}
		}
		first = false

		entry, ok := keymap.Lookup(r)
		if !ok {
			if err := a.dispatcher.TypeUnicode(string(r)); err != nil {
				return err
			}

			continue
		}

		var flags ports.ModifierFlags
		if entry.Shift {
			flags = ports.ModifierShift
		}

		if err := a.pressKey(ctx, entry.KeyCode, flags); err != nil {
			return err
		}
	}

	log.Debug("Typed via keystrokes", zap.Int("length", len(text)))

	return nil
}

// pasteText snapshots the pasteboard, pastes the text with Cmd+V, and puts
// the previous contents back (or clears, per flag).
func (a *ActionService) pasteText(
	ctx context.Context,
	text string,
	clear bool,
	log *zap.Logger,
) error {
	snapshot, err := a.pasteboard.Snapshot()
	if err != nil {
		return derrors.Wrap(err, derrors.CodeActionFailed, "failed to snapshot pasteboard")
	}

	if err := a.pasteboard.SetText(text); err != nil {
		return derrors.Wrap(err, derrors.CodeActionFailed, "failed to stage paste text")
	}

	if err := a.pressKey(ctx, keymap.KeyV, ports.ModifierCommand); err != nil {
		return err
	}

	// Let the target consume the paste before the contents change again.
	if err := a.sleep(ctx, a.params.FocusSettle); err != nil {
		return err
	}

	if clear {
		if err := a.pasteboard.Clear(); err != nil {
			return derrors.Wrap(err, derrors.CodeActionFailed, "failed to clear pasteboard")
		}
	} else if err := a.pasteboard.Restore(snapshot); err != nil {
		return derrors.Wrap(err, derrors.CodeActionFailed, "failed to restore pasteboard")
	}

	log.Debug("Typed via paste", zap.Int("length", len(text)), zap.Bool("cleared", clear))

	return nil
}

// pressKey posts a key-down, holds briefly, and posts the key-up.
func (a *ActionService) pressKey(
	ctx context.Context,
	keyCode int,
	flags ports.ModifierFlags,
) error {
	if err := a.dispatcher.KeyDown(keyCode, flags); err != nil {
		return err
	}

	if err := a.sleep(ctx, a.randDuration(a.params.KeyHoldMin, a.params.KeyHoldMax)); err != nil {
		return err
	}

	return a.dispatcher.KeyUp(keyCode, flags)
}
