// Package input implements the trusted input-event dispatcher over the cgo
// bridge: CGEvents posted at the HID tap, stamped with the host's monotonic
// uptime so receiving applications treat them as hardware input.
package input

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/input.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// SystemDispatcher implements ports.Dispatcher against the live event tap.
type SystemDispatcher struct {
	logger *zap.Logger
}

// NewSystemDispatcher creates the dispatcher.
func NewSystemDispatcher(logger *zap.Logger) *SystemDispatcher {
	return &SystemDispatcher{logger: logger}
}

func eventError(kind string) error {
	return derrors.Newf(
		derrors.CodeEventCreationFailed,
		"the OS refused to create or post a %s event",
		kind,
	)
}

// MoveMouse implements ports.Dispatcher. The cursor is warped at display
// level so the visible pointer actually moves, then the move event is
// posted for applications tracking it.
func (d *SystemDispatcher) MoveMouse(x, y float64) error {
	if C.inputMoveMouse(C.double(x), C.double(y)) == 0 {
		return eventError("mouse-move")
	}

	return nil
}

// MouseDown implements ports.Dispatcher.
func (d *SystemDispatcher) MouseDown(button ports.MouseButton, x, y float64) error {
	if C.inputMouseDown(C.int(button), C.double(x), C.double(y)) == 0 {
		return eventError("mouse-down")
	}

	return nil
}

// MouseUp implements ports.Dispatcher.
func (d *SystemDispatcher) MouseUp(button ports.MouseButton, x, y float64) error {
	if C.inputMouseUp(C.int(button), C.double(x), C.double(y)) == 0 {
		return eventError("mouse-up")
	}

	return nil
}

// MouseDrag implements ports.Dispatcher.
func (d *SystemDispatcher) MouseDrag(button ports.MouseButton, x, y float64) error {
	if C.inputMouseDrag(C.int(button), C.double(x), C.double(y)) == 0 {
		return eventError("mouse-drag")
	}

	return nil
}

// Scroll implements ports.Dispatcher with pixel-unit wheel deltas.
func (d *SystemDispatcher) Scroll(deltaX, deltaY int) error {
	if C.inputScroll(C.int(deltaX), C.int(deltaY)) == 0 {
		return eventError("scroll")
	}

	return nil
}

// KeyDown implements ports.Dispatcher.
func (d *SystemDispatcher) KeyDown(keyCode int, flags ports.ModifierFlags) error {
	if C.inputKeyEvent(C.int(keyCode), 1, C.ulonglong(flags)) == 0 {
		return eventError("key-down")
	}

	return nil
}

// KeyUp implements ports.Dispatcher.
func (d *SystemDispatcher) KeyUp(keyCode int, flags ports.ModifierFlags) error {
	if C.inputKeyEvent(C.int(keyCode), 0, C.ulonglong(flags)) == 0 {
		return eventError("key-up")
	}

	return nil
}

// TypeUnicode implements ports.Dispatcher for characters outside the
// virtual keycode table.
func (d *SystemDispatcher) TypeUnicode(text string) error {
	cText := C.CString(text)
	defer C.free(unsafe.Pointer(cText)) //nolint:nlreturn

	if C.inputTypeUnicode(cText) == 0 {
		return eventError("unicode-keyboard")
	}

	return nil
}

// CursorPosition returns the pointer's current screen position.
func CursorPosition() element.Point {
	var x, y C.double
	C.inputCursorPosition(&x, &y)

	return element.Point{X: int(x), Y: int(y)}
}
