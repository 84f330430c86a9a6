// Package screen implements display geometry and the screen-capture
// collaborator over the cgo bridge.
package screen

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/screen.h"
#include "../bridge/input.h"
#include <stdlib.h>
*/
import "C"

import (
	"image"
	"unsafe"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"go.uber.org/zap"
)

// Screen implements ports.Screen.
type Screen struct {
	logger *zap.Logger
}

// New creates the screen adapter.
func New(logger *zap.Logger) *Screen {
	return &Screen{logger: logger}
}

// MainDisplayBounds implements ports.Screen.
func (s *Screen) MainDisplayBounds() (image.Rectangle, bool) {
	var x, y, width, height C.double
	if C.screenMainBounds(&x, &y, &width, &height) == 0 {
		return image.Rectangle{}, false
	}

	return image.Rect(
		int(x),
		int(y),
		int(x+width),
		int(y+height),
	), true
}

// DisplayBoundsForPoint implements ports.Screen, mapping a point to the
// display that owns it.
func (s *Screen) DisplayBoundsForPoint(px, py int) (image.Rectangle, bool) {
	var x, y, width, height C.double
	if C.screenBoundsForPoint(
		C.double(px), C.double(py), &x, &y, &width, &height,
	) == 0 {
		return image.Rectangle{}, false
	}

	return image.Rect(
		int(x),
		int(y),
		int(x+width),
		int(y+height),
	), true
}

// CursorPosition implements ports.Screen.
func (s *Screen) CursorPosition() element.Point {
	var x, y C.double
	C.inputCursorPosition(&x, &y)

	return element.Point{X: int(x), Y: int(y)}
}

// RecordingGranted implements ports.Screen.
func (s *Screen) RecordingGranted() bool {
	return C.screenRecordingGranted() == 1
}

// CaptureRegion implements ports.Screen, writing a PNG of the region.
func (s *Screen) CaptureRegion(region image.Rectangle, outPath string) error {
	if region.Dx() <= 0 || region.Dy() <= 0 {
		return derrors.New(derrors.CodeCaptureFailed, "capture region is empty")
	}

	cPath := C.CString(outPath)
	defer C.free(unsafe.Pointer(cPath)) //nolint:nlreturn

	ok := C.screenCaptureRegionPNG(
		C.double(region.Min.X),
		C.double(region.Min.Y),
		C.double(region.Dx()),
		C.double(region.Dy()),
		cPath,
	)
	if ok == 0 {
		return derrors.Newf(derrors.CodeCaptureFailed, "could not write capture to %s", outPath)
	}

	s.logger.Debug("Captured region",
		zap.Int("width", region.Dx()),
		zap.Int("height", region.Dy()),
		zap.String("path", outPath))

	return nil
}
