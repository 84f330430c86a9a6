package bridge

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework Cocoa -framework CoreGraphics -framework ImageIO
#include "accessibility.h"
#include "input.h"
#include "workspace.h"
#include "screen.h"
#include "pasteboard.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"go.uber.org/zap"
)

// Global logger instance used for bridge package logging.
var bridgeLogger *zap.Logger

// InitializeLogger sets the global logger instance for the bridge package.
func InitializeLogger(logger *zap.Logger) {
	bridgeLogger = logger
}

// SetApplicationAttribute toggles an accessibility attribute for the
// application identified by PID. Used to switch web views and Electron apps
// into manual accessibility mode so their DOM attributes become readable.
func SetApplicationAttribute(pid int, attribute string, value bool) bool {
	cAttr := C.CString(attribute)
	defer C.free(unsafe.Pointer(cAttr)) //nolint:nlreturn

	var cValue C.int
	if value {
		cValue = 1
	}

	result := C.axSetApplicationAttribute(C.int(pid), cAttr, cValue)

	if bridgeLogger != nil {
		if result == 1 {
			bridgeLogger.Debug("Bridge: Application attribute set",
				zap.Int("pid", pid),
				zap.String("attribute", attribute))
		} else {
			bridgeLogger.Warn("Bridge: Failed to set application attribute",
				zap.Int("pid", pid),
				zap.String("attribute", attribute))
		}
	}

	return result == 1
}

// PrimaryDisplayHeight returns the primary display's height in pixels, or 0
// when no display is attached. Coordinate-origin conversions use this.
func PrimaryDisplayHeight() int {
	return int(C.screenPrimaryHeight())
}
