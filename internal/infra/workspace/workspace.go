// Package workspace implements application enumeration and lifecycle
// control over NSWorkspace through the cgo bridge.
package workspace

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/workspace.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// Workspace implements ports.Workspace.
type Workspace struct {
	logger *zap.Logger
}

// New creates the workspace adapter.
func New(logger *zap.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// RunningApplications implements ports.Workspace.
func (w *Workspace) RunningApplications() []ports.RunningApplication {
	var count C.int
	cApps := C.wsRunningApplications(&count)
	if cApps == nil || count == 0 {
		return nil
	}
	defer C.wsFreeAppList(cApps, count)

	countInt := int(count)
	appSlice := (*[1 << 16]C.SilkAppInfo)(unsafe.Pointer(cApps))[:countInt:countInt]

	apps := make([]ports.RunningApplication, 0, countInt)
	for _, cApp := range appSlice {
		app := ports.RunningApplication{
			PID:       int(cApp.pid),
			Regular:   cApp.regular == 1,
			Frontmost: cApp.frontmost == 1,
			Hidden:    cApp.hidden == 1,
		}

		if cApp.name != nil {
			app.Name = C.GoString(cApp.name)
		}
		if cApp.bundleID != nil {
			app.BundleID = C.GoString(cApp.bundleID)
		}

		apps = append(apps, app)
	}

	return apps
}

// FrontmostApplication implements ports.Workspace.
func (w *Workspace) FrontmostApplication() (ports.RunningApplication, bool) {
	for _, app := range w.RunningApplications() {
		if app.Frontmost {
			return app, true
		}
	}

	return ports.RunningApplication{}, false
}

// Activate implements ports.Workspace.
func (w *Workspace) Activate(pid int) error {
	if C.wsActivateApplication(C.int(pid)) == 0 {
		return derrors.Newf(derrors.CodeAppNotRunning, "no running application with pid %d", pid)
	}

	return nil
}

// Hide implements ports.Workspace.
func (w *Workspace) Hide(pid int) error {
	if C.wsHideApplication(C.int(pid), 1) == 0 {
		return derrors.Newf(derrors.CodeAppNotRunning, "no running application with pid %d", pid)
	}

	return nil
}

// Unhide implements ports.Workspace.
func (w *Workspace) Unhide(pid int) error {
	if C.wsHideApplication(C.int(pid), 0) == 0 {
		return derrors.Newf(derrors.CodeAppNotRunning, "no running application with pid %d", pid)
	}

	return nil
}

// Terminate implements ports.Workspace.
func (w *Workspace) Terminate(pid int, force bool) error {
	var cForce C.int
	if force {
		cForce = 1
	}

	if C.wsTerminateApplication(C.int(pid), cForce) == 0 {
		return derrors.Newf(derrors.CodeAppNotRunning, "no running application with pid %d", pid)
	}

	return nil
}

// Launch implements ports.Workspace.
func (w *Workspace) Launch(opts ports.LaunchOptions) error {
	if opts.BundlePath == "" {
		return derrors.New(derrors.CodeInvalidInput, "launch requires a bundle path")
	}

	cPath := C.CString(opts.BundlePath)
	defer C.free(unsafe.Pointer(cPath)) //nolint:nlreturn

	var cTarget *C.char
	if opts.OpenTarget != "" {
		cTarget = C.CString(opts.OpenTarget)
		defer C.free(unsafe.Pointer(cTarget)) //nolint:nlreturn
	}

	var cHidden, cNoActivate C.int
	if opts.Hidden {
		cHidden = 1
	}
	if opts.WithoutActivation {
		cNoActivate = 1
	}

	if C.wsLaunchApplication(cPath, cTarget, cHidden, cNoActivate) == 0 {
		return derrors.Newf(derrors.CodeAppNotFound, "failed to launch %s", opts.BundlePath)
	}

	w.logger.Debug("Launched application", zap.String("path", opts.BundlePath))

	return nil
}
