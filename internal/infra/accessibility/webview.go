package accessibility

import (
	"sync"

	"github.com/saucesteals/silk/internal/infra/bridge"
	"go.uber.org/zap"
)

// manualAccessibilityAttribute switches Chromium- and Electron-based
// applications into manual accessibility mode. Without it those processes
// expose an empty tree and no DOM attributes.
const manualAccessibilityAttribute = "AXManualAccessibility"

var (
	manualPIDsMu  sync.Mutex
	manualEnabled = make(map[int]struct{})
)

// EnsureManualAccessibility enables AXManualAccessibility for the process
// once per pid. Applications that do not understand the attribute reject the
// write, which is harmless.
func EnsureManualAccessibility(pid int, logger *zap.Logger) bool {
	if pid <= 0 {
		return false
	}

	manualPIDsMu.Lock()
	_, already := manualEnabled[pid]
	manualPIDsMu.Unlock()

	if already {
		return true
	}

	if !bridge.SetApplicationAttribute(pid, manualAccessibilityAttribute, true) {
		return false
	}

	logger.Debug("Enabled manual accessibility", zap.Int("pid", pid))

	manualPIDsMu.Lock()
	manualEnabled[pid] = struct{}{}
	manualPIDsMu.Unlock()

	return true
}
