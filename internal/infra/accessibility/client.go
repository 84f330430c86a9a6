package accessibility

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/accessibility.h"
#include <stdlib.h>
*/
import "C"

import (
	"github.com/saucesteals/silk/internal/domain/element"
	"go.uber.org/zap"
)

// Client implements ports.AccessibilityClient over the cgo bridge.
type Client struct {
	logger *zap.Logger
}

// NewClient creates the accessibility client.
func NewClient(logger *zap.Logger) *Client {
	return &Client{logger: logger}
}

// Trusted implements ports.AccessibilityClient.
func (c *Client) Trusted(prompt bool) bool {
	var cPrompt C.int
	if prompt {
		cPrompt = 1
	}

	return C.axIsTrusted(cPrompt) == 1
}

// ApplicationElement implements ports.AccessibilityClient. Web-view hosts
// are switched into manual accessibility mode first so their DOM attributes
// become readable.
func (c *Client) ApplicationElement(pid int) element.UIElement {
	EnsureManualAccessibility(pid, c.logger)

	ref := C.axApplicationElement(C.int(pid))
	if ref == nil {
		return nil
	}

	wrapped := wrapElement(ref)

	// An application element always exists for a live pid; probe the role to
	// filter out processes that expose no tree.
	if _, err := wrapped.Role(); err != nil {
		c.logger.Debug("Application exposes no accessibility tree", zap.Int("pid", pid))

		return nil
	}

	return wrapped
}

// ElementAtPosition implements ports.AccessibilityClient.
func (c *Client) ElementAtPosition(x, y int) element.UIElement {
	ref := C.axElementAtPosition(C.double(x), C.double(y))
	if ref == nil {
		return nil
	}

	return wrapElement(ref)
}

// FocusedElement implements ports.AccessibilityClient.
func (c *Client) FocusedElement() element.UIElement {
	ref := C.axFocusedElement()
	if ref == nil {
		return nil
	}

	return wrapElement(ref)
}
