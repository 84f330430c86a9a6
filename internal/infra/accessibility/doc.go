// Package accessibility implements the accessibility ports over the macOS
// AXUIElement API through the cgo bridge.
package accessibility
