// Package bridge holds the cgo Objective-C bridge: the C headers and
// implementations for the accessibility API, trusted input events, the
// workspace, display geometry, screen capture and the pasteboard.
//
// Sibling infra packages include the headers from this directory; the
// implementations compile once here and link into the binary.
package bridge
