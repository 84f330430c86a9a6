// Package mocks provides hand-rolled fakes for the port interfaces: an
// in-memory accessibility tree, a recording input dispatcher, and
// configurable workspace/screen/pasteboard mocks.
package mocks
