package mocks

import (
	"image"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/ports"
)

// MockAccessibilityClient is a func-field mock of ports.AccessibilityClient.
type MockAccessibilityClient struct {
	TrustedFunc            func(prompt bool) bool
	ApplicationElementFunc func(pid int) element.UIElement
	ElementAtPositionFunc  func(x, y int) element.UIElement
	FocusedElementFunc     func() element.UIElement
}

// Trusted implements ports.AccessibilityClient.
func (m *MockAccessibilityClient) Trusted(prompt bool) bool {
	if m.TrustedFunc != nil {
		return m.TrustedFunc(prompt)
	}

	return true
}

// ApplicationElement implements ports.AccessibilityClient.
func (m *MockAccessibilityClient) ApplicationElement(pid int) element.UIElement {
	if m.ApplicationElementFunc != nil {
		return m.ApplicationElementFunc(pid)
	}

	return nil
}

// ElementAtPosition implements ports.AccessibilityClient.
func (m *MockAccessibilityClient) ElementAtPosition(x, y int) element.UIElement {
	if m.ElementAtPositionFunc != nil {
		return m.ElementAtPositionFunc(x, y)
	}

	return nil
}

// FocusedElement implements ports.AccessibilityClient.
func (m *MockAccessibilityClient) FocusedElement() element.UIElement {
	if m.FocusedElementFunc != nil {
		return m.FocusedElementFunc()
	}

	return nil
}

// MockWorkspace is a func-field mock of ports.Workspace with call recording.
type MockWorkspace struct {
	Apps       []ports.RunningApplication
	Activated  []int
	Hidden     []int
	Unhidden   []int
	Terminated []int
	Launches   []ports.LaunchOptions

	ActivateErr error
}

// RunningApplications implements ports.Workspace.
func (m *MockWorkspace) RunningApplications() []ports.RunningApplication {
	return m.Apps
}

// FrontmostApplication implements ports.Workspace.
func (m *MockWorkspace) FrontmostApplication() (ports.RunningApplication, bool) {
	for _, app := range m.Apps {
		if app.Frontmost {
			return app, true
		}
	}

	return ports.RunningApplication{}, false
}

// Activate implements ports.Workspace.
func (m *MockWorkspace) Activate(pid int) error {
	m.Activated = append(m.Activated, pid)

	return m.ActivateErr
}

// Hide implements ports.Workspace.
func (m *MockWorkspace) Hide(pid int) error {
	m.Hidden = append(m.Hidden, pid)

	return nil
}

// Unhide implements ports.Workspace.
func (m *MockWorkspace) Unhide(pid int) error {
	m.Unhidden = append(m.Unhidden, pid)

	return nil
}

// Terminate implements ports.Workspace.
func (m *MockWorkspace) Terminate(pid int, _ bool) error {
	m.Terminated = append(m.Terminated, pid)

	return nil
}

// Launch implements ports.Workspace.
func (m *MockWorkspace) Launch(opts ports.LaunchOptions) error {
	m.Launches = append(m.Launches, opts)

	return nil
}

// CaptureCall records one CaptureRegion invocation.
type CaptureCall struct {
	Region  image.Rectangle
	OutPath string
}

// MockScreen is a configurable mock of ports.Screen.
type MockScreen struct {
	Bounds      image.Rectangle
	HasDisplay  bool
	Cursor      element.Point
	RecordingOK bool
	Captures    []CaptureCall
	CaptureErr  error
}

// MainDisplayBounds implements ports.Screen.
func (m *MockScreen) MainDisplayBounds() (image.Rectangle, bool) {
	return m.Bounds, m.HasDisplay
}

// DisplayBoundsForPoint implements ports.Screen.
func (m *MockScreen) DisplayBoundsForPoint(_, _ int) (image.Rectangle, bool) {
	return m.Bounds, m.HasDisplay
}

// CursorPosition implements ports.Screen.
func (m *MockScreen) CursorPosition() element.Point {
	return m.Cursor
}

// RecordingGranted implements ports.Screen.
func (m *MockScreen) RecordingGranted() bool {
	return m.RecordingOK
}

// CaptureRegion implements ports.Screen.
func (m *MockScreen) CaptureRegion(region image.Rectangle, outPath string) error {
	m.Captures = append(m.Captures, CaptureCall{Region: region, OutPath: outPath})

	return m.CaptureErr
}

// MockPasteboard is an in-memory ports.Pasteboard.
type MockPasteboard struct {
	Items    []ports.PasteboardItem
	Restored [][]ports.PasteboardItem
	Cleared  int
}

// Snapshot implements ports.Pasteboard.
func (m *MockPasteboard) Snapshot() ([]ports.PasteboardItem, error) {
	snapshot := make([]ports.PasteboardItem, len(m.Items))
	copy(snapshot, m.Items)

	return snapshot, nil
}

// Restore implements ports.Pasteboard.
func (m *MockPasteboard) Restore(items []ports.PasteboardItem) error {
	m.Items = items
	m.Restored = append(m.Restored, items)

	return nil
}

// Clear implements ports.Pasteboard.
func (m *MockPasteboard) Clear() error {
	m.Items = nil
	m.Cleared++

	return nil
}

// SetText implements ports.Pasteboard.
func (m *MockPasteboard) SetText(text string) error {
	m.Items = []ports.PasteboardItem{{Type: "public.utf8-plain-text", Data: []byte(text)}}

	return nil
}

// Text implements ports.Pasteboard.
func (m *MockPasteboard) Text() (string, error) {
	for _, item := range m.Items {
		if item.Type == "public.utf8-plain-text" {
			return string(item.Data), nil
		}
	}

	return "", nil
}
