package ports

import (
	"image"

	"github.com/saucesteals/silk/internal/domain/element"
)

// AccessibilityClient is the engine's entry into the accessibility forest.
// Implementations handle all cgo bridge complexity.
type AccessibilityClient interface {
	// Trusted reports whether this process holds the accessibility grant,
	// optionally prompting the user.
	Trusted(prompt bool) bool

	// ApplicationElement returns the accessibility root for the process, or
	// nil when the process exposes none.
	ApplicationElement(pid int) element.UIElement

	// ElementAtPosition hit-tests the system-wide root at screen
	// coordinates. Nil when nothing is there.
	ElementAtPosition(x, y int) element.UIElement

	// FocusedElement returns the element holding keyboard focus, or nil.
	FocusedElement() element.UIElement
}

// RunningApplication describes one entry of the workspace's application list.
type RunningApplication struct {
	PID       int    `json:"pid"`
	Name      string `json:"name"`
	BundleID  string `json:"bundle_id"`
	Regular   bool   `json:"regular"`
	Frontmost bool   `json:"frontmost"`
	Hidden    bool   `json:"hidden"`
}

// LaunchOptions configures an application launch.
type LaunchOptions struct {
	BundlePath        string
	OpenTarget        string
	Hidden            bool
	WithoutActivation bool
}

// Workspace enumerates and controls running applications.
type Workspace interface {
	// RunningApplications lists all running applications.
	RunningApplications() []RunningApplication

	// FrontmostApplication returns the active application, if any.
	FrontmostApplication() (RunningApplication, bool)

	// Activate brings the application with the given pid to the front.
	Activate(pid int) error

	// Hide hides the application.
	Hide(pid int) error

	// Unhide reveals a hidden application.
	Unhide(pid int) error

	// Terminate quits the application, forcefully when force is set.
	Terminate(pid int, force bool) error

	// Launch opens an application bundle.
	Launch(opts LaunchOptions) error
}

// Screen exposes display geometry, the cursor, and the capture collaborator.
type Screen interface {
	// MainDisplayBounds returns the primary display rectangle in
	// top-left-origin coordinates; ok is false when no display is attached.
	MainDisplayBounds() (bounds image.Rectangle, ok bool)

	// DisplayBoundsForPoint maps a point to the display that owns it.
	DisplayBoundsForPoint(x, y int) (bounds image.Rectangle, ok bool)

	// CursorPosition returns the current pointer position.
	CursorPosition() element.Point

	// RecordingGranted reports the screen-recording permission.
	RecordingGranted() bool

	// CaptureRegion writes a PNG of the given screen region to outPath.
	CaptureRegion(region image.Rectangle, outPath string) error
}

// PasteboardItem is one typed blob captured from the pasteboard. Raw bytes,
// not handles: handles go stale after a clear.
type PasteboardItem struct {
	Type string
	Data []byte
}

// Pasteboard snapshots and restores the system pasteboard around a paste
// operation.
type Pasteboard interface {
	// Snapshot captures the current pasteboard items as typed blobs.
	Snapshot() ([]PasteboardItem, error)

	// Restore puts previously snapshotted items back.
	Restore(items []PasteboardItem) error

	// Clear empties the pasteboard.
	Clear() error

	// SetText places plain text on the pasteboard.
	SetText(text string) error

	// Text reads the plain-text content, if any.
	Text() (string, error)
}
