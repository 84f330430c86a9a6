package ports

// MouseButton identifies a pointer button.
type MouseButton int

// Mouse buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonCenter
)

// ModifierFlags is the bit set of held modifier keys carried on keyboard
// events.
type ModifierFlags uint64

// Modifier flags, matching the host's event flag bits.
const (
	ModifierShift ModifierFlags = 1 << iota
	ModifierControl
	ModifierOption
	ModifierCommand
)

// Dispatcher presents a small, testable interface over the host's trusted
// input-event API. All coordinates are top-left-origin screen pixels;
// sub-pixel positions are meaningful for humanized trajectories.
//
// Implementations post at the highest trust tap available and stamp events
// with the host's monotonic uptime so receiving applications treat them as
// hardware input. Event-creation failure surfaces CodeEventCreationFailed;
// there is no retry.
type Dispatcher interface {
	// MoveMouse warps the visible cursor and posts a mouse-moved event.
	MoveMouse(x, y float64) error

	// MouseDown presses the button at the point.
	MouseDown(button MouseButton, x, y float64) error

	// MouseUp releases the button at the point.
	MouseUp(button MouseButton, x, y float64) error

	// MouseDrag moves to the point with the button held.
	MouseDrag(button MouseButton, x, y float64) error

	// Scroll posts a pixel-unit scroll event at the cursor. Positive deltaY
	// is the host's natural-scrolling "content moves down".
	Scroll(deltaX, deltaY int) error

	// KeyDown presses the virtual key with the given modifiers held.
	KeyDown(keyCode int, flags ModifierFlags) error

	// KeyUp releases the virtual key.
	KeyUp(keyCode int, flags ModifierFlags) error

	// TypeUnicode posts a keyboard event carrying a literal Unicode payload,
	// for characters without a virtual keycode.
	TypeUnicode(text string) error
}
