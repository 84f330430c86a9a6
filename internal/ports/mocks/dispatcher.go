package mocks

import (
	"sync"

	"github.com/saucesteals/silk/internal/ports"
)

// Event kinds recorded by the RecordingDispatcher.
const (
	EventMove     = "move"
	EventDown     = "down"
	EventUp       = "up"
	EventDrag     = "drag"
	EventScroll   = "scroll"
	EventKeyDown  = "key_down"
	EventKeyUp    = "key_up"
	EventTypeText = "type_text"
)

// RecordedEvent is one dispatched input event.
type RecordedEvent struct {
	Kind    string
	Button  ports.MouseButton
	X, Y    float64
	DeltaX  int
	DeltaY  int
	KeyCode int
	Flags   ports.ModifierFlags
	Text    string
}

// RecordingDispatcher implements ports.Dispatcher by recording every event.
// An optional hook lets scroll-into-view tests mutate the fake tree when a
// scroll is posted.
type RecordingDispatcher struct {
	mu     sync.Mutex
	Events []RecordedEvent

	// FailWith, when set, is returned from every call.
	FailWith error

	// OnScroll, when set, runs after each recorded scroll event.
	OnScroll func(deltaX, deltaY int)
}

func (d *RecordingDispatcher) record(event RecordedEvent) error {
	d.mu.Lock()
	d.Events = append(d.Events, event)
	d.mu.Unlock()

	return d.FailWith
}

// MoveMouse implements ports.Dispatcher.
func (d *RecordingDispatcher) MoveMouse(x, y float64) error {
	return d.record(RecordedEvent{Kind: EventMove, X: x, Y: y})
}

// MouseDown implements ports.Dispatcher.
func (d *RecordingDispatcher) MouseDown(button ports.MouseButton, x, y float64) error {
	return d.record(RecordedEvent{Kind: EventDown, Button: button, X: x, Y: y})
}

// MouseUp implements ports.Dispatcher.
func (d *RecordingDispatcher) MouseUp(button ports.MouseButton, x, y float64) error {
	return d.record(RecordedEvent{Kind: EventUp, Button: button, X: x, Y: y})
}

// MouseDrag implements ports.Dispatcher.
func (d *RecordingDispatcher) MouseDrag(button ports.MouseButton, x, y float64) error {
	return d.record(RecordedEvent{Kind: EventDrag, Button: button, X: x, Y: y})
}

// Scroll implements ports.Dispatcher.
func (d *RecordingDispatcher) Scroll(deltaX, deltaY int) error {
	err := d.record(RecordedEvent{Kind: EventScroll, DeltaX: deltaX, DeltaY: deltaY})

	if d.OnScroll != nil {
		d.OnScroll(deltaX, deltaY)
	}

	return err
}

// KeyDown implements ports.Dispatcher.
func (d *RecordingDispatcher) KeyDown(keyCode int, flags ports.ModifierFlags) error {
	return d.record(RecordedEvent{Kind: EventKeyDown, KeyCode: keyCode, Flags: flags})
}

// KeyUp implements ports.Dispatcher.
func (d *RecordingDispatcher) KeyUp(keyCode int, flags ports.ModifierFlags) error {
	return d.record(RecordedEvent{Kind: EventKeyUp, KeyCode: keyCode, Flags: flags})
}

// TypeUnicode implements ports.Dispatcher.
func (d *RecordingDispatcher) TypeUnicode(text string) error {
	return d.record(RecordedEvent{Kind: EventTypeText, Text: text})
}

// EventsOfKind returns the recorded events of one kind, in order.
func (d *RecordingDispatcher) EventsOfKind(kind string) []RecordedEvent {
	d.mu.Lock()
	defer d.mu.Unlock()

	var matched []RecordedEvent
	for _, event := range d.Events {
		if event.Kind == kind {
			matched = append(matched, event)
		}
	}

	return matched
}
