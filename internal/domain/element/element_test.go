package element_test

import (
	"image"
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
)

func TestElementGeometry(t *testing.T) {
	button := &element.Element{
		Role:     "AXButton",
		Position: element.Point{X: 100, Y: 200},
		Size:     element.Size{Width: 40, Height: 20},
	}

	if got := button.Rect(); got != image.Rect(100, 200, 140, 220) {
		t.Errorf("Rect() = %v, expected (100,200)-(140,220)", got)
	}

	if got := button.Center(); got != (element.Point{X: 120, Y: 210}) {
		t.Errorf("Center() = %v, expected (120,210)", got)
	}

	if !button.HasSize() {
		t.Error("HasSize() should be true for a 40x20 element")
	}

	zero := &element.Element{Role: "AXButton"}
	if zero.HasSize() {
		t.Error("HasSize() should be false for a zero-size element")
	}
}

func TestElementLabel(t *testing.T) {
	tests := []struct {
		name     string
		elem     element.Element
		expected string
	}{
		{
			name:     "title wins",
			elem:     element.Element{Title: "OK", Description: "confirm", Value: "1"},
			expected: "OK",
		},
		{
			name:     "description second",
			elem:     element.Element{Description: "confirm", Value: "1"},
			expected: "confirm",
		},
		{
			name:     "value last",
			elem:     element.Element{Value: "1"},
			expected: "1",
		},
		{
			name:     "all empty",
			elem:     element.Element{},
			expected: "",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.elem.Label(); got != testCase.expected {
				t.Errorf("Label() = %q, expected %q", got, testCase.expected)
			}
		})
	}
}

func TestFrameRoundTrip(t *testing.T) {
	rect := image.Rect(10, 20, 110, 80)

	frame := element.FrameFromRect(rect)
	if frame != (element.Frame{X: 10, Y: 20, Width: 100, Height: 60}) {
		t.Errorf("FrameFromRect = %+v", frame)
	}

	if frame.Rect() != rect {
		t.Errorf("Frame.Rect() = %v, expected %v", frame.Rect(), rect)
	}
}

func TestSignature(t *testing.T) {
	index := 2

	first := &element.Element{
		Role:         "AXButton",
		Title:        "Save",
		ParentRole:   "AXToolbar",
		SiblingIndex: &index,
	}

	// Same identifying tuple at a different position hashes equal.
	same := &element.Element{
		Role:         "AXButton",
		Title:        "Save",
		ParentRole:   "AXToolbar",
		SiblingIndex: &index,
		Position:     element.Point{X: 500, Y: 900},
	}

	if element.Signature(first) != element.Signature(same) {
		t.Error("signatures should ignore position")
	}

	other := &element.Element{
		Role:         "AXButton",
		Title:        "Cancel",
		ParentRole:   "AXToolbar",
		SiblingIndex: &index,
	}

	if element.Signature(first) == element.Signature(other) {
		t.Error("different titles should produce different signatures")
	}

	// Field boundaries must not shift content between fields.
	joinedA := &element.Element{Role: "AXB", Title: "utton"}
	joinedB := &element.Element{Role: "AXBu", Title: "tton"}

	if element.Signature(joinedA) == element.Signature(joinedB) {
		t.Error("field boundaries should prevent concatenation collisions")
	}
}
