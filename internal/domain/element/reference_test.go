package element_test

import (
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
)

func TestEncodeReferenceTiers(t *testing.T) {
	two := 2

	tests := []struct {
		name     string
		elem     element.Element
		expected string
	}{
		{
			name: "identifier tier wins",
			elem: element.Element{
				Role:         "AXButton",
				Identifier:   "save-button",
				ParentRole:   "AXToolbar",
				SiblingIndex: &two,
			},
			expected: "id:save-button",
		},
		{
			name: "structural tier",
			elem: element.Element{
				Role:         "AXButton",
				ParentRole:   "AXToolbar",
				SiblingIndex: &two,
				Position:     element.Point{X: 240, Y: 600},
			},
			expected: "ref:Button-2-Toolbar",
		},
		{
			name: "positional tier snaps to the 50px lattice",
			elem: element.Element{
				Role:     "AXButton",
				Position: element.Point{X: 240, Y: 600},
			},
			expected: "pos:Button-5-12",
		},
		{
			name: "positional tier when parent role missing",
			elem: element.Element{
				Role:         "AXCell",
				SiblingIndex: &two,
				Position:     element.Point{X: 0, Y: 49},
			},
			expected: "pos:Cell-0-1",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := element.EncodeReference(&testCase.elem); got != testCase.expected {
				t.Errorf("EncodeReference = %q, expected %q", got, testCase.expected)
			}

			if got := element.Ref(&testCase.elem); got != "@"+testCase.expected {
				t.Errorf("Ref = %q, expected %q", got, "@"+testCase.expected)
			}
		})
	}
}

func TestDecodeReferenceID(t *testing.T) {
	decoded, err := element.DecodeReference("@id:save-button")
	if err != nil {
		t.Fatalf("DecodeReference failed: %v", err)
	}

	if decoded.Query.Identifier != "save-button" {
		t.Errorf("Identifier = %q", decoded.Query.Identifier)
	}

	if decoded.Query.Limit != 1 {
		t.Errorf("Limit = %d, expected 1", decoded.Query.Limit)
	}

	if decoded.Anchor != nil {
		t.Error("id tier should have no anchor")
	}
}

func TestDecodeReferenceStructural(t *testing.T) {
	decoded, err := element.DecodeReference("ref:Button-2-Toolbar")
	if err != nil {
		t.Fatalf("DecodeReference failed: %v", err)
	}

	if decoded.Query.Role != "AXButton" {
		t.Errorf("Role = %q, expected AXButton", decoded.Query.Role)
	}

	if decoded.Query.SiblingIndex == nil || *decoded.Query.SiblingIndex != 2 {
		t.Errorf("SiblingIndex = %v, expected 2", decoded.Query.SiblingIndex)
	}

	if decoded.Query.ParentRole != "AXToolbar" {
		t.Errorf("ParentRole = %q, expected AXToolbar", decoded.Query.ParentRole)
	}

	if decoded.Query.Limit != 10 {
		t.Errorf("Limit = %d, expected 10", decoded.Query.Limit)
	}
}

func TestDecodeReferencePositional(t *testing.T) {
	decoded, err := element.DecodeReference("@pos:Button-5-12")
	if err != nil {
		t.Fatalf("DecodeReference failed: %v", err)
	}

	if decoded.Query.Role != "AXButton" {
		t.Errorf("Role = %q, expected AXButton", decoded.Query.Role)
	}

	if decoded.Anchor == nil {
		t.Fatal("pos tier should carry a grid anchor")
	}

	if *decoded.Anchor != (element.Point{X: 250, Y: 600}) {
		t.Errorf("Anchor = %v, expected (250,600)", *decoded.Anchor)
	}
}

func TestReferenceRoundTrip(t *testing.T) {
	two := 2

	elements := []element.Element{
		{Role: "AXButton", Identifier: "ok"},
		{Role: "AXButton", ParentRole: "AXToolbar", SiblingIndex: &two},
		{Role: "AXLink", Position: element.Point{X: 149, Y: 951}},
	}

	for _, elem := range elements {
		encoded := element.EncodeReference(&elem)

		decoded, err := element.DecodeReference(encoded)
		if err != nil {
			t.Fatalf("round trip of %q failed: %v", encoded, err)
		}

		// Encode -> decode -> the decoded query must re-find the element.
		if !decoded.Query.Matches(&elem) {
			t.Errorf("decoded query of %q does not match the source element", encoded)
		}
	}
}

func TestDecodeReferenceMalformed(t *testing.T) {
	for _, ref := range []string{
		"",
		"@",
		"save-button",
		"id:",
		"ref:Button-Toolbar",
		"ref:Button-x-Toolbar",
		"pos:Button-5",
		"unknown:whatever",
	} {
		if _, err := element.DecodeReference(ref); err == nil {
			t.Errorf("DecodeReference(%q) should fail", ref)
		}
	}
}
