package element_test

import (
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
)

func TestNormalizeRole(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "Button", expected: "AXButton"},
		{input: "button", expected: "AXButton"},
		{input: "AXButton", expected: "AXButton"},
		{input: "textField", expected: "AXTextField"},
		{input: "AXWebArea", expected: "AXWebArea"},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			if got := element.NormalizeRole(testCase.input); got != testCase.expected {
				t.Errorf("NormalizeRole(%q) = %q, expected %q", testCase.input, got, testCase.expected)
			}
		})
	}
}

func TestStripRolePrefix(t *testing.T) {
	if got := element.StripRolePrefix("AXButton"); got != "Button" {
		t.Errorf("StripRolePrefix(AXButton) = %q", got)
	}

	if got := element.StripRolePrefix("Button"); got != "Button" {
		t.Errorf("StripRolePrefix(Button) = %q", got)
	}
}

func testElement() *element.Element {
	index := 2

	return &element.Element{
		Role:         "AXButton",
		Title:        "Save Document",
		Description:  "Saves the current document",
		Identifier:   "save-button",
		ParentRole:   "AXToolbar",
		SiblingIndex: &index,
		Position:     element.Point{X: 100, Y: 50},
		Size:         element.Size{Width: 80, Height: 24},
	}
}

func TestQueryMatches(t *testing.T) {
	two := 2
	three := 3

	tests := []struct {
		name    string
		query   element.Query
		matches bool
	}{
		{name: "empty query matches", query: element.Query{}, matches: true},
		{name: "role exact", query: element.Query{Role: "AXButton"}, matches: true},
		{name: "role short form", query: element.Query{Role: "Button"}, matches: true},
		{name: "role mismatch", query: element.Query{Role: "AXLink"}, matches: false},
		{name: "text in title", query: element.Query{Text: "save"}, matches: true},
		{name: "text in description", query: element.Query{Text: "current document"}, matches: true},
		{name: "text absent", query: element.Query{Text: "delete"}, matches: false},
		{
			name:    "fuzzy subsequence",
			query:   element.Query{Text: "svdoc", FuzzyMatch: true},
			matches: true,
		},
		{
			name:    "fuzzy needs order",
			query:   element.Query{Text: "docsv", FuzzyMatch: true},
			matches: false,
		},
		{
			name:    "subsequence rejected without fuzzy",
			query:   element.Query{Text: "svdoc"},
			matches: false,
		},
		{name: "identifier exact", query: element.Query{Identifier: "save-button"}, matches: true},
		{name: "identifier mismatch", query: element.Query{Identifier: "other"}, matches: false},
		{name: "sibling index exact", query: element.Query{SiblingIndex: &two}, matches: true},
		{name: "sibling index mismatch", query: element.Query{SiblingIndex: &three}, matches: false},
		{name: "parent role", query: element.Query{ParentRole: "Toolbar"}, matches: true},
		{name: "parent role mismatch", query: element.Query{ParentRole: "AXGroup"}, matches: false},
		{name: "size within bounds", query: element.Query{MinWidth: 50, MaxWidth: 100}, matches: true},
		{name: "width below min", query: element.Query{MinWidth: 100}, matches: false},
		{name: "width at exclusive max", query: element.Query{MaxWidth: 80}, matches: false},
		{name: "height bounds", query: element.Query{MinHeight: 24, MaxHeight: 25}, matches: true},
		{
			name: "all predicates together",
			query: element.Query{
				Text:         "Save",
				Role:         "Button",
				Identifier:   "save-button",
				SiblingIndex: &two,
				ParentRole:   "Toolbar",
				MinWidth:     80,
				MaxWidth:     81,
			},
			matches: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if got := testCase.query.Matches(testElement()); got != testCase.matches {
				t.Errorf("Matches = %v, expected %v", got, testCase.matches)
			}
		})
	}
}

func TestQueryMatchesCaseInsensitive(t *testing.T) {
	query := element.Query{Text: "SAVE DOCUMENT"}

	if !query.Matches(testElement()) {
		t.Error("text matching should be case-insensitive")
	}
}

func TestQueryMatchesSiblingIndexAbsent(t *testing.T) {
	zero := 0
	query := element.Query{SiblingIndex: &zero}

	root := &element.Element{Role: "AXWindow"}
	if query.Matches(root) {
		t.Error("an element without a sibling index should not match a sibling-index query")
	}
}

func TestQueryIsEmpty(t *testing.T) {
	if !(element.Query{}).IsEmpty() {
		t.Error("zero query should be empty")
	}

	if !(element.Query{Application: "Safari", FuzzyMatch: true, Limit: 5}).IsEmpty() {
		t.Error("scope-only fields are not predicates")
	}

	if (element.Query{Text: "x"}).IsEmpty() {
		t.Error("a text predicate makes the query non-empty")
	}

	if (element.Query{MinHeight: 10}).IsEmpty() {
		t.Error("a size bound makes the query non-empty")
	}
}
