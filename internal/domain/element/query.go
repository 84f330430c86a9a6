package element

import (
	"strings"
	"unicode"
)

// rolePrefix is the canonical accessibility role prefix.
const rolePrefix = "AX"

// Query is an immutable description of what to look for in the accessibility
// forest. Zero values mean "not specified".
type Query struct {
	// Text matches against title, description and value, case-insensitive.
	Text string `json:"text,omitempty"`

	// Role is the normalized accessibility role ("AXButton"); short names
	// ("Button") are canonicalized before matching.
	Role string `json:"role,omitempty"`

	// Application restricts the search to the named running application.
	Application string `json:"application,omitempty"`

	// Identifier matches the accessibility identifier exactly.
	Identifier string `json:"identifier,omitempty"`

	// SiblingIndex matches the element's position among its parent's children.
	SiblingIndex *int `json:"sibling_index,omitempty"`

	// ParentRole matches the normalized role of the element's parent.
	ParentRole string `json:"parent_role,omitempty"`

	// Size bounds, half-open on the upper end: min <= v < max. Zero means
	// unbounded.
	MinWidth  int `json:"min_width,omitempty"`
	MaxWidth  int `json:"max_width,omitempty"`
	MinHeight int `json:"min_height,omitempty"`
	MaxHeight int `json:"max_height,omitempty"`

	// FuzzyMatch relaxes text containment to in-order subsequence matching.
	FuzzyMatch bool `json:"fuzzy_match,omitempty"`

	// Limit caps the number of results; 0 means unlimited.
	Limit int `json:"limit,omitempty"`

	// MaxDepth bounds the traversal depth; 0 uses the engine default.
	MaxDepth int `json:"max_depth,omitempty"`
}

// NormalizeRole canonicalizes a role name to the accessibility convention:
// the AX prefix is prepended and the first letter upper-cased when missing.
// Empty input stays empty.
func NormalizeRole(role string) string {
	if role == "" {
		return ""
	}

	if strings.HasPrefix(role, rolePrefix) {
		return role
	}

	runes := []rune(role)
	runes[0] = unicode.ToUpper(runes[0])

	return rolePrefix + string(runes)
}

// StripRolePrefix removes the canonical AX prefix for compact display forms.
func StripRolePrefix(role string) string {
	return strings.TrimPrefix(role, rolePrefix)
}

// IsEmpty reports whether the query has no predicates at all. Callers reject
// empty queries before handing them to the engine; the engine itself would
// return everything up to Limit.
func (q Query) IsEmpty() bool {
	return q.Text == "" &&
		q.Role == "" &&
		q.Identifier == "" &&
		q.SiblingIndex == nil &&
		q.ParentRole == "" &&
		q.MinWidth == 0 && q.MaxWidth == 0 &&
		q.MinHeight == 0 && q.MaxHeight == 0
}

// Matches reports whether the element satisfies every specified predicate.
// Predicates are checked in the engine's documented order: role, text,
// identifier, sibling index, parent role, size bounds.
func (q Query) Matches(e *Element) bool {
	if q.Role != "" && e.Role != NormalizeRole(q.Role) {
		return false
	}

	if q.Text != "" && !q.matchesText(e) {
		return false
	}

	if q.Identifier != "" && e.Identifier != q.Identifier {
		return false
	}

	if q.SiblingIndex != nil {
		if e.SiblingIndex == nil || *e.SiblingIndex != *q.SiblingIndex {
			return false
		}
	}

	if q.ParentRole != "" && e.ParentRole != NormalizeRole(q.ParentRole) {
		return false
	}

	return q.matchesSize(e)
}

// matchesText checks the title/description/value fallback chain for the
// query text, case-insensitive, optionally as an in-order subsequence.
func (q Query) matchesText(e *Element) bool {
	needle := strings.ToLower(q.Text)

	for _, candidate := range []string{e.Title, e.Description, e.Value} {
		if candidate == "" {
			continue
		}

		haystack := strings.ToLower(candidate)
		if strings.Contains(haystack, needle) {
			return true
		}

		if q.FuzzyMatch && isSubsequence(needle, haystack) {
			return true
		}
	}

	return false
}

func (q Query) matchesSize(e *Element) bool {
	if q.MinWidth > 0 && e.Size.Width < q.MinWidth {
		return false
	}

	if q.MaxWidth > 0 && e.Size.Width >= q.MaxWidth {
		return false
	}

	if q.MinHeight > 0 && e.Size.Height < q.MinHeight {
		return false
	}

	if q.MaxHeight > 0 && e.Size.Height >= q.MaxHeight {
		return false
	}

	return true
}

// isSubsequence reports whether needle's characters appear in order inside
// haystack, not necessarily contiguously.
func isSubsequence(needle, haystack string) bool {
	if needle == "" {
		return true
	}

	needleRunes := []rune(needle)
	index := 0

	for _, r := range haystack {
		if r == needleRunes[index] {
			index++
			if index == len(needleRunes) {
				return true
			}
		}
	}

	return false
}

// SearchResult is the outcome of a query: the matched elements, the
// wall-clock duration, and the number of nodes visited.
type SearchResult struct {
	Elements      []*Element `json:"elements"`
	DurationMS    int64      `json:"duration_ms"`
	SearchedCount int        `json:"searched_count"`
}
