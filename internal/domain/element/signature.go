package element

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Signature digests the identifying attribute tuple of an element: role,
// label, identifier, parent role and sibling index. Two discoveries of the
// same logical element across a scroll produce equal signatures even though
// their handles differ. The scroll-into-view loop does not use it; its
// re-query matches by query fields and size instead.
func Signature(e *Element) uint64 {
	digest := xxhash.New()

	writeField(digest, e.Role)
	writeField(digest, e.Label())
	writeField(digest, e.Identifier)
	writeField(digest, e.ParentRole)

	if e.SiblingIndex != nil {
		writeField(digest, strconv.Itoa(*e.SiblingIndex))
	} else {
		writeField(digest, "")
	}

	return digest.Sum64()
}

func writeField(digest *xxhash.Digest, field string) {
	// Separator prevents ("ab","c") from colliding with ("a","bc").
	_, _ = digest.WriteString(field)
	_, _ = digest.WriteString("\x1f")
}
