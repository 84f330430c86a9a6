package element

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	derrors "github.com/saucesteals/silk/internal/errors"
)

// Reference tiers, tried in order when encoding.
const (
	refTierID  = "id"
	refTierRef = "ref"
	refTierPos = "pos"

	// refBoundaryPrefix marks a serialized reference at the public boundary.
	refBoundaryPrefix = "@"

	// refGridSize is the lattice the pos tier snaps coordinates to.
	refGridSize = 50

	// refStructuralLimit bounds structural-tier decoding; the engine picks
	// the first match.
	refStructuralLimit = 10
)

// Decoded is the result of decoding a reference: the query to re-run and,
// for the positional tier, the grid anchor callers may filter proximity by.
type Decoded struct {
	Query  Query
	Anchor *Point
}

// EncodeReference renders the most stable available identity for an element:
// its accessibility identifier, else its structural position, else its
// grid-snapped coordinate.
func EncodeReference(e *Element) string {
	if e.Identifier != "" {
		return refTierID + ":" + e.Identifier
	}

	if e.SiblingIndex != nil && e.ParentRole != "" {
		return fmt.Sprintf(
			"%s:%s-%d-%s",
			refTierRef,
			StripRolePrefix(e.Role),
			*e.SiblingIndex,
			StripRolePrefix(e.ParentRole),
		)
	}

	return fmt.Sprintf(
		"%s:%s-%d-%d",
		refTierPos,
		StripRolePrefix(e.Role),
		snapToGrid(e.Position.X),
		snapToGrid(e.Position.Y),
	)
}

// Ref renders the boundary form of an element reference, prefixed with "@".
func Ref(e *Element) string {
	return refBoundaryPrefix + EncodeReference(e)
}

// DecodeReference parses a serialized reference (with or without the "@"
// boundary prefix) into the query that re-finds the element.
func DecodeReference(ref string) (Decoded, error) {
	body := strings.TrimPrefix(ref, refBoundaryPrefix)

	tier, rest, found := strings.Cut(body, ":")
	if !found || rest == "" {
		return Decoded{}, derrors.Newf(
			derrors.CodeInvalidInput,
			"malformed element reference %q",
			ref,
		)
	}

	switch tier {
	case refTierID:
		return Decoded{Query: Query{Identifier: rest, Limit: 1}}, nil

	case refTierRef:
		role, index, parent, err := splitStructural(rest)
		if err != nil {
			return Decoded{}, derrors.Wrapf(
				err,
				derrors.CodeInvalidInput,
				"malformed structural reference %q",
				ref,
			)
		}

		return Decoded{Query: Query{
			Role:         NormalizeRole(role),
			SiblingIndex: &index,
			ParentRole:   NormalizeRole(parent),
			Limit:        refStructuralLimit,
		}}, nil

	case refTierPos:
		role, gridX, gridY, err := splitStructural(rest)
		if err != nil {
			return Decoded{}, derrors.Wrapf(
				err,
				derrors.CodeInvalidInput,
				"malformed positional reference %q",
				ref,
			)
		}

		parsedY, parseErr := strconv.Atoi(gridY)
		if parseErr != nil {
			return Decoded{}, derrors.Wrapf(
				parseErr,
				derrors.CodeInvalidInput,
				"malformed positional reference %q",
				ref,
			)
		}

		anchor := &Point{X: gridX * refGridSize, Y: parsedY * refGridSize}

		return Decoded{
			Query:  Query{Role: NormalizeRole(role)},
			Anchor: anchor,
		}, nil
	}

	return Decoded{}, derrors.Newf(
		derrors.CodeInvalidInput,
		"unknown reference tier in %q",
		ref,
	)
}

// splitStructural splits "<role>-<number>-<tail>" where role and tail carry
// no dashes in practice; the middle segment must parse as an integer.
func splitStructural(body string) (role string, middle int, tail string, err error) {
	first := strings.Index(body, "-")
	last := strings.LastIndex(body, "-")

	if first <= 0 || last <= first || last == len(body)-1 {
		return "", 0, "", fmt.Errorf("expected three dash-separated segments in %q", body)
	}

	middle, err = strconv.Atoi(body[first+1 : last])
	if err != nil {
		return "", 0, "", fmt.Errorf("middle segment of %q is not a number", body)
	}

	return body[:first], middle, body[last+1:], nil
}

// snapToGrid snaps a coordinate onto the reference lattice.
func snapToGrid(v int) int {
	return int(math.Round(float64(v) / float64(refGridSize)))
}
