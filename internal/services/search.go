package services

import (
	"context"
	"time"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// Searcher filters the traversal stream into search results.
type Searcher struct {
	walker   *Walker
	client   ports.AccessibilityClient
	analyzer *VisibilityAnalyzer
	logger   *zap.Logger
}

// NewSearcher creates the query engine.
func NewSearcher(
	walker *Walker,
	client ports.AccessibilityClient,
	analyzer *VisibilityAnalyzer,
	logger *zap.Logger,
) *Searcher {
	return &Searcher{
		walker:   walker,
		client:   client,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Find runs a query across its application scope and returns the matched
// elements with the wall-clock duration and visited-node count.
//
// A query naming an application that is not running yields an empty result,
// not an error. A missing accessibility grant is an error: every operation
// fails fast rather than emulating.
func (s *Searcher) Find(ctx context.Context, query element.Query) (*element.SearchResult, error) {
	if !s.client.Trusted(false) {
		return nil, derrors.PermissionDenied("accessibility")
	}

	start := time.Now()

	// Normalize once so Matches compares canonical forms.
	query.Role = element.NormalizeRole(query.Role)
	query.ParentRole = element.NormalizeRole(query.ParentRole)

	var roots []element.UIElement
	if query.Application != "" {
		if root := s.walker.ApplicationElement(query.Application); root != nil {
			roots = append(roots, root)
		}
	} else {
		roots = s.walker.AllApplicationElements()
	}

	result := &element.SearchResult{Elements: []*element.Element{}}

	for _, root := range roots {
		if ctx.Err() != nil {
			break
		}

		visited := s.walker.Traverse(root, query.MaxDepth, func(e *element.Element) bool {
			if !query.Matches(e) {
				return true
			}

			result.Elements = append(result.Elements, e)

			// Limit reached: instruct the walker to stop descending.
			return query.Limit <= 0 || len(result.Elements) < query.Limit
		})

		result.SearchedCount += visited

		if query.Limit > 0 && len(result.Elements) >= query.Limit {
			break
		}
	}

	s.analyzer.AnnotateAll(result.Elements)

	result.DurationMS = time.Since(start).Milliseconds()

	s.logger.Debug("Search completed",
		zap.Int("matches", len(result.Elements)),
		zap.Int("searched", result.SearchedCount),
		zap.Int64("duration_ms", result.DurationMS))

	return result, nil
}

// FindByReference decodes a serialized element reference and re-runs it.
// The positional tier filters candidates by proximity to the grid anchor.
func (s *Searcher) FindByReference(
	ctx context.Context,
	ref string,
	application string,
) (*element.SearchResult, error) {
	decoded, err := element.DecodeReference(ref)
	if err != nil {
		return nil, err
	}

	query := decoded.Query
	if query.Application == "" {
		query.Application = application
	}

	result, findErr := s.Find(ctx, query)
	if findErr != nil {
		return nil, findErr
	}

	if decoded.Anchor != nil {
		result.Elements = nearestToAnchor(result.Elements, *decoded.Anchor)
	}

	return result, nil
}

// nearestToAnchor orders by squared distance to the anchor and keeps the
// closest candidate.
func nearestToAnchor(elements []*element.Element, anchor element.Point) []*element.Element {
	if len(elements) == 0 {
		return elements
	}

	best := elements[0]
	bestDistance := squaredDistance(best.Position, anchor)

	for _, candidate := range elements[1:] {
		if d := squaredDistance(candidate.Position, anchor); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}

	return []*element.Element{best}
}

func squaredDistance(a, b element.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}
