package services

import (
	"context"
	"testing"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
)

func TestFindNoMatchesIsNotAnError(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	result, err := f.searcher.Find(context.Background(), element.Query{
		Text:        "NonExistentLabel",
		Role:        "AXButton",
		Application: "SomeApp",
		FuzzyMatch:  true,
		Limit:       1,
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(result.Elements) != 0 {
		t.Errorf("Elements = %d, expected none", len(result.Elements))
	}

	if result.SearchedCount <= 0 {
		t.Errorf("SearchedCount = %d, expected > 0", result.SearchedCount)
	}

	if result.DurationMS < 0 {
		t.Errorf("DurationMS = %d, expected >= 0", result.DurationMS)
	}
}

func TestFindRequiresTrust(t *testing.T) {
	f := newFixture()
	f.client.TrustedFunc = func(bool) bool { return false }

	_, err := f.searcher.Find(context.Background(), element.Query{Role: "Button"})

	if !derrors.IsCode(err, derrors.CodePermissionDenied) {
		t.Fatalf("expected PERMISSION_DENIED, got %v", err)
	}
}

func TestFindUnknownApplicationYieldsEmpty(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	result, err := f.searcher.Find(context.Background(), element.Query{
		Role:        "Button",
		Application: "NotRunning",
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(result.Elements) != 0 || result.SearchedCount != 0 {
		t.Errorf("expected an empty result for a non-running application, got %+v", result)
	}
}

func TestFindMatchesSatisfyQuery(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	query := element.Query{Role: "Button", Application: "SomeApp"}

	result, err := f.searcher.Find(context.Background(), query)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if len(result.Elements) != 2 {
		t.Fatalf("Elements = %d, expected both buttons", len(result.Elements))
	}

	normalized := query
	normalized.Role = element.NormalizeRole(query.Role)

	for _, e := range result.Elements {
		if !normalized.Matches(e) {
			t.Errorf("returned element %q does not satisfy the query", e.Label())
		}

		if e.Visibility == nil {
			t.Errorf("returned element %q has no visibility annotation", e.Label())
		}
	}
}

func TestFindLimitStopsTraversal(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	unlimited, err := f.searcher.Find(context.Background(), element.Query{
		Role:        "Button",
		Application: "SomeApp",
	})
	if err != nil {
		t.Fatal(err)
	}

	limited, err := f.searcher.Find(context.Background(), element.Query{
		Role:        "Button",
		Application: "SomeApp",
		Limit:       1,
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(limited.Elements) != 1 {
		t.Fatalf("limited Elements = %d, expected 1", len(limited.Elements))
	}

	if limited.SearchedCount >= unlimited.SearchedCount {
		t.Errorf("limit=1 visited %d nodes, unlimited visited %d; traversal should stop early",
			limited.SearchedCount, unlimited.SearchedCount)
	}
}

func TestFindSearchesAllApplicationsByDefault(t *testing.T) {
	f := newFixture()

	first, _, _, _, _, _ := standardApp()
	second, _, _, _, _, _ := standardApp()

	f.installApp(42, "First", first)
	f.installApp(43, "Second", second)

	result, err := f.searcher.Find(context.Background(), element.Query{Role: "Button"})
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Elements) != 4 {
		t.Errorf("Elements = %d, expected buttons from both applications", len(result.Elements))
	}
}

func TestFindByReferenceStructural(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	// The cancel button: sibling 1 under the toolbar.
	result, err := f.searcher.FindByReference(
		context.Background(),
		"@ref:Button-1-Toolbar",
		"SomeApp",
	)
	if err != nil {
		t.Fatalf("FindByReference failed: %v", err)
	}

	if len(result.Elements) == 0 {
		t.Fatal("structural reference found nothing")
	}

	if result.Elements[0].Title != "Cancel" {
		t.Errorf("resolved %q, expected the Cancel button", result.Elements[0].Title)
	}
}

func TestFindByReferenceIdentifier(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	result, err := f.searcher.FindByReference(
		context.Background(),
		"@id:search-field",
		"SomeApp",
	)
	if err != nil {
		t.Fatalf("FindByReference failed: %v", err)
	}

	if len(result.Elements) != 1 {
		t.Fatalf("Elements = %d, expected exactly 1", len(result.Elements))
	}

	if result.Elements[0].Role != "AXTextField" {
		t.Errorf("resolved role %q, expected AXTextField", result.Elements[0].Role)
	}
}

func TestFindByReferencePositionalPicksNearest(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	// Grid (2,1) decodes to anchor (100,50): the save button, not cancel.
	result, err := f.searcher.FindByReference(
		context.Background(),
		"@pos:Button-2-1",
		"SomeApp",
	)
	if err != nil {
		t.Fatalf("FindByReference failed: %v", err)
	}

	if len(result.Elements) != 1 {
		t.Fatalf("Elements = %d, expected the single nearest candidate", len(result.Elements))
	}

	if result.Elements[0].Title != "Save Document" {
		t.Errorf("resolved %q, expected the save button", result.Elements[0].Title)
	}
}

func TestEncodedReferenceRoundTripsThroughSearch(t *testing.T) {
	f := newFixture()
	app, _, _, _, _, _ := standardApp()
	f.installApp(42, "SomeApp", app)

	target := f.findOne(app, element.Query{Text: "Cancel"})
	if target == nil {
		t.Fatal("fixture should contain the cancel button")
	}

	result, err := f.searcher.FindByReference(context.Background(), target.Ref, "SomeApp")
	if err != nil {
		t.Fatalf("FindByReference failed: %v", err)
	}

	if len(result.Elements) == 0 {
		t.Fatal("re-finding by the element's own reference failed")
	}

	if result.Elements[0].Title != target.Title {
		t.Errorf("re-found %q, expected %q", result.Elements[0].Title, target.Title)
	}
}
