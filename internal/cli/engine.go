package cli

import (
	"context"
	"time"

	"github.com/saucesteals/silk/internal/config"
	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/domain/motion"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/infra/accessibility"
	"github.com/saucesteals/silk/internal/infra/input"
	"github.com/saucesteals/silk/internal/infra/logger"
	"github.com/saucesteals/silk/internal/infra/pasteboard"
	"github.com/saucesteals/silk/internal/infra/screen"
	"github.com/saucesteals/silk/internal/infra/workspace"
	"github.com/saucesteals/silk/internal/services"
	"github.com/spf13/cobra"
)

// engine bundles the wired element-engine services for one command run.
type engine struct {
	client   *accessibility.Client
	screen   *screen.Screen
	walker   *services.Walker
	searcher *services.Searcher
	actions  *services.ActionService
	scroller *services.ScrollService
}

// newEngine constructs the engine from the global config and live adapters.
// Every core operation requires the accessibility grant; fail fast with the
// recovery hint when it is missing.
func newEngine() (*engine, error) {
	cfg := config.Global()
	if cfg == nil {
		cfg = config.Default()
	}

	log := logger.Get()

	client := accessibility.NewClient(log)
	if !client.Trusted(cfg.General.AccessibilityPromptOnStart) {
		return nil, derrors.PermissionDenied("accessibility")
	}

	workspaceAPI := workspace.New(log)
	screenAPI := screen.New(log)
	dispatcher := input.NewSystemDispatcher(log)
	pasteboardAPI := pasteboard.New(log)

	walker := services.NewWalker(client, workspaceAPI, log)
	analyzer := services.NewVisibilityAnalyzer(screenAPI, log)
	searcher := services.NewSearcher(walker, client, analyzer, log)

	scroller := services.NewScrollService(walker, client, analyzer, dispatcher, log)
	scroller.SettleDelay = time.Duration(cfg.Scroll.SettleDelayMS) * time.Millisecond
	scroller.MaxAttempts = cfg.Scroll.MaxAttempts
	scroller.HardTimeout = time.Duration(cfg.Scroll.HardTimeoutMS) * time.Millisecond

	motionGen := motion.NewGenerator(motion.Params{
		Randomness:           cfg.Motion.Randomness,
		FittsA:               cfg.Motion.FittsA,
		FittsB:               cfg.Motion.FittsB,
		MinSteps:             cfg.Motion.MinSteps,
		MaxSteps:             cfg.Motion.MaxSteps,
		OvershootProbability: cfg.Motion.OvershootProbability,
	}, nil)

	params := services.ActionParams{
		ActivationSettle: time.Duration(cfg.Click.ActivationSettleMS) * time.Millisecond,
		DwellMin:         time.Duration(cfg.Click.DwellMinMS) * time.Millisecond,
		DwellMax:         time.Duration(cfg.Click.DwellMaxMS) * time.Millisecond,
		FocusSettle:      time.Duration(cfg.Type.FocusSettleMS) * time.Millisecond,
		ValueVerify:      time.Duration(cfg.Type.ValueVerifyMS) * time.Millisecond,
		KeyHoldMin:       time.Duration(cfg.Type.KeyHoldMinMS) * time.Millisecond,
		KeyHoldMax:       time.Duration(cfg.Type.KeyHoldMaxMS) * time.Millisecond,
		KeyDelayMin:      time.Duration(cfg.Type.KeyDelayMinMS) * time.Millisecond,
		KeyDelayMax:      time.Duration(cfg.Type.KeyDelayMaxMS) * time.Millisecond,
		DragHold:         50 * time.Millisecond,
		HumanizeMoves:    cfg.Motion.Humanize,
	}

	actions := services.NewActionService(
		client,
		workspaceAPI,
		screenAPI,
		dispatcher,
		analyzer,
		scroller,
		pasteboardAPI,
		motionGen,
		params,
		nil,
		log,
	)

	return &engine{
		client:   client,
		screen:   screenAPI,
		walker:   walker,
		searcher: searcher,
		actions:  actions,
		scroller: scroller,
	}, nil
}

// queryFlags are the element-query flags shared by every targeting command.
type queryFlags struct {
	text         string
	role         string
	application  string
	identifier   string
	siblingIndex int
	parentRole   string
	minWidth     int
	maxWidth     int
	minHeight    int
	maxHeight    int
	fuzzy        bool
	limit        int
	maxDepth     int
	ref          string
}

// register adds the query flags to a command.
func (f *queryFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&f.text, "text", "", "Match by visible text (title, description or value)")
	flags.StringVar(&f.role, "role", "", "Match by accessibility role (short names accepted)")
	flags.StringVar(&f.application, "app", "", "Restrict the search to a running application")
	flags.StringVar(&f.identifier, "id", "", "Match by accessibility identifier")
	flags.IntVar(&f.siblingIndex, "sibling-index", -1, "Match by position among siblings")
	flags.StringVar(&f.parentRole, "parent-role", "", "Match by the parent's role")
	flags.IntVar(&f.minWidth, "min-width", 0, "Minimum element width")
	flags.IntVar(&f.maxWidth, "max-width", 0, "Maximum element width (exclusive)")
	flags.IntVar(&f.minHeight, "min-height", 0, "Minimum element height")
	flags.IntVar(&f.maxHeight, "max-height", 0, "Maximum element height (exclusive)")
	flags.BoolVar(&f.fuzzy, "fuzzy", true, "Relax text matching to in-order subsequences")
	flags.IntVar(&f.limit, "limit", 0, "Stop after this many matches (0 = unlimited)")
	flags.IntVar(&f.maxDepth, "max-depth", 0, "Bound the traversal depth")
	flags.StringVar(&f.ref, "ref", "", "Re-find a previous result by its @reference")
}

// query builds the element query, rejecting predicate-free input here at
// the validation layer; the engine itself would return everything.
func (f *queryFlags) query() (element.Query, error) {
	query := element.Query{
		Text:        f.text,
		Role:        f.role,
		Application: f.application,
		Identifier:  f.identifier,
		ParentRole:  f.parentRole,
		MinWidth:    f.minWidth,
		MaxWidth:    f.maxWidth,
		MinHeight:   f.minHeight,
		MaxHeight:   f.maxHeight,
		FuzzyMatch:  f.fuzzy,
		Limit:       f.limit,
		MaxDepth:    f.maxDepth,
	}

	if f.siblingIndex >= 0 {
		index := f.siblingIndex
		query.SiblingIndex = &index
	}

	if query.IsEmpty() {
		return element.Query{}, derrors.New(
			derrors.CodeInvalidInput,
			"query needs at least one predicate (--text, --role, --id, ...)",
		)
	}

	return query, nil
}

// resolveOne finds the single element the flags describe, via the reference
// codec when --ref is given.
func (f *queryFlags) resolveOne(ctx context.Context, eng *engine) (*element.Element, error) {
	var result *element.SearchResult
	var err error

	if f.ref != "" {
		result, err = eng.searcher.FindByReference(ctx, f.ref, f.application)
	} else {
		var query element.Query
		query, err = f.query()
		if err != nil {
			return nil, err
		}

		if query.Limit == 0 {
			query.Limit = 1
		}

		result, err = eng.searcher.Find(ctx, query)
	}

	if err != nil {
		return nil, err
	}

	if len(result.Elements) == 0 {
		return nil, derrors.New(derrors.CodeElementNotFound, "no element matched the query")
	}

	return result.Elements[0], nil
}
