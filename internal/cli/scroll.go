package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/services"
	"github.com/spf13/cobra"
)

var (
	scrollFlags     queryFlags
	scrollDirection string
	scrollPages     float64
	scrollPixels    int
	scrollAt        string
	scrollToTarget  bool
)

// ScrollCmd scrolls at a point or brings an element into view.
var ScrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Scroll at a point or scroll an element into view",
	Long: `Two modes. With --to, the queried element is scrolled fully into its
container's viewport. Otherwise the pointer moves to --at (or to the scroll
container of the queried element) and posts one scroll of --pages or
--pixels in --direction.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		if scrollToTarget {
			target, resolveErr := scrollFlags.resolveOne(cmd.Context(), eng)
			if resolveErr != nil {
				return resolveErr
			}

			result, _, scrollErr := eng.scroller.ScrollIntoView(cmd.Context(), target)
			if scrollErr != nil {
				return scrollErr
			}

			return cliutil.PrintJSON(result)
		}

		opts := services.ScrollHereOptions{
			Direction: element.ScrollDirection(scrollDirection),
			Pages:     scrollPages,
			Pixels:    scrollPixels,
		}

		switch {
		case scrollAt != "":
			x, y, parseErr := cliutil.ParsePoint(scrollAt)
			if parseErr != nil {
				return parseErr
			}

			opts.Target = &element.Point{X: x, Y: y}

		default:
			query, queryErr := scrollFlags.query()
			if queryErr != nil {
				return derrors.New(
					derrors.CodeInvalidInput,
					"scroll needs --at x,y or an element query",
				)
			}

			opts.TargetQuery = &query
		}

		result, scrollErr := eng.actions.ScrollHere(cmd.Context(), eng.searcher, opts)
		if scrollErr != nil {
			return scrollErr
		}

		return cliutil.PrintJSON(result)
	},
}

func init() {
	scrollFlags.register(ScrollCmd)
	ScrollCmd.Flags().StringVarP(&scrollDirection, "direction", "d", "down", "Scroll direction: up, down, left, right")
	ScrollCmd.Flags().Float64Var(&scrollPages, "pages", 1, "Pages of the viewport to scroll")
	ScrollCmd.Flags().IntVar(&scrollPixels, "pixels", 0, "Explicit scroll distance in pixels")
	ScrollCmd.Flags().StringVar(&scrollAt, "at", "", "Literal x,y coordinate to scroll at")
	ScrollCmd.Flags().BoolVar(&scrollToTarget, "to", false, "Scroll the queried element into view instead")
	RootCmd.AddCommand(ScrollCmd)
}
