package cli

import (
	"time"

	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/services"
	"github.com/spf13/cobra"
)

var (
	dragFrom     string
	dragTo       string
	dragMode     string
	dragDuration time.Duration
)

// DragCmd drags the pointer between two points.
var DragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Drag from one point to another",
	Long: `Press at --from, travel to --to, and release. The travel is a single
drag event, a ~60Hz linear interpolation over --duration, or a humanized
trajectory, per --mode.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fromX, fromY, err := cliutil.ParsePoint(dragFrom)
		if err != nil {
			return err
		}

		toX, toY, err := cliutil.ParsePoint(dragTo)
		if err != nil {
			return err
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		from := element.Point{X: fromX, Y: fromY}
		to := element.Point{X: toX, Y: toY}

		if err := eng.actions.Drag(cmd.Context(), from, to, services.DragOptions{
			Mode:     services.DragMode(dragMode),
			Duration: dragDuration,
		}); err != nil {
			return err
		}

		return cliutil.PrintJSON(map[string]any{
			"from": from,
			"to":   to,
			"mode": dragMode,
		})
	},
}

func init() {
	DragCmd.Flags().StringVar(&dragFrom, "from", "", "Source x,y coordinate")
	DragCmd.Flags().StringVar(&dragTo, "to", "", "Destination x,y coordinate")
	DragCmd.Flags().StringVar(&dragMode, "mode", "interpolated", "Travel mode: direct, interpolated or humanized")
	DragCmd.Flags().DurationVar(&dragDuration, "duration", 500*time.Millisecond, "Interpolated drag duration")
	_ = DragCmd.MarkFlagRequired("from")
	_ = DragCmd.MarkFlagRequired("to")
	RootCmd.AddCommand(DragCmd)
}
