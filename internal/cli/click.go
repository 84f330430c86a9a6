package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/saucesteals/silk/internal/ports"
	"github.com/saucesteals/silk/internal/services"
	"github.com/spf13/cobra"
)

var (
	clickFlags        queryFlags
	clickButton       string
	clickWarp         bool
	clickNoAutoScroll bool
)

// ClickCmd clicks a queried element.
var ClickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click an element",
	Long: `Resolve the query to one element, scroll it into view if needed,
move the pointer along a humanized trajectory, and click its center.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		target, err := clickFlags.resolveOne(cmd.Context(), eng)
		if err != nil {
			return err
		}

		button := ports.MouseButtonLeft
		switch clickButton {
		case "right":
			button = ports.MouseButtonRight
		case "center":
			button = ports.MouseButtonCenter
		}

		clicked, err := eng.actions.Click(cmd.Context(), target, services.ClickOptions{
			Button:       button,
			Warp:         clickWarp,
			NoAutoScroll: clickNoAutoScroll,
		})
		if err != nil {
			return err
		}

		return cliutil.PrintJSON(clicked)
	},
}

func init() {
	clickFlags.register(ClickCmd)
	ClickCmd.Flags().StringVar(&clickButton, "button", "left", "Mouse button: left, right or center")
	ClickCmd.Flags().BoolVar(&clickWarp, "warp", false, "Jump the pointer instead of moving it humanly")
	ClickCmd.Flags().BoolVar(&clickNoAutoScroll, "no-auto-scroll", false, "Click off-screen targets where they are instead of scrolling them into view")
	RootCmd.AddCommand(ClickCmd)
}
