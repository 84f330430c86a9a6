package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/spf13/cobra"
)

var (
	captureFlags queryFlags
	captureOut   string
)

// CaptureCmd screenshots an element's frame.
var CaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture an element's frame to a PNG",
	Long: `Resolve the query to one element and hand its frame to the screen
capture pipeline. Requires the screen-recording permission.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		target, err := captureFlags.resolveOne(cmd.Context(), eng)
		if err != nil {
			return err
		}

		path, err := eng.actions.Capture(cmd.Context(), target, captureOut)
		if err != nil {
			return err
		}

		return cliutil.PrintJSON(map[string]any{
			"path": path,
			"ref":  target.Ref,
		})
	},
}

func init() {
	captureFlags.register(CaptureCmd)
	CaptureCmd.Flags().StringVarP(&captureOut, "out", "o", "element.png", "Output PNG path")
	RootCmd.AddCommand(CaptureCmd)
}
