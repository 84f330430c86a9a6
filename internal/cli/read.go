package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/spf13/cobra"
)

var readFlags queryFlags

// ReadCmd reads an element's textual content.
var ReadCmd = &cobra.Command{
	Use:   "read",
	Short: "Read an element's value, title or description",
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		target, err := readFlags.resolveOne(cmd.Context(), eng)
		if err != nil {
			return err
		}

		return cliutil.PrintJSON(map[string]any{
			"text": eng.actions.Read(cmd.Context(), target),
			"ref":  target.Ref,
		})
	},
}

func init() {
	readFlags.register(ReadCmd)
	RootCmd.AddCommand(ReadCmd)
}
