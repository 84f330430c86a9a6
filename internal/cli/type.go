package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/saucesteals/silk/internal/config"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/services"
	"github.com/spf13/cobra"
)

var (
	typeFlags     queryFlags
	typePaste     bool
	typeSkipClick bool
)

// TypeCmd types text into a queried element.
var TypeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Type text into an element",
	Long: `Focus the element and write the text: first through the value
attribute, then as keystrokes with human pacing (or through the pasteboard
with --paste).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return derrors.New(derrors.CodeInvalidInput, "text cannot be empty")
		}

		eng, err := newEngine()
		if err != nil {
			return err
		}

		target, err := typeFlags.resolveOne(cmd.Context(), eng)
		if err != nil {
			return err
		}

		restore := true
		if cfg := config.Global(); cfg != nil {
			restore = cfg.Type.RestorePasteboard
		}

		if err := eng.actions.Type(cmd.Context(), target, args[0], services.TypeOptions{
			Paste:           typePaste,
			SkipClick:       typeSkipClick,
			ClearPasteboard: !restore,
		}); err != nil {
			return err
		}

		return cliutil.PrintJSON(map[string]any{
			"typed": len(args[0]),
			"ref":   target.Ref,
		})
	},
}

func init() {
	typeFlags.register(TypeCmd)
	TypeCmd.Flags().BoolVar(&typePaste, "paste", false, "Paste through the pasteboard instead of keystrokes")
	TypeCmd.Flags().BoolVar(&typeSkipClick, "no-click", false, "Assume the element already has focus")
	RootCmd.AddCommand(TypeCmd)
}
