package cli

import (
	"github.com/saucesteals/silk/internal/cli/cliutil"
	"github.com/spf13/cobra"
)

var findFlags queryFlags

// FindCmd searches the accessibility forest.
var FindCmd = &cobra.Command{
	Use:   "find",
	Short: "Find UI elements by text, role, identifier and more",
	Long: `Search the accessibility forest for elements matching the query and
print the matches with their stable @references, visibility and scroll
container annotations.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		eng, err := newEngine()
		if err != nil {
			return err
		}

		if findFlags.ref != "" {
			result, findErr := eng.searcher.FindByReference(
				cmd.Context(),
				findFlags.ref,
				findFlags.application,
			)
			if findErr != nil {
				return findErr
			}

			return cliutil.PrintJSON(result)
		}

		query, queryErr := findFlags.query()
		if queryErr != nil {
			return queryErr
		}

		result, findErr := eng.searcher.Find(cmd.Context(), query)
		if findErr != nil {
			return findErr
		}

		return cliutil.PrintJSON(result)
	},
}

func init() {
	findFlags.register(FindCmd)
	RootCmd.AddCommand(FindCmd)
}
