package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adalundhe/restyle/core/style"
)

var (
	suggestSnapshotJSON string
	suggestRole         string
	suggestJSON         bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <element-id>",
	Short: "Suggest styling improvements",
	Long: `Audit an element's current styles against readability heuristics and
print suggested fixes with a proposed change-set.

Examples:
  restyle suggest headline-1 --snapshot '{"fontSize":16,"lineHeight":1.0}' --role headline
  restyle suggest body-3 --snapshot '{"fontSize":13,"color":"#999999"}'
  restyle suggest headline-1 --snapshot '{"fontSize":32}' --role headline --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().StringVar(&suggestSnapshotJSON, "snapshot", "", "Current element styles as JSON")
	suggestCmd.Flags().StringVar(&suggestRole, "role", "body", "Element role on the page (body or headline)")
	suggestCmd.Flags().BoolVar(&suggestJSON, "json", false, "Output the result as JSON")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	toolkit, cleanup, err := buildToolkit(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	snapshot, err := snapshotFromFlags(suggestSnapshotJSON, 0)
	if err != nil {
		return err
	}

	result := toolkit.SuggestImprovements(args[0], snapshot, style.ParseRole(suggestRole))

	if suggestJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}
	return outputToolResult(cmd.OutOrStdout(), result)
}
