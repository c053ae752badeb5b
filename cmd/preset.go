package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Style preset commands",
	Long:  `List the preset catalog and apply presets to elements.`,
}

var (
	presetListJSON  bool
	presetApplyJSON bool
)

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available style presets",
	Long: `List every preset the engine can apply, builtin and user-defined.

Examples:
  restyle preset list
  restyle preset list --json | jq '.[].name'`,
	RunE: runPresetList,
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <element-id> <name>",
	Short: "Apply a style preset to an element",
	Long: `Apply a preset by name or by a close synonym.

Examples:
  restyle preset apply hero-1 apple
  restyle preset apply card-4 "something sleek"
  restyle preset apply cta-2 bold --json`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPresetApply,
}

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)

	presetListCmd.Flags().BoolVar(&presetListJSON, "json", false, "Output the catalog as JSON")
	presetApplyCmd.Flags().BoolVar(&presetApplyJSON, "json", false, "Output the result as JSON")
}

func runPresetList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	toolkit, cleanup, err := buildToolkit(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	catalog := toolkit.Resolver().All()
	if presetListJSON {
		return printJSON(cmd.OutOrStdout(), catalog)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n\n", colorize(colorBold+colorCyan, "Style Presets"))
	for _, preset := range catalog {
		fmt.Fprintf(w, "  %s\n", colorize(colorBold, preset.Name))
		fmt.Fprintf(w, "    %s\n", colorize(colorGray, preset.Description))
	}
	return nil
}

func runPresetApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	toolkit, cleanup, err := buildToolkit(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	result := toolkit.ApplyStylePreset(args[0], strings.Join(args[1:], " "))

	if presetApplyJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}
	return outputToolResult(cmd.OutOrStdout(), result)
}
