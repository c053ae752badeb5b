package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/restyle/core/tools"
)

var (
	propertyCurrent float64
	propertyJSON    bool
)

var propertyCmd = &cobra.Command{
	Use:   "property <element-id> <property> <value>",
	Short: "Set a single style property",
	Long: `Set one style property on an element. The value may be a literal
("#0071e3", "18px") or natural language ("ocean blue", "a bit bigger").

Examples:
  restyle property hero-1 color "ocean blue"
  restyle property hero-1 fontSize bigger --current 16
  restyle property cta-2 paddingTop "more space" --current 12
  restyle property hero-1 width full --json`,
	Args: cobra.MinimumNArgs(3),
	RunE: runProperty,
}

func init() {
	rootCmd.AddCommand(propertyCmd)

	propertyCmd.Flags().Float64Var(&propertyCurrent, "current", 0, "Current numeric value of the property, the baseline for relative phrases")
	propertyCmd.Flags().BoolVar(&propertyJSON, "json", false, "Output the result as JSON")
}

func runProperty(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	toolkit, cleanup, err := buildToolkit(cfg, newLogger(cfg))
	if err != nil {
		return err
	}
	defer cleanup()

	value := strings.Join(args[2:], " ")
	result := toolkit.EditProperty(args[0], args[1], value, propertyCurrent)

	if propertyJSON {
		return printJSON(cmd.OutOrStdout(), result)
	}
	return outputToolResult(cmd.OutOrStdout(), result)
}

// outputToolResult prints the uniform operation result in terminal form.
// A refused instruction is a reported outcome, not a command error.
func outputToolResult(w io.Writer, result tools.ToolResult) error {
	if !result.Success {
		fmt.Fprintf(w, "%s %s\n", colorize(colorRed, "✗"), result.Message)
		return nil
	}

	fmt.Fprintf(w, "%s %s\n", colorize(colorGreen, "✓"), result.Message)
	fmt.Fprintf(w, "  %s %s\n", colorize(colorGray, "element:"), result.ElementID)

	lines := changeSetLines(result.Changes)
	if len(lines) > 0 {
		fmt.Fprintf(w, "  %s %s\n", colorize(colorGray, "confidence:"), formatConfidence(result.Changes.Confidence))
	}
	for _, line := range lines {
		fmt.Fprintf(w, "  %s %s\n", colorize(colorGray, line.name+":"), line.value)
	}

	if len(result.Suggestions) > 0 {
		fmt.Fprintln(w)
		for i, suggestion := range result.Suggestions {
			fmt.Fprintf(w, "  %s %s\n", colorize(colorYellow, fmt.Sprintf("%d.", i+1)), suggestion)
		}
	}
	return nil
}
