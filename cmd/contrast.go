package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adalundhe/restyle/core/interpret"
)

var contrastJSON bool

var contrastCmd = &cobra.Command{
	Use:   "contrast <text>",
	Short: "Triage contrast and readability phrasing",
	Long: `Classify a readability complaint and print the advisory contrast action.
The advisory never becomes a change-set; it tells the caller what kind of
contrast work the text is asking for.

Examples:
  restyle contrast "this text is hard to read"
  restyle contrast "improve the contrast" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runContrast,
}

func init() {
	rootCmd.AddCommand(contrastCmd)

	contrastCmd.Flags().BoolVar(&contrastJSON, "json", false, "Output the advisory as JSON")
}

// contrastOutput is the JSON output structure.
type contrastOutput struct {
	Text            string  `json:"text"`
	Action          string  `json:"action"`
	BackgroundDelta float64 `json:"backgroundDelta,omitempty"`
	ForegroundDelta float64 `json:"foregroundDelta,omitempty"`
	Confidence      float64 `json:"confidence"`
}

func runContrast(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	result := interpret.New().Contrast().Parse(text)

	if contrastJSON {
		return printJSON(cmd.OutOrStdout(), contrastOutput{
			Text:            text,
			Action:          result.Action.String(),
			BackgroundDelta: result.BackgroundDelta,
			ForegroundDelta: result.ForegroundDelta,
			Confidence:      result.Confidence,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s\n", colorize(colorBold+colorCyan, "Contrast Advisory"))
	fmt.Fprintf(w, "%s %s\n", colorize(colorGray, "Text:"), text)
	fmt.Fprintf(w, "%s %s\n", colorize(colorGray, "Action:"), result.Action)
	fmt.Fprintf(w, "%s %s\n", colorize(colorGray, "Confidence:"), formatConfidence(result.Confidence))

	if result.BackgroundDelta != 0 || result.ForegroundDelta != 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s %+g (lighten background)\n", colorize(colorGray, "backgroundDelta:"), result.BackgroundDelta)
		fmt.Fprintf(w, "  %s %+g (darken foreground)\n", colorize(colorGray, "foregroundDelta:"), result.ForegroundDelta)
	}
	return nil
}
