// Package cmd provides CLI commands for the restyle engine.
// This file implements the parse command for inspecting how the engine
// interprets an instruction, plus the shared terminal output helpers.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/adalundhe/restyle/core/interpret"
	"github.com/adalundhe/restyle/core/style"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// useColor enables ANSI output only when stdout is a terminal.
var useColor = term.IsTerminal(int(os.Stdout.Fd()))

// =============================================================================
// Parse Command
// =============================================================================

var (
	parseSnapshotJSON string
	parseCurrentSize  float64
	parseJSON         bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <instruction>",
	Short: "Interpret a styling instruction",
	Long: `Interpret a free-form styling instruction and print the change-set it
resolves to, with the aggregate confidence.

Examples:
  restyle parse "make it blue and a bit bigger"
  restyle parse --current-size 18 "much bigger"
  restyle parse --snapshot '{"fontSize":16,"marginTop":8}' "more space above"
  restyle parse --json "double the size" | jq '.confidence'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVar(&parseSnapshotJSON, "snapshot", "", "Current element styles as JSON")
	parseCmd.Flags().Float64Var(&parseCurrentSize, "current-size", 0, "Current font size in px (shorthand for a fontSize-only snapshot)")
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Output the change-set as JSON")
}

func runParse(cmd *cobra.Command, args []string) error {
	instruction := strings.Join(args, " ")

	snapshot, err := snapshotFromFlags(parseSnapshotJSON, parseCurrentSize)
	if err != nil {
		return err
	}

	set := interpret.New().ParseChanges(instruction, snapshot)

	if parseJSON {
		return printJSON(cmd.OutOrStdout(), set)
	}
	return outputChangeSet(cmd.OutOrStdout(), instruction, set)
}

// snapshotFromFlags builds the element snapshot from the --snapshot JSON
// and the --current-size shorthand, which wins for fontSize.
func snapshotFromFlags(snapshotJSON string, currentSize float64) (style.Snapshot, error) {
	var snapshot style.Snapshot
	if snapshotJSON != "" {
		if err := json.Unmarshal([]byte(snapshotJSON), &snapshot); err != nil {
			return style.Snapshot{}, fmt.Errorf("parsing snapshot: %w", err)
		}
	}
	if currentSize > 0 {
		snapshot.FontSize = currentSize
	}
	return snapshot, nil
}

// =============================================================================
// Output Formatting
// =============================================================================

func outputChangeSet(w io.Writer, instruction string, set style.ChangeSet) error {
	fmt.Fprintf(w, "%s\n", colorize(colorBold+colorCyan, "Interpreted Changes"))
	fmt.Fprintf(w, "%s %s\n", colorize(colorGray, "Instruction:"), instruction)
	fmt.Fprintf(w, "%s  %s\n", colorize(colorGray, "Confidence:"), formatConfidence(set.Confidence))
	fmt.Fprintln(w)

	lines := changeSetLines(set)
	if len(lines) == 0 {
		fmt.Fprintf(w, "%s\n", colorize(colorYellow, "No style changes recognized."))
		return nil
	}
	for _, line := range lines {
		fmt.Fprintf(w, "  %s %s\n", colorize(colorGray, line.name+":"), line.value)
	}
	return nil
}

// fieldLine is one resolved field of a change-set, formatted for display.
type fieldLine struct {
	name  string
	value string
}

func changeSetLines(set style.ChangeSet) []fieldLine {
	var lines []fieldLine
	add := func(name, value string) {
		lines = append(lines, fieldLine{name: name, value: value})
	}
	addPx := func(name string, v *float64) {
		if v != nil {
			add(name, fmt.Sprintf("%gpx", *v))
		}
	}

	if set.Color != "" {
		add("color", set.Color)
	}
	if set.BackgroundColor != "" {
		add("backgroundColor", set.BackgroundColor)
	}
	if set.FontSize != 0 {
		add("fontSize", fmt.Sprintf("%gpx", set.FontSize))
	}
	if set.FontFamily != "" {
		add("fontFamily", set.FontFamily)
	}
	if set.FontWeight != 0 {
		add("fontWeight", strconv.Itoa(set.FontWeight))
	}
	if set.LineHeight != 0 {
		add("lineHeight", fmt.Sprintf("%g", set.LineHeight))
	}
	addPx("marginTop", set.MarginTop)
	addPx("marginBottom", set.MarginBottom)
	addPx("marginLeft", set.MarginLeft)
	addPx("marginRight", set.MarginRight)
	addPx("paddingTop", set.PaddingTop)
	addPx("paddingBottom", set.PaddingBottom)
	addPx("paddingLeft", set.PaddingLeft)
	addPx("paddingRight", set.PaddingRight)
	if set.Width != "" {
		add("width", set.Width)
	}
	if set.Height != "" {
		add("height", set.Height)
	}
	return lines
}

func formatConfidence(conf float64) string {
	text := fmt.Sprintf("%.2f", conf)
	switch {
	case conf >= 0.9:
		return colorize(colorGreen, text)
	case conf > 0.7:
		return colorize(colorYellow, text)
	default:
		return colorize(colorRed, text)
	}
}

func colorize(code, s string) string {
	if !useColor {
		return s
	}
	return code + s + colorReset
}

func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
