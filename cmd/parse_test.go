// Package cmd provides CLI commands for the restyle engine.
// This file contains tests for the parse command and shared output helpers.
package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/restyle/core/style"
)

// withPlainOutput disables ANSI output for deterministic string assertions.
func withPlainOutput(t *testing.T) {
	t.Helper()
	prev := useColor
	useColor = false
	t.Cleanup(func() { useColor = prev })
}

func TestParseCmd_Definition(t *testing.T) {
	t.Run("command is defined", func(t *testing.T) {
		assert.NotNil(t, parseCmd)
		assert.Equal(t, "parse <instruction>", parseCmd.Use)
		assert.Equal(t, "Interpret a styling instruction", parseCmd.Short)
	})

	t.Run("command has flags", func(t *testing.T) {
		flags := parseCmd.Flags()

		snapshot := flags.Lookup("snapshot")
		require.NotNil(t, snapshot)
		assert.Equal(t, "", snapshot.DefValue)

		currentSize := flags.Lookup("current-size")
		require.NotNil(t, currentSize)
		assert.Equal(t, "0", currentSize.DefValue)

		jsonFlag := flags.Lookup("json")
		require.NotNil(t, jsonFlag)
		assert.Equal(t, "false", jsonFlag.DefValue)
	})

	t.Run("requires at least one argument", func(t *testing.T) {
		err := cobra.MinimumNArgs(1)(parseCmd, []string{})
		assert.Error(t, err)

		err = cobra.MinimumNArgs(1)(parseCmd, []string{"make it blue"})
		assert.NoError(t, err)
	})
}

func TestSnapshotFromFlags(t *testing.T) {
	t.Run("empty flags yield empty snapshot", func(t *testing.T) {
		snapshot, err := snapshotFromFlags("", 0)
		require.NoError(t, err)
		assert.Equal(t, style.Snapshot{}, snapshot)
	})

	t.Run("snapshot json is decoded", func(t *testing.T) {
		snapshot, err := snapshotFromFlags(`{"fontSize":18,"marginTop":8}`, 0)
		require.NoError(t, err)
		assert.Equal(t, 18.0, snapshot.FontSize)
		require.NotNil(t, snapshot.MarginTop)
		assert.Equal(t, 8.0, *snapshot.MarginTop)
	})

	t.Run("current size wins over snapshot", func(t *testing.T) {
		snapshot, err := snapshotFromFlags(`{"fontSize":18}`, 24)
		require.NoError(t, err)
		assert.Equal(t, 24.0, snapshot.FontSize)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		_, err := snapshotFromFlags(`{"fontSize":`, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing snapshot")
	})
}

func TestChangeSetLines(t *testing.T) {
	t.Run("empty set has no lines", func(t *testing.T) {
		assert.Empty(t, changeSetLines(style.ChangeSet{Confidence: 1.0}))
	})

	t.Run("set fields render in declaration order", func(t *testing.T) {
		set := style.ChangeSet{
			Color:      "#0000ff",
			FontSize:   20,
			FontWeight: 700,
			MarginTop:  style.Float(0),
			Width:      "100%",
			Confidence: 1.0,
		}

		lines := changeSetLines(set)
		require.Len(t, lines, 5)
		assert.Equal(t, fieldLine{name: "color", value: "#0000ff"}, lines[0])
		assert.Equal(t, fieldLine{name: "fontSize", value: "20px"}, lines[1])
		assert.Equal(t, fieldLine{name: "fontWeight", value: "700"}, lines[2])
		assert.Equal(t, fieldLine{name: "marginTop", value: "0px"}, lines[3])
		assert.Equal(t, fieldLine{name: "width", value: "100%"}, lines[4])
	})
}

func TestFormatConfidence(t *testing.T) {
	t.Run("plain output", func(t *testing.T) {
		withPlainOutput(t)
		assert.Equal(t, "1.00", formatConfidence(1.0))
		assert.Equal(t, "0.85", formatConfidence(0.85))
		assert.Equal(t, "0.50", formatConfidence(0.5))
	})

	t.Run("colored output grades by confidence", func(t *testing.T) {
		prev := useColor
		useColor = true
		defer func() { useColor = prev }()

		assert.True(t, strings.HasPrefix(formatConfidence(0.95), colorGreen))
		assert.True(t, strings.HasPrefix(formatConfidence(0.85), colorYellow))
		assert.True(t, strings.HasPrefix(formatConfidence(0.3), colorRed))
	})
}

func TestOutputChangeSet(t *testing.T) {
	withPlainOutput(t)

	t.Run("renders resolved fields", func(t *testing.T) {
		var buf bytes.Buffer
		set := style.ChangeSet{Color: "#0000ff", FontSize: 20, Confidence: 1.0}

		require.NoError(t, outputChangeSet(&buf, "make it blue and a bit bigger", set))

		out := buf.String()
		assert.Contains(t, out, "Interpreted Changes")
		assert.Contains(t, out, "make it blue and a bit bigger")
		assert.Contains(t, out, "color: #0000ff")
		assert.Contains(t, out, "fontSize: 20px")
	})

	t.Run("reports empty sets", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, outputChangeSet(&buf, "do the hokey pokey", style.ChangeSet{}))
		assert.Contains(t, buf.String(), "No style changes recognized.")
	})
}

func TestRunParseJSON(t *testing.T) {
	defer func() {
		parseSnapshotJSON = ""
		parseCurrentSize = 0
		parseJSON = false
	}()

	parseSnapshotJSON = `{"fontSize":16}`
	parseJSON = true

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runParse(cmd, []string{"make", "it", "blue", "and", "a", "bit", "bigger"}))

	var set style.ChangeSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &set))
	assert.Equal(t, "#0000ff", set.Color)
	assert.Equal(t, 20.0, set.FontSize)
	assert.Equal(t, 1.0, set.Confidence)
}
