package mcp

import (
	"time"

	"github.com/adalundhe/restyle/core/presets"
	"github.com/adalundhe/restyle/core/style"
	"github.com/adalundhe/restyle/core/tools"
)

// EditPropertyInput is the MCP tool input for edit_property.
type EditPropertyInput struct {
	ElementID string  `json:"element_id" jsonschema:"ID of the element to edit"`
	Property  string  `json:"property" jsonschema:"style property to set, e.g. color or fontSize"`
	Value     string  `json:"value" jsonschema:"desired value, literal or natural language"`
	Current   float64 `json:"current,omitempty" jsonschema:"current numeric value of the property, the baseline for relative phrases"`
}

// EditMultiplePropertiesInput is the MCP tool input for edit_multiple_properties.
type EditMultiplePropertiesInput struct {
	ElementID   string         `json:"element_id" jsonschema:"ID of the element to edit"`
	Instruction string         `json:"instruction" jsonschema:"natural language description of the desired changes"`
	Snapshot    style.Snapshot `json:"snapshot,omitempty" jsonschema:"current computed styles; relative phrases resolve against these values"`
}

// ApplyStylePresetInput is the MCP tool input for apply_style_preset.
type ApplyStylePresetInput struct {
	ElementID string `json:"element_id" jsonschema:"ID of the element to style"`
	Preset    string `json:"preset" jsonschema:"preset name or a word describing the desired look"`
}

// SuggestImprovementsInput is the MCP tool input for suggest_improvements.
type SuggestImprovementsInput struct {
	ElementID string         `json:"element_id" jsonschema:"ID of the element to audit"`
	Snapshot  style.Snapshot `json:"snapshot" jsonschema:"current computed styles of the element"`
	Role      string         `json:"role,omitempty" jsonschema:"element role on the page: body or headline"`
}

// ToolOutput is the uniform MCP tool output. Change-set keys stay camelCase
// because they are CSS property names, not wire fields.
type ToolOutput struct {
	ID          string          `json:"id" jsonschema:"operation identifier"`
	ElementID   string          `json:"element_id" jsonschema:"element the operation targeted"`
	Success     bool            `json:"success" jsonschema:"whether the operation produced changes"`
	Changes     style.ChangeSet `json:"changes" jsonschema:"resolved style changes with confidence"`
	Message     string          `json:"message" jsonschema:"human-readable outcome"`
	Suggestions []string        `json:"suggestions,omitempty" jsonschema:"ordered follow-up suggestions"`
	DurationMS  float64         `json:"duration_ms" jsonschema:"operation duration in milliseconds"`
}

// PresetListPayload is the presets://list resource body.
type PresetListPayload struct {
	Presets []presets.Preset `json:"presets"`
}

func outputFrom(result tools.ToolResult) ToolOutput {
	return ToolOutput{
		ID:          result.ID,
		ElementID:   result.ElementID,
		Success:     result.Success,
		Changes:     result.Changes,
		Message:     result.Message,
		Suggestions: result.Suggestions,
		DurationMS:  float64(result.Duration) / float64(time.Millisecond),
	}
}
