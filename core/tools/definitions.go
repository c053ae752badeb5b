package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/adalundhe/restyle/core/style"
)

// Wire-level parameter structs for the four standard tools. Field names
// follow the page builder's camelCase convention.

// EditPropertyParams is the input for editProperty.
type EditPropertyParams struct {
	ElementID string  `json:"elementId"`
	Property  string  `json:"property"`
	Value     string  `json:"value"`
	Current   float64 `json:"current,omitempty"`
}

// EditMultiplePropertiesParams is the input for editMultipleProperties.
type EditMultiplePropertiesParams struct {
	ElementID   string         `json:"elementId"`
	Instruction string         `json:"instruction"`
	Snapshot    style.Snapshot `json:"snapshot"`
}

// ApplyStylePresetParams is the input for applyStylePreset.
type ApplyStylePresetParams struct {
	ElementID string `json:"elementId"`
	Preset    string `json:"preset"`
}

// SuggestImprovementsParams is the input for suggestImprovements.
type SuggestImprovementsParams struct {
	ElementID string         `json:"elementId"`
	Snapshot  style.Snapshot `json:"snapshot"`
	Role      string         `json:"role,omitempty"`
}

// DefaultRegistry builds the standard four-tool registry over a toolkit.
func DefaultRegistry(toolkit *Toolkit) *Registry {
	registry := NewRegistry()

	for _, tool := range []*Tool{
		editPropertyTool(toolkit),
		editMultiplePropertiesTool(toolkit),
		applyStylePresetTool(toolkit),
		suggestImprovementsTool(toolkit),
	} {
		_ = registry.Register(tool)
	}

	return registry
}

func editPropertyTool(toolkit *Toolkit) *Tool {
	return NewTool("editProperty").
		Description("Set a single style property on an element. The value may be literal or natural language: color names, hex or rgb() values, sizes like \"20px\", or relative phrases like \"bigger\".").
		StringParam("elementId", "ID of the element to edit", true).
		EnumParam("property", "The property to set", style.PropertyNames(), true).
		StringParam("value", "Desired value, literal or described", true).
		NumberParam("current", "Current numeric value of the property, the baseline for relative phrases", false).
		Handler(func(_ context.Context, input json.RawMessage) ToolResult {
			var params EditPropertyParams
			if err := json.Unmarshal(input, &params); err != nil {
				return invalidInput(err)
			}
			return toolkit.EditProperty(params.ElementID, params.Property, params.Value, params.Current)
		}).
		Build()
}

func editMultiplePropertiesTool(toolkit *Toolkit) *Tool {
	return NewTool("editMultipleProperties").
		Description("Apply a free-text styling instruction that may change several properties at once, e.g. \"make it blue and a bit bigger with more breathing room\".").
		StringParam("elementId", "ID of the element to edit", true).
		StringParam("instruction", "Natural language description of the desired changes", true).
		ObjectParam("snapshot", "Current computed styles of the element; relative phrases resolve against these values", false).
		Handler(func(_ context.Context, input json.RawMessage) ToolResult {
			var params EditMultiplePropertiesParams
			if err := json.Unmarshal(input, &params); err != nil {
				return invalidInput(err)
			}
			return toolkit.EditMultipleProperties(params.ElementID, params.Instruction, params.Snapshot)
		}).
		Build()
}

func applyStylePresetTool(toolkit *Toolkit) *Tool {
	return NewTool("applyStylePreset").
		Description("Apply a complete design preset to an element. Accepts a preset name or a loose description of the look, e.g. \"minimal\" or \"professional\".").
		StringParam("elementId", "ID of the element to style", true).
		StringParam("preset", "Preset name or a word describing the desired look", true).
		Handler(func(_ context.Context, input json.RawMessage) ToolResult {
			var params ApplyStylePresetParams
			if err := json.Unmarshal(input, &params); err != nil {
				return invalidInput(err)
			}
			return toolkit.ApplyStylePreset(params.ElementID, params.Preset)
		}).
		Build()
}

func suggestImprovementsTool(toolkit *Toolkit) *Tool {
	return NewTool("suggestImprovements").
		Description("Audit an element's current styles against readability and hierarchy rules and propose concrete fixes.").
		StringParam("elementId", "ID of the element to audit", true).
		ObjectParam("snapshot", "Current computed styles of the element", true).
		EnumParam("role", "The element's role on the page", []string{"body", "headline"}, false).
		Handler(func(_ context.Context, input json.RawMessage) ToolResult {
			var params SuggestImprovementsParams
			if err := json.Unmarshal(input, &params); err != nil {
				return invalidInput(err)
			}
			return toolkit.SuggestImprovements(params.ElementID, params.Snapshot, style.ParseRole(params.Role))
		}).
		Build()
}

func invalidInput(err error) ToolResult {
	return ToolResult{
		ID:      uuid.NewString(),
		Success: false,
		Message: fmt.Sprintf("%v: %v", ErrInvalidToolInput, err),
	}
}
