package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/adalundhe/restyle/core/style"
	"github.com/adalundhe/restyle/core/tools"
)

// ============================================================================
// Tool Definitions
// ============================================================================

func EditPropertyTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "edit_property",
		Description: "Set a single style property on an element. The value may be a literal " +
			"(\"#0071e3\", \"18px\") or natural language (\"ocean blue\", \"a bit bigger\").",
	}
}

func EditMultiplePropertiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "edit_multiple_properties",
		Description: "Interpret a free-form styling instruction such as \"make it blue and a " +
			"bit bigger\" and return every style change it implies.",
	}
}

func ApplyStylePresetTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "apply_style_preset",
		Description: "Apply a named style preset to an element. Accepts the preset name or a " +
			"close synonym, e.g. \"sleek\" resolves to the apple preset.",
	}
}

func SuggestImprovementsTool() *mcp.Tool {
	return &mcp.Tool{
		Name: "suggest_improvements",
		Description: "Audit an element's current styles against readability heuristics and " +
			"return suggested fixes with a proposed change set.",
	}
}

// ============================================================================
// Tool Handlers
// ============================================================================

// Handlers report domain failures through the output's success flag rather
// than the error return, so a refused instruction reads as data, not protocol
// failure.

func EditPropertyHandler(toolkit *tools.Toolkit) mcp.ToolHandlerFor[EditPropertyInput, ToolOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EditPropertyInput) (*mcp.CallToolResult, ToolOutput, error) {
		result := toolkit.EditProperty(input.ElementID, input.Property, input.Value, input.Current)
		return nil, outputFrom(result), nil
	}
}

func EditMultiplePropertiesHandler(toolkit *tools.Toolkit) mcp.ToolHandlerFor[EditMultiplePropertiesInput, ToolOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input EditMultiplePropertiesInput) (*mcp.CallToolResult, ToolOutput, error) {
		result := toolkit.EditMultipleProperties(input.ElementID, input.Instruction, input.Snapshot)
		return nil, outputFrom(result), nil
	}
}

func ApplyStylePresetHandler(toolkit *tools.Toolkit) mcp.ToolHandlerFor[ApplyStylePresetInput, ToolOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ApplyStylePresetInput) (*mcp.CallToolResult, ToolOutput, error) {
		result := toolkit.ApplyStylePreset(input.ElementID, input.Preset)
		return nil, outputFrom(result), nil
	}
}

func SuggestImprovementsHandler(toolkit *tools.Toolkit) mcp.ToolHandlerFor[SuggestImprovementsInput, ToolOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SuggestImprovementsInput) (*mcp.CallToolResult, ToolOutput, error) {
		result := toolkit.SuggestImprovements(input.ElementID, input.Snapshot, style.ParseRole(input.Role))
		return nil, outputFrom(result), nil
	}
}

// ============================================================================
// Resources
// ============================================================================

const presetListURI = "presets://list"

func PresetListResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "preset_list",
		Title:       "Style Presets",
		Description: "All style presets the server can apply, with their full change sets.",
		MIMEType:    "application/json",
		URI:         presetListURI,
	}
}

func PresetListHandler(toolkit *tools.Toolkit) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if toolkit == nil {
			return nil, fmt.Errorf("toolkit is not configured")
		}

		uri := presetListURI
		if req != nil && req.Params != nil && req.Params.URI != "" {
			uri = req.Params.URI
		}

		payload := PresetListPayload{Presets: toolkit.Resolver().All()}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal preset list: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      uri,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}
}

// ============================================================================
// Registration
// ============================================================================

func registerTools(server *mcp.Server, toolkit *tools.Toolkit) {
	mcp.AddTool(server, EditPropertyTool(), EditPropertyHandler(toolkit))
	mcp.AddTool(server, EditMultiplePropertiesTool(), EditMultiplePropertiesHandler(toolkit))
	mcp.AddTool(server, ApplyStylePresetTool(), ApplyStylePresetHandler(toolkit))
	mcp.AddTool(server, SuggestImprovementsTool(), SuggestImprovementsHandler(toolkit))
}

func registerResources(server *mcp.Server, toolkit *tools.Toolkit) {
	server.AddResource(PresetListResource(), PresetListHandler(toolkit))
}
