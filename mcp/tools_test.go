package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/restyle/core/style"
	"github.com/adalundhe/restyle/core/tools"
)

func newToolkit(t *testing.T) *tools.Toolkit {
	t.Helper()
	toolkit, err := tools.New(tools.Config{})
	require.NoError(t, err)
	return toolkit
}

func TestToolDefinitions(t *testing.T) {
	defs := []*mcp.Tool{
		EditPropertyTool(),
		EditMultiplePropertiesTool(),
		ApplyStylePresetTool(),
		SuggestImprovementsTool(),
	}

	wantNames := []string{
		"edit_property",
		"edit_multiple_properties",
		"apply_style_preset",
		"suggest_improvements",
	}

	require.Len(t, defs, len(wantNames))
	for i, def := range defs {
		assert.Equal(t, wantNames[i], def.Name)
		assert.NotEmpty(t, def.Description)
	}
}

func TestEditPropertyHandler(t *testing.T) {
	handler := EditPropertyHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, EditPropertyInput{
		ElementID: "hero-1",
		Property:  "color",
		Value:     "blue",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "hero-1", out.ElementID)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "#0000ff", out.Changes.Color)
	assert.Equal(t, 1.0, out.Changes.Confidence)
}

func TestEditPropertyHandlerReportsFailureAsData(t *testing.T) {
	handler := EditPropertyHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, EditPropertyInput{
		ElementID: "hero-1",
		Property:  "color",
		Value:     "sparkly",
	})
	require.NoError(t, err)

	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "not a recognized color")
	assert.True(t, out.Changes.IsEmpty())
}

func TestEditMultiplePropertiesHandler(t *testing.T) {
	handler := EditMultiplePropertiesHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, EditMultiplePropertiesInput{
		ElementID:   "cta-2",
		Instruction: "make it blue and a bit bigger",
		Snapshot:    style.Snapshot{FontSize: 16},
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Equal(t, "#0000ff", out.Changes.Color)
	assert.Equal(t, 20.0, out.Changes.FontSize)
	assert.Equal(t, 1.0, out.Changes.Confidence)
}

func TestApplyStylePresetHandler(t *testing.T) {
	handler := ApplyStylePresetHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ApplyStylePresetInput{
		ElementID: "card-4",
		Preset:    "apple",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Contains(t, out.Changes.FontFamily, "-apple-system")
	assert.Contains(t, out.Message, "apple")
}

func TestApplyStylePresetHandlerSynonym(t *testing.T) {
	handler := ApplyStylePresetHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ApplyStylePresetInput{
		ElementID: "card-4",
		Preset:    "something sleek",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.Contains(t, out.Message, "apple")
}

func TestApplyStylePresetHandlerUnknown(t *testing.T) {
	handler := ApplyStylePresetHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, ApplyStylePresetInput{
		ElementID: "card-4",
		Preset:    "brutalist",
	})
	require.NoError(t, err)

	assert.False(t, out.Success)
	for _, name := range []string{"apple", "stripe", "minimalist", "bold"} {
		assert.Contains(t, out.Message, name)
	}
}

func TestSuggestImprovementsHandler(t *testing.T) {
	handler := SuggestImprovementsHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, SuggestImprovementsInput{
		ElementID: "headline-1",
		Snapshot:  style.Snapshot{FontSize: 16, LineHeight: 1.0},
		Role:      "headline",
	})
	require.NoError(t, err)

	assert.True(t, out.Success)
	assert.GreaterOrEqual(t, len(out.Suggestions), 2)
	assert.Equal(t, 32.0, out.Changes.FontSize)
}

func TestToolOutputWireShape(t *testing.T) {
	handler := EditPropertyHandler(newToolkit(t))

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, EditPropertyInput{
		ElementID: "hero-1",
		Property:  "color",
		Value:     "blue",
	})
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)

	encoded := string(data)
	assert.Contains(t, encoded, `"element_id":"hero-1"`)
	assert.Contains(t, encoded, `"duration_ms"`)
	assert.Contains(t, encoded, `"color":"#0000ff"`)
	assert.NotContains(t, encoded, `"elementId"`)
}

func TestPresetListHandler(t *testing.T) {
	handler := PresetListHandler(newToolkit(t))

	result, err := handler(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)

	content := result.Contents[0]
	assert.Equal(t, presetListURI, content.URI)
	assert.Equal(t, "application/json", content.MIMEType)

	var payload PresetListPayload
	require.NoError(t, json.Unmarshal([]byte(content.Text), &payload))
	require.Len(t, payload.Presets, 4)

	var names []string
	for _, p := range payload.Presets {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"apple", "stripe", "minimalist", "bold"}, names)
}

func TestPresetListHandlerEchoesRequestURI(t *testing.T) {
	handler := PresetListHandler(newToolkit(t))

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "presets://list?fresh=1"},
	}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "presets://list?fresh=1", result.Contents[0].URI)
}

func TestPresetListHandlerRequiresToolkit(t *testing.T) {
	handler := PresetListHandler(nil)

	_, err := handler(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "not configured"))
}
