package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/restyle/core/style"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	return DefaultRegistry(newToolkit(t))
}

func TestDefaultRegistryNames(t *testing.T) {
	registry := newRegistry(t)

	assert.Equal(t, []string{
		"editProperty",
		"editMultipleProperties",
		"applyStylePreset",
		"suggestImprovements",
	}, registry.Names())
}

func TestToolDefinitions(t *testing.T) {
	registry := newRegistry(t)

	definitions := registry.ToolDefinitions()
	require.Len(t, definitions, 4)

	first := definitions[0]
	assert.Equal(t, "editProperty", first["name"])
	assert.NotEmpty(t, first["description"])

	schema, ok := first["input_schema"].(*InputSchema)
	require.True(t, ok)
	assert.Equal(t, "object", schema.Type)
	assert.ElementsMatch(t, []string{"elementId", "property", "value"}, schema.Required)

	property := schema.Properties["property"]
	require.NotNil(t, property)
	assert.Len(t, property.Enum, len(style.PropertyNames()))
}

func TestRegistryInvoke(t *testing.T) {
	registry := newRegistry(t)

	input, err := json.Marshal(EditPropertyParams{
		ElementID: "el-1",
		Property:  "color",
		Value:     "blue",
	})
	require.NoError(t, err)

	result := registry.Invoke(context.Background(), "editProperty", input)

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "el-1", result.ElementID)
	assert.Equal(t, "#0000ff", result.Changes.Color)
}

func TestRegistryInvokeUnknownTool(t *testing.T) {
	registry := newRegistry(t)

	result := registry.Invoke(context.Background(), "repaintEverything", nil)

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "repaintEverything")
	assert.Contains(t, result.Message, "editProperty")
	assert.Contains(t, result.Message, "suggestImprovements")
}

func TestRegistryInvokeMalformedInput(t *testing.T) {
	registry := newRegistry(t)

	result := registry.Invoke(context.Background(), "editProperty", json.RawMessage(`{"elementId":`))

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "invalid tool input")
}

func TestRegistryInvokeCount(t *testing.T) {
	registry := newRegistry(t)

	input, _ := json.Marshal(ApplyStylePresetParams{ElementID: "el-1", Preset: "apple"})
	registry.Invoke(context.Background(), "applyStylePreset", input)
	registry.Invoke(context.Background(), "applyStylePreset", input)

	assert.Equal(t, int64(2), registry.Get("applyStylePreset").InvokeCount)
	assert.Equal(t, int64(0), registry.Get("editProperty").InvokeCount)
}

func TestRegistryInvokeRecoversPanic(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(NewTool("explode").
		Description("Always panics").
		Handler(func(_ context.Context, _ json.RawMessage) ToolResult {
			panic("boom")
		}).
		Build())
	require.NoError(t, err)

	result := registry.Invoke(context.Background(), "explode", nil)

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "internal error")
	assert.Contains(t, result.Message, "boom")
}

func TestRegistryRegisterValidation(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(&Tool{})
	assert.ErrorContains(t, err, "name")

	err = registry.Register(&Tool{Name: "quiet"})
	assert.ErrorContains(t, err, "handler")

	handler := func(_ context.Context, _ json.RawMessage) ToolResult {
		return ToolResult{Success: true}
	}
	require.NoError(t, registry.Register(NewTool("quiet").Handler(handler).Build()))

	err = registry.Register(NewTool("quiet").Handler(handler).Build())
	assert.ErrorContains(t, err, "already registered")
}

func TestRegistrySuggestImprovementsRoleDecoding(t *testing.T) {
	registry := newRegistry(t)

	input, err := json.Marshal(SuggestImprovementsParams{
		ElementID: "headline-1",
		Snapshot:  style.Snapshot{FontSize: 16, LineHeight: 1.0},
		Role:      "headline",
	})
	require.NoError(t, err)

	result := registry.Invoke(context.Background(), "suggestImprovements", input)

	require.True(t, result.Success, result.Message)
	assert.GreaterOrEqual(t, len(result.Suggestions), 2)
	assert.Equal(t, 32.0, result.Changes.FontSize)
}
