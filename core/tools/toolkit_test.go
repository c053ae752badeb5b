package tools

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalundhe/restyle/core/cache"
	"github.com/adalundhe/restyle/core/presets"
	"github.com/adalundhe/restyle/core/style"
)

func newToolkit(t *testing.T) *Toolkit {
	t.Helper()

	toolkit, err := New(Config{})
	require.NoError(t, err)
	return toolkit
}

// =============================================================================
// EditProperty
// =============================================================================

func TestEditPropertyColor(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "color", "blue", 0)

	require.True(t, result.Success, result.Message)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "el-1", result.ElementID)
	assert.Equal(t, "#0000ff", result.Changes.Color)
	assert.Equal(t, 1.0, result.Changes.Confidence)
	assert.Contains(t, result.Message, "#0000ff")
}

func TestEditPropertyBackgroundColor(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "backgroundColor", "light gray", 0)

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "#d3d3d3", result.Changes.BackgroundColor)
	assert.Empty(t, result.Changes.Color)
}

func TestEditPropertyColorUnresolved(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "color", "sparkly", 0)

	require.False(t, result.Success)
	assert.True(t, result.Changes.IsEmpty())
	assert.Contains(t, result.Message, "sparkly")
	assert.Contains(t, result.Message, "blue")
}

func TestEditPropertyUnknownProperty(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "glow", "high", 0)

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "supported properties")
	for _, name := range style.PropertyNames() {
		assert.Contains(t, result.Message, name)
	}
}

func TestEditPropertyFontSize(t *testing.T) {
	toolkit := newToolkit(t)

	cases := []struct {
		value      string
		current    float64
		pixels     float64
		confidence float64
	}{
		{"18px", 16, 18, 1.0},
		{"bigger", 16, 24, 0.9},
		{"a bit bigger", 16, 20, 0.9},
		{"double", 16, 32, 0.9},
		{"warmer", 16, 20, 0.5},
	}

	for _, tc := range cases {
		result := toolkit.EditProperty("el-1", "fontSize", tc.value, tc.current)

		require.True(t, result.Success, "value %q: %s", tc.value, result.Message)
		assert.Equal(t, tc.pixels, result.Changes.FontSize, "value %q", tc.value)
		assert.Equal(t, tc.confidence, result.Changes.Confidence, "value %q", tc.value)
	}
}

func TestEditPropertyMarginTop(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "marginTop", "double", 16)

	require.True(t, result.Success, result.Message)
	require.NotNil(t, result.Changes.MarginTop)
	assert.Equal(t, 32.0, *result.Changes.MarginTop)
	assert.Nil(t, result.Changes.MarginBottom)
	assert.Nil(t, result.Changes.PaddingTop)
	assert.Equal(t, 0.85, result.Changes.Confidence)
}

func TestEditPropertyPaddingAllSides(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "padding", "remove", 24)

	require.True(t, result.Success, result.Message)
	for _, side := range []*float64{
		result.Changes.PaddingTop,
		result.Changes.PaddingBottom,
		result.Changes.PaddingLeft,
		result.Changes.PaddingRight,
	} {
		require.NotNil(t, side)
		assert.Equal(t, 0.0, *side)
	}
	assert.Nil(t, result.Changes.MarginTop)
}

func TestEditPropertyNamedSpacingWinsOverPhrasing(t *testing.T) {
	toolkit := newToolkit(t)

	// Value phrasing says margin-below; the named property is paddingLeft.
	result := toolkit.EditProperty("el-1", "paddingLeft", "more space below", 10)

	require.True(t, result.Success, result.Message)
	require.NotNil(t, result.Changes.PaddingLeft)
	assert.Equal(t, 20.0, *result.Changes.PaddingLeft)
	assert.Nil(t, result.Changes.MarginBottom)
	assert.Nil(t, result.Changes.PaddingBottom)
}

func TestEditPropertyLineHeight(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "lineHeight", "tighter", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 1.25, result.Changes.LineHeight)

	result = toolkit.EditProperty("el-1", "lineHeight", "1.8", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 1.8, result.Changes.LineHeight)
	assert.Equal(t, 1.0, result.Changes.Confidence)

	result = toolkit.EditProperty("el-1", "lineHeight", "9", 0)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "1.5")
}

func TestEditPropertyFontWeight(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "fontWeight", "bold", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, 700, result.Changes.FontWeight)

	result = toolkit.EditProperty("el-1", "fontWeight", "sparkly", 0)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "bold")
}

func TestEditPropertyFontFamily(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "fontFamily", "use helvetica please", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "Helvetica Neue, Helvetica, Arial, sans-serif", result.Changes.FontFamily)

	result = toolkit.EditProperty("el-1", "fontFamily", "wingdings", 0)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "helvetica")
}

func TestEditPropertyDimensions(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("el-1", "width", "full", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "100%", result.Changes.Width)

	result = toolkit.EditProperty("el-1", "height", "120px", 0)
	require.True(t, result.Success, result.Message)
	assert.Equal(t, "120px", result.Changes.Height)
	assert.Empty(t, result.Changes.Width)

	result = toolkit.EditProperty("el-1", "width", "wavy", 0)
	require.False(t, result.Success)
	assert.Contains(t, result.Message, "auto")
}

// =============================================================================
// EditMultipleProperties
// =============================================================================

func TestEditMultipleProperties(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditMultipleProperties("el-1",
		"make it blue and a bit bigger",
		style.Snapshot{FontSize: 16})

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "#0000ff", result.Changes.Color)
	assert.Equal(t, 20.0, result.Changes.FontSize)
	assert.Equal(t, 1.0, result.Changes.Confidence)
	assert.Contains(t, result.Message, "color")
	assert.Contains(t, result.Message, "fontSize")
}

func TestEditMultiplePropertiesNothingUnderstood(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditMultipleProperties("el-1",
		"do the hokey pokey",
		style.Snapshot{FontSize: 16})

	require.False(t, result.Success)
	assert.True(t, result.Changes.IsEmpty())
	assert.Contains(t, result.Message, "hokey pokey")
	assert.Contains(t, result.Message, "blue")
}

func TestEditMultiplePropertiesCached(t *testing.T) {
	interpretations, err := cache.New(nil)
	require.NoError(t, err)
	defer interpretations.Close()

	toolkit, err := New(Config{Cache: interpretations})
	require.NoError(t, err)

	snapshot := style.Snapshot{FontSize: 16}

	first := toolkit.EditMultipleProperties("el-1", "make it red and bold", snapshot)
	require.True(t, first.Success, first.Message)
	interpretations.Wait()

	second := toolkit.EditMultipleProperties("el-1", "make it red and bold", snapshot)
	require.True(t, second.Success, second.Message)

	assert.Equal(t, first.Changes, second.Changes)

	stats := interpretations.Stats()
	assert.Equal(t, int64(1), stats.Hits())
	assert.Equal(t, int64(1), stats.Misses())
}

// =============================================================================
// ApplyStylePreset
// =============================================================================

func TestApplyStylePreset(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.ApplyStylePreset("el-1", "apple")

	require.True(t, result.Success, result.Message)
	assert.Contains(t, result.Changes.FontFamily, "-apple-system")
	assert.Equal(t, 1.0, result.Changes.Confidence)
	assert.Contains(t, result.Message, "apple")
}

func TestApplyStylePresetSynonym(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.ApplyStylePreset("el-1", "something sleek and premium")

	require.True(t, result.Success, result.Message)
	assert.Contains(t, result.Message, "apple")
}

func TestApplyStylePresetUnknown(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.ApplyStylePreset("el-1", "brutalist")

	require.False(t, result.Success)
	assert.Contains(t, result.Message, "apple")
	assert.Contains(t, result.Message, "stripe")
	assert.Contains(t, result.Message, "minimalist")
	assert.Contains(t, result.Message, "bold")
}

func TestApplyStylePresetUserDefined(t *testing.T) {
	toolkit, err := New(Config{
		UserPresets: []presets.Preset{{
			Name:        "ocean",
			Description: "Deep blue and airy",
			Changes:     style.ChangeSet{Color: "#003049", FontSize: 16},
		}},
	})
	require.NoError(t, err)

	result := toolkit.ApplyStylePreset("el-1", "ocean")

	require.True(t, result.Success, result.Message)
	assert.Equal(t, "#003049", result.Changes.Color)
	assert.Equal(t, 1.0, result.Changes.Confidence)
}

func TestNewRejectsInvalidUserPreset(t *testing.T) {
	_, err := New(Config{
		UserPresets: []presets.Preset{{Name: "apple", Changes: style.ChangeSet{Color: "#fff"}}},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, presets.ErrReservedName)
}

// =============================================================================
// SuggestImprovements
// =============================================================================

func TestSuggestImprovements(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.SuggestImprovements("el-1",
		style.Snapshot{FontSize: 16, LineHeight: 1.0},
		style.RoleHeadline)

	require.True(t, result.Success, result.Message)
	assert.GreaterOrEqual(t, len(result.Suggestions), 2)
	assert.Equal(t, 32.0, result.Changes.FontSize)
	assert.Equal(t, 1.5, result.Changes.LineHeight)
}

func TestSuggestImprovementsClean(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.SuggestImprovements("el-1",
		style.Snapshot{FontSize: 32, LineHeight: 1.5, Color: "#1a1a1a"},
		style.RoleHeadline)

	require.True(t, result.Success, result.Message)
	assert.Empty(t, result.Suggestions)
	assert.Contains(t, result.Message, "looks good")
}

// =============================================================================
// Boundary behavior
// =============================================================================

func TestOperationsRecoverPanics(t *testing.T) {
	// A toolkit with nil internals panics on first use; the boundary must
	// swallow that into a failed result.
	broken := &Toolkit{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	result := broken.EditProperty("el-1", "color", "blue", 0)

	require.False(t, result.Success)
	assert.Equal(t, "el-1", result.ElementID)
	assert.Contains(t, result.Message, "internal error")
	assert.NotEmpty(t, result.ID)
}

func TestToolResultWireShape(t *testing.T) {
	toolkit := newToolkit(t)

	result := toolkit.EditProperty("button-3", "color", "#0071e3", 0)

	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	payload := string(encoded)
	assert.Contains(t, payload, `"elementId":"button-3"`)
	assert.Contains(t, payload, `"success":true`)
	assert.Contains(t, payload, `"color":"#0071e3"`)
	assert.Contains(t, payload, `"confidence":1`)
}
