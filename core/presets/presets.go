// Package presets holds the built-in style preset catalog and the resolver
// that maps free-form preset requests onto it.
package presets

import "github.com/adalundhe/restyle/core/style"

// Preset is an immutable, fully-populated style recipe. Catalog entries
// always carry confidence 1.0: applying a preset is an exact operation, not
// an interpretation.
type Preset struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Changes     style.ChangeSet `json:"changes"`
}

// ApplePreset mirrors the restrained apple.com look: near-black text on a
// warm white, the system font stack, generous breathing room.
var ApplePreset = Preset{
	Name:        "apple",
	Description: "Clean and refined with generous breathing room, in the style of apple.com",
	Changes: style.ChangeSet{
		Color:           "#1d1d1f",
		BackgroundColor: "#fbfbfd",
		FontSize:        17,
		FontFamily:      "-apple-system, BlinkMacSystemFont, Helvetica Neue, sans-serif",
		FontWeight:      400,
		LineHeight:      1.47,
		MarginTop:       style.Float(24),
		MarginBottom:    style.Float(24),
		MarginLeft:      style.Float(0),
		MarginRight:     style.Float(0),
		PaddingTop:      style.Float(22),
		PaddingBottom:   style.Float(22),
		PaddingLeft:     style.Float(22),
		PaddingRight:    style.Float(22),
		Confidence:      1.0,
	},
}

// StripePreset leans on stripe.com's deep navy text over soft blue-tinted
// backgrounds.
var StripePreset = Preset{
	Name:        "stripe",
	Description: "Professional and polished, calm navy text on soft backgrounds",
	Changes: style.ChangeSet{
		Color:           "#0a2540",
		BackgroundColor: "#f6f9fc",
		FontSize:        16,
		FontFamily:      "Camphor, Segoe UI, Open Sans, sans-serif",
		FontWeight:      400,
		LineHeight:      1.6,
		MarginTop:       style.Float(16),
		MarginBottom:    style.Float(16),
		MarginLeft:      style.Float(0),
		MarginRight:     style.Float(0),
		PaddingTop:      style.Float(20),
		PaddingBottom:   style.Float(20),
		PaddingLeft:     style.Float(20),
		PaddingRight:    style.Float(20),
		Confidence:      1.0,
	},
}

// MinimalistPreset strips styling back: light weights, wide spacing, plain
// black on white.
var MinimalistPreset = Preset{
	Name:        "minimalist",
	Description: "Stripped back with light weights and wide whitespace",
	Changes: style.ChangeSet{
		Color:           "#111111",
		BackgroundColor: "#ffffff",
		FontSize:        16,
		FontFamily:      "Helvetica Neue, Helvetica, Arial, sans-serif",
		FontWeight:      300,
		LineHeight:      1.8,
		MarginTop:       style.Float(32),
		MarginBottom:    style.Float(32),
		MarginLeft:      style.Float(0),
		MarginRight:     style.Float(0),
		PaddingTop:      style.Float(32),
		PaddingBottom:   style.Float(32),
		PaddingLeft:     style.Float(32),
		PaddingRight:    style.Float(32),
		Confidence:      1.0,
	},
}

// BoldPreset inverts the palette and turns everything up.
var BoldPreset = Preset{
	Name:        "bold",
	Description: "High impact, heavy weights and inverted contrast",
	Changes: style.ChangeSet{
		Color:           "#ffffff",
		BackgroundColor: "#111111",
		FontSize:        20,
		FontFamily:      "Futura, Impact, Trebuchet MS, sans-serif",
		FontWeight:      700,
		LineHeight:      1.2,
		MarginTop:       style.Float(12),
		MarginBottom:    style.Float(12),
		MarginLeft:      style.Float(0),
		MarginRight:     style.Float(0),
		PaddingTop:      style.Float(16),
		PaddingBottom:   style.Float(16),
		PaddingLeft:     style.Float(16),
		PaddingRight:    style.Float(16),
		Confidence:      1.0,
	},
}

// Builtins returns the built-in catalog in its canonical order.
func Builtins() []Preset {
	return []Preset{
		ApplePreset,
		StripePreset,
		MinimalistPreset,
		BoldPreset,
	}
}
