package interpret

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// FallbackColor is the neutral gray substituted when no color resolves.
	FallbackColor = "#808080"

	colorLiteralConfidence    = 1.0
	colorDictionaryConfidence = 1.0
	colorFallbackConfidence   = 0.3
)

// namedColors maps color vocabulary to hex values. Matching is by substring
// against the lowercased text, longest name first, so "light blue" resolves
// before "blue" gets a chance.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"blue":    "#0000ff",
	"green":   "#008000",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"gray":    "#808080",
	"grey":    "#808080",
	"brown":   "#a52a2a",
	"teal":    "#008080",
	"navy":    "#000080",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"silver":  "#c0c0c0",
	"gold":    "#ffd700",

	"light blue":   "#add8e6",
	"dark blue":    "#00008b",
	"light green":  "#90ee90",
	"dark green":   "#006400",
	"light gray":   "#d3d3d3",
	"light grey":   "#d3d3d3",
	"dark gray":    "#a9a9a9",
	"dark grey":    "#a9a9a9",
	"light pink":   "#ffb6c1",
	"light yellow": "#ffffe0",
	"light purple": "#b19cd9",
	"dark red":     "#8b0000",
	"dark orange":  "#ff8c00",
	"dark purple":  "#6a0dad",

	"success": "#22c55e",
	"warning": "#f59e0b",
	"danger":  "#ef4444",
	"error":   "#ef4444",
	"info":    "#3b82f6",

	"apple blue":    "#0071e3",
	"stripe purple": "#635bff",
	"facebook blue": "#1877f2",
	"twitter blue":  "#1da1f2",
}

type namedColor struct {
	name string
	hex  string
}

// ColorParser resolves color mentions in free text.
type ColorParser struct {
	hexPattern *regexp.Regexp
	rgbPattern *regexp.Regexp
	bgPattern  *regexp.Regexp
	names      []namedColor
}

func NewColorParser() *ColorParser {
	return &ColorParser{
		hexPattern: regexp.MustCompile(`#(?:[0-9a-f]{6}|[0-9a-f]{3})\b`),
		rgbPattern: regexp.MustCompile(`rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`),
		bgPattern:  regexp.MustCompile(`\b(?:background|bg|fill)\b`),
		names:      sortedNamedColors(),
	}
}

func sortedNamedColors() []namedColor {
	names := make([]namedColor, 0, len(namedColors))
	for name, hex := range namedColors {
		names = append(names, namedColor{name: name, hex: hex})
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i].name) != len(names[j].name) {
			return len(names[i].name) > len(names[j].name)
		}
		return names[i].name < names[j].name
	})
	return names
}

// Parse resolves the first color mentioned in text. Resolution order: hex
// literal, rgb() literal, named dictionary, neutral-gray fallback. The
// fallback is marked SourceFallback at low confidence so callers can refuse
// it.
func (p *ColorParser) Parse(text string) ColorResult {
	lowered := strings.ToLower(strings.TrimSpace(text))
	background := p.bgPattern.MatchString(lowered)

	if m := p.hexPattern.FindString(lowered); m != "" {
		return ColorResult{
			Hex:        expandHex(m),
			Background: background,
			Source:     SourceLiteral,
			Confidence: colorLiteralConfidence,
		}
	}

	if m := p.rgbPattern.FindStringSubmatch(lowered); m != nil {
		return ColorResult{
			Hex:        rgbToHex(m[1], m[2], m[3]),
			Background: background,
			Source:     SourceLiteral,
			Confidence: colorLiteralConfidence,
		}
	}

	for _, c := range p.names {
		if strings.Contains(lowered, c.name) {
			return ColorResult{
				Hex:        c.hex,
				Background: background,
				Source:     SourceDictionary,
				Confidence: colorDictionaryConfidence,
			}
		}
	}

	return ColorResult{
		Hex:        FallbackColor,
		Background: background,
		Source:     SourceFallback,
		Confidence: colorFallbackConfidence,
	}
}

// expandHex normalizes a matched hex token, widening #abc to #aabbcc.
func expandHex(hex string) string {
	if len(hex) != 4 {
		return hex
	}
	return fmt.Sprintf("#%c%c%c%c%c%c", hex[1], hex[1], hex[2], hex[2], hex[3], hex[3])
}

func rgbToHex(r, g, b string) string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
