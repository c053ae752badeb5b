// Package interpret turns free-text style instructions into typed, scored
// results. Each parser owns one vocabulary (color, size, spacing, font,
// contrast), carries precompiled tables, and is safe for concurrent use.
// Results are plain values constructed per call.
package interpret

// Source records how a parser arrived at its value, so callers can
// distinguish an exact match from a guess.
type Source int

const (
	// SourceLiteral means the value was written out in the text, e.g. a hex
	// code or "18px".
	SourceLiteral Source = iota
	// SourceDictionary means a fixed vocabulary entry matched.
	SourceDictionary
	// SourceRelative means the value was derived from the current value via
	// a relative phrase like "a bit bigger".
	SourceRelative
	// SourceFallback means nothing matched and the parser substituted its
	// default.
	SourceFallback
)

var sourceNames = map[Source]string{
	SourceLiteral:    "literal",
	SourceDictionary: "dictionary",
	SourceRelative:   "relative",
	SourceFallback:   "fallback",
}

func (s Source) String() string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return "unknown"
}

// ColorResult is the color parser's verdict on a piece of text.
type ColorResult struct {
	// Hex is the resolved color, lowercase #rrggbb.
	Hex string
	// Background is set when the text targets the background rather than
	// the foreground ("background", "bg", "fill").
	Background bool
	Source     Source
	Confidence float64
}

// SizeResult is a resolved font size in pixels.
type SizeResult struct {
	Pixels     float64
	Source     Source
	Confidence float64
}

// FontResult carries whichever font facets resolved. A zero field means the
// facet did not fire and must not be applied.
type FontResult struct {
	Family     string
	Weight     int
	LineHeight float64
	Confidence float64
}

// Fired reports whether any facet resolved.
func (f FontResult) Fired() bool {
	return f.Family != "" || f.Weight != 0 || f.LineHeight != 0
}

// LineHeightResult is a resolved line-height multiplier.
type LineHeightResult struct {
	Value      float64
	Source     Source
	Confidence float64
}
