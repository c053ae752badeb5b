package interpret

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	// DefaultFontSize stands in when the caller does not know the current
	// size.
	DefaultFontSize = 16.0

	sizeLiteralConfidence  = 1.0
	sizeRelativeConfidence = 0.9
	sizeFallbackConfidence = 0.5
	sizeFallbackMultiplier = 1.25
)

// relativeSizes maps relative phrases to multipliers over the current size.
// Matching is by substring, longest phrase first, so "a bit bigger" is not
// swallowed by "bigger".
var relativeSizes = map[string]float64{
	"much bigger":      2.0,
	"much larger":      2.0,
	"a bit bigger":     1.25,
	"slightly bigger":  1.25,
	"a bit smaller":    0.9,
	"slightly smaller": 0.9,
	"much smaller":     0.5,
	"bigger":           1.5,
	"larger":           1.5,
	"smaller":          0.75,
	"double":           2.0,
	"half":             0.5,
	"tiny":             0.5,
	"huge":             2.0,
	"massive":          2.5,
	"enormous":         3.0,
}

type relativeSize struct {
	phrase     string
	multiplier float64
}

// SizeParser resolves font sizes from literal magnitudes or relative
// phrases.
type SizeParser struct {
	literalPattern *regexp.Regexp
	lengthPattern  *regexp.Regexp
	relative       []relativeSize
}

func NewSizeParser() *SizeParser {
	return &SizeParser{
		literalPattern: regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(px|pt|rem|em)\b`),
		lengthPattern:  regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*(px|%|rem|em)\s*$`),
		relative:       sortedRelativeSizes(),
	}
}

func sortedRelativeSizes() []relativeSize {
	sizes := make([]relativeSize, 0, len(relativeSizes))
	for phrase, multiplier := range relativeSizes {
		sizes = append(sizes, relativeSize{phrase: phrase, multiplier: multiplier})
	}
	sort.Slice(sizes, func(i, j int) bool {
		if len(sizes[i].phrase) != len(sizes[j].phrase) {
			return len(sizes[i].phrase) > len(sizes[j].phrase)
		}
		return sizes[i].phrase < sizes[j].phrase
	})
	return sizes
}

// Parse resolves a font size from text against the current size. A
// nonpositive current reads as DefaultFontSize. Literal px and pt take the
// number as pixels; em and rem multiply the current size. Relative phrases
// multiply and round. When nothing matches the parser still answers with a
// gentle bump, at a confidence callers can gate on.
func (p *SizeParser) Parse(text string, current float64) SizeResult {
	if current <= 0 {
		current = DefaultFontSize
	}
	lowered := strings.ToLower(text)

	if m := p.literalPattern.FindStringSubmatch(lowered); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil {
			return SizeResult{
				Pixels:     literalPixels(value, m[2], current),
				Source:     SourceLiteral,
				Confidence: sizeLiteralConfidence,
			}
		}
	}

	for _, r := range p.relative {
		if strings.Contains(lowered, r.phrase) {
			return SizeResult{
				Pixels:     math.Round(current * r.multiplier),
				Source:     SourceRelative,
				Confidence: sizeRelativeConfidence,
			}
		}
	}

	return SizeResult{
		Pixels:     math.Round(current * sizeFallbackMultiplier),
		Source:     SourceFallback,
		Confidence: sizeFallbackConfidence,
	}
}

func literalPixels(value float64, unit string, current float64) float64 {
	switch unit {
	case "em", "rem":
		return value * current
	default:
		return value
	}
}

// ParseLength resolves a CSS length for dimension properties like width and
// height. Accepts a literal number with a unit, or the keywords full, half
// and auto. Reports false when the text is neither.
func (p *SizeParser) ParseLength(text string) (string, float64, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	if m := p.lengthPattern.FindStringSubmatch(lowered); m != nil {
		return fmt.Sprintf("%s%s", m[1], m[2]), sizeLiteralConfidence, true
	}

	switch lowered {
	case "full", "full width", "full height":
		return "100%", sizeRelativeConfidence, true
	case "half", "half width", "half height":
		return "50%", sizeRelativeConfidence, true
	case "auto", "automatic":
		return "auto", sizeRelativeConfidence, true
	}

	return "", 0, false
}
