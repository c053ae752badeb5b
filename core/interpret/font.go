package interpret

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	fontFamilyConfidence   = 0.9
	fontWeightConfidence   = 1.0
	fontLineConfidence     = 0.85
	fontDefaultConfidence  = 0.7
	lineHeightIncrease     = 1.75
	lineHeightDecrease     = 1.25
	lineHeightLiteralMin   = 0.5
	lineHeightLiteralMax   = 3.0
	lineHeightLiteralScore = 1.0
	fontWeightBold         = 700
	fontWeightLight        = 300
	fontWeightNormal       = 400
)

// fontFamilies maps family vocabulary to full CSS stacks. Matching is on
// word boundaries, longest name first, so "comic sans" wins over "sans" and
// "sans-serif" over "serif".
var fontFamilies = map[string]string{
	"helvetica":       "Helvetica Neue, Helvetica, Arial, sans-serif",
	"arial":           "Arial, Helvetica, sans-serif",
	"inter":           "Inter, -apple-system, BlinkMacSystemFont, sans-serif",
	"roboto":          "Roboto, Arial, sans-serif",
	"verdana":         "Verdana, Geneva, sans-serif",
	"futura":          "Futura, Trebuchet MS, sans-serif",
	"georgia":         "Georgia, Times New Roman, serif",
	"times":           "Times New Roman, Times, serif",
	"times new roman": "Times New Roman, Times, serif",
	"garamond":        "Garamond, Georgia, serif",
	"palatino":        "Palatino, Georgia, serif",
	"courier":         "Courier New, Courier, monospace",
	"monospace":       "SF Mono, Monaco, Consolas, monospace",
	"mono":            "SF Mono, Monaco, Consolas, monospace",
	"system":          "-apple-system, BlinkMacSystemFont, Segoe UI, Roboto, sans-serif",
	"serif":           "Georgia, Times New Roman, serif",
	"sans-serif":      "Helvetica Neue, Arial, sans-serif",
	"sans serif":      "Helvetica Neue, Arial, sans-serif",
	"sans":            "Helvetica Neue, Arial, sans-serif",
	"comic sans":      "Comic Sans MS, Comic Sans, cursive",
}

type fontFamily struct {
	name    string
	stack   string
	pattern *regexp.Regexp
}

// FontParser resolves font family, weight and line-height phrasing. The
// three facets are independent; any subset may fire.
type FontParser struct {
	families      []fontFamily
	boldPattern   *regexp.Regexp
	lightPattern  *regexp.Regexp
	normalPattern *regexp.Regexp
	lightTint     *regexp.Regexp
	linePhrase    *regexp.Regexp
	lineDecrease  *regexp.Regexp
	lineIncrease  *regexp.Regexp
	lineLiteral   *regexp.Regexp
}

func NewFontParser() *FontParser {
	return &FontParser{
		families:      compileFontFamilies(),
		boldPattern:   regexp.MustCompile(`\b(?:bold|bolder)\b`),
		lightPattern:  regexp.MustCompile(`\b(?:light|thin)\b`),
		normalPattern: regexp.MustCompile(`\b(?:normal|regular)\b`),
		lightTint:     regexp.MustCompile(`\b(?:light|pale)\s+(?:blue|green|gray|grey|red|pink|yellow|purple|orange|brown)\b`),
		linePhrase:    regexp.MustCompile(`\bline[\s-]*(?:spacing|height)\b`),
		lineDecrease:  regexp.MustCompile(`\b(?:less|decrease|reduce|tighter|tight|smaller)\b`),
		lineIncrease:  regexp.MustCompile(`\b(?:more|increase|looser|loose|taller|bigger)\b`),
		lineLiteral:   regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*$`),
	}
}

func compileFontFamilies() []fontFamily {
	families := make([]fontFamily, 0, len(fontFamilies))
	for name, stack := range fontFamilies {
		families = append(families, fontFamily{
			name:    name,
			stack:   stack,
			pattern: regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	sort.Slice(families, func(i, j int) bool {
		if len(families[i].name) != len(families[j].name) {
			return len(families[i].name) > len(families[j].name)
		}
		return families[i].name < families[j].name
	})
	return families
}

// Parse resolves whichever font facets the text mentions. The returned
// confidence is the best among fired facets; when nothing fired the result
// carries a middling confidence and Fired() is false.
func (p *FontParser) Parse(text string) FontResult {
	lowered := strings.ToLower(text)

	result := FontResult{
		Family: p.parseFamily(lowered),
		Weight: p.parseWeight(lowered),
	}
	if p.linePhrase.MatchString(lowered) {
		result.LineHeight = p.parseLineDirection(lowered)
	}

	result.Confidence = fontConfidence(result)
	return result
}

func (p *FontParser) parseFamily(text string) string {
	for _, f := range p.families {
		if f.pattern.MatchString(text) {
			return f.stack
		}
	}
	return ""
}

func (p *FontParser) parseWeight(text string) int {
	// "light blue" is a tint, not a weight.
	text = p.lightTint.ReplaceAllString(text, "")

	switch {
	case p.boldPattern.MatchString(text):
		return fontWeightBold
	case p.lightPattern.MatchString(text):
		return fontWeightLight
	case p.normalPattern.MatchString(text):
		return fontWeightNormal
	default:
		return 0
	}
}

func (p *FontParser) parseLineDirection(text string) float64 {
	if p.lineDecrease.MatchString(text) {
		return lineHeightDecrease
	}
	return lineHeightIncrease
}

func fontConfidence(result FontResult) float64 {
	confidence := 0.0
	if result.Family != "" {
		confidence = fontFamilyConfidence
	}
	if result.Weight != 0 && fontWeightConfidence > confidence {
		confidence = fontWeightConfidence
	}
	if result.LineHeight != 0 && fontLineConfidence > confidence {
		confidence = fontLineConfidence
	}
	if confidence == 0 {
		return fontDefaultConfidence
	}
	return confidence
}

// ParseLineHeight resolves a line-height value on its own, without the
// "line spacing" phrase gate. Used when the caller already knows line
// height is the target. Accepts a bare multiplier or a direction word;
// reports false for anything else.
func (p *FontParser) ParseLineHeight(text string) (LineHeightResult, bool) {
	lowered := strings.ToLower(strings.TrimSpace(text))

	if m := p.lineLiteral.FindStringSubmatch(lowered); m != nil {
		value, err := strconv.ParseFloat(m[1], 64)
		if err == nil && value >= lineHeightLiteralMin && value <= lineHeightLiteralMax {
			return LineHeightResult{
				Value:      value,
				Source:     SourceLiteral,
				Confidence: lineHeightLiteralScore,
			}, true
		}
		return LineHeightResult{}, false
	}

	if p.lineDecrease.MatchString(lowered) {
		return LineHeightResult{
			Value:      lineHeightDecrease,
			Source:     SourceRelative,
			Confidence: fontLineConfidence,
		}, true
	}
	if p.lineIncrease.MatchString(lowered) {
		return LineHeightResult{
			Value:      lineHeightIncrease,
			Source:     SourceRelative,
			Confidence: fontLineConfidence,
		}, true
	}

	return LineHeightResult{}, false
}
