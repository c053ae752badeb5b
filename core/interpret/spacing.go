package interpret

import (
	"math"
	"regexp"
	"strings"

	"github.com/adalundhe/restyle/core/style"
)

const (
	// DefaultSpacing stands in when the caller does not know the current
	// margin or padding.
	DefaultSpacing = 16.0

	spacingConfidence        = 0.85
	spacingDefaultMultiplier = 1.5
	spacingMoreMultiplier    = 2.0
	spacingLessMultiplier    = 0.5
)

type SpacingKind int

const (
	SpacingMargin SpacingKind = iota
	SpacingPadding
)

var spacingKindNames = map[SpacingKind]string{
	SpacingMargin:  "margin",
	SpacingPadding: "padding",
}

func (k SpacingKind) String() string {
	if name, ok := spacingKindNames[k]; ok {
		return name
	}
	return "margin"
}

type Direction int

const (
	DirectionAll Direction = iota
	DirectionTop
	DirectionBottom
	DirectionLeft
	DirectionRight
)

var directionNames = map[Direction]string{
	DirectionAll:    "all",
	DirectionTop:    "top",
	DirectionBottom: "bottom",
	DirectionLeft:   "left",
	DirectionRight:  "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return "all"
}

// SpacingResult is a resolved spacing change: which box property, which
// side, and the new value in pixels.
type SpacingResult struct {
	Kind       SpacingKind
	Direction  Direction
	Pixels     float64
	Confidence float64
}

// Apply writes the resolved spacing into set, fanning out to all four sides
// when no direction was named.
func (r SpacingResult) Apply(set *style.ChangeSet) {
	if r.Kind == SpacingPadding {
		switch r.Direction {
		case DirectionTop:
			set.PaddingTop = style.Float(r.Pixels)
		case DirectionBottom:
			set.PaddingBottom = style.Float(r.Pixels)
		case DirectionLeft:
			set.PaddingLeft = style.Float(r.Pixels)
		case DirectionRight:
			set.PaddingRight = style.Float(r.Pixels)
		default:
			set.PaddingTop = style.Float(r.Pixels)
			set.PaddingBottom = style.Float(r.Pixels)
			set.PaddingLeft = style.Float(r.Pixels)
			set.PaddingRight = style.Float(r.Pixels)
		}
		return
	}

	switch r.Direction {
	case DirectionTop:
		set.MarginTop = style.Float(r.Pixels)
	case DirectionBottom:
		set.MarginBottom = style.Float(r.Pixels)
	case DirectionLeft:
		set.MarginLeft = style.Float(r.Pixels)
	case DirectionRight:
		set.MarginRight = style.Float(r.Pixels)
	default:
		set.MarginTop = style.Float(r.Pixels)
		set.MarginBottom = style.Float(r.Pixels)
		set.MarginLeft = style.Float(r.Pixels)
		set.MarginRight = style.Float(r.Pixels)
	}
}

// SpacingParser resolves margin, padding and gap phrasing. Three facets
// resolve independently: kind, direction and magnitude. Each falls back to
// a default rather than failing, so the confidence is a flat value
// regardless of how much of the text was understood.
type SpacingParser struct {
	paddingPattern *regexp.Regexp
	topPattern     *regexp.Regexp
	bottomPattern  *regexp.Regexp
	leftPattern    *regexp.Regexp
	rightPattern   *regexp.Regexp
	removePattern  *regexp.Regexp
	lessPattern    *regexp.Regexp
	morePattern    *regexp.Regexp
}

func NewSpacingParser() *SpacingParser {
	return &SpacingParser{
		paddingPattern: regexp.MustCompile(`padding`),
		topPattern:     regexp.MustCompile(`\b(?:top|above|upper)\b`),
		bottomPattern:  regexp.MustCompile(`\b(?:bottom|below|beneath|under|underneath)\b`),
		leftPattern:    regexp.MustCompile(`\bleft\b`),
		rightPattern:   regexp.MustCompile(`\bright\b`),
		removePattern:  regexp.MustCompile(`\bremove\b|\bno\s+space\b`),
		lessPattern:    regexp.MustCompile(`\b(?:less|reduce|reduced)\b`),
		morePattern:    regexp.MustCompile(`\b(?:more|add|double)\b`),
	}
}

// Parse resolves a spacing change against the current value. A nonpositive
// current reads as DefaultSpacing. Unmatched facets default: kind margin,
// direction all, magnitude one and a half times the current value. Gap
// phrasing reads as margin, which is how the change-set records it.
func (p *SpacingParser) Parse(text string, current float64) SpacingResult {
	if current <= 0 {
		current = DefaultSpacing
	}
	lowered := strings.ToLower(text)

	return SpacingResult{
		Kind:       p.parseKind(lowered),
		Direction:  p.parseDirection(lowered),
		Pixels:     math.Round(current * p.parseMultiplier(lowered)),
		Confidence: spacingConfidence,
	}
}

func (p *SpacingParser) parseKind(text string) SpacingKind {
	if p.paddingPattern.MatchString(text) {
		return SpacingPadding
	}
	return SpacingMargin
}

func (p *SpacingParser) parseDirection(text string) Direction {
	switch {
	case p.topPattern.MatchString(text):
		return DirectionTop
	case p.bottomPattern.MatchString(text):
		return DirectionBottom
	case p.leftPattern.MatchString(text):
		return DirectionLeft
	case p.rightPattern.MatchString(text):
		return DirectionRight
	default:
		return DirectionAll
	}
}

func (p *SpacingParser) parseMultiplier(text string) float64 {
	switch {
	case p.removePattern.MatchString(text):
		return 0
	case p.lessPattern.MatchString(text):
		return spacingLessMultiplier
	case p.morePattern.MatchString(text):
		return spacingMoreMultiplier
	default:
		return spacingDefaultMultiplier
	}
}
