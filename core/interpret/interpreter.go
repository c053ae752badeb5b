package interpret

import (
	"math"
	"strings"

	"github.com/adalundhe/restyle/core/style"
)

// colorApplyThreshold gates color application in combined parsing. The
// color parser always answers; only answers strictly above this line make
// it into the change-set.
const colorApplyThreshold = 0.7

var (
	sizeGateKeywords    = []string{"bigger", "smaller", "size"}
	spacingGateKeywords = []string{"space", "spacing", "margin", "padding", "gap"}
)

// Interpreter combines the domain parsers into a single pass over an
// instruction. Construct once and share; it is stateless beyond its
// precompiled tables.
type Interpreter struct {
	colors   *ColorParser
	sizes    *SizeParser
	spacing  *SpacingParser
	fonts    *FontParser
	contrast *ContrastParser
}

func New() *Interpreter {
	return &Interpreter{
		colors:   NewColorParser(),
		sizes:    NewSizeParser(),
		spacing:  NewSpacingParser(),
		fonts:    NewFontParser(),
		contrast: NewContrastParser(),
	}
}

func (i *Interpreter) Colors() *ColorParser      { return i.colors }
func (i *Interpreter) Sizes() *SizeParser        { return i.sizes }
func (i *Interpreter) Spacing() *SpacingParser   { return i.spacing }
func (i *Interpreter) Fonts() *FontParser        { return i.fonts }
func (i *Interpreter) Contrast() *ContrastParser { return i.contrast }

// ParseChanges extracts every style change an instruction asks for, against
// the element's current snapshot. The color and font parsers always run.
// Size and spacing answer with a fallback even for unrelated text, so they
// only run when the instruction mentions their keywords.
//
// The aggregate confidence is the maximum over contributing parsers, never
// an average.
func (i *Interpreter) ParseChanges(instruction string, snapshot style.Snapshot) style.ChangeSet {
	lowered := strings.ToLower(instruction)

	var set style.ChangeSet
	confidence := 0.0

	color := i.colors.Parse(instruction)
	if color.Confidence > colorApplyThreshold {
		if color.Background {
			set.BackgroundColor = color.Hex
		} else {
			set.Color = color.Hex
		}
		confidence = math.Max(confidence, color.Confidence)
	}

	if containsAny(lowered, sizeGateKeywords) {
		size := i.sizes.Parse(instruction, snapshot.FontSize)
		set.FontSize = size.Pixels
		confidence = math.Max(confidence, size.Confidence)
	}

	font := i.fonts.Parse(instruction)
	if font.Fired() {
		set.FontFamily = font.Family
		set.FontWeight = font.Weight
		set.LineHeight = font.LineHeight
		confidence = math.Max(confidence, font.Confidence)
	}

	if containsAny(lowered, spacingGateKeywords) {
		spacing := i.spacing.Parse(instruction, spacingBaseline(snapshot))
		spacing.Apply(&set)
		confidence = math.Max(confidence, spacing.Confidence)
	}

	set.Confidence = confidence
	return set
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// spacingBaseline picks the current value spacing changes scale from:
// the top margin, else the top padding, else the default.
func spacingBaseline(snapshot style.Snapshot) float64 {
	if snapshot.MarginTop != nil && *snapshot.MarginTop > 0 {
		return *snapshot.MarginTop
	}
	if snapshot.PaddingTop != nil && *snapshot.PaddingTop > 0 {
		return *snapshot.PaddingTop
	}
	return DefaultSpacing
}
