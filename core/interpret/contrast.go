package interpret

import (
	"regexp"
	"strings"
)

const (
	contrastComplaintConfidence = 0.9
	contrastExplicitConfidence  = 0.8
	contrastDefaultConfidence   = 0.5
	contrastBackgroundDelta     = 20.0
	contrastForegroundDelta     = -20.0
)

type ContrastAction int

const (
	// ContrastIncrease widens the distance between foreground and
	// background.
	ContrastIncrease ContrastAction = iota
	// ContrastFix recomputes the pairing outright.
	ContrastFix
)

var contrastActionNames = map[ContrastAction]string{
	ContrastIncrease: "increase",
	ContrastFix:      "fix",
}

func (a ContrastAction) String() string {
	if name, ok := contrastActionNames[a]; ok {
		return name
	}
	return "increase"
}

// ContrastResult is advisory: it names the action and, for readability
// complaints, how far to push each side. It never enters a change-set
// directly; the caller decides what to do with it.
type ContrastResult struct {
	Action ContrastAction
	// BackgroundDelta is how much to lighten the background, in channel
	// units. Zero when the parser has no opinion.
	BackgroundDelta float64
	// ForegroundDelta is how much to darken the foreground, negative.
	ForegroundDelta float64
	Confidence      float64
}

// ContrastParser triages contrast and readability phrasing.
type ContrastParser struct {
	complaintPattern *regexp.Regexp
	explicitPattern  *regexp.Regexp
}

func NewContrastParser() *ContrastParser {
	return &ContrastParser{
		complaintPattern: regexp.MustCompile(`hard\s+to\s+read|can'?t\s+see|cannot\s+see|difficult\s+to\s+read`),
		explicitPattern:  regexp.MustCompile(`\b(?:better|improve|improved|fix)\s+(?:the\s+)?contrast\b`),
	}
}

// Parse triages the text. Readability complaints score highest and carry
// concrete channel deltas; an explicit ask to improve contrast maps to a
// fix; anything else defaults to a low-confidence increase.
func (p *ContrastParser) Parse(text string) ContrastResult {
	lowered := strings.ToLower(text)

	if p.complaintPattern.MatchString(lowered) {
		return ContrastResult{
			Action:          ContrastIncrease,
			BackgroundDelta: contrastBackgroundDelta,
			ForegroundDelta: contrastForegroundDelta,
			Confidence:      contrastComplaintConfidence,
		}
	}

	if p.explicitPattern.MatchString(lowered) {
		return ContrastResult{
			Action:     ContrastFix,
			Confidence: contrastExplicitConfidence,
		}
	}

	return ContrastResult{
		Action:     ContrastIncrease,
		Confidence: contrastDefaultConfidence,
	}
}
