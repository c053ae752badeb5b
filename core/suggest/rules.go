package suggest

import (
	"fmt"
	"strings"

	"github.com/adalundhe/restyle/core/style"
)

const (
	headlineMinFontSize      = 24.0
	headlineProposedFontSize = 32.0
	bodyMinFontSize          = 16.0
	minLineHeight            = 1.4
	proposedLineHeight       = 1.5
	readableTextColor        = "#1a1a1a"
	headlineMinMarginTop     = 24.0
	headlineMinMarginBottom  = 16.0
	modernFontStack          = "Inter, -apple-system, BlinkMacSystemFont, sans-serif"
)

// lowContrastColors are mid-grays that sit under readable contrast on the
// light backgrounds builders default to. Short hex forms name the same
// colors and match too.
var lowContrastColors = map[string]bool{
	"#666666": true,
	"#999999": true,
	"#666":    true,
	"#999":    true,
}

var legacyFamilies = []string{"times", "georgia", "garamond", "courier"}

// ruleFunc inspects a snapshot and, when it has something to say, writes
// its proposal into the shared change-set and returns the message. Rules
// only judge properties the snapshot actually carries.
type ruleFunc func(snapshot style.Snapshot, role style.Role, proposed *style.ChangeSet) (string, bool)

type rule struct {
	name  string
	apply ruleFunc
}

func defaultRules() []rule {
	return []rule{
		{name: "font-size-minimum", apply: fontSizeMinimum},
		{name: "line-height-minimum", apply: lineHeightMinimum},
		{name: "low-contrast-text", apply: lowContrastText},
		{name: "headline-margin-top", apply: headlineMarginTop},
		{name: "headline-margin-bottom", apply: headlineMarginBottom},
		{name: "headline-legacy-family", apply: headlineLegacyFamily},
	}
}

func fontSizeMinimum(snapshot style.Snapshot, role style.Role, proposed *style.ChangeSet) (string, bool) {
	if snapshot.FontSize <= 0 {
		return "", false
	}

	if role == style.RoleHeadline {
		if snapshot.FontSize >= headlineMinFontSize {
			return "", false
		}
		proposed.FontSize = headlineProposedFontSize
		return fmt.Sprintf("Headline font size %gpx is small for a heading; try %gpx.",
			snapshot.FontSize, headlineProposedFontSize), true
	}

	if snapshot.FontSize >= bodyMinFontSize {
		return "", false
	}
	proposed.FontSize = bodyMinFontSize
	return fmt.Sprintf("Body text at %gpx is hard to read; try %gpx.",
		snapshot.FontSize, bodyMinFontSize), true
}

func lineHeightMinimum(snapshot style.Snapshot, _ style.Role, proposed *style.ChangeSet) (string, bool) {
	if snapshot.LineHeight <= 0 || snapshot.LineHeight >= minLineHeight {
		return "", false
	}
	proposed.LineHeight = proposedLineHeight
	return fmt.Sprintf("Line height %g is cramped; try %g for comfortable reading.",
		snapshot.LineHeight, proposedLineHeight), true
}

func lowContrastText(snapshot style.Snapshot, _ style.Role, proposed *style.ChangeSet) (string, bool) {
	color := strings.ToLower(snapshot.Color)
	if !lowContrastColors[color] {
		return "", false
	}
	proposed.Color = readableTextColor
	return fmt.Sprintf("Text color %s is low contrast on light backgrounds; try %s.",
		color, readableTextColor), true
}

func headlineMarginTop(snapshot style.Snapshot, role style.Role, proposed *style.ChangeSet) (string, bool) {
	if role != style.RoleHeadline || snapshot.MarginTop == nil || *snapshot.MarginTop >= headlineMinMarginTop {
		return "", false
	}
	proposed.MarginTop = style.Float(headlineMinMarginTop)
	return fmt.Sprintf("Headlines read better with space above; try a %gpx top margin.",
		headlineMinMarginTop), true
}

func headlineMarginBottom(snapshot style.Snapshot, role style.Role, proposed *style.ChangeSet) (string, bool) {
	if role != style.RoleHeadline || snapshot.MarginBottom == nil || *snapshot.MarginBottom >= headlineMinMarginBottom {
		return "", false
	}
	proposed.MarginBottom = style.Float(headlineMinMarginBottom)
	return fmt.Sprintf("Give the headline room to breathe below; try a %gpx bottom margin.",
		headlineMinMarginBottom), true
}

func headlineLegacyFamily(snapshot style.Snapshot, role style.Role, proposed *style.ChangeSet) (string, bool) {
	if role != style.RoleHeadline || snapshot.FontFamily == "" {
		return "", false
	}

	family := strings.ToLower(snapshot.FontFamily)
	if !isLegacyFamily(family) {
		return "", false
	}

	proposed.FontFamily = modernFontStack
	return fmt.Sprintf("The headline uses a dated typeface; try %q.", modernFontStack), true
}

func isLegacyFamily(family string) bool {
	for _, legacy := range legacyFamilies {
		if strings.Contains(family, legacy) {
			return true
		}
	}
	return hasStandaloneSerif(family)
}

// hasStandaloneSerif reports a bare "serif" that is not part of
// "sans-serif".
func hasStandaloneSerif(family string) bool {
	stripped := strings.ReplaceAll(family, "sans-serif", "")
	stripped = strings.ReplaceAll(stripped, "sans serif", "")
	return strings.Contains(stripped, "serif")
}
