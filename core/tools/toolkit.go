// Package tools is the outward boundary of the styling engine. Four
// operations cover single-property edits, free-text instructions, preset
// application and improvement review. Every operation returns a uniform
// ToolResult; failures and recovered panics come back as unsuccessful
// results, never as errors.
package tools

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/adalundhe/restyle/core/cache"
	"github.com/adalundhe/restyle/core/interpret"
	"github.com/adalundhe/restyle/core/presets"
	"github.com/adalundhe/restyle/core/style"
	"github.com/adalundhe/restyle/core/suggest"
)

// ToolResult is the uniform response shape for every operation.
type ToolResult struct {
	ID          string          `json:"id"`
	ElementID   string          `json:"elementId"`
	Success     bool            `json:"success"`
	Changes     style.ChangeSet `json:"changes"`
	Message     string          `json:"message"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Duration    time.Duration   `json:"duration"`
}

// Config configures a Toolkit. The zero value is usable: default logger,
// no cache, builtin presets only.
type Config struct {
	// Logger receives structured operation logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Cache memoizes instruction parses. Optional.
	Cache *cache.Cache

	// UserPresets extends the builtin preset catalog.
	UserPresets []presets.Preset
}

// Toolkit owns the interpreter, preset catalog and suggestion engine, and
// exposes them as the four styling operations.
type Toolkit struct {
	interpreter *interpret.Interpreter
	resolver    *presets.Resolver
	engine      *suggest.Engine
	cache       *cache.Cache
	logger      *slog.Logger
}

// New creates a Toolkit. Fails only when a user preset is invalid.
func New(config Config) (*Toolkit, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	resolver, err := presets.NewResolverWith(config.UserPresets)
	if err != nil {
		return nil, fmt.Errorf("building preset catalog: %w", err)
	}

	return &Toolkit{
		interpreter: interpret.New(),
		resolver:    resolver,
		engine:      suggest.NewEngine(),
		cache:       config.Cache,
		logger:      logger,
	}, nil
}

// Interpreter exposes the underlying parsers.
func (t *Toolkit) Interpreter() *interpret.Interpreter {
	return t.interpreter
}

// Resolver exposes the preset catalog.
func (t *Toolkit) Resolver() *presets.Resolver {
	return t.resolver
}

// Engine exposes the suggestion engine.
func (t *Toolkit) Engine() *suggest.Engine {
	return t.engine
}

// =============================================================================
// Operations
// =============================================================================

// EditProperty sets one property on an element from a natural-language
// value. current is the property's present numeric value, the baseline for
// relative phrases; pass 0 when unknown.
func (t *Toolkit) EditProperty(elementID, property, value string, current float64) (result ToolResult) {
	started := time.Now()
	defer t.recoverTo(&result, elementID, started)

	prop, ok := style.ParseProperty(property)
	if !ok {
		return t.failure(elementID, started, fmt.Sprintf(
			"%v %q; supported properties: %s",
			ErrUnknownProperty, property, strings.Join(style.PropertyNames(), ", ")))
	}

	set, message, err := t.resolveProperty(prop, value, current)
	if err != nil {
		return t.failure(elementID, started, err.Error())
	}

	t.logger.Debug("edited property",
		"element_id", elementID,
		"property", prop.String(),
		"confidence", set.Confidence)

	return t.success(elementID, started, set, message, nil)
}

// EditMultipleProperties applies a free-text instruction that may touch any
// number of properties at once. An instruction the parsers cannot place
// anywhere comes back unsuccessful with guidance.
func (t *Toolkit) EditMultipleProperties(elementID, instruction string, snapshot style.Snapshot) (result ToolResult) {
	started := time.Now()
	defer t.recoverTo(&result, elementID, started)

	set := t.parseChanges(instruction, snapshot)
	if set.IsEmpty() {
		return t.failure(elementID, started, fmt.Sprintf(
			"%v in %q; try describing a color, size, spacing, or font change, e.g. \"make it blue and a bit bigger\"",
			ErrEmptyChangeSet, instruction))
	}

	fields := set.FieldNames()
	t.logger.Debug("applied instruction",
		"element_id", elementID,
		"fields", fields,
		"confidence", set.Confidence)

	return t.success(elementID, started, set,
		fmt.Sprintf("updated %s", strings.Join(fields, ", ")), nil)
}

// ApplyStylePreset resolves a preset by name or loose description and
// returns its full change-set.
func (t *Toolkit) ApplyStylePreset(elementID, nameOrDescription string) (result ToolResult) {
	started := time.Now()
	defer t.recoverTo(&result, elementID, started)

	preset := t.resolver.Resolve(nameOrDescription)
	if preset == nil {
		return t.failure(elementID, started, fmt.Sprintf(
			"%v %q; available presets: %s",
			ErrUnknownPreset, nameOrDescription, strings.Join(t.resolver.Names(), ", ")))
	}

	t.logger.Debug("applied preset", "element_id", elementID, "preset", preset.Name)

	return t.success(elementID, started, preset.Changes,
		fmt.Sprintf("applied %s preset: %s", preset.Name, preset.Description), nil)
}

// SuggestImprovements audits the element's current styles and proposes
// fixes. A clean audit is still a success, with an empty suggestion list.
func (t *Toolkit) SuggestImprovements(elementID string, snapshot style.Snapshot, role style.Role) (result ToolResult) {
	started := time.Now()
	defer t.recoverTo(&result, elementID, started)

	review := t.engine.Review(snapshot, role)
	if review.Passed() {
		return t.success(elementID, started, review.Proposed,
			"styling looks good, nothing to suggest", nil)
	}

	message := fmt.Sprintf("found %d improvement", len(review.Suggestions))
	if len(review.Suggestions) != 1 {
		message += "s"
	}

	return t.success(elementID, started, review.Proposed, message, review.Suggestions)
}

// =============================================================================
// Property dispatch
// =============================================================================

func (t *Toolkit) resolveProperty(prop style.Property, value string, current float64) (style.ChangeSet, string, error) {
	switch {
	case prop == style.PropertyColor || prop == style.PropertyBackgroundColor:
		return t.resolveColor(prop, value)
	case prop == style.PropertyFontSize:
		return t.resolveFontSize(value, current)
	case prop == style.PropertyFontFamily:
		return t.resolveFontFamily(value)
	case prop == style.PropertyFontWeight:
		return t.resolveFontWeight(value)
	case prop == style.PropertyLineHeight:
		return t.resolveLineHeight(value)
	case prop.IsSpacing():
		return t.resolveSpacing(prop, value, current)
	default:
		return t.resolveLength(prop, value)
	}
}

func (t *Toolkit) resolveColor(prop style.Property, value string) (style.ChangeSet, string, error) {
	parsed := t.interpreter.Colors().Parse(value)
	if parsed.Source == interpret.SourceFallback {
		return style.ChangeSet{}, "", fmt.Errorf(
			"%w: %q is not a recognized color; try a name like \"blue\", hex like #0071e3, or rgb(0, 113, 227)",
			ErrUnresolvedValue, value)
	}

	set := style.ChangeSet{Confidence: parsed.Confidence}
	if prop == style.PropertyBackgroundColor {
		set.BackgroundColor = parsed.Hex
	} else {
		set.Color = parsed.Hex
	}

	return set, fmt.Sprintf("set %s to %s", prop, parsed.Hex), nil
}

func (t *Toolkit) resolveFontSize(value string, current float64) (style.ChangeSet, string, error) {
	parsed := t.interpreter.Sizes().Parse(value, current)

	set := style.ChangeSet{FontSize: parsed.Pixels, Confidence: parsed.Confidence}
	return set, fmt.Sprintf("set fontSize to %gpx", parsed.Pixels), nil
}

func (t *Toolkit) resolveFontFamily(value string) (style.ChangeSet, string, error) {
	parsed := t.interpreter.Fonts().Parse(value)
	if parsed.Family == "" {
		return style.ChangeSet{}, "", fmt.Errorf(
			"%w: %q is not a recognized font; try \"helvetica\", \"georgia\", \"inter\", or \"monospace\"",
			ErrUnresolvedValue, value)
	}

	set := style.ChangeSet{FontFamily: parsed.Family, Confidence: parsed.Confidence}
	return set, fmt.Sprintf("set fontFamily to %s", parsed.Family), nil
}

func (t *Toolkit) resolveFontWeight(value string) (style.ChangeSet, string, error) {
	parsed := t.interpreter.Fonts().Parse(value)
	if parsed.Weight == 0 {
		return style.ChangeSet{}, "", fmt.Errorf(
			"%w: %q is not a recognized weight; try \"bold\", \"light\", or \"normal\"",
			ErrUnresolvedValue, value)
	}

	set := style.ChangeSet{FontWeight: parsed.Weight, Confidence: parsed.Confidence}
	return set, fmt.Sprintf("set fontWeight to %d", parsed.Weight), nil
}

func (t *Toolkit) resolveLineHeight(value string) (style.ChangeSet, string, error) {
	parsed, ok := t.interpreter.Fonts().ParseLineHeight(value)
	if !ok {
		return style.ChangeSet{}, "", fmt.Errorf(
			"%w: %q is not a line height; try a multiplier like \"1.5\", or \"tighter\" / \"looser\"",
			ErrUnresolvedValue, value)
	}

	set := style.ChangeSet{LineHeight: parsed.Value, Confidence: parsed.Confidence}
	return set, fmt.Sprintf("set lineHeight to %g", parsed.Value), nil
}

func (t *Toolkit) resolveSpacing(prop style.Property, value string, current float64) (style.ChangeSet, string, error) {
	parsed := t.interpreter.Spacing().Parse(value, current)
	// The named property wins over whatever the value's phrasing implied.
	parsed.Kind, parsed.Direction = spacingTarget(prop)

	set := style.ChangeSet{Confidence: parsed.Confidence}
	parsed.Apply(&set)

	return set, fmt.Sprintf("set %s to %gpx", prop, parsed.Pixels), nil
}

func (t *Toolkit) resolveLength(prop style.Property, value string) (style.ChangeSet, string, error) {
	length, confidence, ok := t.interpreter.Sizes().ParseLength(value)
	if !ok {
		return style.ChangeSet{}, "", fmt.Errorf(
			"%w: %q is not a length; try \"120px\", \"50%%\", \"full\", \"half\", or \"auto\"",
			ErrUnresolvedValue, value)
	}

	set := style.ChangeSet{Confidence: confidence}
	if prop == style.PropertyHeight {
		set.Height = length
	} else {
		set.Width = length
	}

	return set, fmt.Sprintf("set %s to %s", prop, length), nil
}

func spacingTarget(prop style.Property) (interpret.SpacingKind, interpret.Direction) {
	kind := interpret.SpacingMargin
	if prop.IsPadding() {
		kind = interpret.SpacingPadding
	}

	switch prop {
	case style.PropertyMarginTop, style.PropertyPaddingTop:
		return kind, interpret.DirectionTop
	case style.PropertyMarginBottom, style.PropertyPaddingBottom:
		return kind, interpret.DirectionBottom
	case style.PropertyMarginLeft, style.PropertyPaddingLeft:
		return kind, interpret.DirectionLeft
	case style.PropertyMarginRight, style.PropertyPaddingRight:
		return kind, interpret.DirectionRight
	default:
		return kind, interpret.DirectionAll
	}
}

// =============================================================================
// Result plumbing
// =============================================================================

func (t *Toolkit) parseChanges(instruction string, snapshot style.Snapshot) style.ChangeSet {
	if t.cache != nil {
		if set, ok := t.cache.Get(instruction, snapshot); ok {
			return set
		}
	}

	set := t.interpreter.ParseChanges(instruction, snapshot)

	if t.cache != nil {
		t.cache.Set(instruction, snapshot, set)
	}

	return set
}

func (t *Toolkit) success(elementID string, started time.Time, set style.ChangeSet, message string, suggestions []string) ToolResult {
	return ToolResult{
		ID:          uuid.NewString(),
		ElementID:   elementID,
		Success:     true,
		Changes:     set,
		Message:     message,
		Suggestions: suggestions,
		Duration:    time.Since(started),
	}
}

func (t *Toolkit) failure(elementID string, started time.Time, message string) ToolResult {
	return ToolResult{
		ID:        uuid.NewString(),
		ElementID: elementID,
		Success:   false,
		Message:   message,
		Duration:  time.Since(started),
	}
}

func (t *Toolkit) recoverTo(result *ToolResult, elementID string, started time.Time) {
	r := recover()
	if r == nil {
		return
	}

	t.logger.Error("tool operation panicked", "element_id", elementID, "panic", r)
	*result = t.failure(elementID, started, fmt.Sprintf("internal error: %v", r))
}
