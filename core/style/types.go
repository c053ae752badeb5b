// Package style defines the value types shared across the interpretation
// engine: sparse change-sets, element snapshots, property identifiers, and
// element roles.
package style

import "strings"

// Float returns a pointer to v. Margin and padding fields are pointers so
// that an explicit zero survives serialization as "set to 0" rather than
// "unset".
func Float(v float64) *float64 {
	return &v
}

// ChangeSet is a sparse set of style mutations for a single element. Unset
// fields mean "leave alone". Confidence describes the set as a whole and is
// always populated, even for empty sets.
type ChangeSet struct {
	Color           string   `json:"color,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	FontSize        float64  `json:"fontSize,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	FontWeight      int      `json:"fontWeight,omitempty"`
	LineHeight      float64  `json:"lineHeight,omitempty"`
	MarginTop       *float64 `json:"marginTop,omitempty"`
	MarginBottom    *float64 `json:"marginBottom,omitempty"`
	MarginLeft      *float64 `json:"marginLeft,omitempty"`
	MarginRight     *float64 `json:"marginRight,omitempty"`
	PaddingTop      *float64 `json:"paddingTop,omitempty"`
	PaddingBottom   *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft     *float64 `json:"paddingLeft,omitempty"`
	PaddingRight    *float64 `json:"paddingRight,omitempty"`
	Width           string   `json:"width,omitempty"`
	Height          string   `json:"height,omitempty"`
	Confidence      float64  `json:"confidence"`
}

// IsEmpty reports whether the set carries no mutations. Confidence does not
// count; an empty set at confidence 0 is the canonical "nothing understood"
// value.
func (c ChangeSet) IsEmpty() bool {
	return c.Color == "" &&
		c.BackgroundColor == "" &&
		c.FontSize == 0 &&
		c.FontFamily == "" &&
		c.FontWeight == 0 &&
		c.LineHeight == 0 &&
		c.MarginTop == nil &&
		c.MarginBottom == nil &&
		c.MarginLeft == nil &&
		c.MarginRight == nil &&
		c.PaddingTop == nil &&
		c.PaddingBottom == nil &&
		c.PaddingLeft == nil &&
		c.PaddingRight == nil &&
		c.Width == "" &&
		c.Height == ""
}

// Clone returns a deep copy. Pointer fields are reallocated so callers can
// mutate the copy without reaching back into shared catalog entries.
func (c ChangeSet) Clone() ChangeSet {
	out := c
	out.MarginTop = clonePtr(c.MarginTop)
	out.MarginBottom = clonePtr(c.MarginBottom)
	out.MarginLeft = clonePtr(c.MarginLeft)
	out.MarginRight = clonePtr(c.MarginRight)
	out.PaddingTop = clonePtr(c.PaddingTop)
	out.PaddingBottom = clonePtr(c.PaddingBottom)
	out.PaddingLeft = clonePtr(c.PaddingLeft)
	out.PaddingRight = clonePtr(c.PaddingRight)
	return out
}

func clonePtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

// Merge overlays other onto c field by field. Fields set in other win.
// The merged confidence is the higher of the two.
func (c ChangeSet) Merge(other ChangeSet) ChangeSet {
	out := c.Clone()
	if other.Color != "" {
		out.Color = other.Color
	}
	if other.BackgroundColor != "" {
		out.BackgroundColor = other.BackgroundColor
	}
	if other.FontSize != 0 {
		out.FontSize = other.FontSize
	}
	if other.FontFamily != "" {
		out.FontFamily = other.FontFamily
	}
	if other.FontWeight != 0 {
		out.FontWeight = other.FontWeight
	}
	if other.LineHeight != 0 {
		out.LineHeight = other.LineHeight
	}
	if other.MarginTop != nil {
		out.MarginTop = clonePtr(other.MarginTop)
	}
	if other.MarginBottom != nil {
		out.MarginBottom = clonePtr(other.MarginBottom)
	}
	if other.MarginLeft != nil {
		out.MarginLeft = clonePtr(other.MarginLeft)
	}
	if other.MarginRight != nil {
		out.MarginRight = clonePtr(other.MarginRight)
	}
	if other.PaddingTop != nil {
		out.PaddingTop = clonePtr(other.PaddingTop)
	}
	if other.PaddingBottom != nil {
		out.PaddingBottom = clonePtr(other.PaddingBottom)
	}
	if other.PaddingLeft != nil {
		out.PaddingLeft = clonePtr(other.PaddingLeft)
	}
	if other.PaddingRight != nil {
		out.PaddingRight = clonePtr(other.PaddingRight)
	}
	if other.Width != "" {
		out.Width = other.Width
	}
	if other.Height != "" {
		out.Height = other.Height
	}
	if other.Confidence > out.Confidence {
		out.Confidence = other.Confidence
	}
	return out
}

// FieldNames lists the wire names of the fields set on c, in declaration
// order. Used to summarize what an edit touched.
func (c ChangeSet) FieldNames() []string {
	var names []string
	if c.Color != "" {
		names = append(names, "color")
	}
	if c.BackgroundColor != "" {
		names = append(names, "backgroundColor")
	}
	if c.FontSize != 0 {
		names = append(names, "fontSize")
	}
	if c.FontFamily != "" {
		names = append(names, "fontFamily")
	}
	if c.FontWeight != 0 {
		names = append(names, "fontWeight")
	}
	if c.LineHeight != 0 {
		names = append(names, "lineHeight")
	}
	if c.MarginTop != nil {
		names = append(names, "marginTop")
	}
	if c.MarginBottom != nil {
		names = append(names, "marginBottom")
	}
	if c.MarginLeft != nil {
		names = append(names, "marginLeft")
	}
	if c.MarginRight != nil {
		names = append(names, "marginRight")
	}
	if c.PaddingTop != nil {
		names = append(names, "paddingTop")
	}
	if c.PaddingBottom != nil {
		names = append(names, "paddingBottom")
	}
	if c.PaddingLeft != nil {
		names = append(names, "paddingLeft")
	}
	if c.PaddingRight != nil {
		names = append(names, "paddingRight")
	}
	if c.Width != "" {
		names = append(names, "width")
	}
	if c.Height != "" {
		names = append(names, "height")
	}
	return names
}

// Snapshot carries the current styling of an element as reported by the
// caller. The engine never reads live page state; everything it knows about
// the element arrives here.
type Snapshot struct {
	Color           string   `json:"color,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	FontSize        float64  `json:"fontSize,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	FontWeight      int      `json:"fontWeight,omitempty"`
	LineHeight      float64  `json:"lineHeight,omitempty"`
	MarginTop       *float64 `json:"marginTop,omitempty"`
	MarginBottom    *float64 `json:"marginBottom,omitempty"`
	MarginLeft      *float64 `json:"marginLeft,omitempty"`
	MarginRight     *float64 `json:"marginRight,omitempty"`
	PaddingTop      *float64 `json:"paddingTop,omitempty"`
	PaddingBottom   *float64 `json:"paddingBottom,omitempty"`
	PaddingLeft     *float64 `json:"paddingLeft,omitempty"`
	PaddingRight    *float64 `json:"paddingRight,omitempty"`
	Width           string   `json:"width,omitempty"`
	Height          string   `json:"height,omitempty"`
}

// Role tags the semantic role of an element. Suggestion thresholds differ
// between headlines and body copy.
type Role int

const (
	RoleBody Role = iota
	RoleHeadline
)

var roleNames = map[Role]string{
	RoleBody:     "body",
	RoleHeadline: "headline",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "body"
}

// ParseRole maps a free-form role tag to a Role. Unknown tags read as body,
// which carries the least aggressive thresholds.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "headline", "heading", "header", "title", "h1", "h2", "h3":
		return RoleHeadline
	default:
		return RoleBody
	}
}
