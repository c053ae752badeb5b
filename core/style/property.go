package style

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Property int

const (
	PropertyColor Property = iota
	PropertyBackgroundColor
	PropertyFontSize
	PropertyFontFamily
	PropertyFontWeight
	PropertyLineHeight
	PropertyMargin
	PropertyMarginTop
	PropertyMarginBottom
	PropertyMarginLeft
	PropertyMarginRight
	PropertyPadding
	PropertyPaddingTop
	PropertyPaddingBottom
	PropertyPaddingLeft
	PropertyPaddingRight
	PropertyWidth
	PropertyHeight
)

var propertyNames = map[Property]string{
	PropertyColor:           "color",
	PropertyBackgroundColor: "backgroundColor",
	PropertyFontSize:        "fontSize",
	PropertyFontFamily:      "fontFamily",
	PropertyFontWeight:      "fontWeight",
	PropertyLineHeight:      "lineHeight",
	PropertyMargin:          "margin",
	PropertyMarginTop:       "marginTop",
	PropertyMarginBottom:    "marginBottom",
	PropertyMarginLeft:      "marginLeft",
	PropertyMarginRight:     "marginRight",
	PropertyPadding:         "padding",
	PropertyPaddingTop:      "paddingTop",
	PropertyPaddingBottom:   "paddingBottom",
	PropertyPaddingLeft:     "paddingLeft",
	PropertyPaddingRight:    "paddingRight",
	PropertyWidth:           "width",
	PropertyHeight:          "height",
}

var nameToProperty = map[string]Property{}

func init() {
	for p, name := range propertyNames {
		nameToProperty[normalizePropertyName(name)] = p
	}
}

func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("property(%d)", p)
}

func (p Property) IsValid() bool {
	_, ok := propertyNames[p]
	return ok
}

// ParseProperty resolves a property identifier. Matching tolerates case and
// the kebab/snake spellings agents tend to emit ("font-size", "font_size").
// Anything else is a miss; callers surface the supported set to the user.
func ParseProperty(s string) (Property, bool) {
	p, ok := nameToProperty[normalizePropertyName(s)]
	return p, ok
}

func normalizePropertyName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// Properties returns every supported property in declaration order.
func Properties() []Property {
	return []Property{
		PropertyColor,
		PropertyBackgroundColor,
		PropertyFontSize,
		PropertyFontFamily,
		PropertyFontWeight,
		PropertyLineHeight,
		PropertyMargin,
		PropertyMarginTop,
		PropertyMarginBottom,
		PropertyMarginLeft,
		PropertyMarginRight,
		PropertyPadding,
		PropertyPaddingTop,
		PropertyPaddingBottom,
		PropertyPaddingLeft,
		PropertyPaddingRight,
		PropertyWidth,
		PropertyHeight,
	}
}

// PropertyNames returns the canonical identifiers in declaration order, for
// error messages that list the supported set.
func PropertyNames() []string {
	props := Properties()
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.String()
	}
	return names
}

func (p Property) IsMargin() bool {
	switch p {
	case PropertyMargin, PropertyMarginTop, PropertyMarginBottom, PropertyMarginLeft, PropertyMarginRight:
		return true
	default:
		return false
	}
}

func (p Property) IsPadding() bool {
	switch p {
	case PropertyPadding, PropertyPaddingTop, PropertyPaddingBottom, PropertyPaddingLeft, PropertyPaddingRight:
		return true
	default:
		return false
	}
}

func (p Property) IsSpacing() bool {
	return p.IsMargin() || p.IsPadding()
}

func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, ok := ParseProperty(s)
	if !ok {
		return fmt.Errorf("invalid property: %s", s)
	}

	*p = parsed
	return nil
}
