package style

import (
	"encoding/json"
	"testing"
)

func TestProperty_String(t *testing.T) {
	tests := []struct {
		property Property
		expected string
	}{
		{PropertyColor, "color"},
		{PropertyBackgroundColor, "backgroundColor"},
		{PropertyFontSize, "fontSize"},
		{PropertyFontFamily, "fontFamily"},
		{PropertyFontWeight, "fontWeight"},
		{PropertyLineHeight, "lineHeight"},
		{PropertyMargin, "margin"},
		{PropertyMarginTop, "marginTop"},
		{PropertyMarginBottom, "marginBottom"},
		{PropertyMarginLeft, "marginLeft"},
		{PropertyMarginRight, "marginRight"},
		{PropertyPadding, "padding"},
		{PropertyPaddingTop, "paddingTop"},
		{PropertyPaddingBottom, "paddingBottom"},
		{PropertyPaddingLeft, "paddingLeft"},
		{PropertyPaddingRight, "paddingRight"},
		{PropertyWidth, "width"},
		{PropertyHeight, "height"},
		{Property(999), "property(999)"},
	}

	for _, tc := range tests {
		if got := tc.property.String(); got != tc.expected {
			t.Errorf("Property(%d).String() = %s, want %s", tc.property, got, tc.expected)
		}
	}
}

func TestProperty_IsValid(t *testing.T) {
	for _, p := range Properties() {
		if !p.IsValid() {
			t.Errorf("Property %s should be valid", p)
		}
	}

	if Property(999).IsValid() {
		t.Error("Property(999) should not be valid")
	}
}

func TestParseProperty(t *testing.T) {
	tests := []struct {
		input    string
		expected Property
		ok       bool
	}{
		{"color", PropertyColor, true},
		{"backgroundColor", PropertyBackgroundColor, true},
		{"fontSize", PropertyFontSize, true},
		{"marginTop", PropertyMarginTop, true},
		{"paddingRight", PropertyPaddingRight, true},
		{"width", PropertyWidth, true},
		{"height", PropertyHeight, true},
		{"font-size", PropertyFontSize, true},
		{"font_size", PropertyFontSize, true},
		{"FONTSIZE", PropertyFontSize, true},
		{"background-color", PropertyBackgroundColor, true},
		{"  lineHeight  ", PropertyLineHeight, true},
		{"opacity", Property(0), false},
		{"transform", Property(0), false},
		{"", Property(0), false},
	}

	for _, tc := range tests {
		got, ok := ParseProperty(tc.input)
		if ok != tc.ok {
			t.Errorf("ParseProperty(%q) ok = %v, want %v", tc.input, ok, tc.ok)
		}
		if ok && got != tc.expected {
			t.Errorf("ParseProperty(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestProperties(t *testing.T) {
	props := Properties()
	if len(props) != 18 {
		t.Errorf("Properties() returned %d properties, want 18", len(props))
	}

	names := PropertyNames()
	if len(names) != len(props) {
		t.Errorf("PropertyNames() returned %d names, want %d", len(names), len(props))
	}
	for i, p := range props {
		if names[i] != p.String() {
			t.Errorf("PropertyNames()[%d] = %s, want %s", i, names[i], p)
		}
	}
}

func TestProperty_IsSpacing(t *testing.T) {
	spacingExpected := map[Property]bool{
		PropertyColor:         false,
		PropertyFontSize:      false,
		PropertyMargin:        true,
		PropertyMarginTop:     true,
		PropertyMarginBottom:  true,
		PropertyMarginLeft:    true,
		PropertyMarginRight:   true,
		PropertyPadding:       true,
		PropertyPaddingTop:    true,
		PropertyPaddingBottom: true,
		PropertyPaddingLeft:   true,
		PropertyPaddingRight:  true,
		PropertyWidth:         false,
		PropertyHeight:        false,
	}

	for p, expected := range spacingExpected {
		if p.IsSpacing() != expected {
			t.Errorf("%s.IsSpacing() = %v, want %v", p, p.IsSpacing(), expected)
		}
	}

	if PropertyMargin.IsPadding() {
		t.Error("margin should not be a padding property")
	}
	if PropertyPaddingLeft.IsMargin() {
		t.Error("paddingLeft should not be a margin property")
	}
}

func TestProperty_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(PropertyFontSize)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	expected := `"fontSize"`
	if string(data) != expected {
		t.Errorf("json.Marshal(PropertyFontSize) = %s, want %s", data, expected)
	}
}

func TestProperty_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		input    string
		expected Property
		wantErr  bool
	}{
		{`"color"`, PropertyColor, false},
		{`"font-size"`, PropertyFontSize, false},
		{`"opacity"`, Property(0), true},
	}

	for _, tc := range tests {
		var p Property
		err := json.Unmarshal([]byte(tc.input), &p)
		if (err != nil) != tc.wantErr {
			t.Errorf("json.Unmarshal(%s) error = %v, wantErr = %v", tc.input, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && p != tc.expected {
			t.Errorf("json.Unmarshal(%s) = %v, want %v", tc.input, p, tc.expected)
		}
	}
}
