package presets

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnnamedPreset   = errors.New("preset has no name")
	ErrReservedName    = errors.New("preset name is reserved by a built-in")
	ErrDuplicatePreset = errors.New("duplicate preset name")
	ErrEmptyPreset     = errors.New("preset carries no style changes")
)

// synonym maps a descriptive word onto a built-in preset. Checked in
// declaration order, after the catalog names themselves.
type synonym struct {
	word   string
	target string
}

var synonyms = []synonym{
	{"minimal", "minimalist"},
	{"whitespace", "minimalist"},
	{"clean", "minimalist"},
	{"professional", "stripe"},
	{"modern", "stripe"},
	{"corporate", "stripe"},
	{"strong", "bold"},
	{"impactful", "bold"},
	{"sleek", "apple"},
	{"premium", "apple"},
	{"elegant", "apple"},
}

// Resolver maps free-form preset requests onto the catalog. The catalog is
// fixed at construction; resolution is pure lookup and the same request
// always yields the same preset.
type Resolver struct {
	names   []string
	catalog map[string]Preset
}

// NewResolver builds a resolver over the built-in catalog.
func NewResolver() *Resolver {
	r := &Resolver{catalog: make(map[string]Preset)}
	for _, p := range Builtins() {
		r.names = append(r.names, p.Name)
		r.catalog[p.Name] = p
	}
	return r
}

// NewResolverWith extends the built-in catalog with user-defined presets.
// Built-in names are reserved and duplicates are rejected; synonyms keep
// resolving to built-ins only.
func NewResolverWith(user []Preset) (*Resolver, error) {
	r := NewResolver()
	builtin := make(map[string]bool, len(r.names))
	for _, name := range r.names {
		builtin[name] = true
	}

	for _, p := range user {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		switch {
		case name == "":
			return nil, ErrUnnamedPreset
		case builtin[name]:
			return nil, fmt.Errorf("%w: %s", ErrReservedName, name)
		case r.catalog[name].Name != "":
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePreset, name)
		case p.Changes.IsEmpty():
			return nil, fmt.Errorf("%w: %s", ErrEmptyPreset, name)
		}

		p.Name = name
		p.Changes.Confidence = 1.0
		r.names = append(r.names, name)
		r.catalog[name] = p
	}

	return r, nil
}

// Resolve finds the preset a request names or describes. Catalog names win
// over synonyms; an unmatched request resolves to nil rather than a guess.
// The returned preset is a private copy.
func (r *Resolver) Resolve(query string) *Preset {
	lowered := strings.ToLower(strings.TrimSpace(query))
	if lowered == "" {
		return nil
	}

	for _, name := range r.names {
		if strings.Contains(lowered, name) {
			return r.copyOf(name)
		}
	}

	for _, s := range synonyms {
		if strings.Contains(lowered, s.word) {
			return r.copyOf(s.target)
		}
	}

	return nil
}

func (r *Resolver) copyOf(name string) *Preset {
	p, ok := r.catalog[name]
	if !ok {
		return nil
	}
	out := p
	out.Changes = p.Changes.Clone()
	return &out
}

// Names returns the catalog names in resolution order.
func (r *Resolver) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// All returns copies of every catalog entry in resolution order.
func (r *Resolver) All() []Preset {
	out := make([]Preset, 0, len(r.names))
	for _, name := range r.names {
		if p := r.copyOf(name); p != nil {
			out = append(out, *p)
		}
	}
	return out
}
