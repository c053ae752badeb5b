package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Tool definitions
// =============================================================================

// Tool is one invocable operation with a JSON-schema input definition, so a
// dialogue layer can hand the set to an LLM as tool definitions.
type Tool struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	InputSchema *InputSchema `json:"input_schema"`

	// Handler executes the tool.
	Handler Handler `json:"-"`

	// InvokeCount tracks usage.
	InvokeCount int64 `json:"invoke_count"`
}

// InputSchema is the JSON Schema for a tool's input.
type InputSchema struct {
	Type       string            `json:"type"`
	Properties map[string]*Param `json:"properties,omitempty"`
	Required   []string          `json:"required,omitempty"`
}

// Param defines a single input parameter.
type Param struct {
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
	Enum        []string `json:"enum,omitempty"`
}

// Handler executes a tool with raw JSON input. Handlers report every
// failure through the result, never by panicking.
type Handler func(ctx context.Context, input json.RawMessage) ToolResult

// ToToolDefinition converts the tool to the wire shape LLM APIs expect.
func (t *Tool) ToToolDefinition() map[string]any {
	return map[string]any{
		"name":         t.Name,
		"description":  t.Description,
		"input_schema": t.InputSchema,
	}
}

// =============================================================================
// Tool builder
// =============================================================================

// Builder provides a fluent API for defining tools.
type Builder struct {
	tool *Tool
}

// NewTool creates a tool builder.
func NewTool(name string) *Builder {
	return &Builder{
		tool: &Tool{
			Name: name,
			InputSchema: &InputSchema{
				Type:       "object",
				Properties: make(map[string]*Param),
			},
		},
	}
}

// Description sets the tool description.
func (b *Builder) Description(desc string) *Builder {
	b.tool.Description = desc
	return b
}

// StringParam adds a string parameter.
func (b *Builder) StringParam(name, description string, required bool) *Builder {
	return b.addParam(name, &Param{Type: "string", Description: description}, required)
}

// NumberParam adds a number parameter.
func (b *Builder) NumberParam(name, description string, required bool) *Builder {
	return b.addParam(name, &Param{Type: "number", Description: description}, required)
}

// EnumParam adds a string parameter restricted to fixed values.
func (b *Builder) EnumParam(name, description string, values []string, required bool) *Builder {
	return b.addParam(name, &Param{Type: "string", Description: description, Enum: values}, required)
}

// ObjectParam adds a free-form object parameter.
func (b *Builder) ObjectParam(name, description string, required bool) *Builder {
	return b.addParam(name, &Param{Type: "object", Description: description}, required)
}

func (b *Builder) addParam(name string, param *Param, required bool) *Builder {
	b.tool.InputSchema.Properties[name] = param
	if required {
		b.tool.InputSchema.Required = append(b.tool.InputSchema.Required, name)
	}
	return b
}

// Handler sets the tool handler.
func (b *Builder) Handler(h Handler) *Builder {
	b.tool.Handler = h
	return b
}

// Build returns the constructed tool.
func (b *Builder) Build() *Tool {
	return b.tool
}

// =============================================================================
// Registry
// =============================================================================

// Registry holds tools keyed by name, preserving registration order for
// definition export.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]*Tool
	names []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]*Tool),
	}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool *Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool handler is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool already registered: %s", tool.Name)
	}

	r.tools[tool.Name] = tool
	r.names = append(r.names, tool.Name)
	return nil
}

// Get returns a tool by name, or nil.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// Names returns registered tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// All returns registered tools in registration order.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]*Tool, 0, len(r.names))
	for _, name := range r.names {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// ToolDefinitions exports every registered tool in registration order.
func (r *Registry) ToolDefinitions() []map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()

	definitions := make([]map[string]any, 0, len(r.names))
	for _, name := range r.names {
		definitions = append(definitions, r.tools[name].ToToolDefinition())
	}
	return definitions
}

// Invoke dispatches by tool name. Unknown names and handler panics come
// back as failed results; Invoke never returns an error.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (result ToolResult) {
	started := time.Now()

	r.mu.RLock()
	tool := r.tools[name]
	r.mu.RUnlock()

	if tool == nil {
		return ToolResult{
			ID:      uuid.NewString(),
			Success: false,
			Message: fmt.Sprintf("%v %q; available tools: %s",
				ErrUnknownTool, name, strings.Join(r.Names(), ", ")),
			Duration: time.Since(started),
		}
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = ToolResult{
				ID:       uuid.NewString(),
				Success:  false,
				Message:  fmt.Sprintf("internal error: %v", rec),
				Duration: time.Since(started),
			}
		}
	}()

	result = tool.Handler(ctx, input)

	r.mu.Lock()
	tool.InvokeCount++
	r.mu.Unlock()

	return result
}
