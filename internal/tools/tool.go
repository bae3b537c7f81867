package tools

import (
	"context"
	"fmt"
)

// Tool is an auxiliary capability the agent can invoke with a free-text
// input, mirroring the Action/Action Input convention of the react prompt.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, input string) (string, error)
}

// Registry holds the agent's tools in registration order; the order is used
// verbatim when rendering the tool list into the prompt.
type Registry struct {
	order  []Tool
	byName map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{byName: map[string]Tool{}}
}

func (r *Registry) Register(t Tool) {
	if _, exists := r.byName[t.Name()]; exists {
		return
	}
	r.order = append(r.order, t)
	r.byName[t.Name()] = t
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns tools in registration order.
func (r *Registry) List() []Tool {
	return r.order
}

// Execute runs a tool by name.
func (r *Registry) Execute(ctx context.Context, name, input string) (string, error) {
	t, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return t.Execute(ctx, input)
}
