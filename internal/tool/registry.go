// Package tool declares the callable tools and dispatches invocations to
// the underlying services. Both transports (stdio protocol and HTTP) share
// one registry, so a tool behaves identically regardless of how it was
// reached.
package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/domain"
	"github.com/crowe452/Collin-Rowe-AI-Real-Estate/internal/metrics"
)

// Declaration describes a callable tool for listing.
type Declaration struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

// Handler executes a tool call. It decodes its own arguments and returns
// the human-readable report text.
type Handler func(ctx context.Context, args json.RawMessage) (string, error)

// Registry maps tool names to declarations and handlers. Registration
// order is preserved for listing.
type Registry struct {
	decls    []Declaration
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds a tool. Registering a duplicate name panics: the tool set
// is fixed at startup and a collision is a programming error.
func (r *Registry) Register(d Declaration, h Handler) {
	if _, exists := r.handlers[d.Name]; exists {
		panic("tool registered twice: " + d.Name)
	}
	r.decls = append(r.decls, d)
	r.handlers[d.Name] = h
}

// Declarations returns the registered tools in registration order.
func (r *Registry) Declarations() []Declaration {
	return r.decls
}

// Call dispatches an invocation by name and records tool metrics.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	h, ok := r.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownTool, name)
	}

	start := time.Now()
	text, err := h(ctx, args)
	metrics.ObserveToolCall(name, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}
	return text, nil
}
