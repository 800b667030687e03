package hooks

import (
	"context"
	"errors"
	"sync"
)

// ErrNotHandled is returned by Chain.Run when no handler claims the request.
var ErrNotHandled = errors.New("no handler claimed the request")

// Handler answers a request, or reports handled=false to let the next handler try.
type Handler[Req, Res any] func(ctx context.Context, req Req) (res Res, handled bool, err error)

type namedHandler[Req, Res any] struct {
	name string
	fn   Handler[Req, Res]
}

// Chain is an ordered list of handlers registered against one operation.
type Chain[Req, Res any] struct {
	operation string
	mu        sync.RWMutex
	handlers  []namedHandler[Req, Res]
}

// NewChain creates an empty chain for operation.
func NewChain[Req, Res any](operation string) *Chain[Req, Res] {
	return &Chain[Req, Res]{operation: operation}
}

// Operation is the name the chain was created for.
func (c *Chain[Req, Res]) Operation() string {
	return c.operation
}

// Prepend registers a handler that runs before the existing ones, the way an extension
// overrides the behavior it builds on.
func (c *Chain[Req, Res]) Prepend(name string, fn Handler[Req, Res]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append([]namedHandler[Req, Res]{{name: name, fn: fn}}, c.handlers...)
}

// Append registers a handler that runs after the existing ones.
func (c *Chain[Req, Res]) Append(name string, fn Handler[Req, Res]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, namedHandler[Req, Res]{name: name, fn: fn})
}

// Run calls handlers in order until one claims the request.
func (c *Chain[Req, Res]) Run(ctx context.Context, req Req) (Res, error) {
	c.mu.RLock()
	handlers := append([]namedHandler[Req, Res](nil), c.handlers...)
	c.mu.RUnlock()

	for _, h := range handlers {
		res, handled, err := h.fn(ctx, req)
		if err != nil || handled {
			return res, err
		}
	}
	var zero Res
	return zero, ErrNotHandled
}
