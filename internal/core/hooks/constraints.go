package hooks

import (
	"context"
	"sync"
)

// Constraint is a check re-evaluated whenever one of its trigger fields changes.
type Constraint[T any] struct {
	Name     string
	Triggers []string
	Check    func(ctx context.Context, record T) error
}

// Constraints is an ordered, concurrency-safe list of constraints over one record type.
type Constraints[T any] struct {
	mu    sync.RWMutex
	items []Constraint[T]
}

// NewConstraints creates an empty registry.
func NewConstraints[T any]() *Constraints[T] {
	return &Constraints[T]{}
}

// Register appends a constraint. Constraints run in registration order.
func (c *Constraints[T]) Register(constraint Constraint[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, constraint)
}

// Names lists the registered constraints in order.
func (c *Constraints[T]) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, len(c.items))
	for i, item := range c.items {
		names[i] = item.Name
	}
	return names
}

// Check runs the constraints triggered by changed and returns the first failure.
// A nil changed runs every constraint.
func (c *Constraints[T]) Check(ctx context.Context, record T, changed []string) error {
	c.mu.RLock()
	items := append([]Constraint[T](nil), c.items...)
	c.mu.RUnlock()

	for _, item := range items {
		if changed != nil && !intersects(item.Triggers, changed) {
			continue
		}
		if err := item.Check(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
