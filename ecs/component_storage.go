package ecs

import (
	"iter"
	"reflect"
)

// componentColumn is a type-erased column of one component type inside an archetype.
type componentColumn interface {
	Put(index int, item any) bool
	Delete(index int)
	Get(index int) any
	Reset()
}

// ComponentRegistry manages component type registration for an ECS instance.
// Each Storage instance has its own ComponentRegistry, allowing multiple
// independent worlds to coexist without interference.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentColumn
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentColumn),
	}
}

// RegisterComponent registers a new component type with the given registry.
// This must be called for each component type before it can be spawned.
func RegisterComponent[T any](r *ComponentRegistry) {
	t := reflect.TypeFor[T]()
	r.factories[t] = func() componentColumn {
		return &pooledColumn[T]{}
	}
}

// Registered reports whether a component type is known to the registry.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) getFactory(t reflect.Type) func() componentColumn {
	return r.factories[t]
}

const blockSize = 64

// pooledColumn stores components of type T in fixed-size blocks.
// Blocks are allocated individually and never move, so a *T handed out during
// a frame stays valid while other entities are spawned into the column.
// Slot bookkeeping (free list, generations) belongs to the owning Archetype.
type pooledColumn[T any] struct {
	blocks []*[blockSize]T
}

func (c *pooledColumn[T]) slot(index int, grow bool) *T {
	if index < 0 {
		return nil
	}
	blockIdx := index / blockSize
	for grow && blockIdx >= len(c.blocks) {
		c.blocks = append(c.blocks, new([blockSize]T))
	}
	if blockIdx >= len(c.blocks) {
		return nil
	}
	return &c.blocks[blockIdx][index%blockSize]
}

// Put writes a component value into the slot, allocating blocks as needed.
func (c *pooledColumn[T]) Put(index int, item any) bool {
	var value T
	switch v := item.(type) {
	case *T:
		value = *v
	case T:
		value = v
	default:
		return false
	}
	*c.slot(index, true) = value
	return true
}

// Get returns a pointer to the component at the given index.
func (c *pooledColumn[T]) Get(index int) any {
	p := c.slot(index, false)
	if p == nil {
		return nil
	}
	return p
}

// Delete zeroes the slot so pooled memory does not pin references.
func (c *pooledColumn[T]) Delete(index int) {
	if p := c.slot(index, false); p != nil {
		var zero T
		*p = zero
	}
}

// Reset drops every block except the first.
func (c *pooledColumn[T]) Reset() {
	if len(c.blocks) == 0 {
		return
	}
	first := c.blocks[0]
	*first = [blockSize]T{}
	c.blocks = c.blocks[:1]
}

// slotIter yields indices in [0, n) for which alive reports true.
func slotIter(n int, alive func(int) bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if alive(i) && !yield(i) {
				return
			}
		}
	}
}
