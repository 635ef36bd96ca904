package ecs

import "github.com/kamstrup/intmap"

// Commands buffers structural changes that are applied at the end of a frame.
// Entities marked for deletion stay fully readable until Flush, so later
// systems in the same frame still see them.
type Commands struct {
	spawns  []spawnCommand
	deletes []EntityId
	marked  *intmap.Map[EntityId, struct{}]
	defers  []func()
}

type spawnCommand struct {
	components []any
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{
		marked: intmap.New[EntityId, struct{}](64),
	}
}

// Defer queues a function to run after all other commands have been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn operation with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, spawnCommand{components: components})
}

// Delete marks an entity for deletion. Marking the same entity again is a no-op.
func (c *Commands) Delete(entity EntityId) {
	if _, ok := c.marked.Get(entity); ok {
		return
	}
	c.marked.Put(entity, struct{}{})
	c.deletes = append(c.deletes, entity)
}

// Marked reports whether the entity is pending deletion in this buffer.
func (c *Commands) Marked(entity EntityId) bool {
	_, ok := c.marked.Get(entity)
	return ok
}

// PendingDeletes returns the number of distinct entities marked for deletion.
func (c *Commands) PendingDeletes() int {
	return len(c.deletes)
}

// Flush applies all commands to the provided storage and resets the buffer.
// It returns the number of entities actually removed.
func (c *Commands) Flush(storage *Storage) int {
	removed := 0
	for _, id := range c.deletes {
		if storage.Delete(id) {
			removed++
		}
	}

	for _, cmd := range c.spawns {
		storage.Spawn(cmd.components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.marked.Clear()
	c.defers = c.defers[:0]
	return removed
}
