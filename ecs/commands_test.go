package ecs_test

import (
	"testing"

	"github.com/plus3/asteroids/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsDeleteIsIdempotent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := ecs.NewCommands()

	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})

	commands.Delete(a)
	commands.Delete(a)
	commands.Delete(b)
	assert.Equal(t, 2, commands.PendingDeletes())

	assert.Equal(t, 2, commands.Flush(storage))
	assert.Equal(t, 0, storage.EntityCount())
	assert.Equal(t, 0, commands.PendingDeletes())
}

func TestCommandsMarkedEntitiesStayVisibleUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := ecs.NewCommands()

	id := storage.Spawn(Position{X: 1})
	commands.Delete(id)

	assert.True(t, commands.Marked(id))
	assert.True(t, storage.Alive(id))
	assert.Equal(t, 1, count[struct{ *Position }](storage))

	commands.Flush(storage)

	assert.False(t, commands.Marked(id))
	assert.False(t, storage.Alive(id))
}

func TestCommandsFlushSkipsDeadEntities(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := ecs.NewCommands()

	id := storage.Spawn(Position{})
	commands.Delete(id)
	storage.Delete(id)

	assert.Equal(t, 0, commands.Flush(storage))
}

func TestCommandsSpawnAndDefer(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	commands := ecs.NewCommands()

	commands.Spawn(Position{X: 7}, Velocity{})
	var order []string
	commands.Defer(func() {
		order = append(order, "defer")
		assert.Equal(t, 1, storage.EntityCount(), "defers run after spawns")
	})

	assert.Equal(t, 0, storage.EntityCount())
	commands.Flush(storage)
	assert.Equal(t, []string{"defer"}, order)
	assert.Equal(t, 1, count[struct {
		*Position
		*Velocity
	}](storage))

	commands.Flush(storage)
	assert.Equal(t, []string{"defer"}, order, "buffer is reset after flush")
	assert.Equal(t, 1, storage.EntityCount())
}
