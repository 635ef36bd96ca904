package ecs_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/plus3/asteroids/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityIdEncoding(t *testing.T) {
	tests := []struct {
		archetypeId uint32
		generation  uint16
		index       uint32
	}{
		{0, 0, 0},
		{0xFFFFFFFF, 0xFFF, ecs.MaxSlots - 1},
		{1, 0, 0},
		{0, 1, 1},
		{0x12345678, 0x9AB, 0xCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("archetype=%d,gen=%d,index=%d", tt.archetypeId, tt.generation, tt.index), func(t *testing.T) {
			id := ecs.NewEntityId(tt.archetypeId, tt.generation, tt.index)
			assert.Equal(t, tt.archetypeId, id.ArchetypeId())
			assert.Equal(t, tt.generation, id.Generation())
			assert.Equal(t, tt.index, id.Index())
		})
	}
}

func TestSpawnAndGetComponent(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(&Position{X: 3, Y: 4}, Name{Value: "ship"})

	pos := ecs.ReadComponent[Position](storage, id)
	require.NotNil(t, pos)
	assert.Equal(t, float32(3), pos.X)
	assert.Equal(t, float32(4), pos.Y)

	name := ecs.ReadComponent[Name](storage, id)
	require.NotNil(t, name)
	assert.Equal(t, "ship", name.Value)

	assert.Nil(t, ecs.ReadComponent[Velocity](storage, id))
	assert.True(t, storage.HasComponent(id, reflect.TypeFor[Position]()))
	assert.False(t, storage.HasComponent(id, reflect.TypeFor[Velocity]()))
}

func TestComponentMutationIsVisible(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Health{Current: 3, Max: 10})

	ecs.ReadComponent[Health](storage, id).Current--

	assert.Equal(t, 2, ecs.ReadComponent[Health](storage, id).Current)
}

func TestSpawnPanics(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { storage.Spawn() })
	assert.Panics(t, func() { storage.Spawn(struct{ Unregistered int }{}) })
	assert.Panics(t, func() { storage.Spawn(map[string]int{}) })
}

func TestDeleteInvalidatesId(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	a := storage.Spawn(Position{X: 1})
	b := storage.Spawn(Position{X: 2})

	assert.True(t, storage.Delete(a))
	assert.False(t, storage.Delete(a), "second delete of the same id is a no-op")

	assert.False(t, storage.Alive(a))
	assert.True(t, storage.Alive(b))
	assert.Nil(t, ecs.ReadComponent[Position](storage, a))
	assert.Equal(t, float32(2), ecs.ReadComponent[Position](storage, b).X)
	assert.Equal(t, 1, storage.EntityCount())
}

func TestSlotReuseDoesNotResurrectStaleIds(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	old := storage.Spawn(Position{X: 1})
	storage.Delete(old)
	reused := storage.Spawn(Position{X: 9})

	assert.Equal(t, old.Index(), reused.Index(), "freed slot is pooled")
	assert.NotEqual(t, old, reused)
	assert.Nil(t, ecs.ReadComponent[Position](storage, old))
	assert.Equal(t, float32(9), ecs.ReadComponent[Position](storage, reused).X)
	assert.False(t, storage.Delete(old))
	assert.True(t, storage.Alive(reused))
}

func TestClear(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	var ids []ecs.EntityId
	for i := range 10 {
		ids = append(ids, storage.Spawn(Position{X: float32(i)}, Velocity{}))
		ids = append(ids, storage.Spawn(Health{Current: i}))
	}
	storage.AddSingleton(Score(42))

	storage.Clear()

	assert.Equal(t, 0, storage.EntityCount())
	for _, id := range ids {
		assert.False(t, storage.Alive(id))
	}

	var score *Score
	require.True(t, storage.ReadSingleton(&score), "singletons survive Clear")
	assert.Equal(t, Score(42), *score)

	fresh := storage.Spawn(Position{X: 5}, Velocity{})
	assert.Equal(t, 1, storage.EntityCount())
	assert.False(t, storage.Alive(ids[0]), "ids issued before Clear stay invalid after slot reuse")
	assert.True(t, storage.Alive(fresh))
}

func TestIterationOrderIsStable(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	for i := range 5 {
		storage.Spawn(Position{X: float32(i)})
		storage.Spawn(Position{X: float32(100 + i)}, Velocity{})
	}

	view := ecs.NewView[struct{ *Position }](storage)
	collect := func() []float32 {
		var xs []float32
		for item := range view.Values() {
			xs = append(xs, item.Position.X)
		}
		return xs
	}

	first := collect()
	assert.Equal(t, []float32{0, 1, 2, 3, 4, 100, 101, 102, 103, 104}, first)
	assert.Equal(t, first, collect())
}

func TestComponentPointersSurviveGrowth(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Position{X: 1})
	pos := ecs.ReadComponent[Position](storage, id)

	for i := range 500 {
		storage.Spawn(Position{X: float32(i)})
	}

	pos.X = 77
	assert.Equal(t, float32(77), ecs.ReadComponent[Position](storage, id).X)
}

func TestPrimitiveComponents(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	id := storage.Spawn(Score(10), Tag("rock"))

	assert.Equal(t, Score(10), *ecs.ReadComponent[Score](storage, id))
	assert.Equal(t, Tag("rock"), *ecs.ReadComponent[Tag](storage, id))
}

func TestGetArchetype(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	storage.Spawn(Position{}, Velocity{})
	storage.Spawn(Velocity{}, Position{})
	storage.Spawn(Position{})

	archetype := storage.GetArchetype(Velocity{}, Position{})
	require.NotNil(t, archetype)
	assert.Equal(t, 2, archetype.Len())
	assert.Same(t, archetype, storage.GetArchetypeByTypes([]reflect.Type{reflect.TypeFor[Position](), reflect.TypeFor[Velocity]()}))
	assert.Nil(t, storage.GetArchetype(Health{}))
	assert.Len(t, storage.Archetypes(), 2)
}
