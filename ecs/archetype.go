package ecs

import (
	"reflect"
	"slices"
	"strconv"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity sharing one exact combination of component types.
// Slots are pooled: a deleted slot goes on a free list and is reused by the next
// spawn, with its generation bumped so old ids stop resolving.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentColumn

	alive []bool
	gens  []uint16
	free  []int
	next  int
	live  int
}

// NewArchetype creates a new archetype with the given ID and sorted component types
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentColumn, len(types)),
	}

	for idx, typ := range types {
		factory := registry.getFactory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[idx] = factory()
	}

	return a
}

// Spawn places the components into a free slot and returns the new entity's id.
func (a *Archetype) Spawn(components []any) EntityId {
	var index int
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.next >= MaxSlots {
			panic("archetype " + strconv.FormatUint(uint64(a.id), 16) + " is full")
		}
		index = a.next
		a.next++
		if index >= len(a.alive) {
			a.alive = append(a.alive, false)
			a.gens = append(a.gens, 0)
		}
	}

	for _, comp := range components {
		compType := reflect.TypeOf(comp)
		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}
		if col := a.columnIndex(compType); col >= 0 {
			a.columns[col].Put(index, comp)
		}
	}

	a.alive[index] = true
	a.live++
	return NewEntityId(a.id, a.gens[index], uint32(index))
}

func (a *Archetype) columnIndex(compType reflect.Type) int {
	for i, typ := range a.types {
		if typ == compType {
			return i
		}
	}
	return -1
}

// resolve maps an id to its slot, failing for ids whose slot was freed since.
func (a *Archetype) resolve(id EntityId) (int, bool) {
	index := int(id.Index())
	if index >= len(a.alive) || !a.alive[index] {
		return 0, false
	}
	if a.gens[index]&generationMask != id.Generation() {
		return 0, false
	}
	return index, true
}

// Contains reports whether the id refers to a live entity of this archetype.
func (a *Archetype) Contains(id EntityId) bool {
	if id.ArchetypeId() != a.id {
		return false
	}
	_, ok := a.resolve(id)
	return ok
}

// GetComponent returns the component of the given type for a live entity, or nil
func (a *Archetype) GetComponent(id EntityId, compType reflect.Type) any {
	index, ok := a.resolve(id)
	if !ok {
		return nil
	}
	col := a.columnIndex(compType)
	if col < 0 {
		return nil
	}
	return a.columns[col].Get(index)
}

// Delete frees the entity's slot. It returns false if the id was already stale.
func (a *Archetype) Delete(id EntityId) bool {
	index, ok := a.resolve(id)
	if !ok {
		return false
	}
	a.release(index)
	a.free = append(a.free, index)
	return true
}

func (a *Archetype) release(index int) {
	for _, col := range a.columns {
		col.Delete(index)
	}
	a.alive[index] = false
	a.gens[index] = (a.gens[index] + 1) & generationMask
	a.live--
}

// Clear frees every slot. Generations are kept so ids issued before the clear
// stay invalid once their slots are reused.
func (a *Archetype) Clear() {
	for index := 0; index < a.next; index++ {
		if a.alive[index] {
			a.release(index)
		}
	}
	for _, col := range a.columns {
		col.Reset()
	}
	a.free = a.free[:0]
	a.next = 0
}

// HasComponent checks if this archetype has the given component type
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's unique identifier
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types for this archetype
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len returns the number of live entities in this archetype
func (a *Archetype) Len() int {
	return a.live
}

// Iter returns an iterator over all live EntityIds in slot order
func (a *Archetype) Iter() func(yield func(EntityId) bool) {
	return func(yield func(EntityId) bool) {
		for index := range slotIter(a.next, a.isAlive) {
			if !yield(NewEntityId(a.id, a.gens[index], uint32(index))) {
				return
			}
		}
	}
}

func (a *Archetype) isAlive(index int) bool {
	return a.alive[index]
}
