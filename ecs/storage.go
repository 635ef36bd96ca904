package ecs

import (
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage is the entity store: it owns every archetype, every component and
// every singleton of one world.
type Storage struct {
	archetypes *intmap.Map[uint32, *Archetype]
	order      []*Archetype
	registry   *ComponentRegistry
	typeIds    map[reflect.Type]uint32
	singletons map[reflect.Type]*singletonEntry
}

type singletonEntry struct {
	typ     reflect.Type
	dataPtr unsafe.Pointer
}

// NewStorage creates a new ECS storage system with the given component registry
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		archetypes: intmap.New[uint32, *Archetype](16),
		registry:   registry,
		typeIds:    make(map[reflect.Type]uint32),
		singletons: make(map[reflect.Type]*singletonEntry),
	}
}

func (s *Storage) archetype(id uint32) *Archetype {
	a, ok := s.archetypes.Get(id)
	if !ok {
		return nil
	}
	return a
}

func (s *Storage) ensureArchetype(types []reflect.Type) *Archetype {
	archetypeId := s.hashTypes(types)
	if a := s.archetype(archetypeId); a != nil {
		return a
	}
	a := NewArchetype(archetypeId, types, s.registry)
	s.archetypes.Put(archetypeId, a)
	s.order = append(s.order, a)
	return a
}

// GetArchetype returns an archetype storage (if one exists)
func (s *Storage) GetArchetype(components ...any) *Archetype {
	return s.archetype(s.hashTypes(extractComponentTypes(components)))
}

// GetArchetypeByTypes returns an archetype storage (if one exists) based on reflect.Type
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := append([]reflect.Type(nil), types...)
	sort.Sort(byTypeName(sorted))
	return s.archetype(s.hashTypes(sorted))
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// Spawn creates a new entity with the provided components
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	archetype := s.ensureArchetype(extractComponentTypes(components))
	return archetype.Spawn(components)
}

// Delete removes all data related to the entity ID immediately.
// Systems should go through Commands.Delete instead so the removal waits for
// the end of the frame. Returns false when the id was already stale.
func (s *Storage) Delete(id EntityId) bool {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return false
	}
	return archetype.Delete(id)
}

// Clear deletes every entity. Singletons are kept.
func (s *Storage) Clear() {
	for _, archetype := range s.order {
		archetype.Clear()
	}
}

// Alive reports whether the id refers to an entity that has not been deleted.
func (s *Storage) Alive(id EntityId) bool {
	archetype := s.archetype(id.ArchetypeId())
	return archetype != nil && archetype.Contains(id)
}

// EntityCount returns the number of live entities across all archetypes.
func (s *Storage) EntityCount() int {
	total := 0
	for _, archetype := range s.order {
		total += archetype.Len()
	}
	return total
}

// GetComponent returns the component for the given entity ID and component type
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil {
		return nil
	}
	return archetype.GetComponent(id, compType)
}

// HasComponent checks if a live entity has a specific component type
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	archetype := s.archetype(id.ArchetypeId())
	if archetype == nil || !archetype.Contains(id) {
		return false
	}
	return archetype.HasComponent(compType)
}

// AddSingleton stores a value that is not attached to any entity.
// Adding a second value of the same type replaces the first in place, so
// pointers obtained earlier observe the new value.
func (s *Storage) AddSingleton(value any) {
	t := reflect.TypeOf(value)
	if entry, ok := s.singletons[t]; ok {
		reflect.NewAt(t, entry.dataPtr).Elem().Set(reflect.ValueOf(value))
		return
	}
	ptr := reflect.New(t)
	ptr.Elem().Set(reflect.ValueOf(value))
	s.singletons[t] = &singletonEntry{typ: t, dataPtr: ptr.UnsafePointer()}
}

// SetSingleton is AddSingleton under the name that reads better for resets.
func (s *Storage) SetSingleton(value any) {
	s.AddSingleton(value)
}

// ReadSingleton sets *target to the stored singleton of type T.
// target must be a **T. Returns false if no such singleton exists.
func (s *Storage) ReadSingleton(target any) bool {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton target must be a pointer to a pointer")
	}
	t := v.Elem().Type().Elem()
	entry := s.getSingletonEntry(t)
	if entry == nil {
		return false
	}
	v.Elem().Set(reflect.NewAt(t, entry.dataPtr))
	return true
}

func (s *Storage) getSingletonEntry(t reflect.Type) *singletonEntry {
	return s.singletons[t]
}

// extractComponentTypes extracts and sorts component types from a slice of components
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		compType := reflect.TypeOf(comp)

		if compType.Kind() == reflect.Ptr {
			compType = compType.Elem()
		}

		// Components can be structs or primitives but never reference-only kinds
		if compType.Kind() == reflect.Ptr || compType.Kind() == reflect.Map ||
			compType.Kind() == reflect.Chan || compType.Kind() == reflect.Func {
			panic("components cannot be pointers, maps, channels, or functions")
		}

		types = append(types, compType)
	}
	sort.Sort(byTypeName(types))
	return types
}

// hashTypes generates an archetype id for a sorted slice of types using FNV-1a
// over per-storage type numbers.
func (s *Storage) hashTypes(types []reflect.Type) uint32 {
	var h uint32 = 2166136261     // FNV-1a 32-bit offset basis
	const prime uint32 = 16777619 // FNV-1a 32-bit prime

	for _, t := range types {
		id, ok := s.typeIds[t]
		if !ok {
			id = uint32(len(s.typeIds) + 1)
			s.typeIds[t] = id
		}
		for shift := 0; shift < 32; shift += 8 {
			h ^= (id >> shift) & 0xFF
			h *= prime
		}
	}

	return h
}

// ComponentReader is implemented by anything that can look up a component by entity.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's component of type T, or nil if the entity
// is gone or does not carry T.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	comp := reader.GetComponent(entityId, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}
