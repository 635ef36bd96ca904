package ecs

const (
	indexBits      = 20
	generationBits = 12

	// MaxSlots is the number of live entities a single archetype can hold.
	MaxSlots = 1 << indexBits

	indexMask      = MaxSlots - 1
	generationMask = 1<<generationBits - 1
)

// EntityId encodes the archetype ID (upper 32 bits), the slot generation
// (next 12 bits) and the slot index (lower 20 bits).
// The generation changes every time a slot is freed, so an id held past the
// deletion of its entity never resolves to whatever reuses the slot.
type EntityId uint64

// NewEntityId creates an EntityId from an archetype ID, slot generation and slot index
func NewEntityId(archetypeId uint32, generation uint16, index uint32) EntityId {
	return EntityId(uint64(archetypeId)<<32 |
		uint64(generation&generationMask)<<indexBits |
		uint64(index&indexMask))
}

// ArchetypeId extracts the archetype ID from the entity ID
func (e EntityId) ArchetypeId() uint32 {
	return uint32(e >> 32)
}

// Generation extracts the slot generation from the entity ID
func (e EntityId) Generation() uint16 {
	return uint16((e >> indexBits) & generationMask)
}

// Index extracts the slot index from the entity ID
func (e EntityId) Index() uint32 {
	return uint32(e & indexMask)
}
