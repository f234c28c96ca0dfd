// Package arena provides dense slot storage addressed by generational handles,
// plus canonical weak references that survive slot reuse without ever
// resolving to the wrong value.
package arena

// Handle encodes both the slot generation (upper 32 bits) and the slot index (lower 32 bits)
type Handle uint64

// Nil is the zero Handle. It is never issued by a Store.
const Nil Handle = 0

// NewHandle creates a Handle from a generation and slot index
func NewHandle(generation uint32, index uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the handle
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Index extracts the slot index from the handle
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// IsNil reports whether h is the zero Handle
func (h Handle) IsNil() bool {
	return h == Nil
}
