package arena

import (
	"iter"
	"weak"

	"github.com/kamstrup/intmap"
)

const blockSize = 64

// Store holds values of type T in fixed-size blocks. Blocks are allocated
// individually and never move, so a pointer returned by Get stays valid until
// the slot is removed. Removed slots are recycled with a bumped generation,
// which makes old handles stale.
type Store[T any] struct {
	blocks      []*[blockSize]T
	filled      [][blockSize]bool
	generations [][blockSize]uint32
	freeSlots   []int
	nextIndex   int
	count       int

	refs *intmap.Map[Handle, weak.Pointer[Ref]]
}

// NewStore creates an empty store. capacityHint sizes the weak reference index.
func NewStore[T any](capacityHint int) *Store[T] {
	if capacityHint < 16 {
		capacityHint = 16
	}
	return &Store[T]{
		refs: intmap.New[Handle, weak.Pointer[Ref]](capacityHint),
	}
}

// Insert adds a value to the store and returns its handle.
func (s *Store[T]) Insert(value T) Handle {
	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([blockSize]T))
			s.filled = append(s.filled, [blockSize]bool{})
			s.generations = append(s.generations, [blockSize]uint32{})
		}
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	// Generation zero is reserved so that Nil never names a live slot.
	if s.generations[blockIdx][slotIdx] == 0 {
		s.generations[blockIdx][slotIdx] = 1
	}

	s.blocks[blockIdx][slotIdx] = value
	s.filled[blockIdx][slotIdx] = true
	s.count++

	return NewHandle(s.generations[blockIdx][slotIdx], uint32(index))
}

// slot returns the block and slot index for a live handle.
func (s *Store[T]) slot(h Handle) (int, int, bool) {
	if h.IsNil() {
		return 0, 0, false
	}

	index := int(h.Index())
	if index >= s.nextIndex {
		return 0, 0, false
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	if !s.filled[blockIdx][slotIdx] || s.generations[blockIdx][slotIdx] != h.Generation() {
		return 0, 0, false
	}

	return blockIdx, slotIdx, true
}

// Get returns a pointer to the value for h, or nil if h is not alive.
func (s *Store[T]) Get(h Handle) *T {
	blockIdx, slotIdx, ok := s.slot(h)
	if !ok {
		return nil
	}
	return &s.blocks[blockIdx][slotIdx]
}

// Alive reports whether h names a value currently held by the store.
func (s *Store[T]) Alive(h Handle) bool {
	_, _, ok := s.slot(h)
	return ok
}

// Len returns the number of live values.
func (s *Store[T]) Len() int {
	return s.count
}

// Remove clears the slot for h and invalidates its canonical Ref.
// Removing a stale or unknown handle returns false.
func (s *Store[T]) Remove(h Handle) bool {
	blockIdx, slotIdx, ok := s.slot(h)
	if !ok {
		return false
	}

	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.handle = Nil
		}
		s.refs.Del(h)
	}

	var zero T
	s.blocks[blockIdx][slotIdx] = zero
	s.filled[blockIdx][slotIdx] = false
	s.generations[blockIdx][slotIdx]++
	if s.generations[blockIdx][slotIdx] == 0 {
		s.generations[blockIdx][slotIdx] = 1
	}
	s.freeSlots = append(s.freeSlots, int(h.Index()))
	s.count--

	return true
}

// Iter returns an iterator over live handles and values in slot order.
func (s *Store[T]) Iter() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := 0; i < s.nextIndex; i++ {
			blockIdx := i / blockSize
			slotIdx := i % blockSize

			if !s.filled[blockIdx][slotIdx] {
				continue
			}

			h := NewHandle(s.generations[blockIdx][slotIdx], uint32(i))
			if !yield(h, &s.blocks[blockIdx][slotIdx]) {
				return
			}
		}
	}
}
