package arena

import "weak"

// Ref is a stable, non-owning reference to a value in a Store. Holders keep
// the *Ref; the store only tracks it weakly and clears it when the value is
// removed, so a Ref never keeps a value alive and never outlives it silently.
type Ref struct {
	handle Handle
}

// Handle returns the referenced handle, or Nil once the value is gone.
func (r *Ref) Handle() Handle {
	if r == nil {
		return Nil
	}
	return r.handle
}

// Valid reports whether the reference still points at a live value.
func (r *Ref) Valid() bool {
	return r != nil && !r.handle.IsNil()
}

// Ref returns the canonical reference for h, creating it if needed.
// Returns nil if h is not alive.
func (s *Store[T]) Ref(h Handle) *Ref {
	if !s.Alive(h) {
		return nil
	}

	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Every holder dropped it; start over.
		s.refs.Del(h)
	}

	ref := &Ref{handle: h}
	s.refs.Put(h, weak.Make(ref))
	return ref
}

// Resolve returns the live handle behind ref.
func (s *Store[T]) Resolve(ref *Ref) (Handle, bool) {
	if !ref.Valid() {
		return Nil, false
	}
	if !s.Alive(ref.handle) {
		return Nil, false
	}
	return ref.handle, true
}
