package infset

import "fmt"

// Set represents a possibly infinite set of T: either the union of finitely
// many stored elements, or the complement of such a finite set against the
// infinite universe of all T values. S is the finite container backing it.
//
// The zero value is not usable; construct through New, NewComplement or the
// per-backing helpers (NewHash, AllOrdered, NewKeyed, ...).
type Set[T any, S Backing[S, T]] struct {
	complement bool
	elements   S
}

// New returns the union of the elements stored in backing. The Set takes
// ownership of backing; callers must not use it afterwards. An empty backing
// yields the canonical empty set.
func New[T any, S Backing[S, T]](backing S) *Set[T, S] {
	return &Set[T, S]{elements: backing}
}

// NewComplement returns the set of every T except the elements stored in
// backing. The Set takes ownership of backing; callers must not use it
// afterwards. An empty backing yields the universal set.
func NewComplement[T any, S Backing[S, T]](backing S) *Set[T, S] {
	return &Set[T, S]{complement: true, elements: backing}
}

// Contains reports whether v is a member of the denoted set.
func (s *Set[T, S]) Contains(v T) bool {
	if s.complement {
		return !s.elements.Contains(v)
	}
	return s.elements.Contains(v)
}

// Insert makes v a member and reports whether its membership changed. A
// complement set already contains everything it does not exclude, so inserting
// into one deletes v from the exclusion list, and the report answers "was v
// excluded before", never "did the backing container grow".
func (s *Set[T, S]) Insert(v T) bool {
	if s.complement {
		return s.elements.Remove(v)
	}
	return s.elements.Insert(v)
}

// Remove makes v a non-member and reports whether its membership changed.
// On a complement set v is removed by adding it to the exclusion list.
func (s *Set[T, S]) Remove(v T) bool {
	if s.complement {
		return s.elements.Insert(v)
	}
	return s.elements.Remove(v)
}

// Complement inverts the set in place: members become non-members and vice
// versa. The stored elements are reinterpreted, not recomputed, so this is
// O(1).
func (s *Set[T, S]) Complement() {
	s.complement = !s.complement
}

// Complemented returns the inverse of s as an independent new Set.
func (s *Set[T, S]) Complemented() *Set[T, S] {
	return &Set[T, S]{complement: !s.complement, elements: s.elements.Clone()}
}

// UnionLen returns the number of stored elements when the set is a finite
// union. For a complement set ok is false: an unbounded set has no size.
func (s *Set[T, S]) UnionLen() (int, bool) {
	if s.complement {
		return 0, false
	}
	return s.elements.Len(), true
}

// ComplementLen returns the number of excluded elements when the set is a
// complement, with ok false for a finite union.
func (s *Set[T, S]) ComplementLen() (int, bool) {
	if !s.complement {
		return 0, false
	}
	return s.elements.Len(), true
}

// IsEmpty reports whether the set is a union of zero elements. A complement
// set is never empty under the infinite-universe model.
func (s *Set[T, S]) IsEmpty() bool {
	return !s.complement && s.elements.Len() == 0
}

// IsAll reports whether the set is a complement of zero elements, i.e. the
// universal set.
func (s *Set[T, S]) IsAll() bool {
	return s.complement && s.elements.Len() == 0
}

// IsUnion reports whether the set is in union form.
func (s *Set[T, S]) IsUnion() bool {
	return !s.complement
}

// IsComplement reports whether the set is in complement form.
func (s *Set[T, S]) IsComplement() bool {
	return s.complement
}

// AsUnion returns a copy of the stored elements if the set is a union.
func (s *Set[T, S]) AsUnion() (S, bool) {
	if s.complement {
		var zero S
		return zero, false
	}
	return s.elements.Clone(), true
}

// AsComplement returns a copy of the excluded elements if the set is a
// complement.
func (s *Set[T, S]) AsComplement() (S, bool) {
	if !s.complement {
		var zero S
		return zero, false
	}
	return s.elements.Clone(), true
}

// Storage returns a copy of the finite backing regardless of form. How its
// elements are to be read depends on IsComplement.
func (s *Set[T, S]) Storage() S {
	return s.elements.Clone()
}

// Clear resets the set to the empty union, regardless of its current form.
func (s *Set[T, S]) Clear() {
	s.elements = s.elements.Difference(s.elements)
	s.complement = false
}

// Clone returns a fully independent copy.
func (s *Set[T, S]) Clone() *Set[T, S] {
	return &Set[T, S]{complement: s.complement, elements: s.elements.Clone()}
}

// Equal reports representation equality: same form and equal stored
// elements. No attempt is made to prove that two differently represented
// sets denote the same infinite set.
func (s *Set[T, S]) Equal(other *Set[T, S]) bool {
	return s.complement == other.complement && s.elements.Equal(other.elements)
}

// String renders the stored elements, prefixed with "!" for a complement.
func (s *Set[T, S]) String() string {
	if s.complement {
		return "!" + fmt.Sprint(s.elements)
	}
	return fmt.Sprint(s.elements)
}
