package infset

import (
	"fmt"
	"sort"
	"strings"
)

// HashSet is a hash-based Backing for comparable element types.
type HashSet[T comparable] struct {
	entries map[T]struct{}
}

// NewHashSet returns a HashSet holding the given elements. Duplicates collapse.
func NewHashSet[T comparable](elems ...T) *HashSet[T] {
	s := &HashSet[T]{entries: make(map[T]struct{}, len(elems))}
	for _, v := range elems {
		s.entries[v] = struct{}{}
	}
	return s
}

func (s *HashSet[T]) Insert(v T) bool {
	if _, ok := s.entries[v]; ok {
		return false
	}
	s.entries[v] = struct{}{}
	return true
}

func (s *HashSet[T]) Remove(v T) bool {
	if _, ok := s.entries[v]; !ok {
		return false
	}
	delete(s.entries, v)
	return true
}

func (s *HashSet[T]) Contains(v T) bool {
	_, ok := s.entries[v]
	return ok
}

func (s *HashSet[T]) Len() int {
	return len(s.entries)
}

func (s *HashSet[T]) Union(other *HashSet[T]) *HashSet[T] {
	res := &HashSet[T]{entries: make(map[T]struct{}, len(s.entries)+len(other.entries))}
	for v := range s.entries {
		res.entries[v] = struct{}{}
	}
	for v := range other.entries {
		res.entries[v] = struct{}{}
	}
	return res
}

func (s *HashSet[T]) Intersection(other *HashSet[T]) *HashSet[T] {
	small, large := s, other
	if len(large.entries) < len(small.entries) {
		small, large = large, small
	}
	res := &HashSet[T]{entries: make(map[T]struct{})}
	for v := range small.entries {
		if _, ok := large.entries[v]; ok {
			res.entries[v] = struct{}{}
		}
	}
	return res
}

func (s *HashSet[T]) Difference(other *HashSet[T]) *HashSet[T] {
	res := &HashSet[T]{entries: make(map[T]struct{})}
	for v := range s.entries {
		if _, ok := other.entries[v]; !ok {
			res.entries[v] = struct{}{}
		}
	}
	return res
}

func (s *HashSet[T]) SymmetricDifference(other *HashSet[T]) *HashSet[T] {
	res := s.Difference(other)
	for v := range other.entries {
		if _, ok := s.entries[v]; !ok {
			res.entries[v] = struct{}{}
		}
	}
	return res
}

func (s *HashSet[T]) Equal(other *HashSet[T]) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for v := range s.entries {
		if _, ok := other.entries[v]; !ok {
			return false
		}
	}
	return true
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	res := &HashSet[T]{entries: make(map[T]struct{}, len(s.entries))}
	for v := range s.entries {
		res.entries[v] = struct{}{}
	}
	return res
}

// Entries returns the stored elements in no particular order.
func (s *HashSet[T]) Entries() []T {
	arr := make([]T, 0, len(s.entries))
	for v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

func (s *HashSet[T]) String() string {
	parts := make([]string, 0, len(s.entries))
	for v := range s.entries {
		parts = append(parts, fmt.Sprint(v))
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, " ") + "]"
}

// NewHash returns a hash-backed Set holding exactly the given elements.
// With no arguments it is the canonical empty set.
func NewHash[T comparable](elems ...T) *Set[T, *HashSet[T]] {
	return New[T](NewHashSet(elems...))
}

// AllHash returns the hash-backed universal set: every value of T is a member.
func AllHash[T comparable]() *Set[T, *HashSet[T]] {
	return NewComplement[T](NewHashSet[T]())
}
