package infset

import (
	"fmt"
	"sort"
	"strings"
)

// KeyFunc derives the comparable identity of an element.
type KeyFunc[K comparable, T any] func(T) K

// KeyedSet is a hash-based Backing for element types that are not themselves
// comparable: elements are identified by the key their KeyFunc derives, and
// two elements with the same key are the same member. KeyedSets taking part
// in the same algebra must share their key func.
type KeyedSet[K comparable, T any] struct {
	entries map[K]T
	keyFunc KeyFunc[K, T]
}

// NewKeyedSet returns a KeyedSet identifying elements by key, holding the
// given elements.
func NewKeyedSet[K comparable, T any](key KeyFunc[K, T], elems ...T) *KeyedSet[K, T] {
	s := &KeyedSet[K, T]{entries: make(map[K]T, len(elems)), keyFunc: key}
	for _, v := range elems {
		s.entries[key(v)] = v
	}
	return s
}

func (s *KeyedSet[K, T]) Insert(v T) bool {
	k := s.keyFunc(v)
	if _, ok := s.entries[k]; ok {
		return false
	}
	s.entries[k] = v
	return true
}

func (s *KeyedSet[K, T]) Remove(v T) bool {
	k := s.keyFunc(v)
	if _, ok := s.entries[k]; !ok {
		return false
	}
	delete(s.entries, k)
	return true
}

func (s *KeyedSet[K, T]) Contains(v T) bool {
	if _, ok := s.entries[s.keyFunc(v)]; ok {
		return true
	}
	return false
}

func (s *KeyedSet[K, T]) Len() int {
	return len(s.entries)
}

func (s *KeyedSet[K, T]) Union(other *KeyedSet[K, T]) *KeyedSet[K, T] {
	res := &KeyedSet[K, T]{entries: make(map[K]T, len(s.entries)+len(other.entries)), keyFunc: s.keyFunc}
	for k, v := range s.entries {
		res.entries[k] = v
	}
	for k, v := range other.entries {
		res.entries[k] = v
	}
	return res
}

func (s *KeyedSet[K, T]) Intersection(other *KeyedSet[K, T]) *KeyedSet[K, T] {
	res := &KeyedSet[K, T]{entries: make(map[K]T), keyFunc: s.keyFunc}
	for k, v := range s.entries {
		if _, ok := other.entries[k]; ok {
			res.entries[k] = v
		}
	}
	return res
}

func (s *KeyedSet[K, T]) Difference(other *KeyedSet[K, T]) *KeyedSet[K, T] {
	res := &KeyedSet[K, T]{entries: make(map[K]T), keyFunc: s.keyFunc}
	for k, v := range s.entries {
		if _, ok := other.entries[k]; !ok {
			res.entries[k] = v
		}
	}
	return res
}

func (s *KeyedSet[K, T]) SymmetricDifference(other *KeyedSet[K, T]) *KeyedSet[K, T] {
	res := s.Difference(other)
	for k, v := range other.entries {
		if _, ok := s.entries[k]; !ok {
			res.entries[k] = v
		}
	}
	return res
}

func (s *KeyedSet[K, T]) Equal(other *KeyedSet[K, T]) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for k := range s.entries {
		if _, ok := other.entries[k]; !ok {
			return false
		}
	}
	return true
}

func (s *KeyedSet[K, T]) Clone() *KeyedSet[K, T] {
	res := &KeyedSet[K, T]{entries: make(map[K]T, len(s.entries)), keyFunc: s.keyFunc}
	for k, v := range s.entries {
		res.entries[k] = v
	}
	return res
}

// Entries returns the stored elements in no particular order.
func (s *KeyedSet[K, T]) Entries() []T {
	arr := make([]T, 0, len(s.entries))
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

// String renders the keys of the stored elements.
func (s *KeyedSet[K, T]) String() string {
	parts := make([]string, 0, len(s.entries))
	for k := range s.entries {
		parts = append(parts, fmt.Sprint(k))
	}
	sort.Strings(parts)
	return "[" + strings.Join(parts, " ") + "]"
}

// NewKeyed returns a keyed Set holding exactly the given elements.
// With no elements it is the canonical empty set.
func NewKeyed[K comparable, T any](key KeyFunc[K, T], elems ...T) *Set[T, *KeyedSet[K, T]] {
	return New[T](NewKeyedSet(key, elems...))
}

// AllKeyed returns the keyed universal set over T.
func AllKeyed[K comparable, T any](key KeyFunc[K, T]) *Set[T, *KeyedSet[K, T]] {
	return NewComplement[T](NewKeyedSet(key))
}
