package infset

import (
	"fmt"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"
)

const treeDegree = 64

// TreeSet is an ordered Backing built on a B-tree. TreeSets taking part in
// the same algebra must share their ordering.
type TreeSet[T any] struct {
	t    *btree.BTreeG[T]
	less btree.LessFunc[T]
}

// NewTreeSet returns a TreeSet ordered by less, holding the given elements.
func NewTreeSet[T any](less func(a, b T) bool, elems ...T) *TreeSet[T] {
	s := &TreeSet[T]{t: btree.NewG(treeDegree, btree.LessFunc[T](less)), less: less}
	for _, v := range elems {
		s.t.ReplaceOrInsert(v)
	}
	return s
}

// NewOrderedTreeSet returns a TreeSet using the natural order of T.
func NewOrderedTreeSet[T constraints.Ordered](elems ...T) *TreeSet[T] {
	return NewTreeSet(func(a, b T) bool { return a < b }, elems...)
}

func (s *TreeSet[T]) Insert(v T) bool {
	_, replaced := s.t.ReplaceOrInsert(v)
	return !replaced
}

func (s *TreeSet[T]) Remove(v T) bool {
	_, removed := s.t.Delete(v)
	return removed
}

func (s *TreeSet[T]) Contains(v T) bool {
	return s.t.Has(v)
}

func (s *TreeSet[T]) Len() int {
	return s.t.Len()
}

func (s *TreeSet[T]) Union(other *TreeSet[T]) *TreeSet[T] {
	res := &TreeSet[T]{t: s.t.Clone(), less: s.less}
	other.t.Ascend(func(v T) bool {
		res.t.ReplaceOrInsert(v)
		return true
	})
	return res
}

func (s *TreeSet[T]) Intersection(other *TreeSet[T]) *TreeSet[T] {
	res := s.emptyLike()
	s.t.Ascend(func(v T) bool {
		if other.t.Has(v) {
			res.t.ReplaceOrInsert(v)
		}
		return true
	})
	return res
}

func (s *TreeSet[T]) Difference(other *TreeSet[T]) *TreeSet[T] {
	res := s.emptyLike()
	s.t.Ascend(func(v T) bool {
		if !other.t.Has(v) {
			res.t.ReplaceOrInsert(v)
		}
		return true
	})
	return res
}

func (s *TreeSet[T]) SymmetricDifference(other *TreeSet[T]) *TreeSet[T] {
	res := s.Difference(other)
	other.t.Ascend(func(v T) bool {
		if !s.t.Has(v) {
			res.t.ReplaceOrInsert(v)
		}
		return true
	})
	return res
}

func (s *TreeSet[T]) Equal(other *TreeSet[T]) bool {
	if s.t.Len() != other.t.Len() {
		return false
	}
	eq := true
	s.t.Ascend(func(v T) bool {
		if !other.t.Has(v) {
			eq = false
			return false
		}
		return true
	})
	return eq
}

func (s *TreeSet[T]) Clone() *TreeSet[T] {
	return &TreeSet[T]{t: s.t.Clone(), less: s.less}
}

// Entries returns the stored elements in ascending order.
func (s *TreeSet[T]) Entries() []T {
	arr := make([]T, 0, s.t.Len())
	s.t.Ascend(func(v T) bool {
		arr = append(arr, v)
		return true
	})
	return arr
}

func (s *TreeSet[T]) String() string {
	return fmt.Sprint(s.Entries())
}

func (s *TreeSet[T]) emptyLike() *TreeSet[T] {
	return &TreeSet[T]{t: btree.NewG(treeDegree, s.less), less: s.less}
}

// NewOrdered returns a tree-backed Set holding exactly the given elements,
// ordered naturally. With no arguments it is the canonical empty set.
func NewOrdered[T constraints.Ordered](elems ...T) *Set[T, *TreeSet[T]] {
	return New[T](NewOrderedTreeSet(elems...))
}

// AllOrdered returns the tree-backed universal set over T.
func AllOrdered[T constraints.Ordered]() *Set[T, *TreeSet[T]] {
	return NewComplement[T](NewOrderedTreeSet[T]())
}
