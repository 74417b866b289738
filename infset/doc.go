// Package infset implements sets over an infinite universe of elements.
//
// A Set is either the union of finitely many explicitly stored elements, or
// the complement of such a finite set: "everything except these". Allow-lists
// and deny-lists therefore share one type and one operation vocabulary, and
// the algebra (union, intersection, difference, symmetric difference) works
// across every combination of the two forms.
//
// The universe is assumed to be infinite. An empty complement contains
// literally everything, not just every value representable by the element
// type. Picking bool as the element type and excluding both false and true
// does NOT yield a set equal to the empty union; equality is representation
// equality (same form, same stored elements) and no semantic simplification
// is attempted. Element types that genuinely have an unbounded value space
// (strings, slices via KeyedSet, UUIDs) are the natural fit.
//
// Storage is abstracted behind the Backing interface; HashSet, TreeSet and
// KeyedSet are the provided implementations, and any container satisfying
// the contract can back a Set.
//
// Some familiar set operations are deliberately missing from Set. The
// elements of a complement set are defined by absence, so they cannot be
// iterated, there is no first or last one, and the set has no finite length.
// Only the stored finite part can be counted, via UnionLen and ComplementLen.
// A plain Len, element iterators, Pop or SplitOff style operations must not
// be bolted on without re-deriving sound semantics for the complement form.
package infset
