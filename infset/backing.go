package infset

// Backing is the contract a finite set container must satisfy to back a Set.
// S is the implementing type itself, so the algebra closes over the concrete
// container (hash-based and tree-based containers both qualify).
//
// Union, Intersection, Difference and SymmetricDifference are pure: they
// never mutate either operand and return a freshly owned result. Equal and
// Clone make the structural equality and copyability of the container
// explicit; a Set's own equality and cloning are defined in terms of them.
//
// Iteration, ordering and indexing are intentionally not part of the
// contract. Implementations may offer them (all three provided backings
// expose Entries), but a Set never requires them.
type Backing[S, T any] interface {
	// Insert adds v and reports whether it was newly added.
	Insert(v T) bool
	// Remove deletes v and reports whether it was present.
	Remove(v T) bool
	Contains(v T) bool
	Len() int
	Union(other S) S
	Intersection(other S) S
	// Difference returns the elements of the receiver not in other.
	Difference(other S) S
	// SymmetricDifference returns the elements in exactly one operand.
	SymmetricDifference(other S) S
	Equal(other S) bool
	Clone() S
}
