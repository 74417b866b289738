package infset

// The binary algebra reduces every combination of union form (U) and
// complement form (C) to finite algebra on the backings. Only the finite
// part of an operand can ever be materialized, so each case below is an
// application of the De Morgan identities; they are implemented exactly as
// stated and verified pointwise by the property tests.

// Union returns a new Set containing the members of either operand. Neither
// operand is mutated.
//
//	U(A) ∪ U(B) = U(A ∪ B)
//	U(A) ∪ C(B) = C(B - A)
//	C(A) ∪ U(B) = C(A - B)
//	C(A) ∪ C(B) = C(A ∩ B)
func (s *Set[T, S]) Union(other *Set[T, S]) *Set[T, S] {
	switch {
	case !s.complement && !other.complement:
		return &Set[T, S]{elements: s.elements.Union(other.elements)}
	case !s.complement && other.complement:
		return &Set[T, S]{complement: true, elements: other.elements.Difference(s.elements)}
	case s.complement && !other.complement:
		return &Set[T, S]{complement: true, elements: s.elements.Difference(other.elements)}
	default:
		return &Set[T, S]{complement: true, elements: s.elements.Intersection(other.elements)}
	}
}

// Intersection returns a new Set containing the members of both operands.
// Neither operand is mutated.
//
//	U(A) ∩ U(B) = U(A ∩ B)
//	U(A) ∩ C(B) = U(A - B)
//	C(A) ∩ U(B) = U(B - A)
//	C(A) ∩ C(B) = C(A ∪ B)
func (s *Set[T, S]) Intersection(other *Set[T, S]) *Set[T, S] {
	switch {
	case !s.complement && !other.complement:
		return &Set[T, S]{elements: s.elements.Intersection(other.elements)}
	case !s.complement && other.complement:
		return &Set[T, S]{elements: s.elements.Difference(other.elements)}
	case s.complement && !other.complement:
		return &Set[T, S]{elements: other.elements.Difference(s.elements)}
	default:
		return &Set[T, S]{complement: true, elements: s.elements.Union(other.elements)}
	}
}

// Difference returns a new Set containing the members of s that are not
// members of other. Neither operand is mutated.
//
//	U(A) - U(B) = U(A - B)
//	U(A) - C(B) = U(A ∩ B)
//	C(A) - U(B) = C(A ∪ B)
//	C(A) - C(B) = U(B - A)
func (s *Set[T, S]) Difference(other *Set[T, S]) *Set[T, S] {
	switch {
	case !s.complement && !other.complement:
		return &Set[T, S]{elements: s.elements.Difference(other.elements)}
	case !s.complement && other.complement:
		return &Set[T, S]{elements: s.elements.Intersection(other.elements)}
	case s.complement && !other.complement:
		return &Set[T, S]{complement: true, elements: s.elements.Union(other.elements)}
	default:
		return &Set[T, S]{elements: other.elements.Difference(s.elements)}
	}
}

// SymmetricDifference returns a new Set containing the members of exactly
// one operand, derived as (s - other) ∪ (other - s) for every form
// combination.
func (s *Set[T, S]) SymmetricDifference(other *Set[T, S]) *Set[T, S] {
	return s.Difference(other).Union(other.Difference(s))
}

// IsDisjoint reports whether the operands share no member. Two complement
// sets always overlap, their exclusion lists being finite.
func (s *Set[T, S]) IsDisjoint(other *Set[T, S]) bool {
	return s.Intersection(other).IsEmpty()
}

// IsSubset reports whether every member of s is a member of other, i.e.
// whether s minus other denotes the empty set.
func (s *Set[T, S]) IsSubset(other *Set[T, S]) bool {
	return s.Difference(other).IsEmpty()
}

// IsSuperset reports whether every member of other is a member of s.
func (s *Set[T, S]) IsSuperset(other *Set[T, S]) bool {
	return other.IsSubset(s)
}
