package infset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnionCombinations(t *testing.T) {
	tests := []struct {
		name       string
		a, b, want *Set[int, *HashSet[int]]
	}{
		{"union with union", NewHash(1, 2), NewHash(2, 3), NewHash(1, 2, 3)},
		{"union with complement", NewHash(1, 2), comp(2, 3), comp(3)},
		{"complement with union", comp(2, 3), NewHash(1, 2), comp(3)},
		{"complement with complement", comp(1, 2), comp(2, 3), comp(2)},
		{"union with all", NewHash(1), AllHash[int](), AllHash[int]()},
		{"complement with its exclusions", comp(3), NewHash(3), AllHash[int]()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.Union(test.b)
			require.True(t, got.Equal(test.want), "got %v, want %v", got, test.want)
		})
	}
}

func TestIntersectionCombinations(t *testing.T) {
	tests := []struct {
		name       string
		a, b, want *Set[int, *HashSet[int]]
	}{
		{"union with union", NewHash(1, 2), NewHash(2, 3), NewHash(2)},
		{"union with complement", NewHash(1, 2), comp(2, 3), NewHash(1)},
		{"complement with union", comp(2, 3), NewHash(1, 2), NewHash(1)},
		{"complement with complement", comp(1, 2), comp(2, 3), comp(1, 2, 3)},
		{"union with all", NewHash(1, 2), AllHash[int](), NewHash(1, 2)},
		{"union with empty", NewHash(1, 2), NewHash[int](), NewHash[int]()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.Intersection(test.b)
			require.True(t, got.Equal(test.want), "got %v, want %v", got, test.want)
		})
	}
}

func TestDifferenceCombinations(t *testing.T) {
	tests := []struct {
		name       string
		a, b, want *Set[int, *HashSet[int]]
	}{
		{"union minus union", NewHash(1, 2), NewHash(2, 3), NewHash(1)},
		{"union minus complement", NewHash(1, 2), comp(2, 3), NewHash(2)},
		{"complement minus union", comp(1, 2), NewHash(2, 3), comp(1, 2, 3)},
		{"complement minus complement", comp(1, 2), comp(2, 3), NewHash(3)},
		{"union minus all", NewHash(1, 2), AllHash[int](), NewHash[int]()},
		{"all minus union", AllHash[int](), NewHash(1), comp(1)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.Difference(test.b)
			require.True(t, got.Equal(test.want), "got %v, want %v", got, test.want)
		})
	}
}

func TestSymmetricDifferenceCombinations(t *testing.T) {
	tests := []struct {
		name       string
		a, b, want *Set[int, *HashSet[int]]
	}{
		{"union with union", NewHash(1, 2), NewHash(2, 3), NewHash(1, 3)},
		{"union with complement", NewHash(1, 2), comp(2, 3), comp(1, 3)},
		{"complement with union", comp(2, 3), NewHash(1, 2), comp(1, 3)},
		{"complement with complement", comp(1, 2), comp(2, 3), NewHash(1, 3)},
		{"set with itself", NewHash(1, 2), NewHash(1, 2), NewHash[int]()},
		{"complement with itself", comp(1), comp(1), NewHash[int]()},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.a.SymmetricDifference(test.b)
			require.True(t, got.Equal(test.want), "got %v, want %v", got, test.want)
		})
	}
}

func TestIsSubset(t *testing.T) {
	tests := []struct {
		name string
		a, b *Set[int, *HashSet[int]]
		want bool
	}{
		{"union within union", NewHash(1), NewHash(1, 2), true},
		{"union beyond union", NewHash(1, 2), NewHash(1), false},
		{"union within complement", NewHash(1), comp(2), true},
		{"union hits exclusion", NewHash(2), comp(2), false},
		{"complement never within union", comp(1), NewHash(1, 2, 3), false},
		{"wider complement within narrower", comp(1, 2), comp(1), true},
		{"narrower complement beyond wider", comp(1), comp(1, 2), false},
		{"empty within anything", NewHash[int](), comp(1), true},
		{"anything within all", comp(1), AllHash[int](), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, test.a.IsSubset(test.b))
			require.Equal(t, test.want, test.b.IsSuperset(test.a))
		})
	}
}

func TestIsDisjoint(t *testing.T) {
	tests := []struct {
		name string
		a, b *Set[int, *HashSet[int]]
		want bool
	}{
		{"separate unions", NewHash(1), NewHash(2), true},
		{"overlapping unions", NewHash(1, 2), NewHash(2, 3), false},
		{"empty unions", NewHash[int](), NewHash[int](), true},
		{"union excluded by complement", NewHash(1), comp(1), true},
		{"union admitted by complement", NewHash(1), comp(2), false},
		{"complements always overlap", comp(1), comp(2), false},
		{"all with all", AllHash[int](), AllHash[int](), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.want, test.a.IsDisjoint(test.b))
			require.Equal(t, test.want, test.b.IsDisjoint(test.a))
		})
	}
}

func TestAlgebraLeavesOperandsUntouched(t *testing.T) {
	a := comp(1, 2)
	b := NewHash(2, 3)
	snapA := a.Clone()
	snapB := b.Clone()

	a.Union(b)
	a.Intersection(b)
	a.Difference(b)
	a.SymmetricDifference(b)
	a.IsSubset(b)
	a.IsDisjoint(b)

	require.True(t, a.Equal(snapA))
	require.True(t, b.Equal(snapB))
}

func randHashSet(rnd *rand.Rand) *HashSet[int] {
	s := NewHashSet[int]()
	n := rnd.Intn(8)
	for i := 0; i < n; i++ {
		s.Insert(rnd.Intn(16))
	}
	return s
}

func buildSet(complement bool, elems *HashSet[int]) *Set[int, *HashSet[int]] {
	if complement {
		return NewComplement[int](elems)
	}
	return New[int](elems)
}

// Checks every operator against plain membership logic: for any pair of
// sets, each element either is or is not a member, and the result of an
// operator must agree with the boolean combination of those answers.
func TestOperatorsAgreeWithMembership(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		a := randHashSet(rnd)
		b := randHashSet(rnd)
		for _, ca := range []bool{false, true} {
			for _, cb := range []bool{false, true} {
				x := buildSet(ca, a.Clone())
				y := buildSet(cb, b.Clone())
				union := x.Union(y)
				inter := x.Intersection(y)
				diff := x.Difference(y)
				sym := x.SymmetricDifference(y)
				for probe := -2; probe < 18; probe++ {
					inX := x.Contains(probe)
					inY := y.Contains(probe)
					require.Equal(t, inX || inY, union.Contains(probe))
					require.Equal(t, inX && inY, inter.Contains(probe))
					require.Equal(t, inX && !inY, diff.Contains(probe))
					require.Equal(t, inX != inY, sym.Contains(probe))
				}
			}
		}
	}
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for iter := 0; iter < 500; iter++ {
		s := buildSet(rnd.Intn(2) == 1, randHashSet(rnd))
		v := rnd.Intn(20)
		had := s.Contains(v)
		require.Equal(t, !had, s.Insert(v))
		require.True(t, s.Contains(v))
		require.True(t, s.Remove(v))
		require.False(t, s.Contains(v))
		require.True(t, s.Insert(v))
	}
}

func TestDoubleComplementIdentity(t *testing.T) {
	rnd := rand.New(rand.NewSource(13))
	for iter := 0; iter < 200; iter++ {
		s := buildSet(rnd.Intn(2) == 1, randHashSet(rnd))
		require.True(t, s.Complemented().Complemented().Equal(s))

		flipped := s.Clone()
		flipped.Complement()
		require.Equal(t, !s.IsComplement(), flipped.IsComplement())
		flipped.Complement()
		require.True(t, flipped.Equal(s))
	}
}

func TestLenMutualExclusivity(t *testing.T) {
	rnd := rand.New(rand.NewSource(17))
	for iter := 0; iter < 100; iter++ {
		s := buildSet(rnd.Intn(2) == 1, randHashSet(rnd))
		_, unionOK := s.UnionLen()
		_, complementOK := s.ComplementLen()
		require.NotEqual(t, unionOK, complementOK)
		require.Equal(t, s.IsUnion(), unionOK)
		require.Equal(t, s.IsComplement(), complementOK)
	}
}
