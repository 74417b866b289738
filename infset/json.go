package infset

import "encoding/json"

// enumerable is what a backing must additionally offer for the codec to
// reach its elements. It is deliberately not part of the Backing contract.
type enumerable[T any] interface {
	Entries() []T
}

type setJSON[T any] struct {
	Complement bool `json:"complement"`
	Elements   []T  `json:"elements"`
}

// MarshalJSON encodes the set as {"complement": bool, "elements": [...]}.
// The backing must expose Entries (all provided backings do); otherwise
// ErrNotEnumerable is returned.
func (s *Set[T, S]) MarshalJSON() ([]byte, error) {
	e, ok := any(s.elements).(enumerable[T])
	if !ok {
		return nil, ErrNotEnumerable
	}
	return json.Marshal(setJSON[T]{Complement: s.complement, Elements: e.Entries()})
}

// UnmarshalJSON replaces the contents of s with the decoded form and
// elements. The receiver must have been built by a constructor; its backing
// kind, ordering and keying are retained.
func (s *Set[T, S]) UnmarshalJSON(data []byte) error {
	var dec setJSON[T]
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	elements := s.elements.Difference(s.elements)
	for _, v := range dec.Elements {
		elements.Insert(v)
	}
	s.complement = dec.Complement
	s.elements = elements
	return nil
}
