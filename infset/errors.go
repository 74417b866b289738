package infset

import "errors"

var (
	ErrNotEnumerable = errors.New("backing set does not expose its entries")
)
