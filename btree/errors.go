package btree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("btree: invalid configuration")
	// ErrInvalidOrder signals a tree order below the minimum of 3.
	ErrInvalidOrder = errors.New("btree: invalid order")
	// ErrInvalid signals a structural invariant violation found by Check.
	// It indicates a bug in the mutation algorithms, not a caller error.
	ErrInvalid = errors.New("btree: invariant violation")
)
