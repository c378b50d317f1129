package bptree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("bptree: invalid configuration")
	// ErrInvariant is reported by Check for a structurally broken tree.
	ErrInvariant = errors.New("bptree: invariant violated")
)
