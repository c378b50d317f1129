package bptree

import (
	"cmp"
	"fmt"
)

const (
	// DefaultFanout is the fanout used when a Config leaves it unset.
	DefaultFanout = 12
	// MinFanout is the smallest fanout for which a split leaves both halves
	// of an inner node non-empty.
	MinFanout = 3
)

// Config configures a B+ tree.
type Config[K any] struct {
	// Fanout is the maximum number of keys per node (B). Inner nodes hold up
	// to Fanout+1 children. Zero selects DefaultFanout.
	Fanout int
	// Compare defines the total order of keys. It returns a negative number
	// if a < b, zero if a == b and a positive number if a > b.
	Compare func(a, b K) int
}

// OrderedConfig returns a configuration for naturally ordered key types.
func OrderedConfig[K cmp.Ordered](fanout int) Config[K] {
	return Config[K]{
		Fanout:  fanout,
		Compare: cmp.Compare[K],
	}
}

func (cfg Config[K]) normalized() Config[K] {
	if cfg.Fanout == 0 {
		cfg.Fanout = DefaultFanout
	}
	return cfg
}

func (cfg Config[K]) validate() error {
	cfg = cfg.normalized()
	if cfg.Fanout < MinFanout {
		return fmt.Errorf("%w: fanout must be >= %d, is %d", ErrInvalidConfig, MinFanout, cfg.Fanout)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	return nil
}
