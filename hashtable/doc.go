/*
Package hashtable implements the unordered key/value store of csdb: a hash
table with a fixed number of buckets, collisions resolved by chaining.

Keys are mapped to buckets by an injected digest function over the byte
encoding of a key (see package digest). The table never grows; the bucket
count is fixed at construction time.

Like package bptree, a table is meant for single-threaded use.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package hashtable

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'csdb'
func tracer() tracing.Trace {
	return tracing.Select("csdb")
}

// ErrInvalidConfig signals an invalid table configuration.
var ErrInvalidConfig = errors.New("hashtable: invalid configuration")
