/*
Package bptree provides the ordered index of csdb: an in-memory B+ tree with a
fixed fanout, mapping sortable keys to values.

The tree is single-threaded. Clients needing concurrent access have to wrap a
tree into a single exclusive lock (package csdb does exactly this).

Layout:
  - nodes live in an arena owned by the tree and are addressed by stable
    integer ids; parent links and the leaf chain are plain ids and never own
    anything,
  - distinct `leafNode` and `innerNode` representations, each with storage of
    fixed capacity allocated once at node creation,
  - leaves hold up to B sorted (key, value) pairs and are chained left to
    right for ordered scans,
  - inner nodes hold up to B separator keys and B+1 children; separator i is
    the smallest key reachable through child i+1.

Insertion never lets a node grow beyond B entries. A full leaf is split
before the pending key is stored, and the split propagates upwards: a full
parent is split first, and a full root makes the tree grow by one level while
keeping the root's arena slot.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bptree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'csdb'
func tracer() tracing.Trace {
	return tracing.Select("csdb")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
