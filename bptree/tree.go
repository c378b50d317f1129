package bptree

import "cmp"

// Tree is an in-memory B+ tree with fixed fanout.
//
// K is the key type, ordered by the configured compare function, V is the
// value type. The zero value is not usable; create trees with New or
// NewOrdered.
type Tree[K, V any] struct {
	cfg   Config[K]
	nodes []treeNode[K, V] // arena; a node's id is its index
	root  nodeID           // root keeps its id, even across root growth
	head  nodeID           // leftmost leaf, start of the leaf chain
	count int
	depth int // 1 means a leaf root
}

// New creates a tree consisting of a single empty leaf.
func New[K, V any](cfg Config[K]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	t := &Tree[K, V]{cfg: cfg.normalized()}
	t.reset()
	tracer().Debugf("bptree: created tree with fanout %d", t.cfg.Fanout)
	return t, nil
}

// NewOrdered creates a tree for a naturally ordered key type.
func NewOrdered[K cmp.Ordered, V any](fanout int) (*Tree[K, V], error) {
	return New[K, V](OrderedConfig[K](fanout))
}

func (t *Tree[K, V]) reset() {
	t.nodes = make([]treeNode[K, V], 0, 16)
	t.root, _ = t.makeLeaf(noNode)
	t.head = t.root
	t.count = 0
	t.depth = 1
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K] {
	return t.cfg
}

// Fanout returns the maximum number of keys per node.
func (t *Tree[K, V]) Fanout() int {
	return t.cfg.Fanout
}

// Len returns the number of keys stored in the tree.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K, V]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of node levels, where 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	return t.depth
}

// Clear drops all nodes and leaves the tree with a single empty leaf.
func (t *Tree[K, V]) Clear() {
	t.reset()
}

// Find returns the value stored for key. The boolean result is false if the
// key is not present.
func (t *Tree[K, V]) Find(key K) (V, bool) {
	leaf := t.leaf(t.findLeaf(t.root, key))
	if pos, found := t.leafIndex(leaf, key); found {
		return leaf.vals[pos], true
	}
	var zero V
	return zero, false
}

// Insert stores value for key. If key is already present, its value is
// overwritten and the number of keys does not change.
func (t *Tree[K, V]) Insert(key K, value V) {
	id := t.findLeaf(t.root, key)
	leaf := t.leaf(id)
	if pos, found := t.leafIndex(leaf, key); found {
		leaf.vals[pos] = value
		return
	}
	if !leaf.full() {
		t.doInsert(leaf, key, value)
		t.count++
		return
	}
	left, right, toLeft := t.split(id, key)
	target := right
	if toLeft {
		target = left
	}
	t.doInsert(t.leaf(target), key, value)
	t.count++
}

// Min returns the smallest key and its value.
func (t *Tree[K, V]) Min() (K, V, bool) {
	leaf := t.leaf(t.head)
	if leaf.isEmpty() {
		var k K
		var v V
		return k, v, false
	}
	return leaf.keys[0], leaf.vals[0], true
}

// Max returns the largest key and its value.
func (t *Tree[K, V]) Max() (K, V, bool) {
	id := t.root
	for {
		inner, ok := t.node(id).(*innerNode[K, V])
		if !ok {
			break
		}
		id = inner.children[inner.n]
	}
	leaf := t.leaf(id)
	if leaf.isEmpty() {
		var k K
		var v V
		return k, v, false
	}
	return leaf.keys[leaf.n-1], leaf.vals[leaf.n-1], true
}

// --- Search ----------------------------------------------------------------

// findLeaf descends from node id to the leaf responsible for key.
func (t *Tree[K, V]) findLeaf(id nodeID, key K) nodeID {
	switch n := t.node(id).(type) {
	case *leafNode[K, V]:
		return id
	case *innerNode[K, V]:
		return t.findLeaf(n.children[t.childIndex(n, key)], key)
	default:
		panic("unknown tree node type")
	}
}

// childIndex selects the child left of the first separator strictly greater
// than key, or the rightmost child if there is none.
func (t *Tree[K, V]) childIndex(inner *innerNode[K, V], key K) int {
	for i := 0; i < inner.n; i++ {
		if t.cfg.Compare(inner.keys[i], key) > 0 {
			return i
		}
	}
	return inner.n
}

// leafIndex scans a leaf for key. If key is not present, the position it
// would have to be inserted at is returned.
func (t *Tree[K, V]) leafIndex(leaf *leafNode[K, V], key K) (int, bool) {
	for i := 0; i < leaf.n; i++ {
		c := t.cfg.Compare(leaf.keys[i], key)
		if c == 0 {
			return i, true
		}
		if c > 0 {
			return i, false
		}
	}
	return leaf.n, false
}

// --- Statistics ------------------------------------------------------------

// Stats describes the shape of a tree.
type Stats struct {
	Height int // number of node levels
	Nodes  int // total node count
	Inner  int // internal node count
	Leaves int // leaf count
	Keys   int // stored keys
	Fill   float64
}

// Stats collects shape information by visiting every node once.
func (t *Tree[K, V]) Stats() Stats {
	s := Stats{Height: t.depth, Keys: t.count}
	slots := 0
	t.walk(t.root, func(id nodeID, n treeNode[K, V]) {
		s.Nodes++
		if n.isLeaf() {
			s.Leaves++
			slots += t.cfg.Fanout
		} else {
			s.Inner++
		}
	})
	if slots > 0 {
		s.Fill = float64(s.Keys) / float64(slots)
	}
	return s
}

// walk visits the subtree at id in pre-order, following owning edges only.
func (t *Tree[K, V]) walk(id nodeID, visit func(nodeID, treeNode[K, V])) {
	n := t.node(id)
	visit(id, n)
	if inner, ok := n.(*innerNode[K, V]); ok {
		for _, child := range inner.validChildren() {
			t.walk(child, visit)
		}
	}
}
