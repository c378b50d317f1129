package bptree

// nodeID addresses a node in the arena of a tree. An id stays valid for the
// whole lifetime of the node it denotes.
type nodeID int32

// noNode is the null reference for parent links and the leaf chain.
const noNode nodeID = -1

type treeNode[K, V any] interface {
	isLeaf() bool
	isEmpty() bool
	size() int
	parentID() nodeID
	setParentID(nodeID)
}

type leafNode[K, V any] struct {
	parent nodeID
	// n is the logical entry count; valid entries are keys[:n] and vals[:n].
	n int
	// keys and vals are allocated with len == fanout and never re-sliced.
	keys []K
	vals []V
	// next is the right neighbour in the leaf chain, or noNode.
	next nodeID
}

func (l *leafNode[K, V]) isLeaf() bool         { return true }
func (l *leafNode[K, V]) isEmpty() bool        { return l.n == 0 }
func (l *leafNode[K, V]) size() int            { return l.n }
func (l *leafNode[K, V]) parentID() nodeID     { return l.parent }
func (l *leafNode[K, V]) setParentID(p nodeID) { l.parent = p }
func (l *leafNode[K, V]) full() bool           { return l.n == len(l.keys) }
func (l *leafNode[K, V]) validKeys() []K       { return l.keys[:l.n] }

type innerNode[K, V any] struct {
	parent nodeID
	// n is the separator count; valid children are children[:n+1].
	n int
	// keys is allocated with len == fanout, children with len == fanout+1.
	keys     []K
	children []nodeID
}

func (in *innerNode[K, V]) isLeaf() bool         { return false }
func (in *innerNode[K, V]) isEmpty() bool        { return in.n == 0 }
func (in *innerNode[K, V]) size() int            { return in.n }
func (in *innerNode[K, V]) parentID() nodeID     { return in.parent }
func (in *innerNode[K, V]) setParentID(p nodeID) { in.parent = p }
func (in *innerNode[K, V]) full() bool           { return in.n == len(in.keys) }
func (in *innerNode[K, V]) validChildren() []nodeID {
	return in.children[:in.n+1]
}

// --- Arena -----------------------------------------------------------------

func (t *Tree[K, V]) alloc(n treeNode[K, V]) nodeID {
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

func (t *Tree[K, V]) makeLeaf(parent nodeID) (nodeID, *leafNode[K, V]) {
	leaf := &leafNode[K, V]{
		parent: parent,
		keys:   make([]K, t.cfg.Fanout),
		vals:   make([]V, t.cfg.Fanout),
		next:   noNode,
	}
	return t.alloc(leaf), leaf
}

func (t *Tree[K, V]) makeInternal(parent nodeID) (nodeID, *innerNode[K, V]) {
	inner := &innerNode[K, V]{
		parent:   parent,
		keys:     make([]K, t.cfg.Fanout),
		children: make([]nodeID, t.cfg.Fanout+1),
	}
	for i := range inner.children {
		inner.children[i] = noNode
	}
	return t.alloc(inner), inner
}

func (t *Tree[K, V]) node(id nodeID) treeNode[K, V] {
	assert(id >= 0 && int(id) < len(t.nodes), "node id out of arena range")
	return t.nodes[id]
}

func (t *Tree[K, V]) leaf(id nodeID) *leafNode[K, V] {
	leaf, ok := t.node(id).(*leafNode[K, V])
	assert(ok, "expected leaf node")
	return leaf
}

func (t *Tree[K, V]) inner(id nodeID) *innerNode[K, V] {
	inner, ok := t.node(id).(*innerNode[K, V])
	assert(ok, "expected internal node")
	return inner
}

func (t *Tree[K, V]) setParent(id, parent nodeID) {
	t.node(id).setParentID(parent)
}
