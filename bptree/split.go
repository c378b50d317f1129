package bptree

// doInsert writes a new entry into a leaf with spare capacity, keeping the
// keys sorted. Callers have to handle existing keys and full leaves.
func (t *Tree[K, V]) doInsert(leaf *leafNode[K, V], key K, value V) {
	assert(!leaf.full(), "doInsert called on a full leaf")
	pos := leaf.n
	for i := 0; i < leaf.n; i++ {
		if t.cfg.Compare(leaf.keys[i], key) > 0 {
			pos = i
			break
		}
	}
	copy(leaf.keys[pos+1:leaf.n+1], leaf.keys[pos:leaf.n])
	copy(leaf.vals[pos+1:leaf.n+1], leaf.vals[pos:leaf.n])
	leaf.keys[pos] = key
	leaf.vals[pos] = value
	leaf.n++
}

// doInsertChild is doInsert for inner nodes: it stores separator key and the
// child right of it into node id and adopts the child.
func (t *Tree[K, V]) doInsertChild(id nodeID, key K, child nodeID) {
	inner := t.inner(id)
	assert(!inner.full(), "doInsertChild called on a full internal node")
	pos := inner.n
	for i := 0; i < inner.n; i++ {
		if t.cfg.Compare(inner.keys[i], key) > 0 {
			pos = i
			break
		}
	}
	copy(inner.keys[pos+1:inner.n+1], inner.keys[pos:inner.n])
	copy(inner.children[pos+2:inner.n+2], inner.children[pos+1:inner.n+1])
	inner.keys[pos] = key
	inner.children[pos+1] = child
	inner.n++
	t.setParent(child, id)
}

// split divides the full node id into two siblings and links the new right
// sibling into the parent, splitting ancestors as needed.
//
// probe is the key the caller is about to insert. split returns the two
// siblings and whether probe belongs to the left one. Afterwards either
// sibling has room for one more entry.
//
// Node id keeps the lower half of its entries, unless id is the root: then
// id is re-used for the new root and the lower half moves to a fresh node,
// returned as left.
func (t *Tree[K, V]) split(id nodeID, probe K) (left, right nodeID, toLeft bool) {
	n := t.node(id)
	assert(n.size() == t.cfg.Fanout, "split called on a node which is not full")
	sibling, separator := t.partition(id)
	toLeft = t.cfg.Compare(probe, separator) < 0
	parent := n.parentID()
	if parent == noNode {
		left = t.growRoot(id, sibling, separator)
		return left, sibling, toLeft
	}
	target := parent
	if t.inner(parent).full() {
		pleft, pright, pToLeft := t.split(parent, separator)
		target = pright
		if pToLeft {
			target = pleft
		}
		assert(n.parentID() == target, "split lost track of the parent of a node")
	}
	t.doInsertChild(target, separator, sibling)
	return id, sibling, toLeft
}

// partition moves the upper half of the entries of node id into a new
// sibling. It returns the sibling and the smallest key reachable through it.
//
// The sibling is created with the parent of id; linking it into a parent
// node is left to the caller.
func (t *Tree[K, V]) partition(id nodeID) (nodeID, K) {
	switch n := t.node(id).(type) {
	case *leafNode[K, V]:
		mid := n.n / 2
		sid, sib := t.makeLeaf(n.parent)
		copy(sib.keys, n.keys[mid:n.n])
		copy(sib.vals, n.vals[mid:n.n])
		sib.n = n.n - mid
		clear(n.keys[mid:n.n])
		clear(n.vals[mid:n.n])
		n.n = mid
		sib.next = n.next
		n.next = sid
		return sid, sib.keys[0]
	case *innerNode[K, V]:
		// The middle separator moves up; it is the smallest key reachable
		// through the first child handed over to the sibling.
		mid := n.n / 2
		separator := n.keys[mid]
		sid, sib := t.makeInternal(n.parent)
		copy(sib.keys, n.keys[mid+1:n.n])
		copy(sib.children, n.children[mid+1:n.n+1])
		sib.n = n.n - mid - 1
		for _, child := range sib.validChildren() {
			t.setParent(child, sid)
		}
		clear(n.keys[mid:n.n])
		for i := mid + 1; i <= n.n; i++ {
			n.children[i] = noNode
		}
		n.n = mid
		assert(n.n > 0 && sib.n > 0, "split left an internal node without separators")
		return sid, separator
	default:
		panic("unknown tree node type")
	}
}

// growRoot adds a level on top of the tree after the root has been
// partitioned. The root's lower half moves to a fresh node, and the root's
// slot is re-used for a new internal node with children (lower half,
// sibling).
func (t *Tree[K, V]) growRoot(id, sibling nodeID, separator K) nodeID {
	lower := t.node(id)
	left := t.alloc(lower)
	lower.setParentID(id)
	switch n := lower.(type) {
	case *innerNode[K, V]:
		for _, child := range n.validChildren() {
			t.setParent(child, left)
		}
	case *leafNode[K, V]:
		// a leaf root is the only leaf, so nothing but head points to it
		if t.head == id {
			t.head = left
		}
	}
	root := &innerNode[K, V]{
		parent:   noNode,
		keys:     make([]K, t.cfg.Fanout),
		children: make([]nodeID, t.cfg.Fanout+1),
	}
	for i := range root.children {
		root.children[i] = noNode
	}
	root.keys[0] = separator
	root.children[0] = left
	root.children[1] = sibling
	root.n = 1
	t.nodes[id] = root
	t.setParent(sibling, id)
	t.depth++
	tracer().Debugf("bptree: root split, height is now %d", t.depth)
	return left
}
