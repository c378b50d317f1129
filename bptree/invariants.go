package bptree

import "fmt"

// Check validates the structural invariants of the tree:
//
//   - keys within every node are strictly ascending,
//   - separator i of an inner node is the smallest key reachable through
//     child i+1, and every subtree respects the bounds of its separators,
//   - no node holds more than Fanout keys, and only a leaf root may be empty,
//   - all leaves are on the same level, which matches Height,
//   - parent links of all nodes name their owner,
//   - the leaf chain visits every leaf from left to right exactly once,
//   - every node in the arena is owned by the tree.
//
// This checker is intentionally strict and meant for tests.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.cfg.Fanout < MinFanout {
		return fmt.Errorf("%w: fanout %d < %d", ErrInvariant, t.cfg.Fanout, MinFanout)
	}
	if t.node(t.root).parentID() != noNode {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	c := checker[K, V]{tree: t}
	depth, err := c.checkNode(t.root, noNode, nil, nil)
	if err != nil {
		return err
	}
	if depth != t.depth {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, depth, t.depth)
	}
	if c.keys != t.count {
		return fmt.Errorf("%w: key count mismatch (%d != %d)", ErrInvariant, c.keys, t.count)
	}
	if c.nodes != len(t.nodes) {
		return fmt.Errorf("%w: %d of %d arena nodes are unreachable", ErrInvariant,
			len(t.nodes)-c.nodes, len(t.nodes))
	}
	return t.checkLeafChain(c.leaves)
}

type checker[K, V any] struct {
	tree   *Tree[K, V]
	leaves []nodeID // in key order, as found by descent
	keys   int
	nodes  int
}

// checkNode verifies the subtree at id, whose keys have to be within
// [lower, upper). A nil bound is unbounded. It returns the subtree height.
func (c *checker[K, V]) checkNode(id, parent nodeID, lower, upper *K) (int, error) {
	t := c.tree
	if id < 0 || int(id) >= len(t.nodes) {
		return 0, fmt.Errorf("%w: node id %d out of arena range", ErrInvariant, id)
	}
	c.nodes++
	n := t.nodes[id]
	if n.parentID() != parent {
		return 0, fmt.Errorf("%w: node %d has parent %d, is owned by %d",
			ErrInvariant, id, n.parentID(), parent)
	}
	if n.size() > t.cfg.Fanout {
		return 0, fmt.Errorf("%w: node %d holds %d keys, fanout is %d",
			ErrInvariant, id, n.size(), t.cfg.Fanout)
	}
	switch n := n.(type) {
	case *leafNode[K, V]:
		if n.isEmpty() && (id != t.root || t.count != 0) {
			return 0, fmt.Errorf("%w: empty leaf %d", ErrInvariant, id)
		}
		if err := c.checkKeys(id, n.validKeys(), lower, upper); err != nil {
			return 0, err
		}
		c.leaves = append(c.leaves, id)
		c.keys += n.n
		return 1, nil
	case *innerNode[K, V]:
		if n.isEmpty() {
			return 0, fmt.Errorf("%w: internal node %d has no separators", ErrInvariant, id)
		}
		if err := c.checkKeys(id, n.keys[:n.n], lower, upper); err != nil {
			return 0, err
		}
		height := 0
		for i, child := range n.validChildren() {
			lo, hi := lower, upper
			if i > 0 {
				lo = &n.keys[i-1]
			}
			if i < n.n {
				hi = &n.keys[i]
			}
			h, err := c.checkNode(child, id, lo, hi)
			if err != nil {
				return 0, err
			}
			if i == 0 {
				height = h
			} else if h != height {
				return 0, fmt.Errorf("%w: non-uniform subtree heights below node %d", ErrInvariant, id)
			}
			if i > 0 {
				if least := c.minKey(child); t.cfg.Compare(least, n.keys[i-1]) != 0 {
					return 0, fmt.Errorf("%w: separator %d of node %d is %v, smallest key of child is %v",
						ErrInvariant, i-1, id, n.keys[i-1], least)
				}
			}
		}
		return height + 1, nil
	default:
		return 0, fmt.Errorf("%w: unknown node type at %d", ErrInvariant, id)
	}
}

func (c *checker[K, V]) checkKeys(id nodeID, keys []K, lower, upper *K) error {
	cmp := c.tree.cfg.Compare
	for i, k := range keys {
		if i > 0 && cmp(keys[i-1], k) >= 0 {
			return fmt.Errorf("%w: keys of node %d not strictly ascending at %d", ErrInvariant, id, i)
		}
		if lower != nil && cmp(k, *lower) < 0 {
			return fmt.Errorf("%w: key %v of node %d below bound %v", ErrInvariant, k, id, *lower)
		}
		if upper != nil && cmp(k, *upper) >= 0 {
			return fmt.Errorf("%w: key %v of node %d not below bound %v", ErrInvariant, k, id, *upper)
		}
	}
	return nil
}

// minKey returns the leftmost key reachable through node id.
func (c *checker[K, V]) minKey(id nodeID) K {
	t := c.tree
	for {
		switch n := t.nodes[id].(type) {
		case *leafNode[K, V]:
			return n.keys[0]
		case *innerNode[K, V]:
			id = n.children[0]
		default:
			panic("unknown tree node type")
		}
	}
}

// checkLeafChain compares the leaf chain with the leaves in descent order.
func (t *Tree[K, V]) checkLeafChain(leaves []nodeID) error {
	if len(leaves) == 0 || t.head != leaves[0] {
		return fmt.Errorf("%w: leaf chain does not start at the leftmost leaf", ErrInvariant)
	}
	id := t.head
	for i, want := range leaves {
		if id != want {
			return fmt.Errorf("%w: leaf chain position %d is node %d, expected %d", ErrInvariant, i, id, want)
		}
		leaf, ok := t.nodes[id].(*leafNode[K, V])
		if !ok {
			return fmt.Errorf("%w: leaf chain links to internal node %d", ErrInvariant, id)
		}
		id = leaf.next
	}
	if id != noNode {
		return fmt.Errorf("%w: leaf chain continues past the rightmost leaf", ErrInvariant)
	}
	return nil
}
