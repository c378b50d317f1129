package bptree

// ForEach walks all entries in ascending key order, following the leaf chain.
//
// Iteration stops early if callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || fn == nil {
		return
	}
	for id := t.head; id != noNode; {
		leaf := t.leaf(id)
		for i := 0; i < leaf.n; i++ {
			if !fn(leaf.keys[i], leaf.vals[i]) {
				return
			}
		}
		id = leaf.next
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.Len())
	t.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Iterator is a forward cursor over the leaf chain.
//
// The tree must not be modified while an iterator is in use.
//
//	it := tree.Range(from, to)
//	for it.Next() {
//	    use(it.Key(), it.Value())
//	}
type Iterator[K, V any] struct {
	tree     *Tree[K, V]
	leaf     nodeID
	pos      int
	hasUpper bool
	upper    K // exclusive
	key      K
	value    V
}

// Scan returns an iterator over all keys >= from.
func (t *Tree[K, V]) Scan(from K) *Iterator[K, V] {
	id := t.findLeaf(t.root, from)
	pos, _ := t.leafIndex(t.leaf(id), from)
	return &Iterator[K, V]{tree: t, leaf: id, pos: pos}
}

// Range returns an iterator over the keys k with from <= k < to.
func (t *Tree[K, V]) Range(from, to K) *Iterator[K, V] {
	it := t.Scan(from)
	it.hasUpper = true
	it.upper = to
	return it
}

// All returns an iterator over the whole tree.
func (t *Tree[K, V]) All() *Iterator[K, V] {
	return &Iterator[K, V]{tree: t, leaf: t.head}
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[K, V]) Next() bool {
	for it.leaf != noNode {
		leaf := it.tree.leaf(it.leaf)
		if it.pos < leaf.n {
			k := leaf.keys[it.pos]
			if it.hasUpper && it.tree.cfg.Compare(k, it.upper) >= 0 {
				it.leaf = noNode
				return false
			}
			it.key, it.value = k, leaf.vals[it.pos]
			it.pos++
			return true
		}
		it.leaf = leaf.next
		it.pos = 0
	}
	return false
}

// Key returns the key of the current entry.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value of the current entry.
func (it *Iterator[K, V]) Value() V { return it.value }
