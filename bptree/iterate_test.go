package bptree

import (
	"slices"
	"testing"
)

func makeEvenTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree := makeIntTree(t, 4)
	for k := 100; k > 0; k -= 2 {
		tree.Insert(k, "v")
	}
	return tree
}

func collect(it *Iterator[int, string]) []int {
	var keys []int
	for it.Next() {
		keys = append(keys, it.Key())
	}
	return keys
}

func TestForEachWalksLeafChainInOrder(t *testing.T) {
	tree := makeEvenTree(t)
	prev := 0
	n := 0
	tree.ForEach(func(k int, _ string) bool {
		if k <= prev {
			t.Fatalf("keys out of order: %d after %d", k, prev)
		}
		prev = k
		n++
		return true
	})
	if n != tree.Len() {
		t.Fatalf("expected %d keys, walked %d", tree.Len(), n)
	}
}

func TestForEachStopsEarly(t *testing.T) {
	tree := makeEvenTree(t)
	n := 0
	tree.ForEach(func(int, string) bool {
		n++
		return n < 5
	})
	if n != 5 {
		t.Fatalf("expected iteration to stop after 5 keys, got %d", n)
	}
}

func TestRange(t *testing.T) {
	tree := makeEvenTree(t)
	if got := collect(tree.Range(10, 20)); !slices.Equal(got, []int{10, 12, 14, 16, 18}) {
		t.Fatalf("unexpected range [10,20): %v", got)
	}
	if got := collect(tree.Range(11, 17)); !slices.Equal(got, []int{12, 14, 16}) {
		t.Fatalf("unexpected range [11,17): %v", got)
	}
	if got := collect(tree.Range(40, 40)); len(got) != 0 {
		t.Fatalf("expected empty range, got %v", got)
	}
}

func TestScanToEnd(t *testing.T) {
	tree := makeEvenTree(t)
	if got := collect(tree.Scan(93)); !slices.Equal(got, []int{94, 96, 98, 100}) {
		t.Fatalf("unexpected scan from 93: %v", got)
	}
	if got := collect(tree.Scan(101)); len(got) != 0 {
		t.Fatalf("expected empty scan past the last key, got %v", got)
	}
}

func TestIteratorValues(t *testing.T) {
	tree := makeIntTree(t, 3)
	for _, k := range []int{3, 1, 2} {
		tree.Insert(k, string(rune('a'+k-1)))
	}
	it := tree.All()
	var values []string
	for it.Next() {
		values = append(values, it.Value())
	}
	if !slices.Equal(values, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected values %v", values)
	}
	if it.Next() {
		t.Fatalf("exhausted iterator must stay exhausted")
	}
}

func TestIterateEmptyTree(t *testing.T) {
	tree := makeIntTree(t, 3)
	if got := collect(tree.All()); len(got) != 0 {
		t.Fatalf("expected no keys, got %v", got)
	}
	if keys := tree.Keys(); len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}
