package bptree

import (
	"slices"
	"testing"
)

func TestDoInsertKeepsOrder(t *testing.T) {
	tree := makeIntTree(t, 5)
	leaf := tree.leaf(tree.root)
	for _, k := range []int{40, 10, 30, 20, 50} {
		tree.doInsert(leaf, k, "v")
	}
	if got := leaf.validKeys(); !slices.Equal(got, []int{10, 20, 30, 40, 50}) {
		t.Fatalf("expected sorted keys, got %v", got)
	}
}

func TestDoInsertPanicsOnFullLeaf(t *testing.T) {
	tree := makeIntTree(t, 3)
	leaf := tree.leaf(tree.root)
	for _, k := range []int{1, 2, 3} {
		tree.doInsert(leaf, k, "v")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected doInsert on a full leaf to panic")
		}
	}()
	tree.doInsert(leaf, 4, "v")
}

func TestPartitionRelinksLeafChain(t *testing.T) {
	tree := makeIntTree(t, 4)
	for _, k := range []int{1, 2, 3, 4} {
		tree.Insert(k, "v")
	}
	leaf := tree.leaf(tree.root)
	sid, separator := tree.partition(tree.root)
	sib := tree.leaf(sid)
	if separator != 3 {
		t.Fatalf("expected separator 3, got %d", separator)
	}
	if !slices.Equal(leaf.validKeys(), []int{1, 2}) || !slices.Equal(sib.validKeys(), []int{3, 4}) {
		t.Fatalf("unexpected halves %v / %v", leaf.validKeys(), sib.validKeys())
	}
	if leaf.next != sid || sib.next != noNode {
		t.Fatalf("leaf chain not relinked: %d -> %d -> %d", tree.root, leaf.next, sib.next)
	}
}

func TestPartitionInternalAdoptsChildren(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 1; ; k++ {
		tree.Insert(k, "v")
		if root, ok := tree.node(tree.root).(*innerNode[int, string]); ok && root.full() {
			break
		}
	}
	root := tree.inner(tree.root)
	moved := slices.Clone(root.children[2:4])
	sid, separator := tree.partition(tree.root)
	sib := tree.inner(sid)
	if root.n != 1 || sib.n != 1 {
		t.Fatalf("expected one separator per half, got %d / %d", root.n, sib.n)
	}
	if least := tree.leaf(sib.children[0]).keys[0]; separator != least {
		t.Fatalf("separator %d is not smallest key %d of new sibling", separator, least)
	}
	for _, child := range moved {
		if tree.node(child).parentID() != sid {
			t.Fatalf("child %d not adopted by new sibling %d", child, sid)
		}
	}
	for _, child := range root.validChildren() {
		if tree.node(child).parentID() != tree.root {
			t.Fatalf("child %d lost its parent", child)
		}
	}
}

func TestSplitReportsTargetSibling(t *testing.T) {
	for _, tc := range []struct {
		probe  int
		toLeft bool
	}{
		{15, true},
		{5, true},
		{25, false},
		{35, false},
	} {
		tree := makeIntTree(t, 3)
		for _, k := range []int{10, 20, 30} {
			tree.Insert(k, "v")
		}
		left, right, toLeft := tree.split(tree.root, tc.probe)
		if toLeft != tc.toLeft {
			t.Errorf("probe %d: expected toLeft=%v", tc.probe, tc.toLeft)
		}
		if left == tree.root || right == tree.root {
			t.Fatalf("probe %d: root slot must hold the new root", tc.probe)
		}
		if tree.node(left).parentID() != tree.root || tree.node(right).parentID() != tree.root {
			t.Fatalf("probe %d: siblings not adopted by new root", tc.probe)
		}
		if tree.head != left || tree.leaf(left).next != right {
			t.Fatalf("probe %d: leaf chain not rooted at left sibling", tc.probe)
		}
		mustCheck(t, tree)
	}
}

func TestSplitCascadesThroughFullParent(t *testing.T) {
	tree := makeIntTree(t, 3)
	// 1..6 ascending leaves a full root {2,3,4} over leaves {1},{2},{3},{4,5,6}
	for k := 1; k <= 6; k++ {
		tree.Insert(k, "v")
	}
	root := tree.inner(tree.root)
	if !root.full() || tree.Height() != 2 {
		t.Fatalf("unexpected setup: height=%d root=%v", tree.Height(), root.keys[:root.n])
	}
	tree.Insert(7, "v")
	mustCheck(t, tree)
	if tree.Height() != 3 {
		t.Fatalf("expected split of full root to add a level, height=%d", tree.Height())
	}
	top := tree.inner(tree.root)
	if top.n != 1 || top.keys[0] != 3 {
		t.Fatalf("expected new root separator 3, got %v", top.keys[:top.n])
	}
}
