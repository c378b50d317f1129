package bptree

import (
	"errors"
	"strings"
	"testing"
)

func makeCheckedTree(t *testing.T) *Tree[int, string] {
	t.Helper()
	tree := makeIntTree(t, 3)
	for k := 1; k <= 30; k++ {
		tree.Insert(k, "v")
	}
	mustCheck(t, tree)
	return tree
}

func expectInvariantError(t *testing.T, tree *Tree[int, string], fragment string) {
	t.Helper()
	err := tree.Check()
	if !errors.Is(err, ErrInvariant) {
		t.Fatalf("expected invariant error, got %v", err)
	}
	if !strings.Contains(err.Error(), fragment) {
		t.Fatalf("expected error mentioning %q, got %v", fragment, err)
	}
}

func TestCheckDetectsStaleParent(t *testing.T) {
	tree := makeCheckedTree(t)
	root := tree.inner(tree.root)
	tree.setParent(root.children[0], root.children[1])
	expectInvariantError(t, tree, "parent")
}

func TestCheckDetectsBrokenLeafChain(t *testing.T) {
	tree := makeCheckedTree(t)
	tree.leaf(tree.head).next = noNode
	expectInvariantError(t, tree, "leaf chain")
}

func TestCheckDetectsUnsortedLeaf(t *testing.T) {
	tree := makeCheckedTree(t)
	leaf := tree.leaf(tree.findLeaf(tree.root, 30))
	if leaf.n < 2 {
		t.Fatalf("unexpected setup: rightmost leaf has %d keys", leaf.n)
	}
	leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0]
	expectInvariantError(t, tree, "ascending")
}

func TestCheckDetectsWrongSeparator(t *testing.T) {
	tree := makeIntTree(t, 3)
	for k := 2; k <= 60; k += 2 {
		tree.Insert(k, "v")
	}
	mustCheck(t, tree)
	// odd separator still divides the children, but is no key of the right one
	root := tree.inner(tree.root)
	root.keys[0]--
	expectInvariantError(t, tree, "separator")
}

func TestCheckDetectsCountDrift(t *testing.T) {
	tree := makeCheckedTree(t)
	tree.count++
	expectInvariantError(t, tree, "key count")
}

func TestCheckDetectsOrphanNode(t *testing.T) {
	tree := makeCheckedTree(t)
	tree.makeLeaf(noNode)
	expectInvariantError(t, tree, "unreachable")
}
