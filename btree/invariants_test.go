package btree

import (
	"errors"
	"testing"
)

func TestCheckDetectsUnsortedKeys(t *testing.T) {
	tree := newIntTree(t, 5)
	tree.Insert(1, "a")
	tree.Insert(2, "b")
	leaf := tree.root.(*leafNode[int, string])
	leaf.keys[0], leaf.keys[1] = leaf.keys[1], leaf.keys[0]
	if err := tree.Check(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for unsorted keys, got %v", err)
	}
}

func TestCheckDetectsSizeMismatch(t *testing.T) {
	tree := newIntTree(t, 5)
	tree.Insert(1, "a")
	tree.size = 3
	if err := tree.Check(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for size mismatch, got %v", err)
	}
}

func TestCheckDetectsHeightMismatch(t *testing.T) {
	tree := newIntTree(t, 5)
	tree.Insert(1, "a")
	tree.height = 2
	if err := tree.Check(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for height mismatch, got %v", err)
	}
}

func TestCheckDetectsOccupancyViolation(t *testing.T) {
	tree := newIntTree(t, 5)
	for _, key := range []int{10, 20, 30, 40, 50} {
		tree.Insert(key, "v")
	}
	// strip the left leaf below the occupancy floor behind the tree's back
	root := tree.root.(*innerNode[int, string])
	left := root.children[0].(*leafNode[int, string])
	left.keys = left.keys[:1]
	left.values = left.values[:1]
	tree.size--
	if err := tree.Check(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for occupancy violation, got %v", err)
	}
}

func TestCheckDetectsSeparatorBoundViolation(t *testing.T) {
	tree := newIntTree(t, 5)
	for _, key := range []int{10, 20, 30, 40, 50} {
		tree.Insert(key, "v")
	}
	// move a right-subtree key below the separator
	root := tree.root.(*innerNode[int, string])
	right := root.children[1].(*leafNode[int, string])
	right.keys[0] = 25 // separator is 30; 25 belongs left of it
	if err := tree.Check(); err == nil {
		// 25 < 40 keeps the node sorted, so only the bound check can fire
		t.Fatalf("expected ErrInvalid for separator bound violation")
	} else if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
