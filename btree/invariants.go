package btree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for tests and tooling; it
// never runs on the mutation path. A violation indicates a bug in the
// insertion/deletion algorithms.
func (t *Tree[K, V]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalid)
	}
	if t.cfg.Compare == nil {
		return fmt.Errorf("%w: tree has no compare function", ErrInvalid)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvalid)
		}
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree must have size=0", ErrInvalid)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalid)
	}
	entries, height, err := t.checkNode(t.root, true, nil, nil)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalid, height, t.height)
	}
	if entries != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvalid, entries, t.size)
	}
	return nil
}

// checkNode verifies one subtree: key sortedness, occupancy bounds (root
// exempt), child arity, uniform leaf depth, and containment of all keys in
// the open interval (lower, upper) implied by ancestor separators. A nil
// bound means unbounded on that side.
func (t *Tree[K, V]) checkNode(n treeNode[K, V], isRoot bool, lower, upper *K) (entries int, height int, err error) {
	if n == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalid)
	}
	var keys []K
	switch node := n.(type) {
	case *leafNode[K, V]:
		if len(node.keys) != len(node.values) {
			return 0, 0, fmt.Errorf("%w: leaf key/value length mismatch (%d != %d)",
				ErrInvalid, len(node.keys), len(node.values))
		}
		keys = node.keys
	case *innerNode[K, V]:
		if len(node.keys) != len(node.values) {
			return 0, 0, fmt.Errorf("%w: inner key/value length mismatch (%d != %d)",
				ErrInvalid, len(node.keys), len(node.values))
		}
		if len(node.children) != len(node.keys)+1 {
			return 0, 0, fmt.Errorf("%w: inner node with %d keys has %d children",
				ErrInvalid, len(node.keys), len(node.children))
		}
		keys = node.keys
	default:
		return 0, 0, fmt.Errorf("%w: unknown node type %T", ErrInvalid, n)
	}
	if err := t.checkKeys(keys, isRoot, lower, upper); err != nil {
		return 0, 0, err
	}
	leaf, isLeaf := n.(*leafNode[K, V])
	if isLeaf {
		return len(leaf.keys), 1, nil
	}

	inner := n.(*innerNode[K, V])
	entries = len(inner.keys)
	var childHeight int
	for i, child := range inner.children {
		childLower := lower
		childUpper := upper
		if i > 0 {
			childLower = &inner.keys[i-1]
		}
		if i < len(inner.keys) {
			childUpper = &inner.keys[i]
		}
		cEntries, cHeight, cErr := t.checkNode(child, false, childLower, childUpper)
		if cErr != nil {
			return 0, 0, cErr
		}
		entries += cEntries
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalid)
		}
	}
	return entries, childHeight + 1, nil
}

func (t *Tree[K, V]) checkKeys(keys []K, isRoot bool, lower, upper *K) error {
	if !isRoot {
		if len(keys) < t.cfg.minKeys() {
			return fmt.Errorf("%w: node has %d keys, minimum is %d",
				ErrInvalid, len(keys), t.cfg.minKeys())
		}
		if len(keys) > t.cfg.maxKeys() {
			return fmt.Errorf("%w: node has %d keys, maximum is %d",
				ErrInvalid, len(keys), t.cfg.maxKeys())
		}
	} else if len(keys) == 0 {
		// an empty tree is represented by a nil root, never an empty node
		return fmt.Errorf("%w: root node without keys", ErrInvalid)
	}
	for i, key := range keys {
		if i > 0 && t.cfg.Compare(keys[i-1], key) >= 0 {
			return fmt.Errorf("%w: keys not strictly increasing at index %d", ErrInvalid, i)
		}
		if lower != nil && t.cfg.Compare(key, *lower) <= 0 {
			return fmt.Errorf("%w: key at index %d violates lower separator bound", ErrInvalid, i)
		}
		if upper != nil && t.cfg.Compare(key, *upper) >= 0 {
			return fmt.Errorf("%w: key at index %d violates upper separator bound", ErrInvalid, i)
		}
	}
	return nil
}
