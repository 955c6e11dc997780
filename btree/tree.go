package btree

import "fmt"

// Tree is an in-memory ordered map shaped as a classic B-tree.
//
// K is the key type, ordered by Config.Compare; V is an opaque value type.
type Tree[K, V any] struct {
	cfg    Config[K, V]
	root   treeNode[K, V]
	height int // 0 means empty tree
	size   int // number of stored keys
}

// New creates an empty tree with validated configuration.
func New[K, V any](cfg Config[K, V]) (*Tree[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Tree[K, V]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[K, V]) Config() Config[K, V] {
	return t.cfg
}

// Order returns the configured maximum fanout.
func (t *Tree[K, V]) Order() int {
	return t.cfg.Order
}

// IsEmpty reports whether the tree has no entries.
func (t *Tree[K, V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of stored keys.
func (t *Tree[K, V]) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[K, V]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Clear discards all entries.
func (t *Tree[K, V]) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.height = 0
	t.size = 0
}

// promotion carries a split result upward: the median entry and the new
// right sibling that follows it.
type promotion[K, V any] struct {
	key   K
	value V
	right treeNode[K, V]
}

// Insert stores value under key and returns the previously stored value, if
// any. The structure only changes when the key is new; all cascading splits
// complete within the call.
func (t *Tree[K, V]) Insert(key K, value V) (prev V, replaced bool) {
	var zero V
	if t == nil {
		return zero, false
	}
	if t.root == nil {
		t.root = t.makeLeaf([]K{key}, []V{value})
		t.height = 1
		t.size = 1
		return zero, false
	}
	prev, replaced, promo := t.insertRecursive(t.root, t.height, key, value)
	if promo != nil {
		t.root = t.makeInternal(
			[]K{promo.key},
			[]V{promo.value},
			[]treeNode[K, V]{t.root, promo.right},
		)
		t.height++
	}
	if !replaced {
		t.size++
	}
	return prev, replaced
}

// insertRecursive inserts one entry into subtree n and propagates split
// results. The returned promotion is non-nil only when n split.
func (t *Tree[K, V]) insertRecursive(n treeNode[K, V], height int, key K, value V) (prev V, replaced bool, promo *promotion[K, V]) {
	var zero V
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "insertRecursive expected leaf at height 1")
		idx, found := t.searchKeys(leaf.keys, key)
		if found {
			prev = leaf.values[idx]
			leaf.values[idx] = value
			return prev, true, nil
		}
		t.insertLeafEntryAt(leaf, idx, key, value)
		if len(leaf.keys) >= t.cfg.Order {
			return zero, false, t.splitLeaf(leaf)
		}
		return zero, false, nil
	}

	inner, ok := n.(*innerNode[K, V])
	assert(ok, "insertRecursive expected internal node")
	idx, found := t.searchKeys(inner.keys, key)
	if found {
		prev = inner.values[idx]
		inner.values[idx] = value
		return prev, true, nil
	}
	prev, replaced, childPromo := t.insertRecursive(inner.children[idx], height-1, key, value)
	if childPromo != nil {
		t.insertInnerEntryAt(inner, idx, childPromo.key, childPromo.value)
		t.insertChildAt(inner, idx+1, childPromo.right)
		if len(inner.keys) >= t.cfg.Order {
			return prev, replaced, t.splitInner(inner)
		}
	}
	return prev, replaced, nil
}

// splitLeaf splits an overflowing leaf at the median and returns the
// promotion for the parent. The receiver keeps the left half.
func (t *Tree[K, V]) splitLeaf(leaf *leafNode[K, V]) *promotion[K, V] {
	assert(leaf != nil, "splitLeaf called with nil leaf")
	assert(len(leaf.keys) >= t.cfg.Order, "splitLeaf called without overflow")
	median := len(leaf.keys) / 2
	promo := &promotion[K, V]{
		key:   leaf.keys[median],
		value: leaf.values[median],
		right: t.makeLeaf(leaf.keys[median+1:], leaf.values[median+1:]),
	}
	leaf.keys = removeRange(leaf.keys, median, len(leaf.keys))
	leaf.values = removeRange(leaf.values, median, len(leaf.values))
	return promo
}

// splitInner splits an overflowing internal node at the median.
func (t *Tree[K, V]) splitInner(inner *innerNode[K, V]) *promotion[K, V] {
	assert(inner != nil, "splitInner called with nil inner node")
	assert(len(inner.keys) >= t.cfg.Order, "splitInner called without overflow")
	median := len(inner.keys) / 2
	promo := &promotion[K, V]{
		key:   inner.keys[median],
		value: inner.values[median],
		right: t.makeInternal(
			inner.keys[median+1:],
			inner.values[median+1:],
			inner.children[median+1:],
		),
	}
	inner.keys = removeRange(inner.keys, median, len(inner.keys))
	inner.values = removeRange(inner.values, median, len(inner.values))
	inner.children = removeRange(inner.children, median+1, len(inner.children))
	return promo
}

// Delete removes key and returns its value, if present. All cascading
// borrow/merge repairs complete within the call.
func (t *Tree[K, V]) Delete(key K) (V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false
	}
	prev, removed := t.deleteRecursive(t.root, t.height, key)
	if removed {
		t.size--
		t.normalizeRoot()
	}
	return prev, removed
}

// deleteRecursive removes key from subtree n.
//
// A separator hit in an internal node is resolved by predecessor
// replacement: the maximum entry of the left child subtree replaces the
// separator and is deleted from that subtree in turn. Underfull children
// are repaired on unwind; the subtree root's own occupancy is the caller's
// concern.
func (t *Tree[K, V]) deleteRecursive(n treeNode[K, V], height int, key K) (V, bool) {
	var zero V
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "deleteRecursive expected leaf at height 1")
		idx, found := t.searchKeys(leaf.keys, key)
		if !found {
			return zero, false
		}
		prev := leaf.values[idx]
		t.removeLeafEntryAt(leaf, idx)
		return prev, true
	}

	inner, ok := n.(*innerNode[K, V])
	assert(ok, "deleteRecursive expected internal node")
	idx, found := t.searchKeys(inner.keys, key)
	if found {
		prev := inner.values[idx]
		predKey, predValue := t.maxEntry(inner.children[idx], height-1)
		_, removed := t.deleteRecursive(inner.children[idx], height-1, predKey)
		assert(removed, "deleteRecursive failed to remove predecessor")
		inner.keys[idx] = predKey
		inner.values[idx] = predValue
		t.rebalanceChildAfterDelete(inner, idx, height-1)
		return prev, true
	}
	prev, removed := t.deleteRecursive(inner.children[idx], height-1, key)
	if removed {
		t.rebalanceChildAfterDelete(inner, idx, height-1)
	}
	return prev, removed
}

// rebalanceChildAfterDelete repairs occupancy for the child at slot.
//
// childHeight selects leaf vs internal sibling operations.
func (t *Tree[K, V]) rebalanceChildAfterDelete(parent *innerNode[K, V], slot int, childHeight int) {
	assert(parent != nil, "rebalanceChildAfterDelete called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChildAfterDelete slot out of range")
	assert(childHeight > 0, "rebalanceChildAfterDelete childHeight must be positive")
	if parent.children[slot].keyCount() >= t.cfg.minKeys() {
		return
	}
	var resolved bool
	if childHeight == 1 {
		resolved = t.rebalanceLeafChild(parent, slot)
	} else {
		resolved = t.rebalanceInnerChild(parent, slot)
	}
	assert(resolved, "rebalanceChildAfterDelete could not repair occupancy")
}

// applyRebalancePolicy centralizes sibling operation order after delete:
// borrow-left, borrow-right, merge-left, merge-right.
func (t *Tree[K, V]) applyRebalancePolicy(
	parent *innerNode[K, V], slot int,
	borrowLeft func() bool,
	borrowRight func() bool,
	mergeLeft func() bool,
	mergeRight func() bool,
) bool {
	assert(parent != nil, "applyRebalancePolicy called with nil parent")
	assert(slot >= 0 && slot < len(parent.children), "applyRebalancePolicy slot out of range")
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	if hasLeft && borrowLeft != nil && borrowLeft() {
		return true
	}
	if hasRight && borrowRight != nil && borrowRight() {
		return true
	}
	if hasLeft && mergeLeft != nil && mergeLeft() {
		return true
	}
	if hasRight && mergeRight != nil && mergeRight() {
		return true
	}
	return false
}

func (t *Tree[K, V]) rebalanceLeafChild(parent *innerNode[K, V], slot int) bool {
	child, ok := parent.children[slot].(*leafNode[K, V])
	assert(ok, "rebalanceLeafChild expected leaf child")
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling")
			if len(left.keys) <= t.cfg.minKeys() {
				return false
			}
			// rotate the separator down and the sibling's maximum up
			t.insertLeafEntryAt(child, 0, parent.keys[slot-1], parent.values[slot-1])
			last := len(left.keys) - 1
			parent.keys[slot-1] = left.keys[last]
			parent.values[slot-1] = left.values[last]
			t.removeLeafEntryAt(left, last)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling")
			if len(right.keys) <= t.cfg.minKeys() {
				return false
			}
			t.insertLeafEntryAt(child, len(child.keys), parent.keys[slot], parent.values[slot])
			parent.keys[slot] = right.keys[0]
			parent.values[slot] = right.values[0]
			t.removeLeafEntryAt(right, 0)
			return true
		},
		func() bool {
			left, lok := parent.children[slot-1].(*leafNode[K, V])
			assert(lok, "rebalanceLeafChild expected leaf left sibling for merge")
			// pull the separator down, then concatenate
			left.keys = append(left.keys, parent.keys[slot-1])
			left.values = append(left.values, parent.values[slot-1])
			left.keys = append(left.keys, child.keys...)
			left.values = append(left.values, child.values...)
			t.removeInnerEntryAt(parent, slot-1)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*leafNode[K, V])
			assert(rok, "rebalanceLeafChild expected leaf right sibling for merge")
			child.keys = append(child.keys, parent.keys[slot])
			child.values = append(child.values, parent.values[slot])
			child.keys = append(child.keys, right.keys...)
			child.values = append(child.values, right.values...)
			t.removeInnerEntryAt(parent, slot)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

func (t *Tree[K, V]) rebalanceInnerChild(parent *innerNode[K, V], slot int) bool {
	child, ok := parent.children[slot].(*innerNode[K, V])
	assert(ok, "rebalanceInnerChild expected internal child")
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling")
			if len(left.keys) <= t.cfg.minKeys() {
				return false
			}
			t.insertInnerEntryAt(child, 0, parent.keys[slot-1], parent.values[slot-1])
			t.insertChildAt(child, 0, left.children[len(left.children)-1])
			last := len(left.keys) - 1
			parent.keys[slot-1] = left.keys[last]
			parent.values[slot-1] = left.values[last]
			t.removeInnerEntryAt(left, last)
			t.removeChildAt(left, len(left.children)-1)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling")
			if len(right.keys) <= t.cfg.minKeys() {
				return false
			}
			t.insertInnerEntryAt(child, len(child.keys), parent.keys[slot], parent.values[slot])
			t.insertChildAt(child, len(child.children), right.children[0])
			parent.keys[slot] = right.keys[0]
			parent.values[slot] = right.values[0]
			t.removeInnerEntryAt(right, 0)
			t.removeChildAt(right, 0)
			return true
		},
		func() bool {
			left, lok := parent.children[slot-1].(*innerNode[K, V])
			assert(lok, "rebalanceInnerChild expected internal left sibling for merge")
			left.keys = append(left.keys, parent.keys[slot-1])
			left.values = append(left.values, parent.values[slot-1])
			left.keys = append(left.keys, child.keys...)
			left.values = append(left.values, child.values...)
			left.children = append(left.children, child.children...)
			t.removeInnerEntryAt(parent, slot-1)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right, rok := parent.children[slot+1].(*innerNode[K, V])
			assert(rok, "rebalanceInnerChild expected internal right sibling for merge")
			child.keys = append(child.keys, parent.keys[slot])
			child.values = append(child.values, parent.values[slot])
			child.keys = append(child.keys, right.keys...)
			child.values = append(child.values, right.values...)
			child.children = append(child.children, right.children...)
			t.removeInnerEntryAt(parent, slot)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// normalizeRoot canonicalizes the root representation after structural edits.
//
// It applies the standard B-tree root rules:
//   - empty leaf root => empty tree (height 0)
//   - internal root without keys => collapse into its sole child.
func (t *Tree[K, V]) normalizeRoot() {
	if t == nil || t.root == nil {
		if t != nil {
			t.height = 0
		}
		return
	}
	for {
		switch root := t.root.(type) {
		case *leafNode[K, V]:
			if len(root.keys) == 0 {
				t.root = nil
				t.height = 0
			}
			return
		case *innerNode[K, V]:
			if len(root.keys) > 0 {
				return
			}
			assert(len(root.children) == 1, "keyless root must have exactly one child")
			t.root = root.children[0]
			t.height--
		default:
			panic(fmt.Sprintf("unknown tree node type %T", t.root))
		}
	}
}
