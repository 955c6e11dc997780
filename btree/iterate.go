package btree

import "iter"

// ForEach walks all entries in ascending key order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[K, V]) ForEach(fn func(key K, value V) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	t.forEachNode(t.root, t.height, fn)
}

func (t *Tree[K, V]) forEachNode(n treeNode[K, V], height int, fn func(key K, value V) bool) bool {
	assert(n != nil, "forEachNode called with nil node")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "forEachNode expected leaf at height 1")
		for i, key := range leaf.keys {
			if !fn(key, leaf.values[i]) {
				return false
			}
		}
		return true
	}
	inner, ok := n.(*innerNode[K, V])
	assert(ok, "forEachNode expected internal node")
	for i, key := range inner.keys {
		if !t.forEachNode(inner.children[i], height-1, fn) {
			return false
		}
		if !fn(key, inner.values[i]) {
			return false
		}
	}
	return t.forEachNode(inner.children[len(inner.keys)], height-1, fn)
}

// All returns a lazy ascending sequence over all entries.
//
// The sequence is restartable: each range-over re-runs the traversal against
// the tree's state at that time.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.ForEach(yield)
	}
}

// Range returns a lazy ascending sequence of the entries with
// start <= key <= end. The sequence is empty when start sorts after end or
// the tree is empty.
func (t *Tree[K, V]) Range(start, end K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t == nil || t.root == nil {
			return
		}
		if t.cfg.Compare(start, end) > 0 {
			return
		}
		t.rangeNode(t.root, t.height, start, end, yield)
	}
}

// rangeNode yields in-range entries of subtree n in order; it returns false
// as soon as a key exceeds end or the consumer stops.
func (t *Tree[K, V]) rangeNode(n treeNode[K, V], height int, start, end K, yield func(K, V) bool) bool {
	assert(n != nil, "rangeNode called with nil node")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "rangeNode expected leaf at height 1")
		from, _ := t.searchKeys(leaf.keys, start)
		for i := from; i < len(leaf.keys); i++ {
			if t.cfg.Compare(leaf.keys[i], end) > 0 {
				return false
			}
			if !yield(leaf.keys[i], leaf.values[i]) {
				return false
			}
		}
		return true
	}
	inner, ok := n.(*innerNode[K, V])
	assert(ok, "rangeNode expected internal node")
	from, _ := t.searchKeys(inner.keys, start)
	for i := from; i < len(inner.keys); i++ {
		if !t.rangeNode(inner.children[i], height-1, start, end, yield) {
			return false
		}
		if t.cfg.Compare(inner.keys[i], end) > 0 {
			return false
		}
		if !yield(inner.keys[i], inner.values[i]) {
			return false
		}
	}
	return t.rangeNode(inner.children[len(inner.keys)], height-1, start, end, yield)
}
