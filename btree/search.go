package btree

import "slices"

// Get returns the value stored for key, if present.
//
// An exact match at an internal node's separator returns that separator's
// value without descending further. No side effects.
func (t *Tree[K, V]) Get(key K) (V, bool) {
	var zero V
	if t == nil || t.root == nil {
		return zero, false
	}
	return t.getNode(t.root, t.height, key)
}

// Contains reports whether key is present.
func (t *Tree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

func (t *Tree[K, V]) getNode(n treeNode[K, V], height int, key K) (V, bool) {
	var zero V
	assert(n != nil, "getNode called with nil node")
	assert(height > 0, "getNode called with non-positive height")
	if height == 1 {
		leaf, ok := n.(*leafNode[K, V])
		assert(ok, "getNode expected leaf at height 1")
		idx, found := t.searchKeys(leaf.keys, key)
		if !found {
			return zero, false
		}
		return leaf.values[idx], true
	}
	inner, ok := n.(*innerNode[K, V])
	assert(ok, "getNode expected internal node")
	idx, found := t.searchKeys(inner.keys, key)
	if found {
		return inner.values[idx], true
	}
	return t.getNode(inner.children[idx], height-1, key)
}

// searchKeys binary-searches sorted keys for key.
//
// On a miss, the returned index is the insertion point, which doubles as the
// child slot to descend into.
func (t *Tree[K, V]) searchKeys(keys []K, key K) (int, bool) {
	return slices.BinarySearchFunc(keys, key, t.cfg.Compare)
}
