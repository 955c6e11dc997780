package btree

// Min returns the smallest entry, if the tree is non-empty.
func (t *Tree[K, V]) Min() (K, V, bool) {
	var zeroK K
	var zeroV V
	if t == nil || t.root == nil {
		return zeroK, zeroV, false
	}
	k, v := t.minEntry(t.root, t.height)
	return k, v, true
}

// Max returns the largest entry, if the tree is non-empty.
func (t *Tree[K, V]) Max() (K, V, bool) {
	var zeroK K
	var zeroV V
	if t == nil || t.root == nil {
		return zeroK, zeroV, false
	}
	k, v := t.maxEntry(t.root, t.height)
	return k, v, true
}

// minEntry follows the left spine to the smallest entry of subtree n.
func (t *Tree[K, V]) minEntry(n treeNode[K, V], height int) (K, V) {
	assert(n != nil, "minEntry called with nil node")
	assert(height > 0, "minEntry called with non-positive height")
	for height > 1 {
		inner, ok := n.(*innerNode[K, V])
		assert(ok, "minEntry expected internal node")
		n = inner.children[0]
		height--
	}
	leaf, ok := n.(*leafNode[K, V])
	assert(ok, "minEntry expected leaf at height 1")
	assert(len(leaf.keys) > 0, "minEntry encountered empty leaf")
	return leaf.keys[0], leaf.values[0]
}

// maxEntry follows the right spine to the largest entry of subtree n.
//
// Deletion uses this to locate in-order predecessors of inner separators.
func (t *Tree[K, V]) maxEntry(n treeNode[K, V], height int) (K, V) {
	assert(n != nil, "maxEntry called with nil node")
	assert(height > 0, "maxEntry called with non-positive height")
	for height > 1 {
		inner, ok := n.(*innerNode[K, V])
		assert(ok, "maxEntry expected internal node")
		n = inner.children[len(inner.children)-1]
		height--
	}
	leaf, ok := n.(*leafNode[K, V])
	assert(ok, "maxEntry expected leaf at height 1")
	assert(len(leaf.keys) > 0, "maxEntry encountered empty leaf")
	last := len(leaf.keys) - 1
	return leaf.keys[last], leaf.values[last]
}
