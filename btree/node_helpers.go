package btree

// makeLeaf materializes a new leaf from entry slices.
//
// The slices are copied so the leaf never aliases caller storage.
func (t *Tree[K, V]) makeLeaf(keys []K, values []V) *leafNode[K, V] {
	assert(len(keys) == len(values), "makeLeaf requires parallel key/value slices")
	return &leafNode[K, V]{
		keys:   append([]K(nil), keys...),
		values: append([]V(nil), values...),
	}
}

// makeInternal materializes a new internal node from entry and child slices.
func (t *Tree[K, V]) makeInternal(keys []K, values []V, children []treeNode[K, V]) *innerNode[K, V] {
	assert(len(keys) == len(values), "makeInternal requires parallel key/value slices")
	assert(len(children) == len(keys)+1, "makeInternal requires len(keys)+1 children")
	return &innerNode[K, V]{
		keys:     append([]K(nil), keys...),
		values:   append([]V(nil), values...),
		children: append([]treeNode[K, V](nil), children...),
	}
}
