package btree

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	if len(values) == 0 {
		return append([]T(nil), src...)
	}
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

// removeAt removes the single element at idx from a slice.
func removeAt[T any](src []T, idx int) []T {
	return removeRange(src, idx, idx+1)
}

func (t *Tree[K, V]) insertLeafEntryAt(leaf *leafNode[K, V], idx int, key K, value V) {
	assert(leaf != nil, "insertLeafEntryAt called with nil leaf")
	leaf.keys = insertAt(leaf.keys, idx, key)
	leaf.values = insertAt(leaf.values, idx, value)
}

func (t *Tree[K, V]) removeLeafEntryAt(leaf *leafNode[K, V], idx int) {
	assert(leaf != nil, "removeLeafEntryAt called with nil leaf")
	leaf.keys = removeAt(leaf.keys, idx)
	leaf.values = removeAt(leaf.values, idx)
}

// insertInnerEntryAt inserts a separator entry without touching children.
//
// Callers pairing the entry with a new child must insert that child
// separately at idx+1.
func (t *Tree[K, V]) insertInnerEntryAt(inner *innerNode[K, V], idx int, key K, value V) {
	assert(inner != nil, "insertInnerEntryAt called with nil inner node")
	inner.keys = insertAt(inner.keys, idx, key)
	inner.values = insertAt(inner.values, idx, value)
}

func (t *Tree[K, V]) removeInnerEntryAt(inner *innerNode[K, V], idx int) {
	assert(inner != nil, "removeInnerEntryAt called with nil inner node")
	inner.keys = removeAt(inner.keys, idx)
	inner.values = removeAt(inner.values, idx)
}

func (t *Tree[K, V]) insertChildAt(inner *innerNode[K, V], idx int, child treeNode[K, V]) {
	assert(inner != nil, "insertChildAt called with nil inner node")
	assert(child != nil, "insertChildAt called with nil child")
	inner.children = insertAt(inner.children, idx, child)
}

func (t *Tree[K, V]) removeChildAt(inner *innerNode[K, V], idx int) {
	assert(inner != nil, "removeChildAt called with nil inner node")
	assert(idx >= 0 && idx < len(inner.children), "removeChildAt index out of range")
	inner.children = removeAt(inner.children, idx)
}
