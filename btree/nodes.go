package btree

// treeNode is the tagged leaf/internal sum type.
//
// Both variants hold parallel keys/values slices in strictly ascending key
// order. Internal nodes additionally own len(keys)+1 children. Ancestry is
// never stored in the node; it is implicit in the descent recursion.
type treeNode[K, V any] interface {
	isLeaf() bool
	keyCount() int
}

type leafNode[K, V any] struct {
	keys   []K
	values []V
}

func (l *leafNode[K, V]) isLeaf() bool  { return true }
func (l *leafNode[K, V]) keyCount() int { return len(l.keys) }

type innerNode[K, V any] struct {
	keys     []K
	values   []V
	children []treeNode[K, V]
}

func (n *innerNode[K, V]) isLeaf() bool  { return false }
func (n *innerNode[K, V]) keyCount() int { return len(n.keys) }
