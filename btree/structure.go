package btree

// NodeInfo describes one node during a structural walk. It is a snapshot
// for debugging and visualization; Keys is a copy and mutating it does not
// affect the tree.
type NodeInfo[K any] struct {
	// ID is a walk-local node identifier, starting at 1 for the root.
	ID int
	// Parent is the ID of the parent node, 0 for the root.
	Parent int
	// Level is the node's depth, 1 for the root.
	Level int
	// Leaf tags the node variant.
	Leaf bool
	// Keys are the node's keys in ascending order.
	Keys []K
}

// WalkStructure visits all nodes in breadth-first order.
//
// The walk stops early if the callback returns false. It is meant for
// debugging and visualization tooling, never for the operation paths.
func (t *Tree[K, V]) WalkStructure(fn func(info NodeInfo[K]) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	type queued struct {
		node   treeNode[K, V]
		parent int
		level  int
	}
	queue := []queued{{node: t.root, parent: 0, level: 1}}
	nextID := 1
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		id := nextID
		nextID++
		info := NodeInfo[K]{
			ID:     id,
			Parent: q.parent,
			Level:  q.level,
			Leaf:   q.node.isLeaf(),
		}
		switch node := q.node.(type) {
		case *leafNode[K, V]:
			info.Keys = append([]K(nil), node.keys...)
		case *innerNode[K, V]:
			info.Keys = append([]K(nil), node.keys...)
			for _, child := range node.children {
				queue = append(queue, queued{node: child, parent: id, level: q.level + 1})
			}
		}
		if !fn(info) {
			return
		}
	}
}
