package btree

import "fmt"

// MinOrder is the smallest admissible tree order.
//
// An order of 3 yields nodes with 1..2 keys, the smallest shape for which
// split and merge are well defined.
const MinOrder = 3

// Config configures an ordered-map B-tree.
type Config[K, V any] struct {
	// Order is the maximum number of children of an internal node.
	// Nodes hold at most Order-1 keys.
	Order int
	// Compare imposes a strict total order on keys. It returns a negative
	// number when a sorts before b, zero when they are equal, and a
	// positive number when a sorts after b.
	Compare func(a, b K) int
}

func (cfg Config[K, V]) normalized() Config[K, V] {
	return cfg
}

func (cfg Config[K, V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Compare == nil {
		return fmt.Errorf("%w: compare function is required", ErrInvalidConfig)
	}
	if cfg.Order < MinOrder {
		return fmt.Errorf("%w: order %d is below minimum %d", ErrInvalidOrder, cfg.Order, MinOrder)
	}
	return nil
}

// maxKeys is the per-node key capacity; reaching Order keys is overflow.
func (cfg Config[K, V]) maxKeys() int {
	return cfg.Order - 1
}

// minKeys is the occupancy floor ceil(Order/2)-1 for non-root nodes.
func (cfg Config[K, V]) minKeys() int {
	return (cfg.Order+1)/2 - 1
}
