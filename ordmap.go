package ordmap

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordmap/btree"
)

// DefaultOrder is a reasonable tree order for in-memory maps. It trades
// node scan cost against tree depth; clients with unusual key sizes may
// prefer other values.
const DefaultOrder = 32

// Map is an ordered key/value map.
//
// Entries are kept sorted by key according to the comparison function given
// at construction. The zero Map is not usable; create maps with New or
// NewOrdered.
//
// Performance characteristics:
//
//	Operation     |  Map            |  built-in map
//	--------------+-----------------+--------------
//	Get           |  O(log n)       |  O(1)
//	Set           |  O(log n)       |  O(1)
//	Delete        |  O(log n)       |  O(1)
//	Ordered scan  |  O(n)           |  O(n log n)
//	Range scan    |  O(log n + k)   |  O(n)
//
// For use cases needing ordered traversal or neighborhood queries, Map has
// stable performance and space characteristics.
type Map[K, V any] struct {
	tree *btree.Tree[K, V]
}

// New creates an empty map with the given tree order and key comparison.
//
// It fails with btree.ErrInvalidOrder for order < 3 and with
// btree.ErrInvalidConfig for a nil comparison.
func New[K, V any](order int, compare func(a, b K) int) (*Map[K, V], error) {
	tree, err := btree.New(btree.Config[K, V]{
		Order:   order,
		Compare: compare,
	})
	if err != nil {
		return nil, err
	}
	return &Map[K, V]{tree: tree}, nil
}

// NewOrdered creates an empty map for naturally ordered key types.
func NewOrdered[K cmp.Ordered, V any](order int) (*Map[K, V], error) {
	return New[K, V](order, cmp.Compare)
}

// Set stores value under key, returning the previously stored value if the
// key was already present.
func (m *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	assert(m != nil && m.tree != nil, "Set called on uninitialized map")
	return m.tree.Insert(key, value)
}

// Get returns the value stored under key, if present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.tree.Get(key)
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m != nil && m.tree.Contains(key)
}

// Delete removes key and returns the value that was stored under it.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.tree.Delete(key)
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// IsEmpty reports whether the map has no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m == nil || m.tree.IsEmpty()
}

// Height returns the height of the underlying tree (0 for an empty map).
func (m *Map[K, V]) Height() int {
	if m == nil {
		return 0
	}
	return m.tree.Height()
}

// Clear discards all entries.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	m.tree.Clear()
}

// Min returns the smallest entry, if the map is non-empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.tree.Min()
}

// Max returns the largest entry, if the map is non-empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return m.tree.Max()
}

// All returns a lazy ascending sequence over all entries.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.tree.All()
}

// Range returns a lazy ascending sequence of entries with
// start <= key <= end (inclusive bounds, possibly empty).
func (m *Map[K, V]) Range(start, end K) iter.Seq2[K, V] {
	if m == nil {
		return func(func(K, V) bool) {}
	}
	return m.tree.Range(start, end)
}

// ForEach walks all entries in ascending key order, stopping early when the
// callback returns false.
func (m *Map[K, V]) ForEach(fn func(key K, value V) bool) {
	if m == nil {
		return
	}
	m.tree.ForEach(fn)
}

// Keys returns a sorted snapshot of all keys.
func (m *Map[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	keys := make([]K, 0, m.tree.Len())
	m.tree.ForEach(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns a snapshot of all values in ascending key order.
func (m *Map[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, m.tree.Len())
	m.tree.ForEach(func(_ K, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Validate checks all structural invariants of the underlying tree.
//
// In a correct implementation it cannot fail after any sequence of Set and
// Delete calls; it is intended for tests and tooling.
func (m *Map[K, V]) Validate() error {
	if m == nil || m.tree == nil {
		return ErrIllegalArguments
	}
	return m.tree.Check()
}

// WalkStructure exposes the underlying tree's structural walk for
// visualization tooling (see Map2Dot and package display).
func (m *Map[K, V]) WalkStructure(fn func(info btree.NodeInfo[K]) bool) {
	if m == nil {
		return
	}
	m.tree.WalkStructure(fn)
}

// String returns a short diagnostic description of the map.
func (m *Map[K, V]) String() string {
	if m == nil {
		return "Map(nil)"
	}
	return fmt.Sprintf("Map(len=%d, height=%d, order=%d)",
		m.tree.Len(), m.tree.Height(), m.tree.Order())
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
