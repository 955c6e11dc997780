/*
Package btree implements an in-memory B-tree ordered map.

The package is the engine behind ordmap. It is a classic B-tree (not a B+
tree): separator keys in internal nodes carry values of their own, and an
exact match during descent returns without visiting a leaf.

Characteristics:
  - generic over key and value types; keys are ordered by a client-provided
    comparison function,
  - configurable order (maximum fanout), with occupancy bounds
    ceil(order/2)-1 .. order-1 keys per non-root node,
  - recursive insert with median split propagation,
  - recursive delete with predecessor replacement and borrow/merge
    rebalancing (borrow-left, borrow-right, merge-left, merge-right),
  - lazy ascending range iteration via the iter.Seq2 protocol,
  - a strict structural invariant checker (`Check`) for tests and tooling.

The tree is a self-contained value and is not safe for concurrent mutation;
callers needing concurrency must impose their own discipline.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
