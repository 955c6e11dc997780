package btree

import (
	"cmp"
	"testing"
)

func BenchmarkInsertAscending(b *testing.B) {
	tree, err := New(Config[int, int]{
		Order:   32,
		Compare: cmp.Compare[int],
	})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		tree.Insert(i, i)
	}
}

func BenchmarkGet(b *testing.B) {
	tree, err := New(Config[int, int]{
		Order:   32,
		Compare: cmp.Compare[int],
	})
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	const n = 1 << 16
	for i := range n {
		tree.Insert(i, i)
	}
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		tree.Get(i & (n - 1))
	}
}
