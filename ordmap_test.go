package ordmap

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/ordmap/btree"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewMap(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m, err := NewOrdered[int, string](DefaultOrder)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !m.IsEmpty() || m.Len() != 0 {
		t.Errorf("expected new map to be empty, is not")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("expected empty map to validate, got %v", err)
	}
}

func TestNewMapRejectsBadOrder(t *testing.T) {
	_, err := NewOrdered[int, string](2)
	if !errors.Is(err, btree.ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder for order 2, got %v", err)
	}
	_, err = New[int, string](5, nil)
	if !errors.Is(err, btree.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil compare, got %v", err)
	}
}

func TestMapSetGetDelete(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m, err := NewOrdered[string, int](5)
	if err != nil {
		t.Fatal(err.Error())
	}
	words := []string{"world", "hello", "cord", "tree", "map", "btree"}
	for i, w := range words {
		if _, replaced := m.Set(w, i); replaced {
			t.Errorf("fresh key %q reported as replaced", w)
		}
	}
	if m.Len() != len(words) {
		t.Errorf("expected %d entries, got %d", len(words), m.Len())
	}
	if v, ok := m.Get("hello"); !ok || v != 1 {
		t.Errorf("Get(hello) = %d, %v", v, ok)
	}
	if v, ok := m.Delete("cord"); !ok || v != 2 {
		t.Errorf("Delete(cord) = %d, %v", v, ok)
	}
	if m.Contains("cord") {
		t.Errorf("deleted key still present")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("validation failed: %v", err)
	}
}

func TestMapKeysSorted(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, _ := NewOrdered[string, int](4)
	for _, w := range []string{"pear", "apple", "quince", "fig", "olive"} {
		m.Set(w, 0)
	}
	keys := m.Keys()
	want := []string{"apple", "fig", "olive", "pear", "quince"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
}

func TestMapRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, _ := NewOrdered[int, int](5)
	for i := range 100 {
		m.Set(i, i*i)
	}
	var got []int
	for k, v := range m.Range(10, 15) {
		if v != k*k {
			t.Fatalf("Range yielded (%d, %d)", k, v)
		}
		got = append(got, k)
	}
	if len(got) != 6 || got[0] != 10 || got[5] != 15 {
		t.Errorf("Range(10,15) = %v", got)
	}
}

func TestMapMinMax(t *testing.T) {
	m, _ := NewOrdered[int, string](4)
	for _, k := range []int{8, 1, 99, 40} {
		m.Set(k, "v")
	}
	if k, _, ok := m.Min(); !ok || k != 1 {
		t.Errorf("Min = %d, %v", k, ok)
	}
	if k, _, ok := m.Max(); !ok || k != 99 {
		t.Errorf("Max = %d, %v", k, ok)
	}
}

func TestMapString(t *testing.T) {
	m, _ := NewOrdered[int, int](5)
	for i := range 10 {
		m.Set(i, i)
	}
	s := m.String()
	if !strings.Contains(s, "len=10") {
		t.Errorf("String() = %q", s)
	}
}

func TestMap2Dot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	m, _ := NewOrdered[int, string](5)
	for _, k := range []int{10, 20, 30, 40, 50} {
		m.Set(k, "v")
	}
	var sb strings.Builder
	Map2Dot(m, &sb)
	dot := sb.String()
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("DOT output has unexpected prefix: %q", dot)
	}
	if !strings.Contains(dot, "\"1\" -> \"2\"") {
		t.Errorf("DOT output misses root edges:\n%s", dot)
	}
	if !strings.Contains(dot, "label=\"30\"") {
		t.Errorf("DOT output misses root label:\n%s", dot)
	}
}
