package watch

import (
	"context"
	"testing"
	"time"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newWatched(t *testing.T) *Map[string, int] {
	t.Helper()
	m, err := ordmap.NewOrdered[string, int](ordmap.DefaultOrder)
	if err != nil {
		t.Fatalf("NewOrdered failed: %v", err)
	}
	w, err := Wrap(m)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	return w
}

func receive[K, V any](t *testing.T, ch <-chan Event[K, V]) Event[K, V] {
	t.Helper()
	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatalf("event channel closed unexpectedly")
		}
		return event
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for event")
	}
	panic("unreachable")
}

func TestWrapRejectsNilMap(t *testing.T) {
	if _, err := Wrap[string, int](nil); err == nil {
		t.Fatalf("expected error for nil map")
	}
}

func TestSubscriberReceivesEvents(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	w := newWatched(t)
	defer w.Close()
	ch, ok := w.Subscribe(context.Background(), 8)
	if !ok {
		t.Fatalf("Subscribe failed")
	}

	w.Set("a", 1)
	event := receive(t, ch)
	if event.Op != OpSet || event.Key != "a" || event.Value != 1 || event.Replaced {
		t.Fatalf("unexpected set event: %+v", event)
	}

	w.Set("a", 2)
	event = receive(t, ch)
	if event.Op != OpSet || !event.Replaced {
		t.Fatalf("expected replacement event, got %+v", event)
	}

	w.Delete("a")
	event = receive(t, ch)
	if event.Op != OpDelete || event.Key != "a" || event.Value != 2 {
		t.Fatalf("unexpected delete event: %+v", event)
	}

	w.Clear()
	event = receive(t, ch)
	if event.Op != OpClear {
		t.Fatalf("unexpected clear event: %+v", event)
	}
}

func TestDeleteMissDoesNotBroadcast(t *testing.T) {
	w := newWatched(t)
	defer w.Close()
	ch, _ := w.Subscribe(context.Background(), 8)

	w.Delete("absent")
	w.Set("b", 7)
	event := receive(t, ch)
	if event.Op != OpSet || event.Key != "b" {
		t.Fatalf("expected only the set event, got %+v", event)
	}
}

// The channel must close on cancellation alone; no later mutation may be
// needed to trigger it.
func TestSubscriptionEndsOnCancel(t *testing.T) {
	w := newWatched(t)
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	ch, _ := w.Subscribe(ctx, 8)
	cancel()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel close, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}
}

func TestCancelLeavesOtherSubscribersIntact(t *testing.T) {
	w := newWatched(t)
	defer w.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancelled, _ := w.Subscribe(ctx, 8)
	ch, _ := w.Subscribe(context.Background(), 8)
	cancel()
	select {
	case _, ok := <-cancelled:
		if ok {
			t.Fatalf("expected channel close, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}

	w.Set("c", 3)
	event := receive(t, ch)
	if event.Op != OpSet || event.Key != "c" {
		t.Fatalf("surviving subscriber got %+v", event)
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	w := newWatched(t)
	ch, _ := w.Subscribe(context.Background(), 8)
	w.Close()
	select {
	case _, ok := <-ch:
		if ok {
			t.Fatalf("expected channel close, got event")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timeout waiting for channel close")
	}
}

func TestReadsPassThrough(t *testing.T) {
	w := newWatched(t)
	defer w.Close()
	w.Set("x", 10)
	if v, ok := w.Get("x"); !ok || v != 10 {
		t.Fatalf("Get(x) = %d, %v", v, ok)
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d", w.Len())
	}
	if w.Inner().Len() != 1 {
		t.Fatalf("Inner().Len = %d", w.Inner().Len())
	}
}
