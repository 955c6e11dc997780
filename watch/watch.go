package watch

import (
	"context"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordmap"
)

// OpKind tags the kind of mutation an Event reports.
type OpKind int

const (
	// OpSet reports an insert or overwrite.
	OpSet OpKind = iota + 1
	// OpDelete reports a removal.
	OpDelete
	// OpClear reports that all entries were discarded.
	OpClear
)

func (op OpKind) String() string {
	switch op {
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	case OpClear:
		return "clear"
	}
	return "unknown"
}

// Event describes one successful mutation.
//
// For OpSet, Replaced tells whether Key existed before and Value is the new
// value. For OpDelete, Value is the removed value. For OpClear, Key and
// Value are zero.
type Event[K, V any] struct {
	Op       OpKind
	Key      K
	Value    V
	Replaced bool
}

// Map decorates an ordmap.Map with mutation broadcasting.
type Map[K, V any] struct {
	inner *ordmap.Map[K, V]
	cast  *caster.Caster // broadcasts events to all subscribers
}

// Wrap creates a broadcasting decorator around m.
func Wrap[K, V any](m *ordmap.Map[K, V]) (*Map[K, V], error) {
	if m == nil {
		return nil, ordmap.ErrIllegalArguments
	}
	return &Map[K, V]{
		inner: m,
		cast:  caster.New(nil),
	}, nil
}

// Inner returns the decorated map for read access.
func (w *Map[K, V]) Inner() *ordmap.Map[K, V] {
	return w.inner
}

// Close stops broadcasting and closes all subscriber channels. The
// decorated map stays usable.
func (w *Map[K, V]) Close() {
	w.cast.Close()
}

// Subscribe registers a new subscriber and returns its event channel.
//
// The channel is closed when ctx is cancelled or the Map is closed. A nil
// ctx subscribes for the lifetime of the Map. Delivery applies
// back-pressure: a subscriber that stops draining its channel eventually
// stalls the broadcast loop, and with it all mutations on the Map.
func (w *Map[K, V]) Subscribe(ctx context.Context, capacity uint) (<-chan Event[K, V], bool) {
	src, ok := w.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	var done <-chan struct{}
	if ctx != nil {
		done = ctx.Done()
	}
	out := make(chan Event[K, V], capacity)
	go func() {
		defer close(out)
		for {
			select {
			case msg, open := <-src:
				if !open {
					return
				}
				event, isEvent := msg.(Event[K, V])
				if !isEvent {
					tracer().Errorf("watch: dropping broadcast of unexpected type %T", msg)
					continue
				}
				out <- event
			case <-done:
				// unsubscribe eagerly; the broadcaster only reaps
				// cancelled subscribers on its next publish
				w.cast.Unsub(src)
				for range src {
				}
				return
			}
		}
	}()
	return out, true
}

// Set stores value under key and broadcasts an OpSet event.
func (w *Map[K, V]) Set(key K, value V) (prev V, replaced bool) {
	prev, replaced = w.inner.Set(key, value)
	w.publish(Event[K, V]{Op: OpSet, Key: key, Value: value, Replaced: replaced})
	return prev, replaced
}

// Delete removes key; a successful removal broadcasts an OpDelete event.
func (w *Map[K, V]) Delete(key K) (V, bool) {
	prev, removed := w.inner.Delete(key)
	if removed {
		w.publish(Event[K, V]{Op: OpDelete, Key: key, Value: prev})
	}
	return prev, removed
}

// Clear discards all entries and broadcasts an OpClear event.
func (w *Map[K, V]) Clear() {
	w.inner.Clear()
	w.publish(Event[K, V]{Op: OpClear})
}

// Get returns the value stored under key, if present.
func (w *Map[K, V]) Get(key K) (V, bool) {
	return w.inner.Get(key)
}

// Len returns the number of entries.
func (w *Map[K, V]) Len() int {
	return w.inner.Len()
}

func (w *Map[K, V]) publish(event Event[K, V]) {
	if !w.cast.Pub(event) {
		tracer().Debugf("watch: event %v published after close", event.Op)
	}
}
