/*
Package watch provides mutation-event broadcasting for ordered maps.

A watch.Map decorates an ordmap.Map and publishes an Event to all
subscribers after each successful mutation. Subscriptions are delivered
through a broadcast channel fan-out and are cancelled via their context.

Broadcasting does not make the underlying map safe for concurrent
mutation; the single-writer discipline remains the caller's concern. The
fan-out itself is goroutine safe, so subscribers may live on any
goroutine.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package watch

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
