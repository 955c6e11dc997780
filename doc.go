/*
Package ordmap implements an ordered key/value map backed by an in-memory
B-tree.

A map created by

	m, err := ordmap.NewOrdered[int, string](ordmap.DefaultOrder)

stores entries sorted by key and supports point lookup, upsert, delete and
ascending range scans in O(log n) node visits. Keys of arbitrary type are
supported through a client-provided comparison function:

	m, err := ordmap.New[Point, string](5, comparePoints)

The heavy lifting is done by package btree, which implements a classic
B-tree with configurable order, median splits and borrow/merge
rebalancing. Package ordmap adds the ergonomic surface, tracing and
debugging helpers; further functionality lives in sub-packages:

  - watch: broadcasting of mutation events to subscribers,
  - display: colored console rendering of a map's tree structure,
  - textindex: word indexes over plain text and HTML documents.

Maps are not safe for concurrent mutation. Callers needing concurrent
access must impose their own discipline, e.g. a single exclusive writer or
coarse external locking.

# Tracing

This package is tracing ready. Clients may use the schuko tracing
infrastructure to redirect package-internal tracing:

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package ordmap

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// MapError is an error type for the ordmap module.
type MapError string

func (e MapError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = MapError("illegal arguments")
