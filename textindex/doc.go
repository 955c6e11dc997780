/*
Package textindex builds ordered word indexes over texts.

An Index maps every word of a text to its occurrence count and byte
positions, sorted lexicographically. Word boundaries follow Unicode Annex
#29 segmentation; input may be plain text or HTML (indexing the textual
content of all elements).

The package mainly serves as a worked example of driving the ordmap
container with a realistic workload, and as the data source for the
tutorial tooling around it.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textindex

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
