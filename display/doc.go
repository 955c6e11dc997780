/*
Package display renders the tree structure of ordered maps to a console.

The renderer prints one line per tree level, with every node's keys in
brackets and colors distinguishing internal nodes from leaves. It is a
debugging aid; output format is not stable.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ordmap'
func tracer() tracing.Trace {
	return tracing.Select("ordmap")
}
