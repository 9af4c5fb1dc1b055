/*
Package console renders binary trees for output on a terminal.

Trees are printed as indented outlines, one node per line, with leaf nodes,
inner nodes and connecting edges in different colors. Node labels are cut to
a maximum display width, measured in fixed-width positions (‘en’s) according
to Unicode UAX#11 (East Asian Width), so that wide characters do not break the
layout.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
