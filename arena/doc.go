/*
Package arena implements binary trees as a table of nodes addressed by index.

Package bintree links a child to its parent by a weak pointer. Package arena
shows the alternative: all nodes of a set of trees live in one Arena, and
children as well as parents are referenced by their ID. There are no pointers
between nodes at all, hence no cycles of ownership can arise. The price is
explicit lifetime management: detached subtrees have to be released by
calling Free.

The operations mirror those of bintree.Node (Leaf, Fork, ReplaceLeft, …),
taking the arena as receiver and the node's ID as first argument.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
