/*
Package htmltree represents HTML documents as binary trees.

HTML nodes may have any number of children. The classic first-child/next-sibling
encoding turns such a tree into a binary one: the left child of a binary node
stands for the first child of the HTML node, the right child for its next
sibling.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package htmltree

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

var (
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("htmltree: illegal arguments")
	// ErrEmptyFragment is flagged if an HTML fragment contains no nodes.
	ErrEmptyFragment = errors.New("htmltree: empty fragment")
)
