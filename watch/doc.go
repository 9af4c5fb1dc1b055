/*
Package watch broadcasts structural edits of binary trees.

Clients who want to observe changes of a tree route its edits through a
Journal. The journal performs the edit on the node and publishes an Edit
event to every subscriber. Nodes themselves know nothing about journals, and
edits which bypass the journal go unnoticed.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// ErrClosed is flagged when subscribing to a journal which has been closed.
var ErrClosed = errors.New("watch: journal closed")
