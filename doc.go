/*
Package bintree offers a generic binary tree node which knows its parent.

Nodes

A node carries a value of an arbitrary type T, an optional left child, an
optional right child, and a back-reference to its parent. Every node is able to
answer "who is my parent, left child, right child" in O(1).

Ownership flows strictly downwards: a node holds its children by ordinary
(strong) pointers, while the link to the parent is a weak pointer
(package weak). A child therefore never keeps its parent alive. Once clients
drop every reference to the root of a subtree, the complete subtree becomes
unreachable and is reclaimed by the garbage collector, even though every node
of it still refers back to its former parent.

Nodes are created exclusively by

	NewLeaf(v)           // a node without children
	Fork(v, left, right) // a node with the given subtrees attached

and changed exclusively by the Replace…/Remove… family of methods. Each of
these performs an attach-and-relink: the child slot is changed and the parent
links of the incoming and the outgoing child are updated in the same call.

Attaching a node which still has a parent elsewhere detaches it from that
parent first. A node can thus never be the child of two parents at a time.
Attaching a node below itself would introduce a cycle of ownership and is
rejected with a panic (ErrCycle).

Traversal is left to clients. The package does not synchronize access;
concurrent mutation of a tree has to be serialized by the client.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrCycle is raised (as a panic) if a node is to be attached below itself or
// below one of its descendants.
const ErrCycle = TreeError("attaching node would create a cycle")

// ErrBrokenBackLink is flagged by Check whenever a child does not refer back to
// the node holding it.
const ErrBrokenBackLink = TreeError("child does not link back to its parent")

// ErrSharedSubtree is flagged by Check whenever a node is reachable more than once.
const ErrSharedSubtree = TreeError("node is reachable more than once")

// ErrOrphanedRoot is flagged by Check whenever a node claims a parent which does
// not hold it as a child.
const ErrOrphanedRoot = TreeError("node claims a parent which does not own it")

func assert(condition bool, err error) {
	if !condition {
		panic(err)
	}
}
