package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"weak"
)

// Node is a vertex of a binary tree, carrying a value of type T.
//
// Children are owned by their parent node. The parent is referenced weakly and
// will never be kept alive by one of its children.
//
// Nodes have to be created by NewLeaf or Fork. Children and parent are changed
// only through the Replace…/Remove… methods, which keep the parent links of
// all nodes involved consistent with the child slots.
//
// All navigation methods may be called on a nil node and will then act as for
// an empty tree.
type Node[T any] struct {
	value       T
	left, right *Node[T]
	parent      weak.Pointer[Node[T]]
}

// NewLeaf creates a node holding v, without children and without a parent.
func NewLeaf[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Fork creates a node holding v, with left and right attached as its children.
// Either of them may be nil. Before Fork returns, both children will link back
// to the new node. A child which still is attached to another parent will be
// detached from it first.
func Fork[T any](v T, left, right *Node[T]) *Node[T] {
	node := NewLeaf(v)
	node.ReplaceLeft(left)
	node.ReplaceRight(right)
	return node
}

// --- Navigation ------------------------------------------------------------

// HasLeft returns true if node has a left child.
func (node *Node[T]) HasLeft() bool {
	return node != nil && node.left != nil
}

// HasRight returns true if node has a right child.
func (node *Node[T]) HasRight() bool {
	return node != nil && node.right != nil
}

// HasParent returns true if node is attached to a parent which is still alive.
func (node *Node[T]) HasParent() bool {
	return node.Parent() != nil
}

// Value returns the value stored in node.
func (node *Node[T]) Value() T {
	if node == nil {
		var zero T
		return zero
	}
	return node.value
}

// ValueRef returns a reference to the value stored in node. Clients may use it
// to change the value in place.
func (node *Node[T]) ValueRef() *T {
	if node == nil {
		return nil
	}
	return &node.value
}

// SetValue replaces the value stored in node.
func (node *Node[T]) SetValue(v T) {
	node.value = v
}

// Left returns the left child of node, or nil.
func (node *Node[T]) Left() *Node[T] {
	if node == nil {
		return nil
	}
	return node.left
}

// Right returns the right child of node, or nil.
func (node *Node[T]) Right() *Node[T] {
	if node == nil {
		return nil
	}
	return node.right
}

// Parent returns the parent of node, or nil. Parent resolves the weak
// back-reference to the parent; if the parent has been dropped by every client
// already, the result is nil as well.
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent.Value()
}

// IsLeaf returns true if node has no children.
func (node *Node[T]) IsLeaf() bool {
	return !node.HasLeft() && !node.HasRight()
}

// IsRoot returns true if node has no parent.
func (node *Node[T]) IsRoot() bool {
	return !node.HasParent()
}

// IsLeftChild returns true if node sits in the left slot of its parent.
func (node *Node[T]) IsLeftChild() bool {
	p := node.Parent()
	return p != nil && p.left == node
}

// IsRightChild returns true if node sits in the right slot of its parent.
func (node *Node[T]) IsRightChild() bool {
	p := node.Parent()
	return p != nil && p.right == node
}

// Root follows the parent links up to the topmost node. Root is an O(depth)
// operation.
func (node *Node[T]) Root() *Node[T] {
	for p := node.Parent(); p != nil; p = node.Parent() {
		node = p
	}
	return node
}

func (node *Node[T]) String() string {
	if node == nil {
		return "<nil>"
	}
	l, r := "-", "-"
	if node.left != nil {
		l = "L"
	}
	if node.right != nil {
		r = "R"
	}
	return fmt.Sprintf("<node %v|%s|%s>", node.value, l, r)
}

// --- Mutation --------------------------------------------------------------

// ReplaceLeft attaches child as the left child of node and returns the previous
// left child (or nil). The returned node is no longer linked to node as its
// parent; child links back to node. child may be nil, which simply removes the
// left child.
//
// If child currently is attached to another parent, it will be detached from
// there first. Attaching node or one of its ancestors as a child of node panics
// with ErrCycle.
func (node *Node[T]) ReplaceLeft(child *Node[T]) *Node[T] {
	return node.attach(&node.left, child)
}

// ReplaceRight attaches child as the right child of node and returns the
// previous right child (or nil). See ReplaceLeft.
func (node *Node[T]) ReplaceRight(child *Node[T]) *Node[T] {
	return node.attach(&node.right, child)
}

// ReplaceLeftWithLeaf is a shortcut for ReplaceLeft(NewLeaf(v)).
func (node *Node[T]) ReplaceLeftWithLeaf(v T) *Node[T] {
	return node.ReplaceLeft(NewLeaf(v))
}

// ReplaceRightWithLeaf is a shortcut for ReplaceRight(NewLeaf(v)).
func (node *Node[T]) ReplaceRightWithLeaf(v T) *Node[T] {
	return node.ReplaceRight(NewLeaf(v))
}

// RemoveLeft detaches the left child of node and returns it (or nil).
// The subtree below the returned node stays intact.
func (node *Node[T]) RemoveLeft() *Node[T] {
	return node.ReplaceLeft(nil)
}

// RemoveRight detaches the right child of node and returns it (or nil).
// The subtree below the returned node stays intact.
func (node *Node[T]) RemoveRight() *Node[T] {
	return node.ReplaceRight(nil)
}

// Detach removes node from its parent's child slot, if it has a parent, and
// returns node.
func (node *Node[T]) Detach() *Node[T] {
	if node == nil {
		return nil
	}
	if p := node.Parent(); p != nil {
		if p.left == node {
			p.left = nil
		} else if p.right == node {
			p.right = nil
		}
	}
	node.parent = weak.Pointer[Node[T]]{}
	return node
}

// attach is the attach-and-relink operation behind all mutations. slot is
// either &node.left or &node.right.
func (node *Node[T]) attach(slot **Node[T], child *Node[T]) *Node[T] {
	old := *slot
	if child == old {
		return old
	}
	if child != nil {
		assert(!child.isAncestorOf(node), ErrCycle)
		child.Detach()
	}
	if old != nil {
		old.parent = weak.Pointer[Node[T]]{}
	}
	*slot = child
	if child != nil {
		child.parent = weak.Make(node)
	}
	return old
}

// isAncestorOf returns true if node is n or one of n's ancestors.
func (node *Node[T]) isAncestorOf(n *Node[T]) bool {
	for ; n != nil; n = n.Parent() {
		if n == node {
			return true
		}
	}
	return false
}
