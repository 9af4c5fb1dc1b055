package bintree

import "fmt"

// Check validates the structural invariants of the subtree starting at root:
//
//   - every child links back to the node holding it,
//   - no node is reachable more than once,
//   - if root has a parent, that parent holds root in one of its slots.
//
// Check is intended for tests and debugging. It returns an error wrapping one
// of ErrBrokenBackLink, ErrSharedSubtree or ErrOrphanedRoot.
func Check[T any](root *Node[T]) error {
	if root == nil {
		return nil
	}
	if p := root.Parent(); p != nil && p.left != root && p.right != root {
		return fmt.Errorf("%w: %v", ErrOrphanedRoot, root)
	}
	seen := make(map[*Node[T]]struct{})
	return checkNode(root, seen)
}

func checkNode[T any](node *Node[T], seen map[*Node[T]]struct{}) error {
	if _, ok := seen[node]; ok {
		return fmt.Errorf("%w: %v", ErrSharedSubtree, node)
	}
	seen[node] = struct{}{}
	for _, child := range [2]*Node[T]{node.left, node.right} {
		if child == nil {
			continue
		}
		if child.Parent() != node {
			return fmt.Errorf("%w: %v is child of %v", ErrBrokenBackLink, child, node)
		}
		if err := checkNode(child, seen); err != nil {
			return err
		}
	}
	return nil
}
