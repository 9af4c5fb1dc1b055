package bintree

import "strings"

// --- Debugging helper ------------------------------------------------------

// Dump writes an indented outline of the subtree starting at node to the
// tracer with key 'bintree', using log-level Debug.
func Dump[V any](node *Node[V]) {
	if node == nil {
		tracer().Debugf("<empty tree>")
		return
	}
	walk(node, 0, func(n *Node[V], depth int) {
		slot := "*"
		if n.IsLeftChild() {
			slot = "L"
		} else if n.IsRightChild() {
			slot = "R"
		}
		if n.IsLeaf() {
			tracer().Debugf("%s%s = %v", indent(depth), slot, n.value)
			return
		}
		tracer().Debugf("%s%s = %v", indent(depth), slot, n)
	})
}

func indent(d int) string {
	return strings.Repeat("  ", d)
}
