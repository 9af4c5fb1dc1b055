package htmltree

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bintree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Tree is a binary tree over HTML nodes: the left child of a tree node is the
// first child of the HTML node, the right child is its next sibling.
type Tree = bintree.Node[*html.Node]

// FromNode creates a binary tree for an HTML node and all its descendents.
// Siblings of n are not included, i.e. the resulting tree has no right child.
func FromNode(n *html.Node) (*Tree, error) {
	if n == nil {
		return nil, ErrIllegalArguments
	}
	return bintree.Fork(n, encode(n.FirstChild), nil), nil
}

func encode(n *html.Node) *Tree {
	if n == nil {
		return nil
	}
	return bintree.Fork(n, encode(n.FirstChild), encode(n.NextSibling))
}

// Parse parses a complete HTML document and returns it as a binary tree,
// rooted at the document node.
func Parse(input io.Reader) (*Tree, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	return FromNode(doc)
}

// ParseFragment parses an HTML fragment as the content of a <body> element.
// The top-level nodes of the fragment are chained as right children, starting
// with the first one as the root.
func ParseFragment(input io.Reader) (*Tree, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(input, body)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, ErrEmptyFragment
	}
	var t *Tree
	for i := len(nodes) - 1; i >= 0; i-- {
		t = bintree.Fork(nodes[i], encode(nodes[i].FirstChild), t)
	}
	tracer().Debugf("html fragment with %d top-level nodes", len(nodes))
	return t, nil
}

// InnerText returns the textual content of the HTML node at t and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(t *Tree) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	if t.Value().Type == html.TextNode {
		b.WriteString(t.Value().Data)
	}
	collectText(t.Left(), &b)
	return b.String()
}

func collectText(t *Tree, b *strings.Builder) {
	for ; t != nil; t = t.Right() {
		if t.Value().Type == html.TextNode {
			b.WriteString(t.Value().Data)
		}
		collectText(t.Left(), b)
	}
}

// Children returns the tree nodes for the HTML children of t.
func Children(t *Tree) []*Tree {
	var children []*Tree
	for c := t.Left(); c != nil; c = c.Right() {
		children = append(children, c)
	}
	return children
}

// Prune removes every descendent of t for which drop returns true, together with
// its own descendents. Following siblings of a removed node move up into its
// place. Prune returns the number of nodes removed (not counting descendents)
// and does not change the underlying HTML nodes.
func Prune(t *Tree, drop func(*html.Node) bool) int {
	if t == nil {
		return 0
	}
	cnt := 0
	for c := t.Left(); c != nil && drop(c.Value()); c = t.Left() {
		t.ReplaceLeft(c.Right())
		cnt++
	}
	for c := t.Right(); c != nil && drop(c.Value()); c = t.Right() {
		t.ReplaceRight(c.Right())
		cnt++
	}
	return cnt + Prune(t.Left(), drop) + Prune(t.Right(), drop)
}

// IsElement returns a predicate matching element nodes with the given tag.
func IsElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == tag
	}
}

// Label creates a short label for an HTML node, suitable for debugging output.
func Label(n *html.Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.Type {
	case html.DocumentNode:
		return "#document"
	case html.ElementNode:
		return fmt.Sprintf("<%s>", n.Data)
	case html.TextNode:
		return fmt.Sprintf("%q", n.Data)
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#node"
}

// Labels converts a tree of HTML nodes into a tree of their labels, e.g. for
// output with bintree.Node2Dot.
func Labels(t *Tree) *bintree.Node[string] {
	if t == nil {
		return nil
	}
	return bintree.Fork(Label(t.Value()), Labels(t.Left()), Labels(t.Right()))
}
