package bintree

import (
	"fmt"
	"io"
	"strings"
)

type nodeids[T any] struct {
	idTable map[*Node[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[*Node[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(node *Node[T]) int {
	return ids.idTable[node]
}

func (ids *nodeids[T]) alloc(node *Node[T]) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Node2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Child edges are drawn solid, parent back-links
// dashed.
func Node2Dot[T any](root *Node[T], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	var nodelist, edgelist strings.Builder
	var nilid int
	walk(root, 0, func(node *Node[T], depth int) {
		ID := ids.alloc(node)
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", ID, dotLabel(node.value),
			nodeDotStyles(node.IsLeaf()))
		if p := node.Parent(); p != nil && ids.find(p) > 0 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,color=gray];\n", ID, ids.find(p))
		}
		if node.IsLeaf() {
			return
		}
		for _, child := range [2]*Node[T]{node.left, node.right} {
			if child == nil {
				nilid--
				fmt.Fprintf(&nodelist, "\"%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
	})
	io.WriteString(w, nodelist.String())
	io.WriteString(w, edgelist.String())
	io.WriteString(w, "}\n")
}

// walk visits node and its descendants in pre-order.
func walk[T any](node *Node[T], depth int, f func(*Node[T], int)) {
	if node == nil {
		return
	}
	f(node, depth)
	walk(node.left, depth+1, f)
	walk(node.right, depth+1, f)
}

func dotLabel(v any) string {
	s := fmt.Sprint(v)
	if len([]rune(s)) > 12 {
		s = string([]rune(s)[:11]) + "…"
	}
	return dotEscaper.Replace(s)
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", "")

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
