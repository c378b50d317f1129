package bptree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Ownership edges are solid, the leaf chain is
// drawn dashed.
func Tree2Dot[K, V any](tree *Tree[K, V], w io.Writer) error {
	if tree == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	var nodelist, edgelist strings.Builder
	tree.walk(tree.root, func(id nodeID, n treeNode[K, V]) {
		switch n := n.(type) {
		case *leafNode[K, V]:
			label := dotLabel(n.validKeys())
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(true, id == tree.root))
			if n.next != noNode {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [style=dashed,constraint=false];\n", id, n.next)
			}
		case *innerNode[K, V]:
			label := dotLabel(n.keys[:n.n])
			fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", id, label, nodeDotStyles(false, id == tree.root))
			for _, child := range n.validChildren() {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", id, child)
			}
		}
	})
	var dot strings.Builder
	dot.WriteString("strict digraph {\n")
	dot.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	dot.WriteString(nodelist.String())
	dot.WriteString(edgelist.String())
	dot.WriteString("}\n")
	_, err := io.WriteString(w, dot.String())
	return err
}

// labelEscaper quotes keys for use inside a double-quoted DOT string.
var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotLabel[K any](keys []K) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = labelEscaper.Replace(fmt.Sprintf("%v", k))
	}
	return strings.Join(parts, " | ")
}

func nodeDotStyles(isleaf bool, isroot bool) string {
	s := ",shape=box"
	if isleaf {
		s += ",style=filled,fillcolor=white"
	} else {
		s += ",style=\"rounded,filled\",color=black,fillcolor=\"#a3d7e4\""
	}
	if isroot {
		s += ",penwidth=2"
	}
	return s
}
