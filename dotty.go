package ordmap

import (
	"fmt"
	"io"

	"github.com/npillmayer/ordmap/btree"
)

// Map2Dot outputs the internal tree structure of a Map in Graphviz DOT
// format (for debugging purposes).
func Map2Dot[K, V any](m *Map[K, V], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	m.WalkStructure(func(info btree.NodeInfo[K]) bool {
		styles := nodeDotStyles(info.Leaf)
		label := ""
		for i, key := range info.Keys {
			if i > 0 {
				label += " | "
			}
			label += fmt.Sprintf("%v", key)
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", info.ID, label, styles)
		if info.Parent > 0 {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", info.Parent, info.ID)
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := "style=filled"
	if isleaf {
		s += ",shape=box,fillcolor=\"#EEEEEE\""
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=box"
	}
	return s
}
