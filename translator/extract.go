package translator

import (
	"fmt"

	"github.com/germannapsix/Json-translate-app/jsontree"
)

// Leaf is one translatable string value together with its address in the
// document. Paths use ".key" for object members and "[i]" for array
// elements, with no leading separator at the root: `a.b[0].c`.
type Leaf struct {
	Path string
	Text string
}

// Extract walks the tree depth-first and returns every string leaf in
// traversal order: array indices ascending, object keys in document order.
// Numbers, booleans, null and empty containers contribute nothing. The
// walk is pure; extracting twice yields identical output.
func Extract(root *jsontree.Node) []Leaf {
	var leaves []Leaf
	extractInto(root, "", &leaves)
	return leaves
}

func extractInto(n *jsontree.Node, path string, out *[]Leaf) {
	if n == nil {
		return
	}
	switch n.Kind {
	case jsontree.String:
		*out = append(*out, Leaf{Path: path, Text: n.Str})
	case jsontree.Object:
		for _, f := range n.Fields {
			extractInto(f.Value, joinKey(path, f.Key), out)
		}
	case jsontree.Array:
		for i, it := range n.Items {
			extractInto(it, fmt.Sprintf("%s[%d]", path, i), out)
		}
	}
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
