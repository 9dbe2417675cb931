package translator

import (
	"fmt"

	"github.com/germannapsix/Json-translate-app/jsontree"
)

// Rebuild mirrors Extract's traversal over the original tree and returns a
// freshly allocated copy in which every string leaf whose path appears in
// translations carries the translated text. Leaves without a mapping keep
// their original text; non-string primitives pass through unchanged. The
// original tree is never mutated.
func Rebuild(orig *jsontree.Node, translations map[string]string) *jsontree.Node {
	return rebuildNode(orig, "", translations)
}

func rebuildNode(n *jsontree.Node, path string, translations map[string]string) *jsontree.Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case jsontree.String:
		text := n.Str
		if tr, ok := translations[path]; ok {
			text = tr
		}
		return &jsontree.Node{Kind: jsontree.String, Str: text}
	case jsontree.Object:
		out := &jsontree.Node{Kind: jsontree.Object}
		if n.Fields != nil {
			out.Fields = make([]jsontree.Field, len(n.Fields))
			for i, f := range n.Fields {
				out.Fields[i] = jsontree.Field{
					Key:   f.Key,
					Value: rebuildNode(f.Value, joinKey(path, f.Key), translations),
				}
			}
		}
		return out
	case jsontree.Array:
		out := &jsontree.Node{Kind: jsontree.Array}
		if n.Items != nil {
			out.Items = make([]*jsontree.Node, len(n.Items))
			for i, it := range n.Items {
				out.Items[i] = rebuildNode(it, fmt.Sprintf("%s[%d]", path, i), translations)
			}
		}
		return out
	default:
		return n.Clone()
	}
}
