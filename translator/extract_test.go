package translator

import (
	"testing"

	"github.com/germannapsix/Json-translate-app/jsontree"
)

func mustParse(t *testing.T, data string) *jsontree.Node {
	t.Helper()
	n, err := jsontree.Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", data, err)
	}
	return n
}

func TestExtract_StringLeavesOnly(t *testing.T) {
	root := mustParse(t, `{"a": "Hello", "b": ["World", 42, null]}`)

	leaves := Extract(root)
	want := []Leaf{
		{Path: "a", Text: "Hello"},
		{Path: "b[0]", Text: "World"},
	}
	if len(leaves) != len(want) {
		t.Fatalf("got %d leaves, want %d: %v", len(leaves), len(want), leaves)
	}
	for i := range want {
		if leaves[i] != want[i] {
			t.Errorf("leaf %d = %+v, want %+v", i, leaves[i], want[i])
		}
	}
}

func TestExtract_PathConstruction(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		paths []string
	}{
		{
			name:  "nested objects",
			doc:   `{"a":{"b":{"c":"x"}}}`,
			paths: []string{"a.b.c"},
		},
		{
			name:  "array of objects",
			doc:   `{"items":[{"t":"one"},{"t":"two"}]}`,
			paths: []string{"items[0].t", "items[1].t"},
		},
		{
			name:  "top-level array",
			doc:   `["x",["y"]]`,
			paths: []string{"[0]", "[1][0]"},
		},
		{
			name:  "non-strings excluded",
			doc:   `{"n":1,"b":true,"z":null,"o":{},"a":[],"s":"yes"}`,
			paths: []string{"s"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaves := Extract(mustParse(t, tt.doc))
			if len(leaves) != len(tt.paths) {
				t.Fatalf("got %d leaves, want %d: %v", len(leaves), len(tt.paths), leaves)
			}
			for i, p := range tt.paths {
				if leaves[i].Path != p {
					t.Errorf("path %d = %q, want %q", i, leaves[i].Path, p)
				}
			}
		})
	}
}

func TestExtract_NoDuplicatePaths(t *testing.T) {
	// Same text in several places must still address distinct leaves.
	root := mustParse(t, `{"a":"same","b":["same","same"],"c":{"a":"same"}}`)
	leaves := Extract(root)
	seen := make(map[string]bool, len(leaves))
	for _, lf := range leaves {
		if seen[lf.Path] {
			t.Errorf("duplicate path %q", lf.Path)
		}
		seen[lf.Path] = true
	}
	if len(leaves) != 4 {
		t.Fatalf("got %d leaves, want 4", len(leaves))
	}
}

func TestExtract_DuplicateObjectKeysYieldOneLeaf(t *testing.T) {
	// Repeated keys collapse at parse time (last wins), so a path is
	// never emitted twice.
	root := mustParse(t, `{"a":"x","a":"y"}`)
	leaves := Extract(root)
	if len(leaves) != 1 {
		t.Fatalf("got %d leaves, want 1: %v", len(leaves), leaves)
	}
	if leaves[0] != (Leaf{Path: "a", Text: "y"}) {
		t.Errorf("leaf = %+v, want path a carrying the later value", leaves[0])
	}
}

func TestExtract_Deterministic(t *testing.T) {
	root := mustParse(t, `{"x":["a","b"],"y":{"k":"c"}}`)
	first := Extract(root)
	second := Extract(root)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("leaf %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
