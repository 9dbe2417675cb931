package jsontree

import (
	"strings"
	"testing"
)

func TestParseAndMarshal_PreservesKeyOrder(t *testing.T) {
	data := []byte(`{"zebra":"z","alpha":{"nested":"n","first":1},"mid":[true,null,"s"]}`)

	n, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	out, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	got := string(out)
	if got != string(data) {
		t.Fatalf("round-trip changed document:\n in: %s\nout: %s", data, got)
	}

	idxZebra := strings.Index(got, `"zebra"`)
	idxAlpha := strings.Index(got, `"alpha"`)
	if !(idxZebra >= 0 && idxAlpha > idxZebra) {
		t.Fatalf("key order not preserved: %s", got)
	}
}

func TestParse_NumberLiteralsSurvive(t *testing.T) {
	data := []byte(`{"a":1.50,"b":1e3,"c":-0}`)
	n, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	out, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(out) != string(data) {
		t.Fatalf("number literals changed: in=%s out=%s", data, out)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{
		`{"broken":`,
		`{"a":1} trailing`,
		``,
		`{1:2}`,
	}
	for _, c := range cases {
		if _, err := Parse([]byte(c)); err == nil {
			t.Errorf("expected parse error for %q", c)
		}
	}
}

func TestParse_DuplicateKeysLastWins(t *testing.T) {
	// Matches JSON.parse: the last value wins, at the first occurrence's
	// position, so every key appears in Fields exactly once.
	n, err := Parse([]byte(`{"a":"x","b":1,"a":"y"}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(n.Fields) != 2 {
		t.Fatalf("got %d fields, want 2: %+v", len(n.Fields), n.Fields)
	}
	if n.Fields[0].Key != "a" || n.Fields[0].Value.Str != "y" {
		t.Errorf("field 0 = {%s %s}, want key a with the later value y",
			n.Fields[0].Key, n.Fields[0].Value.Str)
	}
	if n.Fields[1].Key != "b" {
		t.Errorf("field 1 key = %s, want b", n.Fields[1].Key)
	}

	out, err := n.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON error: %v", err)
	}
	if string(out) != `{"a":"y","b":1}` {
		t.Errorf("re-encoded as %s, want the collapsed document", out)
	}

	// Duplicates inside a nested object collapse too.
	nested, err := Parse([]byte(`{"o":{"k":"first","k":"second"}}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	inner := nested.Fields[0].Value
	if len(inner.Fields) != 1 || inner.Fields[0].Value.Str != "second" {
		t.Errorf("nested duplicate not collapsed: %+v", inner.Fields)
	}
}

func TestClone_IsDeepAndEqual(t *testing.T) {
	n, err := Parse([]byte(`{"a":["x",{"b":"y"}],"c":2}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	cp := n.Clone()
	if !n.Equal(cp) {
		t.Fatal("clone not equal to original")
	}
	cp.Fields[0].Value.Items[0].Str = "mutated"
	if n.Fields[0].Value.Items[0].Str != "x" {
		t.Fatal("mutating clone affected original")
	}
}

func TestEqual_DetectsOrderDifference(t *testing.T) {
	a, _ := Parse([]byte(`{"x":1,"y":2}`))
	b, _ := Parse([]byte(`{"y":2,"x":1}`))
	if a.Equal(b) {
		t.Fatal("Equal should be order-sensitive for object keys")
	}
}
