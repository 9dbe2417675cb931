// Package jsontree implements an ordered JSON document model.
//
// encoding/json decodes objects into Go maps, which lose key order. The
// translator must re-emit documents with objects in their original key
// order, so this package decodes token-by-token into a Node tree that
// remembers insertion order, and re-encodes it the same way.
package jsontree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind is the JSON type of a Node.
type Kind uint8

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// Node is a single JSON value. Exactly one of the value fields is
// meaningful, selected by Kind.
type Node struct {
	Kind   Kind
	Str    string
	Num    json.Number
	Bool   bool
	Items  []*Node // Array elements, in order
	Fields []Field // Object members, in insertion order
}

// Field is one object member.
type Field struct {
	Key   string
	Value *Node
}

// Parse decodes data into a Node tree. Numbers are kept as json.Number so
// re-encoding reproduces the original literal.
func Parse(data []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := parseValue(dec)
	if err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if _, err := dec.Token(); err == nil {
		return nil, fmt.Errorf("parsing JSON: unexpected data after top-level value")
	}
	return n, nil
}

func parseValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			n := &Node{Kind: Object}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				n.setField(key, val)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return n, nil
		case '[':
			n := &Node{Kind: Array}
			for dec.More() {
				val, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				n.Items = append(n.Items, val)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return n, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return &Node{Kind: String, Str: t}, nil
	case json.Number:
		return &Node{Kind: Number, Num: t}, nil
	case bool:
		return &Node{Kind: Bool, Bool: t}, nil
	case nil:
		return &Node{Kind: Null}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// setField appends a new object member, or replaces the value of an
// existing one. Duplicate keys in the input collapse last-wins at the
// first occurrence's position, so a key appears in Fields at most once.
func (n *Node) setField(key string, val *Node) {
	for i := range n.Fields {
		if n.Fields[i].Key == key {
			n.Fields[i].Value = val
			return
		}
	}
	n.Fields = append(n.Fields, Field{Key: key, Value: val})
}

// MarshalJSON re-encodes the tree, preserving object key order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) encode(buf *bytes.Buffer) error {
	switch n.Kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case Number:
		buf.WriteString(n.Num.String())
	case String:
		b, err := json.Marshal(n.Str)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, it := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := it.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := f.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unknown node kind %d", n.Kind)
	}
	return nil
}

// Clone returns a deep copy of the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := &Node{Kind: n.Kind, Str: n.Str, Num: n.Num, Bool: n.Bool}
	if n.Items != nil {
		cp.Items = make([]*Node, len(n.Items))
		for i, it := range n.Items {
			cp.Items[i] = it.Clone()
		}
	}
	if n.Fields != nil {
		cp.Fields = make([]Field, len(n.Fields))
		for i, f := range n.Fields {
			cp.Fields[i] = Field{Key: f.Key, Value: f.Value.Clone()}
		}
	}
	return cp
}

// Equal reports whether two trees are deep-equal, including object key order.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind {
		return false
	}
	switch n.Kind {
	case Null:
		return true
	case Bool:
		return n.Bool == other.Bool
	case Number:
		return n.Num == other.Num
	case String:
		return n.Str == other.Str
	case Array:
		if len(n.Items) != len(other.Items) {
			return false
		}
		for i := range n.Items {
			if !n.Items[i].Equal(other.Items[i]) {
				return false
			}
		}
		return true
	case Object:
		if len(n.Fields) != len(other.Fields) {
			return false
		}
		for i := range n.Fields {
			if n.Fields[i].Key != other.Fields[i].Key {
				return false
			}
			if !n.Fields[i].Value.Equal(other.Fields[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
