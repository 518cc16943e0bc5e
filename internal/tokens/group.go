package tokens

import (
	"bytes"
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Node is an element of the token tree: a Token leaf, a *Group or a List.
type Node interface {
	isNode()
}

// Group is an ordered, read-only mapping from names to nodes. Keys keep
// insertion order so every encoding of a group is byte-stable.
type Group struct {
	keys     []string
	children map[string]Node
}

func newGroup() *Group {
	return &Group{children: make(map[string]Node)}
}

// set adds or replaces a child. Only used while a tree is being built.
func (g *Group) set(key string, child Node) *Group {
	if _, exists := g.children[key]; !exists {
		g.keys = append(g.keys, key)
	}
	g.children[key] = child
	return g
}

func (*Group) isNode() {}

// Get returns the child stored under key.
func (g *Group) Get(key string) (Node, bool) {
	if g == nil {
		return nil, false
	}
	child, ok := g.children[key]
	return child, ok
}

// Keys returns the child names in insertion order.
func (g *Group) Keys() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.keys...)
}

// Len reports the number of children.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// Plain converts the group into nested map[string]any values for encoders
// that have no notion of key order.
func (g *Group) Plain() map[string]any {
	out := make(map[string]any, g.Len())
	for _, key := range g.Keys() {
		out[key] = plainNode(g.children[key])
	}
	return out
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (g *Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range g.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(g.children[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, preserving key order.
func (g *Group) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range g.Keys() {
		var value yaml.Node
		if err := value.Encode(g.children[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&value,
		)
	}
	return node, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder, preserving key order.
func (g *Group) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(g.Len()); err != nil {
		return err
	}
	for _, key := range g.Keys() {
		if err := enc.EncodeString(key); err != nil {
			return err
		}
		if err := enc.Encode(g.children[key]); err != nil {
			return err
		}
	}
	return nil
}

// List is an ordered sequence of nodes, used for theme values such as
// font stacks and font-size tuples.
type List []Node

func (List) isNode() {}

// Plain converts the list into []any.
func (l List) Plain() []any {
	out := make([]any, 0, len(l))
	for _, item := range l {
		out = append(out, plainNode(item))
	}
	return out
}

// MarshalYAML implements yaml.Marshaler.
func (l List) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, item := range l {
		var value yaml.Node
		if err := value.Encode(item); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &value)
	}
	return node, nil
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (l List) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(len(l)); err != nil {
		return err
	}
	for _, item := range l {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return nil
}

func plainNode(node Node) any {
	switch n := node.(type) {
	case Token:
		return n.Plain()
	case *Group:
		return n.Plain()
	case List:
		return n.Plain()
	default:
		return nil
	}
}
