package tokens

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownPath is returned when a dot path does not name a declared leaf.
	ErrUnknownPath = errors.New("tokens: unknown path")
	// ErrNotGroup is returned when a sub-tree iteration targets a leaf.
	ErrNotGroup = errors.New("tokens: path is not a group")
)

// Value is a token leaf. Leaves are either strings or numbers.
type Value struct {
	text    string
	number  float64
	numeric bool
}

// String renders the leaf the way it is declared.
func (v Value) String() string {
	if v.numeric {
		return strconv.FormatFloat(v.number, 'f', -1, 64)
	}
	return v.text
}

// Float returns the numeric value of a number leaf.
func (v Value) Float() (float64, bool) {
	return v.number, v.numeric
}

// IsNumber reports whether the leaf was declared as a number.
func (v Value) IsNumber() bool {
	return v.numeric
}

// Def declares one node of a registry. Build definitions with Group, String
// and Number.
type Def struct {
	key      string
	value    *Value
	children []Def
}

// Group declares a grouping node. Children keep their declaration order.
func Group(key string, children ...Def) Def {
	return Def{key: key, children: children}
}

// String declares a string leaf.
func String(key, value string) Def {
	return Def{key: key, value: &Value{text: value}}
}

// Number declares a numeric leaf.
func Number(key string, value float64) Def {
	return Def{key: key, value: &Value{number: value, numeric: true}}
}

// Entry is one direct child of a group.
type Entry struct {
	Key   string
	Path  string
	Value Value
	Group bool
}

type node struct {
	key      string
	path     string
	value    *Value
	children []*node
	index    map[string]*node
}

func (n *node) leaf() bool {
	return n.value != nil
}

// Registry is an immutable, ordered tree of design tokens. A Registry has no
// mutation API and is safe for concurrent use.
type Registry struct {
	root *node
}

// New builds a registry from top-level definitions. Duplicate keys within one
// group and empty keys are declaration mistakes and cause a panic.
func New(defs ...Def) *Registry {
	return &Registry{root: build("", "", defs)}
}

func build(key, path string, defs []Def) *node {
	n := &node{key: key, path: path, index: make(map[string]*node, len(defs))}
	for _, def := range defs {
		if strings.TrimSpace(def.key) == "" || strings.Contains(def.key, ".") {
			panic(fmt.Sprintf("tokens: invalid key %q under %q", def.key, path))
		}
		if _, exists := n.index[def.key]; exists {
			panic(fmt.Sprintf("tokens: duplicate key %q under %q", def.key, path))
		}
		childPath := joinPath(path, def.key)
		var child *node
		if def.value != nil {
			value := *def.value
			child = &node{key: def.key, path: childPath, value: &value}
		} else {
			child = build(def.key, childPath, def.children)
		}
		n.children = append(n.children, child)
		n.index[def.key] = child
	}
	return n
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func (r *Registry) lookup(path string) (*node, bool) {
	current := r.root
	if strings.TrimSpace(path) == "" {
		return current, true
	}
	for _, segment := range strings.Split(path, ".") {
		if current.leaf() {
			return nil, false
		}
		next, ok := current.index[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Get returns the leaf stored at path, e.g. "colors.brand.primary".
func (r *Registry) Get(path string) (Value, error) {
	n, ok := r.lookup(path)
	if !ok || !n.leaf() {
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	return *n.value, nil
}

// MustGet is Get for paths known at compile time. It panics on unknown paths.
func (r *Registry) MustGet(path string) Value {
	value, err := r.Get(path)
	if err != nil {
		panic(err)
	}
	return value
}

// Entries lists the direct children of the group at path in declaration
// order. An empty path lists the top-level groups.
func (r *Registry) Entries(path string) ([]Entry, error) {
	n, ok := r.lookup(path)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPath, path)
	}
	if n.leaf() {
		return nil, fmt.Errorf("%w: %q", ErrNotGroup, path)
	}
	entries := make([]Entry, 0, len(n.children))
	for _, child := range n.children {
		entry := Entry{Key: child.key, Path: child.path, Group: !child.leaf()}
		if child.leaf() {
			entry.Value = *child.value
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Walk visits every leaf depth-first in declaration order.
func (r *Registry) Walk(fn func(path string, value Value)) {
	walk(r.root, fn)
}

func walk(n *node, fn func(string, Value)) {
	for _, child := range n.children {
		if child.leaf() {
			fn(child.path, *child.value)
			continue
		}
		walk(child, fn)
	}
}

// MarshalJSON encodes the registry as nested objects in declaration order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, r.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *node) error {
	if n.leaf() {
		var (
			encoded []byte
			err     error
		)
		if n.value.numeric {
			encoded, err = json.Marshal(n.value.number)
		} else {
			encoded, err = json.Marshal(n.value.text)
		}
		if err != nil {
			return fmt.Errorf("encode %s: %w", n.path, err)
		}
		buf.Write(encoded)
		return nil
	}

	buf.WriteByte('{')
	for i, child := range n.children {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(child.key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeJSON(buf, child); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

// MarshalYAML encodes the registry as a YAML mapping in declaration order.
func (r *Registry) MarshalYAML() (interface{}, error) {
	return yamlNode(r.root), nil
}

func yamlNode(n *node) *yaml.Node {
	if n.leaf() {
		scalar := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.value.String()}
		if n.value.numeric {
			scalar.Tag = "!!float"
		}
		return scalar
	}
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, child := range n.children {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: child.key},
			yamlNode(child),
		)
	}
	return mapping
}
