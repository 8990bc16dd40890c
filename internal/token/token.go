// Package token holds the design token tree model.
//
// A tree is made of five node kinds: Literal (an object carrying a scalar
// "value"), Reference (a "{path.to.token}" alias), Group (an ordered object),
// List (an array) and Scalar (any other JSON scalar). Trees are built once by
// the decoder or the resolver and are not modified afterwards.
package token

import (
	"regexp"
	"strings"
)

// referenceRegex matches alias strings like "{colors.pink.500}".
var referenceRegex = regexp.MustCompile(`^\{(.+)\}$`)

// Token is a node in a token tree.
type Token interface {
	node()
}

// ValueKind records the JSON kind of a literal value so it encodes back unchanged.
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
)

// Attr is an extra field of a literal token (description, $extensions, ...).
type Attr struct {
	Key   string
	Value Token
}

// Literal is a token object with a scalar "value" field.
type Literal struct {
	Value string
	Type  string
	Kind  ValueKind
	Attrs []Attr

	// layout is the original field order, nil for literals built in code.
	layout []string
}

// Reference is an alias to another token, addressed from the document root.
type Reference struct {
	Path string
}

// Group is an ordered mapping of unique keys to tokens.
type Group struct {
	keys     []string
	children map[string]Token
}

// List is a JSON array inside a token tree.
type List struct {
	Items []Token
}

// Scalar is a JSON scalar that is neither a literal object nor a reference.
// Raw holds its JSON encoding.
type Scalar struct {
	Raw []byte
}

func (*Literal) node()   {}
func (*Reference) node() {}
func (*Group) node()     {}
func (*List) node()      {}
func (*Scalar) node()    {}

// ParseReference reports whether s is an alias string and returns its inner path.
func ParseReference(s string) (string, bool) {
	m := referenceRegex.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// String returns the surface syntax of the reference.
func (r *Reference) String() string {
	return "{" + r.Path + "}"
}

// Segments splits the reference path on dots.
func (r *Reference) Segments() []string {
	return strings.Split(r.Path, ".")
}

// WithValue returns a copy of the literal holding a different value.
// Attributes and field order are kept.
func (l *Literal) WithValue(value string, kind ValueKind) *Literal {
	out := *l
	out.Value = value
	out.Kind = kind
	return &out
}

// NewGroup returns an empty group.
func NewGroup() *Group {
	return &Group{children: make(map[string]Token)}
}

// Set adds or replaces a child. A replaced child keeps its original position.
func (g *Group) Set(key string, t Token) {
	if g.children == nil {
		g.children = make(map[string]Token)
	}
	if _, ok := g.children[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.children[key] = t
}

// Get returns the child stored under key.
func (g *Group) Get(key string) (Token, bool) {
	t, ok := g.children[key]
	return t, ok
}

// Keys returns the child keys in insertion order.
func (g *Group) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.keys)
}

// Each calls fn for every child in insertion order.
func (g *Group) Each(fn func(key string, t Token)) {
	for _, k := range g.keys {
		fn(k, g.children[k])
	}
}
