package token

import (
	"bytes"
	"encoding/json"
)

// MarshalIndent encodes a token tree as indented JSON, keeping key order.
func MarshalIndent(t Token, prefix, indent string) ([]byte, error) {
	compact, err := marshalToken(t)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func marshalToken(t Token) ([]byte, error) {
	switch n := t.(type) {
	case *Literal:
		return n.MarshalJSON()
	case *Reference:
		return n.MarshalJSON()
	case *Group:
		return n.MarshalJSON()
	case *List:
		return n.MarshalJSON()
	case *Scalar:
		return n.MarshalJSON()
	}
	return []byte("null"), nil
}

// MarshalJSON encodes the group as an object in insertion order.
func (g *Group) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := marshalToken(g.children[k])
		if err != nil {
			return nil, err
		}
		buf.Write(quote(k))
		buf.WriteByte(':')
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON encodes the literal with its fields in their original order.
func (l *Literal) MarshalJSON() ([]byte, error) {
	keys := l.layout
	if keys == nil {
		keys = []string{"value"}
		if l.Type != "" {
			keys = append(keys, "type")
		}
		for _, a := range l.Attrs {
			keys = append(keys, a.Key)
		}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	n := 0
	write := func(key string, raw []byte) {
		if n > 0 {
			buf.WriteByte(',')
		}
		n++
		buf.Write(quote(key))
		buf.WriteByte(':')
		buf.Write(raw)
	}

	for _, k := range keys {
		if a, ok := l.attr(k); ok {
			raw, err := marshalToken(a.Value)
			if err != nil {
				return nil, err
			}
			write(k, raw)
			continue
		}
		switch k {
		case "value":
			write(k, l.encodedValue())
		case "type":
			write(k, quote(l.Type))
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *Literal) attr(key string) (Attr, bool) {
	for _, a := range l.Attrs {
		if a.Key == key {
			return a, true
		}
	}
	return Attr{}, false
}

func (l *Literal) encodedValue() []byte {
	if l.Kind == KindString {
		return quote(l.Value)
	}
	return []byte(l.Value)
}

// MarshalJSON encodes the reference in its "{path}" surface syntax.
func (r *Reference) MarshalJSON() ([]byte, error) {
	return quote(r.String()), nil
}

// MarshalJSON encodes the list items in order.
func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, item := range l.Items {
		if i > 0 {
			buf.WriteByte(',')
		}
		raw, err := marshalToken(item)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON returns the raw scalar.
func (s *Scalar) MarshalJSON() ([]byte, error) {
	if len(s.Raw) == 0 {
		return []byte("null"), nil
	}
	return s.Raw, nil
}

// quote encodes s as a JSON string without HTML escaping.
func quote(s string) []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
