package token

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrRootNotGroup is returned when a token document is not a JSON object of tokens.
var ErrRootNotGroup = errors.New("token document root must be a group")

// LoadFile reads and parses a token document.
func LoadFile(path string) (*Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tokens: %w", err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse tokens %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a token document, keeping object key order.
func Parse(data []byte) (*Group, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	t, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}

	root, ok := t.(*Group)
	if !ok {
		return nil, ErrRootNotGroup
	}
	return root, nil
}

func decodeValue(dec *json.Decoder) (Token, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeList(dec)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", v)
	case string:
		if path, ok := ParseReference(v); ok {
			return &Reference{Path: path}, nil
		}
		return &Scalar{Raw: quote(v)}, nil
	case json.Number:
		return &Scalar{Raw: []byte(v.String())}, nil
	case bool:
		return &Scalar{Raw: []byte(strconv.FormatBool(v))}, nil
	case nil:
		return &Scalar{Raw: []byte("null")}, nil
	}
	return nil, fmt.Errorf("unexpected JSON token %v", tok)
}

func decodeObject(dec *json.Decoder) (Token, error) {
	g := NewGroup()
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := kt.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", kt)
		}
		child, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		g.Set(key, child)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	if lit, ok := asLiteral(g); ok {
		return lit, nil
	}
	return g, nil
}

func decodeList(dec *json.Decoder) (Token, error) {
	l := &List{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", len(l.Items), err)
		}
		l.Items = append(l.Items, item)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return l, nil
}

// asLiteral turns an object with a scalar "value" field into a Literal.
// A null value does not count as a value.
func asLiteral(g *Group) (*Literal, bool) {
	v, ok := g.Get("value")
	if !ok {
		return nil, false
	}

	lit := &Literal{layout: g.Keys()}
	switch n := v.(type) {
	case *Reference:
		lit.Value = n.String()
		lit.Kind = KindString
	case *Scalar:
		value, kind, ok := n.literalValue()
		if !ok {
			return nil, false
		}
		lit.Value = value
		lit.Kind = kind
	default:
		return nil, false
	}

	g.Each(func(key string, child Token) {
		switch key {
		case "value":
			return
		case "type":
			if s, ok := child.(*Scalar); ok {
				if typ, ok := s.String(); ok {
					lit.Type = typ
					return
				}
			}
		}
		lit.Attrs = append(lit.Attrs, Attr{Key: key, Value: child})
	})
	return lit, true
}

// String returns the scalar as a Go string if it is a JSON string.
func (s *Scalar) String() (string, bool) {
	if len(s.Raw) == 0 || s.Raw[0] != '"' {
		return "", false
	}
	var out string
	if err := json.Unmarshal(s.Raw, &out); err != nil {
		return "", false
	}
	return out, true
}

func (s *Scalar) literalValue() (string, ValueKind, bool) {
	if str, ok := s.String(); ok {
		return str, KindString, true
	}
	raw := string(s.Raw)
	switch raw {
	case "null", "":
		return "", 0, false
	case "true", "false":
		return raw, KindBool, true
	}
	return raw, KindNumber, true
}
