package token

import (
	"strconv"
	"strings"
)

// Walk follows segments from root through groups and lists.
// List items are addressed by their decimal index.
func Walk(root Token, segments []string) (Token, bool) {
	cur := root
	for _, seg := range segments {
		switch n := cur.(type) {
		case *Group:
			next, ok := n.Get(seg)
			if !ok {
				return nil, false
			}
			cur = next
		case *List:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(n.Items) {
				return nil, false
			}
			cur = n.Items[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// GetToken returns the value of the literal token at a dot-separated path.
// It reports false when the path is missing or does not end at a literal.
func GetToken(root *Group, dotPath string) (string, bool) {
	t, ok := Walk(root, strings.Split(dotPath, "."))
	if !ok {
		return "", false
	}
	lit, ok := t.(*Literal)
	if !ok {
		return "", false
	}
	return lit.Value, true
}
