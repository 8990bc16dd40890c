package token

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseReference(t *testing.T) {
	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{"{colors.pink.500}", "colors.pink.500", true},
		{"{a}", "a", true},
		{"{}", "", false},
		{"colors.pink", "", false},
		{"1px solid {colors.pink}", "", false},
		{"{a} ", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseReference(tt.input)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseReference(%q) = %q, %v, want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParse_NodeKinds(t *testing.T) {
	root, err := Parse([]byte(`{
		"lit": {"value": "#112233", "type": "color", "description": "brand"},
		"num": {"value": 400, "type": "fontWeight"},
		"ref": "{lit}",
		"plain": "hello",
		"list": [1, "{lit}"],
		"nullValue": {"value": null},
		"group": {"inner": {"value": "4px"}}
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"lit", "num", "ref", "plain", "list", "nullValue", "group"}
	keys := root.Keys()
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	lit, ok := mustGet(t, root, "lit").(*Literal)
	if !ok {
		t.Fatal("lit should decode as *Literal")
	}
	if lit.Value != "#112233" || lit.Type != "color" || lit.Kind != KindString {
		t.Errorf("lit = %+v", lit)
	}
	if len(lit.Attrs) != 1 || lit.Attrs[0].Key != "description" {
		t.Errorf("lit attrs = %+v, want description", lit.Attrs)
	}

	num := mustGet(t, root, "num").(*Literal)
	if num.Value != "400" || num.Kind != KindNumber {
		t.Errorf("num = %+v, want number 400", num)
	}

	if ref, ok := mustGet(t, root, "ref").(*Reference); !ok || ref.Path != "lit" {
		t.Errorf("ref = %#v, want Reference{lit}", mustGet(t, root, "ref"))
	}
	if _, ok := mustGet(t, root, "plain").(*Scalar); !ok {
		t.Error("plain string should decode as *Scalar")
	}
	if l, ok := mustGet(t, root, "list").(*List); !ok || len(l.Items) != 2 {
		t.Error("list should decode as *List with 2 items")
	}
	if _, ok := mustGet(t, root, "nullValue").(*Group); !ok {
		t.Error("object with null value should stay a group")
	}
	if _, ok := mustGet(t, root, "group").(*Group); !ok {
		t.Error("group should decode as *Group")
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{invalid`},
		{"array root", `[1, 2]`},
		{"literal root", `{"value": "x"}`},
		{"trailing data", `{} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Parse([]byte(`"x"`)); !errors.Is(err, ErrRootNotGroup) {
		t.Errorf("scalar root: got %v, want ErrRootNotGroup", err)
	}
}

func TestMarshalIndent_RoundTrip(t *testing.T) {
	input := `{
  "base/colors": {
    "pink": {
      "500": {
        "type": "color",
        "value": "#b896bb",
        "$extensions": {
          "figma": [
            1,
            true,
            null
          ]
        }
      }
    },
    "alias": "{colors.pink.500}",
    "weight": {
      "value": 700
    },
    "note": "a <b> & c"
  }
}`
	root, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := MarshalIndent(root, "", "  ")
	if err != nil {
		t.Fatalf("MarshalIndent failed: %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip mismatch:\n got: %s\nwant: %s", out, input)
	}
}

func TestMarshal_BuiltLiteral(t *testing.T) {
	g := NewGroup()
	g.Set("a", &Literal{Value: "8px", Type: "dimension"})
	g.Set("b", &Literal{Value: "1.5", Kind: KindNumber})
	g.Set("a", &Literal{Value: "9px", Type: "dimension"})

	out, err := g.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":{"value":"9px","type":"dimension"},"b":{"value":1.5}}`
	if string(out) != want {
		t.Errorf("got %s, want %s", out, want)
	}
}

func TestGetToken(t *testing.T) {
	root, err := Parse([]byte(`{
		"colors": {"pink": {"500": {"value": "#b896bb", "type": "color"}}},
		"stack": [{"value": "a"}, {"value": "b"}],
		"alias": "{colors.pink.500}"
	}`))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want string
		ok   bool
	}{
		{"colors.pink.500", "#b896bb", true},
		{"stack.1", "b", true},
		{"colors.pink", "", false},
		{"colors.pink.600", "", false},
		{"stack.7", "", false},
		{"stack.x", "", false},
		{"alias", "", false},
		{"colors.pink.500.value", "", false},
	}

	for _, tt := range tests {
		got, ok := GetToken(root, tt.path)
		if ok != tt.ok || got != tt.want {
			t.Errorf("GetToken(%q) = %q, %v, want %q, %v", tt.path, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{nope`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for invalid JSON")
	}

	good := filepath.Join(dir, "tokens.json")
	if err := os.WriteFile(good, []byte(`{"base/space": {"sm": {"value": "4px"}}}`), 0644); err != nil {
		t.Fatal(err)
	}
	root, err := LoadFile(good)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if root.Len() != 1 {
		t.Errorf("got %d top-level keys, want 1", root.Len())
	}
}

func mustGet(t *testing.T, g *Group, key string) Token {
	t.Helper()
	v, ok := g.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}
