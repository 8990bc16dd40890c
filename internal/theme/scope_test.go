package theme

import (
	"reflect"
	"testing"

	"github.com/marcus/designtokens/internal/token"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want Scope
	}{
		{"base/colors", Scope{Key: "base/colors", Base: true, Name: "colors"}},
		{"base/colors/brand", Scope{Key: "base/colors/brand", Base: true, Name: "colors/brand"}},
		{"theme/light/surface", Scope{Key: "theme/light/surface", Theme: "light", Name: "surface"}},
		{"theme/dark", Scope{Key: "theme/dark", Theme: "dark"}},
		{"spacing", Scope{Key: "spacing", Name: "spacing"}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := ParseKey(tt.key); got != tt.want {
				t.Errorf("ParseKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestScopeSegments(t *testing.T) {
	if got := ParseKey("base/colors/brand").Segments(); !reflect.DeepEqual(got, []string{"colors", "brand"}) {
		t.Errorf("Segments = %v", got)
	}
	if got := ParseKey("theme/light").Segments(); got != nil {
		t.Errorf("Segments = %v, want nil", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty falls back to default", nil, []string{"light"}},
		{"dedupes and trims", []string{"light", " light ", "dark"}, []string{"light", "dark"}},
		{"drops invalid names", []string{"li'ght", "dark"}, []string{"dark"}},
		{"all invalid falls back", []string{"a b"}, []string{"light"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input, nil); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSelector(t *testing.T) {
	got := Selector([]string{"light"})
	want := ":root,\n:root[data-theme='light']"
	if got != want {
		t.Errorf("Selector = %q, want %q", got, want)
	}
}

func TestCandidates(t *testing.T) {
	root, err := token.Parse([]byte(`{
		"theme/light/colors": {},
		"base/colors": {},
		"base/space": {},
		"colors": {}
	}`))
	if err != nil {
		t.Fatal(err)
	}

	got := Candidates(root, "colors")
	want := []string{"base/colors", "theme/light/colors"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Candidates = %v, want %v", got, want)
	}
	if got := Candidates(root, "radius"); len(got) != 0 {
		t.Errorf("Candidates(radius) = %v, want none", got)
	}
}
