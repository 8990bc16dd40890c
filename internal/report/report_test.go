package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/designtokens/internal/contrast"
	"github.com/marcus/designtokens/internal/palette"
)

func testSwatches() []palette.Swatch {
	return []palette.Swatch{
		{Family: "neutral", Shade: "0", Hex: "#ffffff"},
		{Family: "neutral", Shade: "500", Hex: "#767676"},
		{Family: "neutral", Shade: "900", Hex: "#000000"},
		{Family: "pink", Shade: "500", Hex: "#b896bb"},
	}
}

func TestBuild_Completeness(t *testing.T) {
	swatches := testSwatches()
	r, err := Build(swatches, Options{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	n := len(swatches)
	if len(r.All) != n*n {
		t.Errorf("len(All) = %d, want %d", len(r.All), n*n)
	}
	if len(r.Valid)+len(r.Forbidden) != n*n {
		t.Errorf("valid %d + forbidden %d != %d", len(r.Valid), len(r.Forbidden), n*n)
	}
	if len(r.ValidAA)+len(r.ValidAAA) != len(r.Valid) {
		t.Errorf("AA %d + AAA %d != valid %d", len(r.ValidAA), len(r.ValidAAA), len(r.Valid))
	}

	seen := make(map[string]bool)
	for _, c := range r.All {
		seen[c.Background.Name()+"/"+c.Text.Name()] = true
	}
	for _, bg := range swatches {
		for _, text := range swatches {
			if !seen[bg.Name()+"/"+text.Name()] {
				t.Errorf("missing pair %s/%s", bg.Name(), text.Name())
			}
		}
	}
}

func TestBuild_Ordering(t *testing.T) {
	r, err := Build(testSwatches(), Options{})
	if err != nil {
		t.Fatal(err)
	}

	for i := 1; i < len(r.All); i++ {
		if r.All[i-1].Ratio < r.All[i].Ratio {
			t.Fatalf("All not descending at %d", i)
		}
	}
	for i := 1; i < len(r.Valid); i++ {
		if r.Valid[i-1].Ratio < r.Valid[i].Ratio {
			t.Fatalf("Valid not descending at %d", i)
		}
	}
	for i := 1; i < len(r.Forbidden); i++ {
		if r.Forbidden[i-1].Ratio > r.Forbidden[i].Ratio {
			t.Fatalf("Forbidden not ascending at %d", i)
		}
	}

	if r.All[0].Ratio != 21 {
		t.Errorf("best ratio = %v, want 21", r.All[0].Ratio)
	}
	if r.Forbidden[0].Ratio != 1 {
		t.Errorf("worst ratio = %v, want 1", r.Forbidden[0].Ratio)
	}
	for _, c := range r.Forbidden {
		if c.Level != contrast.LevelFail {
			t.Errorf("forbidden pair with level %s", c.Level)
		}
	}
}

func TestBuild_Summary(t *testing.T) {
	r, err := Build(testSwatches(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	s := r.Summary
	if s.Total != 16 {
		t.Errorf("Total = %d, want 16", s.Total)
	}
	if s.Valid != s.ValidAA+s.ValidAAA || s.Valid+s.Forbidden != s.Total {
		t.Errorf("inconsistent summary %+v", s)
	}
	if want := Percentage(s.Valid, s.Total); s.ValidPercentage != want {
		t.Errorf("ValidPercentage = %q, want %q", s.ValidPercentage, want)
	}
}

func TestBuild_ComprehensiveLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default cap larger than result", 0, 16},
		{"explicit cap", 5, 5},
		{"negative disables cap", -1, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Build(testSwatches(), Options{ComprehensiveLimit: tt.limit})
			if err != nil {
				t.Fatal(err)
			}
			if len(r.Comprehensive) != tt.want {
				t.Errorf("len(Comprehensive) = %d, want %d", len(r.Comprehensive), tt.want)
			}
			if len(r.All) != 16 {
				t.Errorf("len(All) = %d, want uncapped 16", len(r.All))
			}
		})
	}
}

func TestBuild_DefaultCap(t *testing.T) {
	var swatches []palette.Swatch
	for i := 0; i < 25; i++ {
		v := 10 * i
		swatches = append(swatches, palette.Swatch{
			Family: "gray",
			Shade:  string(rune('a' + i)),
			Hex:    "#" + strings.Repeat(hexByte(v), 3),
		})
	}
	r, err := Build(swatches, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(r.All) != 625 {
		t.Fatalf("len(All) = %d, want 625", len(r.All))
	}
	if len(r.Comprehensive) != DefaultComprehensiveLimit {
		t.Errorf("len(Comprehensive) = %d, want %d", len(r.Comprehensive), DefaultComprehensiveLimit)
	}
	if len(r.Valid)+len(r.Forbidden) != 625 {
		t.Errorf("valid and forbidden must stay uncapped")
	}
}

func TestBuild_InvalidSwatch(t *testing.T) {
	_, err := Build([]palette.Swatch{{Family: "x", Shade: "1", Hex: "#zzzzzz"}}, Options{})
	if err == nil {
		t.Error("expected error for invalid swatch")
	}
}

func TestBuild_Empty(t *testing.T) {
	r, err := Build(nil, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if r.Summary.Total != 0 || r.Summary.ValidPercentage != "0%" {
		t.Errorf("empty summary = %+v", r.Summary)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int
		want        string
	}{
		{0, 0, "0%"},
		{1, 1, "100%"},
		{1, 2, "50%"},
		{1, 3, "33.33%"},
		{2, 3, "66.67%"},
		{91, 200, "45.5%"},
	}
	for _, tt := range tests {
		if got := Percentage(tt.part, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %q, want %q", tt.part, tt.total, got, tt.want)
		}
	}
}

func TestDocuments_JSONShape(t *testing.T) {
	r, err := Build(testSwatches(), Options{ComprehensiveLimit: 3})
	if err != nil {
		t.Fatal(err)
	}
	docs := r.Documents(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC))

	data, err := json.Marshal(docs.Valid)
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]json.RawMessage
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"generated", "statistics", "wcagStandards", "validCombinations"} {
		if _, ok := got[key]; !ok {
			t.Errorf("valid document missing %q", key)
		}
	}
	if string(got["generated"]) != `"2026-10-18T12:00:00Z"` {
		t.Errorf("generated = %s", got["generated"])
	}

	if len(docs.Comprehensive.AllCombinations) != 3 {
		t.Errorf("allCombinations = %d, want capped 3", len(docs.Comprehensive.AllCombinations))
	}
	if len(docs.Forbidden.ForbiddenCombinations) != len(r.Forbidden) {
		t.Errorf("forbiddenCombinations should be uncapped")
	}

	pair, err := json.Marshal(r.All[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(pair), `"background":{"family":`) || !strings.Contains(string(pair), `"level":"AAA"`) {
		t.Errorf("unexpected combination encoding %s", pair)
	}
}

func TestMarkdown(t *testing.T) {
	r, err := Build(testSwatches(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	md := Markdown(r, 2)

	for _, want := range []string{"# Contrast summary", "Total combinations", "## Best pairs", "## Worst pairs", "AA text", "21.00"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if got := strings.Count(md, "| AAA"); got < 1 {
		t.Errorf("expected AAA rows, got %d", got)
	}

	out, err := Render(md, "notty", 0)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(ansi.Strip(out), "Contrast summary") {
		t.Errorf("rendered output missing heading:\n%s", out)
	}
}

func hexByte(v int) string {
	const digits = "0123456789abcdef"
	return string([]byte{digits[v>>4], digits[v&0x0f]})
}
