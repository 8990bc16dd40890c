package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"

	"github.com/marcus/designtokens/internal/contrast"
)

// DefaultTopPairs is the number of pairs listed per table in Markdown.
const DefaultTopPairs = 10

// Markdown renders a human readable summary: statistics, the best
// accessible pairs and the worst failing pairs.
func Markdown(r *Reports, top int) string {
	if top <= 0 {
		top = DefaultTopPairs
	}

	var b strings.Builder
	b.WriteString("# Contrast summary\n\n")
	writeTable(&b, []string{"Metric", "Value"}, [][]string{
		{"Total combinations", strconv.Itoa(r.Summary.Total)},
		{"Valid (AA or better)", strconv.Itoa(r.Summary.Valid)},
		{"AAA", strconv.Itoa(r.Summary.ValidAAA)},
		{"AA", strconv.Itoa(r.Summary.ValidAA)},
		{"Forbidden", strconv.Itoa(r.Summary.Forbidden)},
		{"Valid share", r.Summary.ValidPercentage},
	})

	if len(r.Valid) > 0 {
		b.WriteString("\n## Best pairs\n\n")
		writeTable(&b, pairHeader, pairRows(r.Valid, top))
	}
	if len(r.Forbidden) > 0 {
		b.WriteString("\n## Worst pairs\n\n")
		rows := pairRows(r.Forbidden, top)
		for i := range rows {
			c := r.Forbidden[i]
			suggestion, err := contrast.Suggest(c.Text.Hex, c.Background.Hex, contrast.ThresholdAA)
			if err != nil {
				suggestion = "-"
			}
			rows[i] = append(rows[i], suggestion)
		}
		writeTable(&b, forbiddenHeader, rows)
	}
	return b.String()
}

var (
	pairHeader      = []string{"Background", "Text", "Ratio", "Level"}
	forbiddenHeader = []string{"Background", "Text", "Ratio", "Level", "AA text"}
)

func pairRows(cs []Combination, top int) [][]string {
	if len(cs) > top {
		cs = cs[:top]
	}
	rows := make([][]string, len(cs))
	for i, c := range cs {
		rows[i] = []string{
			c.Background.Name() + " " + c.Background.Hex,
			c.Text.Name() + " " + c.Text.Hex,
			fmt.Sprintf("%.2f", c.Ratio),
			string(c.Level),
		}
	}
	return rows
}

// writeTable writes a markdown table with columns padded to equal width.
func writeTable(b *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			b.WriteString(" " + runewidth.FillRight(cell, widths[i]) + " |")
		}
		b.WriteString("\n")
	}

	line(header)
	b.WriteString("|")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+2) + "|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		line(row)
	}
}

// Render formats markdown for the terminal. An empty style detects the
// terminal background; width 0 disables word wrapping.
func Render(md, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("init markdown renderer: %w", err)
	}
	return renderer.Render(md)
}
