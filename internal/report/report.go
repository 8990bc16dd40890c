// Package report enumerates every color pair of a palette, classifies it
// against WCAG and partitions the result into the contrast reports.
package report

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/marcus/designtokens/internal/contrast"
	"github.com/marcus/designtokens/internal/palette"
)

// DefaultComprehensiveLimit caps the comprehensive report.
const DefaultComprehensiveLimit = 500

// Combination is one background/text pair.
type Combination struct {
	Background palette.Swatch `json:"background"`
	Text       palette.Swatch `json:"text"`
	Ratio      float64        `json:"ratio"`
	Level      contrast.Level `json:"level"`
}

// Summary holds the report statistics.
type Summary struct {
	Total           int    `json:"total"`
	Valid           int    `json:"valid"`
	ValidAAA        int    `json:"validAAA"`
	ValidAA         int    `json:"validAA"`
	Forbidden       int    `json:"forbidden"`
	ValidPercentage string `json:"validPercentage"`
}

// Options configures Build.
type Options struct {
	// ComprehensiveLimit caps Reports.Comprehensive. Zero uses
	// DefaultComprehensiveLimit, a negative value disables the cap.
	ComprehensiveLimit int
}

// Reports is the partitioned result of a contrast run.
type Reports struct {
	All           []Combination // every pair, best first
	Comprehensive []Combination // All, capped
	Valid         []Combination // AA and AAA, best first
	ValidAAA      []Combination
	ValidAA       []Combination
	Forbidden     []Combination // Fail, worst first
	Summary       Summary
}

// Build classifies every (background, text) pair of swatches, self-pairs
// included, so len(All) == len(swatches)^2.
func Build(swatches []palette.Swatch, opts Options) (*Reports, error) {
	lum := make([]float64, len(swatches))
	for i, s := range swatches {
		l, err := contrast.Luminance(s.Hex)
		if err != nil {
			return nil, fmt.Errorf("swatch %s: %w", s.Name(), err)
		}
		lum[i] = l
	}

	all := make([]Combination, 0, len(swatches)*len(swatches))
	for i, bg := range swatches {
		for j, text := range swatches {
			res := contrast.FromLuminance(lum[i], lum[j])
			all = append(all, Combination{
				Background: bg,
				Text:       text,
				Ratio:      res.Ratio,
				Level:      res.Level,
			})
		}
	}

	r := &Reports{
		All:       all,
		Valid:     []Combination{},
		ValidAAA:  []Combination{},
		ValidAA:   []Combination{},
		Forbidden: []Combination{},
	}
	for _, c := range all {
		if !c.Level.Valid() {
			r.Forbidden = append(r.Forbidden, c)
			continue
		}
		r.Valid = append(r.Valid, c)
		if c.Level == contrast.LevelAAA {
			r.ValidAAA = append(r.ValidAAA, c)
		} else {
			r.ValidAA = append(r.ValidAA, c)
		}
	}

	sortDescending(r.All)
	sortDescending(r.Valid)
	sortDescending(r.ValidAAA)
	sortDescending(r.ValidAA)
	sort.SliceStable(r.Forbidden, func(i, j int) bool {
		return r.Forbidden[i].Ratio < r.Forbidden[j].Ratio
	})

	limit := opts.ComprehensiveLimit
	if limit == 0 {
		limit = DefaultComprehensiveLimit
	}
	r.Comprehensive = r.All
	if limit > 0 && len(r.All) > limit {
		r.Comprehensive = r.All[:limit]
	}

	r.Summary = summarize(len(all), len(r.ValidAAA), len(r.ValidAA), len(r.Forbidden))
	return r, nil
}

func sortDescending(cs []Combination) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].Ratio > cs[j].Ratio
	})
}

func summarize(total, aaa, aa, forbidden int) Summary {
	return Summary{
		Total:           total,
		Valid:           aaa + aa,
		ValidAAA:        aaa,
		ValidAA:         aa,
		Forbidden:       forbidden,
		ValidPercentage: Percentage(aaa+aa, total),
	}
}

// Percentage formats part/total*100 rounded to 2 decimals with a trailing
// "%", without padding zeros ("45.5%", "100%"). An empty total gives "0%".
func Percentage(part, total int) string {
	if total == 0 {
		return "0%"
	}
	v := contrast.Round2(float64(part) / float64(total) * 100)
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
