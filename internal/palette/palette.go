// Package palette extracts color swatches from a resolved token tree.
package palette

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/marcus/designtokens/internal/contrast"
	"github.com/marcus/designtokens/internal/theme"
	"github.com/marcus/designtokens/internal/token"
)

// Swatch is a concrete color identified by family and shade.
type Swatch struct {
	Family string `json:"family"`
	Shade  string `json:"shade"`
	Hex    string `json:"hex"`
}

// Name returns "family-shade", or the family alone for a single-shade swatch.
func (s Swatch) Name() string {
	if s.Shade == "" {
		return s.Family
	}
	return s.Family + "-" + s.Shade
}

// FromTree collects the swatches of the color group at groupPath in a
// resolved tree. groupPath is dot-separated; its first segment may be given
// without the base/ or theme/<name>/ prefix. Families are the direct child
// groups and shades their literal children, both in document order. A literal
// family is a single swatch with an empty shade. Values that are not 6-digit
// hex colors are skipped with a warning.
func FromTree(resolved *token.Group, groupPath string, logger *slog.Logger) ([]Swatch, error) {
	if logger == nil {
		logger = slog.Default()
	}

	group, err := findGroup(resolved, groupPath)
	if err != nil {
		return nil, err
	}

	var swatches []Swatch
	add := func(family, shade string, lit *token.Literal) {
		hex, err := contrast.NormalizeHex(lit.Value)
		if err != nil {
			logger.Warn("skipping swatch", "family", family, "shade", shade, "value", lit.Value, "err", err)
			return
		}
		swatches = append(swatches, Swatch{Family: family, Shade: shade, Hex: hex})
	}
	group.Each(func(family string, node token.Token) {
		switch n := node.(type) {
		case *token.Literal:
			add(family, "", n)
		case *token.Group:
			n.Each(func(shade string, leaf token.Token) {
				lit, ok := leaf.(*token.Literal)
				if !ok {
					logger.Debug("skipping non-literal shade", "family", family, "shade", shade)
					return
				}
				add(family, shade, lit)
			})
		default:
			logger.Warn("skipping palette entry", "family", family)
		}
	})

	if len(swatches) == 0 {
		return nil, fmt.Errorf("palette group %q holds no hex colors", groupPath)
	}
	return swatches, nil
}

func findGroup(root *token.Group, groupPath string) (*token.Group, error) {
	segments := strings.Split(groupPath, ".")
	candidates := [][]string{segments}
	for _, key := range theme.Candidates(root, segments[0]) {
		candidates = append(candidates, append([]string{key}, segments[1:]...))
	}

	for _, segs := range candidates {
		node, ok := token.Walk(root, segs)
		if !ok {
			continue
		}
		if g, ok := node.(*token.Group); ok {
			return g, nil
		}
	}
	return nil, fmt.Errorf("palette group %q not found", groupPath)
}

// FromMap builds swatches from a family -> shade -> hex table.
// Families sort alphabetically and shades numerically where possible,
// so the result does not depend on map iteration order.
func FromMap(table map[string]map[string]string) ([]Swatch, error) {
	families := make([]string, 0, len(table))
	for f := range table {
		families = append(families, f)
	}
	sort.Strings(families)

	var swatches []Swatch
	for _, family := range families {
		shades := make([]string, 0, len(table[family]))
		for s := range table[family] {
			shades = append(shades, s)
		}
		sort.Slice(shades, func(i, j int) bool {
			return shadeLess(shades[i], shades[j])
		})
		for _, shade := range shades {
			hex, err := contrast.NormalizeHex(table[family][shade])
			if err != nil {
				return nil, fmt.Errorf("%s-%s: %w", family, shade, err)
			}
			swatches = append(swatches, Swatch{Family: family, Shade: shade, Hex: hex})
		}
	}
	return swatches, nil
}

// shadeLess orders "50" < "100" < "900" and falls back to string order.
func shadeLess(a, b string) bool {
	if len(a) != len(b) && isDigits(a) && isDigits(b) {
		return len(a) < len(b)
	}
	return a < b
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
