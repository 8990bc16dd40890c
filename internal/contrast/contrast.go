// Package contrast computes WCAG 2.0 relative luminance and contrast ratios.
package contrast

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned for colors that are not 6-digit RGB hex literals.
var ErrInvalidHex = errors.New("invalid hex color")

var hexColorRegex = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Level is a WCAG conformance classification.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "Fail"
)

// WCAG thresholds, inclusive.
const (
	ThresholdAAA = 7.0
	ThresholdAA  = 4.5
)

// Result is the contrast between two colors.
type Result struct {
	Ratio float64 `json:"ratio"` // rounded to 2 decimals
	Level Level   `json:"level"` // classified on the unrounded ratio
}

// IsValidHex reports whether hex is a 6-digit RGB literal, with or without '#'.
func IsValidHex(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// NormalizeHex returns hex as lowercase "#rrggbb".
func NormalizeHex(hex string) (string, error) {
	if !IsValidHex(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return "#" + strings.ToLower(strings.TrimPrefix(hex, "#")), nil
}

// Luminance returns the relative luminance (0-1) of a hex color.
func Luminance(hex string) (float64, error) {
	norm, err := NormalizeHex(hex)
	if err != nil {
		return 0, err
	}
	c, err := colorful.Hex(norm)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return relativeLuminance(c), nil
}

func relativeLuminance(c colorful.Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Ratio returns the contrast ratio (1 to 21) between two luminances.
// It is symmetric in its arguments.
func Ratio(l1, l2 float64) float64 {
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Classify maps a full-precision ratio to its WCAG level.
func Classify(ratio float64) Level {
	switch {
	case ratio >= ThresholdAAA:
		return LevelAAA
	case ratio >= ThresholdAA:
		return LevelAA
	default:
		return LevelFail
	}
}

// Round2 rounds a ratio to 2 decimal places for reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Evaluate returns the contrast between two hex colors.
func Evaluate(hexA, hexB string) (Result, error) {
	la, err := Luminance(hexA)
	if err != nil {
		return Result{}, err
	}
	lb, err := Luminance(hexB)
	if err != nil {
		return Result{}, err
	}
	return FromLuminance(la, lb), nil
}

// FromLuminance classifies two precomputed luminances.
func FromLuminance(la, lb float64) Result {
	ratio := Ratio(la, lb)
	return Result{Ratio: Round2(ratio), Level: Classify(ratio)}
}

// Description returns the human readable WCAG criterion for a level.
func (l Level) Description() string {
	switch l {
	case LevelAAA:
		return "Contrast ratio of at least 7:1 (enhanced, normal text)"
	case LevelAA:
		return "Contrast ratio of at least 4.5:1 (minimum, normal text)"
	case LevelFail:
		return "Contrast ratio below 4.5:1 (not accessible for normal text)"
	}
	return ""
}

// Valid reports whether the level meets at least AA.
func (l Level) Valid() bool {
	return l == LevelAA || l == LevelAAA
}
