package contrast

import colorful "github.com/lucasb-eyer/go-colorful"

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	black = colorful.Color{R: 0, G: 0, B: 0}
)

// Suggest returns a text color for bg that reaches minRatio, obtained by
// blending fg toward white or black with the smallest shift. fg is returned
// (normalized) when it already passes. When neither pole reaches minRatio the
// pole with the higher contrast is returned.
func Suggest(fg, bg string, minRatio float64) (string, error) {
	fgHex, err := NormalizeHex(fg)
	if err != nil {
		return "", err
	}
	bgLum, err := Luminance(bg)
	if err != nil {
		return "", err
	}
	fgColor, _ := colorful.Hex(fgHex)
	if Ratio(relativeLuminance(fgColor), bgLum) >= minRatio {
		return fgHex, nil
	}

	var (
		best      colorful.Color
		bestShift = 2.0
		pole      colorful.Color
		poleRatio float64
	)
	for _, target := range []colorful.Color{white, black} {
		r := Ratio(relativeLuminance(target), bgLum)
		if r > poleRatio {
			pole, poleRatio = target, r
		}
		if r < minRatio {
			continue
		}
		lo, hi := 0.0, 1.0
		for i := 0; i < 16; i++ {
			mid := (lo + hi) / 2
			if Ratio(relativeLuminance(blend(fgColor, target, mid)), bgLum) >= minRatio {
				hi = mid
			} else {
				lo = mid
			}
		}
		if hi < bestShift {
			best, bestShift = blend(fgColor, target, hi), hi
		}
	}

	if bestShift <= 1 {
		return best.Hex(), nil
	}
	return pole.Hex(), nil
}

// blend mixes in RGB space and rounds to 8-bit channels so the checked
// color is exactly the one written out.
func blend(c1, c2 colorful.Color, t float64) colorful.Color {
	q, _ := colorful.Hex(c1.BlendRgb(c2, t).Clamped().Hex())
	return q
}
