package styles

import "github.com/marcus/designtokens/internal/contrast"

const (
	black = "#000000"
	white = "#ffffff"
)

// ReadableText returns black or white, whichever contrasts more with bg.
// Invalid colors get white.
func ReadableText(bg string) string {
	onBlack, err := contrast.Evaluate(bg, black)
	if err != nil {
		return white
	}
	onWhite, _ := contrast.Evaluate(bg, white)
	if onBlack.Ratio >= onWhite.Ratio {
		return black
	}
	return white
}
