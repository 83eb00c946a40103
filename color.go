package somna

import (
	"fmt"
	"math"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/somnia-art/somna/canvas"
)

// hexChannel parses the two hex digits of channel i (0, 1 or 2) from a
// #RRGGBB string. Missing or unparsable digits read as zero; palette
// literals are trusted, so this never reports an error.
func hexChannel(hexColor string, i int) int {
	start := 1 + 2*i
	if start+2 > len(hexColor) {
		return 0
	}
	v, err := strconv.ParseUint(hexColor[start:start+2], 16, 8)
	if err != nil {
		return 0
	}
	return int(v)
}

func parseHex(hexColor string) (r, g, b int) {
	return hexChannel(hexColor, 0), hexChannel(hexColor, 1), hexChannel(hexColor, 2)
}

// LerpColor interpolates two #RRGGBB colors channel-wise at ratio t
// (clamped to [0, 1]) and returns the result in CSS rgb() form with
// each channel rounded to the nearest integer.
//
//	LerpColor("#000000", "#ffffff", 0.5) == "rgb(128, 128, 128)"
func LerpColor(c1, c2 string, t float64) string {
	t = clampUnit(t)
	r1, g1, b1 := parseHex(c1)
	r2, g2, b2 := parseHex(c2)

	ca := colorful.Color{R: float64(r1) / 255, G: float64(g1) / 255, B: float64(b1) / 255}
	cb := colorful.Color{R: float64(r2) / 255, G: float64(g2) / 255, B: float64(b2) / 255}
	m := ca.BlendRgb(cb, t)

	return fmt.Sprintf("rgb(%d, %d, %d)", round255(m.R), round255(m.G), round255(m.B))
}

// WithAlpha parses a #RRGGBB color and returns it in CSS rgba() form
// with the given alpha passed through unrounded.
func WithAlpha(hexColor string, alpha float64) string {
	r, g, b := parseHex(hexColor)
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}

// HSLA formats hue (degrees), saturation and lightness (percent) and
// alpha in CSS hsla() form.
func HSLA(h, s, l, alpha float64) string {
	return fmt.Sprintf("hsla(%g, %g%%, %g%%, %g)", h, s, l, alpha)
}

// tint converts a #RRGGBB string and an alpha into a canvas color.
func tint(hexColor string, alpha float64) canvas.RGBA {
	r, g, b := parseHex(hexColor)
	return canvas.RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: alpha,
	}
}

// hslaRGBA converts hsla() components (hue in degrees, saturation and
// lightness in percent) into a canvas color.
func hslaRGBA(h, s, l, alpha float64) canvas.RGBA {
	c := colorful.Hsl(h, s/100, l/100)
	return canvas.RGBA{R: c.R, G: c.G, B: c.B, A: alpha}
}

func round255(v float64) int {
	return int(math.Round(v * 255))
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
