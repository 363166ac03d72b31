package render

import "image/color"

// DefaultCycle is the colour cycle backends use for series drawn without a
// colour.
var DefaultCycle = Palette(8)

// Cycle hands out colours from a palette in order, wrapping around.
type Cycle struct {
	colors []color.NRGBA
	next   int
}

// NewCycle returns a Cycle over colors. An empty palette falls back to
// DefaultCycle.
func NewCycle(colors []color.NRGBA) *Cycle {
	if len(colors) == 0 {
		colors = DefaultCycle
	}
	return &Cycle{colors: colors}
}

// Next returns the next colour.
func (c *Cycle) Next() color.NRGBA {
	col := c.colors[c.next%len(c.colors)]
	c.next++
	return col
}

// Palette returns n distinct colours evenly spaced in hue.
func Palette(n int) []color.NRGBA {
	if n <= 0 {
		return nil
	}

	colors := make([]color.NRGBA, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.7, 0.5)
		colors[i] = color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hslToRGB converts HSL to RGB (0-255 range)
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64

	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}

	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// SeriesColor resolves the colour a series is drawn in: its own colour when
// set and parseable, otherwise the next colour from cycle. The result carries
// the style's alpha.
func SeriesColor(colorName string, hasColor bool, alpha float64, cycle *Cycle) (color.NRGBA, error) {
	var c color.NRGBA
	if hasColor {
		parsed, err := ParseColor(colorName)
		if err != nil {
			return color.NRGBA{}, err
		}
		c = parsed
	} else {
		c = cycle.Next()
	}
	return WithAlpha(c, alpha), nil
}
