package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors covers the basic matplotlib colour names and single-letter
// codes.
var namedColors = map[string]color.NRGBA{
	"black":   {0, 0, 0, 255},
	"k":       {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"w":       {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"r":       {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"g":       {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"b":       {0, 0, 255, 255},
	"cyan":    {0, 255, 255, 255},
	"c":       {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"m":       {255, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"y":       {255, 255, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"brown":   {165, 42, 42, 255},
	"pink":    {255, 192, 203, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"olive":   {128, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
}

// ParseColor parses a colour name or a #rgb, #rrggbb or #rrggbbaa hex string.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[name]; ok {
		return c, nil
	}
	if !strings.HasPrefix(name, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
	}

	hex := name[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// WithAlpha returns c with its alpha scaled by a, clamped to [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// Hex formats c as #rrggbb, dropping alpha.
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
