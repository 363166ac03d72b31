package shadow

import (
	"fmt"
	"math"
)

// DefaultAlphaRatio is the factor applied to a series' alpha when drawing its
// shadows, unless overridden per series.
const DefaultAlphaRatio = 0.3

// Config controls which shadows are drawn and how. Start from DefaultConfig:
// a zero AlphaRatio is kept as given and makes every shadow transparent.
type Config struct {
	// Planes lists the planes to project onto, in drawing order.
	Planes []Plane
	// Positions selects min or max for each plane. Planes missing from the
	// map default to min.
	Positions map[Plane]Position
	// AlphaRatio multiplies each series' alpha to obtain the shadow alpha.
	AlphaRatio float64
	// Anchor selects whether min/max comes from the series data or the axis
	// limits. Empty means AnchorData.
	Anchor Anchor
}

// DefaultConfig returns shadows on all three planes at their minimum, with
// DefaultAlphaRatio.
func DefaultConfig() Config {
	return Config{
		Planes: []Plane{PlaneXY, PlaneXZ, PlaneYZ},
		Positions: map[Plane]Position{
			PlaneXY: PositionMin,
			PlaneXZ: PositionMin,
			PlaneYZ: PositionMin,
		},
		AlphaRatio: DefaultAlphaRatio,
		Anchor:     AnchorData,
	}
}

// Validate checks plane names, position values, the anchor and the alpha
// ratio range.
func (c Config) Validate() error {
	for _, p := range c.Planes {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	for plane, pos := range c.Positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("plane %q: %w", string(plane), err)
		}
	}
	if c.Anchor != "" {
		if err := c.Anchor.Validate(); err != nil {
			return err
		}
	}
	return validateRatio(c.AlphaRatio)
}

func validateRatio(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("shadow alpha ratio must be between 0 and 1, got %f", r)
	}
	return nil
}

// normalized returns a deep copy of c with every configured plane present in
// Positions and the anchor defaulted.
func (c Config) normalized() Config {
	out := Config{
		Planes:     append([]Plane(nil), c.Planes...),
		Positions:  make(map[Plane]Position, len(c.Positions)+len(c.Planes)),
		AlphaRatio: c.AlphaRatio,
		Anchor:     c.Anchor,
	}
	for k, v := range c.Positions {
		out.Positions[k] = v
	}
	for _, p := range out.Planes {
		if _, ok := out.Positions[p]; !ok {
			out.Positions[p] = PositionMin
		}
	}
	if out.Anchor == "" {
		out.Anchor = AnchorData
	}
	return out
}
