package shadow

import "gonum.org/v1/gonum/floats"

// ShadowOffset returns the value the axis orthogonal to plane is held at for
// the shadow of s. With AnchorData it is the min or max of the series' own
// values on that axis; with AnchorLimits it is the matching axis limit.
func ShadowOffset(s Series, plane Plane, pos Position, anchor Anchor, limits [3]Range) float64 {
	axis := plane.Orthogonal()
	if axis < 0 {
		return 0
	}
	if anchor == AnchorLimits {
		return limits[axis].At(pos)
	}
	vals := s.Coord(axis)
	if len(vals) == 0 {
		return 0
	}
	if pos == PositionMax {
		return floats.Max(vals)
	}
	return floats.Min(vals)
}

// Project returns the coordinates of s with the axis orthogonal to plane
// replaced by value. The other two axes are copied unchanged.
func Project(s Series, plane Plane, value float64) (x, y, z []float64) {
	coords := [3][]float64{
		append([]float64(nil), s.X...),
		append([]float64(nil), s.Y...),
		append([]float64(nil), s.Z...),
	}
	if axis := plane.Orthogonal(); axis >= 0 {
		for i := range coords[axis] {
			coords[axis][i] = value
		}
	}
	return coords[0], coords[1], coords[2]
}

// ShadowStyle derives the style a shadow of s is drawn with: a copy of the
// series style with alpha scaled by the effective ratio, "c" renamed to
// "color", DefaultShadowColor when no colour was given, and no label so
// shadows stay out of the legend.
func ShadowStyle(s Series, defaultRatio float64) Style {
	st := s.Style.Clone()

	ratio := defaultRatio
	if s.ShadowAlphaRatio != nil {
		ratio = *s.ShadowAlphaRatio
	}
	st[KeyAlpha] = s.Style.Alpha() * ratio
	delete(st, KeyLabel)

	if c, ok := st[KeyC]; ok {
		delete(st, KeyC)
		st[KeyColor] = c
	} else if _, ok := st[KeyColor]; !ok {
		st[KeyColor] = DefaultShadowColor
	}
	return st
}
