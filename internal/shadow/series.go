package shadow

// Kind distinguishes line series from scatter series.
type Kind int

const (
	KindLine Kind = iota
	KindScatter
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindScatter:
		return "scatter"
	}
	return "unknown"
}

// Series is a recorded call to Plot or Scatter.
type Series struct {
	X, Y, Z []float64
	Kind    Kind
	Style   Style
	// ShadowAlphaRatio overrides the plotter's ratio for this series when set.
	ShadowAlphaRatio *float64
}

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s.X) }

// Coord returns the coordinate slice for axis index i (0=x, 1=y, 2=z).
func (s Series) Coord(i int) []float64 {
	switch i {
	case 0:
		return s.X
	case 1:
		return s.Y
	case 2:
		return s.Z
	}
	return nil
}

func (s Series) clone() Series {
	out := Series{
		X:     append([]float64(nil), s.X...),
		Y:     append([]float64(nil), s.Y...),
		Z:     append([]float64(nil), s.Z...),
		Kind:  s.Kind,
		Style: s.Style.Clone(),
	}
	if s.ShadowAlphaRatio != nil {
		r := *s.ShadowAlphaRatio
		out.ShadowAlphaRatio = &r
	}
	return out
}

// SeriesOption configures a single Plot or Scatter call.
type SeriesOption func(*Series)

// WithShadowAlpha overrides the shadow alpha ratio for one series. Plot and
// Scatter reject ratios outside [0, 1] before drawing.
func WithShadowAlpha(ratio float64) SeriesOption {
	return func(s *Series) {
		s.ShadowAlphaRatio = &ratio
	}
}
