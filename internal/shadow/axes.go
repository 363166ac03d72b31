package shadow

// Range is a closed interval of axis values.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// At returns Min or Max depending on pos.
func (r Range) At(pos Position) float64 {
	if pos == PositionMax {
		return r.Max
	}
	return r.Min
}

// Axes is the 3D drawing surface a Plotter draws on. Implementations are
// expected to reject coordinate slices of mismatched length.
type Axes interface {
	// Plot draws a polyline through the points.
	Plot(x, y, z []float64, style Style) error
	// Scatter draws a marker at each point.
	Scatter(x, y, z []float64, style Style) error
	// Surface draws a surface over a grid of points. x, y and z have the
	// same shape; rows are indexed first.
	Surface(x, y, z [][]float64, style Style) error
	// Limits returns the current x, y and z view limits.
	Limits() (x, y, z Range)
	SetLabels(x, y, z string)
	SetTitle(title string)
}
