package vgplot

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/shadowplot/internal/shadow"
)

// Camera is an orthographic view of the unit cube centred on the origin.
// Elevation and Azimuth are in degrees and follow the usual 3D axes
// convention: elevation above the xy plane, azimuth around the z axis.
type Camera struct {
	Elevation float64
	Azimuth   float64
}

// Matrix returns the 2x3 projection from world to screen coordinates. Row 0
// is the screen's right vector, row 1 its up vector.
func (c Camera) Matrix() *mat.Dense {
	el := c.Elevation * math.Pi / 180
	az := c.Azimuth * math.Pi / 180
	sinEl, cosEl := math.Sincos(el)
	sinAz, cosAz := math.Sincos(az)

	return mat.NewDense(2, 3, []float64{
		-sinAz, cosAz, 0,
		-sinEl * cosAz, -sinEl * sinAz, cosEl,
	})
}

// Project maps the points to screen coordinates.
func (c Camera) Project(x, y, z []float64) (u, v []float64) {
	n := len(x)
	if n == 0 {
		return nil, nil
	}

	pts := mat.NewDense(3, n, nil)
	pts.SetRow(0, x)
	pts.SetRow(1, y)
	pts.SetRow(2, z)

	var screen mat.Dense
	screen.Mul(c.Matrix(), pts)

	return mat.Row(nil, 0, &screen), mat.Row(nil, 1, &screen)
}

// normalize maps vals into [-0.5, 0.5] using r. A zero-width range maps
// everything to 0.
func normalize(vals []float64, r shadow.Range) []float64 {
	out := make([]float64, len(vals))
	span := r.Span()
	for i, v := range vals {
		if span == 0 {
			continue
		}
		out[i] = (v-r.Min)/span - 0.5
	}
	return out
}
