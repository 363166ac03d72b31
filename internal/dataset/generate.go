package dataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Spiral returns n points on a helix of the given radius making turns full
// revolutions while rising linearly from zmin to zmax.
func Spiral(n int, turns, radius, zmin, zmax float64) (x, y, z []float64) {
	if n <= 0 {
		return nil, nil, nil
	}
	t := make([]float64, n)
	z = make([]float64, n)
	if n == 1 {
		z[0] = zmin
	} else {
		floats.Span(t, 0, 2*math.Pi*turns)
		floats.Span(z, zmin, zmax)
	}

	x = make([]float64, n)
	y = make([]float64, n)
	for i, ti := range t {
		s, c := math.Sincos(ti)
		x[i] = radius * c
		y[i] = radius * s
	}
	return x, y, z
}

// NewSource returns a deterministic random source for the generators.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// RandomCloud draws n independent points with every coordinate sampled from
// dist.
func RandomCloud(n int, dist distuv.Rander) (x, y, z []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = dist.Rand()
		y[i] = dist.Rand()
		z[i] = dist.Rand()
	}
	return x, y, z
}

// NormalCloud draws n standard normal points.
func NormalCloud(n int, seed uint64) (x, y, z []float64) {
	return RandomCloud(n, distuv.Normal{Mu: 0, Sigma: 1, Src: NewSource(seed)})
}

// UniformCloud draws n points uniformly from the cube [lo, hi]^3.
func UniformCloud(n int, lo, hi float64, seed uint64) (x, y, z []float64) {
	return RandomCloud(n, distuv.Uniform{Min: lo, Max: hi, Src: NewSource(seed)})
}

// Mesh returns an n by n grid over [lo, hi]^2 with z = f(x, y). Rows vary
// in y and columns in x.
func Mesh(n int, lo, hi float64, f func(x, y float64) float64) (x, y, z [][]float64) {
	if n <= 0 {
		return nil, nil, nil
	}
	axis := make([]float64, n)
	if n == 1 {
		axis[0] = lo
	} else {
		floats.Span(axis, lo, hi)
	}

	x = make([][]float64, n)
	y = make([][]float64, n)
	z = make([][]float64, n)
	for i := 0; i < n; i++ {
		x[i] = make([]float64, n)
		y[i] = make([]float64, n)
		z[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			x[i][j] = axis[j]
			y[i][j] = axis[i]
			z[i][j] = f(axis[j], axis[i])
		}
	}
	return x, y, z
}

// SurfacePoints is Mesh flattened row-major, for drawing a surface as a
// point set.
func SurfacePoints(n int, lo, hi float64, f func(x, y float64) float64) (x, y, z []float64) {
	gx, gy, gz := Mesh(n, lo, hi, f)
	for i := range gx {
		x = append(x, gx[i]...)
		y = append(y, gy[i]...)
		z = append(z, gz[i]...)
	}
	return x, y, z
}
