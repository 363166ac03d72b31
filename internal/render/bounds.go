// Package render holds what the drawing backends share: axis limit
// bookkeeping, colour parsing and the default colour cycle.
package render

import (
	"fmt"
	"math"

	"github.com/banshee-data/shadowplot/internal/shadow"
)

// Bounds tracks the view limits of a 3D axis. Each axis either has explicit
// limits or is autoscaled to every point drawn so far.
type Bounds struct {
	fixed [3]*shadow.Range
	data  [3]shadow.Range
	seen  bool
}

// SetLimit fixes the limits of axis i (0=x, 1=y, 2=z).
func (b *Bounds) SetLimit(i int, lo, hi float64) {
	r := shadow.Range{Min: lo, Max: hi}
	b.fixed[i] = &r
}

// ClearLimit returns axis i to autoscaling.
func (b *Bounds) ClearLimit(i int) {
	b.fixed[i] = nil
}

// Include extends the autoscale box by the given points. Non-finite values
// are skipped.
func (b *Bounds) Include(x, y, z []float64) {
	for i := range x {
		p := [3]float64{x[i], y[i], z[i]}
		if !finite(p[0]) || !finite(p[1]) || !finite(p[2]) {
			continue
		}
		if !b.seen {
			for a := 0; a < 3; a++ {
				b.data[a] = shadow.Range{Min: p[a], Max: p[a]}
			}
			b.seen = true
			continue
		}
		for a := 0; a < 3; a++ {
			b.data[a].Min = math.Min(b.data[a].Min, p[a])
			b.data[a].Max = math.Max(b.data[a].Max, p[a])
		}
	}
}

// Limit returns the current limits of axis i. Autoscaled axes with no data
// are [0, 1]; a zero-width data range is widened by 0.5 on each side.
func (b *Bounds) Limit(i int) shadow.Range {
	if b.fixed[i] != nil {
		return *b.fixed[i]
	}
	if !b.seen {
		return shadow.Range{Min: 0, Max: 1}
	}
	r := b.data[i]
	if r.Min == r.Max {
		r.Min -= 0.5
		r.Max += 0.5
	}
	return r
}

// Limits returns the x, y and z limits.
func (b *Bounds) Limits() (x, y, z shadow.Range) {
	return b.Limit(0), b.Limit(1), b.Limit(2)
}

// CheckLengths returns an error unless x, y and z have the same length.
func CheckLengths(x, y, z []float64) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("x, y and z must have the same length, got %d, %d and %d", len(x), len(y), len(z))
	}
	return nil
}

// CheckGrid returns an error unless x, y and z are grids of the same shape.
func CheckGrid(x, y, z [][]float64) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("surface grids must have the same number of rows, got %d, %d and %d", len(x), len(y), len(z))
	}
	for i := range x {
		if err := CheckLengths(x[i], y[i], z[i]); err != nil {
			return fmt.Errorf("surface row %d: %w", i, err)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
