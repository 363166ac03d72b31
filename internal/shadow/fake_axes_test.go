package shadow

import "fmt"

type drawCall struct {
	Kind    string
	X, Y, Z []float64
	Style   Style
}

// fakeAxes records draw calls and rejects mismatched lengths the way a real
// backend would.
type fakeAxes struct {
	calls   []drawCall
	limits  [3]Range
	labels  [3]string
	title   string
	failAt  int
	drawNum int
}

func newFakeAxes() *fakeAxes {
	r := Range{Min: -5, Max: 5}
	return &fakeAxes{limits: [3]Range{r, r, r}, failAt: -1}
}

func (f *fakeAxes) record(kind string, x, y, z []float64, style Style) error {
	if len(x) != len(y) || len(x) != len(z) {
		return fmt.Errorf("x, y and z must have the same length: %d, %d, %d", len(x), len(y), len(z))
	}
	if f.drawNum == f.failAt {
		f.drawNum++
		return fmt.Errorf("draw %d failed", f.failAt)
	}
	f.drawNum++
	f.calls = append(f.calls, drawCall{Kind: kind, X: x, Y: y, Z: z, Style: style})
	return nil
}

func (f *fakeAxes) Plot(x, y, z []float64, style Style) error {
	return f.record("plot", x, y, z, style)
}

func (f *fakeAxes) Scatter(x, y, z []float64, style Style) error {
	return f.record("scatter", x, y, z, style)
}

func (f *fakeAxes) Surface(x, y, z [][]float64, style Style) error {
	var fx, fy, fz []float64
	for i := range x {
		fx = append(fx, x[i]...)
		fy = append(fy, y[i]...)
		fz = append(fz, z[i]...)
	}
	return f.record("surface", fx, fy, fz, style)
}

func (f *fakeAxes) Limits() (x, y, z Range) {
	return f.limits[0], f.limits[1], f.limits[2]
}

func (f *fakeAxes) SetLabels(x, y, z string) { f.labels = [3]string{x, y, z} }
func (f *fakeAxes) SetTitle(title string)    { f.title = title }
