// Package echarts exports a 3D axis as a static echarts-gl HTML page. Every
// draw call becomes one series on a single cartesian3D grid.
package echarts

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/monitoring"
	"github.com/banshee-data/shadowplot/internal/render"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

const (
	defaultLineWidth  = 1.5
	defaultMarkerSize = 20.0
)

// Options configures the generated page.
type Options struct {
	PageTitle string
	Width     string
	Height    string
	Theme     string
	// AssetsHost overrides where echarts and echarts-gl are loaded from.
	AssetsHost string
	// AxisOff hides the grid box.
	AxisOff bool
}

// DefaultOptions returns a 900x700 white page.
func DefaultOptions() Options {
	return Options{PageTitle: "shadowplot", Width: "900px", Height: "700px", Theme: "white"}
}

// Axes3D implements shadow.Axes by accumulating echarts series. It is not
// safe for concurrent use.
type Axes3D struct {
	opts   Options
	bounds render.Bounds
	cycle  *render.Cycle
	series []charts.SingleSeries
	labels [3]string
	title  string
}

var _ shadow.Axes = (*Axes3D)(nil)

// New returns an empty Axes3D.
func New(cfg Options) *Axes3D {
	return &Axes3D{opts: cfg, cycle: render.NewCycle(nil)}
}

// Plot adds a line3D series.
func (a *Axes3D) Plot(x, y, z []float64, style shadow.Style) error {
	s, err := a.newSeries(types.ChartLine3D, x, y, z, style)
	if err != nil {
		return err
	}
	s.LineStyle = &opts.LineStyle{
		Color:   s.Color,
		Width:   float32(style.FloatOr(shadow.KeyLineWidth, defaultLineWidth)),
		Type:    lineType(style),
		Opacity: s.ItemStyle.Opacity,
	}
	a.series = append(a.series, s)
	return nil
}

// Scatter adds a scatter3D series. Marker size follows the area convention,
// so the symbol diameter is its square root.
func (a *Axes3D) Scatter(x, y, z []float64, style shadow.Style) error {
	s, err := a.newSeries(types.ChartScatter3D, x, y, z, style)
	if err != nil {
		return err
	}
	s.SymbolSize = math.Sqrt(style.FloatOr(shadow.KeySize, defaultMarkerSize))
	s.Symbol = symbol(style)
	a.series = append(a.series, s)
	return nil
}

// Surface adds a surface series; the grid is flattened row-major.
func (a *Axes3D) Surface(x, y, z [][]float64, style shadow.Style) error {
	if err := render.CheckGrid(x, y, z); err != nil {
		return err
	}
	var fx, fy, fz []float64
	for i := range x {
		fx = append(fx, x[i]...)
		fy = append(fy, y[i]...)
		fz = append(fz, z[i]...)
	}
	s, err := a.newSeries(types.ChartSurface3D, fx, fy, fz, style)
	if err != nil {
		return err
	}
	s.Shading = "color"
	a.series = append(a.series, s)
	return nil
}

func (a *Axes3D) newSeries(kind string, x, y, z []float64, style shadow.Style) (charts.SingleSeries, error) {
	if err := render.CheckLengths(x, y, z); err != nil {
		return charts.SingleSeries{}, err
	}
	name, ok := style.Color()
	c, err := render.SeriesColor(name, ok, style.Alpha(), a.cycle)
	if err != nil {
		return charts.SingleSeries{}, err
	}
	a.bounds.Include(x, y, z)

	// NaN and Inf cannot be encoded as JSON, so such points are dropped.
	data := make([]opts.Chart3DData, 0, len(x))
	for i := range x {
		if !finite(x[i]) || !finite(y[i]) || !finite(z[i]) {
			continue
		}
		data = append(data, opts.Chart3DData{Value: []interface{}{x[i], y[i], z[i]}})
	}

	label, _ := style.String(shadow.KeyLabel)
	hex := render.Hex(c)
	return charts.SingleSeries{
		Name:        label,
		Type:        kind,
		CoordSystem: types.ChartCartesian3D,
		Data:        data,
		Color:       hex,
		ItemStyle: &opts.ItemStyle{
			Color:   hex,
			Opacity: opts.Float(float32(c.A) / 255),
		},
	}, nil
}

func (a *Axes3D) Limits() (x, y, z shadow.Range) {
	return a.bounds.Limits()
}

// SetXLim fixes the x limits.
func (a *Axes3D) SetXLim(lo, hi float64) { a.bounds.SetLimit(0, lo, hi) }

// SetYLim fixes the y limits.
func (a *Axes3D) SetYLim(lo, hi float64) { a.bounds.SetLimit(1, lo, hi) }

// SetZLim fixes the z limits.
func (a *Axes3D) SetZLim(lo, hi float64) { a.bounds.SetLimit(2, lo, hi) }

// SetAxisOff hides the grid box and axes.
func (a *Axes3D) SetAxisOff() { a.opts.AxisOff = true }

func (a *Axes3D) SetLabels(x, y, z string) { a.labels = [3]string{x, y, z} }

func (a *Axes3D) SetTitle(title string) { a.title = title }

// Len returns the number of series drawn so far.
func (a *Axes3D) Len() int { return len(a.series) }

// Chart builds a go-echarts chart holding every series drawn so far.
func (a *Axes3D) Chart() *charts.Line3D {
	xl, yl, zl := a.Limits()

	legend := false
	for _, s := range a.series {
		if s.Name != "" {
			legend = true
			break
		}
	}

	c := charts.NewLine3D()
	c.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:  a.opts.PageTitle,
			Width:      a.opts.Width,
			Height:     a.opts.Height,
			Theme:      a.opts.Theme,
			AssetsHost: a.opts.AssetsHost,
		}),
		charts.WithTitleOpts(opts.Title{Title: a.title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(legend)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Show: opts.Bool(!a.opts.AxisOff), Name: a.labels[0], Type: "value", Min: xl.Min, Max: xl.Max}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Show: opts.Bool(!a.opts.AxisOff), Name: a.labels[1], Type: "value", Min: yl.Min, Max: yl.Max}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Show: opts.Bool(!a.opts.AxisOff), Name: a.labels[2], Type: "value", Min: zl.Min, Max: zl.Max}),
		charts.WithGrid3DOpts(opts.Grid3D{Show: opts.Bool(!a.opts.AxisOff), BoxWidth: 100, BoxHeight: 100, BoxDepth: 100}),
	)
	c.MultiSeries = append(c.MultiSeries, a.series...)
	return c
}

// Render writes the chart as a standalone HTML page.
func (a *Axes3D) Render(w io.Writer) error {
	return a.Chart().Render(w)
}

// Save renders the chart to path on fs.
func (a *Axes3D) Save(fs fsutil.FileSystem, path string) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := a.Render(f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	monitoring.Logf("echarts: wrote %s (%d series)", path, len(a.series))
	return nil
}

func lineType(style shadow.Style) string {
	ls, _ := style.String(shadow.KeyLineStyle)
	switch ls {
	case "--", "dashed", "-.", "dashdot":
		return "dashed"
	case ":", "dotted":
		return "dotted"
	}
	return "solid"
}

var markerSymbols = map[string]string{
	"o": "circle",
	"s": "rect",
	"^": "triangle",
	"D": "diamond",
	"d": "diamond",
}

func symbol(style shadow.Style) string {
	m, _ := style.String(shadow.KeyMarker)
	if s, ok := markerSymbols[m]; ok {
		return s
	}
	return "circle"
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
