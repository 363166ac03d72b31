// Package vgplot is a static 3D axis rendered with gonum/plot. Points are
// normalised to the unit cube using the axis limits and projected through an
// orthographic Camera onto a 2D plot.
package vgplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/monitoring"
	"github.com/banshee-data/shadowplot/internal/render"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

// Default view, matching the conventional 3D axes defaults.
const (
	DefaultElevation = 30.0
	DefaultAzimuth   = -60.0
)

const (
	defaultLineWidth  = 1.5
	defaultMarkerSize = 20.0 // area in points^2
	// screenExtent bounds the projected unit cube, whose corners lie within
	// sqrt(3)/2 of the origin.
	screenExtent = 0.9
)

type primKind int

const (
	primLine primKind = iota
	primScatter
	primSurface
)

type primitive struct {
	kind    primKind
	x, y, z []float64
	// cols is the row length of a surface grid stored row-major in x, y, z.
	cols  int
	style shadow.Style
	color color.NRGBA
}

// Options configures a new Axes3D.
type Options struct {
	Elevation float64
	Azimuth   float64
	// AxisOff hides the bounding box and axis labels.
	AxisOff bool
}

// DefaultOptions returns the default view with the box shown.
func DefaultOptions() Options {
	return Options{Elevation: DefaultElevation, Azimuth: DefaultAzimuth}
}

// Axes3D implements shadow.Axes on top of gonum/plot. It is not safe for
// concurrent use.
type Axes3D struct {
	camera  Camera
	axisOff bool
	bounds  render.Bounds
	cycle   *render.Cycle
	prims   []primitive
	labels  [3]string
	title   string
}

var _ shadow.Axes = (*Axes3D)(nil)

// New returns an empty Axes3D.
func New(opts Options) *Axes3D {
	return &Axes3D{
		camera:  Camera{Elevation: opts.Elevation, Azimuth: opts.Azimuth},
		axisOff: opts.AxisOff,
		cycle:   render.NewCycle(nil),
	}
}

// Plot records a polyline.
func (a *Axes3D) Plot(x, y, z []float64, style shadow.Style) error {
	return a.add(primLine, x, y, z, 0, style)
}

// Scatter records a set of markers.
func (a *Axes3D) Scatter(x, y, z []float64, style shadow.Style) error {
	return a.add(primScatter, x, y, z, 0, style)
}

// Surface records a surface over a grid, drawn as one filled quad per cell.
func (a *Axes3D) Surface(x, y, z [][]float64, style shadow.Style) error {
	if err := render.CheckGrid(x, y, z); err != nil {
		return err
	}
	cols := 0
	if len(x) > 0 {
		cols = len(x[0])
	}
	var fx, fy, fz []float64
	for i := range x {
		if len(x[i]) != cols {
			return fmt.Errorf("surface row %d has %d columns, want %d", i, len(x[i]), cols)
		}
		fx = append(fx, x[i]...)
		fy = append(fy, y[i]...)
		fz = append(fz, z[i]...)
	}
	return a.add(primSurface, fx, fy, fz, cols, style)
}

func (a *Axes3D) add(kind primKind, x, y, z []float64, cols int, style shadow.Style) error {
	if err := render.CheckLengths(x, y, z); err != nil {
		return err
	}
	name, ok := style.Color()
	c, err := render.SeriesColor(name, ok, style.Alpha(), a.cycle)
	if err != nil {
		return err
	}
	a.bounds.Include(x, y, z)
	a.prims = append(a.prims, primitive{
		kind:  kind,
		x:     append([]float64(nil), x...),
		y:     append([]float64(nil), y...),
		z:     append([]float64(nil), z...),
		cols:  cols,
		style: style.Clone(),
		color: c,
	})
	return nil
}

// Limits returns the current view limits.
func (a *Axes3D) Limits() (x, y, z shadow.Range) {
	return a.bounds.Limits()
}

// SetXLim fixes the x limits.
func (a *Axes3D) SetXLim(lo, hi float64) { a.bounds.SetLimit(0, lo, hi) }

// SetYLim fixes the y limits.
func (a *Axes3D) SetYLim(lo, hi float64) { a.bounds.SetLimit(1, lo, hi) }

// SetZLim fixes the z limits.
func (a *Axes3D) SetZLim(lo, hi float64) { a.bounds.SetLimit(2, lo, hi) }

// ViewInit sets the camera elevation and azimuth in degrees.
func (a *Axes3D) ViewInit(elev, azim float64) {
	a.camera = Camera{Elevation: elev, Azimuth: azim}
}

// SetAxisOff hides the bounding box and axis labels.
func (a *Axes3D) SetAxisOff() { a.axisOff = true }

func (a *Axes3D) SetLabels(x, y, z string) { a.labels = [3]string{x, y, z} }

func (a *Axes3D) SetTitle(title string) { a.title = title }

// Len returns the number of primitives drawn so far.
func (a *Axes3D) Len() int { return len(a.prims) }

// project normalises world coordinates with the current limits and maps them
// to screen space.
func (a *Axes3D) project(x, y, z []float64) plotter.XYs {
	xl, yl, zl := a.Limits()
	u, v := a.camera.Project(normalize(x, xl), normalize(y, yl), normalize(z, zl))
	xys := make(plotter.XYs, len(u))
	for i := range u {
		xys[i] = plotter.XY{X: u[i], Y: v[i]}
	}
	return xys
}

// Render builds a gonum plot of everything drawn so far.
func (a *Axes3D) Render() (*plot.Plot, error) {
	ps, legend, err := a.plotters()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = a.title
	p.HideAxes()
	p.X.Min, p.X.Max = -screenExtent, screenExtent
	p.Y.Min, p.Y.Max = -screenExtent, screenExtent
	p.Add(ps...)
	for _, e := range legend {
		p.Legend.Add(e.label, e.thumb)
	}
	return p, nil
}

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// plotters converts the box and the recorded primitives into gonum plotters,
// in drawing order.
func (a *Axes3D) plotters() ([]plot.Plotter, []legendEntry, error) {
	var ps []plot.Plotter
	if !a.axisOff {
		box, err := a.box()
		if err != nil {
			return nil, nil, err
		}
		ps = append(ps, box...)
	}

	var legend []legendEntry
	for i, prim := range a.prims {
		out, thumb, err := a.convert(prim)
		if err != nil {
			return nil, nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		ps = append(ps, out...)
		if label, ok := prim.style.String(shadow.KeyLabel); ok && thumb != nil {
			legend = append(legend, legendEntry{label: label, thumb: thumb})
		}
	}
	return ps, legend, nil
}

func (a *Axes3D) convert(prim primitive) ([]plot.Plotter, plot.Thumbnailer, error) {
	switch prim.kind {
	case primLine:
		line, err := plotter.NewLine(a.project(prim.x, prim.y, prim.z))
		if err != nil {
			return nil, nil, err
		}
		line.Color = prim.color
		line.Width = vg.Points(prim.style.FloatOr(shadow.KeyLineWidth, defaultLineWidth))
		line.Dashes = dashes(prim.style)
		return []plot.Plotter{line}, line, nil

	case primScatter:
		sc, err := plotter.NewScatter(a.project(prim.x, prim.y, prim.z))
		if err != nil {
			return nil, nil, err
		}
		sc.GlyphStyle.Color = prim.color
		sc.GlyphStyle.Radius = vg.Points(math.Sqrt(prim.style.FloatOr(shadow.KeySize, defaultMarkerSize)) / 2)
		sc.GlyphStyle.Shape = glyph(prim.style)
		return []plot.Plotter{sc}, sc, nil

	case primSurface:
		if prim.cols < 2 {
			return nil, nil, nil
		}
		var out []plot.Plotter
		rows := len(prim.x) / prim.cols
		xys := a.project(prim.x, prim.y, prim.z)
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < prim.cols; c++ {
				i := r*prim.cols + c
				quad := plotter.XYs{xys[i], xys[i+1], xys[i+prim.cols+1], xys[i+prim.cols]}
				poly, err := plotter.NewPolygon(quad)
				if err != nil {
					return nil, nil, err
				}
				poly.Color = prim.color
				poly.LineStyle.Width = 0
				out = append(out, poly)
			}
		}
		return out, nil, nil
	}
	return nil, nil, fmt.Errorf("unknown primitive kind %d", prim.kind)
}

// box returns the edges of the view box and the axis labels.
func (a *Axes3D) box() ([]plot.Plotter, error) {
	xl, yl, zl := a.Limits()
	xs := [2]float64{xl.Min, xl.Max}
	ys := [2]float64{yl.Min, yl.Max}
	zs := [2]float64{zl.Min, zl.Max}

	var out []plot.Plotter
	edge := color.NRGBA{R: 190, G: 190, B: 190, A: 255}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			segs := [3][3][]float64{
				{{xs[0], xs[1]}, {ys[i], ys[i]}, {zs[j], zs[j]}},
				{{xs[i], xs[i]}, {ys[0], ys[1]}, {zs[j], zs[j]}},
				{{xs[i], xs[i]}, {ys[j], ys[j]}, {zs[0], zs[1]}},
			}
			for _, s := range segs {
				line, err := plotter.NewLine(a.project(s[0], s[1], s[2]))
				if err != nil {
					return nil, err
				}
				line.Color = edge
				line.Width = vg.Points(0.5)
				out = append(out, line)
			}
		}
	}

	// Labels sit just outside the midpoint of the lower front edges.
	lx := []float64{(xl.Min + xl.Max) / 2, xl.Max + 0.08*xl.Span(), xl.Min - 0.08*xl.Span()}
	ly := []float64{yl.Min - 0.08*yl.Span(), (yl.Min + yl.Max) / 2, yl.Min - 0.08*yl.Span()}
	lz := []float64{zl.Min, zl.Min, (zl.Min + zl.Max) / 2}

	var pts plotter.XYs
	var names []string
	for i, name := range a.labels {
		if name == "" {
			continue
		}
		xy := a.project(lx[i:i+1], ly[i:i+1], lz[i:i+1])
		pts = append(pts, xy[0])
		names = append(names, name)
	}
	if len(names) == 0 {
		return out, nil
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: names})
	if err != nil {
		return nil, err
	}
	return append(out, labels), nil
}

func dashes(style shadow.Style) []vg.Length {
	ls, _ := style.String(shadow.KeyLineStyle)
	switch ls {
	case "--", "dashed":
		return []vg.Length{vg.Points(6), vg.Points(3)}
	case ":", "dotted":
		return []vg.Length{vg.Points(1), vg.Points(2)}
	case "-.", "dashdot":
		return []vg.Length{vg.Points(6), vg.Points(2), vg.Points(1), vg.Points(2)}
	}
	return nil
}

var markerGlyphs = map[string]draw.GlyphDrawer{
	"o": draw.CircleGlyph{},
	"s": draw.BoxGlyph{},
	"^": draw.PyramidGlyph{},
	"+": draw.PlusGlyph{},
	"x": draw.CrossGlyph{},
	".": draw.CircleGlyph{},
}

func glyph(style shadow.Style) draw.GlyphDrawer {
	m, _ := style.String(shadow.KeyMarker)
	if g, ok := markerGlyphs[m]; ok {
		return g
	}
	return draw.CircleGlyph{}
}

// RenderTo renders the axes and writes them to w in the given format (png,
// svg, pdf, eps, jpg, tiff).
func (a *Axes3D) RenderTo(w io.Writer, width, height vg.Length, format string) (int64, error) {
	p, err := a.Render()
	if err != nil {
		return 0, err
	}
	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

// Save renders the axes to path on fs. The format is taken from the file
// extension.
func (a *Axes3D) Save(fs fsutil.FileSystem, path string, width, height vg.Length) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format == "" {
		return fmt.Errorf("no file extension on %q", path)
	}

	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	n, err := a.RenderTo(f, width, height, format)
	if err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	monitoring.Logf("vgplot: wrote %s (%d bytes, %d primitives)", path, n, len(a.prims))
	return nil
}
