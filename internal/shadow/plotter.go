// Package shadow draws 3D line and scatter series together with their
// "shadows": flattened copies projected onto the xy, xz and yz planes at the
// minimum or maximum of the orthogonal axis.
//
// A Plotter wraps an Axes, records every series it draws, and draws the
// shadows for all of them when PlotShadows is called.
package shadow

import (
	"fmt"

	"github.com/banshee-data/shadowplot/internal/monitoring"
)

// Plotter records series drawn on an Axes and projects their shadows.
// A Plotter is not safe for concurrent use.
type Plotter struct {
	ax     Axes
	cfg    Config
	series []Series
}

// NewPlotter returns a Plotter drawing on ax. The config is validated and
// copied; planes without a configured position default to min.
func NewPlotter(ax Axes, cfg Config) (*Plotter, error) {
	if ax == nil {
		return nil, fmt.Errorf("shadow: nil axes")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Plotter{ax: ax, cfg: cfg.normalized()}, nil
}

// Axes returns the drawing surface.
func (p *Plotter) Axes() Axes { return p.ax }

// Plot draws a 3D line and records it for shadow plotting.
func (p *Plotter) Plot(x, y, z []float64, style Style, opts ...SeriesOption) error {
	return p.draw(KindLine, x, y, z, style, opts)
}

// Scatter draws 3D markers and records them for shadow plotting.
func (p *Plotter) Scatter(x, y, z []float64, style Style, opts ...SeriesOption) error {
	return p.draw(KindScatter, x, y, z, style, opts)
}

func (p *Plotter) draw(kind Kind, x, y, z []float64, style Style, opts []SeriesOption) error {
	s := Series{X: x, Y: y, Z: z, Kind: kind, Style: style}
	for _, opt := range opts {
		opt(&s)
	}
	if s.ShadowAlphaRatio != nil {
		if err := validateRatio(*s.ShadowAlphaRatio); err != nil {
			return err
		}
	}
	if err := p.drawKind(kind, x, y, z, style); err != nil {
		return err
	}
	p.series = append(p.series, s.clone())
	return nil
}

func (p *Plotter) drawKind(kind Kind, x, y, z []float64, style Style) error {
	if kind == KindScatter {
		return p.ax.Scatter(x, y, z, style)
	}
	return p.ax.Plot(x, y, z, style)
}

// PlotShadows draws one shadow per recorded series and configured plane.
// Calling it twice draws every shadow twice.
func (p *Plotter) PlotShadows() error {
	var limits [3]Range
	if p.cfg.Anchor == AnchorLimits {
		limits[0], limits[1], limits[2] = p.ax.Limits()
	}

	drawn := 0
	for i, s := range p.series {
		st := ShadowStyle(s, p.cfg.AlphaRatio)
		for _, plane := range p.cfg.Planes {
			pos := p.cfg.Positions[plane]
			x, y, z := Project(s, plane, ShadowOffset(s, plane, pos, p.cfg.Anchor, limits))
			if err := p.drawKind(s.Kind, x, y, z, st.Clone()); err != nil {
				return fmt.Errorf("shadow of series %d on %s: %w", i, plane, err)
			}
			drawn++
		}
	}
	monitoring.Debugf("shadow: drew %d shadows for %d series", drawn, len(p.series))
	return nil
}

// SetShadowPositions merges positions into the current configuration.
// Position values are validated; plane names are not checked against the
// configured planes.
func (p *Plotter) SetShadowPositions(positions map[Plane]Position) error {
	for plane, pos := range positions {
		if err := pos.Validate(); err != nil {
			return fmt.Errorf("plane %q: %w", string(plane), err)
		}
	}
	for plane, pos := range positions {
		p.cfg.Positions[plane] = pos
	}
	return nil
}

// ShadowPositions returns a copy of the current plane positions.
func (p *Plotter) ShadowPositions() map[Plane]Position {
	out := make(map[Plane]Position, len(p.cfg.Positions))
	for k, v := range p.cfg.Positions {
		out[k] = v
	}
	return out
}

// Planes returns the configured shadow planes in drawing order.
func (p *Plotter) Planes() []Plane {
	return append([]Plane(nil), p.cfg.Planes...)
}

// AlphaRatio returns the default shadow alpha ratio.
func (p *Plotter) AlphaRatio() float64 { return p.cfg.AlphaRatio }

// Series returns copies of the recorded series in the order they were drawn.
func (p *Plotter) Series() []Series {
	out := make([]Series, len(p.series))
	for i, s := range p.series {
		out[i] = s.clone()
	}
	return out
}

// PlotAxes draws three black axis lines from the lower corner of the view
// box, each covering partial of its axis span.
func (p *Plotter) PlotAxes(partial float64) error {
	xl, yl, zl := p.ax.Limits()
	origin := [3]float64{xl.Min, yl.Min, zl.Min}
	spans := [3]float64{partial * xl.Span(), partial * yl.Span(), partial * zl.Span()}

	for axis := 0; axis < 3; axis++ {
		end := origin
		end[axis] += spans[axis]
		style := Style{KeyColor: "black", KeyLineWidth: 2.0}
		if err := p.ax.Plot(
			[]float64{origin[0], end[0]},
			[]float64{origin[1], end[1]},
			[]float64{origin[2], end[2]},
			style,
		); err != nil {
			return fmt.Errorf("axis %d: %w", axis, err)
		}
	}
	return nil
}

// PlotPlanes draws translucent boundary planes at z = zmin and x = xmin.
func (p *Plotter) PlotPlanes() error {
	xl, yl, zl := p.ax.Limits()
	style := Style{KeyColor: "gray", KeyAlpha: 0.1}

	// Floor: z = zmin over the x/y box.
	xx := [][]float64{{xl.Min, xl.Max}, {xl.Min, xl.Max}}
	yy := [][]float64{{yl.Min, yl.Min}, {yl.Max, yl.Max}}
	zz := [][]float64{{zl.Min, zl.Min}, {zl.Min, zl.Min}}
	if err := p.ax.Surface(xx, yy, zz, style.Clone()); err != nil {
		return fmt.Errorf("xy plane: %w", err)
	}

	// Side wall: x = xmin over the y/z box.
	yy = [][]float64{{yl.Min, yl.Max}, {yl.Min, yl.Max}}
	zz = [][]float64{{zl.Min, zl.Min}, {zl.Max, zl.Max}}
	xx = [][]float64{{xl.Min, xl.Min}, {xl.Min, xl.Min}}
	if err := p.ax.Surface(xx, yy, zz, style.Clone()); err != nil {
		return fmt.Errorf("yz plane: %w", err)
	}
	return nil
}

// SetLabels sets the axis labels.
func (p *Plotter) SetLabels(x, y, z string) {
	p.ax.SetLabels(x, y, z)
}

// SetTitle sets the plot title.
func (p *Plotter) SetTitle(title string) {
	p.ax.SetTitle(title)
}
