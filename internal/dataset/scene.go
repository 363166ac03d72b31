package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/banshee-data/shadowplot/internal/config"
	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/monitoring"
	"github.com/banshee-data/shadowplot/internal/security"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

// Scene is everything needed to draw one figure: the view, the shadow
// configuration and the series.
type Scene struct {
	Name   string
	Title  string
	Labels [3]string
	// Limits fixes the x, y and z ranges; nil entries autoscale.
	Limits    [3]*shadow.Range
	Elevation float64
	Azimuth   float64
	AxisOff   bool

	Shadow shadow.Config
	Series []SceneSeries

	// AxesPartial > 0 draws the axis lines covering that fraction of each span.
	AxesPartial float64
	Planes      bool
	// FinalPositions is applied with SetShadowPositions once drawing is done.
	FinalPositions map[shadow.Plane]shadow.Position
}

// SceneSeries is one series of a Scene.
type SceneSeries struct {
	Kind        shadow.Kind
	X, Y, Z     []float64
	Style       shadow.Style
	ShadowAlpha *float64
}

type limiter interface {
	SetXLim(lo, hi float64)
	SetYLim(lo, hi float64)
	SetZLim(lo, hi float64)
}

type viewer interface {
	ViewInit(elev, azim float64)
}

type axisHider interface {
	SetAxisOff()
}

// Setup applies the scene's limits, view and axis visibility to ax, as far
// as the backend supports them.
func (s *Scene) Setup(ax shadow.Axes) {
	if l, ok := ax.(limiter); ok {
		set := [3]func(lo, hi float64){l.SetXLim, l.SetYLim, l.SetZLim}
		for i, r := range s.Limits {
			if r != nil {
				set[i](r.Min, r.Max)
			}
		}
	}
	if v, ok := ax.(viewer); ok {
		v.ViewInit(s.Elevation, s.Azimuth)
	}
	if h, ok := ax.(axisHider); ok && s.AxisOff {
		h.SetAxisOff()
	}
}

// Draw records every series, then the shadows and decorations, on p.
func (s *Scene) Draw(p *shadow.Plotter) error {
	for i, ser := range s.Series {
		var opts []shadow.SeriesOption
		if ser.ShadowAlpha != nil {
			opts = append(opts, shadow.WithShadowAlpha(*ser.ShadowAlpha))
		}

		var err error
		switch ser.Kind {
		case shadow.KindScatter:
			err = p.Scatter(ser.X, ser.Y, ser.Z, ser.Style, opts...)
		default:
			err = p.Plot(ser.X, ser.Y, ser.Z, ser.Style, opts...)
		}
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}

	if err := p.PlotShadows(); err != nil {
		return err
	}
	if s.AxesPartial > 0 {
		if err := p.PlotAxes(s.AxesPartial); err != nil {
			return fmt.Errorf("axes: %w", err)
		}
	}
	if s.Planes {
		if err := p.PlotPlanes(); err != nil {
			return fmt.Errorf("planes: %w", err)
		}
	}
	p.SetLabels(s.Labels[0], s.Labels[1], s.Labels[2])
	if s.Title != "" {
		p.SetTitle(s.Title)
	}

	if len(s.FinalPositions) > 0 {
		monitoring.Debugf("scene %s: shadow positions before update %v", s.Name, p.ShadowPositions())
		if err := p.SetShadowPositions(s.FinalPositions); err != nil {
			return err
		}
		monitoring.Debugf("scene %s: shadow positions after update %v", s.Name, p.ShadowPositions())
	}
	return nil
}

// Demos lists the built-in scene names.
func Demos() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var demos = map[string]func(seed uint64) Scene{
	"basic":    Basic,
	"advanced": Advanced,
}

// Demo returns the named built-in scene.
func Demo(name string, seed uint64) (Scene, error) {
	build, ok := demos[name]
	if !ok {
		return Scene{}, fmt.Errorf("unknown demo %q, want one of %v", name, Demos())
	}
	return build(seed), nil
}

func fixed(lo, hi float64) [3]*shadow.Range {
	return [3]*shadow.Range{{Min: lo, Max: hi}, {Min: lo, Max: hi}, {Min: lo, Max: hi}}
}

func ratio(v float64) *float64 { return &v }

// Basic is a spiral and a normal point cloud with faint shadows on the floor
// and the left wall. Shadows sit at the axis limits, on the drawn planes.
func Basic(seed uint64) Scene {
	sx, sy, sz := Spiral(100, 2, 1, 0, 1)
	cx, cy, cz := NormalCloud(20, seed)

	return Scene{
		Name:      "basic",
		Labels:    [3]string{"X", "Y", "Z"},
		Limits:    fixed(-5, 5),
		Elevation: 30,
		Azimuth:   -60,
		AxisOff:   true,
		Shadow: shadow.Config{
			Planes:     []shadow.Plane{shadow.PlaneXY, shadow.PlaneYZ},
			Positions:  map[shadow.Plane]shadow.Position{shadow.PlaneXY: shadow.PositionMin, shadow.PlaneYZ: shadow.PositionMin},
			AlphaRatio: 0.14,
			Anchor:     shadow.AnchorLimits,
		},
		Series: []SceneSeries{
			{Kind: shadow.KindLine, X: sx, Y: sy, Z: sz, Style: shadow.Style{shadow.KeyColor: "blue", shadow.KeyLineWidth: 2, shadow.KeyLabel: "3D Spiral"}},
			{Kind: shadow.KindScatter, X: cx, Y: cy, Z: cz, Style: shadow.Style{shadow.KeyColor: "red", shadow.KeySize: 50, shadow.KeyLabel: "Random Points"}},
		},
		AxesPartial: 0.5,
		Planes:      true,
	}
}

// Advanced mixes a spiral, a uniform cloud and a sampled surface, each with
// its own shadow alpha, and moves the xy and xz shadows once drawn.
func Advanced(seed uint64) Scene {
	sx, sy, sz := Spiral(200, 3, 2, -3, 3)
	cx, cy, cz := UniformCloud(30, -2, 2, seed)
	ux, uy, uz := SurfacePoints(20, -2, 2, func(x, y float64) float64 {
		return 0.5 * math.Sin(x) * math.Cos(y)
	})

	return Scene{
		Name:      "advanced",
		Title:     "Advanced 3D Plot with Multiple Shadow Configurations",
		Labels:    [3]string{"X Axis", "Y Axis", "Z Axis"},
		Limits:    fixed(-3, 3),
		Elevation: 25,
		Azimuth:   45,
		AxisOff:   true,
		Shadow: shadow.Config{
			Planes: []shadow.Plane{shadow.PlaneXY, shadow.PlaneXZ, shadow.PlaneYZ},
			Positions: map[shadow.Plane]shadow.Position{
				shadow.PlaneXY: shadow.PositionMin,
				shadow.PlaneXZ: shadow.PositionMax,
				shadow.PlaneYZ: shadow.PositionMin,
			},
			AlphaRatio: 0.2,
			Anchor:     shadow.AnchorLimits,
		},
		Series: []SceneSeries{
			{Kind: shadow.KindLine, X: sx, Y: sy, Z: sz, ShadowAlpha: ratio(0.3),
				Style: shadow.Style{shadow.KeyColor: "blue", shadow.KeyLineWidth: 3, shadow.KeyLabel: "Spiral"}},
			{Kind: shadow.KindScatter, X: cx, Y: cy, Z: cz, ShadowAlpha: ratio(0.4),
				Style: shadow.Style{shadow.KeyColor: "red", shadow.KeySize: 80, shadow.KeyAlpha: 0.8, shadow.KeyLabel: "Random Points"}},
			{Kind: shadow.KindScatter, X: ux, Y: uy, Z: uz, ShadowAlpha: ratio(0.25),
				Style: shadow.Style{shadow.KeyColor: "green", shadow.KeySize: 20, shadow.KeyAlpha: 0.6, shadow.KeyLabel: "Surface Points"}},
		},
		AxesPartial:    0.8,
		Planes:         true,
		FinalPositions: map[shadow.Plane]shadow.Position{shadow.PlaneXY: shadow.PositionMax, shadow.PlaneXZ: shadow.PositionMin},
	}
}

// FromConfig builds a Scene from a loaded config, reading each series' CSV
// file from fs. File paths resolve against dir and must stay inside it.
func FromConfig(fs fsutil.FileSystem, cfg *config.PlotConfig, dir string) (Scene, error) {
	sc, err := cfg.ShadowConfig()
	if err != nil {
		return Scene{}, err
	}

	x, y, z := cfg.GetLabels()
	s := Scene{
		Name:      "config",
		Title:     cfg.GetTitle(),
		Labels:    [3]string{x, y, z},
		Elevation: cfg.GetElevation(),
		Azimuth:   cfg.GetAzimuth(),
		AxisOff:   cfg.GetAxisOff(),
		Shadow:    sc,
		Planes:    cfg.GetDrawPlanes(),
	}
	if cfg.GetDrawAxes() {
		s.AxesPartial = cfg.GetAxesPartial()
	}
	for i, lim := range [3][]float64{cfg.XLim, cfg.YLim, cfg.ZLim} {
		if len(lim) == 2 {
			s.Limits[i] = &shadow.Range{Min: lim[0], Max: lim[1]}
		}
	}

	for i, sercfg := range cfg.Series {
		path, err := security.ResolveWithin(dir, sercfg.File)
		if err != nil {
			return Scene{}, fmt.Errorf("series %d: %w", i, err)
		}
		sx, sy, sz, err := LoadCSVFile(fs, path)
		if err != nil {
			return Scene{}, fmt.Errorf("series %d: %w", i, err)
		}
		monitoring.Debugf("loaded %d points from %s", len(sx), path)
		s.Series = append(s.Series, SceneSeries{
			Kind:        sercfg.GetKind(),
			X:           sx,
			Y:           sy,
			Z:           sz,
			Style:       sercfg.Style(),
			ShadowAlpha: sercfg.ShadowAlphaRatio,
		})
	}
	return s, nil
}
