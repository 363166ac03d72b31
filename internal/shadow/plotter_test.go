package shadow

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlotter(t *testing.T, cfg Config) (*Plotter, *fakeAxes) {
	t.Helper()
	ax := newFakeAxes()
	p, err := NewPlotter(ax, cfg)
	require.NoError(t, err)
	return p, ax
}

func TestNewPlotter_Defaults(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())

	assert.Same(t, ax, p.Axes())
	assert.Equal(t, 0.3, p.AlphaRatio())
	assert.Equal(t, []Plane{PlaneXY, PlaneXZ, PlaneYZ}, p.Planes())
	assert.Equal(t, map[Plane]Position{PlaneXY: PositionMin, PlaneXZ: PositionMin, PlaneYZ: PositionMin}, p.ShadowPositions())
	assert.Empty(t, p.Series())
}

func TestNewPlotter_Custom(t *testing.T) {
	p, _ := newTestPlotter(t, Config{
		Planes:     []Plane{PlaneXY, PlaneXZ},
		Positions:  map[Plane]Position{PlaneXY: PositionMax, PlaneXZ: PositionMin},
		AlphaRatio: 0.5,
	})

	assert.Equal(t, 0.5, p.AlphaRatio())
	assert.Equal(t, []Plane{PlaneXY, PlaneXZ}, p.Planes())
	assert.Equal(t, map[Plane]Position{PlaneXY: PositionMax, PlaneXZ: PositionMin}, p.ShadowPositions())
}

func TestNewPlotter_FillsMissingPositions(t *testing.T) {
	p, _ := newTestPlotter(t, Config{
		Planes:     []Plane{PlaneXY, PlaneYZ},
		Positions:  map[Plane]Position{PlaneXY: PositionMax},
		AlphaRatio: 0.2,
	})

	got := p.ShadowPositions()
	if got[PlaneYZ] != PositionMin {
		t.Errorf("expected yz to default to min, got %q", got[PlaneYZ])
	}
	if got[PlaneXY] != PositionMax {
		t.Errorf("expected xy max, got %q", got[PlaneXY])
	}
}

func TestNewPlotter_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{
			name: "invalid plane",
			cfg:  Config{Planes: []Plane{PlaneXY, "invalid"}, AlphaRatio: 0.3},
			want: ErrInvalidPlane,
		},
		{
			name: "invalid position",
			cfg:  Config{Planes: []Plane{PlaneXY}, Positions: map[Plane]Position{PlaneXY: "invalid"}, AlphaRatio: 0.3},
			want: ErrInvalidPosition,
		},
		{
			name: "invalid anchor",
			cfg:  Config{Planes: []Plane{PlaneXY}, AlphaRatio: 0.3, Anchor: "floor"},
			want: ErrInvalidAnchor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlotter(newFakeAxes(), tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestNewPlotter_AlphaRatioRange(t *testing.T) {
	for _, ratio := range []float64{-0.1, 1.5, math.NaN()} {
		cfg := DefaultConfig()
		cfg.AlphaRatio = ratio
		if _, err := NewPlotter(newFakeAxes(), cfg); err == nil {
			t.Errorf("expected error for alpha ratio %v", ratio)
		}
	}
}

func TestNewPlotter_NilAxes(t *testing.T) {
	if _, err := NewPlotter(nil, DefaultConfig()); err == nil {
		t.Fatal("expected error for nil axes")
	}
}

func TestNewPlotter_CopiesConfig(t *testing.T) {
	cfg := DefaultConfig()
	p, _ := newTestPlotter(t, cfg)

	cfg.Positions[PlaneXY] = PositionMax
	cfg.Planes[0] = PlaneYZ

	if p.ShadowPositions()[PlaneXY] != PositionMin {
		t.Error("plotter positions changed with caller's map")
	}
	if p.Planes()[0] != PlaneXY {
		t.Error("plotter planes changed with caller's slice")
	}
}

func TestPlotter_Plot(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	x := []float64{1, 2, 3}
	y := []float64{1, 2, 3}
	z := []float64{1, 2, 3}

	require.NoError(t, p.Plot(x, y, z, Style{KeyColor: "blue"}))

	require.Len(t, ax.calls, 1)
	assert.Equal(t, "plot", ax.calls[0].Kind)

	series := p.Series()
	require.Len(t, series, 1)
	assert.Equal(t, KindLine, series[0].Kind)
	assert.Equal(t, x, series[0].X)
	assert.Equal(t, y, series[0].Y)
	assert.Equal(t, z, series[0].Z)
	assert.Equal(t, "blue", series[0].Style[KeyColor])
	assert.Nil(t, series[0].ShadowAlphaRatio)
}

func TestPlotter_Scatter(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())

	require.NoError(t, p.Scatter([]float64{1, 2, 3}, []float64{1, 2, 3}, []float64{1, 2, 3},
		Style{KeyColor: "red", KeySize: 50}, WithShadowAlpha(0.4)))

	require.Len(t, ax.calls, 1)
	assert.Equal(t, "scatter", ax.calls[0].Kind)

	series := p.Series()
	require.Len(t, series, 1)
	assert.Equal(t, KindScatter, series[0].Kind)
	assert.Equal(t, "red", series[0].Style[KeyColor])
	assert.Equal(t, 50, series[0].Style[KeySize])
	require.NotNil(t, series[0].ShadowAlphaRatio)
	assert.Equal(t, 0.4, *series[0].ShadowAlphaRatio)
}

func TestPlotter_PlotMismatchedLengths(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())

	err := p.Plot([]float64{1, 2, 3}, []float64{1, 2}, []float64{1, 2, 3}, nil)
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
	if len(p.Series()) != 0 {
		t.Errorf("expected no series recorded after failed draw, got %d", len(p.Series()))
	}
	if len(ax.calls) != 0 {
		t.Errorf("expected no draw calls, got %d", len(ax.calls))
	}
}

func TestPlotter_InvalidShadowAlpha(t *testing.T) {
	for _, ratio := range []float64{-0.5, 2, math.NaN()} {
		p, ax := newTestPlotter(t, DefaultConfig())
		x := []float64{1, 2}
		if err := p.Scatter(x, x, x, nil, WithShadowAlpha(ratio)); err == nil {
			t.Errorf("expected error for shadow alpha %v", ratio)
		}
		if len(ax.calls) != 0 || len(p.Series()) != 0 {
			t.Errorf("expected nothing drawn for shadow alpha %v, got %d calls", ratio, len(ax.calls))
		}
	}
}

func TestNewPlotter_ZeroAlphaRatioKept(t *testing.T) {
	p, _ := newTestPlotter(t, Config{Planes: []Plane{PlaneXY}})
	assert.Equal(t, 0.0, p.AlphaRatio())
}

func TestPlotter_RecordIsolatedFromCaller(t *testing.T) {
	p, _ := newTestPlotter(t, DefaultConfig())
	x := []float64{1, 2}
	style := Style{KeyColor: "blue"}
	require.NoError(t, p.Plot(x, []float64{3, 4}, []float64{5, 6}, style))

	x[0] = 100
	style[KeyColor] = "red"

	s := p.Series()[0]
	assert.Equal(t, 1.0, s.X[0])
	assert.Equal(t, "blue", s.Style[KeyColor])

	// Mutating the returned copy must not leak back either.
	s.Z[0] = -1
	assert.Equal(t, 5.0, p.Series()[0].Z[0])
}

func TestPlotShadows_NoData(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	require.NoError(t, p.PlotShadows())
	assert.Empty(t, ax.calls)
}

func TestPlotShadows_OnePrimitivePerPlane(t *testing.T) {
	tests := []struct {
		name   string
		planes []Plane
	}{
		{"all planes", []Plane{PlaneXY, PlaneXZ, PlaneYZ}},
		{"two planes", []Plane{PlaneXY, PlaneYZ}},
		{"one plane", []Plane{PlaneXZ}},
		{"no planes", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ax := newTestPlotter(t, Config{Planes: tt.planes, AlphaRatio: 0.3})
			require.NoError(t, p.Plot([]float64{1, 2, 3}, []float64{1, 2, 3}, []float64{1, 2, 3}, Style{KeyColor: "blue"}))
			require.NoError(t, p.Scatter([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, Style{KeyColor: "red"}))

			before := len(ax.calls)
			require.NoError(t, p.PlotShadows())

			want := 2 * len(tt.planes)
			if got := len(ax.calls) - before; got != want {
				t.Errorf("expected %d shadow primitives, got %d", want, got)
			}
		})
	}
}

func TestPlotShadows_KindAndOrder(t *testing.T) {
	p, ax := newTestPlotter(t, Config{Planes: []Plane{PlaneXY, PlaneYZ}, AlphaRatio: 0.5})
	require.NoError(t, p.Scatter([]float64{1}, []float64{2}, []float64{3}, Style{KeyColor: "red"}))
	require.NoError(t, p.Plot([]float64{1, 2}, []float64{2, 3}, []float64{3, 4}, Style{KeyColor: "blue"}))
	ax.calls = nil

	require.NoError(t, p.PlotShadows())

	var kinds []string
	for _, c := range ax.calls {
		kinds = append(kinds, c.Kind)
	}
	want := []string{"scatter", "scatter", "plot", "plot"}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("shadow kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestPlotShadows_ProjectedCoordinates(t *testing.T) {
	p, ax := newTestPlotter(t, Config{
		Planes:     []Plane{PlaneXY, PlaneXZ, PlaneYZ},
		Positions:  map[Plane]Position{PlaneXY: PositionMin, PlaneXZ: PositionMax, PlaneYZ: PositionMin},
		AlphaRatio: 0.3,
	})
	x := []float64{1, 2, 3}
	y := []float64{4, 6, 5}
	z := []float64{-1, 0, 7}
	require.NoError(t, p.Plot(x, y, z, nil))
	ax.calls = nil

	require.NoError(t, p.PlotShadows())
	require.Len(t, ax.calls, 3)

	want := []drawCall{
		{Kind: "plot", X: x, Y: y, Z: []float64{-1, -1, -1}},
		{Kind: "plot", X: x, Y: []float64{6, 6, 6}, Z: z},
		{Kind: "plot", X: []float64{1, 1, 1}, Y: y, Z: z},
	}
	for i := range want {
		got := ax.calls[i]
		got.Style = nil
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("shadow %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestPlotShadows_LimitsAnchor(t *testing.T) {
	p, ax := newTestPlotter(t, Config{
		Planes:     []Plane{PlaneXY, PlaneYZ},
		Positions:  map[Plane]Position{PlaneXY: PositionMin, PlaneYZ: PositionMax},
		AlphaRatio: 0.3,
		Anchor:     AnchorLimits,
	})
	ax.limits = [3]Range{{-2, 2}, {-3, 3}, {-4, 4}}
	require.NoError(t, p.Scatter([]float64{1, 0}, []float64{1, 0}, []float64{1, 0}, nil))
	ax.calls = nil

	require.NoError(t, p.PlotShadows())
	require.Len(t, ax.calls, 2)
	assert.Equal(t, []float64{-4, -4}, ax.calls[0].Z)
	assert.Equal(t, []float64{2, 2}, ax.calls[1].X)
}

func TestPlotShadows_Alpha(t *testing.T) {
	tests := []struct {
		name     string
		style    Style
		opts     []SeriesOption
		wantAlph float64
	}{
		{"default ratio, opaque", Style{}, nil, 0.3},
		{"default ratio, translucent", Style{KeyAlpha: 0.8}, nil, 0.8 * 0.3},
		{"override", Style{KeyAlpha: 0.5}, []SeriesOption{WithShadowAlpha(0.4)}, 0.5 * 0.4},
		{"override zero", Style{}, []SeriesOption{WithShadowAlpha(0)}, 0},
		{"integer alpha", Style{KeyAlpha: 1}, []SeriesOption{WithShadowAlpha(0.25)}, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ax := newTestPlotter(t, Config{Planes: []Plane{PlaneXY, PlaneXZ}, AlphaRatio: 0.3})
			require.NoError(t, p.Plot([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, tt.style, tt.opts...))
			ax.calls = nil

			require.NoError(t, p.PlotShadows())
			for _, c := range ax.calls {
				assert.InDelta(t, tt.wantAlph, c.Style[KeyAlpha], 1e-12)
			}
		})
	}
}

func TestPlotShadows_PropagatesDrawError(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	require.NoError(t, p.Plot([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, nil))
	ax.failAt = 2 // second shadow

	err := p.PlotShadows()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "series 0 on xz")
	assert.Len(t, ax.calls, 2)
}

func TestPlotShadows_CalledTwiceDuplicates(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	require.NoError(t, p.Plot([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, nil))
	ax.calls = nil

	require.NoError(t, p.PlotShadows())
	require.NoError(t, p.PlotShadows())
	assert.Len(t, ax.calls, 6)
}

func TestSetShadowPositions(t *testing.T) {
	p, _ := newTestPlotter(t, DefaultConfig())

	require.NoError(t, p.SetShadowPositions(map[Plane]Position{PlaneXY: PositionMax}))

	want := map[Plane]Position{PlaneXY: PositionMax, PlaneXZ: PositionMin, PlaneYZ: PositionMin}
	if diff := cmp.Diff(want, p.ShadowPositions()); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestSetShadowPositions_UnconfiguredPlane(t *testing.T) {
	p, ax := newTestPlotter(t, Config{Planes: []Plane{PlaneXY}, AlphaRatio: 0.3})

	// Plane names are not checked against the configured set.
	require.NoError(t, p.SetShadowPositions(map[Plane]Position{PlaneYZ: PositionMax}))
	assert.Equal(t, PositionMax, p.ShadowPositions()[PlaneYZ])

	// The extra entry does not add shadows.
	require.NoError(t, p.Plot([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, nil))
	ax.calls = nil
	require.NoError(t, p.PlotShadows())
	assert.Len(t, ax.calls, 1)
}

func TestSetShadowPositions_InvalidPosition(t *testing.T) {
	p, _ := newTestPlotter(t, DefaultConfig())

	err := p.SetShadowPositions(map[Plane]Position{PlaneXY: PositionMax, PlaneXZ: "middle"})
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("expected ErrInvalidPosition, got %v", err)
	}
	// Nothing is merged when any value is invalid.
	assert.Equal(t, PositionMin, p.ShadowPositions()[PlaneXY])
}

func TestPlotAxes(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	ax.limits = [3]Range{{0, 10}, {-2, 2}, {1, 5}}

	require.NoError(t, p.PlotAxes(0.5))
	require.Len(t, ax.calls, 3)

	want := []drawCall{
		{Kind: "plot", X: []float64{0, 5}, Y: []float64{-2, -2}, Z: []float64{1, 1}},
		{Kind: "plot", X: []float64{0, 0}, Y: []float64{-2, 0}, Z: []float64{1, 1}},
		{Kind: "plot", X: []float64{0, 0}, Y: []float64{-2, -2}, Z: []float64{1, 3}},
	}
	for i := range want {
		got := ax.calls[i]
		assert.Equal(t, "black", got.Style[KeyColor])
		assert.Equal(t, 2.0, got.Style[KeyLineWidth])
		got.Style = nil
		if diff := cmp.Diff(want[i], got); diff != "" {
			t.Errorf("axis %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	// Axes are not recorded as series.
	assert.Empty(t, p.Series())
}

func TestPlotPlanes(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())
	ax.limits = [3]Range{{-1, 1}, {-2, 2}, {-3, 3}}

	require.NoError(t, p.PlotPlanes())
	require.Len(t, ax.calls, 2)

	floor := ax.calls[0]
	assert.Equal(t, "surface", floor.Kind)
	assert.Equal(t, []float64{-3, -3, -3, -3}, floor.Z)
	assert.Equal(t, 0.1, floor.Style[KeyAlpha])
	assert.Equal(t, "gray", floor.Style[KeyColor])

	wall := ax.calls[1]
	assert.Equal(t, []float64{-1, -1, -1, -1}, wall.X)
	assert.ElementsMatch(t, []float64{-2, 2, -2, 2}, wall.Y)
}

func TestSetLabelsAndTitle(t *testing.T) {
	p, ax := newTestPlotter(t, DefaultConfig())

	p.SetLabels("X Label", "Y Label", "Z Label")
	p.SetTitle("Test Title")

	assert.Equal(t, [3]string{"X Label", "Y Label", "Z Label"}, ax.labels)
	assert.Equal(t, "Test Title", ax.title)
}
