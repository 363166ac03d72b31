package dataset

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/shadowplot/internal/config"
	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/render/echarts"
	"github.com/banshee-data/shadowplot/internal/render/vgplot"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

func draw(t *testing.T, s Scene) (*vgplot.Axes3D, *shadow.Plotter) {
	t.Helper()
	ax := vgplot.New(vgplot.DefaultOptions())
	s.Setup(ax)
	p, err := shadow.NewPlotter(ax, s.Shadow)
	require.NoError(t, err)
	require.NoError(t, s.Draw(p))
	return ax, p
}

func TestDemo(t *testing.T) {
	assert.Equal(t, []string{"advanced", "basic"}, Demos())

	_, err := Demo("fancy", 1)
	assert.Error(t, err)
}

func TestBasic(t *testing.T) {
	s, err := Demo("basic", 42)
	require.NoError(t, err)
	ax, p := draw(t, s)

	// 2 series, 2 shadows each, 3 axis lines, 2 planes.
	assert.Equal(t, 2+4+3+2, ax.Len())
	assert.Equal(t, 0.14, p.AlphaRatio())
	assert.Equal(t, []shadow.Plane{shadow.PlaneXY, shadow.PlaneYZ}, p.Planes())

	x, y, z := ax.Limits()
	for _, r := range []shadow.Range{x, y, z} {
		assert.Equal(t, shadow.Range{Min: -5, Max: 5}, r)
	}
}

func TestAdvanced(t *testing.T) {
	s := Advanced(42)
	ax, p := draw(t, s)

	// 3 series, 3 shadows each, 3 axis lines, 2 planes.
	assert.Equal(t, 3+9+3+2, ax.Len())
	assert.Len(t, s.Series[2].X, 400)

	// Positions are moved after drawing; yz keeps its original value.
	assert.Equal(t, map[shadow.Plane]shadow.Position{
		shadow.PlaneXY: shadow.PositionMax,
		shadow.PlaneXZ: shadow.PositionMin,
		shadow.PlaneYZ: shadow.PositionMin,
	}, p.ShadowPositions())

	series := p.Series()
	require.Len(t, series, 3)
	require.NotNil(t, series[1].ShadowAlphaRatio)
	assert.Equal(t, 0.4, *series[1].ShadowAlphaRatio)
}

func TestAdvanced_Deterministic(t *testing.T) {
	a, b := Advanced(7), Advanced(7)
	assert.Equal(t, a.Series[1].X, b.Series[1].X)
}

func TestScene_EchartsBackend(t *testing.T) {
	s := Basic(1)
	ax := echarts.New(echarts.DefaultOptions())
	s.Setup(ax)
	p, err := shadow.NewPlotter(ax, s.Shadow)
	require.NoError(t, err)
	require.NoError(t, s.Draw(p))

	assert.Equal(t, 2+4+3+2, ax.Len())
	x, _, _ := ax.Limits()
	assert.Equal(t, shadow.Range{Min: -5, Max: 5}, x)

	// Shadows lie on the walls PlotPlanes draws: z = zmin and x = xmin.
	series := ax.Chart().MultiSeries
	assertCoord(t, series[2].Data, 2, -5)
	assertCoord(t, series[3].Data, 0, -5)
}

func TestAdvanced_ShadowsAtLimits(t *testing.T) {
	s := Advanced(42)
	ax := echarts.New(echarts.DefaultOptions())
	s.Setup(ax)
	p, err := shadow.NewPlotter(ax, s.Shadow)
	require.NoError(t, err)
	require.NoError(t, s.Draw(p))

	// Spiral shadows: xy at zmin, xz at ymax, yz at xmin.
	series := ax.Chart().MultiSeries
	assertCoord(t, series[3].Data, 2, -3)
	assertCoord(t, series[4].Data, 1, 3)
	assertCoord(t, series[5].Data, 0, -3)
}

func assertCoord(t *testing.T, data interface{}, axis int, want float64) {
	t.Helper()
	points, ok := data.([]opts.Chart3DData)
	require.True(t, ok, "unexpected series data %T", data)
	require.NotEmpty(t, points)
	for i, d := range points {
		assert.Equal(t, want, d.Value[axis], "point %d", i)
	}
}

func TestFromConfig(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.AddFile("/data/line.csv", []byte("x,y,z\n0,0,0\n1,1,1\n"))
	mfs.AddFile("/data/points.csv", []byte("1,2,3\n"))
	mfs.AddFile("/data/plot.yaml", []byte(`
title: From config
x_lim: [-2, 2]
shadow_planes: [xy]
draw_axes: true
axes_partial: 0.5
series:
  - file: line.csv
    color: blue
  - file: /data/points.csv
    kind: scatter
    shadow_alpha_ratio: 0.5
`))

	cfg, err := config.LoadPlotConfig(mfs, "/data/plot.yaml")
	require.NoError(t, err)

	s, err := FromConfig(mfs, cfg, "/data")
	require.NoError(t, err)

	assert.Equal(t, "From config", s.Title)
	assert.Equal(t, [3]string{"X", "Y", "Z"}, s.Labels)
	require.NotNil(t, s.Limits[0])
	assert.Equal(t, shadow.Range{Min: -2, Max: 2}, *s.Limits[0])
	assert.Nil(t, s.Limits[1])
	assert.Equal(t, 0.5, s.AxesPartial)
	assert.False(t, s.Planes)

	require.Len(t, s.Series, 2)
	assert.Equal(t, shadow.KindLine, s.Series[0].Kind)
	assert.Equal(t, []float64{0, 1}, s.Series[0].X)
	assert.Equal(t, shadow.KindScatter, s.Series[1].Kind)
	require.NotNil(t, s.Series[1].ShadowAlpha)
	assert.Equal(t, 0.5, *s.Series[1].ShadowAlpha)

	ax, _ := draw(t, s)
	// 2 series, 1 shadow each, 3 axis lines.
	assert.Equal(t, 2+2+3, ax.Len())
}

func TestFromConfig_RejectsEscapingPaths(t *testing.T) {
	mfs := fsutil.NewMemoryFileSystem()
	mfs.AddFile("/secret.csv", []byte("1,2,3\n"))
	cfg := &config.PlotConfig{Series: []config.SeriesConfig{{File: "../secret.csv"}}}

	_, err := FromConfig(mfs, cfg, "/data")
	assert.ErrorContains(t, err, "path traversal")
}

func TestFromConfig_MissingFile(t *testing.T) {
	cfg := &config.PlotConfig{Series: []config.SeriesConfig{{File: "nope.csv"}}}
	_, err := FromConfig(fsutil.NewMemoryFileSystem(), cfg, ".")
	assert.ErrorContains(t, err, "series 0")
}
