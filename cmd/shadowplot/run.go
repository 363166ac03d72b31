package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/banshee-data/shadowplot/internal/config"
	"github.com/banshee-data/shadowplot/internal/dataset"
	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/monitoring"
	"github.com/banshee-data/shadowplot/internal/render/echarts"
	"github.com/banshee-data/shadowplot/internal/render/vgplot"
	"github.com/banshee-data/shadowplot/internal/security"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

type runOptions struct {
	ConfigPath string
	Demo       string
	Backend    string
	OutDir     string
	Width      float64
	Height     float64
	Seed       uint64
	RunID      string
	Now        time.Time
}

func (o runOptions) validate() error {
	switch {
	case o.ConfigPath == "" && o.Demo == "":
		return fmt.Errorf("one of -config or -demo is required")
	case o.ConfigPath != "" && o.Demo != "":
		return fmt.Errorf("-config and -demo are mutually exclusive")
	case o.Width < 0 || o.Height < 0:
		return fmt.Errorf("-width and -height must not be negative")
	case o.Backend != "" && !isBackend(o.Backend):
		return fmt.Errorf("unknown backend %q, want one of %v", o.Backend, config.Backends)
	}
	return nil
}

func isBackend(b string) bool {
	for _, v := range config.Backends {
		if v == b {
			return true
		}
	}
	return false
}

// FormatTimestamp formats t for use in run directory names.
func FormatTimestamp(t time.Time) string {
	return t.Format("20060102_150405")
}

// makeRunDir returns <base>/<scene>/<timestamp>_<short id>.
func makeRunDir(base, scene string, now time.Time, runID string) string {
	short := runID
	if len(short) > 8 {
		short = short[:8]
	}
	return filepath.Join(base, scene, FormatTimestamp(now)+"_"+short)
}

// run builds the scene, draws it on the selected backend and writes the
// figure under a fresh run directory. It returns the written path.
func run(fs fsutil.FileSystem, o runOptions) (string, error) {
	cfg := config.EmptyPlotConfig()
	var scene dataset.Scene
	if o.ConfigPath != "" {
		var err error
		cfg, err = config.LoadPlotConfig(fs, o.ConfigPath)
		if err != nil {
			return "", err
		}
		scene, err = dataset.FromConfig(fs, cfg, filepath.Dir(o.ConfigPath))
		if err != nil {
			return "", err
		}
		scene.Name = security.SanitizeFilename(strings.TrimSuffix(filepath.Base(o.ConfigPath), filepath.Ext(o.ConfigPath)))
	} else {
		var err error
		scene, err = dataset.Demo(o.Demo, o.Seed)
		if err != nil {
			return "", err
		}
	}

	backend := o.Backend
	if backend == "" {
		backend = cfg.GetBackend()
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = cfg.GetWidth()
	}
	if h == 0 {
		h = cfg.GetHeight()
	}

	dir := makeRunDir(o.OutDir, scene.Name, o.Now, o.RunID)
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, scene.Name+"."+backend)
	monitoring.Debugf("rendering scene %s with %d series to %s", scene.Name, len(scene.Series), path)

	if backend == "html" {
		ax := echarts.New(echarts.Options{
			PageTitle: scene.Name,
			Width:     fmt.Sprintf("%dpx", int(w*100)),
			Height:    fmt.Sprintf("%dpx", int(h*100)),
			Theme:     "white",
		})
		if err := drawScene(&scene, ax); err != nil {
			return "", err
		}
		return path, ax.Save(fs, path)
	}

	ax := vgplot.New(vgplot.Options{
		Elevation: scene.Elevation,
		Azimuth:   scene.Azimuth,
		AxisOff:   scene.AxisOff,
	})
	if err := drawScene(&scene, ax); err != nil {
		return "", err
	}
	return path, ax.Save(fs, path, vg.Length(w)*vg.Inch, vg.Length(h)*vg.Inch)
}

func drawScene(scene *dataset.Scene, ax shadow.Axes) error {
	scene.Setup(ax)
	p, err := shadow.NewPlotter(ax, scene.Shadow)
	if err != nil {
		return err
	}
	if err := scene.Draw(p); err != nil {
		return fmt.Errorf("draw %s: %w", scene.Name, err)
	}
	return nil
}
