// Command shadowplot renders 3D line and scatter data with their shadows
// projected onto the bounding planes. The figure comes from a config file
// (-config) or a built-in demo (-demo).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/monitoring"
	"github.com/banshee-data/shadowplot/internal/version"
)

var (
	configPath  = flag.String("config", "", "Plot config file (.json, .toml, .yaml)")
	demo        = flag.String("demo", "", "Built-in demo scene to render (basic, advanced)")
	backend     = flag.String("backend", "", "Output backend: png, svg, pdf or html (default from config, else png)")
	outDir      = flag.String("out", "plots", "Directory the run directory is created in")
	width       = flag.Float64("width", 0, "Figure width in inches, or hundreds of pixels for html (default from config)")
	height      = flag.Float64("height", 0, "Figure height in inches, or hundreds of pixels for html (default from config)")
	seed        = flag.Uint64("seed", 42, "Random seed for demo data")
	verbose     = flag.Bool("verbose", false, "Enable debug logging")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

// newLogger writes timestamped log lines to w at level and above.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("shadowplot", version.String())
		return
	}

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)
	monitoring.SetLogger(logger.Infof)
	monitoring.SetDebugLogger(logger.Debugf)

	opts := runOptions{
		ConfigPath: *configPath,
		Demo:       *demo,
		Backend:    *backend,
		OutDir:     *outDir,
		Width:      *width,
		Height:     *height,
		Seed:       *seed,
		RunID:      uuid.NewString(),
		Now:        time.Now(),
	}
	if err := opts.validate(); err != nil {
		logger.Error(err.Error())
		flag.Usage()
		os.Exit(2)
	}

	path, err := run(fsutil.OSFileSystem{}, opts)
	if err != nil {
		logger.Fatalf("shadowplot: %v", err)
	}
	logger.Info("done", "output", path)
}
