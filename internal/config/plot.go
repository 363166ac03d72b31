package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/banshee-data/shadowplot/internal/fsutil"
	"github.com/banshee-data/shadowplot/internal/shadow"
)

// MaxFileSize caps config files read by LoadPlotConfig.
const MaxFileSize = 1 * 1024 * 1024 // 1MB

// Backends accepted in the backend field.
var Backends = []string{"png", "svg", "pdf", "html"}

// PlotConfig describes one figure: its view, its shadows and the series to
// load. Every scalar is a pointer so an omitted field falls back to the
// default returned by its getter, and partial configs are safe.
type PlotConfig struct {
	Backend *string  `json:"backend,omitempty" toml:"backend,omitempty" yaml:"backend,omitempty"`
	Title   *string  `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	XLabel  *string  `json:"x_label,omitempty" toml:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel  *string  `json:"y_label,omitempty" toml:"y_label,omitempty" yaml:"y_label,omitempty"`
	ZLabel  *string  `json:"z_label,omitempty" toml:"z_label,omitempty" yaml:"z_label,omitempty"`
	Width   *float64 `json:"width,omitempty" toml:"width,omitempty" yaml:"width,omitempty"`   // inches, or pixels/100 for html
	Height  *float64 `json:"height,omitempty" toml:"height,omitempty" yaml:"height,omitempty"` // inches, or pixels/100 for html

	// Axis limits as [lo, hi]. Omitted axes autoscale.
	XLim []float64 `json:"x_lim,omitempty" toml:"x_lim,omitempty" yaml:"x_lim,omitempty"`
	YLim []float64 `json:"y_lim,omitempty" toml:"y_lim,omitempty" yaml:"y_lim,omitempty"`
	ZLim []float64 `json:"z_lim,omitempty" toml:"z_lim,omitempty" yaml:"z_lim,omitempty"`

	Elevation *float64 `json:"elevation,omitempty" toml:"elevation,omitempty" yaml:"elevation,omitempty"`
	Azimuth   *float64 `json:"azimuth,omitempty" toml:"azimuth,omitempty" yaml:"azimuth,omitempty"`
	AxisOff   *bool    `json:"axis_off,omitempty" toml:"axis_off,omitempty" yaml:"axis_off,omitempty"`

	// Shadow params
	ShadowAlphaRatio *float64          `json:"shadow_alpha_ratio,omitempty" toml:"shadow_alpha_ratio,omitempty" yaml:"shadow_alpha_ratio,omitempty"`
	ShadowPlanes     []string          `json:"shadow_planes,omitempty" toml:"shadow_planes,omitempty" yaml:"shadow_planes,omitempty"`
	ShadowPositions  map[string]string `json:"shadow_positions,omitempty" toml:"shadow_positions,omitempty" yaml:"shadow_positions,omitempty"`
	ShadowAnchor     *string           `json:"shadow_anchor,omitempty" toml:"shadow_anchor,omitempty" yaml:"shadow_anchor,omitempty"`

	// Decorations
	DrawAxes    *bool    `json:"draw_axes,omitempty" toml:"draw_axes,omitempty" yaml:"draw_axes,omitempty"`
	AxesPartial *float64 `json:"axes_partial,omitempty" toml:"axes_partial,omitempty" yaml:"axes_partial,omitempty"`
	DrawPlanes  *bool    `json:"draw_planes,omitempty" toml:"draw_planes,omitempty" yaml:"draw_planes,omitempty"`

	Series []SeriesConfig `json:"series,omitempty" toml:"series,omitempty" yaml:"series,omitempty"`
}

// SeriesConfig is one series read from a CSV file.
type SeriesConfig struct {
	File string `json:"file" toml:"file" yaml:"file"`
	// Kind is "line" or "scatter". Empty means line.
	Kind             string   `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty"`
	Label            *string  `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Color            *string  `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`
	Alpha            *float64 `json:"alpha,omitempty" toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	LineWidth        *float64 `json:"line_width,omitempty" toml:"line_width,omitempty" yaml:"line_width,omitempty"`
	LineStyle        *string  `json:"line_style,omitempty" toml:"line_style,omitempty" yaml:"line_style,omitempty"`
	Marker           *string  `json:"marker,omitempty" toml:"marker,omitempty" yaml:"marker,omitempty"`
	MarkerSize       *float64 `json:"marker_size,omitempty" toml:"marker_size,omitempty" yaml:"marker_size,omitempty"`
	ShadowAlphaRatio *float64 `json:"shadow_alpha_ratio,omitempty" toml:"shadow_alpha_ratio,omitempty" yaml:"shadow_alpha_ratio,omitempty"`
}

// EmptyPlotConfig returns a PlotConfig with all fields unset.
func EmptyPlotConfig() *PlotConfig {
	return &PlotConfig{}
}

// LoadPlotConfig reads a PlotConfig from fs. The format follows the file
// extension: .json, .toml, .yaml or .yml.
func LoadPlotConfig(fs fsutil.FileSystem, path string) (*PlotConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := strings.ToLower(filepath.Ext(cleanPath))
	switch ext {
	case ".json", ".toml", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .toml, .yaml or .yml extension, got %q", ext)
	}

	fileInfo, err := fs.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), MaxFileSize)
	}

	data, err := fs.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParsePlotConfig(data, ext)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ParsePlotConfig decodes data in the format named by ext without
// validating it. Unknown keys are rejected.
func ParsePlotConfig(data []byte, ext string) (*PlotConfig, error) {
	cfg := EmptyPlotConfig()
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	case "toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown config keys: %v", undecoded)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to EOF; treat it as an empty config.
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *PlotConfig) Validate() error {
	if c.Backend != nil {
		if !validBackend(*c.Backend) {
			return fmt.Errorf("backend must be one of %v, got %q", Backends, *c.Backend)
		}
	}
	if c.Width != nil && *c.Width <= 0 {
		return fmt.Errorf("width must be positive, got %f", *c.Width)
	}
	if c.Height != nil && *c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %f", *c.Height)
	}
	for name, lim := range map[string][]float64{"x_lim": c.XLim, "y_lim": c.YLim, "z_lim": c.ZLim} {
		if lim == nil {
			continue
		}
		if len(lim) != 2 {
			return fmt.Errorf("%s must have exactly 2 values, got %d", name, len(lim))
		}
		if lim[0] >= lim[1] {
			return fmt.Errorf("%s must be increasing, got [%f, %f]", name, lim[0], lim[1])
		}
	}
	if c.AxesPartial != nil && (*c.AxesPartial <= 0 || *c.AxesPartial > 1) {
		return fmt.Errorf("axes_partial must be in (0, 1], got %f", *c.AxesPartial)
	}
	if _, err := c.ShadowConfig(); err != nil {
		return err
	}
	for i, s := range c.Series {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}
	return nil
}

func validBackend(b string) bool {
	for _, v := range Backends {
		if b == v {
			return true
		}
	}
	return false
}

// ShadowConfig converts the shadow fields into a shadow.Config, starting from
// shadow.DefaultConfig for anything unset.
func (c *PlotConfig) ShadowConfig() (shadow.Config, error) {
	cfg := shadow.DefaultConfig()
	cfg.AlphaRatio = c.GetShadowAlphaRatio()

	if c.ShadowPlanes != nil {
		cfg.Planes = make([]shadow.Plane, 0, len(c.ShadowPlanes))
		for _, name := range c.ShadowPlanes {
			cfg.Planes = append(cfg.Planes, shadow.Plane(strings.ToLower(name)))
		}
	}

	// Sorted so the first invalid entry reported is stable.
	planes := make([]string, 0, len(c.ShadowPositions))
	for name := range c.ShadowPositions {
		planes = append(planes, name)
	}
	sort.Strings(planes)
	for _, name := range planes {
		plane := shadow.Plane(strings.ToLower(name))
		if err := plane.Validate(); err != nil {
			return shadow.Config{}, fmt.Errorf("shadow_positions: %w", err)
		}
		cfg.Positions[plane] = shadow.Position(strings.ToLower(c.ShadowPositions[name]))
	}

	if c.ShadowAnchor != nil {
		cfg.Anchor = shadow.Anchor(strings.ToLower(*c.ShadowAnchor))
	}

	if err := cfg.Validate(); err != nil {
		return shadow.Config{}, err
	}
	return cfg, nil
}

// GetBackend returns the backend or the default "png".
func (c *PlotConfig) GetBackend() string {
	if c.Backend == nil {
		return "png" // default
	}
	return *c.Backend
}

// GetTitle returns the title or "".
func (c *PlotConfig) GetTitle() string {
	if c.Title == nil {
		return ""
	}
	return *c.Title
}

// GetLabels returns the x, y and z axis labels, defaulting to "X", "Y", "Z".
func (c *PlotConfig) GetLabels() (x, y, z string) {
	x, y, z = "X", "Y", "Z"
	if c.XLabel != nil {
		x = *c.XLabel
	}
	if c.YLabel != nil {
		y = *c.YLabel
	}
	if c.ZLabel != nil {
		z = *c.ZLabel
	}
	return x, y, z
}

// GetWidth returns the figure width or the default 8.
func (c *PlotConfig) GetWidth() float64 {
	if c.Width == nil {
		return 8 // default
	}
	return *c.Width
}

// GetHeight returns the figure height or the default 6.
func (c *PlotConfig) GetHeight() float64 {
	if c.Height == nil {
		return 6 // default
	}
	return *c.Height
}

// GetElevation returns the view elevation in degrees or the default 30.
func (c *PlotConfig) GetElevation() float64 {
	if c.Elevation == nil {
		return 30 // default
	}
	return *c.Elevation
}

// GetAzimuth returns the view azimuth in degrees or the default -60.
func (c *PlotConfig) GetAzimuth() float64 {
	if c.Azimuth == nil {
		return -60 // default
	}
	return *c.Azimuth
}

func (c *PlotConfig) GetAxisOff() bool {
	return c.AxisOff != nil && *c.AxisOff
}

// GetShadowAlphaRatio returns shadow_alpha_ratio or shadow.DefaultAlphaRatio.
func (c *PlotConfig) GetShadowAlphaRatio() float64 {
	if c.ShadowAlphaRatio == nil {
		return shadow.DefaultAlphaRatio
	}
	return *c.ShadowAlphaRatio
}

func (c *PlotConfig) GetDrawAxes() bool {
	return c.DrawAxes != nil && *c.DrawAxes
}

// GetAxesPartial returns the fraction of each axis span covered by the drawn
// axis lines, default 1.
func (c *PlotConfig) GetAxesPartial() float64 {
	if c.AxesPartial == nil {
		return 1 // default
	}
	return *c.AxesPartial
}

func (c *PlotConfig) GetDrawPlanes() bool {
	return c.DrawPlanes != nil && *c.DrawPlanes
}

// Validate checks the file, kind and numeric ranges of one series.
func (s SeriesConfig) Validate() error {
	if s.File == "" {
		return fmt.Errorf("file is required")
	}
	switch s.Kind {
	case "", "line", "scatter":
	default:
		return fmt.Errorf("kind must be line or scatter, got %q", s.Kind)
	}
	if s.Alpha != nil && !inUnit(*s.Alpha) {
		return fmt.Errorf("alpha must be between 0 and 1, got %f", *s.Alpha)
	}
	if s.ShadowAlphaRatio != nil && !inUnit(*s.ShadowAlphaRatio) {
		return fmt.Errorf("shadow_alpha_ratio must be between 0 and 1, got %f", *s.ShadowAlphaRatio)
	}
	if s.LineWidth != nil && *s.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive, got %f", *s.LineWidth)
	}
	if s.MarkerSize != nil && *s.MarkerSize <= 0 {
		return fmt.Errorf("marker_size must be positive, got %f", *s.MarkerSize)
	}
	return nil
}

// inUnit reports whether v is in [0, 1]. NaN is not.
func inUnit(v float64) bool { return v >= 0 && v <= 1 }

// GetKind returns the series kind, line by default.
func (s SeriesConfig) GetKind() shadow.Kind {
	if s.Kind == "scatter" {
		return shadow.KindScatter
	}
	return shadow.KindLine
}

// Style returns the drawing style for the series; only set fields appear.
func (s SeriesConfig) Style() shadow.Style {
	st := shadow.Style{}
	if s.Label != nil {
		st[shadow.KeyLabel] = *s.Label
	}
	if s.Color != nil {
		st[shadow.KeyColor] = *s.Color
	}
	if s.Alpha != nil {
		st[shadow.KeyAlpha] = *s.Alpha
	}
	if s.LineWidth != nil {
		st[shadow.KeyLineWidth] = *s.LineWidth
	}
	if s.LineStyle != nil {
		st[shadow.KeyLineStyle] = *s.LineStyle
	}
	if s.Marker != nil {
		st[shadow.KeyMarker] = *s.Marker
	}
	if s.MarkerSize != nil {
		st[shadow.KeySize] = *s.MarkerSize
	}
	return st
}

// Options returns the per-series shadow options.
func (s SeriesConfig) Options() []shadow.SeriesOption {
	if s.ShadowAlphaRatio == nil {
		return nil
	}
	return []shadow.SeriesOption{shadow.WithShadowAlpha(*s.ShadowAlphaRatio)}
}
