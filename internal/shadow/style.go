package shadow

import "fmt"

// Common style keys. Backends interpret the ones they understand and ignore
// everything else.
const (
	KeyColor     = "color"
	KeyC         = "c"
	KeyAlpha     = "alpha"
	KeyLineWidth = "linewidth"
	KeyLineStyle = "linestyle"
	KeyMarker    = "marker"
	KeySize      = "s"
	KeyLabel     = "label"
)

// DefaultShadowColor is used for shadows of series drawn without a colour.
const DefaultShadowColor = "gray"

// Style holds drawing attributes for a series, keyed by attribute name.
type Style map[string]interface{}

// Clone returns a shallow copy of s. A nil Style clones to an empty one.
func (s Style) Clone() Style {
	out := make(Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Float returns the value stored under key as a float64. Any Go numeric type
// is accepted.
func (s Style) Float(key string) (float64, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	return toFloat(v)
}

// FloatOr returns the numeric value under key, or def when it is missing or
// not numeric.
func (s Style) FloatOr(key string, def float64) float64 {
	if f, ok := s.Float(key); ok {
		return f
	}
	return def
}

// String returns the value stored under key formatted as a string.
func (s Style) String(key string) (string, bool) {
	v, ok := s[key]
	if !ok || v == nil {
		return "", false
	}
	if str, ok := v.(string); ok {
		return str, true
	}
	if st, ok := v.(fmt.Stringer); ok {
		return st.String(), true
	}
	return fmt.Sprint(v), true
}

// Color returns the colour of the series, preferring "color" over "c".
func (s Style) Color() (string, bool) {
	if c, ok := s.String(KeyColor); ok {
		return c, true
	}
	return s.String(KeyC)
}

// Alpha returns the alpha of the series, defaulting to fully opaque.
func (s Style) Alpha() float64 {
	return s.FloatOr(KeyAlpha, 1.0)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
