package shadow

import (
	"testing"
	"time"
)

func TestStyleFloat(t *testing.T) {
	s := Style{
		"f64": 1.5,
		"f32": float32(2.5),
		"int": 3,
		"u8":  uint8(4),
		"str": "5",
	}

	tests := []struct {
		key    string
		want   float64
		wantOK bool
	}{
		{"f64", 1.5, true},
		{"f32", 2.5, true},
		{"int", 3, true},
		{"u8", 4, true},
		{"str", 0, false},
		{"missing", 0, false},
	}
	for _, tt := range tests {
		got, ok := s.Float(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Float(%q) = %v, %v; want %v, %v", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}

	if got := s.FloatOr("str", 9); got != 9 {
		t.Errorf("FloatOr fallback = %v, want 9", got)
	}
}

func TestStyleString(t *testing.T) {
	s := Style{"name": "spiral", "n": 3, "d": time.Second, "nil": nil}

	if got, _ := s.String("name"); got != "spiral" {
		t.Errorf("String(name) = %q", got)
	}
	if got, _ := s.String("n"); got != "3" {
		t.Errorf("String(n) = %q", got)
	}
	if got, _ := s.String("d"); got != "1s" {
		t.Errorf("String(d) = %q", got)
	}
	if _, ok := s.String("nil"); ok {
		t.Error("expected nil value to be reported missing")
	}
}

func TestStyleColorAndAlpha(t *testing.T) {
	if c, ok := (Style{KeyC: "red"}).Color(); !ok || c != "red" {
		t.Errorf("Color() from c = %q, %v", c, ok)
	}
	if c, _ := (Style{KeyC: "red", KeyColor: "blue"}).Color(); c != "blue" {
		t.Errorf("expected color to win over c, got %q", c)
	}
	if _, ok := (Style{}).Color(); ok {
		t.Error("expected no colour")
	}
	if a := (Style{}).Alpha(); a != 1.0 {
		t.Errorf("default alpha = %v, want 1", a)
	}
	if a := (Style{KeyAlpha: 0.25}).Alpha(); a != 0.25 {
		t.Errorf("alpha = %v, want 0.25", a)
	}
}

func TestStyleClone(t *testing.T) {
	var nilStyle Style
	c := nilStyle.Clone()
	if c == nil {
		t.Fatal("clone of nil style should be non-nil")
	}
	c["x"] = 1

	orig := Style{"a": 1}
	cl := orig.Clone()
	cl["a"] = 2
	if orig["a"] != 1 {
		t.Error("clone shares storage with original")
	}
}
