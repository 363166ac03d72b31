package shadow

import (
	"errors"
	"fmt"
)

// Plane is a coordinate plane a shadow is projected onto.
type Plane string

const (
	PlaneXY Plane = "xy"
	PlaneXZ Plane = "xz"
	PlaneYZ Plane = "yz"
)

// AllPlanes lists the valid planes in their canonical order.
var AllPlanes = []Plane{PlaneXY, PlaneXZ, PlaneYZ}

// Position selects which end of the orthogonal axis a shadow is drawn at.
type Position string

const (
	PositionMin Position = "min"
	PositionMax Position = "max"
)

// Anchor selects where the min/max offset of a shadow comes from.
type Anchor string

const (
	// AnchorData uses the min/max of the series' own values along the
	// orthogonal axis.
	AnchorData Anchor = "data"
	// AnchorLimits uses the current axis limits, so every shadow on a plane
	// lies on the same wall of the bounding box.
	AnchorLimits Anchor = "limits"
)

var (
	ErrInvalidPlane    = errors.New("invalid shadow plane")
	ErrInvalidPosition = errors.New("invalid shadow position")
	ErrInvalidAnchor   = errors.New("invalid shadow anchor")
)

// Validate reports whether p is one of xy, xz or yz.
func (p Plane) Validate() error {
	switch p {
	case PlaneXY, PlaneXZ, PlaneYZ:
		return nil
	}
	return fmt.Errorf("%w %q: must be one of %v", ErrInvalidPlane, string(p), AllPlanes)
}

// Validate reports whether pos is min or max.
func (pos Position) Validate() error {
	switch pos {
	case PositionMin, PositionMax:
		return nil
	}
	return fmt.Errorf("%w %q: must be one of [min max]", ErrInvalidPosition, string(pos))
}

// Validate reports whether a is data or limits.
func (a Anchor) Validate() error {
	switch a {
	case AnchorData, AnchorLimits:
		return nil
	}
	return fmt.Errorf("%w %q: must be one of [data limits]", ErrInvalidAnchor, string(a))
}

// Orthogonal returns the index (0=x, 1=y, 2=z) of the axis that is held
// constant when projecting onto p.
func (p Plane) Orthogonal() int {
	switch p {
	case PlaneXY:
		return 2
	case PlaneXZ:
		return 1
	case PlaneYZ:
		return 0
	}
	return -1
}
