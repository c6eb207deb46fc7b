// pkg/hexmap/config.go
package hexmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedConfiguration is returned (wrapped) for orientation, coordinate
// system or parity values the package does not know, and for non-positive radii.
var ErrUnsupportedConfiguration = errors.New("unsupported hexagon configuration")

// Orientation selects how cells are drawn.
type Orientation int

const (
	PointyTop Orientation = iota
	FlatTop
)

func (o Orientation) String() string {
	switch o {
	case PointyTop:
		return "pointy_top"
	case FlatTop:
		return "flat_top"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// Valid reports whether o is one of the known orientations.
func (o Orientation) Valid() bool {
	return o == PointyTop || o == FlatTop
}

// ParseOrientation accepts "pointy_top" or "flat_top" (case and dash insensitive).
func ParseOrientation(s string) (Orientation, error) {
	switch normalizeName(s) {
	case "pointy_top", "pointytop", "pointy":
		return PointyTop, nil
	case "flat_top", "flattop", "flat":
		return FlatTop, nil
	}
	return 0, fmt.Errorf("%w: orientation %q", ErrUnsupportedConfiguration, s)
}

// CoordinateSystem selects which sizing branch of a Configuration is used.
type CoordinateSystem int

const (
	Offset CoordinateSystem = iota
	Axial
)

func (c CoordinateSystem) String() string {
	switch c {
	case Offset:
		return "offset"
	case Axial:
		return "axial"
	default:
		return fmt.Sprintf("CoordinateSystem(%d)", int(c))
	}
}

func (c CoordinateSystem) Valid() bool {
	return c == Offset || c == Axial
}

// ParseCoordinateSystem accepts "axial" or "offset".
func ParseCoordinateSystem(s string) (CoordinateSystem, error) {
	switch normalizeName(s) {
	case "offset":
		return Offset, nil
	case "axial":
		return Axial, nil
	}
	return 0, fmt.Errorf("%w: coordinate system %q", ErrUnsupportedConfiguration, s)
}

// OffsetParity says which rows (pointy top) or columns (flat top) of an
// offset grid are shifted by half a cell.
type OffsetParity int

const (
	Even OffsetParity = iota
	Odd
)

func (p OffsetParity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("OffsetParity(%d)", int(p))
	}
}

func (p OffsetParity) Valid() bool {
	return p == Even || p == Odd
}

// ParseOffsetParity accepts "even" or "odd".
func ParseOffsetParity(s string) (OffsetParity, error) {
	switch normalizeName(s) {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	}
	return 0, fmt.Errorf("%w: offset parity %q", ErrUnsupportedConfiguration, s)
}

func (p OffsetParity) bit() int {
	if p == Odd {
		return 1
	}
	return 0
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.ReplaceAll(s, "-", "_")
}

// OffsetGridConfiguration sizes a width x height rectangle of offset cells.
type OffsetGridConfiguration struct {
	OffsetParity OffsetParity
	Width        uint32
	Height       uint32
}

// AxialGridConfiguration sizes a hexagon-shaped disk around the origin.
type AxialGridConfiguration struct {
	Radius uint32
}

// Configuration describes a grid. Only the branch that matches
// CoordinateSystem is read; the other one is ignored.
type Configuration struct {
	Orientation      Orientation
	CoordinateSystem CoordinateSystem
	OffsetGrid       OffsetGridConfiguration
	AxialGrid        AxialGridConfiguration
	// HexRadius is the center-to-corner size of one cell.
	HexRadius float64
}

// Validate checks everything needed to build and draw the grid: the
// enum values and the radius.
func (c Configuration) Validate() error {
	if err := c.ValidateShape(); err != nil {
		return err
	}
	if !(c.HexRadius > 0) {
		return fmt.Errorf("%w: hex radius %v", ErrUnsupportedConfiguration, c.HexRadius)
	}
	return nil
}

// ValidateShape checks only what the grid builder reads: orientation,
// coordinate system and, for offset grids, parity. HexRadius is ignored.
func (c Configuration) ValidateShape() error {
	if !c.Orientation.Valid() {
		return fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, c.Orientation)
	}
	if !c.CoordinateSystem.Valid() {
		return fmt.Errorf("%w: coordinate system %s", ErrUnsupportedConfiguration, c.CoordinateSystem)
	}
	if c.CoordinateSystem == Offset && !c.OffsetGrid.OffsetParity.Valid() {
		return fmt.Errorf("%w: offset parity %s", ErrUnsupportedConfiguration, c.OffsetGrid.OffsetParity)
	}
	return nil
}

// Layout returns the projection for this configuration.
func (c Configuration) Layout() (Layout, error) {
	return NewLayout(c.Orientation, c.HexRadius)
}

// Neighbor returns the cell adjacent to h in direction dir, stepping in
// the configuration's own coordinate system. Direction indices line up
// across systems, so the result equals h.Neighbor(dir) for valid input.
func (c Configuration) Neighbor(h Hexagon, dir int) (Hexagon, error) {
	switch c.CoordinateSystem {
	case Axial:
		return h.Neighbor(dir), nil
	case Offset:
		col, row, err := AxialToOffset(c.Orientation, c.OffsetGrid.OffsetParity, h)
		if err != nil {
			return Hexagon{}, err
		}
		col, row, err = OffsetNeighbor(c.Orientation, c.OffsetGrid.OffsetParity, col, row, dir)
		if err != nil {
			return Hexagon{}, err
		}
		return OffsetToAxial(c.Orientation, c.OffsetGrid.OffsetParity, col, row)
	default:
		return Hexagon{}, fmt.Errorf("%w: coordinate system %s", ErrUnsupportedConfiguration, c.CoordinateSystem)
	}
}
