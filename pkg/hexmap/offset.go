// pkg/hexmap/offset.go
package hexmap

import (
	"fmt"

	"go-hexagons/pkg/utils"
)

// OffsetToAxial converts an offset cell to axial coordinates.
//
//	PointyTop: q = col - floor((row - p) / 2), r = row
//	FlatTop:   q = col,                        r = row - floor((col - p) / 2)
//
// where p is 1 for Odd parity and 0 for Even. Division floors, so negative
// rows and columns keep alternating like positive ones.
func OffsetToAxial(o Orientation, parity OffsetParity, col, row int) (Hexagon, error) {
	if !parity.Valid() {
		return Hexagon{}, fmt.Errorf("%w: offset parity %s", ErrUnsupportedConfiguration, parity)
	}
	p := parity.bit()
	switch o {
	case PointyTop:
		return Hexagon{Q: col - utils.FloorDiv(row-p, 2), R: row}, nil
	case FlatTop:
		return Hexagon{Q: col, R: row - utils.FloorDiv(col-p, 2)}, nil
	default:
		return Hexagon{}, fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, o)
	}
}

// AxialToOffset is the inverse of OffsetToAxial.
func AxialToOffset(o Orientation, parity OffsetParity, h Hexagon) (col, row int, err error) {
	if !parity.Valid() {
		return 0, 0, fmt.Errorf("%w: offset parity %s", ErrUnsupportedConfiguration, parity)
	}
	p := parity.bit()
	switch o {
	case PointyTop:
		return h.Q + utils.FloorDiv(h.R-p, 2), h.R, nil
	case FlatTop:
		return h.Q, h.R + utils.FloorDiv(h.Q-p, 2), nil
	default:
		return 0, 0, fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, o)
	}
}
