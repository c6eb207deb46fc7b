// pkg/hexmap/neighbors.go
package hexmap

import (
	"fmt"

	"go-hexagons/pkg/utils"
)

// AxialNeighbors lists the six axial steps to adjacent cells, starting east.
// It holds for both orientations. Every table in this file uses the same
// direction order.
var AxialNeighbors = [6]Hexagon{
	{Q: 1, R: 0}, {Q: 0, R: 1}, {Q: -1, R: 1},
	{Q: -1, R: 0}, {Q: 0, R: -1}, {Q: 1, R: -1},
}

// Offset steps are stored as Hexagon{Q: dcol, R: drow}.
var (
	pointyEvenNeighbors = [6]Hexagon{
		{1, 0}, {0, 1}, {-1, 1},
		{-1, 0}, {-1, -1}, {0, -1},
	}
	pointyOddNeighbors = [6]Hexagon{
		{1, 0}, {1, 1}, {0, 1},
		{-1, 0}, {0, -1}, {1, -1},
	}
	flatEvenNeighbors = [6]Hexagon{
		{1, 0}, {0, 1}, {-1, 0},
		{-1, -1}, {0, -1}, {1, -1},
	}
	flatOddNeighbors = [6]Hexagon{
		{1, 1}, {0, 1}, {-1, 1},
		{-1, 0}, {0, -1}, {1, 0},
	}
)

// OffsetNeighbors returns the (dcol, drow) steps, packed as Hexagon{Q: dcol, R: drow},
// for a cell on an unshifted (Even) or shifted (Odd) line: rows for
// PointyTop, columns for FlatTop. Index i reaches the same cell as
// AxialNeighbors[i].
func OffsetNeighbors(o Orientation, line OffsetParity) ([6]Hexagon, error) {
	switch o {
	case PointyTop:
		switch line {
		case Even:
			return pointyEvenNeighbors, nil
		case Odd:
			return pointyOddNeighbors, nil
		}
	case FlatTop:
		switch line {
		case Even:
			return flatEvenNeighbors, nil
		case Odd:
			return flatOddNeighbors, nil
		}
	default:
		return [6]Hexagon{}, fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, o)
	}
	return [6]Hexagon{}, fmt.Errorf("%w: offset parity %s", ErrUnsupportedConfiguration, line)
}

// OffsetNeighbor steps from (col, row) in direction dir (modulo 6) inside an
// offset grid laid out with the given orientation and parity.
func OffsetNeighbor(o Orientation, parity OffsetParity, col, row, dir int) (int, int, error) {
	if !parity.Valid() {
		return 0, 0, fmt.Errorf("%w: offset parity %s", ErrUnsupportedConfiguration, parity)
	}
	var line int
	switch o {
	case PointyTop:
		line = row
	case FlatTop:
		line = col
	default:
		return 0, 0, fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, o)
	}
	shift := Even
	if utils.FloorMod(line-parity.bit(), 2) == 1 {
		shift = Odd
	}
	table, err := OffsetNeighbors(o, shift)
	if err != nil {
		return 0, 0, err
	}
	d := table[utils.FloorMod(dir, 6)]
	return col + d.Q, row + d.R, nil
}
