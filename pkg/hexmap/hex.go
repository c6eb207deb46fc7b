// pkg/hexmap/hex.go
package hexmap

import (
	"fmt"

	"go-hexagons/pkg/utils"
)

// Hexagon is a cell of a hex grid in axial coordinates (Q, R).
// The third cube coordinate is implied: S = -Q - R, so Q + R + S == 0 always holds.
type Hexagon struct {
	Q, R int
}

// NewHexagon returns the cell at (q, r). Any pair is a valid cell.
func NewHexagon(q, r int) Hexagon {
	return Hexagon{Q: q, R: r}
}

// S returns the derived cube coordinate.
func (h Hexagon) S() int {
	return -h.Q - h.R
}

// Add returns the component-wise sum of two cells.
func (h Hexagon) Add(other Hexagon) Hexagon {
	return Hexagon{
		Q: h.Q + other.Q,
		R: h.R + other.R,
	}
}

// Subtract returns the component-wise difference h - other.
func (h Hexagon) Subtract(other Hexagon) Hexagon {
	return Hexagon{
		Q: h.Q - other.Q,
		R: h.R - other.R,
	}
}

// Scale multiplies a hex vector by a scalar.
func (h Hexagon) Scale(factor int) Hexagon {
	return Hexagon{h.Q * factor, h.R * factor}
}

// Distance returns the number of steps between two cells.
func (h Hexagon) Distance(to Hexagon) int {
	d := h.Subtract(to)
	return utils.Max3(utils.Abs(d.Q), utils.Abs(d.R), utils.Abs(d.S()))
}

// Neighbor returns the adjacent cell in AxialNeighbors direction dir.
// dir is taken modulo 6.
func (h Hexagon) Neighbor(dir int) Hexagon {
	return h.Add(AxialNeighbors[utils.FloorMod(dir, 6)])
}

func (h Hexagon) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}
