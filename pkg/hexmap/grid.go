// pkg/hexmap/grid.go
package hexmap

import (
	"fmt"
)

// Grid is a sparse set of cells keyed by Encode. It stores coordinates only;
// size and orientation live in the Configuration used to draw it.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	hexagons map[int64]Hexagon
}

func NewGrid() *Grid {
	return &Grid{hexagons: make(map[int64]Hexagon)}
}

// NewGridFrom wraps an existing key -> cell map, e.g. one returned by
// BuildAxialGrid. The grid takes ownership of the map.
func NewGridFrom(hexagons map[int64]Hexagon) *Grid {
	if hexagons == nil {
		hexagons = make(map[int64]Hexagon)
	}
	return &Grid{hexagons: hexagons}
}

// AddHexagon inserts h, replacing any cell with the same coordinates.
func (g *Grid) AddHexagon(h Hexagon) {
	g.hexagons[Encode(h)] = h
}

func (g *Grid) AddHexagonAt(q, r int) {
	g.AddHexagon(Hexagon{Q: q, R: r})
}

// RemoveHexagon deletes h and reports whether it was present.
func (g *Grid) RemoveHexagon(h Hexagon) bool {
	id := Encode(h)
	if _, exists := g.hexagons[id]; !exists {
		return false
	}
	delete(g.hexagons, id)
	return true
}

func (g *Grid) RemoveHexagonAt(q, r int) bool {
	return g.RemoveHexagon(Hexagon{Q: q, R: r})
}

// Clear removes every cell.
func (g *Grid) Clear() {
	clear(g.hexagons)
}

// TryGetHexagonByID looks a cell up by its encoded key.
func (g *Grid) TryGetHexagonByID(id int64) (Hexagon, bool) {
	h, ok := g.hexagons[id]
	return h, ok
}

func (g *Grid) TryGetHexagon(h Hexagon) (Hexagon, bool) {
	return g.TryGetHexagonByID(Encode(h))
}

func (g *Grid) TryGetHexagonAt(q, r int) (Hexagon, bool) {
	return g.TryGetHexagonByID(Encode(Hexagon{Q: q, R: r}))
}

func (g *Grid) Contains(h Hexagon) bool {
	_, exists := g.hexagons[Encode(h)]
	return exists
}

func (g *Grid) Len() int {
	return len(g.hexagons)
}

// ForEach calls visit for every cell in no particular order. It stops as
// soon as visit returns false and then returns false; otherwise it returns
// true. The grid must not be modified during the walk.
func (g *Grid) ForEach(visit func(Hexagon) bool) bool {
	for _, h := range g.hexagons {
		if !visit(h) {
			return false
		}
	}
	return true
}

// Neighbors returns the stored cells adjacent to h, in AxialNeighbors order.
func (g *Grid) Neighbors(h Hexagon) []Hexagon {
	valid := make([]Hexagon, 0, 6)
	for _, d := range AxialNeighbors {
		if n, ok := g.TryGetHexagon(h.Add(d)); ok {
			valid = append(valid, n)
		}
	}
	return valid
}

// InRange returns the stored cells within n steps of center.
func (g *Grid) InRange(center Hexagon, n int) []Hexagon {
	var result []Hexagon
	for q := -n; q <= n; q++ {
		for r := max(-n, -q-n); r <= min(n, -q+n); r++ {
			if h, ok := g.TryGetHexagon(center.Add(Hexagon{Q: q, R: r})); ok {
				result = append(result, h)
			}
		}
	}
	return result
}

// Pick returns the stored cell under the plane point (x, y).
func (g *Grid) Pick(l Layout, x, y float64) (Hexagon, bool) {
	return g.TryGetHexagon(l.ToHex(x, y))
}

// BuildFromConfiguration replaces the grid's contents with the cells the
// configuration describes. The grid holds no geometry, so HexRadius is not
// checked here. On error the grid is left empty.
func (g *Grid) BuildFromConfiguration(cfg Configuration) error {
	g.Clear()

	if err := cfg.ValidateShape(); err != nil {
		return err
	}

	switch cfg.CoordinateSystem {
	case Axial:
		g.hexagons = BuildAxialGrid(cfg.AxialGrid)
	case Offset:
		hexagons, err := BuildOffsetGrid(cfg.Orientation, cfg.OffsetGrid)
		if err != nil {
			return err
		}
		g.hexagons = hexagons
	default:
		return fmt.Errorf("%w: coordinate system %s", ErrUnsupportedConfiguration, cfg.CoordinateSystem)
	}
	return nil
}

// BuildAxialGrid returns the disk of cells within cfg.Radius steps of the
// origin: 3*r*r + 3*r + 1 cells.
func BuildAxialGrid(cfg AxialGridConfiguration) map[int64]Hexagon {
	radius := int(cfg.Radius)
	hexagons := make(map[int64]Hexagon, 3*radius*radius+3*radius+1)

	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			h := Hexagon{Q: q, R: r}
			hexagons[Encode(h)] = h
		}
	}
	return hexagons
}

// BuildOffsetGrid returns a Width x Height rectangle of offset cells
// converted to axial coordinates.
func BuildOffsetGrid(o Orientation, cfg OffsetGridConfiguration) (map[int64]Hexagon, error) {
	// Fail on a bad orientation or parity even when the rectangle is empty.
	if _, err := OffsetToAxial(o, cfg.OffsetParity, 0, 0); err != nil {
		return nil, err
	}

	width := int(cfg.Width)
	height := int(cfg.Height)
	hexagons := make(map[int64]Hexagon, width*height)

	for col := 0; col < width; col++ {
		for row := 0; row < height; row++ {
			h, err := OffsetToAxial(o, cfg.OffsetParity, col, row)
			if err != nil {
				return nil, err
			}
			hexagons[Encode(h)] = h
		}
	}
	return hexagons, nil
}
