// pkg/hexmap/math.go
package hexmap

import (
	"fmt"
	"math"
)

// Sqrt3 is √3, used by every projection.
const Sqrt3 = 1.7320508075688772935274463415059

var (
	pointyTopAngles = [6]float64{30, 90, 150, 210, 270, 330}
	flatTopAngles   = [6]float64{0, 60, 120, 180, 240, 300}
)

// Layout projects cells of one orientation and radius to and from a 2-D
// plane centered on cell (0,0). Build one with NewLayout; the zero value is
// a pointy-top layout with zero radius and must not be used for ToHex.
type Layout struct {
	orientation Orientation
	radius      float64
}

// NewLayout validates the orientation and radius once so the per-cell
// methods never need to fail.
func NewLayout(o Orientation, radius float64) (Layout, error) {
	if !o.Valid() {
		return Layout{}, fmt.Errorf("%w: orientation %s", ErrUnsupportedConfiguration, o)
	}
	if !(radius > 0) {
		return Layout{}, fmt.Errorf("%w: hex radius %v", ErrUnsupportedConfiguration, radius)
	}
	return Layout{orientation: o, radius: radius}, nil
}

func (l Layout) Orientation() Orientation { return l.orientation }
func (l Layout) Radius() float64          { return l.radius }

// FromHex returns the center of h.
func (l Layout) FromHex(h Hexagon) (x, y float64) {
	q, r := float64(h.Q), float64(h.R)
	if l.orientation == FlatTop {
		x = l.radius * 1.5 * q
		y = l.radius * Sqrt3 * (r + q/2)
		return
	}
	x = l.radius * Sqrt3 * (q + r/2)
	y = l.radius * 1.5 * r
	return
}

// ToHex returns the cell containing the point (x, y).
func (l Layout) ToHex(x, y float64) Hexagon {
	var q, r float64
	if l.orientation == FlatTop {
		q = 2.0 / 3 * x / l.radius
		r = (Sqrt3/3*y - 1.0/3*x) / l.radius
	} else {
		q = (Sqrt3/3*x - 1.0/3*y) / l.radius
		r = 2.0 / 3 * y / l.radius
	}
	return RoundHex(q, r, -q-r)
}

// Corner returns corner i of a cell centered on the origin. i is clamped
// into [0,5].
func (l Layout) Corner(i int) (x, y float64) {
	if i < 0 {
		i = 0
	}
	if i > 5 {
		i = 5
	}
	angles := &pointyTopAngles
	if l.orientation == FlatTop {
		angles = &flatTopAngles
	}
	rad := angles[i] * math.Pi / 180
	return l.radius * math.Cos(rad), l.radius * math.Sin(rad)
}

// Corners returns all six corners of a cell centered on the origin.
func (l Layout) Corners() [6][2]float64 {
	var out [6][2]float64
	for i := range out {
		out[i][0], out[i][1] = l.Corner(i)
	}
	return out
}

// Outline returns the six corners of h in plane coordinates.
func (l Layout) Outline(h Hexagon) [6][2]float64 {
	cx, cy := l.FromHex(h)
	out := l.Corners()
	for i := range out {
		out[i][0] += cx
		out[i][1] += cy
	}
	return out
}

// Spacing returns the distance between neighboring cell centers along x
// and along y (for y, between adjacent rows of a pointy-top layout or
// cells of a flat-top column).
func (l Layout) Spacing() (xSpacing, ySpacing float64) {
	if l.orientation == FlatTop {
		return 1.5 * l.radius, Sqrt3 * l.radius
	}
	return Sqrt3 * l.radius, 1.5 * l.radius
}

// RoundHex snaps fractional cube coordinates to the nearest cell.
// The component with the largest rounding error is rebuilt from the
// other two; ties between r and s keep r. Halves round to even.
func RoundHex(q, r, s float64) Hexagon {
	rq := math.RoundToEven(q)
	rr := math.RoundToEven(r)
	rs := math.RoundToEven(s)

	qDiff := math.Abs(rq - q)
	rDiff := math.Abs(rr - r)
	sDiff := math.Abs(rs - s)

	if qDiff > rDiff && qDiff > sDiff {
		rq = -rr - rs
	} else if rDiff > sDiff {
		rr = -rq - rs
	}
	return Hexagon{Q: int(rq), R: int(rr)}
}
