package hexmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexagon_CubeInvariant(t *testing.T) {
	for q := -20; q <= 20; q++ {
		for r := -20; r <= 20; r++ {
			h := NewHexagon(q, r)
			assert.Equal(t, 0, h.Q+h.R+h.S())
		}
	}
	h := NewHexagon(math.MaxInt32, math.MinInt32+1)
	assert.Equal(t, 0, h.Q+h.R+h.S())
}

func TestHexagon_Distance(t *testing.T) {
	origin := NewHexagon(0, 0)
	assert.Equal(t, 0, origin.Distance(origin))
	for _, d := range AxialNeighbors {
		assert.Equal(t, 1, origin.Distance(d), "neighbor %v", d)
		assert.Equal(t, 2, origin.Distance(d.Scale(2)), "neighbor %v * 2", d)
	}
	assert.Equal(t, 7, NewHexagon(3, -3).Distance(NewHexagon(-2, 4)))
}

func TestHexagon_NeighborWrapsDirection(t *testing.T) {
	h := NewHexagon(2, -1)
	assert.Equal(t, NewHexagon(3, -1), h.Neighbor(0))
	assert.Equal(t, h.Neighbor(0), h.Neighbor(6))
	assert.Equal(t, h.Neighbor(5), h.Neighbor(-1))
	assert.Equal(t, h, h.Neighbor(2).Subtract(AxialNeighbors[2]))
}

func TestHexagon_String(t *testing.T) {
	assert.Equal(t, "(3,-3)", NewHexagon(3, -3).String())
}
