package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivMod(t *testing.T) {
	cases := []struct {
		a, b     int
		div, mod int
	}{
		{7, 2, 3, 1},
		{6, 2, 3, 0},
		{0, 2, 0, 0},
		{-1, 2, -1, 1},
		{-2, 2, -1, 0},
		{-3, 2, -2, 1},
		{-7, 3, -3, 2},
	}
	for _, c := range cases {
		assert.Equal(t, c.div, FloorDiv(c.a, c.b), "FloorDiv(%d,%d)", c.a, c.b)
		assert.Equal(t, c.mod, FloorMod(c.a, c.b), "FloorMod(%d,%d)", c.a, c.b)
		assert.Equal(t, c.a, FloorDiv(c.a, c.b)*c.b+FloorMod(c.a, c.b))
	}
}

func TestAbsMax3(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 9, Max3(1, 9, -4))
	assert.Equal(t, -1, Max3(-3, -2, -1))
}
