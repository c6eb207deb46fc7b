package hexmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnums(t *testing.T) {
	o, err := ParseOrientation("Pointy-Top")
	require.NoError(t, err)
	assert.Equal(t, PointyTop, o)
	o, err = ParseOrientation(" flat_top ")
	require.NoError(t, err)
	assert.Equal(t, FlatTop, o)
	_, err = ParseOrientation("sideways")
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)

	c, err := ParseCoordinateSystem("AXIAL")
	require.NoError(t, err)
	assert.Equal(t, Axial, c)
	_, err = ParseCoordinateSystem("cube")
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)

	p, err := ParseOffsetParity("odd")
	require.NoError(t, err)
	assert.Equal(t, Odd, p)
	_, err = ParseOffsetParity("")
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)
}

func TestEnumStringsRoundTrip(t *testing.T) {
	for _, o := range orientations {
		got, err := ParseOrientation(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}
	for _, c := range []CoordinateSystem{Axial, Offset} {
		got, err := ParseCoordinateSystem(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, p := range parities {
		got, err := ParseOffsetParity(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	assert.Equal(t, "Orientation(9)", Orientation(9).String())
}

func TestConfiguration_ValidateIgnoresInactiveBranch(t *testing.T) {
	cfg := axialConfig(3)
	cfg.OffsetGrid.OffsetParity = OffsetParity(99)
	assert.NoError(t, cfg.Validate())
}

func TestConfiguration_NeighborAgreesAcrossSystems(t *testing.T) {
	for _, o := range orientations {
		for _, p := range parities {
			cfg := offsetConfig(o, p, 6, 6)
			g := NewGrid()
			require.NoError(t, g.BuildFromConfiguration(cfg))
			g.ForEach(func(h Hexagon) bool {
				for dir := 0; dir < 6; dir++ {
					n, err := cfg.Neighbor(h, dir)
					require.NoError(t, err)
					assert.Equal(t, h.Neighbor(dir), n)
				}
				return true
			})
		}
	}

	axial := axialConfig(1)
	n, err := axial.Neighbor(NewHexagon(0, 0), 1)
	require.NoError(t, err)
	assert.Equal(t, NewHexagon(0, 1), n)

	bad := axialConfig(1)
	bad.CoordinateSystem = CoordinateSystem(8)
	_, err = bad.Neighbor(NewHexagon(0, 0), 0)
	assert.ErrorIs(t, err, ErrUnsupportedConfiguration)
}
