package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-hexagons/pkg/hexmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePresets = `
presets:
  - name: disk
    orientation: pointy_top
    coordinate_system: axial
    hex_radius: 30
    axial_grid:
      radius: 4
  - name: rect
    orientation: flat-top
    coordinate_system: offset
    hex_radius: 20.5
    offset_grid:
      width: 10
      height: 7
      parity: odd
  - name: rect-default-parity
    orientation: pointy_top
    coordinate_system: offset
    hex_radius: 12
    offset_grid:
      width: 3
      height: 3
`

func TestParsePresets(t *testing.T) {
	presets, err := ParsePresets([]byte(samplePresets))
	require.NoError(t, err)
	require.Len(t, presets, 3)

	disk := presets[0]
	assert.Equal(t, "disk", disk.Name)
	assert.Equal(t, hexmap.Configuration{
		Orientation:      hexmap.PointyTop,
		CoordinateSystem: hexmap.Axial,
		AxialGrid:        hexmap.AxialGridConfiguration{Radius: 4},
		HexRadius:        30,
	}, disk.Configuration)

	rect := presets[1].Configuration
	assert.Equal(t, hexmap.FlatTop, rect.Orientation)
	assert.Equal(t, hexmap.Offset, rect.CoordinateSystem)
	assert.Equal(t, hexmap.Odd, rect.OffsetGrid.OffsetParity)
	assert.Equal(t, uint32(10), rect.OffsetGrid.Width)
	assert.Equal(t, uint32(7), rect.OffsetGrid.Height)
	assert.InDelta(t, 20.5, rect.HexRadius, 1e-9)

	assert.Equal(t, hexmap.Even, presets[2].Configuration.OffsetGrid.OffsetParity)
}

func TestParsePresets_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":        "presets: []\n",
		"not yaml":     "presets: [\n",
		"no name":      "presets:\n  - orientation: pointy_top\n    coordinate_system: axial\n    hex_radius: 1\n",
		"duplicate":    "presets:\n  - {name: a, orientation: flat_top, coordinate_system: axial, hex_radius: 1}\n  - {name: a, orientation: flat_top, coordinate_system: axial, hex_radius: 1}\n",
		"orientation":  "presets:\n  - {name: a, orientation: diagonal, coordinate_system: axial, hex_radius: 1}\n",
		"system":       "presets:\n  - {name: a, orientation: flat_top, coordinate_system: cube, hex_radius: 1}\n",
		"parity":       "presets:\n  - {name: a, orientation: flat_top, coordinate_system: offset, hex_radius: 1, offset_grid: {parity: both}}\n",
		"zero radius":  "presets:\n  - {name: a, orientation: flat_top, coordinate_system: axial, hex_radius: 0}\n",
		"missing size": "presets:\n  - {name: a, orientation: flat_top, coordinate_system: axial}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePresets([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParsePresets_UnsupportedIsWrapped(t *testing.T) {
	_, err := ParsePresets([]byte("presets:\n  - {name: bad, orientation: diagonal, coordinate_system: axial, hex_radius: 1}\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, hexmap.ErrUnsupportedConfiguration)
	assert.Contains(t, err.Error(), `preset "bad"`)
}

func TestParsePresets_AxialIgnoresParity(t *testing.T) {
	doc := "presets:\n  - {name: a, orientation: pointy_top, coordinate_system: axial, hex_radius: 5, offset_grid: {parity: whatever}}\n"
	presets, err := ParsePresets([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, hexmap.Even, presets[0].Configuration.OffsetGrid.OffsetParity)
}

func TestLoadPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresets), 0o644))

	presets, err := LoadPresets(path)
	require.NoError(t, err)
	assert.Len(t, presets, 3)

	_, err = LoadPresets(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("presets: []\n"), 0o644))
	_, err = LoadPresets(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDefaultPresetsAreValid(t *testing.T) {
	for _, p := range DefaultPresets() {
		assert.NoError(t, p.Configuration.Validate(), p.Name)
	}
}

func TestShippedPresetsFile(t *testing.T) {
	presets, err := LoadPresets(filepath.Join("..", "..", DefaultPresetsPath))
	require.NoError(t, err)
	assert.NotEmpty(t, presets)
}
