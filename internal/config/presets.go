// internal/config/presets.go
package config

import (
	"errors"
	"fmt"
	"os"

	"go-hexagons/pkg/hexmap"

	"gopkg.in/yaml.v3"
)

// Preset is a named grid configuration the viewer can switch to.
type Preset struct {
	Name          string
	Configuration hexmap.Configuration
}

type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name             string  `yaml:"name"`
	Orientation      string  `yaml:"orientation"`
	CoordinateSystem string  `yaml:"coordinate_system"`
	HexRadius        float64 `yaml:"hex_radius"`
	AxialGrid        struct {
		Radius uint32 `yaml:"radius"`
	} `yaml:"axial_grid"`
	OffsetGrid struct {
		Width  uint32 `yaml:"width"`
		Height uint32 `yaml:"height"`
		Parity string `yaml:"parity"`
	} `yaml:"offset_grid"`
}

// LoadPresets reads and validates a presets file.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets file: %w", err)
	}
	presets, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

// ParsePresets decodes a presets document. Names must be unique and every
// configuration must pass hexmap's validation.
func ParsePresets(data []byte) ([]Preset, error) {
	var doc presetFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal presets: %w", err)
	}
	if len(doc.Presets) == 0 {
		return nil, errors.New("no presets defined")
	}

	presets := make([]Preset, 0, len(doc.Presets))
	seen := make(map[string]bool, len(doc.Presets))
	for i, entry := range doc.Presets {
		if entry.Name == "" {
			return nil, fmt.Errorf("preset #%d has no name", i)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("duplicate preset %q", entry.Name)
		}
		seen[entry.Name] = true

		cfg, err := entry.configuration()
		if err != nil {
			return nil, fmt.Errorf("preset %q: %w", entry.Name, err)
		}
		presets = append(presets, Preset{Name: entry.Name, Configuration: cfg})
	}
	return presets, nil
}

func (e presetEntry) configuration() (hexmap.Configuration, error) {
	var cfg hexmap.Configuration
	var err error

	if cfg.Orientation, err = hexmap.ParseOrientation(e.Orientation); err != nil {
		return cfg, err
	}
	if cfg.CoordinateSystem, err = hexmap.ParseCoordinateSystem(e.CoordinateSystem); err != nil {
		return cfg, err
	}
	cfg.HexRadius = e.HexRadius
	cfg.AxialGrid.Radius = e.AxialGrid.Radius
	cfg.OffsetGrid.Width = e.OffsetGrid.Width
	cfg.OffsetGrid.Height = e.OffsetGrid.Height

	// Parity only matters for offset grids; it defaults to even.
	if cfg.CoordinateSystem == hexmap.Offset && e.OffsetGrid.Parity != "" {
		if cfg.OffsetGrid.OffsetParity, err = hexmap.ParseOffsetParity(e.OffsetGrid.Parity); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// DefaultPresets is used when no presets file can be found.
func DefaultPresets() []Preset {
	return []Preset{
		{
			Name: "axial-disk",
			Configuration: hexmap.Configuration{
				Orientation:      hexmap.PointyTop,
				CoordinateSystem: hexmap.Axial,
				AxialGrid:        hexmap.AxialGridConfiguration{Radius: 8},
				HexRadius:        28,
			},
		},
		{
			Name: "offset-rect",
			Configuration: hexmap.Configuration{
				Orientation:      hexmap.FlatTop,
				CoordinateSystem: hexmap.Offset,
				OffsetGrid: hexmap.OffsetGridConfiguration{
					OffsetParity: hexmap.Odd,
					Width:        16,
					Height:       12,
				},
				HexRadius: 24,
			},
		},
	}
}
