// internal/viewer/viewer.go
package viewer

import (
	"errors"
	"fmt"
	"math"

	"go-hexagons/internal/config"
	"go-hexagons/internal/event"
	"go-hexagons/internal/log"
	"go-hexagons/pkg/hexmap"
)

// Loader returns a fresh list of presets, e.g. by re-reading the presets file.
type Loader func() ([]config.Preset, error)

// Hover describes the cell under the cursor.
type Hover struct {
	Cell hexmap.Hexagon
	// Label is the cell's coordinates in the active coordinate system.
	Label string
	// Neighbors are the adjacent cells that exist in the grid, in
	// direction order.
	Neighbors []hexmap.Hexagon
}

// Viewer owns the displayed grid and everything needed to map screen
// pixels to cells. It is driven from the ebiten update loop and is not
// safe for concurrent use.
type Viewer struct {
	presets []config.Preset
	index   int
	load    Loader
	events  *event.Dispatcher

	active hexmap.Configuration
	grid   *hexmap.Grid
	layout hexmap.Layout

	screenWidth  int
	screenHeight int
	originX      float64
	originY      float64

	hover *Hover
}

// New builds the first preset. events may be nil.
func New(presets []config.Preset, load Loader, events *event.Dispatcher, screenWidth, screenHeight int) (*Viewer, error) {
	if len(presets) == 0 {
		return nil, errors.New("viewer needs at least one preset")
	}
	v := &Viewer{
		presets:      presets,
		load:         load,
		events:       events,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
	if err := v.apply(presets[0].Configuration); err != nil {
		return nil, fmt.Errorf("preset %q: %w", presets[0].Name, err)
	}
	return v, nil
}

// apply builds cfg into a new grid and switches to it. On failure the
// current grid stays on screen.
func (v *Viewer) apply(cfg hexmap.Configuration) error {
	layout, err := cfg.Layout()
	if err != nil {
		return err
	}
	grid := hexmap.NewGrid()
	if err := grid.BuildFromConfiguration(cfg); err != nil {
		return err
	}

	v.active = cfg
	v.grid = grid
	v.layout = layout
	v.hover = nil
	v.center()

	log.WithField("cells", grid.Len()).Debugf("built %s %s grid", cfg.Orientation, cfg.CoordinateSystem)
	v.events.Dispatch(event.Event{Type: event.GridRebuilt, Data: cfg})
	return nil
}

// center puts the middle of the grid's bounding box at the middle of the screen.
func (v *Viewer) center() {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	v.grid.ForEach(func(h hexmap.Hexagon) bool {
		x, y := v.layout.FromHex(h)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		return true
	})

	v.originX = float64(v.screenWidth) / 2
	v.originY = float64(v.screenHeight) / 2
	if v.grid.Len() > 0 {
		v.originX -= (minX + maxX) / 2
		v.originY -= (minY + maxY) / 2
	}
}

// HexToScreen returns the screen position of the cell center.
func (v *Viewer) HexToScreen(h hexmap.Hexagon) (float64, float64) {
	x, y := v.layout.FromHex(h)
	return x + v.originX, y + v.originY
}

// ScreenToHex is the inverse of HexToScreen. The cell may not be in the grid.
func (v *Viewer) ScreenToHex(x, y float64) hexmap.Hexagon {
	return v.layout.ToHex(x-v.originX, y-v.originY)
}

// UpdateHover picks the cell under the screen point and remembers it.
// It returns false when the point is outside the grid.
func (v *Viewer) UpdateHover(x, y float64) (Hover, bool) {
	cell, ok := v.grid.Pick(v.layout, x-v.originX, y-v.originY)
	if !ok {
		if v.hover != nil {
			v.hover = nil
			v.events.Dispatch(event.Event{Type: event.HoverChanged})
		}
		return Hover{}, false
	}
	if v.hover != nil && v.hover.Cell == cell {
		return *v.hover, true
	}

	hover := Hover{Cell: cell, Label: v.Label(cell)}
	for dir := range hexmap.AxialNeighbors {
		n, err := v.active.Neighbor(cell, dir)
		if err != nil {
			log.Warnf("neighbor %d of %s: %v", dir, cell, err)
			continue
		}
		if stored, ok := v.grid.TryGetHexagon(n); ok {
			hover.Neighbors = append(hover.Neighbors, stored)
		}
	}
	v.hover = &hover
	v.events.Dispatch(event.Event{Type: event.HoverChanged, Data: cell})
	return hover, true
}

// Hovered returns the last picked cell, if any.
func (v *Viewer) Hovered() (Hover, bool) {
	if v.hover == nil {
		return Hover{}, false
	}
	return *v.hover, true
}

// Label formats h in the active coordinate system: "q,r" for axial grids,
// "col,row" for offset grids.
func (v *Viewer) Label(h hexmap.Hexagon) string {
	if v.active.CoordinateSystem == hexmap.Offset {
		col, row, err := hexmap.AxialToOffset(v.active.Orientation, v.active.OffsetGrid.OffsetParity, h)
		if err == nil {
			return fmt.Sprintf("%d,%d", col, row)
		}
	}
	return fmt.Sprintf("%d,%d", h.Q, h.R)
}

// Select switches to preset i.
func (v *Viewer) Select(i int) error {
	if i < 0 || i >= len(v.presets) {
		return fmt.Errorf("preset index %d out of range [0,%d)", i, len(v.presets))
	}
	p := v.presets[i]
	if err := v.apply(p.Configuration); err != nil {
		log.Errorf("preset %q: %v", p.Name, err)
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	v.index = i
	log.Infof("preset %q: %d cells", p.Name, v.grid.Len())
	v.events.Dispatch(event.Event{Type: event.PresetSelected, Data: p.Name})
	return nil
}

// Next cycles to the following preset.
func (v *Viewer) Next() error {
	return v.Select((v.index + 1) % len(v.presets))
}

// ToggleOrientation redraws the current grid with the other orientation.
func (v *Viewer) ToggleOrientation() error {
	cfg := v.active
	if cfg.Orientation == hexmap.PointyTop {
		cfg.Orientation = hexmap.FlatTop
	} else {
		cfg.Orientation = hexmap.PointyTop
	}
	return v.rebuild(cfg)
}

// ToggleCoordinateSystem switches between an axial disk and an offset
// rectangle. A missing size for the target system is derived from the
// current one.
func (v *Viewer) ToggleCoordinateSystem() error {
	cfg := v.active
	switch cfg.CoordinateSystem {
	case hexmap.Axial:
		cfg.CoordinateSystem = hexmap.Offset
		if cfg.OffsetGrid.Width == 0 || cfg.OffsetGrid.Height == 0 {
			side := 2*cfg.AxialGrid.Radius + 1
			cfg.OffsetGrid.Width, cfg.OffsetGrid.Height = side, side
		}
	default:
		cfg.CoordinateSystem = hexmap.Axial
		if cfg.AxialGrid.Radius == 0 {
			cfg.AxialGrid.Radius = max(cfg.OffsetGrid.Width, cfg.OffsetGrid.Height) / 2
		}
	}
	return v.rebuild(cfg)
}

func (v *Viewer) rebuild(cfg hexmap.Configuration) error {
	if err := v.apply(cfg); err != nil {
		log.Errorf("rebuild %s %s: %v", cfg.Orientation, cfg.CoordinateSystem, err)
		return err
	}
	return nil
}

// Reload asks the loader for a new preset list and reapplies the preset
// with the current name, or the first one if it is gone. Errors leave the
// viewer unchanged.
func (v *Viewer) Reload() error {
	if v.load == nil {
		err := errors.New("no preset loader configured")
		log.Errorf("reload presets: %v", err)
		return err
	}
	presets, err := v.load()
	if err != nil {
		log.Errorf("reload presets: %v", err)
		return err
	}
	if len(presets) == 0 {
		err := errors.New("reload returned no presets")
		log.Errorf("reload presets: %v", err)
		return err
	}

	current := v.presets[v.index].Name
	index := 0
	for i, p := range presets {
		if p.Name == current {
			index = i
			break
		}
	}

	old, oldIndex := v.presets, v.index
	v.presets = presets
	if err := v.Select(index); err != nil {
		v.presets, v.index = old, oldIndex
		return err
	}
	log.Infof("reloaded %d presets", len(presets))
	v.events.Dispatch(event.Event{Type: event.PresetsReloaded, Data: len(presets)})
	return nil
}

func (v *Viewer) Grid() *hexmap.Grid                  { return v.grid }
func (v *Viewer) Layout() hexmap.Layout               { return v.layout }
func (v *Viewer) Configuration() hexmap.Configuration { return v.active }
func (v *Viewer) PresetName() string                  { return v.presets[v.index].Name }

// Status is a one-line summary for the on-screen overlay.
func (v *Viewer) Status() string {
	s := fmt.Sprintf("%s | %s %s | %d cells | Tab: next  O: orientation  C: coordinates  R: reload",
		v.PresetName(), v.active.Orientation, v.active.CoordinateSystem, v.grid.Len())
	if v.hover != nil {
		s += fmt.Sprintf(" | hover %s (%d neighbors)", v.hover.Label, len(v.hover.Neighbors))
	}
	return s
}
