// pkg/render/color.go
package render

import "image/color"

// MapColors holds all the color definitions needed to render the grid.
type MapColors struct {
	BackgroundColor color.RGBA
	CellColor       color.RGBA
	OriginColor     color.RGBA
	HoverColor      color.RGBA
	NeighborColor   color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StatusColor     color.RGBA
	StrokeWidth     float32
}

func DefaultColors() MapColors {
	return MapColors{
		BackgroundColor: color.RGBA{R: 24, G: 26, B: 32, A: 255},
		CellColor:       color.RGBA{R: 70, G: 92, B: 120, A: 255},
		OriginColor:     color.RGBA{R: 150, G: 110, B: 60, A: 255},
		HoverColor:      color.RGBA{R: 255, G: 210, B: 80, A: 255},
		NeighborColor:   color.RGBA{R: 90, G: 200, B: 140, A: 255},
		TextDarkColor:   color.RGBA{R: 20, G: 20, B: 20, A: 255},
		TextLightColor:  color.RGBA{R: 230, G: 230, B: 230, A: 255},
		StatusColor:     color.RGBA{R: 200, G: 200, B: 200, A: 255},
		StrokeWidth:     1.5,
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to each channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}

// TextColorFor picks a label color that stays readable on fill.
func (c MapColors) TextColorFor(fill color.RGBA) color.RGBA {
	if (int(fill.R)+int(fill.G)+int(fill.B))/3 > 128 {
		return c.TextDarkColor
	}
	return c.TextLightColor
}

// WithAlpha returns c at opacity a, keeping the channels premultiplied.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(int(v) * int(a) / 255) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
