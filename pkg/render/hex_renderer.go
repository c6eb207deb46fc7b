package render

import (
	"fmt"
	"image/color"

	"go-hexagons/pkg/hexmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Метки не рисуем, если гекс слишком мелкий для текста
const minLabelRadius = 12

// Projection задаёт положение гексов на экране.
type Projection interface {
	HexToScreen(h hexmap.Hexagon) (float64, float64)
	Layout() hexmap.Layout
}

// Highlight: гекс под курсором и его соседи для подсветки.
type Highlight struct {
	Cell      hexmap.Hexagon
	Neighbors []hexmap.Hexagon
}

type HexRenderer struct {
	colors       MapColors
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	strokeImg    *ebiten.Image
	hexes        []hexmap.Hexagon
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	strokeVs     []ebiten.Vertex
	strokeIs     []uint16
	fontFace     font.Face
	mapImage     *ebiten.Image // Поле для предрендеренной карты
}

func NewHexRenderer(colors MapColors, screenWidth, screenHeight int) (*HexRenderer, error) {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	// Встроенный шрифт Go, без файлов на диске
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}
	const fontSize = 10
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create label font face: %w", err)
	}

	return &HexRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
		strokeImg:    strokeImg,
		fillVs:       make([]ebiten.Vertex, 0, 18),
		fillIs:       make([]uint16, 0, 18),
		strokeVs:     make([]ebiten.Vertex, 0, 36),
		strokeIs:     make([]uint16, 0, 36),
		fontFace:     face,
		mapImage:     ebiten.NewImage(screenWidth, screenHeight), // Создаём изображение размером с экран
	}, nil
}

// RenderMapImage создаёт предрендеренное изображение сетки.
// label возвращает подпись гекса; nil отключает подписи.
func (r *HexRenderer) RenderMapImage(grid *hexmap.Grid, proj Projection, label func(hexmap.Hexagon) string) {
	r.mapImage.Fill(r.colors.BackgroundColor)

	r.hexes = r.hexes[:0]
	grid.ForEach(func(h hexmap.Hexagon) bool {
		r.hexes = append(r.hexes, h)
		return true
	})

	layout := proj.Layout()
	for _, hex := range r.hexes {
		fill := r.colors.CellColor
		if hex == (hexmap.Hexagon{}) {
			fill = r.colors.OriginColor
		}
		x, y := proj.HexToScreen(hex)
		r.drawHexFill(r.mapImage, layout, x, y, fill)
	}

	for _, hex := range r.hexes {
		x, y := proj.HexToScreen(hex)
		r.drawHexOutline(r.mapImage, layout, x, y, LightenColor(r.colors.CellColor, 40), r.colors.StrokeWidth)
	}

	if label == nil || layout.Radius() < minLabelRadius {
		return
	}
	for _, hex := range r.hexes {
		x, y := proj.HexToScreen(hex)
		fill := r.colors.CellColor
		if hex == (hexmap.Hexagon{}) {
			fill = r.colors.OriginColor
		}
		r.drawLabel(r.mapImage, label(hex), x, y, r.colors.TextColorFor(fill))
	}
}

// Draw рисует предрендеренную сетку, подсветку и строку состояния.
func (r *HexRenderer) Draw(screen *ebiten.Image, proj Projection, hl *Highlight, status string) {
	// Рисуем предрендеренную карту одним вызовом
	screen.DrawImage(r.mapImage, nil)

	if hl != nil {
		layout := proj.Layout()
		neighborFill := WithAlpha(r.colors.NeighborColor, 140)
		for _, n := range hl.Neighbors {
			x, y := proj.HexToScreen(n)
			r.drawHexFill(screen, layout, x, y, neighborFill)
			r.drawHexOutline(screen, layout, x, y, DarkenColor(r.colors.NeighborColor), r.colors.StrokeWidth)
		}

		x, y := proj.HexToScreen(hl.Cell)
		r.drawHexOutline(screen, layout, x, y, r.colors.HoverColor, r.colors.StrokeWidth*2)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(layout.Radius()/6), r.colors.HoverColor, true)
	}

	if status != "" {
		bounds := text.BoundString(r.fontFace, status)
		text.Draw(screen, status, r.fontFace, 8, 8-bounds.Min.Y, r.colors.StatusColor)
	}
}

func hexPath(layout hexmap.Layout, x, y float64) vector.Path {
	path := vector.Path{}
	for i, c := range layout.Corners() {
		px := float32(x + c[0])
		py := float32(y + c[1])
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()
	return path
}

func colorVertices(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}

func (r *HexRenderer) drawHexFill(target *ebiten.Image, layout hexmap.Layout, x, y float64, fill color.RGBA) {
	path := hexPath(layout, x, y)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	colorVertices(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawHexOutline(target *ebiten.Image, layout hexmap.Layout, x, y float64, stroke color.RGBA, width float32) {
	path := hexPath(layout, x, y)
	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: width,
	})
	colorVertices(r.strokeVs, stroke)
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *HexRenderer) drawLabel(target *ebiten.Image, label string, x, y float64, c color.RGBA) {
	bounds := text.BoundString(r.fontFace, label)
	textWidth := bounds.Max.X - bounds.Min.X
	textHeight := bounds.Max.Y - bounds.Min.Y
	text.Draw(target, label, r.fontFace, int(x)-textWidth/2, int(y)+textHeight/2, c)
}
