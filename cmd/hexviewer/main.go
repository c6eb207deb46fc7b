// cmd/hexviewer/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"go-hexagons/internal/app"
	"go-hexagons/internal/event"
	"go-hexagons/internal/log"
	"go-hexagons/internal/viewer"
	"go-hexagons/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/spf13/pflag"
)

type AppGame struct {
	width    int
	height   int
	viewer   *viewer.Viewer
	renderer *render.HexRenderer
	mapDirty bool
}

// OnEvent помечает задник для перерисовки после перестроения сетки
func (a *AppGame) OnEvent(e event.Event) {
	if e.Type == event.GridRebuilt {
		a.mapDirty = true
	}
}

func (a *AppGame) Update() error {
	// Ошибки перестроения уже залогированы во viewer, текущая сетка остаётся
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		a.viewer.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		a.viewer.ToggleOrientation()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		a.viewer.ToggleCoordinateSystem()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.viewer.Reload()
	}

	cx, cy := ebiten.CursorPosition()
	a.viewer.UpdateHover(float64(cx), float64(cy))

	if a.mapDirty {
		a.renderer.RenderMapImage(a.viewer.Grid(), a.viewer, a.viewer.Label)
		a.mapDirty = false
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	var hl *render.Highlight
	if hover, ok := a.viewer.Hovered(); ok {
		hl = &render.Highlight{Cell: hover.Cell, Neighbors: hover.Neighbors}
	}
	a.renderer.Draw(screen, a.viewer, hl, a.viewer.Status())
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// run возвращает ошибку вместо выхода, чтобы отложенные Close отработали
func run(args []string) error {
	game := &AppGame{mapDirty: true}
	session, err := app.Start(args, game)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	defer session.Close()

	settings := session.Settings
	game.width, game.height = settings.Window.Width, settings.Window.Height
	game.viewer = session.Viewer
	game.renderer, err = render.NewHexRenderer(render.DefaultColors(), settings.Window.Width, settings.Window.Height)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("hexviewer: %v", err)
	}
}
