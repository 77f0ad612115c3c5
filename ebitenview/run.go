package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	ShowFPS       bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	width  int
	height int
	stats  *statsOverlay
	cursor ebiten.CursorShapeType
}

func (g *game) Update() error {
	g.scene.Update()
	shape := ebiten.CursorShapeDefault
	if g.scene.AnyHovered() {
		shape = ebiten.CursorShapePointer
	}
	if shape != g.cursor {
		ebiten.SetCursorShape(shape)
		g.cursor = shape
	}
	if g.stats != nil {
		g.stats.update(1.0/float64(ebiten.TPS()), g.scene)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.stats != nil {
		g.stats.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens a window and runs the scene until the window is closed.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	g := &game{scene: scene, width: cfg.Width, height: cfg.Height}
	if cfg.ShowFPS {
		g.stats = &statsOverlay{}
	}
	return ebiten.RunGame(g)
}
