package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// statsOverlay shows FPS, TPS and the pointer in the top-left corner.
// The text is refreshed every ~0.5 seconds.
type statsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	text       string
}

func (o *statsOverlay) update(dt float64, s *Scene) {
	o.lastUpdate += dt
	if o.text != "" && o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	p := s.tracker.Position()
	hovered := 0
	for _, b := range s.buttons {
		if b.Hovered() {
			hovered++
		}
	}
	o.text = fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nptr: %.0f,%.0f\nhover: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), p.X, p.Y, hovered)
}

func (o *statsOverlay) draw(screen *ebiten.Image) {
	if o.img == nil {
		// 120x64 fits four debug-font lines.
		o.img = ebiten.NewImage(120, 64)
	}
	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, o.text)
	screen.DrawImage(o.img, nil)
}
