package ebitenview

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/phanxgames/magnetic"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// SkinStyle controls how RenderSkin paints a button.
type SkinStyle struct {
	Face     magnetic.Color
	Border   magnetic.Color
	Fill     magnetic.Color
	Text     magnetic.Color
	Radius   float64 // corner radius in pixels
	FontSize float64 // label size in points at 72 DPI
}

// DefaultSkinStyle returns a dark pill with a blue filler and white label.
func DefaultSkinStyle() SkinStyle {
	return SkinStyle{
		Face:     magnetic.Color{R: 0.12, G: 0.12, B: 0.16, A: 1},
		Border:   magnetic.Color{R: 0.85, G: 0.85, B: 0.9, A: 1},
		Fill:     magnetic.Color{R: 0.27, G: 0.45, B: 0.95, A: 1},
		Text:     magnetic.ColorWhite,
		Radius:   -1,
		FontSize: 16,
	}
}

// Skin holds the rasterized layers of one button. Layers are plain images so
// skins can be rendered and inspected without a graphics context.
type Skin struct {
	Face   image.Image
	Filler image.Image
	Label  image.Image // nil when the button has no label text
}

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func loadMono() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// RenderSkin rasterizes the face, filler and label layers of a width x height
// button. A negative style.Radius means fully rounded ends.
func RenderSkin(width, height int, label string, style SkinStyle) (*Skin, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid skin size %dx%d", width, height)
	}
	w, h := float64(width), float64(height)
	radius := style.Radius
	if radius < 0 {
		radius = h / 2
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(style.Face.RGBA())
	dc.DrawRoundedRectangle(0, 0, w, h, radius)
	dc.Fill()
	dc.SetColor(style.Border.RGBA())
	dc.SetLineWidth(1.5)
	dc.DrawRoundedRectangle(0.75, 0.75, w-1.5, h-1.5, radius)
	dc.Stroke()
	skin := &Skin{Face: dc.Image()}

	// The filler is a wide ellipse that slides up from below the face.
	fc := gg.NewContext(width, height)
	fc.SetColor(style.Fill.RGBA())
	fc.DrawRoundedRectangle(0, 0, w, h, radius)
	fc.Clip()
	fc.DrawEllipse(w/2, h, w*0.75, h)
	fc.Fill()
	skin.Filler = fc.Image()

	if label == "" {
		return skin, nil
	}
	f, err := loadMono()
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	size := style.FontSize
	if size <= 0 {
		size = 16
	}
	lc := gg.NewContext(width, height)
	lc.SetFontFace(truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}))
	lc.SetColor(style.Text.RGBA())
	lc.DrawStringAnchored(label, w/2, h/2, 0.5, 0.5)
	skin.Label = lc.Image()
	return skin, nil
}
