package ebitenview

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/magnetic"
)

// ButtonOptions describes a button added with Scene.AddButton.
type ButtonOptions struct {
	Name          string
	Label         string
	X, Y          float64
	Width, Height float64

	// Style defaults to DefaultSkinStyle when nil.
	Style *SkinStyle

	// NoLabel omits the label layers: the button follows the pointer without
	// parallax or transitions. NoFiller keeps the parallax label but drops the
	// filler, which also disables transitions.
	NoLabel  bool
	NoFiller bool
}

// Button is one magnetic element group on a Scene together with its skin.
type Button struct {
	Name       string
	Root       *magnetic.Element
	Controller *magnetic.Controller

	skin *Skin

	// Lazily created ebiten images.
	face, filler, label *ebiten.Image
	offscreen           *ebiten.Image
}

// newButtonGroup builds the element tree for opts using the class names in cfg.
func newButtonGroup(opts ButtonOptions, cfg magnetic.Config) *magnetic.Element {
	root := magnetic.NewElement(opts.Name, opts.X, opts.Y, opts.Width, opts.Height)
	if opts.NoLabel {
		return root
	}
	label := magnetic.NewElement(opts.Name+".label", 0, 0, opts.Width, opts.Height, cfg.LabelClass)
	label.AddChild(magnetic.NewElement(opts.Name+".inner", 0, 0, opts.Width, opts.Height, cfg.LabelInnerClass))
	root.AddChild(label)
	if !opts.NoFiller {
		filler := magnetic.NewElement(opts.Name+".filler", 0, 0, opts.Width, opts.Height, cfg.FillerClass)
		// Rest position: fully below the face.
		filler.FillY = 1
		root.AddChild(filler)
	}
	return root
}

// Hovered reports whether the button's controller is in the hover state.
func (b *Button) Hovered() bool {
	return b.Controller.State() == magnetic.HoverActive
}

func (b *Button) ensureImages() {
	if b.offscreen != nil {
		return
	}
	bounds := b.skin.Face.Bounds()
	b.offscreen = ebiten.NewImage(bounds.Dx(), bounds.Dy())
	b.face = ebiten.NewImageFromImage(b.skin.Face)
	b.filler = ebiten.NewImageFromImage(b.skin.Filler)
	if b.skin.Label != nil {
		b.label = ebiten.NewImageFromImage(b.skin.Label)
	}
}

// draw composes the layers into the button's offscreen image and blits it at
// the root's current viewport position.
func (b *Button) draw(screen *ebiten.Image, doc *magnetic.Document, hoverClass string) {
	b.ensureImages()
	b.offscreen.Clear()

	var op ebiten.DrawImageOptions
	if b.Root.HasClass(hoverClass) {
		op.ColorScale.Scale(1.15, 1.15, 1.15, 1)
	}
	b.offscreen.DrawImage(b.face, &op)

	if f := b.Controller.Filler(); f != nil && f.Visible {
		op = ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, f.FillY*f.Height)
		op.ColorScale.ScaleAlpha(float32(f.Alpha))
		b.offscreen.DrawImage(b.filler, &op)
	}

	if b.label != nil {
		if l := b.Controller.Label(); l != nil && l.Visible {
			op = ebiten.DrawImageOptions{}
			op.GeoM.Translate(l.X+l.TranslateX, l.Y+l.TranslateY)
			if in := b.Controller.LabelInner(); in != nil {
				op.GeoM.Translate(in.X+in.TranslateX, in.Y+in.TranslateY+in.FillY*in.Height)
				// Fade the label as it slides away from its rest line.
				alpha := in.Alpha * magnetic.Map(math.Min(math.Abs(in.FillY), 1), 0, 1, 1, 0)
				op.ColorScale.ScaleAlpha(float32(alpha))
			}
			b.offscreen.DrawImage(b.label, &op)
		}
	}

	r := b.Root.Bounds(doc)
	op = ebiten.DrawImageOptions{}
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleAlpha(float32(b.Root.Alpha))
	screen.DrawImage(b.offscreen, &op)
}
