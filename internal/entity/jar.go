package entity

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var LabelColor = color.Black

// Jar is a menu button sprite with its hover variant and caption.
type Jar struct {
	Label string
	Base  *ebiten.Image
	Hover *ebiten.Image
	Face  text.Face
}

func NewJar(label string, base, hover *ebiten.Image, face text.Face) *Jar {
	return &Jar{
		Label: label,
		Base:  base,
		Hover: hover,
		Face:  face,
	}
}

// Size is the scaled sprite size.
func (j *Jar) Size() image.Point {
	return j.Base.Bounds().Size()
}

// LabelSize is the rendered caption size.
func (j *Jar) LabelSize() image.Point {
	return TextSize(j.Label, j.Face)
}

// Draw renders the jar at r and its caption at labelRect. Hovered jars
// draw the hover sprite, at its own size, over the base one and a fully opaque caption.
func (j *Jar) Draw(screen *ebiten.Image, r, labelRect image.Rectangle, hovered bool, idleAlpha float32) {
	DrawAt(screen, j.Base, r, 1)

	alpha := idleAlpha
	if hovered {
		DrawAt(screen, j.Hover, image.Rectangle{Min: r.Min, Max: r.Min.Add(j.Hover.Bounds().Size())}, 1)
		alpha = 1
	}
	DrawText(screen, j.Label, j.Face, labelRect, LabelColor, alpha)
}
