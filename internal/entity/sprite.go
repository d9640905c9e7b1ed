package entity

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// DrawAt draws img with its top-left corner at r.Min, stretched to r when
// the sizes differ.
func DrawAt(dst, img *ebiten.Image, r image.Rectangle, alpha float32) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()

	op := &ebiten.DrawImageOptions{}
	if b.Size() != r.Size() {
		op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
		op.Filter = ebiten.FilterLinear
	}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

// DrawText draws s with its top-left corner at r.Min.
func DrawText(dst *ebiten.Image, s string, face text.Face, r image.Rectangle, clr color.Color, alpha float32) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(alpha)
	text.Draw(dst, s, face, op)
}

// TextSize measures s rounded up to whole pixels.
func TextSize(s string, face text.Face) image.Point {
	w, h := text.Measure(s, face, 0)
	return ceilSize(w, h)
}

func ceilSize(w, h float64) image.Point {
	return image.Pt(int(math.Ceil(w)), int(math.Ceil(h)))
}
