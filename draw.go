package main

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"apollo/internal/entity"
	"apollo/internal/layout"
)

// --- Colors ---
var (
	ColText = color.White
	ColBars = color.Black
)

func (g *Game) drawIntro(dst *ebiten.Image, now time.Duration) {
	entity.DrawAt(dst, g.scene.intro, g.layout.Intro, float32(g.Machine.IntroAlpha(now)))
}

func (g *Game) drawBackground(dst *ebiten.Image) {
	entity.DrawAt(dst, g.background, image.Rectangle{Max: g.window}, 1)
}

func (g *Game) drawOverlay(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	entity.DrawAt(dst, g.overlay, image.Rectangle{Max: g.window}, float32(alpha))
}

// drawMenu renders the backdrop, branding, credits and the jar row.
func (g *Game) drawMenu(dst *ebiten.Image) {
	sc, l := g.scene, g.layout

	// 1. Backdrop and branding
	g.drawBackground(dst)
	entity.DrawAt(dst, sc.logo, l.Logo, 1)
	entity.DrawAt(dst, sc.logoText, l.LogoText, 1)
	entity.DrawText(dst, creditsText, sc.creditsFace, l.Credits, ColText, 1)

	// 2. Columns
	for i, col := range sc.columns {
		if i < len(l.Columns) {
			entity.DrawAt(dst, col, l.Columns[i], 1)
		}
	}

	// 3. Jars with hover feedback
	idle := float32(g.Machine.LabelAlpha())
	for i, jar := range sc.jars {
		if i >= len(l.Jars) || i >= len(l.Labels) {
			break
		}
		jar.Draw(dst, l.Jars[i], l.Labels[i], i == g.Hover, idle)
	}
}

func (g *Game) drawAbout(dst *ebiten.Image) {
	sc, a := g.scene, g.layout.About

	g.drawBackground(dst)
	entity.DrawAt(dst, sc.help, a.Help, 1)
	entity.DrawAt(dst, sc.cat, a.Cat, 1)
	entity.DrawAt(dst, sc.topLine, a.TopLine, 1)

	entity.DrawText(dst, aboutIntroText, sc.smallFace, a.Intro, ColText, 1)
	entity.DrawText(dst, aboutAuthorText, sc.smallFace, a.Author, ColText, 1)
	entity.DrawText(dst, aboutMemoryText, sc.labelFace, a.Memory, ColText, 1)
	entity.DrawAt(dst, sc.memorial, a.Memorial, 1)
	entity.DrawText(dst, aboutLinkText, sc.smallFace, a.Link, ColText, 1)
}

// drawShutdown closes black bars over a white screen with the logo centered.
func (g *Game) drawShutdown(dst *ebiten.Image, now time.Duration) {
	dst.Fill(color.White)
	entity.DrawAt(dst, g.scene.logo, g.layout.ShutdownLogo, 1)

	top, bottom := layout.ShutdownBars(g.window, g.Machine.ShutdownProgress(now))
	for _, r := range []image.Rectangle{top, bottom} {
		if r.Empty() {
			continue
		}
		vector.FillRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), ColBars, false)
	}
}
