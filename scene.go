package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"apollo/internal/assets"
	"apollo/internal/entity"
	"apollo/internal/layout"
	"apollo/internal/menu"
)

// --- Text ---
const (
	creditsText     = "Created by MexrlDev"
	aboutIntroText  = "This is Apollo Save Tool PS3/PS4 copy but on pc, made with Go"
	aboutAuthorText = "(Made By MexrlDev)"
	aboutMemoryText = "In memory of leon and luna"
	aboutLinkText   = "https://github.com/bucanero/apollo-ps3"
)

// --- Font Sizes ---
const (
	labelFontSize   = 36
	creditsFontSize = 18
	smallFontSize   = 24
)

// scene is every sprite and face loaded at startup, already scaled to the
// size it is drawn at (except the window-sized ones).
type scene struct {
	apollo   *ebiten.Image
	intro    *ebiten.Image
	logo     *ebiten.Image
	logoText *ebiten.Image
	columns  []*ebiten.Image
	jars     []*entity.Jar

	help     *ebiten.Image
	cat      *ebiten.Image
	topLine  *ebiten.Image
	memorial *ebiten.Image

	labelFace   text.Face
	creditsFace text.Face
	smallFace   text.Face
}

// loadScene loads every sprite. Any image failure aborts; the font falls
// back to the embedded one.
func loadScene(m *assets.Manager) (*scene, error) {
	sc := &scene{}
	var err error

	// 1. Fonts
	src := m.LoadFont()
	sc.labelFace = &text.GoTextFace{Source: src, Size: labelFontSize}
	sc.creditsFace = &text.GoTextFace{Source: src, Size: creditsFontSize}
	sc.smallFace = &text.GoTextFace{Source: src, Size: smallFontSize}

	// 2. Backgrounds and branding
	if sc.apollo, err = m.LoadImage("apollo.jpg"); err != nil {
		return nil, err
	}
	if sc.intro, err = loadFitted(m, "buk_scr.png", func(p image.Point) image.Point {
		return layout.Fit(p, image.Pt(layout.IntroMaxWidth, layout.IntroMaxHeight))
	}); err != nil {
		return nil, err
	}
	if sc.logo, err = m.LoadScaled("logo.png", image.Pt(layout.LogoSize, layout.LogoSize)); err != nil {
		return nil, err
	}
	if sc.logoText, err = loadFitted(m, "logo_text.png", func(p image.Point) image.Point {
		return layout.ScaleToWidth(p, layout.LogoTextWidth)
	}); err != nil {
		return nil, err
	}

	// 3. Columns and jars
	for i := range menu.Items {
		col, err := loadFitted(m, fmt.Sprintf("column_%d.png", i+1), func(p image.Point) image.Point {
			return layout.ColumnSize(i, p)
		})
		if err != nil {
			return nil, err
		}
		sc.columns = append(sc.columns, col)
	}
	for _, item := range menu.Items {
		base, err := loadFitted(m, item.Base, layout.JarSize)
		if err != nil {
			return nil, err
		}
		hover, err := loadFitted(m, item.Hover, layout.JarSize)
		if err != nil {
			return nil, err
		}
		sc.jars = append(sc.jars, entity.NewJar(item.Label, base, hover, sc.labelFace))
	}

	// 4. About panel
	if sc.help, err = m.LoadImage("help.png"); err != nil {
		return nil, err
	}
	if sc.cat, err = loadFitted(m, "cat_about.png", layout.Square); err != nil {
		return nil, err
	}
	if sc.topLine, err = m.LoadImage("top_line.png"); err != nil {
		return nil, err
	}
	if sc.memorial, err = m.LoadScaled("leon_luna.jpg", image.Pt(layout.MemorialWidth, layout.MemorialHeight)); err != nil {
		return nil, err
	}
	return sc, nil
}

// loadFitted loads name and rescales it to size(natural size).
func loadFitted(m *assets.Manager, name string, size func(image.Point) image.Point) (*ebiten.Image, error) {
	img, err := m.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return assets.Rescale(img, size(img.Bounds().Size())), nil
}

// metrics reports the sizes the layout engine works from.
func (sc *scene) metrics() layout.Metrics {
	m := layout.Metrics{
		Intro:    sc.intro.Bounds().Size(),
		Logo:     sc.logo.Bounds().Size(),
		LogoText: sc.logoText.Bounds().Size(),
		Credits:  entity.TextSize(creditsText, sc.creditsFace),
		About: layout.AboutMetrics{
			Help:    sc.help.Bounds().Size(),
			Cat:     sc.cat.Bounds().Size(),
			TopLine: sc.topLine.Bounds().Size(),
			Intro:   entity.TextSize(aboutIntroText, sc.smallFace),
			Author:  entity.TextSize(aboutAuthorText, sc.smallFace),
			Memory:  entity.TextSize(aboutMemoryText, sc.labelFace),
			Link:    entity.TextSize(aboutLinkText, sc.smallFace),
		},
	}
	for _, col := range sc.columns {
		m.Columns = append(m.Columns, col.Bounds().Size())
	}
	for _, jar := range sc.jars {
		m.Jars = append(m.Jars, jar.Size())
		m.Labels = append(m.Labels, jar.LabelSize())
	}
	return m
}
