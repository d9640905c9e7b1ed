package layout

import "image"

// About panel spacing
const (
	CatMargin      = 20
	TopLineGap     = 10
	IntroLineTop   = 40
	AuthorLineGap  = 10
	MemoryLineGap  = 40
	MemorialGap    = 20
	LinkBottomGap  = 20
	MemorialWidth  = 300
	MemorialHeight = 200
)

// AboutMetrics are the natural sizes of the About sprites and rendered
// text lines. Help is rescaled per window, the rest keep their size.
type AboutMetrics struct {
	Help    image.Point
	Cat     image.Point
	TopLine image.Point
	Intro   image.Point
	Author  image.Point
	Memory  image.Point
	Link    image.Point
}

type About struct {
	Help     image.Rectangle
	Cat      image.Rectangle
	TopLine  image.Rectangle
	Intro    image.Rectangle
	Author   image.Rectangle
	Memory   image.Rectangle
	Memorial image.Rectangle
	Link     image.Rectangle
}

// ComputeAbout stacks the About text under the top of a help panel scaled to
// most of the window.
func ComputeAbout(win image.Point, m AboutMetrics) About {
	var a About

	bounds := Scale(win, HelpPanelPercent)
	a.Help = Center(Fit(m.Help, bounds), image.Pt(win.X/2, win.Y/2))

	a.Cat = TopLeft(Square(m.Cat), image.Pt(CatMargin, CatMargin))
	a.TopLine = MidLeft(m.TopLine, image.Pt(a.Cat.Max.X+TopLineGap, CenterY(a.Cat)))

	cx := CenterX(a.Help)
	a.Intro = MidTop(m.Intro, image.Pt(cx, a.Help.Min.Y+IntroLineTop))
	a.Author = MidTop(m.Author, image.Pt(cx, a.Intro.Max.Y+AuthorLineGap))
	a.Memory = MidTop(m.Memory, image.Pt(cx, a.Author.Max.Y+MemoryLineGap))
	a.Memorial = MidTop(image.Pt(MemorialWidth, MemorialHeight), image.Pt(cx, a.Memory.Max.Y+MemorialGap))
	a.Link = MidBottom(m.Link, image.Pt(cx, a.Help.Max.Y-LinkBottomGap))
	return a
}
