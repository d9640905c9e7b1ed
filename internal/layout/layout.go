package layout

import "image"

// --- Column & Jar Configuration ---
const (
	ColumnHeight     = 150
	ColumnGap        = 20
	FirstColumnGap   = 50 // gap after column 1
	SixthColumnGap   = 80 // gap after column 6
	JarScale         = 0.8
	LabelGap         = 5
	LogoSize         = 280
	LogoRaise        = 177
	LogoTextWidth    = 500
	LogoTextGap      = 2
	CreditsMargin    = 10
	IntroMaxWidth    = 600
	IntroMaxHeight   = 400
	HelpPanelPercent = 0.85
)

var (
	ColumnOffsets = []int{40, 11, 26, 0, 50, 0, 70}
	ColumnScales  = []float64{1.0, 1.0, 1.0, 1.1, 1.0, 1.0, 1.0}
	JarOffsets    = []int{1, 1, 1, 1, 1, 1, 1}
)

// Metrics holds the already-scaled sprite and text sizes the layout is
// computed from. It does not change on resize.
type Metrics struct {
	Intro    image.Point
	Logo     image.Point
	LogoText image.Point
	Credits  image.Point
	Columns  []image.Point
	Jars     []image.Point
	Labels   []image.Point
	About    AboutMetrics
}

// Layout is every rectangle drawn for one window size.
type Layout struct {
	Window       image.Point
	Intro        image.Rectangle
	Logo         image.Rectangle
	LogoText     image.Rectangle
	Credits      image.Rectangle
	Columns      []image.Rectangle
	Jars         []image.Rectangle
	Labels       []image.Rectangle
	ShutdownLogo image.Rectangle
	About        About
}

// Compute derives the full layout for window size win.
func Compute(win image.Point, m Metrics) Layout {
	l := Layout{Window: win}

	// 1. Splash and branding
	l.Intro = Center(m.Intro, image.Pt(win.X/2, win.Y/2))
	l.Logo = Center(m.Logo, image.Pt(win.X/2, win.Y/2-LogoRaise))
	l.LogoText = MidTop(m.LogoText, image.Pt(CenterX(l.Logo), l.Logo.Max.Y+LogoTextGap))
	l.Credits = BottomLeft(m.Credits, image.Pt(CreditsMargin, win.Y-CreditsMargin))
	l.ShutdownLogo = Center(m.Logo, image.Pt(win.X/2, win.Y/2))

	// 2. Menu row
	l.Columns = Columns(win, m.Columns)
	l.Jars = Jars(l.Columns, m.Jars)
	l.Labels = Labels(l.Jars, m.Labels)

	// 3. About panel
	l.About = ComputeAbout(win, m.About)
	return l
}

// ColumnSize scales a column sprite to the fixed row height, applying the
// per-column width scale.
func ColumnSize(i int, natural image.Point) image.Point {
	if natural.Y <= 0 {
		return image.Pt(0, ColumnHeight)
	}
	scale := 1.0
	if i < len(ColumnScales) {
		scale = ColumnScales[i]
	}
	w := int(float64(natural.X) * (float64(ColumnHeight) / float64(natural.Y)) * scale)
	return image.Pt(w, ColumnHeight)
}

// JarSize applies the jar scale to a natural jar sprite size.
func JarSize(natural image.Point) image.Point {
	return Scale(natural, JarScale)
}

func gapAfter(i int) int {
	switch i {
	case 0:
		return FirstColumnGap
	case 5:
		return SixthColumnGap
	}
	return ColumnGap
}

// RowWidth is the total width of the column row including gaps.
func RowWidth(sizes []image.Point) int {
	total := 0
	for i, s := range sizes {
		total += s.X
		if i < len(sizes)-1 {
			total += gapAfter(i)
		}
	}
	return total
}

func floorDiv2(v int) int {
	if v < 0 {
		return -((-v + 1) / 2)
	}
	return v / 2
}

// Columns lays the columns out in one horizontally centered row sitting on
// the window bottom, each pushed down by its offset.
func Columns(win image.Point, sizes []image.Point) []image.Rectangle {
	rects := make([]image.Rectangle, 0, len(sizes))
	x := floorDiv2(win.X - RowWidth(sizes))
	for i, s := range sizes {
		r := MidBottom(s, image.Pt(x+s.X/2, win.Y))
		if i < len(ColumnOffsets) {
			r = r.Add(image.Pt(0, ColumnOffsets[i]))
		}
		rects = append(rects, r)
		x += s.X + gapAfter(i)
	}
	return rects
}

// Jars stands each jar on top of its column.
func Jars(columns []image.Rectangle, sizes []image.Point) []image.Rectangle {
	n := min(len(columns), len(sizes))
	rects := make([]image.Rectangle, n)
	for i := 0; i < n; i++ {
		offset := 0
		if i < len(JarOffsets) {
			offset = JarOffsets[i]
		}
		rects[i] = MidBottom(sizes[i], image.Pt(CenterX(columns[i]), columns[i].Min.Y+offset))
	}
	return rects
}

// Labels hovers each label just above its jar.
func Labels(jars []image.Rectangle, sizes []image.Point) []image.Rectangle {
	n := min(len(jars), len(sizes))
	rects := make([]image.Rectangle, n)
	for i := 0; i < n; i++ {
		rects[i] = MidBottom(sizes[i], image.Pt(CenterX(jars[i]), jars[i].Min.Y-LabelGap))
	}
	return rects
}

// ShutdownBars returns the top and bottom black bars at the given progress.
// At progress 1 their heights add up to the window height.
func ShutdownBars(win image.Point, progress float64) (top, bottom image.Rectangle) {
	progress = max(0, min(1, progress))
	covered := int(float64(win.Y) * progress)
	topH := covered / 2
	bottomH := covered - topH
	top = image.Rect(0, 0, win.X, topH)
	bottom = image.Rect(0, win.Y-bottomH, win.X, win.Y)
	return top, bottom
}
