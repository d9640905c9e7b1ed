package layout

import "image"

// Anchor helpers place a rectangle of a given size so that one of its
// reference points lands on p. Halves round down, so a 5px wide rect
// centered on x=10 starts at x=8.

func rect(x, y int, size image.Point) image.Rectangle {
	return image.Rect(x, y, x+size.X, y+size.Y)
}

func Center(size, p image.Point) image.Rectangle {
	return rect(p.X-size.X/2, p.Y-size.Y/2, size)
}

func MidBottom(size, p image.Point) image.Rectangle {
	return rect(p.X-size.X/2, p.Y-size.Y, size)
}

func MidTop(size, p image.Point) image.Rectangle {
	return rect(p.X-size.X/2, p.Y, size)
}

func MidLeft(size, p image.Point) image.Rectangle {
	return rect(p.X, p.Y-size.Y/2, size)
}

func BottomLeft(size, p image.Point) image.Rectangle {
	return rect(p.X, p.Y-size.Y, size)
}

func TopLeft(size, p image.Point) image.Rectangle {
	return rect(p.X, p.Y, size)
}

// CenterX and CenterY follow the same rounding as the anchors above.
func CenterX(r image.Rectangle) int { return r.Min.X + r.Dx()/2 }
func CenterY(r image.Rectangle) int { return r.Min.Y + r.Dy()/2 }

// Fit scales size uniformly so it fits inside bounds.
func Fit(size, bounds image.Point) image.Point {
	if size.X <= 0 || size.Y <= 0 {
		return image.Point{}
	}
	f := min(float64(bounds.X)/float64(size.X), float64(bounds.Y)/float64(size.Y))
	return Scale(size, f)
}

// Scale multiplies both dimensions by f, truncating.
func Scale(size image.Point, f float64) image.Point {
	return image.Pt(int(float64(size.X)*f), int(float64(size.Y)*f))
}

// ScaleToWidth keeps the aspect ratio while forcing the width.
func ScaleToWidth(size image.Point, w int) image.Point {
	if size.X <= 0 {
		return image.Pt(w, 0)
	}
	return image.Pt(w, int(float64(size.Y)*(float64(w)/float64(size.X))))
}

// Square is the size of a square image scaled (not cropped) to the smaller
// dimension.
func Square(size image.Point) image.Point {
	s := min(size.X, size.Y)
	return image.Pt(s, s)
}
