// Package menu defines the fixed jar menu and maps pointer input onto it.
package menu

import (
	"image"

	"apollo/internal/screen"
)

// Item is one jar of the main menu.
type Item struct {
	Label string
	Base  string // image asset name
	Hover string // image asset name shown while hovered
}

const AboutLabel = "About"

// Items are the seven jars, left to right.
var Items = []Item{
	newItem("Trophies", "jar_trophy"),
	newItem("USB Saves", "jar_usb"),
	newItem("HDD Saves", "jar_hdd"),
	newItem("Online DB", "jar_db"),
	newItem("Tools", "jar_bup"),
	newItem("Settings", "jar_opt"),
	newItem(AboutLabel, "jar_about"),
}

func newItem(label, sprite string) Item {
	return Item{
		Label: label,
		Base:  sprite + ".png",
		Hover: sprite + "_hover.png",
	}
}

// HitTest returns the index of the first rectangle containing p, or -1.
func HitTest(rects []image.Rectangle, p image.Point) int {
	for i, r := range rects {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Action maps a clicked label to a screen event. Only About is wired; the
// other jars report EventNone and are just logged by the caller.
func Action(label string) screen.Event {
	if label == AboutLabel {
		return screen.EventAbout
	}
	return screen.EventNone
}
