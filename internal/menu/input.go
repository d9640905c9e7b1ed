package menu

import (
	"image"

	"github.com/rs/zerolog"

	"apollo/internal/screen"
)

// Input is the pointer and keyboard state sampled once per frame.
type Input struct {
	Cursor  image.Point
	Clicked bool // left button went down this frame
	Escape  bool // escape went down this frame
	Quit    bool
}

// Dispatcher turns a frame's input into hover feedback and a single
// screen event.
type Dispatcher struct {
	log zerolog.Logger
}

func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Dispatch resolves in against the jar rectangles. hover is -1 when the
// cursor is over no jar. Jar hits are only evaluated while menuActive.
func (d *Dispatcher) Dispatch(in Input, jars []image.Rectangle, menuActive bool) (hover int, ev screen.Event) {
	hover = -1
	if menuActive {
		hover = HitTest(jars, in.Cursor)
	}

	switch {
	case in.Quit:
		return hover, screen.EventQuit
	case in.Escape:
		return hover, screen.EventEscape
	case in.Clicked && hover >= 0 && hover < len(Items):
		label := Items[hover].Label
		ev = Action(label)
		if ev == screen.EventNone {
			d.log.Info().Str("jar", label).Msg("jar clicked")
		}
		return hover, ev
	}
	return hover, screen.EventNone
}
