package menu

import (
	"bytes"
	"image"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"apollo/internal/screen"
)

func jarRects() []image.Rectangle {
	rects := make([]image.Rectangle, len(Items))
	for i := range rects {
		rects[i] = image.Rect(i*100, 500, i*100+80, 600)
	}
	return rects
}

func TestItems(t *testing.T) {
	require.Len(t, Items, 7)
	require.Equal(t, AboutLabel, Items[6].Label)
	require.Equal(t, "jar_about.png", Items[6].Base)
	require.Equal(t, "jar_about_hover.png", Items[6].Hover)
}

func TestHitTest(t *testing.T) {
	rects := jarRects()

	require.Equal(t, 0, HitTest(rects, image.Pt(0, 500)))
	require.Equal(t, 2, HitTest(rects, image.Pt(250, 550)))
	// Max edges are exclusive
	require.Equal(t, -1, HitTest(rects, image.Pt(80, 550)))
	require.Equal(t, -1, HitTest(rects, image.Pt(50, 600)))
	require.Equal(t, -1, HitTest(nil, image.Pt(50, 550)))
}

func TestAction(t *testing.T) {
	require.Equal(t, screen.EventAbout, Action(AboutLabel))
	for _, it := range Items[:6] {
		require.Equal(t, screen.EventNone, Action(it.Label), it.Label)
	}
}

func TestDispatchAboutClick(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())
	rects := jarRects()

	hover, ev := d.Dispatch(Input{Cursor: image.Pt(640, 550), Clicked: true}, rects, true)
	require.Equal(t, 6, hover)
	require.Equal(t, screen.EventAbout, ev)

	// Hovering alone does nothing
	hover, ev = d.Dispatch(Input{Cursor: image.Pt(640, 550)}, rects, true)
	require.Equal(t, 6, hover)
	require.Equal(t, screen.EventNone, ev)
}

func TestDispatchInertJarLogs(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(zerolog.New(&buf))

	_, ev := d.Dispatch(Input{Cursor: image.Pt(340, 550), Clicked: true}, jarRects(), true)
	require.Equal(t, screen.EventNone, ev)
	require.Contains(t, buf.String(), `"jar":"Online DB"`)
}

func TestDispatchInactiveMenu(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	hover, ev := d.Dispatch(Input{Cursor: image.Pt(640, 550), Clicked: true}, jarRects(), false)
	require.Equal(t, -1, hover)
	require.Equal(t, screen.EventNone, ev)
}

func TestDispatchKeys(t *testing.T) {
	d := NewDispatcher(zerolog.Nop())

	_, ev := d.Dispatch(Input{Escape: true, Clicked: true, Cursor: image.Pt(640, 550)}, jarRects(), true)
	require.Equal(t, screen.EventEscape, ev)

	_, ev = d.Dispatch(Input{Quit: true, Escape: true}, jarRects(), false)
	require.Equal(t, screen.EventQuit, ev)
}
