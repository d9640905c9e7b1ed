package main

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"apollo/internal/menu"
	"apollo/internal/screen"
	"apollo/internal/sound"
)

func testGame(t *testing.T) *Game {
	t.Helper()
	music := sound.NewMusic(nil, nil, errors.New("no track"), 1, zerolog.Nop())
	g := newGame(nil, music, func() time.Duration { return 0 }, zerolog.Nop())

	g.layout.Jars = make([]image.Rectangle, len(menu.Items))
	for i := range g.layout.Jars {
		g.layout.Jars[i] = image.Rect(i*100, 500, i*100+80, 600)
	}
	return g
}

var aboutJar = image.Pt(640, 550)

func TestGameFlowToShutdown(t *testing.T) {
	g := testGame(t)

	require.NoError(t, g.step(0, menu.Input{}))
	require.NoError(t, g.step(time.Second, menu.Input{}))
	require.Equal(t, screen.Intro, g.Machine.State)

	require.NoError(t, g.step(screen.IntroEnd, menu.Input{}))
	require.Equal(t, screen.ShowApollo, g.Machine.State)

	require.NoError(t, g.step(screen.IntroEnd+16*time.Millisecond, menu.Input{}))
	require.Equal(t, screen.FadeOut, g.Machine.State)

	require.NoError(t, g.step(5*time.Second, menu.Input{Escape: true}))
	require.Equal(t, screen.Shutdown, g.Machine.State)

	require.NoError(t, g.step(5*time.Second+screen.ShutdownDelay/2, menu.Input{}))

	// The tick landing exactly on the deadline still leaves one frame to draw
	end := 5*time.Second + screen.ShutdownDelay
	require.NoError(t, g.step(end, menu.Input{}))
	require.True(t, g.Machine.Done())
	require.InDelta(t, 1, g.Machine.ShutdownProgress(end), 1e-9)

	err := g.step(end+16*time.Millisecond, menu.Input{})
	require.ErrorIs(t, err, ebiten.Termination)
}

func TestGameIntroStartsOnFirstFrame(t *testing.T) {
	g := testGame(t)

	// Window setup already took 400ms before the first Update
	first := 400 * time.Millisecond
	require.NoError(t, g.step(first, menu.Input{}))
	require.Equal(t, screen.Intro, g.Machine.State)
	require.Equal(t, first, g.Machine.Since)
	require.InDelta(t, 0, g.Machine.IntroAlpha(first), 1e-9)

	require.NoError(t, g.step(screen.IntroEnd, menu.Input{}))
	require.Equal(t, screen.Intro, g.Machine.State)

	require.NoError(t, g.step(first+screen.IntroEnd, menu.Input{}))
	require.Equal(t, screen.ShowApollo, g.Machine.State)
}

func TestGameLayoutIgnoresEmptyWindow(t *testing.T) {
	g := testGame(t)
	g.window = image.Pt(1280, 720)

	w, h := g.Layout(0, 0)
	require.Equal(t, 1280, w)
	require.Equal(t, 720, h)
	require.Equal(t, image.Pt(1280, 720), g.window)

	g.window = image.Point{}
	w, h = g.Layout(0, 720)
	require.Equal(t, 1, w)
	require.Equal(t, 1, h)
}

func TestGameAboutAndBack(t *testing.T) {
	g := testGame(t)
	g.Machine = screen.Machine{State: screen.FadeOut}
	g.started = true

	require.NoError(t, g.step(time.Second, menu.Input{Cursor: aboutJar}))
	require.Equal(t, 6, g.Hover)
	require.Equal(t, screen.FadeOut, g.Machine.State)

	require.NoError(t, g.step(time.Second, menu.Input{Cursor: aboutJar, Clicked: true}))
	require.Equal(t, screen.About, g.Machine.State)

	// Jars are not hoverable behind the About panel
	require.NoError(t, g.step(2*time.Second, menu.Input{Cursor: aboutJar}))
	require.Equal(t, -1, g.Hover)

	require.NoError(t, g.step(3*time.Second, menu.Input{Escape: true}))
	require.Equal(t, screen.Returning, g.Machine.State)

	require.NoError(t, g.step(3*time.Second+screen.ReturnFade, menu.Input{}))
	require.Equal(t, screen.ShowApollo, g.Machine.State)
}

func TestGameInertJarClick(t *testing.T) {
	g := testGame(t)
	g.Machine = screen.Machine{State: screen.FadeOut}
	g.started = true

	require.NoError(t, g.step(time.Second, menu.Input{Cursor: image.Pt(40, 550), Clicked: true}))
	require.Equal(t, screen.FadeOut, g.Machine.State)
	require.Equal(t, 0, g.Hover)
}

func TestGameWindowClose(t *testing.T) {
	g := testGame(t)
	require.NoError(t, g.step(time.Second, menu.Input{Quit: true}))
	require.True(t, g.Machine.Done())
	require.ErrorIs(t, g.step(time.Second+16*time.Millisecond, menu.Input{}), ebiten.Termination)
}
