package main

import (
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"apollo/internal/assets"
	"apollo/internal/layout"
	"apollo/internal/menu"
	"apollo/internal/screen"
	"apollo/internal/sound"
)

// Game holds global state
type Game struct {
	Machine screen.Machine
	Hover   int  // hovered jar, -1 for none
	started bool // intro clock stamped on the first frame

	scene      *scene
	layout     layout.Layout
	window     image.Point
	background *ebiten.Image // apollo backdrop scaled to window
	overlay    *ebiten.Image // white, window sized

	dispatcher *menu.Dispatcher
	music      *sound.Music
	now        func() time.Duration
	log        zerolog.Logger
}

func newGame(sc *scene, music *sound.Music, now func() time.Duration, log zerolog.Logger) *Game {
	return &Game{
		Hover:      -1,
		scene:      sc,
		dispatcher: menu.NewDispatcher(log),
		music:      music,
		now:        now,
		log:        log,
	}
}

// pollInput samples this frame's pointer and keyboard state.
func pollInput() menu.Input {
	x, y := ebiten.CursorPosition()
	return menu.Input{
		Cursor:  image.Pt(x, y),
		Clicked: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Quit:    ebiten.IsWindowBeingClosed(),
	}
}

// Update: Logic (60 TPS)
func (g *Game) Update() error {
	return g.step(g.now(), pollInput())
}

// step advances the screen flow by one frame. It never touches the GPU.
func (g *Game) step(now time.Duration, in menu.Input) error {
	// The exit frame has been drawn once at full coverage
	if g.Machine.Done() {
		return ebiten.Termination
	}
	if !g.started {
		g.Machine = screen.New(now)
		g.started = true
	}

	hover, ev := g.dispatcher.Dispatch(in, g.layout.Jars, g.Machine.ShowsMenu())
	g.Hover = hover

	prev := g.Machine.State
	g.Machine = g.Machine.Step(now, ev)

	if g.Machine.State != prev {
		g.log.Debug().
			Stringer("from", prev).
			Stringer("to", g.Machine.State).
			Dur("at", now).
			Msg("screen transition")

		switch g.Machine.State {
		case screen.ShowApollo:
			g.music.PlayOnce()
		case screen.Shutdown:
			g.music.Stop()
		case screen.Exited:
			g.log.Info().Msg("shutting down")
		}
	}
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screenImg *ebiten.Image) {
	// 1. Clear Screen
	screenImg.Fill(color.Black)

	// 2. Screen-Specific Render Router
	now := g.now()
	switch g.Machine.State {
	case screen.Intro:
		g.drawIntro(screenImg, now)
	case screen.ShowApollo, screen.FadeOut:
		g.drawMenu(screenImg)
		g.drawOverlay(screenImg, g.Machine.OverlayAlpha(now))
	case screen.About:
		g.drawAbout(screenImg)
	case screen.Returning:
		g.drawBackground(screenImg)
		g.drawOverlay(screenImg, g.Machine.OverlayAlpha(now))
	case screen.Shutdown, screen.Exited:
		g.drawShutdown(screenImg, now)
	}
}

// Layout: the logical screen follows the window so resizes relayout
// instead of stretching.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := image.Pt(outsideWidth, outsideHeight)
	if size.X <= 0 || size.Y <= 0 {
		if g.window.X > 0 && g.window.Y > 0 {
			return g.window.X, g.window.Y
		}
		return 1, 1
	}
	if size != g.window {
		g.resize(size)
	}
	return outsideWidth, outsideHeight
}

// resize regenerates the window-sized surfaces and recomputes every
// rectangle.
func (g *Game) resize(size image.Point) {
	g.window = size
	g.layout = layout.Compute(size, g.scene.metrics())

	if g.background != nil && g.background != g.scene.apollo {
		g.background.Deallocate()
	}
	g.background = assets.Rescale(g.scene.apollo, size)

	if g.overlay != nil {
		g.overlay.Deallocate()
	}
	g.overlay = ebiten.NewImage(size.X, size.Y)
	g.overlay.Fill(color.White)

	g.log.Debug().Int("width", size.X).Int("height", size.Y).Msg("window resized")
}
