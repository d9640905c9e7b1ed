package sound

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/rs/zerolog"
)

const SampleRate = 44100

// Music is looping background music. A Music without a track is silent,
// so callers never have to check whether loading worked.
type Music struct {
	player  *audio.Player
	started bool
	log     zerolog.Logger
}

// NewMusic decodes an mp3 track and prepares an infinite loop player. Any
// failure is logged and yields a silent Music.
func NewMusic(ctx *audio.Context, data []byte, loadErr error, volume float64, log zerolog.Logger) *Music {
	m := &Music{log: log}
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("background music not found")
		return m
	}

	player, err := newLoopPlayer(ctx, data)
	if err != nil {
		log.Warn().Err(err).Msg("background music unusable")
		return m
	}
	player.SetVolume(volume)
	m.player = player
	return m
}

func newLoopPlayer(ctx *audio.Context, data []byte) (*audio.Player, error) {
	d, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	loop := audio.NewInfiniteLoop(d, d.Length())
	return ctx.NewPlayer(loop)
}

// PlayOnce starts the loop the first time it is called.
func (m *Music) PlayOnce() {
	if m.started {
		return
	}
	m.started = true
	if m.player != nil {
		m.player.Play()
	}
}

// Stop pauses playback for good.
func (m *Music) Stop() {
	if m.player != nil {
		m.player.Pause()
	}
}

// Silent reports whether there is no track to play.
func (m *Music) Silent() bool {
	return m.player == nil
}
