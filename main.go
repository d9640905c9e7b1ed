package main

import (
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"apollo/internal/assets"
	"apollo/internal/config"
	"apollo/internal/logger"
	"apollo/internal/sound"
)

func main() {
	// 1. Configuration & Logging
	cfg := config.Load()
	log := logger.NewConsole(cfg.LogLevel)
	for _, w := range cfg.Warnings {
		log.Warn().Msg(w)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	// 3. Assets
	manager := assets.NewManager(os.DirFS(cfg.StaticDir), logger.Component(log, "assets"))
	sc, err := loadScene(manager)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.StaticDir).Msg("failed to load assets")
	}

	track, trackErr := manager.LoadMusic()
	music := sound.NewMusic(audio.NewContext(sound.SampleRate), track, trackErr, cfg.MusicVolume, logger.Component(log, "sound"))

	// 4. Initialize Game
	start := time.Now()
	game := newGame(sc, music, func() time.Duration { return time.Since(start) }, logger.Component(log, "game"))

	// 5. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
