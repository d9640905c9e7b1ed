package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"apollo/internal/logger"
)

// Defaults
const (
	DefaultStaticDir = "static"
	DefaultWidth     = 1280
	DefaultHeight    = 720
	WindowTitle      = "Apollo Save Tool"
	TPS              = 60
)

type Config struct {
	StaticDir   string
	Width       int
	Height      int
	LogLevel    zerolog.Level
	MusicVolume float64

	// Warnings collected while parsing, reported once a logger exists.
	Warnings []string
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	var warnings []string
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		warnings = append(warnings, "unreadable .env file: "+err.Error())
	}
	c := FromEnv(os.Getenv)
	c.Warnings = append(warnings, c.Warnings...)
	return c
}

// FromEnv builds a Config from a lookup function such as os.Getenv.
func FromEnv(getenv func(string) string) Config {
	c := Config{
		StaticDir:   DefaultStaticDir,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		LogLevel:    zerolog.InfoLevel,
		MusicVolume: 1,
	}

	if dir := getenv("APOLLO_STATIC_DIR"); dir != "" {
		c.StaticDir = dir
	}
	c.Width = c.positiveInt(getenv, "APOLLO_WIDTH", DefaultWidth)
	c.Height = c.positiveInt(getenv, "APOLLO_HEIGHT", DefaultHeight)

	level, ok := logger.ParseLevel(getenv("APOLLO_LOG_LEVEL"))
	if !ok {
		c.Warnings = append(c.Warnings, "invalid APOLLO_LOG_LEVEL, using info")
	}
	c.LogLevel = level

	if v := getenv("APOLLO_MUSIC_VOLUME"); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.Warnings = append(c.Warnings, "invalid APOLLO_MUSIC_VOLUME, using 1")
		} else {
			c.MusicVolume = max(0, min(1, vol))
		}
	}
	return c
}

func (c *Config) positiveInt(getenv func(string) string, key string, def int) int {
	v := getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		c.Warnings = append(c.Warnings, "invalid "+key+", using default")
		return def
	}
	return n
}
