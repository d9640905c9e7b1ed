package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestComponentField(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, zerolog.DebugLevel), "screen")

	log.Debug().Str("to", "about").Msg("transition")
	require.Contains(t, buf.String(), `"component":"screen"`)
	require.Contains(t, buf.String(), `"to":"about"`)
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	require.Empty(t, buf.String())
	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	level, ok := ParseLevel("DEBUG")
	require.True(t, ok)
	require.Equal(t, zerolog.DebugLevel, level)

	level, ok = ParseLevel("")
	require.True(t, ok)
	require.Equal(t, zerolog.InfoLevel, level)

	level, ok = ParseLevel("loud")
	require.False(t, ok)
	require.Equal(t, zerolog.InfoLevel, level)
}
