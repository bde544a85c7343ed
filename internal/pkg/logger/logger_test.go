package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: WarnLevel, Output: &buf})

	Info().Msg("quiet")
	Warn().Msg("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.Contains(t, out, "loud")
	assert.Contains(t, out, `"level":"warn"`)
}

func TestConfigureUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "chatty", Output: &buf})

	Debug().Msg("hidden")
	Info().Msg("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}
