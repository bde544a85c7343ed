package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envTestConfig struct {
	Port    int           `env:"COACHDESK_TEST_PORT"`
	Debug   bool          `env:"COACHDESK_TEST_DEBUG"`
	Rate    float64       `env:"COACHDESK_TEST_RATE"`
	Section struct {
		Secret  string        `env:"COACHDESK_TEST_SECRET"`
		Timeout time.Duration `env:"COACHDESK_TEST_TIMEOUT"`
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("COACHDESK_TEST_PORT", "9090")
	t.Setenv("COACHDESK_TEST_DEBUG", "true")
	t.Setenv("COACHDESK_TEST_RATE", "2.5")
	t.Setenv("COACHDESK_TEST_SECRET", "from-env")
	t.Setenv("COACHDESK_TEST_TIMEOUT", "45s")

	cfg := envTestConfig{Port: 8080}
	cfg.Section.Secret = "from-yaml"

	require.NoError(t, applyEnvOverrides(&cfg))

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 2.5, cfg.Rate)
	assert.Equal(t, "from-env", cfg.Section.Secret)
	assert.Equal(t, 45*time.Second, cfg.Section.Timeout)
}

func TestApplyEnvOverridesLeavesUnsetFieldsAlone(t *testing.T) {
	cfg := envTestConfig{Port: 8080}
	cfg.Section.Secret = "from-yaml"

	require.NoError(t, applyEnvOverrides(&cfg))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "from-yaml", cfg.Section.Secret)
}

func TestApplyEnvOverridesRejectsBadValues(t *testing.T) {
	t.Setenv("COACHDESK_TEST_PORT", "not-a-number")

	cfg := envTestConfig{}
	err := applyEnvOverrides(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COACHDESK_TEST_PORT")
}
