package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dict/pkg/errors"
)

func TestLoad(t *testing.T) {
	t.Run("loads_embedded_defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://api.dictionaryapi.dev/api/v2/entries/en", cfg.API.BaseURL)
		assert.True(t, cfg.API.EscapeWord)
		assert.Equal(t, ColorAuto, cfg.Output.Color)
	})

	t.Run("env_overrides_defaults", func(t *testing.T) {
		t.Setenv("DICT_API_BASE_URL", "http://127.0.0.1:9999/entries")
		t.Setenv("DICT_API_ESCAPE_WORD", "false")
		t.Setenv("DICT_OUTPUT_COLOR", "Never")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://127.0.0.1:9999/entries", cfg.API.BaseURL)
		assert.False(t, cfg.API.EscapeWord)
		assert.Equal(t, ColorNever, cfg.Output.Color)
	})

	t.Run("unrelated_env_is_ignored", func(t *testing.T) {
		t.Setenv("DICT_SOMETHING_ELSE", "x")

		_, err := Load()
		require.NoError(t, err)
	})
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"base url is not a url", "DICT_API_BASE_URL", "not a url"},
		{"unknown color mode", "DICT_OUTPUT_COLOR", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"DICT_API_BASE_URL":    "api.base_url",
		"DICT_API_ESCAPE_WORD": "api.escape_word",
		"DICT_OUTPUT_COLOR":    "output.color",
	}
	for in, want := range tests {
		assert.Equal(t, want, envKey(in), in)
	}
}
