package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	v := viper.New()
	setDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	return &cfg
}

func TestDefaults(t *testing.T) {
	cfg := defaultConfig(t)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "pattern", cfg.Entities.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, 30, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "whisper-cli", cfg.Transcribe.Binary)
	assert.Equal(t, "en", cfg.Transcribe.Language)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
}

func TestValidateConfigDefaults(t *testing.T) {
	assert.NoError(t, validateConfig(defaultConfig(t)))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Entities.Provider = "spacy" },
			wantErr: "invalid entities.provider",
		},
		{
			name:    "gemini without api key",
			mutate:  func(c *Config) { c.Entities.Provider = "gemini" },
			wantErr: "GEMINI_API_KEY required",
		},
		{
			name: "gemini timeout out of range",
			mutate: func(c *Config) {
				c.Entities.Provider = "gemini"
				c.AI.APIKey = "test-key"
				c.AI.TimeoutSeconds = 0
			},
			wantErr: "timeout_seconds",
		},
		{
			name:    "multi-character delimiter",
			mutate:  func(c *Config) { c.CSV.Delimiter = ";;" },
			wantErr: "single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfigGeminiWithKey(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.Entities.Provider = "gemini"
	cfg.AI.APIKey = "test-key"

	assert.NoError(t, validateConfig(cfg))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("EXPENSE_PARSE_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("EXPENSE_PARSE_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("EXPENSE_PARSE_TEST_MISSING", "fallback"))
}
