package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4000", cfg.ServerURL)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "prod", cfg.Env)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SITECMS_SERVER", "https://cms.example.com/")
	t.Setenv("SITECMS_TIMEOUT", "5s")

	cfg, err := Load(viper.New())

	require.NoError(t, err)
	assert.Equal(t, "https://cms.example.com", cfg.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"ok", Config{ServerURL: "http://localhost:4000", Timeout: time.Second}, false},
		{"empty server", Config{Timeout: time.Second}, true},
		{"relative server", Config{ServerURL: "localhost:4000", Timeout: time.Second}, true},
		{"zero timeout", Config{ServerURL: "http://localhost:4000"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
