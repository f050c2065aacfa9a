package server

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sitecms/internal/app/server/config"
	"sitecms/internal/infrastructure/storage/upload"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()
	cfg := config.Load(viper.New())
	cfg.Server.Port = "0"
	cfg.Storage.PostsFile = filepath.Join(root, "posts.json")
	cfg.Storage.JobsFile = filepath.Join(root, "jobs.json")
	cfg.Upload.Dir = filepath.Join(root, "uploads")
	return cfg
}

func TestUploadPolicy(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		want    upload.Policy
		wantErr bool
	}{
		{
			name:   "images preset",
			mutate: func(*config.Config) {},
			want: upload.Policy{
				Extensions: []string{"jpeg", "jpg", "png", "gif", "webp", "mp4", "webm"},
				MediaTypes: []string{"image", "video"},
				MaxBytes:   10 * upload.MiB,
			},
		},
		{
			name: "overrides",
			mutate: func(c *config.Config) {
				c.Upload.Mode = upload.ModeLegacy
				c.Upload.Extensions = []string{"png"}
				c.Upload.MaxBytes = 512
			},
			want: upload.Policy{
				Extensions: []string{"png"},
				MediaTypes: []string{"jpeg", "jpg", "png", "gif", "mp4", "mov", "avi", "mkv", "webm"},
				MaxBytes:   512,
			},
		},
		{
			name:    "unknown mode",
			mutate:  func(c *config.Config) { c.Upload.Mode = "everything" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			got, err := uploadPolicy(cfg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_InvalidSweepSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sweeper.Schedule = "every now and then"

	app, err := New(context.Background(), cfg, slog.Default())

	assert.Error(t, err)
	assert.Nil(t, app)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig(t)

	app, err := New(context.Background(), cfg, slog.Default())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout):
		t.Fatal("app did not stop")
	}
}
