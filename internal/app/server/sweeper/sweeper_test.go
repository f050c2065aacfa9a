package sweeper

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func touch(t *testing.T, path string, mod time.Time) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	require.NoError(t, os.Chtimes(path, mod, mod))
}

func TestSweeper_Sweep(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	touch(t, filepath.Join(dir, ".upload-old.part"), now.Add(-2*time.Hour))
	touch(t, filepath.Join(dir, ".upload-fresh.part"), now.Add(-time.Minute))
	touch(t, filepath.Join(dir, "1700000000000.png"), now.Add(-48*time.Hour))

	s, err := New(dir, "@every 1h", time.Hour, slog.Default())
	require.NoError(t, err)
	s.now = func() time.Time { return now }

	removed, err := s.Sweep()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, err = os.Stat(filepath.Join(dir, ".upload-old.part"))
	assert.True(t, os.IsNotExist(err))
	assert.FileExists(t, filepath.Join(dir, ".upload-fresh.part"))
	assert.FileExists(t, filepath.Join(dir, "1700000000000.png"))
}

func TestSweeper_MissingDir(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "nope"), "@every 1h", time.Hour, slog.Default())
	require.NoError(t, err)

	removed, err := s.Sweep()
	assert.NoError(t, err)
	assert.Zero(t, removed)
}

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New(t.TempDir(), "every now and then", time.Hour, slog.Default())
	assert.Error(t, err)
}
