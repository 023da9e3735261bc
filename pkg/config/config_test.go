package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/matzehuels/treemap/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DefaultWidth, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, DefaultResizeStep, cfg.ResizeStep)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL.Duration)
	assert.NoError(t, cfg.Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
width = 1280
resize_step = 0.05
seed = 7
ignore = [".git", "*.tmp"]
follow_symlinks = true
cache_ttl = "36h"
`))
	require.NoError(t, err)

	assert.Equal(t, 1280, cfg.Width)
	assert.Equal(t, DefaultHeight, cfg.Height, "unset keys keep defaults")
	assert.Equal(t, 0.05, cfg.ResizeStep)
	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, []string{".git", "*.tmp"}, cfg.Ignore)
	assert.True(t, cfg.FollowSymlinks)
	assert.Equal(t, 36*time.Hour, cfg.CacheTTL.Duration)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", `width = `},
		{"unknown key", `colour = "red"`},
		{"bad duration", `cache_ttl = "soon"`},
		{"zero width", `width = 0`},
		{"resize step", `resize_step = 2.0`},
		{"bad ignore", `ignore = ["[x"]`},
		{"negative ttl", `cache_ttl = "-1h"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseUnknownKeysAreNamed(t *testing.T) {
	_, err := Parse([]byte("zeta = 1\nalpha = 2\n"))
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "alpha, zeta")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("height = 900\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 900, cfg.Height)

	require.NoError(t, os.WriteFile(path, []byte("height = -1\n"), 0o644))
	_, err = Load(path)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig), "got %v", err)
}

func TestPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "treemap", "config.toml"), p)
}

func TestWriteRoundTrip(t *testing.T) {
	want := Default()
	want.Ignore = []string{"vendor"}
	want.Seed = 3

	var buf bytes.Buffer
	require.NoError(t, want.Write(&buf))
	assert.Contains(t, buf.String(), `cache_ttl = "168h0m0s"`)

	got, err := Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, Create(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Width, cfg.Width)

	err = Create(path, false)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidConfig), "got %v", err)
	assert.NoError(t, Create(path, true))
}
