package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0.02, cfg.LineWidth)
	assert.Equal(t, 8.5, cfg.PageWidth)
	assert.Equal(t, 11.0, cfg.PageHeight)
	assert.Equal(t, PathAbsolute, cfg.PathMode)
	assert.NoError(t, cfg.Validate())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(map[string]any{
		"linewidth": "0.05",
		"pagewidth": 11,
		"pathmode":  "legacy",
	})
	require.NoError(t, err)
	assert.Equal(t, 0.05, cfg.LineWidth)
	assert.Equal(t, 11.0, cfg.PageWidth)
	assert.Equal(t, 11.0, cfg.PageHeight)
	assert.Equal(t, PathLegacy, cfg.PathMode)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"unknown key", map[string]any{"titlefont": "/Times-Bold"}},
		{"not a number", map[string]any{"pagewidth": "wide"}},
		{"zero width", map[string]any{"pagewidth": 0}},
		{"negative line", map[string]any{"linewidth": -1}},
		{"bad mode", map[string]any{"pathmode": "relative"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lsvg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pagewidth: 11.0\npageheight: 8.5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 11.0, cfg.PageWidth)
	assert.Equal(t, 8.5, cfg.PageHeight)
	assert.Equal(t, 0.02, cfg.LineWidth)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("pagewidth: [\n"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
