package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/styl/internal/ident"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "sequential", cfg.Strategy)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "styl.yaml", `strategy: hash
debug: true
seed: 42
sheet_id: app
prefixes:
  class: x
  theme: th
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hash", cfg.Strategy)
	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "app", cfg.SheetID)
	assert.Equal(t, ident.Prefixes{Class: "x", Keyframes: "k", Var: "v", Container: "o", Theme: "th"}, cfg.Prefixes)
}

func TestLoadConfigEmptyFile(t *testing.T) {
	path := writeDoc(t, t.TempDir(), "styl.yaml", "")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "strategies: hash\n", "field strategies not found"},
		{"bad strategy", "strategy: fastest\n", "invalid id strategy"},
		{"bad yaml", "strategy: [\n", "parsing config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDoc(t, dir, "styl.yaml", tt.content)
			_, err := LoadConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := LoadConfig(dir + "/missing.yaml")
	assert.ErrorContains(t, err, "reading config")
}
