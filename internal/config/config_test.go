package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
output_dir: renders
format: svg
tempo: 90
seed: 42
player: timidity -Os
banner: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, "svg", cfg.Format)
	assert.Equal(t, 90.0, cfg.Tempo)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "timidity -Os", cfg.Player)
	assert.False(t, cfg.Banner)
	assert.Equal(t, 4.0, cfg.DPMM, "unset keys keep their defaults")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [png"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv([]string{
		"ARTGEN_FORMAT=pdf",
		"ARTGEN_SEED=7",
		"ARTGEN_DPMM=2.5",
		"ARTGEN_BANNER=false",
		"ARTGEN_MAX_INPUT_SIZE=10",
		"HOME=/root",
	})
	require.NoError(t, err)

	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, 2.5, cfg.DPMM)
	assert.False(t, cfg.Banner)
	assert.Equal(t, "artgen-out", cfg.OutputDir)
}

func TestApplyEnv_BadValue(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv([]string{"ARTGEN_SEED=lots"}))
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ARTGEN_VIEWER=feh\n"), 0644))
	t.Setenv("ARTGEN_VIEWER", "")
	os.Unsetenv("ARTGEN_VIEWER")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "feh", os.Getenv("ARTGEN_VIEWER"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	bad := cfg
	bad.Format = "gif"
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)

	bad = cfg
	bad.Tempo = -1
	assert.ErrorIs(t, bad.Validate(), ErrInvalidConfig)
}
