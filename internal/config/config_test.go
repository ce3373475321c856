package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/transportation/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	return writeNamed(t, "run.yaml", body)
}

func writeNamed(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestLoadOverlay(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	path := writeFile(t, `
seed: 42
value_type: float64
compare_lp: true
render:
  cell_width: 8
bench:
  problems: 5
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, config.ValueFloat64, cfg.ValueType)
	assert.True(t, cfg.CompareLP)
	assert.Equal(t, 8, cfg.Render.CellWidth)
	assert.Equal(t, 400, cfg.Render.MaxCells, "unset keys keep defaults")
	assert.Equal(t, 5, cfg.Bench.Problems)
	assert.Equal(t, 1000, cfg.Bench.N)
}

func TestLoadTOML(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	path := writeNamed(t, "run.toml", `
seed = 9
reseed = true
value_type = "uint32"

[render]
color = false
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.Reseed)
	assert.Equal(t, config.ValueUint32, cfg.ValueType)
	assert.False(t, cfg.Render.Color)
	assert.Equal(t, 6, cfg.Render.CellWidth)

	_, err = config.Load(writeNamed(t, "bad.toml", "value_type = \"int8\"\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoadValidation(t *testing.T) {
	t.Setenv(config.EnvSeed, "")
	_, err := config.Load(writeFile(t, "value_type: int8\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "render:\n  cell_width: 0\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "seed: [1\n"))
	require.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvSeed(t *testing.T) {
	t.Setenv(config.EnvSeed, "123")
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Seed)

	t.Setenv(config.EnvSeed, "abc")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
