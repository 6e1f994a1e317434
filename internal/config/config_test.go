package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	require.Equal(t, defaults(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reks.toml")
	data := `
[simulation]
entities = 1000
dt = 0.016

[logging]
level = "debug"
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1000, cfg.Simulation.Entities)
	require.Equal(t, 0.016, cfg.Simulation.DT)
	require.Equal(t, 1, cfg.Simulation.Steps, "unset keys keep their default")
	require.Equal(t, 64, cfg.World.InitialCapacity)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[simulation\n"), 0o644))
	_, err := Load(bad)
	require.Error(t, err)

	negative := filepath.Join(dir, "negative.toml")
	require.NoError(t, os.WriteFile(negative, []byte("[simulation]\nsteps = -1\n"), 0o644))
	_, err = Load(negative)
	require.ErrorContains(t, err, "simulation.steps")
}
