package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, float32(300), cfg.Grab.ReachDistance)
	assert.True(t, cfg.Grab.AllowRotation)
	assert.Equal(t, "Grab", cfg.Grab.Action)
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
grab:
  reach_distance: 150
  allow_rotation: false
camera:
  position: [1, 2, 3]
scene:
  seed: 7
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(150), cfg.Grab.ReachDistance)
	assert.False(t, cfg.Grab.AllowRotation)
	assert.Equal(t, "Grab", cfg.Grab.Action, "unset field keeps its default")
	assert.Equal(t, [3]float32{1, 2, 3}, cfg.Camera.Position)
	assert.Equal(t, int64(7), cfg.Scene.Seed)
	assert.Equal(t, Default().Scene.GridWidth, cfg.Scene.GridWidth)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, `
grab:
  reach_distance: 0
scene:
  spacing: -1
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reach_distance")
	assert.Contains(t, err.Error(), "spacing")
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "grab: [not, a, map")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateInterpolationSpeed(t *testing.T) {
	cfg := Default()

	cfg.Handle.InterpolationSpeed = 0
	assert.NoError(t, cfg.Validate(), "zero snaps the held body to its target")

	cfg.Handle.InterpolationSpeed = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "interpolation_speed")
}
