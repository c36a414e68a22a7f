package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touchgrip/internal/gesture"
)

func TestSaveAndLoadRoundtrip(t *testing.T) {
	svc := &service{}
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := &Config{
		Version: 1,
		Gestures: GestureSettings{
			MinDistanceX:       12,
			MinDistanceY:       34,
			TapZones:           2,
			YAngleWindowDegree: 60,
		},
		Slider: SliderSettings{Min: -5, Max: 5, Step: 0.5},
	}

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadMissingFileFails(t *testing.T) {
	svc := &service{}
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadInvalidTOMLFails(t *testing.T) {
	svc := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("gestures = [broken"), 0644))

	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFillsDroppedFields(t *testing.T) {
	// A hand-edited file that only overrides the tap zones still gets usable
	// thresholds everywhere else.
	svc := &service{}
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = 1

[gestures]
tap_zones = 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	def := DefaultConfig()
	assert.Equal(t, 2, cfg.Gestures.TapZones)
	assert.Equal(t, def.Gestures.MinDistanceX, cfg.Gestures.MinDistanceX)
	assert.Equal(t, def.Gestures.MinDistanceY, cfg.Gestures.MinDistanceY)
	assert.Equal(t, def.Gestures.YAngleWindowDegree, cfg.Gestures.YAngleWindowDegree)
	assert.Equal(t, def.Slider, cfg.Slider, "degenerate slider range resets to defaults")
}

func TestGestureConfigConvertsDegrees(t *testing.T) {
	gs := GestureSettings{
		MinDistanceX:       10,
		MinDistanceY:       20,
		TapZones:           3,
		YAngleWindowDegree: 90,
	}

	gc := gs.GestureConfig()
	assert.Equal(t, 10.0, gc.MinDistanceX)
	assert.Equal(t, 20.0, gc.MinDistanceY)
	assert.Equal(t, 3, gc.TapZones)
	assert.InDelta(t, math.Pi/2, gc.YAngleWindow, 1e-12)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, gesture.DefaultMinDistanceX, cfg.Gestures.MinDistanceX)
	assert.Equal(t, gesture.DefaultMinDistanceY, cfg.Gestures.MinDistanceY)
	assert.Equal(t, gesture.DefaultTapZones, cfg.Gestures.TapZones)
	assert.Equal(t, 90.0, cfg.Gestures.YAngleWindowDegree)
	assert.Equal(t, SliderSettings{Min: 0, Max: 100, Step: 1}, cfg.Slider)

	// The degree form must agree with the recognizer's radian default.
	assert.InDelta(t, gesture.DefaultYAngleWindow,
		cfg.Gestures.GestureConfig().YAngleWindow, 1e-12)
}
