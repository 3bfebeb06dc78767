package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/input"
	"github.com/Carmen-Shannon/oxy-orbit/engine/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "orbit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, float32(0.9), cfg.Camera.Drag)
	assert.Equal(t, "m", cfg.Camera.TranslationKey)
	assert.True(t, cfg.Camera.AutoDistance)
	assert.False(t, cfg.Camera.Roll)
	assert.Equal(t, 60.0, cfg.Engine.TickRate)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
camera:
  fov: 60
  drag: 0.8
  roll: true
  translation_key: left_shift
  target: [1, 2, 3]
  distance: 25
window:
  title: test
  width: 640
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, float32(60), cfg.Camera.Fov)
	assert.InDelta(t, 0.8, cfg.Camera.Drag, 1e-6)
	assert.True(t, cfg.Camera.Roll)
	assert.Equal(t, "left_shift", cfg.Camera.TranslationKey)
	assert.Equal(t, []float32{1, 2, 3}, cfg.Camera.Target)
	assert.Equal(t, float32(25), cfg.Camera.Distance)
	assert.Equal(t, "test", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// untouched keys keep their defaults
	assert.Equal(t, 720, cfg.Window.Height)
	assert.InDelta(t, 0.7, cfg.Camera.DollySensitivity, 1e-6)
	assert.True(t, cfg.Camera.UpwardsFix)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "camera:\n  drag: 0.8\n")
	t.Setenv("OXY_CAMERA_DRAG", "0.5")
	t.Setenv("OXY_ENGINE_TICK_RATE", "120")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, cfg.Camera.Drag, 1e-6)
	assert.Equal(t, 120.0, cfg.Engine.TickRate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWithoutPathFallsBackToDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "camera:\n  drag: 1.5\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera.drag")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"fov zero", func(c *Config) { c.Camera.Fov = 0 }, "camera.fov"},
		{"fov straight", func(c *Config) { c.Camera.Fov = 180 }, "camera.fov"},
		{"negative distance", func(c *Config) { c.Camera.Distance = -1 }, "camera.distance"},
		{"short target", func(c *Config) { c.Camera.Target = []float32{1, 2} }, "camera.target"},
		{"negative drag", func(c *Config) { c.Camera.Drag = -0.1 }, "camera.drag"},
		{"drag of one", func(c *Config) { c.Camera.Drag = 1 }, "camera.drag"},
		{"zero sensitivity", func(c *Config) { c.Camera.PanSensitivity = 0 }, "sensitivities"},
		{"unknown key", func(c *Config) { c.Camera.TranslationKey = "hyper" }, "translation_key"},
		{"window size", func(c *Config) { c.Window.Height = 0 }, "window size"},
		{"tick rate", func(c *Config) { c.Engine.TickRate = 0 }, "engine.tick_rate"},
		{"frame limit", func(c *Config) { c.Engine.RenderFrameLimit = -1 }, "engine.render_frame_limit"},
		{"workers", func(c *Config) { c.Engine.Workers = -2 }, "engine.workers"},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestControllerOptions(t *testing.T) {
	cfg := DefaultConfig().Camera
	cfg.Drag = 0.5
	cfg.PanSensitivity = 2
	cfg.TranslationKey = "left_alt"
	cfg.Roll = true
	cfg.MiddleButton = false
	cfg.MouseInput = false
	cfg.Target = []float32{0, 0, -5}
	cfg.Distance = 12

	cam := camera.NewCamera(cfg.CameraOptions()...)
	ctrl := camera.NewOrbitController(cam, input.NewState(), cfg.ControllerOptions()...)

	assert.InDelta(t, 0.5, ctrl.Drag(), 1e-6)
	assert.InDelta(t, 2, ctrl.PanSensitivity(), 1e-6)
	assert.Equal(t, uint32(common.KeyLeftAlt), ctrl.TranslationKey())
	assert.True(t, ctrl.RollEnabled())
	assert.False(t, ctrl.MouseMiddleButtonEnabled())
	assert.False(t, ctrl.MouseInputEnabled())
	assert.InDelta(t, -5, ctrl.Target().Position().Z(), 1e-6)
	assert.InDelta(t, 12, ctrl.Distance(), 1e-4)
	assert.InDelta(t, 12, ctrl.LastDistance(), 1e-6)
	assert.InDelta(t, float64(45*3.14159265/180), cam.Fov(), 1e-5)
}

func TestApply(t *testing.T) {
	cam := camera.NewCamera()
	ctrl := camera.NewOrbitController(cam, input.NewState(), camera.WithDistance(10))

	cfg := DefaultConfig().Camera
	cfg.Drag = 0.3
	cfg.RotationSensitivity = 4
	cfg.TranslationKey = "space"
	cfg.Roll = true
	cfg.MiddleButton = false
	cfg.UpwardsFix = false
	cfg.MouseInput = false
	cfg.Distance = 99

	cfg.Apply(ctrl)

	assert.InDelta(t, 0.3, ctrl.Drag(), 1e-6)
	assert.InDelta(t, 4, ctrl.RotationSensitivity(), 1e-6)
	assert.Equal(t, uint32(common.KeySpace), ctrl.TranslationKey())
	assert.True(t, ctrl.RollEnabled())
	assert.False(t, ctrl.MouseMiddleButtonEnabled())
	assert.False(t, ctrl.UpwardsFix())
	assert.False(t, ctrl.MouseInputEnabled())
	assert.InDelta(t, 10, ctrl.Distance(), 1e-4)
}

func TestLoggerConfig(t *testing.T) {
	cfg := LoggingConfig{Level: "warn", Console: false}.LoggerConfig()
	assert.Equal(t, logging.LevelWarn, cfg.Level)
	assert.False(t, cfg.Console)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "camera:\n  drag: 0.8\n")

	got := make(chan *Config, 16)
	w, err := Watch(path, zerolog.Nop(), func(c *Config) {
		select {
		case got <- c:
		default:
		}
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, w.Current().Camera.Drag, 1e-6)

	writeConfig(t, dir, "camera:\n  drag: 0.25\n")

	// a rewrite can surface as several events, wait for the final content
	timeout := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case cfg := <-got:
			done = cfg.Camera.Drag == 0.25
		case <-timeout:
			t.Fatal("config change was not delivered")
		}
	}
	assert.GreaterOrEqual(t, w.Reloads(), 1)
	assert.InDelta(t, 0.25, w.Current().Camera.Drag, 1e-6)
}

func TestWatchKeepsPreviousOnInvalidEdit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "camera:\n  drag: 0.8\n")
	w, err := Watch(path, zerolog.Nop(), nil)
	require.NoError(t, err)

	impl := w.(*watcherImpl)
	cfg := DefaultConfig()
	cfg.Camera.Drag = 2
	impl.reload(nil, cfg.Validate())

	assert.Zero(t, w.Reloads())
	assert.InDelta(t, 0.8, w.Current().Camera.Drag, 1e-6)
}

func TestWatchRequiresPath(t *testing.T) {
	_, err := Watch("", zerolog.Nop(), nil)
	assert.Error(t, err)
}
