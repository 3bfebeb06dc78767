// Package config loads the orbit viewer configuration from a YAML file with environment overrides
// and hot-reloads camera settings while the viewer runs.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-orbit/common"
	"github.com/Carmen-Shannon/oxy-orbit/engine/camera"
	"github.com/Carmen-Shannon/oxy-orbit/engine/logging"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. OXY_CAMERA_DRAG=0.8.
const EnvPrefix = "OXY"

// Config holds all viewer configuration
type Config struct {
	Camera  CameraConfig  `mapstructure:"camera"`
	Window  WindowConfig  `mapstructure:"window"`
	Engine  EngineConfig  `mapstructure:"engine"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// CameraConfig configures the camera and its orbit controller
type CameraConfig struct {
	Fov                 float32   `mapstructure:"fov"` // vertical field of view in degrees
	VFlip               bool      `mapstructure:"vflip"`
	Distance            float32   `mapstructure:"distance"` // 0 derives the distance from the viewport
	Target              []float32 `mapstructure:"target"`   // x, y, z
	Drag                float32   `mapstructure:"drag"`
	RotationSensitivity float32   `mapstructure:"rotation_sensitivity"`
	PanSensitivity      float32   `mapstructure:"pan_sensitivity"`
	DollySensitivity    float32   `mapstructure:"dolly_sensitivity"`
	TranslationKey      string    `mapstructure:"translation_key"`
	MouseInput          bool      `mapstructure:"mouse_input"`
	MiddleButton        bool      `mapstructure:"middle_button"`
	AutoDistance        bool      `mapstructure:"auto_distance"`
	UpwardsFix          bool      `mapstructure:"upwards_fix"`
	Roll                bool      `mapstructure:"roll"`
}

// WindowConfig configures the window
type WindowConfig struct {
	Title     string `mapstructure:"title"`
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	MinWidth  int    `mapstructure:"min_width"`
	MinHeight int    `mapstructure:"min_height"`
	MaxWidth  int    `mapstructure:"max_width"`
	MaxHeight int    `mapstructure:"max_height"`
}

// EngineConfig configures the tick and render loops
type EngineConfig struct {
	TickRate         float64 `mapstructure:"tick_rate"`
	RenderFrameLimit float64 `mapstructure:"render_frame_limit"` // 0 = uncapped
	Workers          int     `mapstructure:"workers"`            // tick fan-out workers, 0 = one per CPU
	Profiling        bool    `mapstructure:"profiling"`
}

// LoggingConfig configures the logger
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Console bool   `mapstructure:"console"`
}

// DefaultConfig returns the built-in configuration. The camera section mirrors the controller defaults.
func DefaultConfig() *Config {
	return &Config{
		Camera: CameraConfig{
			Fov:                 45,
			Distance:            0,
			Target:              []float32{0, 0, 0},
			Drag:                0.9,
			RotationSensitivity: 1.0,
			PanSensitivity:      0.5,
			DollySensitivity:    0.7,
			TranslationKey:      "m",
			MouseInput:          true,
			MiddleButton:        true,
			AutoDistance:        true,
			UpwardsFix:          true,
			Roll:                false,
		},
		Window: WindowConfig{
			Title:     "oxy orbit",
			Width:     1280,
			Height:    720,
			MinWidth:  320,
			MinHeight: 240,
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Engine: EngineConfig{
			TickRate:         60,
			RenderFrameLimit: 0,
			Workers:          0,
			Profiling:        false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			Console: true,
		},
	}
}

// Load reads the configuration file at path and applies OXY_* environment overrides on top of
// the defaults. An empty path searches for orbit.yaml in the working directory; a missing file
// there is not an error.
//
// Parameters:
//   - path: the config file path, or "" to search
//
// Returns:
//   - *Config: the loaded and validated configuration
//   - error: error if the file cannot be read, decoded or fails validation
func Load(path string) (*Config, error) {
	v := newViper(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return decode(v)
}

// newViper builds a viper instance with defaults registered for every key so that
// environment overrides are picked up by Unmarshal.
func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("orbit")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	defaults := map[string]any{
		"camera.fov":                  def.Camera.Fov,
		"camera.vflip":                def.Camera.VFlip,
		"camera.distance":             def.Camera.Distance,
		"camera.target":               def.Camera.Target,
		"camera.drag":                 def.Camera.Drag,
		"camera.rotation_sensitivity": def.Camera.RotationSensitivity,
		"camera.pan_sensitivity":      def.Camera.PanSensitivity,
		"camera.dolly_sensitivity":    def.Camera.DollySensitivity,
		"camera.translation_key":      def.Camera.TranslationKey,
		"camera.mouse_input":          def.Camera.MouseInput,
		"camera.middle_button":        def.Camera.MiddleButton,
		"camera.auto_distance":        def.Camera.AutoDistance,
		"camera.upwards_fix":          def.Camera.UpwardsFix,
		"camera.roll":                 def.Camera.Roll,
		"window.title":                def.Window.Title,
		"window.width":                def.Window.Width,
		"window.height":               def.Window.Height,
		"window.min_width":            def.Window.MinWidth,
		"window.min_height":           def.Window.MinHeight,
		"window.max_width":            def.Window.MaxWidth,
		"window.max_height":           def.Window.MaxHeight,
		"engine.tick_rate":            def.Engine.TickRate,
		"engine.render_frame_limit":   def.Engine.RenderFrameLimit,
		"engine.workers":              def.Engine.Workers,
		"engine.profiling":            def.Engine.Profiling,
		"logging.level":               def.Logging.Level,
		"logging.console":             def.Logging.Console,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

// decode unmarshals the current viper state over the defaults and validates it.
func decode(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section and returns the first problem found.
//
// Returns:
//   - error: a descriptive error naming the offending key, or nil
func (c *Config) Validate() error {
	if err := c.Camera.Validate(); err != nil {
		return err
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Engine.TickRate <= 0 {
		return fmt.Errorf("engine.tick_rate must be positive, got %v", c.Engine.TickRate)
	}
	if c.Engine.RenderFrameLimit < 0 {
		return fmt.Errorf("engine.render_frame_limit must not be negative, got %v", c.Engine.RenderFrameLimit)
	}
	if c.Engine.Workers < 0 {
		return fmt.Errorf("engine.workers must not be negative, got %d", c.Engine.Workers)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

// Validate checks the camera section.
//
// Returns:
//   - error: a descriptive error naming the offending key, or nil
func (c CameraConfig) Validate() error {
	if c.Fov <= 0 || c.Fov >= 180 {
		return fmt.Errorf("camera.fov must be in (0, 180) degrees, got %v", c.Fov)
	}
	if c.Distance < 0 {
		return fmt.Errorf("camera.distance must not be negative, got %v", c.Distance)
	}
	if len(c.Target) != 0 && len(c.Target) != 3 {
		return fmt.Errorf("camera.target must have 3 components, got %d", len(c.Target))
	}
	if c.Drag < 0 || c.Drag >= 1 {
		return fmt.Errorf("camera.drag must be in [0, 1), got %v", c.Drag)
	}
	if c.RotationSensitivity <= 0 || c.PanSensitivity <= 0 || c.DollySensitivity <= 0 {
		return fmt.Errorf("camera sensitivities must be positive, got rotation=%v pan=%v dolly=%v",
			c.RotationSensitivity, c.PanSensitivity, c.DollySensitivity)
	}
	if _, ok := common.KeyByName(c.TranslationKey); !ok {
		return fmt.Errorf("camera.translation_key: unknown key %q", c.TranslationKey)
	}
	return nil
}

// CameraOptions returns the camera builder options for this section.
//
// Returns:
//   - []camera.CameraBuilderOption: options for camera.NewCamera
func (c CameraConfig) CameraOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(mgl32.DegToRad(c.Fov)),
		camera.WithVFlip(c.VFlip),
	}
}

// ControllerOptions returns the orbit controller options for this section.
// The section is assumed to be valid.
//
// Returns:
//   - []camera.OrbitControllerOption: options for camera.NewOrbitController
func (c CameraConfig) ControllerOptions() []camera.OrbitControllerOption {
	key, _ := common.KeyByName(c.TranslationKey)
	options := []camera.OrbitControllerOption{
		camera.WithDrag(c.Drag),
		camera.WithRotationSensitivity(c.RotationSensitivity),
		camera.WithPanSensitivity(c.PanSensitivity),
		camera.WithDollySensitivity(c.DollySensitivity),
		camera.WithTranslationKey(key),
		camera.WithMouseInput(c.MouseInput),
		camera.WithMouseMiddleButton(c.MiddleButton),
		camera.WithAutoDistance(c.AutoDistance),
		camera.WithUpwardsFix(c.UpwardsFix),
		camera.WithRoll(c.Roll),
	}
	if len(c.Target) == 3 {
		options = append(options, camera.WithTarget(c.Target[0], c.Target[1], c.Target[2]))
	}
	if c.Distance > 0 {
		options = append(options, camera.WithDistance(c.Distance))
	}
	return options
}

// Apply pushes the interaction settings onto a running controller. Pose settings (target,
// distance, fov) are left alone so a reload never yanks the camera mid-session.
//
// Parameters:
//   - ctrl: the controller to update
func (c CameraConfig) Apply(ctrl camera.OrbitController) {
	ctrl.SetDrag(c.Drag)
	ctrl.SetRotationSensitivity(c.RotationSensitivity)
	ctrl.SetPanSensitivity(c.PanSensitivity)
	ctrl.SetDollySensitivity(c.DollySensitivity)
	if key, ok := common.KeyByName(c.TranslationKey); ok {
		ctrl.SetTranslationKey(key)
	}
	if ctrl.AutoDistance() != c.AutoDistance {
		ctrl.SetAutoDistance(c.AutoDistance)
	}
	ctrl.SetUpwardsFix(c.UpwardsFix)

	if c.MiddleButton {
		ctrl.EnableMouseMiddleButton()
	} else {
		ctrl.DisableMouseMiddleButton()
	}
	if c.Roll {
		ctrl.EnableRoll()
	} else {
		ctrl.DisableRoll()
	}
	if c.MouseInput {
		ctrl.EnableMouseInput()
	} else {
		ctrl.DisableMouseInput()
	}
}

// LoggerConfig converts the logging section into a logging.Config writing to stderr.
//
// Returns:
//   - logging.Config: the logger configuration
func (l LoggingConfig) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(l.Level); err == nil {
		cfg.Level = level
	}
	cfg.Console = l.Console
	return cfg
}
