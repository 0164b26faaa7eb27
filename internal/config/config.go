// Package config holds the viewer settings. They are read once from a TOML
// file at startup; the FPS limit can also be changed at runtime.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Config is the on-disk settings file.
type Config struct {
	Window  Window  `toml:"window"`
	Assets  Assets  `toml:"assets"`
	View    View    `toml:"view"`
	Runtime Runtime `toml:"runtime"`
}

type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// Assets locates the scene model and the three surface textures.
type Assets struct {
	SceneDir  string `toml:"scene_dir"`
	SceneFile string `toml:"scene_file"`
	Ice       string `toml:"ice"`
	Water     string `toml:"water"`
	Snow      string `toml:"snow"`
}

// View holds the initial distance and the per-keypress steps.
type View struct {
	SceneDistance float32 `toml:"scene_distance"`
	RotationStep  float32 `toml:"rotation_step"`
	DistanceStep  float32 `toml:"distance_step"`
}

type Runtime struct {
	// FPSLimit of 0 disables the limiter.
	FPSLimit int    `toml:"fps_limit"`
	LogLevel string `toml:"log_level"`
}

// Upper bounds for the per-key view steps.
const (
	MaxRotationStep = 360
	MaxDistanceStep = 100
)

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Window: Window{Width: 900, Height: 600, Title: "Igloo"},
		Assets: Assets{
			SceneDir:  "assets/models",
			SceneFile: "iceberg.obj",
			Ice:       "assets/textures/ice.png",
			Water:     "assets/textures/water.png",
			Snow:      "assets/textures/snow.png",
		},
		View:    View{SceneDistance: 10, RotationStep: 5, DistanceStep: 1},
		Runtime: Runtime{FPSLimit: 60, LogLevel: "info"},
	}
}

// Load reads path over Default. Unknown keys are an error. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.resolve(filepath.Dir(path))
	return cfg, cfg.Validate()
}

// Decode unmarshals TOML into cfg, keeping fields the document omits.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// resolve makes relative asset paths relative to the config file.
func (c *Config) resolve(base string) {
	for _, p := range []*string{&c.Assets.SceneDir, &c.Assets.Ice, &c.Assets.Water, &c.Assets.Snow} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Assets.SceneFile == "":
		return errors.New("assets.scene_file is required")
	case c.Assets.Ice == "" || c.Assets.Water == "" || c.Assets.Snow == "":
		return errors.New("assets: ice, water and snow textures are required")
	case c.View.SceneDistance <= 0:
		return fmt.Errorf("view.scene_distance %v must be positive", c.View.SceneDistance)
	case c.View.RotationStep <= 0 || c.View.DistanceStep <= 0:
		return errors.New("view steps must be positive")
	case c.View.RotationStep > MaxRotationStep:
		return fmt.Errorf("view.rotation_step %v exceeds %v degrees", c.View.RotationStep, MaxRotationStep)
	case c.View.DistanceStep > MaxDistanceStep:
		return fmt.Errorf("view.distance_step %v exceeds %v", c.View.DistanceStep, MaxDistanceStep)
	case c.Runtime.FPSLimit < 0:
		return fmt.Errorf("runtime.fps_limit %d must not be negative", c.Runtime.FPSLimit)
	}
	return nil
}

// RuntimeSettings holds values that may change while the window is open.
type RuntimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRuntimeSettings = &RuntimeSettings{
	fpsLimit: 60,
}

// GetFPSLimit returns the frame cap, 0 meaning unlimited.
func GetFPSLimit() int {
	globalRuntimeSettings.mu.RLock()
	defer globalRuntimeSettings.mu.RUnlock()
	return globalRuntimeSettings.fpsLimit
}

// SetFPSLimit sets the frame cap. Negative values are clamped to 0 and
// values above 1000 to 1000.
func SetFPSLimit(fps int) {
	globalRuntimeSettings.mu.Lock()
	defer globalRuntimeSettings.mu.Unlock()

	if fps < 0 {
		fps = 0
	}
	if fps > 1000 {
		fps = 1000
	}
	globalRuntimeSettings.fpsLimit = fps
}
