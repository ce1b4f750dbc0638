// Package config loads the TOML render configuration: framebuffer size,
// camera placement, shading toggles and worker count.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// RenderConfig is the top-level document a .toml render file deserializes
// into.
type RenderConfig struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	FOV     float32 `toml:"fov"`
	Workers int     `toml:"workers"`

	Shadows bool   `toml:"shadows"`
	Mode    string `toml:"mode"` // ObservedArea | Radiance | BRDF | Combined

	Camera CameraConfig `toml:"camera"`
	Scene  string       `toml:"scene"` // named scene factory to build
	Output string       `toml:"output"`
}

// CameraConfig describes the camera's initial placement, mirroring the
// mutable fields the external camera controller drives at runtime.
type CameraConfig struct {
	OriginX float32 `toml:"origin_x"`
	OriginY float32 `toml:"origin_y"`
	OriginZ float32 `toml:"origin_z"`
	Pitch   float32 `toml:"pitch"`
	Yaw     float32 `toml:"yaw"`
}

// Default returns a config with the sizes and toggles used when no file is
// supplied on the command line.
func Default() RenderConfig {
	return RenderConfig{
		Width:   800,
		Height:  600,
		FOV:     90,
		Workers: 0,
		Shadows: true,
		Mode:    "Combined",
		Scene:   "single-sphere",
		Output:  "render.bmp",
	}
}

// Load reads and parses a TOML render config from path.
func Load(path string) (RenderConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
