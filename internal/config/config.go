// Package config holds the viewer's YAML-backed configuration. This is a
// cmd/vcam concern only — the rendering core takes no configuration of its
// own.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Light    LightConfig    `yaml:"light"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig controls the terminal framebuffer and frame pacing.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`       // 0 means "size to terminal"
	Height     int    `yaml:"height"`      // 0 means "size to terminal"
	TargetFPS  int    `yaml:"target_fps"`
	Background [3]int `yaml:"background"` // 0-255 RGB
}

// CameraConfig seeds the initial camera pose.
type CameraConfig struct {
	Position [3]float64 `yaml:"position"`
	Rotation [3]float64 `yaml:"rotation"` // Euler Y,X,Z, degrees
	VFOV     float64    `yaml:"vfov"`
}

// LightConfig seeds the initial point light.
type LightConfig struct {
	Position [3]float64 `yaml:"position"`
	Ambient  [3]float64 `yaml:"ambient"`
	Diffuse  [3]float64 `yaml:"diffuse"`
	Specular [3]float64 `yaml:"specular"`
}

// LoggingConfig controls vcamlog.Init.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values, matching the
// defaults the rendering core itself would pick if asked (30 degree vfov,
// a white light above and in front of the origin).
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      0,
			Height:     0,
			TargetFPS:  60,
			Background: [3]int{16, 16, 24},
		},
		Camera: CameraConfig{
			Position: [3]float64{0, 0, -5},
			Rotation: [3]float64{0, 0, 0},
			VFOV:     30,
		},
		Light: LightConfig{
			Position: [3]float64{2, 3, -2},
			Ambient:  [3]float64{0.2, 0.2, 0.2},
			Diffuse:  [3]float64{0.8, 0.8, 0.8},
			Specular: [3]float64{1, 1, 1},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
