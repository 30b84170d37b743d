// Package config handles stage configuration loading and management.
package config

// Config holds all stage settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Scroll    ScrollConfig    `yaml:"scroll"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings for the interactive viewer.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// ViewportConfig controls mobile/desktop classification.
type ViewportConfig struct {
	BreakpointPx int    `yaml:"breakpoint_px"`
	ForceClass   string `yaml:"force_class"` // "", "mobile" or "desktop"
}

// ScrollConfig sizes the scroll range and the overlay content.
type ScrollConfig struct {
	DefaultPages       float64 `yaml:"default_pages"`
	DampingSeconds     float64 `yaml:"damping_seconds"`
	WheelStepPx        float64 `yaml:"wheel_step_px"`
	Sections           int     `yaml:"sections"`
	SectionMinHeightPx float64 `yaml:"section_min_height_px"`
}

// AnimationConfig holds spin rates (radians per second) and the surface pattern.
type AnimationConfig struct {
	HeroSpinRate     float64 `yaml:"hero_spin_rate"`
	ShowcaseSpinRate float64 `yaml:"showcase_spin_rate"`
	SproutSpinRate   float64 `yaml:"sprout_spin_rate"`
	Texture          string  `yaml:"texture"`
	TextureSeed      int64   `yaml:"texture_seed"` // 0 seeds from the clock
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Viewport: ViewportConfig{
			BreakpointPx: 768,
		},
		Scroll: ScrollConfig{
			DefaultPages:       10,
			DampingSeconds:     0.2,
			WheelStepPx:        120,
			Sections:           9,
			SectionMinHeightPx: 640,
		},
		Animation: AnimationConfig{
			HeroSpinRate:     0.4,
			ShowcaseSpinRate: 1.2,
			SproutSpinRate:   0.6,
			Texture:          "mori",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
