package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

const fileName = "config.yaml"

// Load layers defaults, then the config file, then flags. A nil f skips the
// flag layer and the explicit path.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	var path string
	if f != nil {
		path = f.Path
	}
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := ReadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	if f != nil {
		f.Apply(cfg)
	}
	sanitize(cfg)
	return cfg, nil
}

// ReadFile merges the YAML file at path over cfg. Keys absent from the file
// keep their current values.
func ReadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// WriteFile stores cfg as YAML, creating parent directories.
func (c *Config) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Save writes cfg to the per-user config directory.
func (c *Config) Save() error {
	return c.WriteFile(filepath.Join(Dir(), fileName))
}

func findConfigFile() string {
	for _, path := range []string{fileName, filepath.Join(Dir(), fileName)} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Dir returns the per-user config directory for this OS.
func Dir() string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Scrollstage")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Scrollstage")
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scrollstage")
	}
	return filepath.Join(home, ".config", "scrollstage")
}

// sanitize replaces values the stage cannot run with by their defaults.
func sanitize(cfg *Config) {
	def := Default()
	if cfg.Viewport.BreakpointPx <= 0 {
		cfg.Viewport.BreakpointPx = def.Viewport.BreakpointPx
	}
	if cfg.Scroll.DefaultPages < 1 {
		cfg.Scroll.DefaultPages = def.Scroll.DefaultPages
	}
	cfg.Scroll.DampingSeconds = max(cfg.Scroll.DampingSeconds, 0)
	if cfg.Scroll.WheelStepPx <= 0 {
		cfg.Scroll.WheelStepPx = def.Scroll.WheelStepPx
	}
	cfg.Scroll.Sections = max(cfg.Scroll.Sections, 1)
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		cfg.Window.Width, cfg.Window.Height = def.Window.Width, def.Window.Height
	}
}
