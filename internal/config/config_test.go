package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
		t.Errorf("window = %dx%d, want 1280x720", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Fullscreen || !cfg.Window.VSync {
		t.Errorf("window flags = fullscreen %v vsync %v", cfg.Window.Fullscreen, cfg.Window.VSync)
	}
	if cfg.Viewport.BreakpointPx != 768 {
		t.Errorf("breakpoint = %d, want 768", cfg.Viewport.BreakpointPx)
	}
	if cfg.Scroll.DefaultPages != 10 || cfg.Scroll.DampingSeconds != 0.2 || cfg.Scroll.Sections != 9 {
		t.Errorf("scroll = %+v", cfg.Scroll)
	}
	if cfg.Animation.Texture != "mori" {
		t.Errorf("texture = %q, want mori", cfg.Animation.Texture)
	}
	if cfg.Animation.ShowcaseSpinRate <= cfg.Animation.HeroSpinRate {
		t.Error("showcase spin should be faster than hero spin")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.LogFile != "" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestReadFileMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 1920
  height: 1080
  fullscreen: true
  fps_limit: 144
viewport:
  breakpoint_px: 900
  force_class: "mobile"
scroll:
  default_pages: 12
  sections: 7
animation:
  texture: "nebula"
  texture_seed: 42
logging:
  level: "debug"
  log_file: "stage.log"
`)

	cfg := Default()
	if err := ReadFile(cfg, path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	tests := []struct {
		name      string
		got, want any
	}{
		{"width", cfg.Window.Width, 1920},
		{"fullscreen", cfg.Window.Fullscreen, true},
		{"fps limit", cfg.Window.FPSLimit, 144},
		{"breakpoint", cfg.Viewport.BreakpointPx, 900},
		{"force class", cfg.Viewport.ForceClass, "mobile"},
		{"pages", cfg.Scroll.DefaultPages, 12.0},
		{"sections", cfg.Scroll.Sections, 7},
		{"texture", cfg.Animation.Texture, "nebula"},
		{"seed", cfg.Animation.TextureSeed, int64(42)},
		{"level", cfg.Logging.Level, "debug"},
		{"log file", cfg.Logging.LogFile, "stage.log"},
		// absent keys keep their defaults
		{"vsync", cfg.Window.VSync, true},
		{"wheel step", cfg.Scroll.WheelStepPx, 120.0},
		{"showcase rate", cfg.Animation.ShowcaseSpinRate, 1.2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestReadFileErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"invalid yaml", writeConfig(t, "window:\n  width: not a number\n  invalid syntax here\n")},
		{"missing", filepath.Join(t.TempDir(), "absent.yaml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ReadFile(Default(), tt.path); err == nil {
				t.Error("ReadFile succeeded, want error")
			}
		})
	}
}

func TestDirIsAbsolute(t *testing.T) {
	if dir := Dir(); !filepath.IsAbs(dir) {
		t.Errorf("Dir() = %q, want an absolute path", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if path := findConfigFile(); path != "" {
		t.Errorf("findConfigFile() = %q with no config present", path)
	}
	if err := os.WriteFile(fileName, []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if path := findConfigFile(); path != fileName {
		t.Errorf("findConfigFile() = %q, want %q", path, fileName)
	}
}

func TestFlagsApply(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(*Config) bool
	}{
		{"debug", []string{"-debug"}, func(c *Config) bool { return c.Logging.Level == "debug" }},
		{"texture", []string{"-texture", "aurora"}, func(c *Config) bool { return c.Animation.Texture == "aurora" }},
		{"fullscreen", []string{"-fullscreen"}, func(c *Config) bool { return c.Window.Fullscreen }},
		{"fullscreen wins", []string{"-windowed", "-fullscreen"}, func(c *Config) bool { return c.Window.Fullscreen }},
		{"size", []string{"-width", "2560", "-height", "1440"}, func(c *Config) bool {
			return c.Window.Width == 2560 && c.Window.Height == 1440
		}},
		{"mobile", []string{"-mobile"}, func(c *Config) bool { return c.Viewport.ForceClass == "mobile" }},
		{"none", nil, func(c *Config) bool { return *c == *Default() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.name, flag.ContinueOnError)
			f := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cfg := Default()
			f.Apply(cfg)
			if !tt.check(cfg) {
				t.Errorf("unexpected config after %v: %+v", tt.args, cfg)
			}
		})
	}
}

func TestWindowedOverridesFile(t *testing.T) {
	cfg := Default()
	cfg.Window.Fullscreen = true
	(&Flags{Windowed: true}).Apply(cfg)
	if cfg.Window.Fullscreen {
		t.Error("-windowed did not clear fullscreen")
	}
}

func TestSanitize(t *testing.T) {
	cfg := Default()
	cfg.Viewport.BreakpointPx = 0
	cfg.Scroll.DefaultPages = 0
	cfg.Scroll.DampingSeconds = -1
	cfg.Scroll.WheelStepPx = -3
	cfg.Scroll.Sections = 0
	cfg.Window.Width = -5

	sanitize(cfg)

	def := Default()
	if cfg.Viewport.BreakpointPx != def.Viewport.BreakpointPx {
		t.Errorf("breakpoint = %d", cfg.Viewport.BreakpointPx)
	}
	if cfg.Scroll.DefaultPages != def.Scroll.DefaultPages {
		t.Errorf("pages = %v", cfg.Scroll.DefaultPages)
	}
	if cfg.Scroll.DampingSeconds != 0 {
		t.Errorf("damping = %v, want 0", cfg.Scroll.DampingSeconds)
	}
	if cfg.Scroll.WheelStepPx != def.Scroll.WheelStepPx {
		t.Errorf("wheel step = %v", cfg.Scroll.WheelStepPx)
	}
	if cfg.Scroll.Sections != 1 {
		t.Errorf("sections = %d, want 1", cfg.Scroll.Sections)
	}
	if cfg.Window.Width != def.Window.Width || cfg.Window.Height != def.Window.Height {
		t.Errorf("window = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
}

func TestLoadPriority(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "window:\n  width: 1600\n  height: 900\nanimation:\n  texture: \"cedar\"\n")

	cfg, err := Load(&Flags{Path: path, Width: 1920})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("width = %d, want 1920 from flags", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("height = %d, want 900 from file", cfg.Window.Height)
	}
	if cfg.Animation.Texture != "cedar" {
		t.Errorf("texture = %q, want cedar from file", cfg.Animation.Texture)
	}
}

func TestLoadWithoutFlags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil): %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(nil) = %+v, want defaults", cfg)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Animation.Texture = "prism"
	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	loaded := Default()
	if err := ReadFile(loaded, path); err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}
