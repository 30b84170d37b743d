package config

import "flag"

// Flags are the command-line overrides. They win over the config file.
type Flags struct {
	Path       string
	Debug      bool
	Texture    string
	Windowed   bool
	Fullscreen bool
	Width      int
	Height     int
	Mobile     bool
}

// RegisterFlags binds the overrides to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Path, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.Texture, "texture", "", "Surface pattern (mori, cedar, nebula, ...)")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run in windowed mode")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run in fullscreen mode")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.BoolVar(&f.Mobile, "mobile", false, "Force the mobile viewport profile")
	return f
}

// Apply writes every set override into cfg.
func (f *Flags) Apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.Texture != "" {
		cfg.Animation.Texture = f.Texture
	}
	switch {
	case f.Fullscreen:
		cfg.Window.Fullscreen = true
	case f.Windowed:
		cfg.Window.Fullscreen = false
	}
	if f.Width > 0 {
		cfg.Window.Width = f.Width
	}
	if f.Height > 0 {
		cfg.Window.Height = f.Height
	}
	if f.Mobile {
		cfg.Viewport.ForceClass = "mobile"
	}
}
