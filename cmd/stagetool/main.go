// stagetool is a CLI utility for inspecting the scroll timeline and the
// generated surface patterns. Only the inspect command opens a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/morivert/scrollstage/internal/config"
	"github.com/morivert/scrollstage/internal/engine/debug"
	"github.com/morivert/scrollstage/internal/inspector"
	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "textures", "tex":
		cmdTextures(args)
	case "poses":
		cmdPoses(args)
	case "phases":
		cmdPhases(args)
	case "inspect":
		cmdInspect(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stagetool - scroll timeline and texture utility

Usage:
  stagetool <command> [options]

Commands:
  textures [-seed N] <dir>       Export every surface pattern as PNG
  poses [-n N] [-mobile]         Dump sampled poses as YAML
  phases                         Print the phase table
  inspect [-seed N] [-log L]     Open the interactive timeline inspector
  config [-o path]               Write the default config file

Examples:
  stagetool textures ./out
  stagetool poses -n 21 -mobile > poses.yaml
  stagetool phases`)
}

func cmdTextures(args []string) {
	fs := flag.NewFlagSet("textures", flag.ExitOnError)
	seed := fs.Int64("seed", 1, "Random seed for pattern placement")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stagetool textures [-seed N] <dir>")
		os.Exit(1)
	}

	paths, err := exportTextures(debug.NewCapture(fs.Arg(0), ""), *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
}

func cmdPoses(args []string) {
	fs := flag.NewFlagSet("poses", flag.ExitOnError)
	n := fs.Int("n", 11, "Number of evenly spaced samples over [0, 1]")
	mobile := fs.Bool("mobile", false, "Use the mobile viewport profile")
	hero := fs.Float64("hero", 0, "Hero spin angle in radians")
	showcase := fs.Float64("showcase", 0, "Showcase spin angle in radians")
	fs.Parse(args)

	class := viewport.Desktop
	if *mobile {
		class = viewport.Mobile
	}
	spins := timeline.Spins{Hero: float32(*hero), Showcase: float32(*showcase)}

	records := samplePoses(timeline.NewEngine(), *n, viewport.ProfileFor(class), spins)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	enc.Close()
}

func cmdPhases(args []string) {
	_ = args
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tSTART\tEND")
	phases := timeline.NewEngine().Phases()
	for _, ph := range phases {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\n", ph.Name, ph.Start, ph.End)
	}
	for _, ph := range timeline.Envelopes() {
		fmt.Fprintf(w, "  %s\t%.2f\t%.2f\n", ph.Name, ph.Start, ph.End)
	}
	w.Flush()

	if !timeline.Covered(phases[:]) {
		fmt.Fprintln(os.Stderr, "warning: phases leave a gap in [0, 1]")
		os.Exit(1)
	}
}

// exportTextures writes one PNG per catalogue pattern, sharing one generator.
func exportTextures(c *debug.Capture, seed int64) ([]string, error) {
	cache := texture.NewCache(seed)
	var paths []string
	for _, e := range texture.Selectors() {
		path, err := c.Image(e.Selector.String()+".png", cache.Get(e.Selector))
		if err != nil {
			return paths, fmt.Errorf("%s: %w", e.Selector, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "Random seed for pattern placement (0 uses the clock)")
	level := fs.String("log", "info", "Log level")
	fs.Parse(args)

	if err := logger.Init(*level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	b, err := inspector.NewBackend("Stage Inspector", 1280, 900)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	model := inspector.NewModel(timeline.NewEngine(), texture.NewCache(*seed))
	panel := inspector.NewPanel(model)
	defer panel.Close()

	b.Run(panel.Render)
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: the per-user config directory)")
	fs.Parse(args)

	cfg := config.Default()
	var err error
	if *out == "" {
		err = cfg.Save()
		*out = filepath.Join(config.Dir(), "config.yaml")
	} else {
		err = cfg.WriteFile(*out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(*out)
}
