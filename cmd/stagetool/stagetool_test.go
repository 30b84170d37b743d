package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/morivert/scrollstage/internal/engine/debug"
	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
)

func TestSamplePosesEndpoints(t *testing.T) {
	records := samplePoses(timeline.NewEngine(), 5, viewport.ProfileFor(viewport.Desktop), timeline.Spins{})
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	if records[0].Progress != 0 || records[4].Progress != 1 {
		t.Errorf("endpoints = %v, %v", records[0].Progress, records[4].Progress)
	}
	if records[0].Camera["position"] != [3]float32{0, 0, 5} {
		t.Errorf("rest camera = %v", records[0].Camera["position"])
	}
	last := records[4]
	if last.Blends["reveal"] != 1 || last.Parts[timeline.Sprout].Visibility != 1 {
		t.Errorf("final record not revealed: %+v", last.Blends)
	}
}

func TestSamplePosesYAML(t *testing.T) {
	records := samplePoses(timeline.NewEngine(), 3, viewport.ProfileFor(viewport.Mobile), timeline.Spins{})
	out, err := yaml.Marshal(records)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var back []struct {
		Progress float32 `yaml:"progress"`
		Parts    []struct {
			Name string `yaml:"name"`
		} `yaml:"parts"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if len(back) != 3 || back[1].Progress != 0.5 || len(back[1].Parts) != int(timeline.PartCount) {
		t.Errorf("round trip lost data: %+v", back)
	}
}

func TestExportTextures(t *testing.T) {
	dir := t.TempDir()
	paths, err := exportTextures(debug.NewCapture(dir, ""), 3)
	if err != nil {
		t.Fatalf("exportTextures() error = %v", err)
	}
	if len(paths) != len(texture.Selectors()) {
		t.Fatalf("wrote %d files, want %d", len(paths), len(texture.Selectors()))
	}
	if _, err := os.Stat(filepath.Join(dir, "mori-gold.png")); err != nil {
		t.Errorf("mori-gold.png missing: %v", err)
	}
}
