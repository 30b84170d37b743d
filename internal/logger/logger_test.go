package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"loud", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"info", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "stage.log")
			if err := Setup(Options{Level: tt.level, File: Rotation{Path: path, MaxSizeMB: 1}}); err != nil {
				t.Fatalf("Setup: %v", err)
			}

			Log.Debug("debug line")
			Log.Info("info line")
			Log.Warn("warn line")
			Log.Error("error line")
			Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("read log: %v", err)
			}
			out := string(data)
			for _, lvl := range tt.expected {
				if !strings.Contains(out, lvl) {
					t.Errorf("missing %s entry in:\n%s", lvl, out)
				}
			}
			for _, lvl := range tt.excluded {
				if strings.Contains(out, lvl) {
					t.Errorf("unexpected %s entry in:\n%s", lvl, out)
				}
			}
		})
	}
}

func TestNamedComponent(t *testing.T) {
	var buf bytes.Buffer
	if err := Setup(Options{Level: "info", Console: &buf}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer Setup(Options{})

	Named("scroll").Info("measured", zap.Float64("pages", 4))
	out := buf.String()
	for _, want := range []string{"scroll", "measured", "pages"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestRotationCreatesBackups(t *testing.T) {
	if testing.Short() {
		t.Skip("writes more than a megabyte")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "stage.log")
	if err := Setup(Options{Level: "debug", File: Rotation{Path: path, MaxSizeMB: 1, MaxBackups: 2}}); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	defer Setup(Options{})

	line := strings.Repeat("x", 200)
	for i := 0; i < 15000; i++ {
		Sugar.Infof("entry %d: %s", i, line)
	}
	Sync()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var rotated int
	for _, e := range entries {
		if e.Name() != "stage.log" && strings.HasPrefix(e.Name(), "stage-") {
			rotated++
		}
	}
	if rotated == 0 {
		t.Errorf("no rotated files among %d entries", len(entries))
	}
}

func TestNopBeforeSetup(t *testing.T) {
	Setup(Options{})
	// Must not panic with no outputs configured.
	Named("idle").Info("dropped")
	Sync()
}
