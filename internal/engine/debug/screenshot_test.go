package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFrameFlipsRows(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := NewCapture(dir, "frame")
	c.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	// 1x2 image: bottom row red, top row blue.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := c.Frame(pixels, 1, 2)
	if err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	if want := filepath.Join(dir, "frame_2026-01-02_03-04-05.000.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	_, _, b, _ := img.At(0, 0).RGBA()
	r, _, _, _ := img.At(0, 1).RGBA()
	if b>>8 != 255 || r>>8 != 255 {
		t.Errorf("rows not flipped: top=%v bottom=%v", img.At(0, 0), img.At(0, 1))
	}
}

func TestFrameSizeMismatch(t *testing.T) {
	c := NewCapture(t.TempDir(), "frame")
	if _, err := c.Frame(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}
