package math

import (
	"testing"
)

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{3, 4, 5}
	tests := []struct {
		name      string
		got, want Vec3
	}{
		{"add", a.Add(b), Vec3{4, 6, 8}},
		{"sub", b.Sub(a), Vec3{2, 2, 2}},
		{"scale", a.Scale(2), Vec3{2, 4, 6}},
		{"components", a.MulComponents(b), Vec3{3, 8, 15}},
		{"cross", Vec3{X: 1}.Cross(Vec3{Y: 1}), Vec3{Z: 1}},
		{"splat", Splat(0.5), Vec3{0.5, 0.5, 0.5}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestVec3Length(t *testing.T) {
	if got := (Vec3{3, 4, 0}).Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if l := (Vec3{3, 4, 12}).Normalize().Length(); abs(l-1) > 1e-3 {
		t.Errorf("Normalize().Length() = %v, want 1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector must normalize to zero")
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		x, want float32
	}{
		{-1, 0},
		{0.2, 0},
		{0.4, 0.5},
		{0.6, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := Smoothstep(tt.x, 0.2, 0.6); abs(got-tt.want) > 0.0001 {
			t.Errorf("Smoothstep(%v, 0.2, 0.6) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSmoothstepMonotonic(t *testing.T) {
	prev := float32(0)
	for i := 0; i <= 1000; i++ {
		x := float32(i) / 1000
		got := Smoothstep(x, 0.1, 0.3)
		if got < prev {
			t.Fatalf("Smoothstep decreased at x=%v: %v < %v", x, got, prev)
		}
		prev = got
	}
}

func TestClamp01(t *testing.T) {
	nan := float32(0)
	nan = nan / nan
	tests := []struct {
		in, want float32
	}{
		{-0.5, 0},
		{0.25, 0.25},
		{1.5, 1},
		{nan, 0},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
