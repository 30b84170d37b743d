package shadow

import (
	"testing"

	"github.com/morivert/scrollstage/pkg/math"
)

func project(m math.Mat4, p math.Vec3) [3]float32 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	return [3]float32{x / w, y / w, z / w}
}

func inside(ndc [3]float32) bool {
	for _, c := range ndc {
		if c < -1.0001 || c > 1.0001 {
			return false
		}
	}
	return true
}

func TestSpotLightMatrixCentersTarget(t *testing.T) {
	bounds := Sphere{Center: math.Vec3{Y: -0.5}, Radius: 2}
	m := SpotLightMatrix(math.Vec3{X: 10, Y: 10, Z: 10}, 0.15, bounds)

	c := project(m, bounds.Center)
	if abs32(c[0]) > 1e-4 || abs32(c[1]) > 1e-4 {
		t.Errorf("center projects to %v, want screen origin", c)
	}
	if !inside(c) {
		t.Errorf("center outside depth range: %v", c)
	}
}

func TestSpotLightMatrixContainsBounds(t *testing.T) {
	bounds := Sphere{Center: math.Vec3{}, Radius: 2.5}
	m := SpotLightMatrix(math.Vec3{X: 10, Y: 10, Z: 10}, 0.15, bounds)

	offsets := []math.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	for _, o := range offsets {
		p := bounds.Center.Add(o.Scale(bounds.Radius * 0.99))
		if ndc := project(m, p); !inside(ndc) {
			t.Errorf("bounds point %+v projects outside the frustum: %v", p, ndc)
		}
	}
}

func TestSpotLightMatrixOverhead(t *testing.T) {
	// A light straight above must not produce a degenerate view.
	m := SpotLightMatrix(math.Vec3{Y: 10}, 0.3, Sphere{Radius: 1})
	for i, v := range m {
		if v != v {
			t.Fatalf("NaN at element %d", i)
		}
	}
}
