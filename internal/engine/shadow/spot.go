package shadow

import (
	gomath "math"

	"github.com/morivert/scrollstage/pkg/math"
)

// Sphere bounds the geometry that casts and receives shadows.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

// SpotLightMatrix returns the light's view-projection for a spot light at
// position aimed at the bounds' center. The frustum is the wider of the
// cone and the cone fitted to the bounds, with depth clipped to the bounds.
func SpotLightMatrix(position math.Vec3, coneAngle float32, bounds Sphere) math.Mat4 {
	toCenter := bounds.Center.Sub(position)
	dist := toCenter.Length()
	if dist <= bounds.Radius {
		dist = bounds.Radius + 1
	}

	fit := float32(gomath.Asin(float64(bounds.Radius / dist)))
	half := coneAngle
	if fit > half {
		half = fit
	}
	// Leave a little margin for the penumbra.
	half *= 1.1
	if half > 1.5 {
		half = 1.5
	}

	up := math.Vec3{Y: 1}
	if dir := toCenter.Normalize(); abs32(dir.Y) > 0.99 {
		up = math.Vec3{Z: 1}
	}

	near := dist - bounds.Radius
	if near < 0.05 {
		near = 0.05
	}
	far := dist + bounds.Radius

	view := math.LookAt(position, bounds.Center, up)
	proj := math.Perspective(2*half, 1, near, far)
	return proj.Mul(view)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
