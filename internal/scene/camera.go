package scene

import (
	gomath "math"

	"github.com/morivert/scrollstage/pkg/math"
)

// Default lens settings.
const (
	DefaultFOV  = 35 // degrees, vertical
	DefaultNear = 0.1
	DefaultFar  = 100
)

// Camera is a look-at perspective camera.
type Camera struct {
	Position math.Vec3
	Target   math.Vec3

	FOV  float32 // vertical field of view in degrees
	Near float32
	Far  float32
}

// NewCamera creates a camera at the resting position looking at the origin.
func NewCamera() Camera {
	return Camera{
		Position: math.Vec3{Z: 5},
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      DefaultFar,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, c.Target, up)
}

// ProjectionMatrix returns the perspective matrix for an aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	fov := c.FOV * float32(gomath.Pi) / 180
	return math.Perspective(fov, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}
