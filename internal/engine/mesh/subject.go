package mesh

import "github.com/morivert/scrollstage/pkg/math"

// GroundY is the height of the shadow-catching ground plane.
const GroundY = -1.8

// Subject holds the geometry of every part, each in its own part space.
type Subject struct {
	Body    *Mesh
	Tip     *Mesh
	Lead    *Mesh
	Capsule *Mesh
	Seeds   [3]*Mesh
	Sprout  *Mesh
	Ground  *Mesh
}

func at(x, y, z float32) math.Transform {
	t := math.IdentityTransform()
	t.Position = math.Vec3{X: x, Y: y, Z: z}
	return t
}

func tilted(x, y, z, rz float32) math.Transform {
	t := at(x, y, z)
	t.Rotation = math.QuatFromEuler(0, 0, rz)
	return t
}

// BuildSubject builds the subject geometry. Part placement comes from the
// pose, so every mesh is centered on its part origin.
func BuildSubject() *Subject {
	s := &Subject{
		Body:    Cylinder(0.08, 0.08, 2.5, 6),
		Tip:     Cylinder(0.08, 0.02, 0.4, 6),
		Lead:    Cone(0.02, 0.1, 6),
		Capsule: Cylinder(0.081, 0.081, 0.3, 16),
		Seeds: [3]*Mesh{
			Sphere(0.015, 8, 8).Transform(at(0, -0.05, 0.02)),
			Sphere(0.012, 8, 8).Transform(at(0.02, 0, -0.02)),
			Sphere(0.018, 8, 8).Transform(at(-0.02, 0.05, 0.01)),
		},
		Ground: Plane(30),
	}

	leafA := Sphere(0.04, 8, 8).Transform(tilted(0.03, 0.01, 0.02, 0.4))
	leafB := Sphere(0.04, 8, 8).Transform(tilted(-0.03, 0.01, -0.02, -0.4))
	stem := Cylinder(0.006, 0.006, 0.06, 8).Transform(at(0, -0.02, 0))
	s.Sprout = leafA.Merge(leafB, stem)

	return s
}
