package math

// Transform is a position/rotation/scale triple, applied as T * R * S.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// IdentityTransform returns a transform that leaves points unchanged.
func IdentityTransform() Transform {
	return Transform{Rotation: QuatIdentity(), Scale: Splat(1)}
}

// Matrix returns the column-major model matrix T * R * S.
func (t Transform) Matrix() Mat4 {
	m := t.Rotation.ToMat4()
	// Scale the rotation columns, then write the translation column.
	for i := 0; i < 3; i++ {
		m[i] *= t.Scale.X
		m[4+i] *= t.Scale.Y
		m[8+i] *= t.Scale.Z
	}
	m[12] = t.Position.X
	m[13] = t.Position.Y
	m[14] = t.Position.Z
	return m
}

// Apply transforms a point without building a matrix.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.Rotate(p.MulComponents(t.Scale)).Add(t.Position)
}
