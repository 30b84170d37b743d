package math

import "math"

// Quat is a rotation quaternion with scalar part W.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the no-op rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle rotates by angle radians about a unit axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	sin, cos := math.Sincos(float64(angle) / 2)
	v := axis.Scale(float32(sin))
	return Quat{v.X, v.Y, v.Z, float32(cos)}
}

// QuatFromEuler composes X, Y and Z rotations as Rx * Ry * Rz, so Z acts
// on a vector first. Angles are in radians.
func QuatFromEuler(x, y, z float32) Quat {
	return QuatFromAxisAngle(Vec3{X: 1}, x).
		Mul(QuatFromAxisAngle(Vec3{Y: 1}, y)).
		Mul(QuatFromAxisAngle(Vec3{Z: 1}, z))
}

func (q Quat) scale(s float32) Quat {
	return Quat{q.X * s, q.Y * s, q.Z * s, q.W * s}
}

func (q Quat) add(o Quat) Quat {
	return Quat{q.X + o.X, q.Y + o.Y, q.Z + o.Z, q.W + o.W}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(o Quat) float32 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// Normalize scales q to unit length. Degenerate input yields the identity.
func (q Quat) Normalize() Quat {
	l := float32(math.Sqrt(float64(q.Dot(q))))
	if l < 1e-4 {
		return QuatIdentity()
	}
	return q.scale(1 / l)
}

// Mul returns the rotation q applied after o.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Slerp interpolates along the shorter arc from q (t=0) to o (t=1).
// Nearly parallel inputs fall back to a normalized lerp.
func (q Quat) Slerp(o Quat, t float32) Quat {
	cos := q.Dot(o)
	if cos < 0 {
		o = o.scale(-1)
		cos = -cos
	}
	if cos > 0.9995 {
		return q.add(o.add(q.scale(-1)).scale(t)).Normalize()
	}

	theta := math.Acos(float64(cos))
	sin := math.Sin(theta)
	a := float32(math.Sin((1-float64(t))*theta) / sin)
	b := float32(math.Sin(float64(t)*theta) / sin)
	return q.scale(a).add(o.scale(b))
}

// SlerpSigned interpolates along the arc from q to o exactly as given,
// never flipping o onto the shorter side. The result then moves
// continuously with both endpoints wherever they are not antipodal.
// Antipodal inputs have no unique arc and yield a normalized lerp.
func (q Quat) SlerpSigned(o Quat, t float32) Quat {
	cos := q.Dot(o)
	if cos > 0.9995 || cos < -0.9995 {
		return q.add(o.add(q.scale(-1)).scale(t)).Normalize()
	}

	theta := math.Acos(float64(cos))
	sin := math.Sin(theta)
	a := float32(math.Sin((1-float64(t))*theta) / sin)
	b := float32(math.Sin(float64(t)*theta) / sin)
	return q.scale(a).add(o.scale(b))
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// ToMat4 returns the rotation as a matrix. q is normalized first.
func (q Quat) ToMat4() Mat4 {
	q = q.Normalize()
	m := Identity()
	for c, axis := range [3]Vec3{{X: 1}, {Y: 1}, {Z: 1}} {
		col := q.Rotate(axis)
		m[c*4], m[c*4+1], m[c*4+2] = col.X, col.Y, col.Z
	}
	return m
}
