package math

import (
	"math"
	"testing"
)

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{0.3, -1.2, 4}
	if got := QuatIdentity().Rotate(v); !near(got, v) {
		t.Errorf("identity Rotate(%v) = %v", v, got)
	}
	if QuatIdentity().ToMat4() != Identity() {
		t.Error("identity ToMat4 is not the identity matrix")
	}
}

func TestQuatNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Quat
		want float32
	}{
		{"unit", QuatIdentity(), 1},
		{"long", Quat{1, 2, 3, 4}, 1},
		{"degenerate", Quat{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.in.Normalize()
			if l := float32(math.Sqrt(float64(n.Dot(n)))); abs(l-tt.want) > 1e-4 {
				t.Errorf("length = %v, want %v", l, tt.want)
			}
		})
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2)
	if abs(q.W-float32(math.Cos(math.Pi/4))) > 1e-4 || abs(q.Y-float32(math.Sin(math.Pi/4))) > 1e-4 {
		t.Errorf("quarter turn about Y = %+v", q)
	}
	if got := q.Rotate(Vec3{X: 1}); !near(got, Vec3{Z: -1}) {
		t.Errorf("Rotate(X) = %v, want -Z", got)
	}
}

func TestQuatSlerp(t *testing.T) {
	from := QuatIdentity()
	to := QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2)

	tests := []struct {
		t    float32
		want Quat
	}{
		{0, from},
		{0.5, QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/4)},
		{1, to},
	}
	for _, tt := range tests {
		if got := from.Slerp(to, tt.t); abs(got.Dot(tt.want)-1) > 1e-4 {
			t.Errorf("Slerp(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestQuatSlerpShortArc(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{Z: 1}, 0.4)
	neg := q.scale(-1)
	if got := q.Slerp(neg, 0.5); abs(abs(got.Dot(q))-1) > 1e-4 {
		t.Errorf("Slerp between q and -q left the rotation: %+v", got)
	}
}

func TestQuatSlerpSigned(t *testing.T) {
	from := QuatIdentity()
	tests := []struct {
		name string
		to   Quat
		t    float32
		want Quat
	}{
		{"start", QuatFromAxisAngle(Vec3{Y: 1}, 1), 0, from},
		{"end", QuatFromAxisAngle(Vec3{Y: 1}, 1), 1, QuatFromAxisAngle(Vec3{Y: 1}, 1)},
		{"quarter", QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/2), 0.5, QuatFromAxisAngle(Vec3{Y: 1}, math.Pi/4)},
		// Past a half turn the arc keeps going the long way round.
		{"long arc", QuatFromAxisAngle(Vec3{Y: 1}, 3), 0.5, QuatFromAxisAngle(Vec3{Y: 1}, 1.5)},
		{"negated end", QuatFromAxisAngle(Vec3{Y: 1}, 3*math.Pi/2), 0.5, QuatFromAxisAngle(Vec3{Y: 1}, 3*math.Pi/4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := from.SlerpSigned(tt.to, tt.t); abs(got.Dot(tt.want)-1) > 1e-4 {
				t.Errorf("SlerpSigned(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

// Sweeping the far endpoint through the hemisphere boundary moves the
// signed midpoint smoothly while the shorter-arc midpoint jumps.
func TestQuatSlerpSignedContinuous(t *testing.T) {
	from := QuatIdentity()
	const step = 0.001
	for a := float32(2.9); a < 3.4; a += step {
		m0 := from.SlerpSigned(QuatFromAxisAngle(Vec3{Y: 1}, a), 0.5)
		m1 := from.SlerpSigned(QuatFromAxisAngle(Vec3{Y: 1}, a+step), 0.5)
		if d := abs(m0.Dot(m1)); d < 0.9999 {
			t.Fatalf("midpoint jumps at angle %v: dot %v", a, d)
		}
	}

	below := from.Slerp(QuatFromAxisAngle(Vec3{Y: 1}, math.Pi-0.01), 0.5)
	above := from.Slerp(QuatFromAxisAngle(Vec3{Y: 1}, math.Pi+0.01), 0.5)
	if d := abs(below.Dot(above)); d > 0.9 {
		t.Errorf("shorter-arc midpoint unexpectedly continuous: dot %v", d)
	}
}

func TestVec3Lerp(t *testing.T) {
	if got := (Vec3{}).Lerp(Vec3{10, 20, 30}, 0.5); !near(got, Vec3{5, 10, 15}) {
		t.Errorf("Lerp = %v", got)
	}
}

func TestQuatFromEulerSingleAxis(t *testing.T) {
	angle := float32(0.7)
	tests := []struct {
		name  string
		euler Quat
		axis  Quat
	}{
		{"x", QuatFromEuler(angle, 0, 0), QuatFromAxisAngle(Vec3{X: 1}, angle)},
		{"y", QuatFromEuler(0, angle, 0), QuatFromAxisAngle(Vec3{Y: 1}, angle)},
		{"z", QuatFromEuler(0, 0, angle), QuatFromAxisAngle(Vec3{Z: 1}, angle)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := tt.euler.Dot(tt.axis); math.Abs(float64(d)-1) > 0.0001 {
				t.Errorf("QuatFromEuler %s: dot with axis-angle = %v, want 1", tt.name, d)
			}
		})
	}
}

func TestQuatFromEulerOrder(t *testing.T) {
	// XYZ order: R = Rx * Ry * Rz, so Z is applied to the vector first.
	q := QuatFromEuler(float32(math.Pi/2), 0, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1})
	// Rz(90) maps X to Y, then Rx(90) maps Y to Z.
	want := Vec3{Z: 1}
	if got.Distance(want) > 0.001 {
		t.Errorf("QuatFromEuler order: got %v, want %v", got, want)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromEuler(0.3, 1.1, -0.4)
	v := Vec3{0.2, 1.35, -0.7}

	byQuat := q.Rotate(v)
	byMat := q.ToMat4().TransformVec3(v)
	if byQuat.Distance(byMat) > 0.0001 {
		t.Errorf("Rotate vs ToMat4: %v vs %v", byQuat, byMat)
	}
}

func TestQuatSlerpStaysUnit(t *testing.T) {
	a := QuatFromEuler(0, 0.2, 0.47)
	b := QuatFromEuler(0, 2.9, float32(math.Pi/2))
	for i := 0; i <= 20; i++ {
		q := a.Slerp(b, float32(i)/20)
		l := math.Sqrt(float64(q.Dot(q)))
		if math.Abs(l-1) > 0.001 {
			t.Errorf("Slerp t=%v: length %v, want 1", float32(i)/20, l)
		}
	}
}
