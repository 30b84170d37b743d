// Package viewport classifies the display into a coarse capability tier and
// exposes the scale, lighting and quality constants that go with it.
package viewport

import (
	"github.com/morivert/scrollstage/pkg/math"
)

// Class is the coarse device tier. The zero value is Desktop, which is also
// the assumption while the real width is still unknown.
type Class int

const (
	Desktop Class = iota
	Mobile
)

// DefaultBreakpoint is the width in pixels below which a viewport is mobile.
const DefaultBreakpoint = 768

func (c Class) String() string {
	switch c {
	case Mobile:
		return "mobile"
	default:
		return "desktop"
	}
}

// ParseClass maps "mobile"/"desktop" to a Class.
func ParseClass(s string) (Class, bool) {
	switch s {
	case "mobile":
		return Mobile, true
	case "desktop":
		return Desktop, true
	}
	return Desktop, false
}

// Classify returns Mobile for widths strictly below the breakpoint.
// Unknown (non-positive) widths classify as Desktop.
func Classify(width, breakpoint int) Class {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	if width > 0 && width < breakpoint {
		return Mobile
	}
	return Desktop
}

// SpotLight is the key light of the rig.
type SpotLight struct {
	Position  math.Vec3
	Angle     float32 // cone half-angle, radians
	Penumbra  float32
	Intensity float32
}

// LightRig groups the scene lights.
type LightRig struct {
	Ambient     float32
	Environment float32
	Spot        SpotLight
}

// Profile holds every constant that depends on the viewport class.
// Phase boundaries are deliberately absent.
type Profile struct {
	Class Class

	SubjectScale   float32
	SubjectOffset  math.Vec3
	CameraDistance float32 // multiplier on the camera's z

	Shadows       bool
	ShadowMapSize int32
	Antialias     bool
	MaxDPR        float32

	Lights LightRig
}

// ProfileFor returns the profile for a class.
func ProfileFor(c Class) Profile {
	rig := LightRig{
		Ambient:     0.2,
		Environment: 0.5,
		Spot: SpotLight{
			Position:  math.Vec3{X: 10, Y: 10, Z: 10},
			Angle:     0.15,
			Penumbra:  1,
			Intensity: 1,
		},
	}

	if c == Mobile {
		// Brighter ambient compensates for the missing shadow pass.
		rig.Ambient = 0.35
		return Profile{
			Class:          Mobile,
			SubjectScale:   0.75,
			SubjectOffset:  math.Vec3{Y: 0.15},
			CameraDistance: 1.15,
			Shadows:        false,
			ShadowMapSize:  0,
			Antialias:      false,
			MaxDPR:         1.5,
			Lights:         rig,
		}
	}

	return Profile{
		Class:          Desktop,
		SubjectScale:   1,
		CameraDistance: 1,
		Shadows:        true,
		ShadowMapSize:  2048,
		Antialias:      true,
		MaxDPR:         2,
		Lights:         rig,
	}
}

// DevicePixelRatio clamps a native ratio to [1, MaxDPR].
func (p Profile) DevicePixelRatio(native float32) float32 {
	return math.Clamp(native, 1, p.MaxDPR)
}

// RenderSize returns the pixel size to render at for a drawable of dw×dh
// whose native pixel ratio is native. Ratios above the cap shrink the
// render; it never exceeds the drawable.
func (p Profile) RenderSize(dw, dh int, native float32) (int, int) {
	if dw <= 0 || dh <= 0 || !(native > 0) {
		return dw, dh
	}
	scale := p.DevicePixelRatio(native) / native
	if scale >= 1 {
		return dw, dh
	}
	w := int(float32(dw)*scale + 0.5)
	h := int(float32(dh)*scale + 0.5)
	return max(w, 1), max(h, 1)
}
