package timeline

import "github.com/morivert/scrollstage/pkg/math"

// Part identifies a separately animated piece of the subject.
type Part int

const (
	Body Part = iota
	Tip
	Lead
	Capsule
	Sprout
	PartCount
)

var partNames = [PartCount]string{
	Body:    "body",
	Tip:     "tip",
	Lead:    "lead",
	Capsule: "capsule",
	Sprout:  "sprout",
}

func (p Part) String() string {
	if p < 0 || p >= PartCount {
		return "unknown"
	}
	return partNames[p]
}

// Spins carries the time-accumulated angles, in radians, that the scroll
// position alone cannot determine. Hero is eased as a raw angle, so it must
// not jump by whole turns while the hero weight is strictly between 0 and 1.
// Showcase must move continuously modulo 4π.
type Spins struct {
	Hero     float32
	Showcase float32
	Sprout   float32
}

// Blends exposes every factor computed during evaluation.
type Blends struct {
	Phase [PhaseCount]float32

	Hero     float32 // weight of the idle hero spin, 1 - intro
	Showcase float32 // showcase envelope weight
	Used     float32 // body consumption
	TipFade  float32
	LeadFade float32
}

// CameraPose is where the camera sits and what it looks at.
type CameraPose struct {
	Position math.Vec3
	Target   math.Vec3
}

// PartState is a part's transform relative to the subject root.
type PartState struct {
	Transform  math.Transform
	Visibility float32
}

// Pose is the full scene state for one progress value.
type Pose struct {
	Progress float32
	Camera   CameraPose
	Subject  math.Transform
	Parts    [PartCount]PartState
	Blends   Blends
}

// PartWorld returns the world transform matrix of a part.
func (p *Pose) PartWorld(part Part) math.Mat4 {
	return p.Subject.Matrix().Mul(p.Parts[part].Transform.Matrix())
}
