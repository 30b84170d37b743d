package timeline

import (
	"github.com/morivert/scrollstage/internal/viewport"
	"github.com/morivert/scrollstage/pkg/math"
)

// Local anchor points of the subject, in subject space.
var (
	capsuleAnchor = math.Vec3{Y: 1.35}
	tipAnchor     = math.Vec3{Y: -1.45}
	leadAnchor    = math.Vec3{Y: -1.7}
)

const (
	restHeight   = 0.5  // subject height while idling
	finaleHeight = -0.2 // subject height once planted
	restTilt     = 0.15 * math.Pi
	scrollTurns  = 2 // full turns of the scroll-driven regime over [0, 1]
	stubScale    = 0.15
	stubLift     = 1.05
	sproutScale  = 0.22
)

// Engine evaluates poses against a phase table.
type Engine struct {
	phases [PhaseCount]Phase
}

// NewEngine returns an engine using the default phase table.
func NewEngine() *Engine {
	return &Engine{phases: defaultPhases}
}

// Phases returns the engine's phase table.
func (e *Engine) Phases() [PhaseCount]Phase {
	return e.phases
}

// Evaluate computes the pose for a progress value. Progress outside [0, 1]
// (or NaN) is clamped. The result depends only on the arguments.
func (e *Engine) Evaluate(progress float32, profile viewport.Profile, spins Spins) Pose {
	p := math.Clamp01(progress)

	var pose Pose
	pose.Progress = p

	b := &pose.Blends
	for i := range e.phases {
		b.Phase[i] = e.phases[i].Blend(p)
	}
	s1 := b.Phase[Intro]
	s2 := b.Phase[Float]
	s3 := b.Phase[CloseUp]
	s4 := b.Phase[Showcase]
	s5 := b.Phase[Reorient]
	sF := b.Phase[Finale]
	sR := b.Phase[Reveal]

	b.Hero = 1 - s1
	b.Showcase = showcaseIn.Blend(p) * (1 - showcaseOut.Blend(p))
	b.Used = bodyUse.Blend(p)
	b.TipFade = tipFade.Blend(p)
	b.LeadFade = leadFade.Blend(p)

	pose.Subject = subjectTransform(p, profile, spins, b)
	pose.Camera = cameraPose(profile, pose.Subject, s2, s3, s4, s5, sF)

	pose.Parts[Body] = PartState{
		Transform: math.Transform{
			Position: math.Vec3{Y: math.Lerp(0, stubLift, b.Used)},
			Rotation: math.QuatIdentity(),
			Scale:    math.Vec3{X: 1, Y: math.Lerp(1, stubScale, b.Used), Z: 1},
		},
		Visibility: 1,
	}
	pose.Parts[Tip] = fadingPart(tipAnchor, math.QuatIdentity(), b.TipFade)
	pose.Parts[Lead] = fadingPart(leadAnchor, math.QuatFromAxisAngle(math.Vec3{X: 1}, math.Pi), b.LeadFade)
	pose.Parts[Capsule] = PartState{
		Transform: math.Transform{
			Position: capsuleAnchor,
			Rotation: math.QuatIdentity(),
			Scale:    math.Splat(1),
		},
		Visibility: 1,
	}
	// The sprout is counter-flipped against the reorientation so it grows
	// upward from the planted capsule.
	pose.Parts[Sprout] = PartState{
		Transform: math.Transform{
			Position: capsuleAnchor,
			Rotation: math.QuatFromEuler(math.Pi, spins.Sprout, 0),
			Scale:    math.Splat(sR * sproutScale),
		},
		Visibility: sR,
	}

	return pose
}

func fadingPart(anchor math.Vec3, rot math.Quat, fade float32) PartState {
	k := 1 - fade
	return PartState{
		Transform: math.Transform{
			Position: anchor,
			Rotation: rot,
			Scale:    math.Splat(k),
		},
		Visibility: k,
	}
}

func subjectTransform(p float32, profile viewport.Profile, spins Spins, b *Blends) math.Transform {
	s1 := b.Phase[Intro]

	y := math.Lerp(restHeight, 0, s1)
	y = math.Lerp(y, finaleHeight, b.Phase[Finale])

	// Hero and scroll regimes turn about the same axis under the same tilt,
	// so the arc between them is an ease of the yaw. Taking it on the raw
	// angles keeps the blend continuous in both progress and spin.
	tilt := math.Lerp(restTilt, 0, s1)
	yaw := math.Lerp(2*scrollTurns*math.Pi*p, spins.Hero, b.Hero)
	base := math.QuatFromEuler(0, yaw, tilt)

	// The half turn about X is composed directly rather than slerped:
	// the endpoints of a π rotation are equidistant both ways round.
	flip := math.QuatFromAxisAngle(math.Vec3{X: 1}, math.Pi*b.Phase[Reorient])
	primary := flip.Mul(base)

	// Inside the showcase envelope primary is a pure yaw, which is never
	// antipodal to the showcase pose, so the signed arc is always defined.
	showcase := math.QuatFromEuler(0, spins.Showcase, math.Pi/2)
	rot := primary.SlerpSigned(showcase, b.Showcase)

	return math.Transform{
		Position: math.Vec3{Y: y}.Add(profile.SubjectOffset),
		Rotation: rot,
		Scale:    math.Splat(profile.SubjectScale),
	}
}

func cameraPose(profile viewport.Profile, subject math.Transform, s2, s3, s4, s5, sF float32) CameraPose {
	x := math.Lerp(0, -1, s2)
	y := math.Lerp(0, 0.2, s2)
	z := math.Lerp(5, 4, s2)

	x = math.Lerp(x, 0.6, s3)
	y = math.Lerp(y, 1.4, s3)
	z = math.Lerp(z, 2.2, s3)

	x = math.Lerp(x, -0.8, s4)
	y = math.Lerp(y, 0, s4)
	z = math.Lerp(z, 3.5, s4)

	x = math.Lerp(x, 0, s5)
	y = math.Lerp(y, -0.8, s5)
	z = math.Lerp(z, 4.5, s5)

	x = math.Lerp(x, 0, sF)
	y = math.Lerp(y, -1.1, sF)
	z = math.Lerp(z, 2.6, sF)

	pivot := profile.SubjectOffset
	capsule := subject.Apply(capsuleAnchor)
	target := pivot.Lerp(capsule, s3)
	target = target.Lerp(pivot, s4)
	target = target.Lerp(capsule, sF)

	return CameraPose{
		Position: math.Vec3{X: x, Y: y, Z: z * profile.CameraDistance},
		Target:   target,
	}
}
