// Package scene holds the mutable 3D state the renderer draws: one camera
// and one articulated subject. The driver is its only writer.
package scene

import (
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
	"github.com/morivert/scrollstage/pkg/math"
)

// Node is a named transform with a visibility factor in [0, 1].
type Node struct {
	Name       string
	Local      math.Transform
	Visibility float32
}

// Visible reports whether the node contributes to the frame.
func (n *Node) Visible() bool {
	return n.Visibility > 0
}

// Subject is the animated object: a root node and its parts.
type Subject struct {
	Root  Node
	Parts [timeline.PartCount]Node
}

// PartWorld returns the world matrix of a part.
func (s *Subject) PartWorld(part timeline.Part) math.Mat4 {
	return s.Root.Local.Matrix().Mul(s.Parts[part].Local.Matrix())
}

// Scene aggregates the camera and the subject.
type Scene struct {
	Camera  Camera
	Subject Subject
}

// New returns a scene in its resting state.
func New() *Scene {
	s := &Scene{}
	s.Reset()
	return s
}

// Reset restores the resting pose: the start of the sequence on a desktop
// viewport with no accumulated spin.
func (s *Scene) Reset() {
	s.Camera = NewCamera()
	s.Subject.Root.Name = "subject"
	for i := range s.Subject.Parts {
		s.Subject.Parts[i].Name = timeline.Part(i).String()
	}
	rest := timeline.NewEngine().Evaluate(0, viewport.ProfileFor(viewport.Desktop), timeline.Spins{})
	s.Apply(&rest)
}

// Apply copies a pose into the scene. Lens settings are left untouched.
func (s *Scene) Apply(pose *timeline.Pose) {
	s.Camera.Position = pose.Camera.Position
	s.Camera.Target = pose.Camera.Target

	s.Subject.Root.Local = pose.Subject
	s.Subject.Root.Visibility = 1
	for i := range pose.Parts {
		s.Subject.Parts[i].Local = pose.Parts[i].Transform
		s.Subject.Parts[i].Visibility = pose.Parts[i].Visibility
	}
}
