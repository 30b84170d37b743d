// Package inspector is an ImGui tool window for scrubbing the timeline and
// previewing surface patterns outside the main stage.
package inspector

import (
	"image"

	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
)

// Row is one labelled blend factor.
type Row struct {
	Label string
	Value float32
}

// Model holds the inspector state. It owns no GPU resources.
type Model struct {
	engine *timeline.Engine
	cache  *texture.Cache

	Progress float32
	Mobile   bool
	Spins    timeline.Spins
	Selector texture.Selector

	pose  timeline.Pose
	dirty bool
}

// NewModel creates a model positioned at the start of the sequence.
func NewModel(engine *timeline.Engine, cache *texture.Cache) *Model {
	return &Model{engine: engine, cache: cache, dirty: true}
}

// Invalidate marks the pose for re-evaluation. Call it after editing any
// exported field.
func (m *Model) Invalidate() {
	m.dirty = true
}

// Class returns the device tier the pose is evaluated for.
func (m *Model) Class() viewport.Class {
	if m.Mobile {
		return viewport.Mobile
	}
	return viewport.Desktop
}

// Pose returns the pose for the current state, evaluating it only when
// something changed.
func (m *Model) Pose() *timeline.Pose {
	if m.dirty {
		m.pose = m.engine.Evaluate(m.Progress, viewport.ProfileFor(m.Class()), m.Spins)
		m.dirty = false
	}
	return &m.pose
}

// PhaseRows lists every phase blend in sequence order.
func (m *Model) PhaseRows() []Row {
	pose := m.Pose()
	phases := m.engine.Phases()
	rows := make([]Row, 0, len(phases))
	for i, ph := range phases {
		rows = append(rows, Row{Label: ph.Name, Value: pose.Blends.Phase[i]})
	}
	return rows
}

// DerivedRows lists the secondary factors and per-part visibility.
func (m *Model) DerivedRows() []Row {
	pose := m.Pose()
	b := pose.Blends
	rows := []Row{
		{Label: "hero", Value: b.Hero},
		{Label: "showcase", Value: b.Showcase},
		{Label: "used", Value: b.Used},
		{Label: "tip-fade", Value: b.TipFade},
		{Label: "lead-fade", Value: b.LeadFade},
	}
	for part := timeline.Part(0); part < timeline.PartCount; part++ {
		rows = append(rows, Row{Label: part.String() + " visibility", Value: pose.Parts[part].Visibility})
	}
	return rows
}

// Step moves the selector through the catalogue.
func (m *Model) Step(step int) {
	m.Selector = texture.Next(m.Selector, step)
}

// Bitmap returns the current pattern and its generation.
func (m *Model) Bitmap() (*image.RGBA, uint64) {
	img := m.cache.Get(m.Selector)
	return img, m.cache.Generation()
}
