// Package timeline maps a normalized scroll progress value to a complete
// scene pose. Evaluation is a pure function of its inputs.
package timeline

import (
	"sort"

	"github.com/morivert/scrollstage/pkg/math"
)

// PhaseID indexes the named phases of the sequence.
type PhaseID int

const (
	Intro PhaseID = iota
	Float
	CloseUp
	Showcase
	Reorient
	Finale
	Reveal
	PhaseCount
)

// Phase is a named sub-interval of progress. Its blend factor eases from 0
// at Start to 1 at End.
type Phase struct {
	Name  string
	Start float32
	End   float32
}

// Blend returns the eased factor of p within the phase.
func (ph Phase) Blend(p float32) float32 {
	return math.Smoothstep(p, ph.Start, ph.End)
}

// Adjacent phases overlap slightly so every handoff is eased.
var defaultPhases = [PhaseCount]Phase{
	Intro:    {Name: "intro", Start: 0, End: 0.12},
	Float:    {Name: "float", Start: 0.10, End: 0.30},
	CloseUp:  {Name: "close-up", Start: 0.22, End: 0.40},
	Showcase: {Name: "showcase", Start: 0.40, End: 0.58},
	Reorient: {Name: "reorient", Start: 0.58, End: 0.80},
	Finale:   {Name: "finale", Start: 0.80, End: 0.97},
	Reveal:   {Name: "reveal", Start: 0.94, End: 1.0},
}

// Secondary envelopes layered on top of the phases.
var (
	showcaseIn  = Phase{Name: "showcase-in", Start: 0.46, End: 0.50}
	showcaseOut = Phase{Name: "showcase-out", Start: 0.54, End: 0.58}
	leadFade    = Phase{Name: "lead-fade", Start: 0.85, End: 0.88}
	tipFade     = Phase{Name: "tip-fade", Start: 0.85, End: 0.91}
	bodyUse     = Phase{Name: "body-use", Start: 0.85, End: 0.97}
)

// Phases returns the phase table in sequence order.
func Phases() [PhaseCount]Phase {
	return defaultPhases
}

// Envelopes returns the secondary envelopes: showcase in/out and the three
// consumption intervals.
func Envelopes() []Phase {
	return []Phase{showcaseIn, showcaseOut, leadFade, tipFade, bodyUse}
}

// Covered reports whether the union of the phases spans [0, 1] without gaps.
func Covered(phases []Phase) bool {
	if len(phases) == 0 {
		return false
	}
	sorted := make([]Phase, len(phases))
	copy(sorted, phases)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	if sorted[0].Start > 0 {
		return false
	}
	reach := sorted[0].End
	for _, ph := range sorted[1:] {
		if ph.Start > reach {
			return false
		}
		if ph.End > reach {
			reach = ph.End
		}
	}
	return reach >= 1
}
