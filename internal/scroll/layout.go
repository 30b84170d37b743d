package scroll

import gomath "math"

// Layout describes the overlay content stacked over the 3D view: a column
// of full-screen sections, each at least one viewport tall.
type Layout struct {
	Sections         int
	SectionMinHeight float64
}

// ContentHeight returns the rendered overlay height for a viewport height.
func (l Layout) ContentHeight(viewportHeight float64) float64 {
	if l.Sections <= 0 || viewportHeight <= 0 {
		return 0
	}
	return float64(l.Sections) * gomath.Max(viewportHeight, l.SectionMinHeight)
}
