// Package texture paints the procedural surface patterns applied to the
// subject's body.
package texture

// Selector names a surface pattern. The zero value is Neutral, the flat
// fallback used for unknown names.
type Selector int

const (
	Neutral Selector = iota
	Cedar
	Etched
	Nebula
	Prism
	Vibrant
	Mori
	MoriRuby
	MoriAzure
	MoriGold
	Aurora
	Iridescent
	selectorCount
)

var selectorIDs = [selectorCount]string{
	Neutral:    "neutral",
	Cedar:      "cedar",
	Etched:     "etched",
	Nebula:     "nebula",
	Prism:      "prism",
	Vibrant:    "vibrant",
	Mori:       "mori",
	MoriRuby:   "mori-ruby",
	MoriAzure:  "mori-azure",
	MoriGold:   "mori-gold",
	Aurora:     "aurora",
	Iridescent: "iridescent",
}

// String returns the selector's identifier, e.g. "mori-gold".
func (s Selector) String() string {
	if s < 0 || s >= selectorCount {
		return selectorIDs[Neutral]
	}
	return selectorIDs[s]
}

// ParseSelector maps an identifier to a Selector. Unknown identifiers yield
// Neutral and false.
func ParseSelector(id string) (Selector, bool) {
	for i, name := range selectorIDs {
		if name == id {
			return Selector(i), true
		}
	}
	return Neutral, false
}

// Entry is a selectable pattern with its display name.
type Entry struct {
	Selector Selector
	Name     string
}

var catalogue = []Entry{
	{Mori, "Mori Green"},
	{MoriRuby, "Mori Ruby"},
	{MoriAzure, "Mori Azure"},
	{MoriGold, "Mori Gold"},
	{Aurora, "Aurora"},
	{Iridescent, "Iridis"},
	{Nebula, "Nebula"},
	{Prism, "Prism"},
	{Vibrant, "Vibrant"},
	{Cedar, "Cedar"},
	{Etched, "Etched"},
}

// Selectors returns the user-facing patterns in picker order. Neutral is
// not listed.
func Selectors() []Entry {
	out := make([]Entry, len(catalogue))
	copy(out, catalogue)
	return out
}

// Next returns the selector after s in picker order, wrapping around.
// A negative step walks backwards.
func Next(s Selector, step int) Selector {
	idx := -1
	for i, e := range catalogue {
		if e.Selector == s {
			idx = i
			break
		}
	}
	if idx < 0 {
		return catalogue[0].Selector
	}
	n := len(catalogue)
	return catalogue[((idx+step)%n+n)%n].Selector
}
