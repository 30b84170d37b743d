package material

import "github.com/morivert/scrollstage/internal/texture"

// Bank hands out surfaces. The main surface is rebuilt only when the
// pattern or its bitmap changes.
type Bank struct {
	textures *texture.Cache

	main     Surface
	mainSel  texture.Selector
	mainGen  uint64
	built    bool
	rebuilds int

	graphite Surface
	capsule  Surface
	leaf     Surface
	seeds    [SeedCount]Surface
}

// NewBank creates a bank painting its maps through textures.
func NewBank(textures *texture.Cache) *Bank {
	b := &Bank{
		textures: textures,
		graphite: Graphite(),
		capsule:  Capsule(),
		leaf:     Leaf(),
	}
	for i := range b.seeds {
		b.seeds[i] = Seed(i)
	}
	return b
}

// Main returns the body surface for sel with its bitmap attached.
func (b *Bank) Main(sel texture.Selector) *Surface {
	img := b.textures.Get(sel)
	gen := b.textures.Generation()
	if b.built && b.mainSel == sel && b.mainGen == gen {
		return &b.main
	}
	b.main = MainFor(sel)
	b.main.Map = img
	b.mainSel = sel
	b.mainGen = gen
	b.built = true
	b.rebuilds++
	return &b.main
}

// Graphite returns the lead surface.
func (b *Bank) Graphite() *Surface { return &b.graphite }

// Capsule returns the capsule surface.
func (b *Bank) Capsule() *Surface { return &b.capsule }

// Leaf returns the sprout surface.
func (b *Bank) Leaf() *Surface { return &b.leaf }

// Seed returns the i-th seed bead surface.
func (b *Bank) Seed(i int) *Surface { return &b.seeds[((i%SeedCount)+SeedCount)%SeedCount] }
