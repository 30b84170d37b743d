// Package material describes the surfaces the renderer shades the subject
// with. Only the main body surface depends on the selected pattern.
package material

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/pkg/math"
)

// Surface is a physically based material description.
type Surface struct {
	Name  string
	Color math.Vec3 // sRGB components in [0, 1]
	Map   *image.RGBA

	Roughness float32
	Metalness float32

	Transparent  bool
	Opacity      float32
	Transmission float32
	Thickness    float32
}

func hex(s string) math.Vec3 {
	c := colorful.MustParseHex(s)
	return math.Vec3{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}
}

// MainFor returns the body surface parameters for a pattern, without a map.
// Glossy patterns get low roughness and the gold and prism patterns a
// metallic sheen.
func MainFor(sel texture.Selector) Surface {
	s := Surface{
		Name:      "main",
		Color:     math.Splat(1),
		Roughness: 0.8,
		Metalness: 0.05,
		Opacity:   1,
	}
	switch sel {
	case texture.Iridescent, texture.Aurora:
		s.Roughness = 0.2
	}
	switch sel {
	case texture.MoriGold, texture.Prism:
		s.Metalness = 0.3
	}
	return s
}

// Graphite is the lead point.
func Graphite() Surface {
	return Surface{
		Name:      "graphite",
		Color:     hex("#444444"),
		Roughness: 0.3,
		Metalness: 0.7,
		Opacity:   1,
	}
}

// Capsule is the clear seed capsule.
func Capsule() Surface {
	return Surface{
		Name:         "capsule",
		Color:        math.Splat(1),
		Roughness:    0.1,
		Transparent:  true,
		Opacity:      0.3,
		Transmission: 0.9,
		Thickness:    0.5,
	}
}

// Leaf is the sprout.
func Leaf() Surface {
	return Surface{
		Name:      "leaf",
		Color:     hex("#4ade80"),
		Roughness: 0.5,
		Opacity:   1,
	}
}

var seedColors = [...]string{"#4a3728", "#3d2b1f", "#5c4033"}

// SeedCount is the number of seed beads inside the capsule.
const SeedCount = len(seedColors)

// Seed returns the surface of the i-th seed bead.
func Seed(i int) Surface {
	return Surface{
		Name:      "seed",
		Color:     hex(seedColors[((i%SeedCount)+SeedCount)%SeedCount]),
		Roughness: 1,
		Opacity:   1,
	}
}
