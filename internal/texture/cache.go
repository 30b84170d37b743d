package texture

import (
	"image"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/logger"
)

// Cache memoizes the most recent bitmap. Selecting a different pattern
// replaces it and bumps the generation counter.
type Cache struct {
	rng *rand.Rand

	sel        Selector
	img        *image.RGBA
	generation uint64

	log *zap.Logger
}

// NewCache creates an empty cache. A zero seed draws one from the clock.
// The generator is seeded once here and never reseeded.
func NewCache(seed int64) *Cache {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Cache{rng: rand.New(rand.NewSource(seed)), log: logger.Named("texture")}
}

// Get returns the bitmap for sel, painting it if sel differs from the
// cached pattern. Unknown selectors are cached as Neutral.
func (c *Cache) Get(sel Selector) *image.RGBA {
	if sel < 0 || sel >= selectorCount {
		c.log.Warn("unknown selector, using neutral", zap.Int("selector", int(sel)))
		sel = Neutral
	}
	if c.img != nil && c.sel == sel {
		return c.img
	}
	c.img = Generate(sel, c.rng)
	c.sel = sel
	c.generation++
	c.log.Debug("pattern painted",
		zap.Stringer("selector", sel),
		zap.Uint64("generation", c.generation))
	return c.img
}

// Generation identifies the current bitmap. It changes every time a new
// bitmap is painted and is 0 before the first.
func (c *Cache) Generation() uint64 {
	return c.generation
}

// Selector returns the pattern currently cached.
func (c *Cache) Selector() Selector {
	return c.sel
}
