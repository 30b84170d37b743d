package scroll

import gomath "math"

// Controller owns the scroll offset. Wheel input moves a target offset and
// the visible offset follows it with exponential damping.
type Controller struct {
	extent         *Extent
	viewportHeight float64
	damping        float64 // seconds; 0 disables smoothing

	target  float64
	current float64

	unsubscribe func()
}

// NewController attaches a controller to an extent.
func NewController(extent *Extent, dampingSeconds float64) *Controller {
	c := &Controller{
		extent:  extent,
		damping: gomath.Max(0, dampingSeconds),
	}
	c.unsubscribe = extent.Subscribe(func(float64) { c.clamp() })
	return c
}

// SetViewportHeight updates the visible height in pixels.
func (c *Controller) SetViewportHeight(h float64) {
	if h <= 0 {
		return
	}
	c.viewportHeight = h
	c.clamp()
}

// ScrollBy moves the target offset by delta pixels (positive scrolls down).
func (c *Controller) ScrollBy(delta float64) {
	c.target += delta
	c.clamp()
}

// ScrollTo jumps the target to an offset in pixels.
func (c *Controller) ScrollTo(offset float64) {
	c.target = offset
	c.clamp()
}

// Update advances the damped offset by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.damping == 0 || dt <= 0 {
		if c.damping == 0 {
			c.current = c.target
		}
		return
	}
	c.current += (c.target - c.current) * (1 - gomath.Exp(-dt/c.damping))
	if gomath.Abs(c.target-c.current) < 0.01 {
		c.current = c.target
	}
}

// Offset returns the current damped offset in pixels.
func (c *Controller) Offset() float64 {
	return c.current
}

// Progress returns the normalized scroll position in [0, 1].
func (c *Controller) Progress() float32 {
	limit := c.maxOffset()
	if limit <= 0 {
		return 0
	}
	return float32(gomath.Min(1, gomath.Max(0, c.current/limit)))
}

// Ready reports whether the extent and viewport have been measured.
func (c *Controller) Ready() bool {
	return c.extent.Ready() && c.viewportHeight > 0
}

// Close detaches from the extent.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) maxOffset() float64 {
	return MaxOffset(c.extent.Pages(), c.viewportHeight)
}

func (c *Controller) clamp() {
	limit := c.maxOffset()
	c.target = gomath.Min(limit, gomath.Max(0, c.target))
	c.current = gomath.Min(limit, gomath.Max(0, c.current))
}
