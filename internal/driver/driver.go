// Package driver advances the scene once per rendered frame: it reads the
// scroll progress, accumulates the time-based spins, evaluates the pose and
// writes it into the scene.
package driver

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/scene"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
)

// ProgressSource supplies normalized scroll progress.
type ProgressSource interface {
	Progress() float32
	Ready() bool
}

// ProfileSource supplies the active viewport profile.
type ProfileSource interface {
	Profile() viewport.Profile
}

// Rates are spin speeds in radians per second.
type Rates struct {
	Hero     float64
	Showcase float64
	Sprout   float64
}

// Driver owns the spin accumulators and the per-frame pose buffer.
type Driver struct {
	engine   *timeline.Engine
	progress ProgressSource
	profiles ProfileSource
	scene    *scene.Scene
	rates    Rates

	hero, showcase, sprout float64

	pose    timeline.Pose
	running bool
	primed  bool // a ready frame has been evaluated

	log *zap.Logger
}

// New creates a stopped driver.
func New(engine *timeline.Engine, progress ProgressSource, profiles ProfileSource, sc *scene.Scene, rates Rates) *Driver {
	return &Driver{
		engine:   engine,
		progress: progress,
		profiles: profiles,
		scene:    sc,
		rates:    rates,
		log:      logger.Named("driver"),
	}
}

// Start begins advancing on Frame.
func (d *Driver) Start() {
	d.running = true
	d.log.Debug("driver started")
}

// Stop freezes the scene at its current pose.
func (d *Driver) Stop() {
	d.running = false
	d.log.Debug("driver stopped")
}

// Running reports whether Frame has any effect.
func (d *Driver) Running() bool { return d.running }

// Spins returns the current accumulated angles. Showcase and sprout are
// kept in [0, 4π), a full period of their quaternions. Hero is only
// reduced to [0, 2π) while its blend weight is 0 or 1, where a whole turn
// cannot be seen.
func (d *Driver) Spins() timeline.Spins {
	return timeline.Spins{
		Hero:     float32(d.hero),
		Showcase: float32(d.showcase),
		Sprout:   float32(d.sprout),
	}
}

// Pose returns the last evaluated pose.
func (d *Driver) Pose() *timeline.Pose {
	return &d.pose
}

// Frame advances by dt seconds. It does nothing while stopped or until the
// progress source is ready, and it never allocates.
func (d *Driver) Frame(dt float64) {
	if !d.running || !d.progress.Ready() {
		return
	}
	if dt < 0 || dt != dt {
		dt = 0
	}

	d.hero += d.rates.Hero * dt
	if w := d.pose.Blends.Hero; w == 0 || w == 1 {
		d.hero = wrap(d.hero, twoPi)
	}
	d.showcase = wrap(d.showcase+d.rates.Showcase*dt, fourPi)
	// The sprout only turns once it has started to appear.
	if d.pose.Blends.Phase[timeline.Reveal] > 0 {
		d.sprout = wrap(d.sprout+d.rates.Sprout*dt, fourPi)
	}

	d.pose = d.engine.Evaluate(d.progress.Progress(), d.profiles.Profile(), d.Spins())
	d.scene.Apply(&d.pose)

	if !d.primed {
		d.primed = true
		d.log.Info("first frame posed", zap.Float32("progress", d.pose.Progress))
	}
}

const (
	twoPi  = 2 * gomath.Pi
	fourPi = 4 * gomath.Pi
)

// wrap reduces a to [0, period).
func wrap(a, period float64) float64 {
	a = gomath.Mod(a, period)
	if a < 0 {
		a += period
	}
	return a
}
