package viewport

import (
	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/logger"
)

// Listener is notified with the new profile when the class changes.
type Listener func(Profile)

// Layer tracks the current viewport class and notifies listeners when a
// resize crosses the breakpoint. Single-threaded use only.
type Layer struct {
	breakpoint int
	forced     bool
	profile    Profile
	width      int

	listeners map[int]Listener
	nextID    int
	log       *zap.Logger
}

// NewLayer creates a layer that assumes Desktop until the first Resize.
func NewLayer(breakpoint int) *Layer {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Layer{
		breakpoint: breakpoint,
		profile:    ProfileFor(Desktop),
		listeners:  make(map[int]Listener),
		log:        logger.Named("viewport"),
	}
}

// ForceClass pins the class regardless of width.
func (l *Layer) ForceClass(c Class) {
	l.forced = true
	l.apply(c)
}

// Resize feeds a new viewport width.
func (l *Layer) Resize(width int) {
	l.width = width
	if l.forced {
		return
	}
	l.apply(Classify(width, l.breakpoint))
}

func (l *Layer) apply(c Class) {
	if c == l.profile.Class {
		return
	}
	l.profile = ProfileFor(c)
	l.log.Info("viewport class changed",
		zap.Stringer("class", c),
		zap.Int("width", l.width),
		zap.Int("breakpoint", l.breakpoint),
	)
	for _, fn := range l.listeners {
		fn(l.profile)
	}
}

// Profile returns the current profile.
func (l *Layer) Profile() Profile {
	return l.profile
}

// Class returns the current class.
func (l *Layer) Class() Class {
	return l.profile.Class
}

// Subscribe registers fn for class changes and returns its deregistration.
func (l *Layer) Subscribe(fn Listener) (unsubscribe func()) {
	id := l.nextID
	l.nextID++
	l.listeners[id] = fn
	return func() { delete(l.listeners, id) }
}

// Close drops every listener.
func (l *Layer) Close() {
	clear(l.listeners)
}
