// Package scroll converts measured overlay content into a scroll range and
// turns wheel input into the normalized progress the timeline consumes.
package scroll

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/logger"
)

// DefaultPages is assumed until the content has been measured.
const DefaultPages = 10

// PageCount returns how many viewport heights of scroll the content needs,
// max(1, H/V). It reports false for non-positive or NaN measurements.
func PageCount(contentHeight, viewportHeight float64) (float64, bool) {
	if !(contentHeight > 0) || !(viewportHeight > 0) {
		return 0, false
	}
	return gomath.Max(1, contentHeight/viewportHeight), true
}

// MaxOffset is the largest scroll offset in pixels for a page count: the
// last page ends exactly at the bottom of the viewport.
func MaxOffset(pages, viewportHeight float64) float64 {
	if pages <= 1 || viewportHeight <= 0 {
		return 0
	}
	return (pages - 1) * viewportHeight
}

// Extent holds the current page count and notifies subscribers on change.
type Extent struct {
	pages    float64
	measured bool

	listeners map[int]func(pages float64)
	nextID    int
	log       *zap.Logger
}

// NewExtent creates an extent that reports defaultPages until measured.
func NewExtent(defaultPages float64) *Extent {
	if defaultPages < 1 {
		defaultPages = DefaultPages
	}
	return &Extent{
		pages:     defaultPages,
		listeners: make(map[int]func(float64)),
		log:       logger.Named("scroll"),
	}
}

// Measure feeds a content and viewport height. Invalid measurements, such
// as a zero height mid-layout, are ignored and the previous value is kept.
func (e *Extent) Measure(contentHeight, viewportHeight float64) {
	pages, ok := PageCount(contentHeight, viewportHeight)
	if !ok {
		e.log.Debug("ignoring content measurement",
			zap.Float64("content", contentHeight),
			zap.Float64("viewport", viewportHeight),
		)
		return
	}

	first := !e.measured
	e.measured = true
	if !first && pages == e.pages {
		return
	}
	e.pages = pages
	e.log.Debug("page count updated", zap.Float64("pages", pages))
	for _, fn := range e.listeners {
		fn(pages)
	}
}

// Pages returns the current page count.
func (e *Extent) Pages() float64 {
	return e.pages
}

// Ready reports whether a real measurement has arrived.
func (e *Extent) Ready() bool {
	return e.measured
}

// Subscribe registers fn for page-count changes and returns its deregistration.
func (e *Extent) Subscribe(fn func(pages float64)) (unsubscribe func()) {
	id := e.nextID
	e.nextID++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

// Close drops every listener.
func (e *Extent) Close() {
	clear(e.listeners)
}
