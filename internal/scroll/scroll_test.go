package scroll

import (
	gomath "math"
	"testing"
)

func TestPageCount(t *testing.T) {
	tests := []struct {
		name      string
		content   float64
		viewport  float64
		wantPages float64
		wantOK    bool
	}{
		{"nine screens", 9 * 800, 800, 9, true},
		{"fractional", 2000, 800, 2.5, true},
		{"shorter than viewport", 300, 800, 1, true},
		{"zero content", 0, 800, 0, false},
		{"negative content", -10, 800, 0, false},
		{"zero viewport", 1000, 0, 0, false},
		{"nan content", gomath.NaN(), 800, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, ok := PageCount(tt.content, tt.viewport)
			if ok != tt.wantOK || pages != tt.wantPages {
				t.Errorf("PageCount(%v, %v) = %v, %v; want %v, %v",
					tt.content, tt.viewport, pages, ok, tt.wantPages, tt.wantOK)
			}
		})
	}
}

func TestMaxOffsetAlignsContentEnd(t *testing.T) {
	heights := []struct{ content, viewport float64 }{
		{7200, 800},
		{5123, 731},
		{10000, 1080},
		{812, 811},
	}
	for _, h := range heights {
		pages, ok := PageCount(h.content, h.viewport)
		if !ok {
			t.Fatalf("PageCount(%v, %v) failed", h.content, h.viewport)
		}
		got := MaxOffset(pages, h.viewport)
		want := h.content - h.viewport
		if gomath.Abs(got-want) > 1 {
			t.Errorf("content %v viewport %v: max offset %v, want %v within 1px", h.content, h.viewport, got, want)
		}
	}
}

func TestExtentDefaultsAndRetainsOnBadMeasure(t *testing.T) {
	e := NewExtent(0)
	if e.Pages() != DefaultPages {
		t.Errorf("default pages = %v, want %v", e.Pages(), DefaultPages)
	}
	if e.Ready() {
		t.Error("extent should not be ready before measuring")
	}

	e.Measure(4000, 800)
	if e.Pages() != 5 || !e.Ready() {
		t.Fatalf("after measure: pages %v ready %v", e.Pages(), e.Ready())
	}

	e.Measure(0, 800)
	if e.Pages() != 5 {
		t.Errorf("zero height measurement changed pages to %v", e.Pages())
	}
}

func TestExtentNotifications(t *testing.T) {
	e := NewExtent(10)
	var got []float64
	unsubscribe := e.Subscribe(func(p float64) { got = append(got, p) })

	e.Measure(8000, 800) // first measurement always notifies, even when equal
	e.Measure(8000, 800) // unchanged
	e.Measure(4000, 800)
	unsubscribe()
	e.Measure(1600, 800)

	if len(got) != 2 || got[0] != 10 || got[1] != 5 {
		t.Errorf("notifications = %v, want [10 5]", got)
	}
}

func TestLayoutContentHeight(t *testing.T) {
	l := Layout{Sections: 9, SectionMinHeight: 640}
	if got := l.ContentHeight(800); got != 7200 {
		t.Errorf("ContentHeight(800) = %v, want 7200", got)
	}
	if got := l.ContentHeight(500); got != 9*640 {
		t.Errorf("ContentHeight(500) = %v, want %v", got, 9*640)
	}
	if got := l.ContentHeight(0); got != 0 {
		t.Errorf("ContentHeight(0) = %v, want 0", got)
	}
}

func TestControllerProgressWithoutDamping(t *testing.T) {
	e := NewExtent(10)
	c := NewController(e, 0)
	defer c.Close()

	if c.Ready() {
		t.Error("controller should not be ready before measurement")
	}

	e.Measure(5*800, 800)
	c.SetViewportHeight(800)
	if !c.Ready() {
		t.Fatal("controller should be ready")
	}

	c.ScrollBy(1600)
	c.Update(1.0 / 60)
	if got := c.Progress(); gomath.Abs(float64(got)-0.5) > 1e-6 {
		t.Errorf("progress = %v, want 0.5", got)
	}

	c.ScrollBy(1e6)
	c.Update(1.0 / 60)
	if got := c.Progress(); got != 1 {
		t.Errorf("progress past end = %v, want 1", got)
	}

	c.ScrollBy(-1e7)
	c.Update(1.0 / 60)
	if got := c.Progress(); got != 0 {
		t.Errorf("progress before start = %v, want 0", got)
	}
}

func TestControllerDampingConverges(t *testing.T) {
	e := NewExtent(10)
	e.Measure(3*1000, 1000)
	c := NewController(e, 0.2)
	c.SetViewportHeight(1000)

	c.ScrollTo(2000)
	c.Update(1.0 / 60)
	first := c.Progress()
	if first <= 0 || first >= 1 {
		t.Fatalf("damped progress after one frame = %v, want strictly between 0 and 1", first)
	}

	for i := 0; i < 600; i++ {
		c.Update(1.0 / 60)
	}
	if got := c.Progress(); got != 1 {
		t.Errorf("damped progress after 10s = %v, want 1", got)
	}
}

func TestControllerReclampsWhenContentShrinks(t *testing.T) {
	e := NewExtent(10)
	e.Measure(10*800, 800)
	c := NewController(e, 0)
	c.SetViewportHeight(800)

	c.ScrollTo(MaxOffset(10, 800))
	c.Update(0.016)

	e.Measure(4*800, 800)
	if c.Offset() != MaxOffset(4, 800) {
		t.Errorf("offset after shrink = %v, want %v", c.Offset(), MaxOffset(4, 800))
	}
	if c.Progress() != 1 {
		t.Errorf("progress after shrink = %v, want 1", c.Progress())
	}
}
