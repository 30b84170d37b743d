// Package stage implements the interactive viewer loop: wheel input drives
// the scroll controller, the driver poses the scene, the renderer draws it.
package stage

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/config"
	"github.com/morivert/scrollstage/internal/driver"
	"github.com/morivert/scrollstage/internal/engine/debug"
	"github.com/morivert/scrollstage/internal/engine/input"
	"github.com/morivert/scrollstage/internal/engine/renderer"
	"github.com/morivert/scrollstage/internal/engine/window"
	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/material"
	"github.com/morivert/scrollstage/internal/scene"
	"github.com/morivert/scrollstage/internal/scroll"
	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
)

const title = "Scrollstage"

// msaaSamples is used when the profile asks for antialiasing.
const msaaSamples = 4

// Stage is the viewer instance.
type Stage struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	layer    *viewport.Layer
	extent   *scroll.Extent
	scroller *scroll.Controller
	layout   scroll.Layout

	scene    *scene.Scene
	driver   *driver.Driver
	textures *texture.Cache
	bank     *material.Bank
	selector texture.Selector
	shots    *debug.Capture

	unsubscribe []func()
}

// New creates the window, GL resources and the scene pipeline.
func New(cfg *config.Config) (*Stage, error) {
	s := &Stage{
		cfg: cfg,
		log: logger.Named("stage"),
		layout: scroll.Layout{
			Sections:         cfg.Scroll.Sections,
			SectionMinHeight: cfg.Scroll.SectionMinHeightPx,
		},
		shots: debug.NewCapture("screenshots", "stage"),
	}

	s.layer = viewport.NewLayer(cfg.Viewport.BreakpointPx)
	if c, ok := viewport.ParseClass(cfg.Viewport.ForceClass); ok && cfg.Viewport.ForceClass != "" {
		s.layer.ForceClass(c)
	}
	s.layer.Resize(cfg.Window.Width)
	profile := s.layer.Profile()

	s.log.Info("initializing stage",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Stringer("class", profile.Class),
	)

	samples := 0
	if profile.Antialias {
		samples = msaaSamples
	}

	var err error
	s.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    samples,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := s.window.DrawableSize()
	s.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		s.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer.ApplyProfile(profile)

	s.input = input.New()

	s.extent = scroll.NewExtent(cfg.Scroll.DefaultPages)
	s.scroller = scroll.NewController(s.extent, cfg.Scroll.DampingSeconds)

	s.scene = scene.New()
	s.driver = driver.New(timeline.NewEngine(), s.scroller, s.layer, s.scene, driver.Rates{
		Hero:     cfg.Animation.HeroSpinRate,
		Showcase: cfg.Animation.ShowcaseSpinRate,
		Sprout:   cfg.Animation.SproutSpinRate,
	})

	s.textures = texture.NewCache(cfg.Animation.TextureSeed)
	s.bank = material.NewBank(s.textures)
	sel, ok := texture.ParseSelector(cfg.Animation.Texture)
	if !ok {
		s.log.Warn("unknown texture, using neutral", zap.String("texture", cfg.Animation.Texture))
	}
	s.selector = sel

	s.unsubscribe = append(s.unsubscribe,
		s.layer.Subscribe(s.renderer.ApplyProfile),
		s.extent.Subscribe(func(pages float64) {
			s.log.Debug("scroll extent changed", zap.Float64("pages", pages))
		}),
	)

	s.measure()
	s.log.Info("stage initialized")
	return s, nil
}

// measure feeds the current window size to the viewport and scroll layers.
func (s *Stage) measure() {
	w, h := s.window.Size()
	s.layer.Resize(w)

	vh := float64(h)
	s.scroller.SetViewportHeight(vh)
	s.extent.Measure(s.layout.ContentHeight(vh), vh)

	dw, dh := s.window.DrawableSize()
	s.renderer.Resize(dw, dh)

	p := s.layer.Profile()
	native := s.window.PixelRatio()
	rw, rh := p.RenderSize(dw, dh, native)
	s.renderer.SetRenderSize(rw, rh)
	s.log.Debug("measured viewport",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Float32("dpr", p.DevicePixelRatio(native)),
		zap.Int("render_width", rw),
		zap.Int("render_height", rh),
	)
}

// Run starts the main loop.
func (s *Stage) Run() error {
	s.running = true
	s.driver.Start()

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var minFrame time.Duration
	if s.cfg.Window.FPSLimit > 0 {
		minFrame = time.Second / time.Duration(s.cfg.Window.FPSLimit)
	}

	s.log.Info("starting stage loop", zap.Stringer("texture", s.selector))

	for s.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if s.input.Update() {
			s.running = false
			break
		}
		s.handleEvents()

		s.scroller.Update(dt)
		s.driver.Frame(dt)

		s.renderer.Draw(s.scene, s.bank, s.selector, s.layer.Profile())
		s.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			s.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("progress", s.scroller.Progress()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if minFrame > 0 {
			if spent := time.Since(now); spent < minFrame {
				time.Sleep(minFrame - spent)
			}
		}
	}

	return nil
}

func (s *Stage) handleEvents() {
	_, h := s.window.Size()
	page := float64(h)

	for _, event := range s.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			s.measure()

		case input.EventWheel:
			// Wheel away from the user scrolls back toward the start.
			s.scroller.ScrollBy(-float64(event.WheelY) * s.cfg.Scroll.WheelStepPx)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				s.running = false
			case sdl.SCANCODE_T:
				step := 1
				if event.Shift {
					step = -1
				}
				s.selectTexture(texture.Next(s.selector, step))
			case sdl.SCANCODE_SPACE:
				if s.driver.Running() {
					s.driver.Stop()
				} else {
					s.driver.Start()
				}
				s.log.Info("animation toggled", zap.Bool("running", s.driver.Running()))
			case sdl.SCANCODE_DOWN:
				s.scroller.ScrollBy(s.cfg.Scroll.WheelStepPx)
			case sdl.SCANCODE_UP:
				s.scroller.ScrollBy(-s.cfg.Scroll.WheelStepPx)
			case sdl.SCANCODE_PAGEDOWN:
				s.scroller.ScrollBy(page)
			case sdl.SCANCODE_PAGEUP:
				s.scroller.ScrollBy(-page)
			case sdl.SCANCODE_HOME:
				s.scroller.ScrollTo(0)
			case sdl.SCANCODE_END:
				s.scroller.ScrollTo(scroll.MaxOffset(s.extent.Pages(), page))
			case sdl.SCANCODE_F12:
				s.screenshot()
			}
		}
	}
}

func (s *Stage) selectTexture(sel texture.Selector) {
	s.selector = sel
	s.window.SetTitle(title + " - " + sel.String())
	s.log.Info("texture selected", zap.Stringer("texture", sel))
}

func (s *Stage) screenshot() {
	pixels, w, h := s.renderer.ReadPixels()
	path, err := s.shots.Frame(pixels, w, h)
	if err != nil {
		s.log.Error("screenshot failed", zap.Error(err))
		return
	}
	s.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases every resource.
func (s *Stage) Close() {
	s.log.Info("closing stage")

	for _, fn := range s.unsubscribe {
		fn()
	}
	if s.scroller != nil {
		s.scroller.Close()
	}
	if s.extent != nil {
		s.extent.Close()
	}
	if s.layer != nil {
		s.layer.Close()
	}
	if s.renderer != nil {
		s.renderer.Close()
	}
	if s.window != nil {
		s.window.Close()
	}
}
