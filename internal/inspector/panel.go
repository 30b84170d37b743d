package inspector

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/texture"
)

const (
	controlsWidth = 340
	previewScale  = 0.5
)

// Panel draws the inspector windows for a Model.
type Panel struct {
	model *Model
	log   *zap.Logger

	preview    *backend.Texture
	previewGen uint64
}

// NewPanel creates a panel over m.
func NewPanel(m *Model) *Panel {
	return &Panel{model: m, log: logger.Named("inspector")}
}

// Render draws one frame. Pass it to Backend.Run.
func (p *Panel) Render() {
	vp := imgui.MainViewport()
	pos := vp.WorkPos()
	size := vp.WorkSize()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsWidth, size.Y))
	if imgui.BeginV("Timeline", nil, flags) {
		p.renderControls()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+controlsWidth, pos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(size.X-controlsWidth, size.Y))
	if imgui.BeginV("Pattern", nil, flags|imgui.WindowFlagsHorizontalScrollbar) {
		p.renderPattern()
	}
	imgui.End()
}

func (p *Panel) renderControls() {
	m := p.model
	changed := false

	imgui.Text("Progress")
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##Progress", &m.Progress, 0, 1, "%.3f", imgui.SliderFlagsNone) {
		changed = true
	}
	if imgui.Checkbox("Mobile profile", &m.Mobile) {
		changed = true
	}
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##Hero", &m.Spins.Hero, 0, 6.2832, "hero %.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	imgui.SetNextItemWidth(-1)
	if imgui.SliderFloatV("##Showcase", &m.Spins.Showcase, 0, 6.2832, "showcase %.2f", imgui.SliderFlagsNone) {
		changed = true
	}
	if changed {
		m.Invalidate()
	}

	imgui.Separator()
	imgui.Text("Phases")
	for _, row := range m.PhaseRows() {
		imgui.ProgressBarV(row.Value, imgui.NewVec2(-1, 0), fmt.Sprintf("%s %.2f", row.Label, row.Value))
	}

	imgui.Separator()
	imgui.Text("Factors")
	for _, row := range m.DerivedRows() {
		imgui.Text(fmt.Sprintf("%-20s %.3f", row.Label, row.Value))
	}

	imgui.Separator()
	pose := m.Pose()
	c := pose.Camera
	imgui.Text(fmt.Sprintf("camera  %.2f %.2f %.2f", c.Position.X, c.Position.Y, c.Position.Z))
	imgui.Text(fmt.Sprintf("target  %.2f %.2f %.2f", c.Target.X, c.Target.Y, c.Target.Z))
	s := pose.Subject.Position
	imgui.Text(fmt.Sprintf("subject %.2f %.2f %.2f", s.X, s.Y, s.Z))
}

func (p *Panel) renderPattern() {
	m := p.model

	if imgui.ButtonV("<", imgui.NewVec2(32, 0)) {
		m.Step(-1)
	}
	imgui.SameLine()
	if imgui.ButtonV(">", imgui.NewVec2(32, 0)) {
		m.Step(1)
	}
	imgui.SameLine()
	imgui.Text(m.Selector.String())

	for _, e := range texture.Selectors() {
		if imgui.SelectableBoolV(e.Name, e.Selector == m.Selector, 0, imgui.NewVec2(0, 0)) {
			m.Selector = e.Selector
		}
	}
	imgui.Separator()

	img, gen := m.Bitmap()
	if p.preview == nil || gen != p.previewGen {
		if p.preview != nil {
			p.preview.Release()
		}
		p.preview = backend.NewTextureFromRgba(img)
		p.previewGen = gen
		p.log.Debug("pattern uploaded",
			zap.String("selector", m.Selector.String()),
			zap.Uint64("generation", gen))
	}

	b := img.Bounds()
	imgui.ImageWithBgV(
		p.preview.ID,
		imgui.NewVec2(float32(b.Dx())*previewScale, float32(b.Dy())*previewScale),
		imgui.NewVec2(0, 0),
		imgui.NewVec2(1, 1),
		imgui.NewVec4(0.2, 0.2, 0.2, 1.0),
		imgui.NewVec4(1, 1, 1, 1),
	)
}

// Close releases the preview texture.
func (p *Panel) Close() {
	if p.preview != nil {
		p.preview.Release()
		p.preview = nil
	}
}
