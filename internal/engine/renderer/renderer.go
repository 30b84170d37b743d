// Package renderer draws the scene with OpenGL: a shadow depth pass from the
// key light, then a lit pass for the subject and the shadow-catching ground.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/morivert/scrollstage/internal/engine/mesh"
	"github.com/morivert/scrollstage/internal/engine/shader"
	"github.com/morivert/scrollstage/internal/engine/shadow"
	"github.com/morivert/scrollstage/internal/logger"
	"github.com/morivert/scrollstage/internal/material"
	"github.com/morivert/scrollstage/internal/scene"
	"github.com/morivert/scrollstage/internal/texture"
	"github.com/morivert/scrollstage/internal/timeline"
	"github.com/morivert/scrollstage/internal/viewport"
	"github.com/morivert/scrollstage/pkg/math"
)

// Background is the clear color, #050505.
var Background = [3]float32{0.0196, 0.0196, 0.0196}

// groundShadowOpacity is the darkness of a fully shadowed ground texel.
const groundShadowOpacity = 0.3

// shadowBounds encloses the subject over its whole sequence and the ground
// directly beneath it.
var shadowBounds = shadow.Sphere{Center: math.Vec3{Y: -0.4}, Radius: 2.6}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	lit   *shader.Program
	depth *shader.Program

	parts  [timeline.PartCount]*gpuMesh
	seeds  [material.SeedCount]*gpuMesh
	ground *gpuMesh

	mapTex uint32
	mapImg *image.RGBA

	shadowMap     *shadow.Map
	lightViewProj math.Mat4

	scaled *target // nil while rendering at drawable size
}

var litUniforms = []string{
	"uViewProj", "uModel", "uLightViewProj",
	"uBaseColor", "uRoughness", "uMetalness", "uOpacity", "uTransmission", "uUseMap", "uMap",
	"uCameraPos", "uAmbient", "uEnvironment",
	"uSpotPos", "uSpotDir", "uSpotCosOuter", "uSpotCosInner", "uSpotIntensity",
	"uShadowsEnabled", "uShadowMap", "uShadowOnly", "uShadowOpacity",
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(Background[0], Background[1], Background[2], 1.0)

	var err error
	r.lit, err = shader.NewProgram(litVertexShader, litFragmentShader, litUniforms...)
	if err != nil {
		return nil, fmt.Errorf("lit shader: %w", err)
	}
	r.depth, err = shader.NewProgram(depthVertexShader, depthFragmentShader, "uLightViewProj", "uModel")
	if err != nil {
		r.lit.Delete()
		return nil, fmt.Errorf("depth shader: %w", err)
	}

	geo := mesh.BuildSubject()
	r.parts[timeline.Body] = uploadMesh(geo.Body)
	r.parts[timeline.Tip] = uploadMesh(geo.Tip)
	r.parts[timeline.Lead] = uploadMesh(geo.Lead)
	r.parts[timeline.Capsule] = uploadMesh(geo.Capsule)
	r.parts[timeline.Sprout] = uploadMesh(geo.Sprout)
	for i, s := range geo.Seeds {
		r.seeds[i] = uploadMesh(s)
	}
	r.ground = uploadMesh(geo.Ground)

	gl.GenTextures(1, &r.mapTex)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// ApplyProfile enables or disables the shadow pass for a viewport profile.
func (r *Renderer) ApplyProfile(p viewport.Profile) {
	switch {
	case p.Shadows && !r.shadowMap.IsValid():
		sm, err := shadow.NewMap(p.ShadowMapSize)
		if err != nil {
			r.log.Warn("shadows disabled", zap.Error(err))
			return
		}
		r.shadowMap = sm
		r.log.Debug("shadow map created", zap.Int32("resolution", sm.Resolution))
	case !p.Shadows && r.shadowMap.IsValid():
		r.shadowMap.Destroy()
		r.shadowMap = nil
		r.log.Debug("shadow map released")
	}
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range r.parts {
		if m != nil {
			m.destroy()
		}
	}
	for _, m := range r.seeds {
		if m != nil {
			m.destroy()
		}
	}
	if r.ground != nil {
		r.ground.destroy()
	}
	if r.mapTex != 0 {
		gl.DeleteTextures(1, &r.mapTex)
	}
	if r.shadowMap != nil {
		r.shadowMap.Destroy()
	}
	if r.scaled != nil {
		r.scaled.destroy()
	}
	if r.lit != nil {
		r.lit.Delete()
	}
	if r.depth != nil {
		r.depth.Delete()
	}
}

// Resize handles a drawable size change. Rendering returns to the full
// drawable size until SetRenderSize says otherwise.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
	r.SetRenderSize(width, height)
}

// SetRenderSize renders the lit pass at width×height and stretches it over
// the drawable. Sizes at or above the drawable render directly.
func (r *Renderer) SetRenderSize(width, height int) {
	if width <= 0 || height <= 0 || (width >= r.config.Width && height >= r.config.Height) {
		if r.scaled != nil {
			r.scaled.destroy()
			r.scaled = nil
			r.log.Debug("render target released")
		}
		return
	}
	w, h := int32(width), int32(height)
	if r.scaled != nil {
		if r.scaled.width == w && r.scaled.height == h {
			return
		}
		r.scaled.destroy()
		r.scaled = nil
	}
	t, err := newTarget(w, h)
	if err != nil {
		r.log.Warn("rendering at drawable size", zap.Error(err))
		return
	}
	r.scaled = t
	r.log.Debug("render target created", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns width / height of the drawable.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Draw renders one frame of the scene.
func (r *Renderer) Draw(sc *scene.Scene, bank *material.Bank, sel texture.Selector, profile viewport.Profile) {
	body := bank.Main(sel)
	r.syncMap(body.Map)

	shadows := profile.Shadows && r.shadowMap.IsValid()
	if shadows {
		r.lightViewProj = shadow.SpotLightMatrix(profile.Lights.Spot.Position, profile.Lights.Spot.Angle, shadowBounds)
		r.depthPass(sc)
	}

	if r.scaled != nil {
		r.scaled.bind()
	}
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	r.lit.Use()
	viewProj := sc.Camera.ViewProjection(r.Aspect())
	r.lit.SetMat4("uViewProj", &viewProj)
	r.lit.SetMat4("uLightViewProj", &r.lightViewProj)
	r.lit.SetVec3("uCameraPos", sc.Camera.Position)
	r.setLights(profile.Lights)
	r.lit.SetBool("uShadowsEnabled", shadows)
	if shadows {
		r.shadowMap.BindTexture(gl.TEXTURE1)
	}
	r.lit.SetInt("uShadowMap", 1)
	r.lit.SetInt("uMap", 0)
	r.lit.SetBool("uShadowOnly", false)

	sub := &sc.Subject
	r.drawPart(sub, timeline.Body, body)
	r.drawPart(sub, timeline.Tip, body)
	r.drawPart(sub, timeline.Lead, bank.Graphite())
	r.drawPart(sub, timeline.Sprout, bank.Leaf())
	if sub.Parts[timeline.Capsule].Visible() {
		model := sub.PartWorld(timeline.Capsule)
		for i, m := range r.seeds {
			r.drawMesh(m, &model, bank.Seed(i))
		}
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthMask(false)

	if shadows {
		ground := math.Translate(0, mesh.GroundY, 0)
		r.lit.SetBool("uShadowOnly", true)
		r.lit.SetFloat("uShadowOpacity", groundShadowOpacity)
		r.lit.SetMat4("uModel", &ground)
		r.ground.draw()
		r.lit.SetBool("uShadowOnly", false)
	}

	r.drawPart(sub, timeline.Capsule, bank.Capsule())

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)

	if r.scaled != nil {
		r.scaled.present(int32(r.config.Width), int32(r.config.Height))
	}
}

func (r *Renderer) depthPass(sc *scene.Scene) {
	r.shadowMap.Bind()
	r.depth.Use()
	r.depth.SetMat4("uLightViewProj", &r.lightViewProj)

	sub := &sc.Subject
	for part := timeline.Part(0); part < timeline.PartCount; part++ {
		if !sub.Parts[part].Visible() {
			continue
		}
		model := sub.PartWorld(part)
		r.depth.SetMat4("uModel", &model)
		r.parts[part].draw()
	}

	r.shadowMap.Unbind()
}

func (r *Renderer) setLights(l viewport.LightRig) {
	spot := l.Spot
	dir := shadowBounds.Center.Sub(spot.Position).Normalize()
	outer := math.Cos(spot.Angle)
	inner := math.Cos(spot.Angle * (1 - spot.Penumbra))

	r.lit.SetFloat("uAmbient", l.Ambient)
	r.lit.SetFloat("uEnvironment", l.Environment)
	r.lit.SetVec3("uSpotPos", spot.Position)
	r.lit.SetVec3("uSpotDir", dir)
	r.lit.SetFloat("uSpotCosOuter", outer)
	r.lit.SetFloat("uSpotCosInner", inner)
	r.lit.SetFloat("uSpotIntensity", spot.Intensity)
}

func (r *Renderer) drawPart(sub *scene.Subject, part timeline.Part, s *material.Surface) {
	if !sub.Parts[part].Visible() {
		return
	}
	model := sub.PartWorld(part)
	r.drawMesh(r.parts[part], &model, s)
}

func (r *Renderer) drawMesh(m *gpuMesh, model *math.Mat4, s *material.Surface) {
	r.lit.SetMat4("uModel", model)
	r.lit.SetVec3("uBaseColor", s.Color)
	r.lit.SetFloat("uRoughness", s.Roughness)
	r.lit.SetFloat("uMetalness", s.Metalness)
	r.lit.SetFloat("uOpacity", s.Opacity)
	r.lit.SetFloat("uTransmission", s.Transmission)
	useMap := s.Map != nil && s.Map == r.mapImg
	r.lit.SetBool("uUseMap", useMap)
	if useMap {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.mapTex)
	}
	m.draw()
}

// syncMap uploads img if it is not the bitmap already on the GPU.
func (r *Renderer) syncMap(img *image.RGBA) {
	if img == nil || img == r.mapImg || len(img.Pix) == 0 {
		return
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.mapTex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	r.mapImg = img
	r.log.Debug("surface map uploaded", zap.Int("width", img.Bounds().Dx()), zap.Int("height", img.Bounds().Dy()))
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
