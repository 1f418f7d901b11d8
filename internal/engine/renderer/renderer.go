// Package renderer draws a scene graph with OpenGL: shadow passes, sky,
// opaque and transparent meshes into an offscreen framebuffer.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/engine/camera"
	"github.com/Faultbox/hauntedhouse/internal/engine/framebuffer"
	"github.com/Faultbox/hauntedhouse/internal/engine/geometry"
	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/internal/engine/material"
	"github.com/Faultbox/hauntedhouse/internal/engine/mesh"
	"github.com/Faultbox/hauntedhouse/internal/engine/scene"
	"github.com/Faultbox/hauntedhouse/internal/engine/shader"
	"github.com/Faultbox/hauntedhouse/internal/engine/shaders"
	"github.com/Faultbox/hauntedhouse/internal/engine/shadow"
	"github.com/Faultbox/hauntedhouse/internal/engine/texture"
	"github.com/Faultbox/hauntedhouse/internal/logger"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width   int32
	Height  int32
	Samples int32
	Shadows bool
}

// Renderer owns every GPU resource needed to draw a scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	framebuffer *framebuffer.Framebuffer
	textures    *texture.Loader
	meshes      *mesh.Cache
	broken      map[*geometry.Geometry]bool

	standard *shader.Program
	depth    *shader.Program
	distance *shader.Program
	sky      *shader.Program

	sunShadow     *shadow.Map
	sunShadowOff  bool
	pointShadows  [lighting.MaxShadowedPointLights]*shadow.CubeMap
	lightViewProj math.Mat4

	skyBox *geometry.Geometry
	lights *lighting.PointLightBuffer
	queue  queue
}

// New creates a renderer drawing into a width x height target.
// Requires a current GL context.
func New(cfg Config, textures *texture.Loader) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		log:      logger.Named("renderer"),
		textures: textures,
		meshes:   mesh.NewCache(),
		broken:   make(map[*geometry.Geometry]bool),
		skyBox:   geometry.Box(1, 1, 1),
		lights:   lighting.NewPointLightBuffer(),
	}

	var err error
	r.framebuffer, err = framebuffer.New(cfg.Width, cfg.Height, cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}

	programs := []struct {
		dst        **shader.Program
		name       string
		vert, frag string
	}{
		{&r.standard, "standard", shaders.StandardVertexShader, shaders.StandardFragmentShader},
		{&r.depth, "depth", shaders.DepthVertexShader, shaders.DepthFragmentShader},
		{&r.distance, "distance", shaders.DistanceVertexShader, shaders.DistanceFragmentShader},
		{&r.sky, "sky", shaders.SkyVertexShader, shaders.SkyFragmentShader},
	}
	for _, p := range programs {
		if *p.dst, err = compile(p.name, p.vert, p.frag); err != nil {
			r.Destroy()
			return nil, err
		}
	}
	r.bindSamplers()

	r.log.Info("renderer created",
		zap.Int32("width", cfg.Width),
		zap.Int32("height", cfg.Height),
		zap.Int32("samples", cfg.Samples),
		zap.Bool("shadows", cfg.Shadows),
	)
	return r, nil
}

func compile(name, vert, frag string) (*shader.Program, error) {
	chunks := shaders.Chunks()
	vs, err := shader.Expand(vert, chunks)
	if err != nil {
		return nil, fmt.Errorf("%s vertex shader: %w", name, err)
	}
	fs, err := shader.Expand(frag, chunks)
	if err != nil {
		return nil, fmt.Errorf("%s fragment shader: %w", name, err)
	}
	return shader.NewProgram(name, vs, fs)
}

// bindSamplers assigns a fixed texture unit to every sampler uniform so no
// two sampler types ever share a unit.
func (r *Renderer) bindSamplers() {
	r.standard.Use()
	for slot, u := range slotUniforms {
		r.standard.SetInt(u.sampler, int32(slot))
	}
	r.standard.SetInt("uShadowMap", unitSunShadow)
	units := make([]int32, lighting.MaxShadowedPointLights)
	for i := range units {
		units[i] = unitPointShadow + int32(i)
	}
	r.standard.SetInts("uPointShadowMaps", units)

	for _, p := range []*shader.Program{r.depth, r.distance} {
		p.Use()
		p.SetInt("uDisplacementMap", int32(material.SlotDisplacement))
	}
	gl.UseProgram(0)
}

// Render draws sc as seen by cam and returns the colour texture.
func (r *Renderer) Render(sc *scene.Scene, cam *camera.Camera) uint32 {
	r.queue.build(sc, cam)
	sc.CollectPointLights(r.lights)

	sunShadow := false
	if r.config.Shadows {
		sunShadow = r.renderSunShadow(sc)
		r.renderPointShadows()
	}

	restore := r.framebuffer.BindWithViewport()
	defer restore()

	r.framebuffer.Clear(sc.ClearColor[0], sc.ClearColor[1], sc.ClearColor[2], 1)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)

	if sc.Sky != nil {
		r.renderSky(sc.Sky, cam)
	}

	r.standard.Use()
	r.setFrameUniforms(sc, cam, sunShadow)
	for _, item := range r.queue.opaque {
		r.drawStandard(item)
	}

	if len(r.queue.transparent) > 0 {
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		for _, item := range r.queue.transparent {
			r.drawStandard(item)
		}
		gl.Disable(gl.BLEND)
	}

	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	r.framebuffer.Resolve()
	return r.framebuffer.ColorTexture()
}

// renderSunShadow fills the directional shadow map. It reports whether the
// map holds valid depth for this frame.
func (r *Renderer) renderSunShadow(sc *scene.Scene) bool {
	sun := sc.Sun
	if sun == nil || !sun.CastShadow || r.sunShadowOff {
		return false
	}

	size := int32(sun.Shadow.MapSize)
	if r.sunShadow == nil || r.sunShadow.Resolution != size {
		if r.sunShadow != nil {
			r.sunShadow.Destroy()
		}
		sm, err := shadow.NewMap(size)
		if err != nil {
			r.log.Warn("sun shadows disabled", zap.Error(err))
			r.sunShadow = nil
			r.sunShadowOff = true
			return false
		}
		r.sunShadow = sm
	}

	r.lightViewProj = shadow.DirectionalLightMatrix(sun)

	r.sunShadow.Bind()
	gl.Clear(gl.DEPTH_BUFFER_BIT)
	r.depth.Use()
	r.depth.SetMat4("uLightViewProj", r.lightViewProj)
	for _, item := range r.queue.casters {
		r.depth.SetMat4("uModel", item.world)
		r.drawShadowCaster(r.depth, item)
	}
	r.sunShadow.Unbind()
	return true
}

// renderPointShadows fills one cube map per shadowed point light.
func (r *Renderer) renderPointShadows() {
	for _, light := range r.lights.Lights {
		if light.ShadowIndex < 0 {
			continue
		}
		cube := r.pointShadowMap(light.ShadowIndex, int32(light.ShadowSize))
		if cube == nil {
			continue
		}

		faces := shadow.CubeFaceMatrices(light.Position, light.ShadowNear, light.ShadowFar)
		r.distance.Use()
		r.distance.SetVec3("uLightPos", light.Position.Array())
		r.distance.SetFloat("uFar", light.ShadowFar)

		cube.Bind()
		for face, viewProj := range faces {
			cube.BindFace(face)
			r.distance.SetMat4("uFaceViewProj", viewProj)
			for _, item := range r.queue.casters {
				r.distance.SetMat4("uModel", item.world)
				r.drawShadowCaster(r.distance, item)
			}
		}
		cube.Unbind()
	}
}

func (r *Renderer) pointShadowMap(slot int, size int32) *shadow.CubeMap {
	cube := r.pointShadows[slot]
	if cube != nil && cube.Resolution == size {
		return cube
	}
	if cube != nil {
		cube.Destroy()
		r.pointShadows[slot] = nil
	}
	cube, err := shadow.NewCubeMap(size)
	if err != nil {
		r.log.Warn("point shadow map unavailable", zap.Int("slot", slot), zap.Error(err))
		return nil
	}
	r.pointShadows[slot] = cube
	return cube
}

// mesh returns the uploaded mesh of n, logging each broken geometry once.
func (r *Renderer) mesh(n *scene.Node) *mesh.Mesh {
	g := n.Mesh.Geometry
	if r.broken[g] {
		return nil
	}
	m, err := r.meshes.Get(g)
	if err != nil {
		r.log.Warn("mesh upload failed", zap.String("node", n.Name), zap.Error(err))
		r.broken[g] = true
		return nil
	}
	return m
}

func (r *Renderer) drawShadowCaster(p *shader.Program, item drawItem) {
	m := r.mesh(item.node)
	if m == nil {
		return
	}
	r.bindDisplacement(p, item.node.Mesh.Material)
	m.Draw()
}

func (r *Renderer) bindDisplacement(p *shader.Program, mat *material.Standard) {
	t := mat.DisplacementMap
	gl.ActiveTexture(gl.TEXTURE0 + uint32(material.SlotDisplacement))
	if t == nil {
		gl.BindTexture(gl.TEXTURE_2D, r.textures.Fallback())
		p.SetBool("uHasDisplacementMap", false)
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, r.textures.Load(t))
	p.SetBool("uHasDisplacementMap", true)
	p.SetVec2("uDisplacementRepeat", t.Repeat)
	p.SetFloat("uDisplacementScale", mat.DisplacementScale)
	p.SetFloat("uDisplacementBias", mat.DisplacementBias)
}

func (r *Renderer) renderSky(sky *scene.Sky, cam *camera.Camera) {
	m, err := r.meshes.Get(r.skyBox)
	if err != nil {
		return
	}

	// The box is seen from inside and always sits on the far plane.
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.FRONT)
	gl.DepthFunc(gl.LEQUAL)
	gl.DepthMask(false)

	r.sky.Use()
	r.sky.SetMat4("uModel", math.Scale(sky.Scale, sky.Scale, sky.Scale))
	r.sky.SetMat4("uViewProj", cam.ViewProjection())
	r.sky.SetVec3("uCameraPos", cam.Position.Array())
	r.sky.SetVec3("uSunPosition", sky.SunPosition.Array())
	r.sky.SetVec3("uUp", [3]float32{0, 1, 0})
	r.sky.SetFloat("uRayleigh", sky.Rayleigh)
	r.sky.SetFloat("uTurbidity", sky.Turbidity)
	r.sky.SetFloat("uMieCoefficient", sky.MieCoefficient)
	r.sky.SetFloat("uMieDirectionalG", sky.MieDirectionalG)
	m.Draw()

	gl.DepthMask(true)
	gl.DepthFunc(gl.LESS)
	gl.CullFace(gl.BACK)
	gl.Disable(gl.CULL_FACE)
}

func (r *Renderer) setFrameUniforms(sc *scene.Scene, cam *camera.Camera, sunShadow bool) {
	p := r.standard
	p.SetMat4("uView", cam.ViewMatrix())
	p.SetMat4("uProjection", cam.ProjectionMatrix())
	p.SetVec3("uCameraPos", cam.Position.Array())
	p.SetVec3("uAmbient", sc.Ambient.Radiance())

	if sc.Sun != nil {
		p.SetVec3("uSunDir", sc.Sun.Direction().Array())
		p.SetVec3("uSunRadiance", sc.Sun.Radiance())
	} else {
		p.SetVec3("uSunDir", [3]float32{0, 1, 0})
		p.SetVec3("uSunRadiance", [3]float32{})
	}

	p.SetBool("uSunShadow", sunShadow)
	if sunShadow {
		p.SetMat4("uLightViewProj", r.lightViewProj)
		p.SetFloat("uShadowTexel", 1/float32(r.sunShadow.Resolution))
		r.sunShadow.BindTexture(gl.TEXTURE0 + uint32(unitSunShadow))
	}

	p.SetInt("uPointLightCount", int32(r.lights.Count))
	p.SetVec3s("uPointLightPositions", r.lights.GetPositions())
	p.SetVec3s("uPointLightRadiances", r.lights.GetRadiances())
	p.SetFloats("uPointLightDistances", r.lights.GetDistances())
	p.SetFloats("uPointLightDecays", r.lights.GetDecays())
	p.SetInts("uPointLightShadowIndices", r.shadowIndices())
	p.SetFloats("uPointLightShadowFars", r.lights.GetShadowFars())
	for i, cube := range r.pointShadows {
		if cube != nil {
			cube.BindTexture(gl.TEXTURE0 + uint32(unitPointShadow) + uint32(i))
		}
	}

	p.SetBool("uFogEnabled", sc.Fog != nil)
	if sc.Fog != nil {
		p.SetVec3("uFogColor", sc.Fog.Color)
		p.SetFloat("uFogDensity", sc.Fog.Density)
	}
}

// shadowIndices returns the cube slot per light, masking slots that hold
// no rendered shadow map this frame.
func (r *Renderer) shadowIndices() []int32 {
	indices := r.lights.GetShadowIndices()
	for i, slot := range indices {
		if slot < 0 {
			continue
		}
		if !r.config.Shadows || r.pointShadows[slot] == nil {
			indices[i] = -1
		}
	}
	return indices
}

func (r *Renderer) drawStandard(item drawItem) {
	m := r.mesh(item.node)
	if m == nil {
		return
	}
	mat := item.node.Mesh.Material
	p := r.standard

	p.SetMat4("uModel", item.world)
	p.SetMat4("uNormalMatrix", item.world.NormalMatrix())
	p.SetBool("uReceiveShadow", item.node.ReceiveShadow)

	p.SetVec3("uColor", mat.Color)
	p.SetFloat("uRoughness", mat.Roughness)
	p.SetFloat("uMetalness", mat.Metalness)
	p.SetFloat("uAOMapIntensity", mat.AOMapIntensity)
	p.SetFloat("uNormalScale", mat.NormalScale)
	p.SetBool("uTransparent", mat.Transparent)
	p.SetBool("uDoubleSided", mat.Side == material.DoubleSide)

	for slot := material.Slot(0); slot < material.SlotCount; slot++ {
		if slot == material.SlotDisplacement {
			continue
		}
		u := slotUniforms[slot]
		t := mat.Texture(slot)
		gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
		if t == nil {
			gl.BindTexture(gl.TEXTURE_2D, r.textures.Fallback())
			p.SetBool(u.has, false)
			continue
		}
		gl.BindTexture(gl.TEXTURE_2D, r.textures.Load(t))
		p.SetBool(u.has, true)
		p.SetVec2(u.repeat, t.Repeat)
	}
	r.bindDisplacement(p, mat)

	if mat.Side == material.DoubleSide {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	}
	m.Draw()
}

// Resize updates the render target dimensions.
func (r *Renderer) Resize(width, height int32) {
	if width == r.config.Width && height == r.config.Height {
		return
	}
	r.config.Width = width
	r.config.Height = height
	r.framebuffer.Resize(width, height)
	r.log.Debug("render target resized", zap.Int32("width", width), zap.Int32("height", height))
}

// Size returns the render target dimensions.
func (r *Renderer) Size() (int32, int32) {
	return r.framebuffer.Size()
}

// ColorTexture returns the texture holding the last rendered frame.
func (r *Renderer) ColorTexture() uint32 {
	return r.framebuffer.ColorTexture()
}

// CaptureImage reads back the last rendered frame.
func (r *Renderer) CaptureImage() *image.RGBA {
	return r.framebuffer.ReadImage()
}

// Stats returns the number of uploaded meshes and the number of point lights
// drawn in the last frame.
func (r *Renderer) Stats() (meshes, lights int) {
	return r.meshes.Len(), r.lights.Count
}

// Destroy releases all GPU resources. The texture loader is owned by the
// caller.
func (r *Renderer) Destroy() {
	for _, p := range []*shader.Program{r.standard, r.depth, r.distance, r.sky} {
		if p != nil {
			p.Destroy()
		}
	}
	if r.sunShadow != nil {
		r.sunShadow.Destroy()
		r.sunShadow = nil
	}
	for i, cube := range r.pointShadows {
		if cube != nil {
			cube.Destroy()
			r.pointShadows[i] = nil
		}
	}
	if r.meshes != nil {
		r.meshes.Destroy()
	}
	if r.framebuffer != nil {
		r.framebuffer.Destroy()
		r.framebuffer = nil
	}
}
