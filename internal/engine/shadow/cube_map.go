package shadow

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CubeMap is an omnidirectional shadow map for a point light. Each face
// stores the fragment distance to the light divided by the far plane.
type CubeMap struct {
	FBO          uint32
	DepthTexture uint32
	Resolution   int32
	prevViewport [4]int32
}

// NewCubeMap creates a depth cube map with square faces of resolution texels.
func NewCubeMap(resolution int32) (*CubeMap, error) {
	if resolution <= 0 {
		resolution = DefaultResolution
	}

	cm := &CubeMap{Resolution: resolution}

	gl.GenTextures(1, &cm.DepthTexture)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
	for face := uint32(0); face < 6; face++ {
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+face, 0, gl.DEPTH_COMPONENT24,
			resolution, resolution, 0, gl.DEPTH_COMPONENT, gl.FLOAT, nil)
	}
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.GenFramebuffers(1, &cm.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.TEXTURE_CUBE_MAP_POSITIVE_X, cm.DepthTexture, 0)
	gl.DrawBuffer(gl.NONE)
	gl.ReadBuffer(gl.NONE)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		cm.Destroy()
		return nil, fmt.Errorf("shadow cube map framebuffer incomplete: 0x%x", status)
	}

	return cm, nil
}

// Bind prepares the framebuffer for the cube pass and saves the viewport.
func (cm *CubeMap) Bind() {
	gl.GetIntegerv(gl.VIEWPORT, &cm.prevViewport[0])
	gl.BindFramebuffer(gl.FRAMEBUFFER, cm.FBO)
	gl.Viewport(0, 0, cm.Resolution, cm.Resolution)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Disable(gl.CULL_FACE)
}

// BindFace attaches face (0..5, in GL cube face order) and clears it.
func (cm *CubeMap) BindFace(face int) {
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT,
		gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(face), cm.DepthTexture, 0)
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// Unbind restores the default framebuffer and the saved viewport.
func (cm *CubeMap) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(cm.prevViewport[0], cm.prevViewport[1], cm.prevViewport[2], cm.prevViewport[3])
}

// BindTexture binds the cube texture to the specified texture unit.
func (cm *CubeMap) BindTexture(textureUnit uint32) {
	gl.ActiveTexture(textureUnit)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, cm.DepthTexture)
}

// Destroy releases all GPU resources associated with this cube map.
func (cm *CubeMap) Destroy() {
	if cm.FBO != 0 {
		gl.DeleteFramebuffers(1, &cm.FBO)
		cm.FBO = 0
	}
	if cm.DepthTexture != 0 {
		gl.DeleteTextures(1, &cm.DepthTexture)
		cm.DepthTexture = 0
	}
}
