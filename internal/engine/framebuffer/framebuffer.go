// Package framebuffer provides OpenGL framebuffer utilities for offscreen rendering.
package framebuffer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer manages an offscreen render target with color and depth
// attachments. With more than one sample it renders into multisampled
// renderbuffers and resolves into the color texture.
type Framebuffer struct {
	fbo          uint32
	colorTexture uint32
	depthRBO     uint32

	samples   int32
	msaaFBO   uint32
	msaaColor uint32
	msaaDepth uint32

	width  int32
	height int32
}

// New creates a new framebuffer with the specified dimensions and sample count.
func New(width, height, samples int32) (*Framebuffer, error) {
	width, height = clampSize(width, height)

	fb := &Framebuffer{
		width:   width,
		height:  height,
		samples: samples,
	}

	if err := fb.create(); err != nil {
		return nil, fmt.Errorf("creating framebuffer: %w", err)
	}

	return fb, nil
}

func clampSize(width, height int32) (int32, int32) {
	return max(width, 1), max(height, 1)
}

func (fb *Framebuffer) create() error {
	// Create framebuffer object
	gl.GenFramebuffers(1, &fb.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	// Create color texture attachment
	gl.GenTextures(1, &fb.colorTexture)
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.colorTexture, 0)

	// Create depth renderbuffer attachment
	gl.GenRenderbuffers(1, &fb.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.depthRBO)

	if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		fb.Destroy()
		return fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	if fb.samples > 1 {
		gl.GenFramebuffers(1, &fb.msaaFBO)
		gl.BindFramebuffer(gl.FRAMEBUFFER, fb.msaaFBO)

		gl.GenRenderbuffers(1, &fb.msaaColor)
		gl.GenRenderbuffers(1, &fb.msaaDepth)
		fb.allocMultisample()
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, fb.msaaColor)
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, fb.msaaDepth)

		if status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER); status != gl.FRAMEBUFFER_COMPLETE {
			gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
			fb.Destroy()
			return fmt.Errorf("multisample framebuffer incomplete: 0x%x", status)
		}
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return nil
}

func (fb *Framebuffer) allocMultisample() {
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msaaColor)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.RGBA8, fb.width, fb.height)
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.msaaDepth)
	gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, fb.samples, gl.DEPTH_COMPONENT24, fb.width, fb.height)
}

// drawFBO returns the framebuffer draw calls should target.
func (fb *Framebuffer) drawFBO() uint32 {
	if fb.msaaFBO != 0 {
		return fb.msaaFBO
	}
	return fb.fbo
}

// Bind makes this framebuffer the current render target.
func (fb *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.drawFBO())
	gl.Viewport(0, 0, fb.width, fb.height)
}

// Unbind restores the default framebuffer.
func (fb *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// BindWithViewport binds and sets viewport, saving previous state.
// Returns a restore function to restore the previous framebuffer and viewport.
func (fb *Framebuffer) BindWithViewport() func() {
	var prevFBO int32
	var prevViewport [4]int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.GetIntegerv(gl.VIEWPORT, &prevViewport[0])

	fb.Bind()

	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
		gl.Viewport(prevViewport[0], prevViewport[1], prevViewport[2], prevViewport[3])
	}
}

// Resolve copies multisampled colour into the colour texture. It is a
// no-op for single-sampled framebuffers.
func (fb *Framebuffer) Resolve() {
	if fb.msaaFBO == 0 {
		return
	}
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, fb.msaaFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fb.fbo)
	gl.BlitFramebuffer(0, 0, fb.width, fb.height, 0, 0, fb.width, fb.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.msaaFBO)
}

// Clear clears color and depth buffers with the specified color.
func (fb *Framebuffer) Clear(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ColorTexture returns the color attachment texture ID.
func (fb *Framebuffer) ColorTexture() uint32 {
	return fb.colorTexture
}

// Samples returns the multisample count, 0 or 1 when not multisampled.
func (fb *Framebuffer) Samples() int32 {
	return fb.samples
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int32) {
	return fb.width, fb.height
}

// Resize updates the framebuffer dimensions if they have changed.
func (fb *Framebuffer) Resize(width, height int32) {
	width, height = clampSize(width, height)
	if width == fb.width && height == fb.height {
		return
	}

	fb.width = width
	fb.height = height

	// Resize color texture
	gl.BindTexture(gl.TEXTURE_2D, fb.colorTexture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, fb.width, fb.height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	// Resize depth renderbuffer
	gl.BindRenderbuffer(gl.RENDERBUFFER, fb.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, fb.width, fb.height)

	if fb.msaaFBO != 0 {
		fb.allocMultisample()
	}
}

// ReadPixels reads the resolved color attachment into a byte slice.
// Rows are bottom to top, as OpenGL stores them.
func (fb *Framebuffer) ReadPixels() []byte {
	pixels := make([]byte, fb.width*fb.height*4)

	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.fbo)

	gl.ReadPixels(0, 0, fb.width, fb.height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))

	return pixels
}

// ReadImage reads the resolved color attachment as a top-to-bottom image.
func (fb *Framebuffer) ReadImage() *image.RGBA {
	return ToImage(fb.ReadPixels(), int(fb.width), int(fb.height))
}

// ToImage converts bottom-to-top RGBA rows into an image. Alpha is forced
// opaque since the scene's blended alpha is not meaningful on its own.
func ToImage(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := pixels[(height-1-y)*rowSize : (height-y)*rowSize]
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], src)
	}
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

// Destroy releases all OpenGL resources.
func (fb *Framebuffer) Destroy() {
	if fb.fbo != 0 {
		gl.DeleteFramebuffers(1, &fb.fbo)
		fb.fbo = 0
	}
	if fb.colorTexture != 0 {
		gl.DeleteTextures(1, &fb.colorTexture)
		fb.colorTexture = 0
	}
	if fb.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &fb.depthRBO)
		fb.depthRBO = 0
	}
	if fb.msaaFBO != 0 {
		gl.DeleteFramebuffers(1, &fb.msaaFBO)
		fb.msaaFBO = 0
	}
	if fb.msaaColor != 0 {
		gl.DeleteRenderbuffers(1, &fb.msaaColor)
		fb.msaaColor = 0
	}
	if fb.msaaDepth != 0 {
		gl.DeleteRenderbuffers(1, &fb.msaaDepth)
		fb.msaaDepth = 0
	}
}
