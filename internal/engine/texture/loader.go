package texture

import (
	"image"
	"io/fs"
	"os"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/hauntedhouse/internal/logger"
)

type uploadKey struct {
	path         string
	srgb         bool
	wrapS, wrapT Wrap
}

// Loader decodes images from an asset root and uploads them as GL textures.
// Decoded pixels are cached by path; GL textures by path and sampler state.
type Loader struct {
	fsys    fs.FS
	maxSize int

	decoded  map[string]*image.NRGBA
	failed   map[string]bool
	uploaded map[uploadKey]uint32
	fallback uint32
}

// NewLoader creates a loader reading from the directory root.
func NewLoader(root string, maxSize int) *Loader {
	return NewLoaderFS(os.DirFS(root), maxSize)
}

// NewLoaderFS creates a loader reading from fsys.
func NewLoaderFS(fsys fs.FS, maxSize int) *Loader {
	return &Loader{
		fsys:     fsys,
		maxSize:  maxSize,
		decoded:  make(map[string]*image.NRGBA),
		failed:   make(map[string]bool),
		uploaded: make(map[uploadKey]uint32),
	}
}

// Decode returns the cached pixels for path, decoding on first use.
// A nil image means the file is missing or unreadable; the failure is
// logged once.
func (l *Loader) Decode(path string) *image.NRGBA {
	if img, ok := l.decoded[path]; ok {
		return img
	}
	if l.failed[path] {
		return nil
	}

	img, err := DecodeFile(l.fsys, path, l.maxSize)
	if err != nil {
		logger.Warn("texture unavailable, using fallback", zap.String("path", path), zap.Error(err))
		l.failed[path] = true
		return nil
	}
	l.decoded[path] = img
	return img
}

// Failed reports how many distinct files could not be decoded.
func (l *Loader) Failed() int {
	return len(l.failed)
}

// Load resolves t to a GL texture, uploading it if needed, and stores the
// name in t.ID. Missing images resolve to a 1x1 white texture.
// Requires a current GL context.
func (l *Loader) Load(t *Texture) uint32 {
	if t == nil {
		return 0
	}

	key := uploadKey{path: t.Path, srgb: t.SRGB, wrapS: t.WrapS, wrapT: t.WrapT}
	if id, ok := l.uploaded[key]; ok {
		t.ID = id
		return id
	}

	img := l.Decode(t.Path)
	if img == nil {
		t.ID = l.Fallback()
		return t.ID
	}

	id := upload(img, t)
	l.uploaded[key] = id
	t.ID = id
	return id
}

// Fallback returns the shared 1x1 white texture.
func (l *Loader) Fallback() uint32 {
	if l.fallback == 0 {
		gl.GenTextures(1, &l.fallback)
		gl.BindTexture(gl.TEXTURE_2D, l.fallback)
		white := []uint8{255, 255, 255, 255}
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	}
	return l.fallback
}

// Destroy releases every GL texture created by the loader.
func (l *Loader) Destroy() {
	for key, id := range l.uploaded {
		gl.DeleteTextures(1, &id)
		delete(l.uploaded, key)
	}
	if l.fallback != 0 {
		gl.DeleteTextures(1, &l.fallback)
		l.fallback = 0
	}
}

func upload(img *image.NRGBA, t *Texture) uint32 {
	internal := int32(gl.RGBA8)
	if t.SRGB {
		internal = gl.SRGB8_ALPHA8
	}

	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internal, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, glWrap(t.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, glWrap(t.WrapT))
	gl.TexParameterf(gl.TEXTURE_2D, gl.TEXTURE_MAX_ANISOTROPY, 8.0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

func glWrap(w Wrap) int32 {
	if w == WrapRepeat {
		return gl.REPEAT
	}
	return gl.CLAMP_TO_EDGE
}
