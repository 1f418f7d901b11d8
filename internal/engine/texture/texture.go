// Package texture provides image decoding and texture upload for scene materials.
package texture

// Wrap selects how texture coordinates outside [0, 1] are resolved.
type Wrap int

const (
	// WrapClamp clamps coordinates to the edge texels.
	WrapClamp Wrap = iota
	// WrapRepeat tiles the image.
	WrapRepeat
)

// Texture describes an image used by a material slot. Several descriptors
// may point at the same file; the loader decodes it once.
type Texture struct {
	Path   string
	Repeat [2]float32
	WrapS  Wrap
	WrapT  Wrap
	// SRGB marks colour data that must be linearised when sampled.
	SRGB bool

	// ID is the GL texture name, set by Loader.Load.
	ID uint32
}

// New returns a clamped, non-repeating texture for path.
func New(path string) *Texture {
	return &Texture{Path: path, Repeat: [2]float32{1, 1}}
}

// Color returns a texture holding sRGB colour data.
func Color(path string) *Texture {
	t := New(path)
	t.SRGB = true
	return t
}

// Tiled sets the repeat factors and which axes wrap, returning t for chaining.
func (t *Texture) Tiled(u, v float32, wrapS, wrapT Wrap) *Texture {
	t.Repeat = [2]float32{u, v}
	t.WrapS = wrapS
	t.WrapT = wrapT
	return t
}

// Clone returns a copy of the descriptor without its GL name.
func (t *Texture) Clone() *Texture {
	c := *t
	c.ID = 0
	return &c
}
