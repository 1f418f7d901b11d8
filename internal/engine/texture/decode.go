package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeFile decodes a png, jpeg or webp image from fsys into tightly
// packed, non-premultiplied RGBA rows ordered bottom to top, as GL expects.
// Images larger than maxSize on either side are downscaled; maxSize <= 0
// disables the limit.
func DecodeFile(fsys fs.FS, path string, maxSize int) (*image.NRGBA, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}

	bounds := img.Bounds()
	w, h := fitSize(bounds.Dx(), bounds.Dy(), maxSize)
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("decode texture %s: empty %s image", path, format)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == bounds.Dx() && h == bounds.Dy() {
		draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(out, out.Bounds(), img, bounds, draw.Src, nil)
	}

	FlipVertical(out)
	return out, nil
}

// fitSize scales w x h down to fit inside maxSize, keeping the aspect ratio.
func fitSize(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.NRGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	tmp := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}
