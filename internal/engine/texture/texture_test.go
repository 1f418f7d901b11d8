package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

// stripes returns a w x h image whose rows alternate between red and blue,
// with row 0 red.
func stripes(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.NRGBA{R: 255, A: 255}
		if y%2 == 1 {
			c = color.NRGBA{B: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestDecodeFileFlipsRows(t *testing.T) {
	src := stripes(2, 3)
	src.SetNRGBA(0, 2, color.NRGBA{G: 255, A: 255})
	fsys := fstest.MapFS{"a.png": {Data: encodePNG(t, src)}}

	img, err := DecodeFile(fsys, "a.png", 0)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	// Source bottom row is now first.
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("expected green at (0,0) after flip, got %v", got)
	}
	if got := img.NRGBAAt(0, 2); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected red at (0,2) after flip, got %v", got)
	}
}

func TestDecodeFileKeepsStraightAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	fsys := fstest.MapFS{"alpha.png": {Data: encodePNG(t, src)}}

	img, err := DecodeFile(fsys, "alpha.png", 0)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("expected unpremultiplied pixel, got %v", got)
	}
}

func TestDecodeFileDownscales(t *testing.T) {
	fsys := fstest.MapFS{"big.png": {Data: encodePNG(t, stripes(64, 32))}}

	img, err := DecodeFile(fsys, "big.png", 16)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Errorf("expected 16x8, got %v", img.Bounds())
	}
}

func TestDecodeFileErrors(t *testing.T) {
	fsys := fstest.MapFS{"junk.webp": {Data: []byte("not an image")}}

	if _, err := DecodeFile(fsys, "missing.webp", 0); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := DecodeFile(fsys, "junk.webp", 0); err == nil {
		t.Error("expected error for undecodable file")
	}
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		w, h, limit  int
		wantW, wantH int
	}{
		{1024, 1024, 0, 1024, 1024},
		{1024, 1024, 2048, 1024, 1024},
		{1024, 512, 256, 256, 128},
		{512, 1024, 256, 128, 256},
		{4096, 1, 64, 64, 1},
	}

	for _, tt := range tests {
		w, h := fitSize(tt.w, tt.h, tt.limit)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("fitSize(%d, %d, %d) = %dx%d, want %dx%d", tt.w, tt.h, tt.limit, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestLoaderDecodeCaches(t *testing.T) {
	fsys := fstest.MapFS{"floor/arm.png": {Data: encodePNG(t, stripes(4, 4))}}
	l := NewLoaderFS(fsys, 0)

	first := l.Decode("floor/arm.png")
	if first == nil {
		t.Fatal("expected image")
	}
	if second := l.Decode("floor/arm.png"); second != first {
		t.Error("expected cached image to be shared")
	}

	if l.Decode("floor/missing.webp") != nil {
		t.Error("expected nil for missing file")
	}
	l.Decode("floor/missing.webp")
	if l.Failed() != 1 {
		t.Errorf("expected 1 failed path, got %d", l.Failed())
	}
}

func TestTextureDescriptors(t *testing.T) {
	c := Color("roof/diff.webp").Tiled(3, 1, WrapRepeat, WrapClamp)
	if !c.SRGB || c.Repeat != [2]float32{3, 1} || c.WrapS != WrapRepeat || c.WrapT != WrapClamp {
		t.Errorf("unexpected descriptor %+v", c)
	}

	d := New("door/alpha.webp")
	if d.SRGB || d.Repeat != [2]float32{1, 1} || d.WrapS != WrapClamp {
		t.Errorf("unexpected default descriptor %+v", d)
	}

	c.ID = 7
	if clone := c.Clone(); clone.ID != 0 || clone.Path != c.Path {
		t.Errorf("unexpected clone %+v", clone)
	}
}
