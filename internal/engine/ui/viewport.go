package ui

import gomath "math"

// PixelRatio returns the render resolution multiplier for a display with
// the given device pixel ratio, never above maxRatio. High density displays
// render at a whole-number ratio so texels map cleanly to pixels.
func PixelRatio(deviceRatio, maxRatio float32) float32 {
	if maxRatio < 1 {
		maxRatio = 1
	}
	if deviceRatio <= 1 {
		return 1
	}
	r := float32(gomath.Ceil(float64(deviceRatio)))
	return min(r, maxRatio)
}

// RenderSize returns the framebuffer size for a logical viewport at ratio.
// Both dimensions are at least 1.
func RenderSize(width, height, ratio float32) (int32, int32) {
	w := int32(gomath.Round(float64(width * ratio)))
	h := int32(gomath.Round(float64(height * ratio)))
	return max(w, 1), max(h, 1)
}
