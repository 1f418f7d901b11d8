// Package lighting provides light sources and their GPU packing.
package lighting

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses a "#rrggbb" colour into sRGB components in [0, 1].
func ParseHex(s string) ([3]float32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return [3]float32{}, fmt.Errorf("invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return [3]float32{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return [3]float32{
		float32((v>>16)&0xff) / 255,
		float32((v>>8)&0xff) / 255,
		float32(v&0xff) / 255,
	}, nil
}

// SRGBToLinear decodes one sRGB channel value.
func SRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow((float64(c)+0.055)/1.055, 2.4))
}

// LinearHex parses a "#rrggbb" colour and returns it in linear RGB, the
// space lighting is computed in.
func LinearHex(s string) ([3]float32, error) {
	c, err := ParseHex(s)
	if err != nil {
		return c, err
	}
	for i := range c {
		c[i] = SRGBToLinear(c[i])
	}
	return c, nil
}

// MustLinearHex is LinearHex for compile-time constants. It panics on
// malformed input.
func MustLinearHex(s string) [3]float32 {
	c, err := LinearHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
