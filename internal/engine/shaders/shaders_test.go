package shaders

import (
	"strings"
	"testing"

	"github.com/Faultbox/hauntedhouse/internal/engine/shader"
)

func TestSourcesExpand(t *testing.T) {
	sources := map[string]string{
		"standard.vert": StandardVertexShader,
		"standard.frag": StandardFragmentShader,
		"depth.vert":    DepthVertexShader,
		"depth.frag":    DepthFragmentShader,
		"distance.vert": DistanceVertexShader,
		"distance.frag": DistanceFragmentShader,
		"sky.vert":      SkyVertexShader,
		"sky.frag":      SkyFragmentShader,
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			out, err := shader.Expand(src, Chunks())
			if err != nil {
				t.Fatalf("expand: %v", err)
			}
			if !strings.HasPrefix(out, "#version 410 core") {
				t.Error("expected #version directive on the first line")
			}
			if strings.Contains(out, "#include") {
				t.Error("expected every include to be resolved")
			}
		})
	}
}

func TestLimitsChunk(t *testing.T) {
	out, err := shader.Expand(StandardFragmentShader, Chunks())
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	for _, want := range []string{"#define MAX_POINT_LIGHTS 8", "#define MAX_SHADOWED_POINT_LIGHTS 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in the standard fragment shader", want)
		}
	}
}
