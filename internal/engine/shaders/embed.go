// Package shaders provides embedded GLSL shader sources.
package shaders

import (
	_ "embed"
	"fmt"

	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
)

// StandardVertexShader transforms lit meshes, applying displacement maps.
//
//go:embed standard.vert
var StandardVertexShader string

// StandardFragmentShader shades lit meshes with the metallic-roughness model.
//
//go:embed standard.frag
var StandardFragmentShader string

// DepthVertexShader renders the directional light's shadow map.
//
//go:embed depth.vert
var DepthVertexShader string

// DepthFragmentShader is the empty fragment stage of the depth pass.
//
//go:embed depth.frag
var DepthFragmentShader string

// DistanceVertexShader renders point light cube shadow maps.
//
//go:embed distance.vert
var DistanceVertexShader string

// DistanceFragmentShader writes normalised light distance as depth.
//
//go:embed distance.frag
var DistanceFragmentShader string

// SkyVertexShader computes per-vertex scattering terms for the sky box.
//
//go:embed sky.vert
var SkyVertexShader string

// SkyFragmentShader evaluates the Preetham daylight model.
//
//go:embed sky.frag
var SkyFragmentShader string

//go:embed common.glsl
var commonChunk string

//go:embed displacement.glsl
var displacementChunk string

// Chunks returns the sources available to #include directives.
func Chunks() map[string]string {
	return map[string]string{
		"common":       commonChunk,
		"displacement": displacementChunk,
		"limits": fmt.Sprintf("#define MAX_POINT_LIGHTS %d\n#define MAX_SHADOWED_POINT_LIGHTS %d\n",
			lighting.MaxPointLights, lighting.MaxShadowedPointLights),
	}
}
