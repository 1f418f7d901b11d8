package renderer

import (
	"sort"

	"github.com/Faultbox/hauntedhouse/internal/engine/camera"
	"github.com/Faultbox/hauntedhouse/internal/engine/material"
	"github.com/Faultbox/hauntedhouse/internal/engine/scene"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// drawItem is a mesh node resolved to world space for one frame.
type drawItem struct {
	node  *scene.Node
	world math.Mat4
	depth float32 // view depth of the node origin
}

// queue splits the visible meshes of a frame into render lists.
type queue struct {
	opaque      []drawItem
	transparent []drawItem
	casters     []drawItem
}

func (q *queue) reset() {
	q.opaque = q.opaque[:0]
	q.transparent = q.transparent[:0]
	q.casters = q.casters[:0]
}

// build fills the queue from sc. Transparent meshes are sorted back to
// front so blending composes correctly; opaque meshes keep graph order.
func (q *queue) build(sc *scene.Scene, cam *camera.Camera) {
	q.reset()
	sc.Walk(func(n *scene.Node, world math.Mat4) bool {
		if n.Mesh == nil || n.Mesh.Geometry == nil || n.Mesh.Material == nil {
			return true
		}
		item := drawItem{node: n, world: world, depth: cam.Depth(world.Translation())}
		if n.Mesh.Material.Transparent {
			q.transparent = append(q.transparent, item)
		} else {
			q.opaque = append(q.opaque, item)
		}
		if n.CastShadow {
			q.casters = append(q.casters, item)
		}
		return true
	})
	sort.SliceStable(q.transparent, func(i, j int) bool {
		return q.transparent[i].depth > q.transparent[j].depth
	})
}

// slotUniforms names the sampler, presence flag and repeat uniforms of each
// material texture slot. The slot index is also the texture unit.
var slotUniforms = [material.SlotCount]struct {
	sampler, has, repeat string
}{
	material.SlotMap:          {"uMap", "uHasMap", "uMapRepeat"},
	material.SlotAlpha:        {"uAlphaMap", "uHasAlphaMap", "uAlphaRepeat"},
	material.SlotAO:           {"uAOMap", "uHasAOMap", "uAORepeat"},
	material.SlotRoughness:    {"uRoughnessMap", "uHasRoughnessMap", "uRoughnessRepeat"},
	material.SlotMetalness:    {"uMetalnessMap", "uHasMetalnessMap", "uMetalnessRepeat"},
	material.SlotNormal:       {"uNormalMap", "uHasNormalMap", "uNormalRepeat"},
	material.SlotDisplacement: {"uDisplacementMap", "uHasDisplacementMap", "uDisplacementRepeat"},
}

// Texture units past the material slots.
const (
	unitSunShadow   = int32(material.SlotCount)
	unitPointShadow = unitSunShadow + 1
)
