// Package scene holds the scene graph: meshes, lights, fog and sky.
// It owns no GPU state; the renderer reads it each frame.
package scene

import (
	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Scene is everything needed to draw a frame apart from the camera.
type Scene struct {
	Root *Node

	Ambient lighting.AmbientLight
	Sun     *lighting.DirectionalLight
	Fog     *FogExp2
	Sky     *Sky

	ClearColor [3]float32
}

// New returns an empty scene with a black background.
func New() *Scene {
	return &Scene{Root: Group("scene")}
}

// Add attaches nodes to the scene root.
func (s *Scene) Add(nodes ...*Node) {
	s.Root.Add(nodes...)
}

// Walk visits every visible node with its world matrix, depth first,
// parents before children. Returning false from fn stops the walk.
func (s *Scene) Walk(fn func(n *Node, world math.Mat4) bool) {
	s.Root.walk(math.Identity(), fn)
}

// Find returns the first node named name, or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	find(s.Root, name, &found)
	return found
}

func find(n *Node, name string, found **Node) {
	if *found != nil {
		return
	}
	if n.Name == name {
		*found = n
		return
	}
	for _, c := range n.children {
		find(c, name, found)
	}
}

// Stats summarises the contents of a scene.
type Stats struct {
	Nodes       int
	Meshes      int
	PointLights int
	Triangles   int
}

// Stats counts the visible nodes, meshes, lights and triangles.
func (s *Scene) Stats() Stats {
	var st Stats
	s.Walk(func(n *Node, _ math.Mat4) bool {
		st.Nodes++
		if n.Mesh != nil {
			st.Meshes++
			if n.Mesh.Geometry != nil {
				st.Triangles += n.Mesh.Geometry.TriangleCount()
			}
		}
		if n.Light != nil {
			st.PointLights++
		}
		return true
	})
	return st
}

// CollectPointLights resolves every visible point light to world space and
// packs it into buf.
func (s *Scene) CollectPointLights(buf *lighting.PointLightBuffer) {
	buf.Clear()
	s.Walk(func(n *Node, world math.Mat4) bool {
		if n.Light != nil {
			buf.AddLight(n.Light, world.Translation())
		}
		return true
	})
}
