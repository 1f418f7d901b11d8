package scene

import (
	"github.com/Faultbox/hauntedhouse/internal/engine/geometry"
	"github.com/Faultbox/hauntedhouse/internal/engine/lighting"
	"github.com/Faultbox/hauntedhouse/internal/engine/material"
	"github.com/Faultbox/hauntedhouse/pkg/math"
)

// Mesh pairs a geometry with the material it is drawn with. Both may be
// shared between nodes.
type Mesh struct {
	Geometry *geometry.Geometry
	Material *material.Standard
}

// Node is an element of the scene graph. A node may carry a mesh, a point
// light, both or neither (a group).
type Node struct {
	Name      string
	Transform Transform

	Mesh          *Mesh
	Light         *lighting.PointLight
	CastShadow    bool
	ReceiveShadow bool
	Visible       bool

	parent   *Node
	children []*Node
}

// NewNode returns an empty visible node.
func NewNode(name string) *Node {
	return &Node{Name: name, Transform: Identity(), Visible: true}
}

// Group returns a node meant only to hold children.
func Group(name string) *Node {
	return NewNode(name)
}

// NewMesh returns a node drawing g with m.
func NewMesh(name string, g *geometry.Geometry, m *material.Standard) *Node {
	n := NewNode(name)
	n.Mesh = &Mesh{Geometry: g, Material: m}
	return n
}

// NewLight returns a node holding a point light.
func NewLight(name string, l *lighting.PointLight) *Node {
	n := NewNode(name)
	n.Light = l
	return n
}

// Add attaches children to n, detaching them from any previous parent.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil || c == n {
			continue
		}
		if c.parent != nil {
			c.parent.Remove(c)
		}
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Remove detaches child from n. It reports whether child was found.
func (n *Node) Remove(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Children returns the direct children of n.
func (n *Node) Children() []*Node {
	return n.children
}

// Parent returns the node n is attached to, or nil.
func (n *Node) Parent() *Node {
	return n.parent
}

// WorldMatrix returns the transform from n's local space to world space.
func (n *Node) WorldMatrix() math.Mat4 {
	m := n.Transform.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Transform.Matrix().Mul(m)
	}
	return m
}

// WorldPosition returns the origin of n in world space.
func (n *Node) WorldPosition() math.Vec3 {
	return n.WorldMatrix().Translation()
}

// walk visits n and its visible descendants depth first.
func (n *Node) walk(parent math.Mat4, fn func(*Node, math.Mat4) bool) bool {
	if !n.Visible {
		return true
	}
	world := parent.Mul(n.Transform.Matrix())
	if !fn(n, world) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(world, fn) {
			return false
		}
	}
	return true
}
