// Package mesh uploads geometry to the GPU.
package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/hauntedhouse/internal/engine/geometry"
)

// Mesh is a geometry resident in GPU buffers.
type Mesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// Upload creates the vertex array for g. Attribute 0 is the position,
// 1 the normal and 2 the texture coordinate.
func Upload(g *geometry.Geometry) (*Mesh, error) {
	if len(g.Vertices) == 0 || len(g.Indices) == 0 {
		return nil, fmt.Errorf("upload %s: empty geometry", g.Name)
	}

	m := &Mesh{indexCount: int32(len(g.Indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(geometry.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*vertexSize, unsafe.Pointer(&g.Vertices[0]), gl.STATIC_DRAW)

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, int32(vertexSize), 3*4)
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, int32(vertexSize), 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, unsafe.Pointer(&g.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m, nil
}

// Draw issues the indexed draw call.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
}

// Destroy releases the GPU buffers.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}

// Cache uploads each geometry once, however many nodes share it.
type Cache struct {
	meshes map[*geometry.Geometry]*Mesh
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{meshes: make(map[*geometry.Geometry]*Mesh)}
}

// Get returns the mesh for g, uploading it on first use.
func (c *Cache) Get(g *geometry.Geometry) (*Mesh, error) {
	if m, ok := c.meshes[g]; ok {
		return m, nil
	}
	m, err := Upload(g)
	if err != nil {
		return nil, err
	}
	c.meshes[g] = m
	return m, nil
}

// Len returns the number of uploaded meshes.
func (c *Cache) Len() int {
	return len(c.meshes)
}

// Destroy releases every cached mesh.
func (c *Cache) Destroy() {
	for g, m := range c.meshes {
		m.Destroy()
		delete(c.meshes, g)
	}
}
