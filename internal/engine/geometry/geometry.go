// Package geometry builds indexed triangle meshes for primitive shapes.
package geometry

import "math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Bounds holds the axis-aligned bounding box of a geometry.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

// Geometry holds CPU-side mesh data ready for GPU upload.
// Triangles are wound counter-clockwise when seen from the front.
type Geometry struct {
	Name     string
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// TriangleCount returns the number of triangles.
func (g *Geometry) TriangleCount() int {
	return len(g.Indices) / 3
}

func (g *Geometry) computeBounds() {
	if len(g.Vertices) == 0 {
		return
	}
	g.Bounds.Min = g.Vertices[0].Position
	g.Bounds.Max = g.Vertices[0].Position
	for _, v := range g.Vertices[1:] {
		for i := 0; i < 3; i++ {
			g.Bounds.Min[i] = min(g.Bounds.Min[i], v.Position[i])
			g.Bounds.Max[i] = max(g.Bounds.Max[i], v.Position[i])
		}
	}
}

// grid appends a (segX+1)x(segY+1) vertex lattice spanning a rectangle
// centred on origin. right and up span the rectangle, normal faces out.
func (g *Geometry) grid(origin, right, up, normal [3]float32, width, height float32, segX, segY int) {
	segX = max(segX, 1)
	segY = max(segY, 1)
	base := uint32(len(g.Vertices))
	row := uint32(segX + 1)

	for iy := 0; iy <= segY; iy++ {
		fy := 0.5 - float32(iy)/float32(segY)
		for ix := 0; ix <= segX; ix++ {
			fx := float32(ix)/float32(segX) - 0.5
			var p [3]float32
			for i := 0; i < 3; i++ {
				p[i] = origin[i] + right[i]*fx*width + up[i]*fy*height
			}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   normal,
				TexCoord: [2]float32{float32(ix) / float32(segX), 1 - float32(iy)/float32(segY)},
			})
		}
	}

	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := base + uint32(ix) + row*uint32(iy)
			b := base + uint32(ix) + row*uint32(iy+1)
			c := base + uint32(ix+1) + row*uint32(iy+1)
			d := base + uint32(ix+1) + row*uint32(iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
}

// Plane builds a width x height rectangle in the XY plane facing +Z.
func Plane(width, height float32, segX, segY int) *Geometry {
	g := &Geometry{Name: "plane"}
	g.grid([3]float32{}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}, width, height, segX, segY)
	g.computeBounds()
	return g
}

// Box builds an axis-aligned box centred on the origin. Each face has its
// own four vertices so normals and UVs stay flat.
func Box(width, height, depth float32) *Geometry {
	g := &Geometry{Name: "box"}
	hw, hh, hd := width/2, height/2, depth/2

	faces := []struct {
		origin, right, up, normal [3]float32
		w, h                      float32
	}{
		{[3]float32{hw, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}, [3]float32{1, 0, 0}, depth, height},
		{[3]float32{-hw, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, 1, 0}, [3]float32{-1, 0, 0}, depth, height},
		{[3]float32{0, hh, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, -1}, [3]float32{0, 1, 0}, width, depth},
		{[3]float32{0, -hh, 0}, [3]float32{1, 0, 0}, [3]float32{0, 0, 1}, [3]float32{0, -1, 0}, width, depth},
		{[3]float32{0, 0, hd}, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}, width, height},
		{[3]float32{0, 0, -hd}, [3]float32{-1, 0, 0}, [3]float32{0, 1, 0}, [3]float32{0, 0, -1}, width, height},
	}
	for _, f := range faces {
		g.grid(f.origin, f.right, f.up, f.normal, f.w, f.h, 1, 1)
	}

	g.computeBounds()
	return g
}

// Cone builds a closed cone with its apex at +height/2 and its base cap at
// -height/2. With four radial segments it forms a square pyramid.
func Cone(radius, height float32, radialSegments int) *Geometry {
	g := &Geometry{Name: "cone"}
	radialSegments = max(radialSegments, 3)
	half := height / 2
	slope := radius / height

	// Side: apex ring (v=0) then base ring (v=1).
	for iy := 0; iy <= 1; iy++ {
		r := float32(iy) * radius
		y := half - float32(iy)*height
		for ix := 0; ix <= radialSegments; ix++ {
			u := float32(ix) / float32(radialSegments)
			sin, cos := sincos(u * 2 * math.Pi)
			g.Vertices = append(g.Vertices, Vertex{
				Position: [3]float32{r * sin, y, r * cos},
				Normal:   normalize([3]float32{sin, slope, cos}),
				TexCoord: [2]float32{u, 1 - float32(iy)},
			})
		}
	}
	row := uint32(radialSegments + 1)
	for ix := uint32(0); ix < uint32(radialSegments); ix++ {
		b := row + ix
		c := row + ix + 1
		d := ix + 1
		g.Indices = append(g.Indices, b, c, d)
	}

	// Base cap.
	centerStart := uint32(len(g.Vertices))
	for ix := 0; ix < radialSegments; ix++ {
		g.Vertices = append(g.Vertices, Vertex{
			Position: [3]float32{0, -half, 0},
			Normal:   [3]float32{0, -1, 0},
			TexCoord: [2]float32{0.5, 0.5},
		})
	}
	ringStart := uint32(len(g.Vertices))
	for ix := 0; ix <= radialSegments; ix++ {
		u := float32(ix) / float32(radialSegments)
		sin, cos := sincos(u * 2 * math.Pi)
		g.Vertices = append(g.Vertices, Vertex{
			Position: [3]float32{radius * sin, -half, radius * cos},
			Normal:   [3]float32{0, -1, 0},
			TexCoord: [2]float32{cos*0.5 + 0.5, -sin*0.5 + 0.5},
		})
	}
	for ix := uint32(0); ix < uint32(radialSegments); ix++ {
		c := centerStart + ix
		i := ringStart + ix
		g.Indices = append(g.Indices, i+1, i, c)
	}

	g.computeBounds()
	return g
}

// Sphere builds a UV sphere centred on the origin.
func Sphere(radius float32, widthSegments, heightSegments int) *Geometry {
	g := &Geometry{Name: "sphere"}
	widthSegments = max(widthSegments, 3)
	heightSegments = max(heightSegments, 2)
	row := uint32(widthSegments + 1)

	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}
		sinV, cosV := sincos(v * math.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinU, cosU := sincos(u * 2 * math.Pi)
			p := [3]float32{-radius * cosU * sinV, radius * cosV, radius * sinU * sinV}
			g.Vertices = append(g.Vertices, Vertex{
				Position: p,
				Normal:   normalize(p),
				TexCoord: [2]float32{u + uOffset, 1 - v},
			})
		}
	}

	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := uint32(iy)*row + uint32(ix+1)
			b := uint32(iy)*row + uint32(ix)
			c := uint32(iy+1)*row + uint32(ix)
			d := uint32(iy+1)*row + uint32(ix+1)
			if iy != 0 {
				g.Indices = append(g.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				g.Indices = append(g.Indices, b, c, d)
			}
		}
	}

	g.computeBounds()
	return g
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

func normalize(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
