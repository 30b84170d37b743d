// Package mesh builds the indexed triangle meshes the renderer uploads.
package mesh

import "github.com/morivert/scrollstage/pkg/math"

// Vertex represents a mesh vertex with position, normal, and texture coordinates.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
	TexCoord [2]float32
}

// Mesh holds indexed triangles ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

func emptyBounds() Bounds {
	return Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
}

func (b *Bounds) grow(p [3]float32) {
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] {
			b.Min[i] = p[i]
		}
		if p[i] > b.Max[i] {
			b.Max[i] = p[i]
		}
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}

func (m *Mesh) recomputeBounds() {
	m.Bounds = emptyBounds()
	for i := range m.Vertices {
		m.Bounds.grow(m.Vertices[i].Position)
	}
}

// Transform applies t to every vertex in place. Normals are rotated but not
// scaled, so t should carry uniform or no scale when lighting matters.
func (m *Mesh) Transform(t math.Transform) *Mesh {
	for i := range m.Vertices {
		v := &m.Vertices[i]
		p := t.Apply(math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]})
		n := t.Rotation.Rotate(math.Vec3{X: v.Normal[0], Y: v.Normal[1], Z: v.Normal[2]}).Normalize()
		v.Position = p.Array()
		v.Normal = n.Array()
	}
	m.recomputeBounds()
	return m
}

// Merge appends the triangles of others to m.
func (m *Mesh) Merge(others ...*Mesh) *Mesh {
	for _, o := range others {
		base := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, o.Vertices...)
		for _, idx := range o.Indices {
			m.Indices = append(m.Indices, base+idx)
		}
	}
	m.recomputeBounds()
	return m
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}
