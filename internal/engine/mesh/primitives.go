package mesh

import (
	gomath "math"

	"github.com/morivert/scrollstage/pkg/math"
)

// Cylinder builds a capped cylinder along Y centered at the origin, with
// radiusTop at +height/2 and radiusBottom at -height/2. Either radius may
// be zero for a cone.
func Cylinder(radiusTop, radiusBottom, height float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	m := &Mesh{}
	half := height / 2
	// Side normals tilt by the slope between the two radii.
	slope := (radiusBottom - radiusTop) / height

	for row := 0; row <= 1; row++ {
		y := half - float32(row)*height
		r := radiusTop
		if row == 1 {
			r = radiusBottom
		}
		for s := 0; s <= segments; s++ {
			u := float32(s) / float32(segments)
			theta := float64(u) * 2 * gomath.Pi
			sin, cos := float32(gomath.Sin(theta)), float32(gomath.Cos(theta))
			n := math.Vec3{X: sin, Y: slope, Z: cos}.Normalize()
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{r * sin, y, r * cos},
				Normal:   n.Array(),
				TexCoord: [2]float32{u, float32(row)},
			})
		}
	}
	stride := uint32(segments + 1)
	for s := uint32(0); s < uint32(segments); s++ {
		a, b := s, s+stride
		m.Indices = append(m.Indices, a, b, a+1, b, b+1, a+1)
	}

	if radiusTop > 0 {
		addCap(m, radiusTop, half, 1, segments)
	}
	if radiusBottom > 0 {
		addCap(m, radiusBottom, -half, -1, segments)
	}
	m.recomputeBounds()
	return m
}

func addCap(m *Mesh, radius, y, dir float32, segments int) {
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{
		Position: [3]float32{0, y, 0},
		Normal:   [3]float32{0, dir, 0},
		TexCoord: [2]float32{0.5, 0.5},
	})
	for s := 0; s <= segments; s++ {
		theta := float64(s) / float64(segments) * 2 * gomath.Pi
		sin, cos := float32(gomath.Sin(theta)), float32(gomath.Cos(theta))
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{radius * sin, y, radius * cos},
			Normal:   [3]float32{0, dir, 0},
			TexCoord: [2]float32{0.5 + sin/2, 0.5 + cos/2},
		})
	}
	for s := uint32(0); s < uint32(segments); s++ {
		a, b := center+1+s, center+2+s
		if dir > 0 {
			m.Indices = append(m.Indices, center, a, b)
		} else {
			m.Indices = append(m.Indices, center, b, a)
		}
	}
}

// Cone builds a cone along Y with its apex at +height/2.
func Cone(radius, height float32, segments int) *Mesh {
	return Cylinder(0, radius, height, segments)
}

// Sphere builds a UV sphere centered at the origin.
func Sphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	m := &Mesh{}
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		phi := float64(v) * gomath.Pi
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			theta := float64(u) * 2 * gomath.Pi
			n := [3]float32{
				float32(-gomath.Cos(theta) * gomath.Sin(phi)),
				float32(gomath.Cos(phi)),
				float32(gomath.Sin(theta) * gomath.Sin(phi)),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
				TexCoord: [2]float32{u, 1 - v},
			})
		}
	}
	stride := uint32(widthSegments + 1)
	for iy := uint32(0); iy < uint32(heightSegments); iy++ {
		for ix := uint32(0); ix < uint32(widthSegments); ix++ {
			a := iy*stride + ix + 1
			b := iy*stride + ix
			c := (iy+1)*stride + ix
			d := (iy+1)*stride + ix + 1
			if iy != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if iy != uint32(heightSegments)-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	m.recomputeBounds()
	return m
}

// Plane builds a square in the XZ plane facing +Y.
func Plane(size float32) *Mesh {
	h := size / 2
	up := [3]float32{0, 1, 0}
	m := &Mesh{
		Vertices: []Vertex{
			{Position: [3]float32{-h, 0, -h}, Normal: up, TexCoord: [2]float32{0, 0}},
			{Position: [3]float32{-h, 0, h}, Normal: up, TexCoord: [2]float32{0, 1}},
			{Position: [3]float32{h, 0, h}, Normal: up, TexCoord: [2]float32{1, 1}},
			{Position: [3]float32{h, 0, -h}, Normal: up, TexCoord: [2]float32{1, 0}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	m.recomputeBounds()
	return m
}
