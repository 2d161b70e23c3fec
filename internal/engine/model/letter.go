// Package model holds the static mesh drawn by the demo.
package model

import (
	gomath "math"

	"github.com/Faultbox/dirlight/pkg/math"
)

// face is one rectangular side of the extruded letter, split into two
// triangles. Vertices are authored with +Y pointing down; normals are
// given for the flipped (+Y up) orientation.
type face struct {
	name   string
	normal math.Vec3
	verts  [6][3]float32
}

// Authoring box of the letter before centring.
const (
	letterWidth  = 100
	letterHeight = 150
	letterDepth  = 30
)

var (
	front = math.Vec3{X: 0, Y: 0, Z: 1}
	back  = math.Vec3{X: 0, Y: 0, Z: -1}
)

var letterFaces = []face{
	{"left column front", front, [6][3]float32{
		{0, 0, 0}, {0, 150, 0}, {30, 0, 0},
		{0, 150, 0}, {30, 150, 0}, {30, 0, 0},
	}},
	{"top rung front", front, [6][3]float32{
		{30, 0, 0}, {30, 30, 0}, {70, 0, 0},
		{30, 30, 0}, {70, 30, 0}, {70, 0, 0},
	}},
	{"right column front", front, [6][3]float32{
		{70, 50, 0}, {70, 100, 0}, {100, 50, 0},
		{70, 100, 0}, {100, 100, 0}, {100, 50, 0},
	}},
	{"top diagonal front", front, [6][3]float32{
		{50, 30, 0}, {70, 60, 0}, {70, 30, 0},
		{70, 0, 0}, {70, 50, 0}, {100, 50, 0},
	}},
	{"bottom diagonal front", front, [6][3]float32{
		{50, 120, 0}, {70, 120, 0}, {70, 90, 0},
		{70, 100, 0}, {70, 150, 0}, {100, 100, 0},
	}},
	{"bottom rung front", front, [6][3]float32{
		{30, 120, 0}, {30, 150, 0}, {70, 150, 0},
		{70, 120, 0}, {30, 120, 0}, {70, 150, 0},
	}},

	{"left column back", back, [6][3]float32{
		{0, 0, 30}, {30, 0, 30}, {0, 150, 30},
		{0, 150, 30}, {30, 0, 30}, {30, 150, 30},
	}},
	{"top rung back", back, [6][3]float32{
		{30, 0, 30}, {70, 0, 30}, {30, 30, 30},
		{30, 30, 30}, {70, 0, 30}, {70, 30, 30},
	}},
	{"right column back", back, [6][3]float32{
		{70, 50, 30}, {100, 50, 30}, {70, 100, 30},
		{70, 100, 30}, {100, 50, 30}, {100, 100, 30},
	}},
	{"top diagonal back", back, [6][3]float32{
		{70, 60, 30}, {50, 30, 30}, {70, 30, 30},
		{70, 50, 30}, {70, 0, 30}, {100, 50, 30},
	}},
	{"bottom diagonal back", back, [6][3]float32{
		{70, 120, 30}, {50, 120, 30}, {70, 90, 30},
		{70, 150, 30}, {70, 100, 30}, {100, 100, 30},
	}},
	{"bottom rung back", back, [6][3]float32{
		{30, 150, 30}, {30, 120, 30}, {70, 150, 30},
		{30, 120, 30}, {70, 120, 30}, {70, 150, 30},
	}},

	{"top", math.Vec3{X: 0, Y: 1, Z: 0}, [6][3]float32{
		{0, 0, 0}, {70, 0, 0}, {70, 0, 30},
		{0, 0, 0}, {70, 0, 30}, {0, 0, 30},
	}},
	{"top diagonal right", math.Vec3{X: 1, Y: 1, Z: 0}, [6][3]float32{
		{70, 0, 0}, {100, 50, 0}, {100, 50, 30},
		{70, 0, 0}, {100, 50, 30}, {70, 0, 30},
	}},
	{"bottom diagonal right", math.Vec3{X: 1, Y: -1, Z: 0}, [6][3]float32{
		{100, 100, 0}, {70, 150, 0}, {100, 100, 30},
		{100, 100, 30}, {70, 150, 0}, {70, 150, 30},
	}},
	{"under top rung", math.Vec3{X: 0, Y: -1, Z: 0}, [6][3]float32{
		{30, 30, 0}, {30, 30, 30}, {50, 30, 30},
		{30, 30, 0}, {50, 30, 30}, {50, 30, 0},
	}},
	{"top of bottom rung", math.Vec3{X: 0, Y: 1, Z: 0}, [6][3]float32{
		{30, 120, 0}, {50, 120, 30}, {30, 120, 30},
		{30, 120, 0}, {50, 120, 0}, {50, 120, 30},
	}},
	{"right of right column", math.Vec3{X: 1, Y: 0, Z: 0}, [6][3]float32{
		{100, 50, 0}, {100, 100, 30}, {100, 50, 30},
		{100, 50, 0}, {100, 100, 0}, {100, 100, 30},
	}},
	{"right of left column", math.Vec3{X: 1, Y: 0, Z: 0}, [6][3]float32{
		{30, 30, 0}, {30, 120, 30}, {30, 30, 30},
		{30, 30, 0}, {30, 120, 0}, {30, 120, 30},
	}},
	{"bottom", math.Vec3{X: 0, Y: -1, Z: 0}, [6][3]float32{
		{0, 150, 0}, {0, 150, 30}, {70, 150, 30},
		{0, 150, 0}, {70, 150, 30}, {70, 150, 0},
	}},
	{"left of left column", math.Vec3{X: -1, Y: 0, Z: 0}, [6][3]float32{
		{0, 0, 0}, {0, 0, 30}, {0, 150, 30},
		{0, 0, 0}, {0, 150, 30}, {0, 150, 0},
	}},
	{"left of right column", math.Vec3{X: -1, Y: 0, Z: 0}, [6][3]float32{
		{70, 60, 0}, {70, 60, 30}, {70, 90, 30},
		{70, 60, 0}, {70, 90, 30}, {70, 90, 0},
	}},
	{"top diagonal left", math.Vec3{X: -1, Y: -1, Z: 0}, [6][3]float32{
		{70, 60, 0}, {50, 30, 0}, {70, 60, 30},
		{70, 60, 30}, {50, 30, 0}, {50, 30, 30},
	}},
	{"bottom diagonal left", math.Vec3{X: -1, Y: 1, Z: 0}, [6][3]float32{
		{50, 120, 0}, {70, 90, 0}, {70, 90, 30},
		{50, 120, 0}, {70, 90, 30}, {50, 120, 30},
	}},
}

// LetterVertexCount is the number of vertices in the letter mesh.
const LetterVertexCount = 24 * 6

// Mesh is a non-indexed triangle list with one normal per vertex.
type Mesh struct {
	Positions []float32
	Normals   []float32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// LetterMesh builds the extruded letter centred on the origin with +Y up.
// The authored data is rotated half a turn around X after being shifted by
// half its size, so the transform runs once here and never at draw time.
func LetterMesh() *Mesh {
	center := math.RotateX(gomath.Pi).Mul(math.Translate(
		-letterWidth/2, -letterHeight/2, -letterDepth/2,
	))

	m := &Mesh{
		Positions: make([]float32, 0, LetterVertexCount*3),
		Normals:   make([]float32, 0, LetterVertexCount*3),
	}
	for _, f := range letterFaces {
		n := f.normal.Normalize()
		for _, v := range f.verts {
			p := center.TransformPoint(v)
			m.Positions = append(m.Positions, p[0], p[1], p[2])
			m.Normals = append(m.Normals, n.X, n.Y, n.Z)
		}
	}
	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Bounds returns the bounding box of the mesh positions.
func (m *Mesh) Bounds() Bounds {
	b := Bounds{
		Min: [3]float32{1e10, 1e10, 1e10},
		Max: [3]float32{-1e10, -1e10, -1e10},
	}
	for i := 0; i+2 < len(m.Positions); i += 3 {
		for axis := 0; axis < 3; axis++ {
			v := m.Positions[i+axis]
			if v < b.Min[axis] {
				b.Min[axis] = v
			}
			if v > b.Max[axis] {
				b.Max[axis] = v
			}
		}
	}
	return b
}

// Center returns the center of the bounding box.
func (b Bounds) Center() [3]float32 {
	return [3]float32{
		(b.Min[0] + b.Max[0]) / 2,
		(b.Min[1] + b.Max[1]) / 2,
		(b.Min[2] + b.Max[2]) / 2,
	}
}
