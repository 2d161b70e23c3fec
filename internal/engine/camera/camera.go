// Package camera provides the fixed look-at camera used to view the mesh.
package camera

import (
	"github.com/Faultbox/dirlight/pkg/math"
)

// LookAtCamera sits at Position, looks at Target and projects with a
// symmetric perspective frustum.
type LookAtCamera struct {
	Position math.Vec3
	Target   math.Vec3
	Up       math.Vec3

	FieldOfView float32 // vertical, radians
	Near        float32
	Far         float32
}

// NewLookAtCamera creates a camera with a 60 degree field of view and a
// 1..2000 depth range.
func NewLookAtCamera(position, target math.Vec3) *LookAtCamera {
	return &LookAtCamera{
		Position:    position,
		Target:      target,
		Up:          math.Vec3{Y: 1},
		FieldOfView: math.DegToRad(60),
		Near:        1,
		Far:         2000,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *LookAtCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the perspective projection for a surface with
// the given width/height ratio. Non-positive ratios are treated as 1.
func (c *LookAtCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(c.FieldOfView, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *LookAtCamera) ViewProjection(aspect float32) math.Mat4 {
	return c.ProjectionMatrix(aspect).Mul(c.ViewMatrix())
}

// Distance returns how far the camera is from its target.
func (c *LookAtCamera) Distance() float32 {
	return c.Position.Distance(c.Target)
}
