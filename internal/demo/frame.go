package demo

import (
	"github.com/Faultbox/dirlight/internal/config"
	"github.com/Faultbox/dirlight/internal/engine/camera"
	"github.com/Faultbox/dirlight/pkg/math"
)

// CameraFromConfig builds the fixed camera from the scene section of the
// config.
func CameraFromConfig(c config.SceneConfig) *camera.LookAtCamera {
	cam := camera.NewLookAtCamera(math.V3(c.Camera), math.V3(c.Target))
	cam.Up = math.V3(c.Up)
	cam.FieldOfView = math.DegToRad(c.FieldOfViewDegrees)
	cam.Near = c.ZNear
	cam.Far = c.ZFar
	return cam
}

// Frame is the full set of matrices for one draw.
type Frame struct {
	Projection            math.Mat4
	View                  math.Mat4
	ViewProjection        math.Mat4
	World                 math.Mat4
	WorldViewProjection   math.Mat4
	WorldInverseTranspose math.Mat4
}

// ComputeFrame composes the transforms for the current state. aspect is
// width/height of the display surface; non-positive values fall back to 1.
// The world matrix is RotateY(rotation) * Translate(translation).
func ComputeFrame(cam *camera.LookAtCamera, st State, aspect float32) Frame {
	var f Frame
	f.Projection = cam.ProjectionMatrix(aspect)
	f.View = cam.ViewMatrix()
	f.ViewProjection = f.Projection.Mul(f.View)

	f.World = math.RotateY(st.RotationRadians).Translated(st.Translation)
	f.WorldViewProjection = f.ViewProjection.Mul(f.World)
	f.WorldInverseTranspose = f.World.Inverse().Transpose()
	return f
}
