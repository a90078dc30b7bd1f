package r3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

/*
transform of a single renderable:
	position is stored for placement but not applied yet
	scale is uniform on all three axes
*/

type Transform struct {
	Position mgl32.Vec3
	Scale    float32
}

func NewTransform() Transform {
	return Transform{Scale: 1.0}
}

// ModelMatrix is diag(scale, scale, scale, 1). Position is not part of it,
// objects are always drawn at the origin.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	return mgl32.Diag4(mgl32.Vec4{t.Scale, t.Scale, t.Scale, 1})
}
