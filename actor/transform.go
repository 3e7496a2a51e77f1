package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis, used as the reference for rolling.
var Up = mgl64.Vec3{0, 1, 0}

// Transform represents a position and an orientation in 3D space
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.QuatIdent(),
	}
}

// Roll composes onto the rotation the spin of a sphere rolling along displacement.
// Only the horizontal part of the displacement rolls the sphere.
// The angle in degrees is the distance / PI * 360.
func (t *Transform) Roll(displacement mgl64.Vec3) {
	rolling := mgl64.Vec3{displacement.X(), 0, displacement.Z()}
	axis := Up.Cross(rolling)
	if axis.Len() == 0 {
		return
	}

	angle := mgl64.DegToRad(rolling.Len() / math.Pi * 360.0)
	t.Rotation = mgl64.QuatRotate(angle, axis.Normalize()).Mul(t.Rotation).Normalize()
}
