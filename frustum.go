package spherecubed

import (
	"math"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Visibility of a box against the frustum
type Visibility uint8

const (
	Out Visibility = iota
	On
	In
)

const (
	planeTop = iota
	planeBottom
	planeLeft
	planeRight
	planeNear
	planeFar
	planeCount
)

// Plane is n·p + d = 0, with n pointing inside the frustum
type Plane struct {
	Normal mgl64.Vec3
	D      float64
}

// NewPlane builds the plane through three points given counter clockwise
func NewPlane(p1, p2, p3 mgl64.Vec3) Plane {
	normal := normalize(p1.Sub(p2).Cross(p3.Sub(p2)))

	return Plane{Normal: normal, D: -normal.Dot(p2)}
}

// Distance is signed, negative behind the plane
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is the viewing volume of the play camera, used to skip cubes out of sight
type Frustum struct {
	nearDistance, farDistance float64
	nearWidth, nearHeight     float64
	farWidth, farHeight       float64

	planes [planeCount]Plane
}

// Projection sets the size of the near and far planes. fov is in degrees.
func (f *Frustum) Projection(fov, ratio, near, far float64) {
	tangent := math.Tan(mgl64.DegToRad(fov * 0.5))

	f.nearDistance = near
	f.farDistance = far
	f.nearHeight = near * tangent
	f.nearWidth = f.nearHeight * ratio
	f.farHeight = far * tangent
	f.farWidth = f.farHeight * ratio
}

// View places the frustum planes for a camera at eye looking at focus
func (f *Frustum) View(eye, focus, up mgl64.Vec3) {
	z := normalize(eye.Sub(focus))
	x := normalize(up.Cross(z))
	y := z.Cross(x)

	nearCenter := eye.Sub(z.Mul(f.nearDistance))
	farCenter := eye.Sub(z.Mul(f.farDistance))

	nearTopLeft := nearCenter.Add(y.Mul(f.nearHeight)).Sub(x.Mul(f.nearWidth))
	nearTopRight := nearCenter.Add(y.Mul(f.nearHeight)).Add(x.Mul(f.nearWidth))
	nearBottomLeft := nearCenter.Sub(y.Mul(f.nearHeight)).Sub(x.Mul(f.nearWidth))
	nearBottomRight := nearCenter.Sub(y.Mul(f.nearHeight)).Add(x.Mul(f.nearWidth))

	farTopLeft := farCenter.Add(y.Mul(f.farHeight)).Sub(x.Mul(f.farWidth))
	farTopRight := farCenter.Add(y.Mul(f.farHeight)).Add(x.Mul(f.farWidth))
	farBottomLeft := farCenter.Sub(y.Mul(f.farHeight)).Sub(x.Mul(f.farWidth))
	farBottomRight := farCenter.Sub(y.Mul(f.farHeight)).Add(x.Mul(f.farWidth))

	f.planes[planeTop] = NewPlane(farTopLeft, nearTopLeft, nearTopRight)
	f.planes[planeBottom] = NewPlane(farBottomRight, nearBottomRight, nearBottomLeft)
	f.planes[planeLeft] = NewPlane(farBottomLeft, nearBottomLeft, nearTopLeft)
	f.planes[planeRight] = NewPlane(farBottomRight, nearTopRight, nearBottomRight)
	f.planes[planeNear] = NewPlane(nearBottomRight, nearTopRight, nearTopLeft)
	f.planes[planeFar] = NewPlane(farBottomLeft, farTopLeft, farTopRight)
}

func (f *Frustum) PointViewable(point mgl64.Vec3) bool {
	for _, plane := range f.planes {
		if plane.Distance(point) < 0 {
			return false
		}
	}
	return true
}

// BoxViewable returns Out as soon as every corner is behind one plane,
// and On as soon as a plane splits the corners.
func (f *Frustum) BoxViewable(box actor.AABB) Visibility {
	corners := box.Corners()

	for _, plane := range f.planes {
		inside, outside := 0, 0
		for _, corner := range corners {
			if plane.Distance(corner) < 0 {
				outside++
			} else {
				inside++
			}
			if inside != 0 && outside != 0 {
				break
			}
		}

		if inside == 0 {
			return Out
		}
		if outside > 0 {
			return On
		}
	}

	return In
}
