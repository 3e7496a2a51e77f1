package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// CubeBounds returns the box of a cube of the given size centered on center
func CubeBounds(center mgl64.Vec3, size float64) AABB {
	half := mgl64.Vec3{size / 2, size / 2, size / 2}

	return AABB{Min: center.Sub(half), Max: center.Add(half)}
}

// ContainsPoint reports whether point lies in the box, faces included
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	for i := range 3 {
		if point[i] < a.Min[i] || point[i] > a.Max[i] {
			return false
		}
	}
	return true
}

// Corners returns the 8 corners, bottom ones first
func (a AABB) Corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{a.Min.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Min.Z()},
		{a.Max.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Min.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Min.Z()},
		{a.Max.X(), a.Max.Y(), a.Max.Z()},
		{a.Min.X(), a.Max.Y(), a.Max.Z()},
	}
}
