package actor

import "github.com/go-gl/mathgl/mgl64"

// Sphere is the collision shape of the player
type Sphere struct {
	Radius float64
	aabb   AABB
}

func (s *Sphere) ComputeAABB(transform Transform) {
	// Sphere AABB is not affected by rotation, only by position
	r := mgl64.Vec3{s.Radius, s.Radius, s.Radius}
	s.aabb = AABB{
		Min: transform.Position.Sub(r),
		Max: transform.Position.Add(r),
	}
}

func (s *Sphere) GetAABB() AABB {
	return s.aabb
}
