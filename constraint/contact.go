package constraint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// NoContact is the distance of a contact that has not been found
const NoContact = math.MaxFloat64

// Contact is the nearest collision found during one sweep of the player
type Contact struct {
	// Distance travelled along the displacement before touching
	Distance float64
	Normal   mgl64.Vec3
	// Grid position of the cube that was hit
	Cube mgl64.Vec3
}

func NewContact() Contact {
	return Contact{Distance: NoContact}
}

// Reset forgets any contact found so far
func (c *Contact) Reset() {
	c.Distance = NoContact
	c.Normal = mgl64.Vec3{}
	c.Cube = mgl64.Vec3{}
}

// Found reports whether a collision has been recorded
func (c Contact) Found() bool {
	return c.Distance != NoContact
}

// Set records a collision
func (c *Contact) Set(distance float64, normal, cube mgl64.Vec3) {
	c.Distance = distance
	c.Normal = normal
	c.Cube = cube
}
