package level

import (
	"fmt"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// DEFAULT_CUBE_SIZE is the edge length of every cube, in world units
const DEFAULT_CUBE_SIZE = 1.0

// CubeType is the tag of a grid cell, stored as a hex byte in level files
type CubeType uint8

const (
	HOLE     CubeType = 0x00
	START    CubeType = 0x01
	STANDARD CubeType = 0x02
	FINISH   CubeType = 0xFF
)

func (c CubeType) String() string {
	switch c {
	case HOLE:
		return "hole"
	case START:
		return "start"
	case STANDARD:
		return "standard"
	case FINISH:
		return "finish"
	}
	return fmt.Sprintf("unknown(%#02x)", uint8(c))
}

// Valid reports whether c is one of the known cube types
func (c CubeType) Valid() bool {
	switch c {
	case HOLE, START, STANDARD, FINISH:
		return true
	}
	return false
}

// Face is a bitmask of cube faces, only used as a render hint
type Face uint8

const (
	FaceTop Face = 1 << iota
	FaceBottom
	FaceLeft
	FaceRight
	FaceNear
	FaceFar
)

func (f Face) Has(face Face) bool {
	return f&face != 0
}

// Cube is a grid cell. Position is (x, height, z), the center of the cube.
type Cube struct {
	Position mgl64.Vec3
	Type     CubeType
	Faces    Face
}

// Solid reports whether the cube takes part in collisions
func (c Cube) Solid() bool {
	return c.Type != HOLE
}

func (c Cube) Height() int {
	return int(c.Position.Y())
}

// Bounds returns the box of the cube
func (c Cube) Bounds(size float64) actor.AABB {
	return actor.CubeBounds(c.Position, size)
}
