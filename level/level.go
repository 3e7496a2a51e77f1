package level

import (
	"math"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// PlaneTolerance is how far from an integer height a position still sits on a plane
const PlaneTolerance = 1e-4

// Level is a grid of cubes, indexed Cubes[z][x]. It is read only once loaded.
type Level struct {
	Rows  int
	Cols  int
	Cubes [][]Cube
	Start mgl64.Vec3

	cubeSize float64
}

// New builds a level from a grid of rows, and derives the start position
func New(cubes [][]Cube) *Level {
	l := &Level{
		Rows:     len(cubes),
		Cubes:    cubes,
		cubeSize: DEFAULT_CUBE_SIZE,
	}
	if l.Rows > 0 {
		l.Cols = len(cubes[0])
	}

	for _, row := range cubes {
		for _, cube := range row {
			if cube.Type == START {
				l.Start = cube.Position.Add(mgl64.Vec3{0, 1, 0})
			}
		}
	}
	computeFaces(l)

	return l
}

func (l *Level) CubeSize() float64 {
	if l.cubeSize == 0 {
		return DEFAULT_CUBE_SIZE
	}
	return l.cubeSize
}

func (l *Level) StartPosition() mgl64.Vec3 {
	return l.Start
}

// CubeAt returns the cell at column x, row z
func (l *Level) CubeAt(x, z int) (Cube, bool) {
	if z < 0 || z >= l.Rows || x < 0 || x >= l.Cols {
		return Cube{}, false
	}
	return l.Cubes[z][x], true
}

// CubeAtPosition reports whether a solid cube of height y exists at column x, row z.
// Out of range coordinates are never occupied.
func (l *Level) CubeAtPosition(x, y, z int) bool {
	cube, ok := l.CubeAt(x, z)
	if !ok || !cube.Solid() {
		return false
	}
	return cube.Height() == y
}

// InsideLevel reports whether the footprint of position is part of the grid
func (l *Level) InsideLevel(position mgl64.Vec3) bool {
	x := int(math.Round(position.X()))
	z := int(math.Round(position.Z()))

	return z >= 0 && z < l.Rows && x >= 0 && x < l.Cols
}

// PlayerOnPlane reports whether position sits on an integer height
func (l *Level) PlayerOnPlane(position mgl64.Vec3) bool {
	return math.Abs(position.Y()-math.Round(position.Y())) < PlaneTolerance
}

// PlayerOnACube reports whether a sphere centered on position rests on a cube:
// either the cube under its footprint, or a cube sharing the edge or the corner it sits on.
func (l *Level) PlayerOnACube(position mgl64.Vec3) bool {
	if !l.PlayerOnPlane(position) {
		return false
	}

	x := int(math.Round(position.X()))
	y := int(math.Round(position.Y())) - 1
	z := int(math.Round(position.Z()))

	if l.CubeAtPosition(x, y, z) {
		return true
	}

	sx := edgeSide(position.X() - float64(x))
	sz := edgeSide(position.Z() - float64(z))

	if sx != 0 && l.CubeAtPosition(x+sx, y, z) {
		return true
	}
	if sz != 0 && l.CubeAtPosition(x, y, z+sz) {
		return true
	}
	if sx != 0 && sz != 0 && l.CubeAtPosition(x+sx, y, z+sz) {
		return true
	}

	return false
}

// Bounds returns the box of the cell at column x, row z
func (l *Level) Bounds(x, z int) actor.AABB {
	cube, _ := l.CubeAt(x, z)
	return cube.Bounds(l.CubeSize())
}

// FinishAt reports whether position rests on a finish cube
func (l *Level) FinishAt(position mgl64.Vec3) bool {
	if !l.PlayerOnPlane(position) {
		return false
	}

	cube, ok := l.CubeAt(int(math.Round(position.X())), int(math.Round(position.Z())))
	if !ok || cube.Type != FINISH {
		return false
	}

	// The point one cube under the center is inside the cube the sphere rests on
	below := position.Sub(mgl64.Vec3{0, l.CubeSize(), 0})
	return cube.Bounds(l.CubeSize()).ContainsPoint(below)
}

// Count returns the number of cells of the given type
func (l *Level) Count(cubeType CubeType) int {
	n := 0
	for _, row := range l.Cubes {
		for _, cube := range row {
			if cube.Type == cubeType {
				n++
			}
		}
	}
	return n
}

// edgeSide returns -1 or +1 when offset lies on the border of the footprint, 0 otherwise
func edgeSide(offset float64) int {
	const half = DEFAULT_CUBE_SIZE / 2

	switch {
	case math.Abs(offset-half) < PlaneTolerance:
		return 1
	case math.Abs(offset+half) < PlaneTolerance:
		return -1
	}
	return 0
}
