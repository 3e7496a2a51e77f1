package spherecubed

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// epsilon is the float32 machine epsilon the level geometry is tuned for
const epsilon = 1.1920929e-07

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// face is a side of the current cube, reached when travelling along axis in the
// direction of sign. Its outward normal opposes the travel.
type face struct {
	axis int
	sign float64
}

// Faces are tested far, near, left, right then bottom.
// The top face is never reached from inside a level.
var faces = [...]face{
	{axisZ, -1},
	{axisZ, +1},
	{axisX, -1},
	{axisX, +1},
	{axisY, -1},
}

// corner is a side of the current cube in the horizontal plane, sx and sz are -1 or +1
type corner struct {
	sx, sz float64
}

// Vertical edges and bottom corners are tested far right, near right, near left then far left
var corners = [...]corner{
	{+1, -1},
	{+1, +1},
	{-1, +1},
	{-1, -1},
}

// bottomEdge runs along axis at the floor of the current cube, on the given side
// of the other horizontal axis
type bottomEdge struct {
	axis int
	side int
	sign float64
}

// Bottom edges are tested far, near, right then left
var bottomEdges = [...]bottomEdge{
	{axisX, axisZ, -1},
	{axisX, axisZ, +1},
	{axisZ, axisX, +1},
	{axisZ, axisX, -1},
}

// collisionDetection finds the nearest contact of the sphere swept from position
// along displacement, against the cubes around the current one.
// The order of the tests breaks ties between contacts at the same distance.
func (p *Physics) collisionDetection(position, displacement mgl64.Vec3) {
	p.contact.Reset()

	if !p.Level.InsideLevel(position) {
		return
	}

	current := roundVec(position)
	destination := position.Add(displacement)

	for _, f := range faces {
		p.collisionFace(f, position, displacement, current)
	}
	for _, c := range corners {
		p.collisionVerticalEdge(c, position, displacement, current, destination)
	}
	for _, e := range bottomEdges {
		p.collisionBottomEdge(e, position, displacement, current, destination)
	}
	for _, c := range corners {
		p.collisionBottomCorner(c, position, displacement, current, destination)
	}
}

func (p *Physics) collisionFace(f face, position, displacement, current mgl64.Vec3) {
	if displacement[f.axis]*f.sign <= 0 {
		return
	}

	var normal mgl64.Vec3
	normal[f.axis] = -f.sign

	length := displacement.Len()
	distance := distanceOnRayToPlane(position, displacement, current, normal)
	if distance > length || distance >= p.contact.Distance {
		return
	}

	var offset mgl64.Vec3
	offset[f.axis] = f.sign * p.radius
	contact := position.Add(displacement.Mul(distance / length)).Add(offset)

	cube := roundVec(contact)
	if f.sign < 0 {
		cube[f.axis] = math.Floor(contact[f.axis])
	} else {
		cube[f.axis] = math.Ceil(contact[f.axis])
	}

	if p.occupied(cube) {
		p.contact.Set(distance, normal, cube)
	}
}

func (p *Physics) collisionVerticalEdge(c corner, position, displacement, current, destination mgl64.Vec3) {
	start := mgl64.Vec3{current.X() + c.sx*p.halfCube, 0, current.Z() + c.sz*p.halfCube}
	direction := mgl64.Vec3{0, 1, 0}

	distance, ok := p.edgeDistance(start, direction, position, displacement, destination)
	if !ok || p.contact.Distance-distance <= 0 {
		return
	}

	point := closestPointOnRay(start, direction, destination)
	cube := mgl64.Vec3{
		ceilOrFloor(point.X(), c.sx),
		math.Ceil(point.Y()),
		ceilOrFloor(point.Z(), c.sz),
	}

	if p.occupied(cube) {
		p.contact.Set(distance, normalize(destination.Sub(point)), cube)
	}
}

func (p *Physics) collisionBottomEdge(e bottomEdge, position, displacement, current, destination mgl64.Vec3) {
	var start, direction mgl64.Vec3
	start[axisY] = current.Y() - p.halfCube
	start[e.side] = current[e.side] + e.sign*p.halfCube
	direction[e.axis] = 1

	distance, ok := p.edgeDistance(start, direction, position, displacement, destination)
	if !ok || p.contact.Distance-distance <= 0 {
		return
	}

	point := closestPointOnRay(start, direction, destination)

	// The cube under the current one, then its neighbour across the edge
	below := roundVec(point)
	below[axisY] = math.Floor(point.Y())
	below[e.side] = ceilOrFloor(point[e.side], -e.sign)
	across := below
	across[e.side] += e.sign

	normal := normalize(destination.Sub(point))
	for _, cube := range [...]mgl64.Vec3{below, across} {
		if p.occupied(cube) {
			p.contact.Set(distance, normal, cube)
			return
		}
	}
}

func (p *Physics) collisionBottomCorner(c corner, position, displacement, current, destination mgl64.Vec3) {
	point := mgl64.Vec3{
		current.X() + c.sx*p.halfCube,
		current.Y() - p.halfCube,
		current.Z() + c.sz*p.halfCube,
	}

	distance := destination.Sub(point).Len() - p.radius
	if distance >= epsilon {
		return
	}

	percentage := contactPercentage(position.Sub(point).Len()-p.radius, distance)
	if !(percentage <= 1 && percentage > 0) {
		return
	}

	distance = displacement.Len() * percentage
	if p.contact.Distance-distance < 0 {
		return
	}

	// Diagonal first, then the two cubes sharing a face with the current one
	below := mgl64.Vec3{
		ceilOrFloor(point.X(), -c.sx),
		math.Floor(point.Y()),
		ceilOrFloor(point.Z(), -c.sz),
	}
	candidates := [...]mgl64.Vec3{
		below,
		below.Add(mgl64.Vec3{c.sx, 0, c.sz}),
		below.Add(mgl64.Vec3{0, 0, c.sz}),
		below.Add(mgl64.Vec3{c.sx, 0, 0}),
	}

	normal := normalize(position.Add(displacement.Mul(percentage)).Sub(point))
	for _, cube := range candidates {
		if p.occupied(cube) {
			p.contact.Set(distance, normal, cube)
			return
		}
	}
}

// edgeDistance returns the distance travelled along displacement before the
// sphere touches the edge ray, if it does within displacement
func (p *Physics) edgeDistance(start, direction, position, displacement, destination mgl64.Vec3) (float64, bool) {
	distance := distanceToLine(destination, start, direction) - p.radius
	if distance >= epsilon {
		return 0, false
	}

	percentage := contactPercentage(distanceToLine(position, start, direction)-p.radius, distance)
	if !(percentage <= 1 && percentage >= 0) {
		return 0, false
	}

	return displacement.Len() * percentage, true
}

func (p *Physics) occupied(cube mgl64.Vec3) bool {
	return p.Level.CubeAtPosition(int(cube.X()), int(cube.Y()), int(cube.Z()))
}

// contactPercentage interpolates where between the current and the destination
// distances the gap closes. A zero delta gives NaN, which fails every range check.
func contactPercentage(current, destination float64) float64 {
	delta := current - destination
	return 1.0 - (-destination / delta)
}

// distanceOnRayToPlane returns the distance along direction from start to the plane,
// or MaxFloat64 when the ray is parallel to the plane or moves away from it
func distanceOnRayToPlane(start, direction, planePoint, planeNormal mgl64.Vec3) float64 {
	if direction.Len() == 0 {
		return math.MaxFloat64
	}

	dot := direction.Normalize().Dot(planeNormal)
	if dot < epsilon && dot > -epsilon {
		return math.MaxFloat64
	}

	distance := planePoint.Sub(start).Dot(planeNormal) / dot
	if distance < -epsilon {
		return math.MaxFloat64
	}

	return distance
}

// closestPointOnRay projects point on the ray, direction must be a unit vector
func closestPointOnRay(start, direction, point mgl64.Vec3) mgl64.Vec3 {
	return start.Add(direction.Mul(direction.Dot(point.Sub(start))))
}

func distanceToLine(point, start, direction mgl64.Vec3) float64 {
	return point.Sub(closestPointOnRay(start, direction, point)).Len()
}

// normalize returns the zero vector instead of NaNs for a zero length input
func normalize(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

func roundVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Round(v.X()), math.Round(v.Y()), math.Round(v.Z())}
}

func ceilOrFloor(v, sign float64) float64 {
	if sign > 0 {
		return math.Ceil(v)
	}
	return math.Floor(v)
}
