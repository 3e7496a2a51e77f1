package spherecubed

import (
	"math"
	"time"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/akmonengine/spherecubed/constraint"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
)

const (
	GRAVITY          = 9.81
	MINIMUM_VELOCITY = 0.05
	// MaxMoveIterations bounds the sweep of one tick. The displacement left
	// when it is reached is dropped.
	MaxMoveIterations = 64
	// MaxSweep is the longest distance swept in one iteration, in cube sizes.
	// It stays under half a cube so a face is always tested before it is crossed.
	MaxSweep = 0.45
)

// Grid is the level geometry the physics collides with
type Grid interface {
	CubeAtPosition(x, y, z int) bool
	InsideLevel(position mgl64.Vec3) bool
	PlayerOnACube(position mgl64.Vec3) bool
	PlayerOnPlane(position mgl64.Vec3) bool
	CubeSize() float64
	StartPosition() mgl64.Vec3
}

// Physics moves the player through the grid, one fixed time step per Tick.
// It keeps no state between ticks.
type Physics struct {
	Level    Grid
	Player   *actor.Player
	Interval time.Duration

	contact  constraint.Contact
	halfCube float64
	radius   float64
}

func NewPhysics(interval time.Duration, level Grid, player *actor.Player) *Physics {
	return &Physics{
		Level:    level,
		Player:   player,
		Interval: interval,
		contact:  constraint.NewContact(),
	}
}

// Tick applies the accumulated force, then moves the player for one interval.
// It returns the contacts resolved during the move.
func (p *Physics) Tick() []constraint.Contact {
	p.halfCube = p.Level.CubeSize() / 2
	p.radius = p.Player.Radius()

	p.forces()
	return p.movement()
}

func (p *Physics) dt() float64 {
	return p.Interval.Seconds()
}

func (p *Physics) forces() {
	player := p.Player
	dt := p.dt()

	acceleration := player.Force().Mul(1.0 / player.Material.Mass)
	player.ClearForces()

	if p.Level.PlayerOnACube(player.Position()) {
		// A ball at rest has no direction to resist
		if player.Velocity.Len() > 0 {
			resistance := player.Material.RollingResistance * player.Material.Mass * -GRAVITY
			acceleration = acceleration.Add(player.Velocity.Normalize().Mul(resistance))
		}
	} else {
		acceleration = acceleration.Add(mgl64.Vec3{0, -GRAVITY, 0})
	}

	player.Velocity = player.Velocity.Add(acceleration.Mul(dt))

	if player.Velocity.Len() > player.TerminalVelocity {
		player.Velocity = player.Velocity.Normalize().Mul(player.TerminalVelocity)
	}

	velocity, clamped := constraint.ClampSmall(player.Velocity, MINIMUM_VELOCITY)
	player.Velocity = velocity
	if clamped[1] {
		// Snap on the cube surface, gravity would make it oscillate otherwise
		position := player.Position()
		position[1] = math.Round(position.Y())
		player.SetPosition(position)
	}
}

func (p *Physics) movement() []constraint.Contact {
	position := p.Player.Position()
	displacement := p.Player.Velocity.Mul(p.dt())

	var contacts []constraint.Contact
	for i := 0; displacement.Len() > 0; i++ {
		if i == MaxMoveIterations {
			log.Debug().
				Int("iterations", i).
				Float64("dropped", displacement.Len()).
				Msg("movement did not converge")
			break
		}

		var hit bool
		position, displacement, hit = p.sweep(position, displacement)
		if hit {
			contacts = append(contacts, p.contact)
		}
	}

	p.Player.SetPosition(position)
	return contacts
}

// sweep moves position along at most MaxSweep of displacement, up to the nearest
// contact if any. It returns the new position and the displacement left to travel.
func (p *Physics) sweep(position, displacement mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	step := displacement
	if limit := MaxSweep * p.Level.CubeSize(); step.Len() > limit {
		step = step.Mul(limit / step.Len())
	}

	p.collisionDetection(position, step)
	return p.collisionResponse(position, displacement, step)
}

// collisionResponse moves to the contact found by collisionDetection, or along the
// whole step when there is none. A contact reflects what is left of displacement
// and the player velocity about its normal, both damped.
func (p *Physics) collisionResponse(position, displacement, step mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3, bool) {
	defer p.updateDirection()

	if !p.contact.Found() {
		p.Player.Transform.Roll(step)
		return position.Add(step), displacement.Sub(step), false
	}

	p.contact.Normal = constraint.DefuzzVec(p.contact.Normal)
	reflection := constraint.Reflect(step.Normalize(), p.contact.Normal)

	move := step.Mul(p.contact.Distance / step.Len())
	position = constraint.DefuzzVec(position.Add(move))
	p.Player.Transform.Roll(move)

	rest := reflection.Mul(math.Max(0, displacement.Len()-move.Len()) * constraint.Damping)
	p.Player.Velocity = reflection.Mul(p.Player.Velocity.Len() * constraint.Damping)

	// A bounce gravity cancels within one tick lands the ball on the plane
	if p.contact.Normal == actor.Up && p.Player.Velocity.Y() < GRAVITY*p.dt() {
		p.Player.Velocity[1] = 0
		rest[1] = 0
	}

	return position, rest, true
}

// updateDirection turns the heading toward the horizontal velocity, when moving
func (p *Physics) updateDirection() {
	heading := mgl64.Vec3{p.Player.Velocity.X(), 0, p.Player.Velocity.Z()}
	if heading.Len() > MINIMUM_VELOCITY {
		p.Player.Direction = heading.Normalize()
	}
}
