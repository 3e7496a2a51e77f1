package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_MASS               = 0.010
	DEFAULT_RADIUS             = 0.5
	DEFAULT_ROLLING_RESISTANCE = 0.005
	DEFAULT_USER_STRENGTH      = 0.1
	DEFAULT_TERMINAL_VELOCITY  = 3.0
)

// DefaultDirection is the heading of a freshly loaded player
var DefaultDirection = mgl64.Vec3{0, 0, 1}

type Material struct {
	Mass              float64 // kg
	RollingResistance float64 // rolling resistance coefficient, typique : 0.005
}

// Player is the ball rolling through the level.
// Only the input mapping and Physics mutate it.
type Player struct {
	Transform Transform

	Velocity mgl64.Vec3 // cube units/s
	// Horizontal heading, used for input mapping and by the camera
	Direction mgl64.Vec3

	accumulatedForce mgl64.Vec3

	Material         Material
	Shape            *Sphere
	UserStrength     float64
	TerminalVelocity float64
}

// NewPlayer creates a player at the origin with the default attributes
func NewPlayer() *Player {
	p := &Player{
		Transform: NewTransform(),
		Direction: DefaultDirection,
		Material: Material{
			Mass:              DEFAULT_MASS,
			RollingResistance: DEFAULT_ROLLING_RESISTANCE,
		},
		Shape:            &Sphere{Radius: DEFAULT_RADIUS},
		UserStrength:     DEFAULT_USER_STRENGTH,
		TerminalVelocity: DEFAULT_TERMINAL_VELOCITY,
	}
	p.Shape.ComputeAABB(p.Transform)

	return p
}

// Reset places the player on start, without any motion
func (p *Player) Reset(start mgl64.Vec3) {
	p.Direction = DefaultDirection
	p.ClearForces()
	p.Velocity = mgl64.Vec3{}
	p.Transform = NewTransform()
	p.Transform.Position = start
	p.Shape.ComputeAABB(p.Transform)
}

func (p *Player) Position() mgl64.Vec3 {
	return p.Transform.Position
}

func (p *Player) SetPosition(position mgl64.Vec3) {
	p.Transform.Position = position
	p.Shape.ComputeAABB(p.Transform)
}

func (p *Player) Radius() float64 {
	return p.Shape.Radius
}

func (p *Player) AddForce(force mgl64.Vec3) {
	p.accumulatedForce = p.accumulatedForce.Add(force)
}

// Force returns the force accumulated since the last tick
func (p *Player) Force() mgl64.Vec3 {
	return p.accumulatedForce
}

func (p *Player) ClearForces() {
	p.accumulatedForce = mgl64.Vec3{0, 0, 0}
}

// Push maps a key press to a user force relative to the heading.
// It returns false if the key does not move the player.
func (p *Player) Push(key Key) bool {
	d := p.Direction

	switch key {
	case KeyUp:
		p.AddForce(d.Mul(p.UserStrength))
	case KeyDown:
		p.AddForce(d.Mul(-p.UserStrength))
	case KeyLeft:
		p.AddForce(mgl64.Vec3{d.Z(), 0, -d.X()}.Mul(p.UserStrength))
	case KeyRight:
		p.AddForce(mgl64.Vec3{-d.Z(), 0, d.X()}.Mul(p.UserStrength))
	default:
		return false
	}

	return true
}

// HandleEvent forwards key presses to Push, releases are ignored
func (p *Player) HandleEvent(event InputEvent) bool {
	if event.Action != Press {
		return false
	}

	return p.Push(event.Key)
}
