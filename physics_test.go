package spherecubed

import (
	"testing"

	"github.com/akmonengine/spherecubed/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const twoByTwo = "01:00,02:00\n02:00,02:00\n"

// resistanceDelta is the speed lost to rolling resistance over one 50ms tick
const resistanceDelta = actor.DEFAULT_ROLLING_RESISTANCE * actor.DEFAULT_MASS * GRAVITY * 0.05

// =============================================================================
// Forces Tests
// =============================================================================

func TestPhysicsTick_RestIsIdempotent(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 1, 0})
	before := p.Player.Transform

	for range 10 {
		if contacts := p.Tick(); len(contacts) != 0 {
			t.Fatalf("a ball at rest should not collide, got %v", contacts)
		}
	}

	if p.Player.Position() != before.Position {
		t.Errorf("Position = %v, expected %v", p.Player.Position(), before.Position)
	}
	if p.Player.Velocity != (mgl64.Vec3{}) {
		t.Errorf("Velocity = %v, expected zero", p.Player.Velocity)
	}
	if p.Player.Transform.Rotation != before.Rotation {
		t.Errorf("Rotation = %v, expected %v", p.Player.Transform.Rotation, before.Rotation)
	}
}

func TestPhysicsTick_StartRestsOnStartCube(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{})
	p.Player.Reset(p.Level.StartPosition())

	if p.Level.StartPosition() != (mgl64.Vec3{0, 1, 0}) {
		t.Fatalf("StartPosition = %v, expected {0 1 0}", p.Level.StartPosition())
	}

	p.Tick()
	if p.Player.Position() != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("a ball spawned on start should stay there, got %v", p.Player.Position())
	}
}

func TestPhysicsTick_GravityWhenAirborne(t *testing.T) {
	// One unit above the plane the ball rests on
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 2, 0})

	p.Tick()

	expected := -GRAVITY * 0.05
	if !mgl64.FloatEqualThreshold(p.Player.Velocity.Y(), expected, 1e-9) {
		t.Errorf("Velocity.Y = %v, expected %v", p.Player.Velocity.Y(), expected)
	}
	if p.Player.Velocity.X() != 0 || p.Player.Velocity.Z() != 0 {
		t.Errorf("gravity should only act on Y, got %v", p.Player.Velocity)
	}
	if !mgl64.FloatEqualThreshold(p.Player.Position().Y(), 2+expected*0.05, 1e-9) {
		t.Errorf("Position.Y = %v, expected %v", p.Player.Position().Y(), 2+expected*0.05)
	}
}

func TestPhysicsTick_TerminalVelocity(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 30, 0})
	p.Player.Velocity = mgl64.Vec3{0, -2.99, 0}

	p.Tick()

	if !mgl64.FloatEqualThreshold(p.Player.Velocity.Len(), actor.DEFAULT_TERMINAL_VELOCITY, 1e-9) {
		t.Errorf("speed = %v, expected the terminal velocity", p.Player.Velocity.Len())
	}
}

func TestPhysicsTick_RollingResistance(t *testing.T) {
	tests := []struct {
		name     string
		velocity mgl64.Vec3
		expected mgl64.Vec3
	}{
		{
			name:     "slows down without gravity",
			velocity: mgl64.Vec3{1, 0, 0},
			expected: mgl64.Vec3{1 - resistanceDelta, 0, 0},
		},
		{
			name:     "snaps to zero under the minimum",
			velocity: mgl64.Vec3{MINIMUM_VELOCITY, 0, 0},
			expected: mgl64.Vec3{0, 0, 0},
		},
		{
			name:     "snaps one axis only",
			velocity: mgl64.Vec3{0.8, 0, 0.04},
			expected: mgl64.Vec3{0.8 - resistanceDelta*0.8/mgl64.Vec3{0.8, 0, 0.04}.Len(), 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 1, 0})
			p.Player.Velocity = tt.velocity

			p.Tick()

			if !p.Player.Velocity.ApproxEqualThreshold(tt.expected, 1e-9) {
				t.Errorf("Velocity = %v, expected %v", p.Player.Velocity, tt.expected)
			}
			if p.Player.Position().Y() != 1 {
				t.Errorf("Position.Y = %v, the ball should stay on the plane", p.Player.Position().Y())
			}
		})
	}
}

func TestPhysicsTick_UserForce(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 1, 0})
	p.Player.Push(actor.KeyUp)

	p.Tick()

	// 0.1 / 0.010 * 0.05
	if !mgl64.FloatEqualThreshold(p.Player.Velocity.Z(), 0.5, 1e-9) {
		t.Errorf("Velocity.Z = %v, expected 0.5", p.Player.Velocity.Z())
	}
	if p.Player.Force() != (mgl64.Vec3{}) {
		t.Errorf("the force should be consumed by the tick, got %v", p.Player.Force())
	}
	if p.Player.Position().Z() <= 0 {
		t.Errorf("the ball should have moved forward, got %v", p.Player.Position())
	}
	if p.Player.Transform.Rotation == mgl64.QuatIdent() {
		t.Errorf("the ball should have rolled")
	}
}

// =============================================================================
// Collision Response Tests
// =============================================================================

func TestPhysicsTick_ReflectsOnWall(t *testing.T) {
	p := createPhysics(t, wall, mgl64.Vec3{0, 1, 1})
	p.Player.Velocity = mgl64.Vec3{0, 0, -2}

	contacts := p.Tick()

	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}
	if contacts[0].Distance != 0 {
		t.Errorf("Distance = %v, the ball already touches the wall", contacts[0].Distance)
	}
	if contacts[0].Normal != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Normal = %v, expected {0 0 1}", contacts[0].Normal)
	}

	speed := 2 - resistanceDelta
	expected := mgl64.Vec3{0, 0, speed * 0.7}
	if !p.Player.Velocity.ApproxEqualThreshold(expected, 1e-9) {
		t.Errorf("Velocity = %v, expected %v", p.Player.Velocity, expected)
	}
	if !mgl64.FloatEqualThreshold(p.Player.Position().Z(), 1+speed*0.05*0.7, 1e-6) {
		t.Errorf("Position.Z = %v, expected the ball to bounce back", p.Player.Position().Z())
	}
	if p.Player.Direction != (mgl64.Vec3{0, 0, 1}) {
		t.Errorf("Direction = %v, the heading should follow the bounce", p.Player.Direction)
	}
}

func TestPhysicsSweep_StopsAtContact(t *testing.T) {
	p := createPhysics(t, wall, mgl64.Vec3{0, 1, 1.2})
	p.Player.Velocity = mgl64.Vec3{0, 0, -5}

	position, rest, hit := p.sweep(mgl64.Vec3{0, 1, 1.2}, mgl64.Vec3{0, 0, -0.25})

	if !hit {
		t.Fatalf("expected the sweep to hit the wall")
	}
	if position != (mgl64.Vec3{0, 1, 1}) {
		t.Errorf("Position = %v, expected to stop on the contact {0 1 1}", position)
	}
	if !rest.ApproxEqualThreshold(mgl64.Vec3{0, 0, 0.05 * 0.7}, 1e-9) {
		t.Errorf("rest = %v, expected the reflected remainder", rest)
	}
	if !p.Player.Velocity.ApproxEqualThreshold(mgl64.Vec3{0, 0, 3.5}, 1e-9) {
		t.Errorf("Velocity = %v, expected {0 0 3.5}", p.Player.Velocity)
	}
}

func TestPhysicsTick_NoTunneling(t *testing.T) {
	// The displacement of the tick is 2.5 cubes long
	p := createPhysics(t, "02:01\n02:00\n02:00\n01:00\n", mgl64.Vec3{0, 1, 3})
	p.Player.TerminalVelocity = 100
	p.Player.Velocity = mgl64.Vec3{0, 0, -50}

	contacts := p.Tick()

	if len(contacts) == 0 {
		t.Fatalf("the ball should hit the wall")
	}
	if contacts[0].Cube != (mgl64.Vec3{0, 1, 0}) {
		t.Errorf("Cube = %v, expected the wall {0 1 0}", contacts[0].Cube)
	}
	if z := p.Player.Position().Z(); z < 1 || z > 3 {
		t.Errorf("Position.Z = %v, the ball went through the wall", z)
	}
	if p.Player.Velocity.Z() <= 0 {
		t.Errorf("Velocity = %v, expected the ball to bounce back", p.Player.Velocity)
	}
}

func TestPhysicsTick_LandsOnFloor(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 1.6, 0})

	for range 100 {
		p.Tick()
		if p.Player.Position().Y() < 1-1e-9 {
			t.Fatalf("Position.Y = %v, the ball sank into the floor", p.Player.Position().Y())
		}
	}

	if p.Player.Position().Y() != 1 {
		t.Errorf("Position.Y = %v, expected the ball to settle on the floor", p.Player.Position().Y())
	}
	if p.Player.Velocity != (mgl64.Vec3{}) {
		t.Errorf("Velocity = %v, expected the ball at rest", p.Player.Velocity)
	}
}

func TestPhysicsTick_FallsInHole(t *testing.T) {
	p := createPhysics(t, "01:00,00:00,00:00\n", mgl64.Vec3{2, 1, 0})

	for range 5 {
		p.Tick()
	}

	if p.Player.Position().Y() >= 1 {
		t.Errorf("Position.Y = %v, the ball should fall through the hole", p.Player.Position().Y())
	}
}

func TestPhysicsMovement_IterationCap(t *testing.T) {
	p := createPhysics(t, twoByTwo, mgl64.Vec3{0, 100, 0})
	p.Player.TerminalVelocity = 1e6
	p.Player.Velocity = mgl64.Vec3{0, -1e5, 0}

	p.Tick()

	// 64 sweeps of MaxSweep, the rest is dropped
	fallen := 100 - p.Player.Position().Y()
	if !mgl64.FloatEqualThreshold(fallen, MaxMoveIterations*MaxSweep, 1e-6) {
		t.Errorf("fallen = %v, expected %v", fallen, MaxMoveIterations*MaxSweep)
	}
}
