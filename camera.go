package spherecubed

import (
	"math"

	"github.com/akmonengine/spherecubed/config"
	"github.com/akmonengine/spherecubed/machine"
	"github.com/go-gl/mathgl/mgl64"
)

var (
	ClearBlack = mgl64.Vec4{0, 0, 0, 1}
	ClearSky   = mgl64.Vec4{0.45, 0.65, 0.9, 1}
)

// Camera is a machine switching between the flat menu view and the view
// following the player. The game only raises the menu and play latches.
type Camera struct {
	*machine.Machine

	Eye   mgl64.Vec3
	Focus mgl64.Vec3
	Up    mgl64.Vec3

	View       mgl64.Mat4
	Projection mgl64.Mat4
	Frustum    Frustum

	ClearColor mgl64.Vec4
	DepthTest  bool
	CullFace   bool

	TargetPosition  mgl64.Vec3
	TargetDirection mgl64.Vec3

	// Orbit around the target, angles in radians
	Yaw       float64
	Pitch     float64
	Distance  float64
	Smoothing float64

	FOV  float64 // degrees
	Near float64
	Far  float64

	perspective mgl64.Mat4
	menuView    machine.State
	playView    machine.State

	menu bool
	play bool
}

func NewCamera(settings config.Camera) *Camera {
	c := &Camera{
		Machine:         machine.NewMachine("Camera"),
		Up:              mgl64.Vec3{0, 1, 0},
		View:            mgl64.Ident4(),
		Projection:      mgl64.Ident4(),
		ClearColor:      ClearBlack,
		TargetDirection: mgl64.Vec3{0, 0, 1},
		Pitch:           mgl64.DegToRad(settings.Pitch),
		Distance:        settings.Distance,
		Smoothing:       settings.Smoothing,
		FOV:             settings.FOV,
		Near:            settings.Near,
		Far:             settings.Far,
	}
	c.configure()

	return c
}

func (c *Camera) configure() {
	c.menuView = c.AddState(&menuView{BaseState: machine.NewBaseState("MenuView"), camera: c})
	c.playView = c.AddState(&playView{BaseState: machine.NewBaseState("PlayView"), camera: c})

	menu := c.AddEvent(machine.NewLatchEvent("Menu", &c.menu))
	play := c.AddEvent(machine.NewLatchEvent("Play", &c.play))

	c.Bind(c.menuView, menu, c.menuView)
	c.Bind(c.menuView, play, c.playView)
	c.Bind(c.playView, menu, c.menuView)

	c.SetStart(c.menuView)
}

// SetMenu requests the menu view, dropping a pending play request
func (c *Camera) SetMenu(menu bool) {
	c.menu = menu
	if menu {
		c.play = false
	}
}

func (c *Camera) Menu() bool { return c.menu }

// SetPlay requests the play view, dropping a pending menu request
func (c *Camera) SetPlay(play bool) {
	c.play = play
	if play {
		c.menu = false
	}
}

func (c *Camera) Play() bool { return c.play }

// Resize sets the perspective for a viewport of width x height pixels
func (c *Camera) Resize(width, height int) {
	ratio := float64(width) / float64(max(height, 1))

	c.perspective = mgl64.Perspective(mgl64.DegToRad(c.FOV), ratio, c.Near, c.Far)
	c.Frustum.Projection(c.FOV, ratio, c.Near, c.Far)

	if c.Current() == c.playView {
		c.Projection = c.perspective
	}
}

// targetYaw is the heading of the target around the up axis
func (c *Camera) targetYaw() float64 {
	return math.Atan2(c.TargetDirection.X(), c.TargetDirection.Z())
}

// orbit places the eye behind the target, Distance away and Pitch above
func (c *Camera) orbit() {
	cosPitch := math.Cos(c.Pitch)
	offset := mgl64.Vec3{
		-math.Sin(c.Yaw) * cosPitch,
		math.Sin(c.Pitch),
		-math.Cos(c.Yaw) * cosPitch,
	}

	c.Eye = c.Focus.Add(offset.Mul(c.Distance))
}

func (c *Camera) lookAt() {
	c.View = mgl64.LookAtV(c.Eye, c.Focus, c.Up)
}

// shortestArc wraps an angle difference into [-π, π]
func shortestArc(angle float64) float64 {
	angle = math.Mod(angle+math.Pi, 2*math.Pi)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return angle - math.Pi
}

type menuView struct {
	machine.BaseState
	camera *Camera
}

func (s *menuView) Enter() {
	c := s.camera
	c.ClearColor = ClearBlack
	c.DepthTest = false
	c.CullFace = false

	c.Eye = mgl64.Vec3{0, 0, 2}
	c.Focus = mgl64.Vec3{}
	c.Up = mgl64.Vec3{0, 1, 0}
	c.Projection = mgl64.Ortho(-1, 1, -1, 1, c.Near, c.Far)
}

func (s *menuView) Render() {
	s.camera.lookAt()
}

type playView struct {
	machine.BaseState
	camera *Camera
}

func (s *playView) Enter() {
	c := s.camera
	c.ClearColor = ClearSky
	c.DepthTest = true
	c.CullFace = true

	c.Eye = mgl64.Vec3{5, 25, 5}
	c.Focus = mgl64.Vec3{6, 0, 6}
	c.Up = mgl64.Vec3{0, 1, 0}
	c.Projection = c.perspective
	c.Yaw = c.targetYaw()
}

func (s *playView) Tick() {
	c := s.camera

	c.Yaw += shortestArc(c.targetYaw()-c.Yaw) * c.Smoothing
	c.Yaw = shortestArc(c.Yaw)
	c.Focus = c.TargetPosition
	c.orbit()
}

func (s *playView) Render() {
	c := s.camera
	c.lookAt()
	c.Frustum.View(c.Eye, c.Focus, c.Up)
}
