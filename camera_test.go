package spherecubed

import (
	"math"
	"testing"

	"github.com/akmonengine/spherecubed/config"
	"github.com/go-gl/mathgl/mgl64"
)

func createCamera() *Camera {
	c := NewCamera(config.Default().Camera)
	c.Resize(640, 480)
	c.Start()

	return c
}

// =============================================================================
// Camera Machine Tests
// =============================================================================

func TestCamera_StartsInMenuView(t *testing.T) {
	c := createCamera()

	if c.Current().Name() != "MenuView" {
		t.Fatalf("Current() = %s, expected MenuView", c.Current().Name())
	}
	if c.Eye != (mgl64.Vec3{0, 0, 2}) || c.Focus != (mgl64.Vec3{}) {
		t.Errorf("menu view looks from %v at %v", c.Eye, c.Focus)
	}
	if c.Projection != mgl64.Ortho(-1, 1, -1, 1, c.Near, c.Far) {
		t.Errorf("menu view should be orthographic")
	}
	if c.DepthTest || c.CullFace || c.ClearColor != ClearBlack {
		t.Errorf("menu view should clear in black without depth test or culling")
	}
}

func TestCamera_PlayAndMenuLatches(t *testing.T) {
	c := createCamera()

	c.SetPlay(true)
	c.Tick()
	if c.Current().Name() != "PlayView" {
		t.Fatalf("Current() = %s, expected PlayView", c.Current().Name())
	}
	if c.Play() {
		t.Errorf("the play latch should be cleared by the transition")
	}
	expected := mgl64.Perspective(mgl64.DegToRad(45), 640.0/480.0, 0.01, 50)
	if c.Projection != expected {
		t.Errorf("play view should use the perspective set by Resize")
	}
	if !c.DepthTest || !c.CullFace || c.ClearColor != ClearSky {
		t.Errorf("play view should clear in sky color with depth test and culling")
	}

	c.SetMenu(true)
	c.Tick()
	if c.Current().Name() != "MenuView" {
		t.Errorf("Current() = %s, expected MenuView", c.Current().Name())
	}
}

func TestCamera_LatestRequestWins(t *testing.T) {
	tests := []struct {
		name     string
		requests []func(c *Camera)
		expected string
	}{
		{"menu then play", []func(c *Camera){func(c *Camera) { c.SetMenu(true) }, func(c *Camera) { c.SetPlay(true) }}, "PlayView"},
		{"play then menu", []func(c *Camera){func(c *Camera) { c.SetPlay(true) }, func(c *Camera) { c.SetMenu(true) }}, "MenuView"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := createCamera()
			for _, request := range tt.requests {
				request(c)
			}
			if c.Menu() && c.Play() {
				t.Errorf("only one view request should be pending")
			}

			c.Tick()
			if c.Current().Name() != tt.expected {
				t.Errorf("Current() = %s, expected %s", c.Current().Name(), tt.expected)
			}
		})
	}
}

func TestCamera_ResizeInPlay(t *testing.T) {
	c := createCamera()
	c.SetPlay(true)
	c.Tick()

	c.Resize(800, 0)
	expected := mgl64.Perspective(mgl64.DegToRad(45), 800, 0.01, 50)
	if c.Projection != expected {
		t.Errorf("Resize should update the projection in play, with a height of at least 1")
	}
}

func TestCamera_OrbitBehindTarget(t *testing.T) {
	c := createCamera()
	c.TargetPosition = mgl64.Vec3{2, 1, 3}
	c.TargetDirection = mgl64.Vec3{0, 0, 1}
	c.SetPlay(true)
	c.Tick()

	pitch := mgl64.DegToRad(35)
	expected := mgl64.Vec3{2, 1 + 6*math.Sin(pitch), 3 - 6*math.Cos(pitch)}
	if !c.Eye.ApproxEqual(expected) {
		t.Errorf("Eye = %v, expected %v", c.Eye, expected)
	}
	if c.Focus != c.TargetPosition {
		t.Errorf("Focus = %v, expected %v", c.Focus, c.TargetPosition)
	}

	c.Render()
	if c.View != mgl64.LookAtV(c.Eye, c.Focus, c.Up) {
		t.Errorf("Render should look from the eye at the focus")
	}
	if !c.Frustum.PointViewable(c.Focus) {
		t.Errorf("the focus should be in the frustum")
	}
}

func TestCamera_YawSmoothing(t *testing.T) {
	c := createCamera()
	c.SetPlay(true)
	c.Tick()

	c.TargetDirection = mgl64.Vec3{1, 0, 0}
	c.Tick()
	if !mgl64.FloatEqual(c.Yaw, math.Pi/2*c.Smoothing) {
		t.Errorf("Yaw = %v, expected %v", c.Yaw, math.Pi/2*c.Smoothing)
	}

	for range 200 {
		c.Tick()
	}
	if !mgl64.FloatEqualThreshold(c.Yaw, math.Pi/2, 1e-6) {
		t.Errorf("Yaw = %v, expected to converge to %v", c.Yaw, math.Pi/2)
	}
}

func TestShortestArc(t *testing.T) {
	tests := []struct {
		angle    float64
		expected float64
	}{
		{0, 0},
		{1, 1},
		{-6, 2*math.Pi - 6},
		{6, 6 - 2*math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
	}

	for _, tt := range tests {
		if got := shortestArc(tt.angle); !mgl64.FloatEqual(got, tt.expected) {
			t.Errorf("shortestArc(%v) = %v, expected %v", tt.angle, got, tt.expected)
		}
	}
}
