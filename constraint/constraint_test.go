package constraint

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Contact Tests
// =============================================================================

func TestContact(t *testing.T) {
	c := NewContact()
	if c.Found() {
		t.Fatalf("a new contact should not be found")
	}

	c.Set(0.25, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{1, 0, 2})
	if !c.Found() {
		t.Fatalf("Found() = false after Set")
	}
	if c.Distance != 0.25 || c.Normal != (mgl64.Vec3{0, 1, 0}) || c.Cube != (mgl64.Vec3{1, 0, 2}) {
		t.Errorf("Set stored %+v", c)
	}

	c.Reset()
	if c.Found() || c.Distance != math.MaxFloat64 || c.Normal != (mgl64.Vec3{}) || c.Cube != (mgl64.Vec3{}) {
		t.Errorf("Reset left %+v", c)
	}
}

// =============================================================================
// Response Tests
// =============================================================================

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		dir      mgl64.Vec3
		normal   mgl64.Vec3
		expected mgl64.Vec3
	}{
		{"head on", mgl64.Vec3{0, 0, -1}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 0, 1}},
		{"falling", mgl64.Vec3{0, -1, 0}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 1, 0}},
		{"grazing", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"diagonal", mgl64.Vec3{1, 0, -1}.Normalize(), mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 1}.Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.dir, tt.normal)
			if !got.ApproxEqual(tt.expected) {
				t.Errorf("Reflect(%v, %v) = %v, expected %v", tt.dir, tt.normal, got, tt.expected)
			}
		})
	}
}

func TestDefuzz(t *testing.T) {
	tests := []struct {
		value    float64
		expected float64
	}{
		{0.123449, 0.1234},
		{0.12345, 0.1235},
		{-0.99999, -1},
		{1e-7, 0},
		{3, 3},
	}

	for _, tt := range tests {
		if got := Defuzz(tt.value); got != tt.expected {
			t.Errorf("Defuzz(%v) = %v, expected %v", tt.value, got, tt.expected)
		}
	}

	v := DefuzzVec(mgl64.Vec3{1e-9, 0.99999, -2.00004})
	if v != (mgl64.Vec3{0, 1, -2}) {
		t.Errorf("DefuzzVec = %v", v)
	}
}

func TestClampSmall(t *testing.T) {
	v, clamped := ClampSmall(mgl64.Vec3{0.04, -0.2, -0.01}, 0.05)

	if v != (mgl64.Vec3{0, -0.2, 0}) {
		t.Errorf("ClampSmall = %v", v)
	}
	if clamped != [3]bool{true, false, true} {
		t.Errorf("clamped = %v, expected [true false true]", clamped)
	}

	_, clamped = ClampSmall(mgl64.Vec3{}, 0.05)
	if clamped != [3]bool{true, true, true} {
		t.Errorf("a zero vector should be clamped on every axis, got %v", clamped)
	}
}
