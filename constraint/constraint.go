package constraint

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Damping is the ratio of speed kept after a bounce
const Damping = 0.7

// Reflect mirrors the unit direction dir about the unit normal n
func Reflect(dir, n mgl64.Vec3) mgl64.Vec3 {
	return n.Mul(2 * dir.Mul(-1).Dot(n)).Add(dir)
}

// Defuzz rounds to 4 decimals, to stop rounding errors adding up between ticks
func Defuzz(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func DefuzzVec(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{Defuzz(v.X()), Defuzz(v.Y()), Defuzz(v.Z())}
}

// ClampSmall zeroes each component of v below threshold.
// It returns which axes were below it.
func ClampSmall(v mgl64.Vec3, threshold float64) (mgl64.Vec3, [3]bool) {
	var clamped [3]bool
	for i := range 3 {
		if math.Abs(v[i]) < threshold {
			clamped[i] = true
			v[i] = 0
		}
	}
	return v, clamped
}
