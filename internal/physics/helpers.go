package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Epsilon guards divisions and degenerate directions in the narrowphase.
const Epsilon = 1e-6

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// axis returns component i (0=X, 1=Y, 2=Z) of v.
func axis(v rl.Vector3, i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// unitAxis returns the basis vector for axis i scaled by sign.
func unitAxis(i int, sign float32) rl.Vector3 {
	switch i {
	case 0:
		return rl.Vector3{X: sign}
	case 1:
		return rl.Vector3{Y: sign}
	default:
		return rl.Vector3{Z: sign}
	}
}

// clampVector clamps every component of v into [min, max].
func clampVector(v, min, max rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: clamp(v.X, min.X, max.X),
		Y: clamp(v.Y, min.Y, max.Y),
		Z: clamp(v.Z, min.Z, max.Z),
	}
}

// Slide removes the component of vec along the unit normal, leaving the motion
// that continues along the contact plane.
func Slide(vec, normal rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(vec, rl.Vector3Scale(normal, rl.Vector3DotProduct(vec, normal)))
}
