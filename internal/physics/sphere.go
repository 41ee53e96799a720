package physics

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrInvalidRadius is returned when a bounding volume is built from a sphere
// whose radius is not strictly positive.
var ErrInvalidRadius = errors.New("physics: sphere radius must be greater than zero")

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

// NewSphere validates the radius at construction time.
func NewSphere(center rl.Vector3, radius float32) (Sphere, error) {
	if radius <= 0 {
		return Sphere{}, ErrInvalidRadius
	}
	return Sphere{Center: center, Radius: radius}, nil
}

// OverlapSphereSphere is true when the centers are at most the sum of the radii apart.
func OverlapSphereSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	return rl.Vector3LengthSqr(rl.Vector3Subtract(a.Center, b.Center)) <= r*r
}
