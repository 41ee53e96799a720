package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// EntityID is an opaque handle into a Registry. Zero is never allocated.
type EntityID uint64

const InvalidEntity EntityID = 0

type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
	Scale    rl.Vector3
}

// NewTransform places an unrotated, unit-scale transform at position.
func NewTransform(position rl.Vector3) Transform {
	return Transform{
		Position: position,
		Rotation: rl.Vector3{},
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// Entity is the registry's record for one handle.
type Entity struct {
	ID         EntityID
	Name       string
	Tags       []string
	Transform  Transform
	components []Component
}

// GetComponent returns the first component of type T on e.
func GetComponent[T Component](e *Entity) T {
	var zero T
	if e == nil {
		return zero
	}
	for _, c := range e.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (e *Entity) Components() []Component {
	return e.components
}

func (e *Entity) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
