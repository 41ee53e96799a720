package components

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

func init() {
	engine.RegisterComponent("SphereCollider", sphereColliderFactory, sphereColliderSerializer)
}

// SphereCollider is centered on its owner. A mover needs one to be moved.
type SphereCollider struct {
	engine.BaseComponent
	Radius       float32
	IsStatic     bool
	IsTrigger    bool
	CategoryBits uint32
	MaskBits     uint32
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{
		Radius:       radius,
		CategoryBits: 0xFFFFFFFF,
		MaskBits:     0xFFFFFFFF,
	}
}

// WorldSphere returns the sphere at position.
func (s *SphereCollider) WorldSphere(position rl.Vector3) (physics.Sphere, error) {
	return physics.NewSphere(position, s.Radius)
}

func sphereColliderFactory(props map[string]any) (engine.Component, error) {
	radius, err := engine.PropFloat(props, "radius", 0.5)
	if err != nil {
		return nil, err
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("radius %v: %w", radius, physics.ErrInvalidRadius)
	}
	s := NewSphereCollider(radius)
	if err := readColliderFlags(props, &s.IsStatic, &s.IsTrigger, &s.CategoryBits, &s.MaskBits); err != nil {
		return nil, err
	}
	return s, nil
}

func sphereColliderSerializer(c engine.Component) map[string]any {
	s, ok := c.(*SphereCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":       s.Radius,
		"isStatic":     s.IsStatic,
		"isTrigger":    s.IsTrigger,
		"categoryBits": s.CategoryBits,
		"maskBits":     s.MaskBits,
	}
}
