package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/engine"
)

func init() {
	engine.RegisterComponent("MotionIntent", motionIntentFactory, motionIntentSerializer)
}

// MotionIntent is what a controller wants an entity to do this tick.
// Translation is a local direction; the physics world turns it into a
// displacement. Rotation (degrees) and Scale are applied as-is.
type MotionIntent struct {
	engine.BaseComponent
	Translation     rl.Vector3
	Rotation        rl.Vector3
	Scale           rl.Vector3
	SpeedMultiplier float32
}

func NewMotionIntent() *MotionIntent {
	return &MotionIntent{
		Scale:           rl.Vector3{X: 1, Y: 1, Z: 1},
		SpeedMultiplier: 1,
	}
}

func motionIntentFactory(props map[string]any) (engine.Component, error) {
	m := NewMotionIntent()
	var err error
	if m.Translation, err = engine.PropVec3(props, "translation", m.Translation); err != nil {
		return nil, err
	}
	if m.Rotation, err = engine.PropVec3(props, "rotation", m.Rotation); err != nil {
		return nil, err
	}
	if m.Scale, err = engine.PropVec3(props, "scale", m.Scale); err != nil {
		return nil, err
	}
	if m.SpeedMultiplier, err = engine.PropFloat(props, "speedMultiplier", m.SpeedMultiplier); err != nil {
		return nil, err
	}
	return m, nil
}

func motionIntentSerializer(c engine.Component) map[string]any {
	m, ok := c.(*MotionIntent)
	if !ok {
		return nil
	}
	return map[string]any{
		"translation":     vec3Prop(m.Translation),
		"rotation":        vec3Prop(m.Rotation),
		"scale":           vec3Prop(m.Scale),
		"speedMultiplier": m.SpeedMultiplier,
	}
}

// vec3Prop encodes a vector the way level files store it.
func vec3Prop(v rl.Vector3) []any {
	return []any{v.X, v.Y, v.Z}
}
