package components

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

func init() {
	engine.RegisterComponent("BoxCollider", boxColliderFactory, boxColliderSerializer)
}

// BoxCollider is an oriented box sized in local units. The owner's rotation
// and scale are applied when the physics world builds its shape.
type BoxCollider struct {
	engine.BaseComponent
	Width, Height, Depth float32
	IsStatic             bool
	IsTrigger            bool
	CategoryBits         uint32
	MaskBits             uint32
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{
		Width:        size.X,
		Height:       size.Y,
		Depth:        size.Z,
		CategoryBits: 0xFFFFFFFF,
		MaskBits:     0xFFFFFFFF,
	}
}

func (b *BoxCollider) Size() rl.Vector3 {
	return rl.Vector3{X: b.Width, Y: b.Height, Z: b.Depth}
}

// WorldOBB places the box at the transform with its scale applied.
func (b *BoxCollider) WorldOBB(t engine.Transform) physics.OBB {
	return physics.NewOBBFromBox(t.Position, b.Size(), t.Rotation, t.Scale)
}

func boxColliderFactory(props map[string]any) (engine.Component, error) {
	size, err := engine.PropVec3(props, "size", rl.Vector3{X: 1, Y: 1, Z: 1})
	if err != nil {
		return nil, err
	}
	b := NewBoxCollider(size)
	if b.Width, err = engine.PropFloat(props, "width", b.Width); err != nil {
		return nil, err
	}
	if b.Height, err = engine.PropFloat(props, "height", b.Height); err != nil {
		return nil, err
	}
	if b.Depth, err = engine.PropFloat(props, "depth", b.Depth); err != nil {
		return nil, err
	}
	if err := readColliderFlags(props, &b.IsStatic, &b.IsTrigger, &b.CategoryBits, &b.MaskBits); err != nil {
		return nil, err
	}
	return b, nil
}

func boxColliderSerializer(c engine.Component) map[string]any {
	b, ok := c.(*BoxCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"size":         vec3Prop(b.Size()),
		"isStatic":     b.IsStatic,
		"isTrigger":    b.IsTrigger,
		"categoryBits": b.CategoryBits,
		"maskBits":     b.MaskBits,
	}
}

// readColliderFlags fills the fields shared by every collider type.
func readColliderFlags(props map[string]any, isStatic, isTrigger *bool, category, mask *uint32) error {
	var err error
	if *isStatic, err = engine.PropBool(props, "isStatic", *isStatic); err != nil {
		return err
	}
	if *isTrigger, err = engine.PropBool(props, "isTrigger", *isTrigger); err != nil {
		return err
	}
	if *category, err = engine.PropUint32(props, "categoryBits", *category); err != nil {
		return err
	}
	if *mask, err = engine.PropUint32(props, "maskBits", *mask); err != nil {
		return err
	}
	return nil
}
