package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OBB represents an Oriented Bounding Box
type OBB struct {
	Center      rl.Vector3    // World-space center
	HalfExtents rl.Vector3    // Half-extents along local axes
	Axes        [3]rl.Vector3 // Orientation matrix columns: local X, Y, Z in world space
}

// NewOBB creates an OBB from center, size, and euler rotation (degrees)
func NewOBB(center, size, rotation rl.Vector3) OBB {
	rx := float64(rotation.X) * math.Pi / 180
	ry := float64(rotation.Y) * math.Pi / 180
	rz := float64(rotation.Z) * math.Pi / 180

	// Rotation order X, Y, Z to match the transform convention
	rotX := rl.MatrixRotateX(float32(rx))
	rotY := rl.MatrixRotateY(float32(ry))
	rotZ := rl.MatrixRotateZ(float32(rz))
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}

	return OBB{
		Center:      center,
		HalfExtents: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:        axes,
	}
}

// NewAxisAlignedOBB creates an OBB with identity orientation.
func NewAxisAlignedOBB(center, size rl.Vector3) OBB {
	return OBB{
		Center:      center,
		HalfExtents: rl.Vector3{X: absf(size.X) / 2, Y: absf(size.Y) / 2, Z: absf(size.Z) / 2},
		Axes:        identityAxes(),
	}
}

// NewOBBFromBox creates an OBB from center, size, rotation, and scale
func NewOBBFromBox(center, size, rotation, scale rl.Vector3) OBB {
	scaledSize := rl.Vector3{
		X: size.X * scale.X,
		Y: size.Y * scale.Y,
		Z: size.Z * scale.Z,
	}
	return NewOBB(center, scaledSize, rotation)
}

func identityAxes() [3]rl.Vector3 {
	return [3]rl.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	}
}

// ToLocal maps a world point into the box frame (subtract center, multiply by the transposed orientation).
func (o OBB) ToLocal(point rl.Vector3) rl.Vector3 {
	return o.ToLocalDir(rl.Vector3Subtract(point, o.Center))
}

// ToLocalDir rotates a world direction into the box frame.
func (o OBB) ToLocalDir(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: rl.Vector3DotProduct(v, o.Axes[0]),
		Y: rl.Vector3DotProduct(v, o.Axes[1]),
		Z: rl.Vector3DotProduct(v, o.Axes[2]),
	}
}

// ToWorld maps a point in the box frame back to world space.
func (o OBB) ToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(o.Center, o.ToWorldDir(local))
}

// ToWorldDir re-applies the orientation to a local direction.
func (o OBB) ToWorldDir(local rl.Vector3) rl.Vector3 {
	result := rl.Vector3Scale(o.Axes[0], local.X)
	result = rl.Vector3Add(result, rl.Vector3Scale(o.Axes[1], local.Y))
	return rl.Vector3Add(result, rl.Vector3Scale(o.Axes[2], local.Z))
}

// LocalBox is the unrotated box in the OBB frame.
func (o OBB) LocalBox() AABB {
	return AABB{Min: rl.Vector3Negate(o.HalfExtents), Max: o.HalfExtents}
}

// ClosestPointOBB returns the closest point on or inside the OBB to the given point
func ClosestPointOBB(point rl.Vector3, o OBB) rl.Vector3 {
	local := o.ToLocal(point)
	clamped := clampVector(local, rl.Vector3Negate(o.HalfExtents), o.HalfExtents)
	return o.ToWorld(clamped)
}

// OverlapSphereOBB tests if a sphere touches or intersects an OBB
func OverlapSphereOBB(s Sphere, o OBB) bool {
	local := o.ToLocal(s.Center)
	closest := clampVector(local, rl.Vector3Negate(o.HalfExtents), o.HalfExtents)
	return rl.Vector3LengthSqr(rl.Vector3Subtract(local, closest)) <= s.Radius*s.Radius
}
