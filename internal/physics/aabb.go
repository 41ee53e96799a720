package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABB is an axis-aligned bounding box. Min never exceeds Max on any axis.
type AABB struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABBFromCenter creates an AABB from a center point and full size dimensions.
func NewAABBFromCenter(center, size rl.Vector3) AABB {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABB{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

func (a AABB) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABB) HalfSize() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Subtract(a.Max, a.Min), 0.5)
}

// Intersects reports whether the boxes overlap. Touching faces count as overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Contains reports whether p lies inside or on the box.
func (a AABB) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Expand grows the box by r on every side.
func (a AABB) Expand(r float32) AABB {
	ext := rl.Vector3{X: r, Y: r, Z: r}
	return AABB{Min: rl.Vector3Subtract(a.Min, ext), Max: rl.Vector3Add(a.Max, ext)}
}

// Union returns the smallest box enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: rl.Vector3Min(a.Min, b.Min), Max: rl.Vector3Max(a.Max, b.Max)}
}

// OverlapAABB is true unless the boxes are separated on a single axis.
func OverlapAABB(a, b AABB) bool {
	return a.Intersects(b)
}

// ClosestPointAABB clamps point into the box per axis.
func ClosestPointAABB(point rl.Vector3, box AABB) rl.Vector3 {
	return clampVector(point, box.Min, box.Max)
}

// OverlapSphereAABB is true when the squared distance from the sphere center to
// the closest point on the box is at most radius².
func OverlapSphereAABB(s Sphere, box AABB) bool {
	closest := ClosestPointAABB(s.Center, box)
	return rl.Vector3LengthSqr(rl.Vector3Subtract(closest, s.Center)) <= s.Radius*s.Radius
}

// AABBFromSphere returns the bounds of s. A non-positive radius is rejected.
func AABBFromSphere(s Sphere) (AABB, error) {
	if s.Radius <= 0 {
		return AABB{}, ErrInvalidRadius
	}
	r := rl.Vector3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return AABB{Min: rl.Vector3Subtract(s.Center, r), Max: rl.Vector3Add(s.Center, r)}, nil
}

// AABBFromOBB returns the tightest axis-aligned box around o.
func AABBFromOBB(o OBB) AABB {
	var e rl.Vector3
	for i, a := range o.Axes {
		h := axis(o.HalfExtents, i)
		e.X += absf(a.X) * h
		e.Y += absf(a.Y) * h
		e.Z += absf(a.Z) * h
	}
	return AABB{Min: rl.Vector3Subtract(o.Center, e), Max: rl.Vector3Add(o.Center, e)}
}

// SweptAABB bounds a sphere of the given radius moving from pos to pos+delta.
func SweptAABB(pos, delta rl.Vector3, radius float32) AABB {
	end := rl.Vector3Add(pos, delta)
	return AABB{Min: rl.Vector3Min(pos, end), Max: rl.Vector3Max(pos, end)}.Expand(radius)
}
