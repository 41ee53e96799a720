package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// CollisionHit describes a contact. TimeOfImpact is a distance along the swept
// displacement, in the same units as the displacement, not a 0..1 fraction.
// The zero value means no hit.
type CollisionHit struct {
	Hit              bool
	TimeOfImpact     float32
	Point            rl.Vector3
	Normal           rl.Vector3
	PenetrationDepth float32
}

// PenetrationSphereAABB returns the contact pushing the sphere out of the box.
// The normal points from the box towards the sphere center.
func PenetrationSphereAABB(s Sphere, box AABB) CollisionHit {
	closest := ClosestPointAABB(s.Center, box)
	diff := rl.Vector3Subtract(s.Center, closest)
	distSq := rl.Vector3LengthSqr(diff)
	if distSq > s.Radius*s.Radius {
		return CollisionHit{}
	}

	hit := CollisionHit{Hit: true, Point: closest}
	dist := sqrtf(distSq)
	if dist > Epsilon {
		hit.Normal = rl.Vector3Scale(diff, 1/dist)
		hit.PenetrationDepth = s.Radius - dist
		return hit
	}

	// Center sits on the surface or inside: push out along the axis with the nearest face.
	center := box.Center()
	best := 0
	bestDist := float32(0)
	for i := 0; i < 3; i++ {
		c := axis(s.Center, i)
		d := absf(c - axis(box.Min, i))
		if dMax := absf(axis(box.Max, i) - c); dMax < d {
			d = dMax
		}
		if i == 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	sign := float32(-1)
	if axis(s.Center, best) > axis(center, best) {
		sign = 1
	}
	hit.Normal = unitAxis(best, sign)
	hit.PenetrationDepth = s.Radius
	return hit
}

// PenetrationSphereOBB resolves in the box frame and maps the contact back to world space.
func PenetrationSphereOBB(s Sphere, o OBB) CollisionHit {
	local := Sphere{Center: o.ToLocal(s.Center), Radius: s.Radius}
	hit := PenetrationSphereAABB(local, o.LocalBox())
	if !hit.Hit {
		return hit
	}
	hit.Point = o.ToWorld(hit.Point)
	hit.Normal = rl.Vector3Normalize(o.ToWorldDir(hit.Normal))
	return hit
}

// PenetrationAABB returns the minimum-overlap axis between a and b. The normal
// points from b's center towards a's center, so a moves along it to separate.
func PenetrationAABB(a, b AABB) CollisionHit {
	if !a.Intersects(b) {
		return CollisionHit{}
	}

	hit := CollisionHit{Hit: true}
	ca, cb := a.Center(), b.Center()
	best := -1
	for i := 0; i < 3; i++ {
		overlap := minf(axis(a.Max, i), axis(b.Max, i)) - maxf(axis(a.Min, i), axis(b.Min, i))
		if best < 0 || overlap < hit.PenetrationDepth {
			best = i
			hit.PenetrationDepth = overlap
		}
	}
	sign := float32(1)
	if axis(ca, best) < axis(cb, best) {
		sign = -1
	}
	hit.Normal = unitAxis(best, sign)
	hit.Point = ClosestPointAABB(ca, b)
	return hit
}
