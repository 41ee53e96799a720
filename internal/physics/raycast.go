package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Ray is a half-line. Direction does not need to be normalized.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// RaycastAABB intersects the ray with the box. TimeOfImpact is the distance
// from the origin. A ray starting inside the box reports the exit face.
func RaycastAABB(ray Ray, box AABB, maxDistance float32) CollisionHit {
	if rl.Vector3LengthSqr(ray.Direction) < Epsilon*Epsilon {
		return CollisionHit{}
	}
	dir := rl.Vector3Normalize(ray.Direction)

	tmin := float32(-1e30)
	tmax := float32(1e30)
	for i := 0; i < 3; i++ {
		o := axis(ray.Origin, i)
		d := axis(dir, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)

		if d == 0 {
			if o < lo || o > hi {
				return CollisionHit{}
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = maxf(tmin, t1)
		tmax = minf(tmax, t2)
		if tmin > tmax {
			return CollisionHit{}
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return CollisionHit{}
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDistance {
		return CollisionHit{}
	}

	point := rl.Vector3Add(ray.Origin, rl.Vector3Scale(dir, t))
	return CollisionHit{
		Hit:          true,
		TimeOfImpact: t,
		Point:        point,
		Normal:       faceNormal(point, box),
	}
}

// RaycastSphere solves the ray/sphere quadratic and keeps the nearest
// non-negative root.
func RaycastSphere(ray Ray, s Sphere, maxDistance float32) CollisionHit {
	if rl.Vector3LengthSqr(ray.Direction) < Epsilon*Epsilon {
		return CollisionHit{}
	}
	dir := rl.Vector3Normalize(ray.Direction)

	oc := rl.Vector3Subtract(ray.Origin, s.Center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - s.Radius*s.Radius

	disc := b*b - c
	if disc < 0 {
		return CollisionHit{}
	}
	root := sqrtf(disc)
	t := -b - root
	if t < 0 {
		t = -b + root
	}
	if t < 0 || t > maxDistance {
		return CollisionHit{}
	}

	point := rl.Vector3Add(ray.Origin, rl.Vector3Scale(dir, t))
	return CollisionHit{
		Hit:          true,
		TimeOfImpact: t,
		Point:        point,
		Normal:       rl.Vector3Normalize(rl.Vector3Subtract(point, s.Center)),
	}
}

// RaycastOBB casts in the box frame. Distances are preserved since the
// orientation is orthonormal.
func RaycastOBB(ray Ray, o OBB, maxDistance float32) CollisionHit {
	local := Ray{Origin: o.ToLocal(ray.Origin), Direction: o.ToLocalDir(ray.Direction)}
	hit := RaycastAABB(local, o.LocalBox(), maxDistance)
	if !hit.Hit {
		return hit
	}
	hit.Point = o.ToWorld(hit.Point)
	hit.Normal = rl.Vector3Normalize(o.ToWorldDir(hit.Normal))
	return hit
}
