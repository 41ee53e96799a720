package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// rayEnter clips the segment origin + dir*t, t in [0, length], against box
// using the slab method and returns the entry parameter.
func rayEnter(origin, dir rl.Vector3, length float32, box AABB) (float32, bool) {
	tmin := float32(0)
	tmax := length

	for i := 0; i < 3; i++ {
		o := axis(origin, i)
		d := axis(dir, i)
		lo, hi := axis(box.Min, i), axis(box.Max, i)

		if absf(d) < Epsilon {
			// Parallel to this slab: must already be between its planes
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}

// faceNormal picks the face of b whose plane is nearest to p.
// Ties resolve in the order -X, +X, -Y, +Y, -Z, +Z.
func faceNormal(p rl.Vector3, b AABB) rl.Vector3 {
	best := absf(p.X - b.Min.X)
	n := rl.Vector3{X: -1}

	candidates := [5]struct {
		dist   float32
		normal rl.Vector3
	}{
		{absf(b.Max.X - p.X), rl.Vector3{X: 1}},
		{absf(p.Y - b.Min.Y), rl.Vector3{Y: -1}},
		{absf(b.Max.Y - p.Y), rl.Vector3{Y: 1}},
		{absf(p.Z - b.Min.Z), rl.Vector3{Z: -1}},
		{absf(b.Max.Z - p.Z), rl.Vector3{Z: 1}},
	}
	for _, c := range candidates {
		if c.dist < best {
			best = c.dist
			n = c.normal
		}
	}
	return n
}

// SweepSphereAABB finds the first contact of a sphere moving by delta against
// a static box. The box is grown by the radius and a ray is cast from the
// sphere center, so TimeOfImpact is measured along delta in world units.
func SweepSphereAABB(s Sphere, delta rl.Vector3, box AABB) CollisionHit {
	length := rl.Vector3Length(delta)
	if length < Epsilon {
		return CollisionHit{}
	}
	dir := rl.Vector3Scale(delta, 1/length)

	expanded := box.Expand(s.Radius)
	tEnter, ok := rayEnter(s.Center, dir, length, expanded)
	if !ok || tEnter > length {
		return CollisionHit{}
	}

	toi := clamp(tEnter, 0, length)
	point := rl.Vector3Add(s.Center, rl.Vector3Scale(dir, toi))
	return CollisionHit{
		Hit:          true,
		TimeOfImpact: toi,
		Point:        point,
		Normal:       faceNormal(point, expanded),
	}
}

// SweepSphereOBB runs the AABB sweep in the box frame and maps the contact back.
func SweepSphereOBB(s Sphere, delta rl.Vector3, o OBB) CollisionHit {
	local := Sphere{Center: o.ToLocal(s.Center), Radius: s.Radius}
	hit := SweepSphereAABB(local, o.ToLocalDir(delta), o.LocalBox())
	if !hit.Hit {
		return hit
	}
	hit.Point = o.ToWorld(hit.Point)
	hit.Normal = rl.Vector3Normalize(o.ToWorldDir(hit.Normal))
	return hit
}

// SweepSphereSphere casts the moving center against a sphere of the summed radius.
func SweepSphereSphere(s Sphere, delta rl.Vector3, other Sphere) CollisionHit {
	length := rl.Vector3Length(delta)
	if length < Epsilon {
		return CollisionHit{}
	}
	dir := rl.Vector3Scale(delta, 1/length)
	r := s.Radius + other.Radius

	oc := rl.Vector3Subtract(s.Center, other.Center)
	b := rl.Vector3DotProduct(oc, dir)
	c := rl.Vector3DotProduct(oc, oc) - r*r

	if c <= 0 {
		// Already touching or overlapping
		n := rl.Vector3Normalize(oc)
		if rl.Vector3LengthSqr(n) == 0 {
			n = rl.Vector3Negate(dir)
		}
		return CollisionHit{Hit: true, Point: s.Center, Normal: n}
	}
	if b > 0 {
		return CollisionHit{}
	}

	disc := b*b - c
	if disc < 0 {
		return CollisionHit{}
	}
	t := -b - sqrtf(disc)
	if t < 0 || t > length {
		return CollisionHit{}
	}

	point := rl.Vector3Add(s.Center, rl.Vector3Scale(dir, t))
	return CollisionHit{
		Hit:          true,
		TimeOfImpact: t,
		Point:        point,
		Normal:       rl.Vector3Normalize(rl.Vector3Subtract(point, other.Center)),
	}
}
