package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func v3(x, y, z float32) rl.Vector3 { return rl.Vector3{X: x, Y: y, Z: z} }

func assertVec(t *testing.T, want, got rl.Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Z, got.Z, tolerance, msgAndArgs...)
}

func unitBox() AABB {
	return AABB{Min: v3(-1, -1, -1), Max: v3(1, 1, 1)}
}

func TestOverlapAABB(t *testing.T) {
	tests := []struct {
		name string
		a, b AABB
		want bool
	}{
		{"overlapping", AABB{v3(0, 0, 0), v3(2, 2, 2)}, AABB{v3(1, 1, 1), v3(3, 3, 3)}, true},
		{"touching face", AABB{v3(0, 0, 0), v3(1, 1, 1)}, AABB{v3(1, 0, 0), v3(2, 1, 1)}, true},
		{"touching corner", AABB{v3(0, 0, 0), v3(1, 1, 1)}, AABB{v3(1, 1, 1), v3(2, 2, 2)}, true},
		{"separated on x", AABB{v3(0, 0, 0), v3(1, 1, 1)}, AABB{v3(1.01, 0, 0), v3(2, 1, 1)}, false},
		{"separated on z only", AABB{v3(0, 0, 0), v3(1, 1, 1)}, AABB{v3(0, 0, -3), v3(1, 1, -2)}, false},
		{"contained", AABB{v3(-5, -5, -5), v3(5, 5, 5)}, unitBox(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OverlapAABB(tt.a, tt.b))
			assert.Equal(t, tt.want, OverlapAABB(tt.b, tt.a), "overlap must be symmetric")
		})
	}
}

func TestClosestPointAABB(t *testing.T) {
	box := unitBox()
	assertVec(t, v3(1, 0, 0), ClosestPointAABB(v3(5, 0, 0), box))
	assertVec(t, v3(1, -1, 1), ClosestPointAABB(v3(3, -4, 2), box))
	assertVec(t, v3(0.5, 0.2, -0.3), ClosestPointAABB(v3(0.5, 0.2, -0.3), box), "inside points are unchanged")
}

func TestOverlapSphereAABBMatchesClosestPointDistance(t *testing.T) {
	box := AABB{Min: v3(0, 0, 0), Max: v3(2, 1, 3)}
	centers := []rl.Vector3{
		v3(-1, 0.5, 1), v3(3, 2, 4), v3(1, 0.5, 1.5), v3(2.5, 0.5, 1.5),
		v3(-0.5, -0.5, -0.5), v3(1, 1.5, 3.5), v3(2, 1, 3),
	}
	radii := []float32{0.25, 0.5, 1, 2}

	for _, c := range centers {
		for _, r := range radii {
			s := Sphere{Center: c, Radius: r}
			closest := ClosestPointAABB(c, box)
			want := rl.Vector3LengthSqr(rl.Vector3Subtract(closest, c)) <= r*r
			assert.Equal(t, want, OverlapSphereAABB(s, box), "center %v radius %v", c, r)
		}
	}
}

func TestOverlapSphereBoundaryInclusive(t *testing.T) {
	assert.True(t, OverlapSphereAABB(Sphere{Center: v3(2, 0, 0), Radius: 1}, unitBox()))
	assert.False(t, OverlapSphereAABB(Sphere{Center: v3(2.5, 0, 0), Radius: 1}, unitBox()))

	assert.True(t, OverlapSphereSphere(Sphere{Center: v3(0, 0, 0), Radius: 1}, Sphere{Center: v3(2, 0, 0), Radius: 1}))
	assert.False(t, OverlapSphereSphere(Sphere{Center: v3(0, 0, 0), Radius: 1}, Sphere{Center: v3(2.5, 0, 0), Radius: 1}))

	obb := NewAxisAlignedOBB(v3(0, 0, 0), v3(2, 2, 2))
	assert.True(t, OverlapSphereOBB(Sphere{Center: v3(0, 2, 0), Radius: 1}, obb))
	assert.False(t, OverlapSphereOBB(Sphere{Center: v3(0, 2.5, 0), Radius: 1}, obb))
}

func TestClosestPointIdentityOBBMatchesAABB(t *testing.T) {
	center := v3(1, 2, 3)
	size := v3(2, 4, 6)
	obb := NewAxisAlignedOBB(center, size)
	box := NewAABBFromCenter(center, size)

	points := []rl.Vector3{
		v3(0, 0, 0), v3(10, -10, 3), v3(1.5, 2.5, 3.5), v3(-4, 7, 12), v3(2, 4, 6),
	}
	for _, p := range points {
		assertVec(t, ClosestPointAABB(p, box), ClosestPointOBB(p, obb), "point %v", p)
	}
}

func TestClosestPointRotatedOBB(t *testing.T) {
	// 4 wide on local X, turned a quarter about Y: the long side lies along world Z
	obb := NewOBB(v3(0, 0, 0), v3(4, 2, 2), v3(0, 90, 0))

	assertVec(t, v3(1, 0, 0), ClosestPointOBB(v3(5, 0, 0), obb))
	assertVec(t, v3(0, 0, 2), ClosestPointOBB(v3(0, 0, 5), obb))
}

func TestAABBFromOBB(t *testing.T) {
	obb := NewOBB(v3(3, 0, 0), v3(4, 2, 2), v3(0, 90, 0))
	bounds := AABBFromOBB(obb)

	assertVec(t, v3(2, -1, -2), bounds.Min)
	assertVec(t, v3(4, 1, 2), bounds.Max)
}

func TestNewOBBFromBoxAppliesScale(t *testing.T) {
	obb := NewOBBFromBox(v3(0, 0, 0), v3(1, 1, 1), v3(0, 0, 0), v3(2, -4, 6))
	assertVec(t, v3(1, 2, 3), obb.HalfExtents, "negative scale still yields positive extents")
}

func TestSphereConstruction(t *testing.T) {
	_, err := NewSphere(v3(0, 0, 0), 0)
	assert.ErrorIs(t, err, ErrInvalidRadius)

	_, err = AABBFromSphere(Sphere{Center: v3(1, 1, 1), Radius: -1})
	assert.ErrorIs(t, err, ErrInvalidRadius)

	s, err := NewSphere(v3(1, 2, 3), 0.5)
	require.NoError(t, err)
	bounds, err := AABBFromSphere(s)
	require.NoError(t, err)
	assertVec(t, v3(0.5, 1.5, 2.5), bounds.Min)
	assertVec(t, v3(1.5, 2.5, 3.5), bounds.Max)
}

func TestSweptAABB(t *testing.T) {
	bounds := SweptAABB(v3(0, 0, 5), v3(0, 0, -10), 0.5)
	assertVec(t, v3(-0.5, -0.5, -5.5), bounds.Min)
	assertVec(t, v3(0.5, 0.5, 5.5), bounds.Max)
}

func TestExpandAndUnion(t *testing.T) {
	a := AABB{Min: v3(0, 0, 0), Max: v3(1, 1, 1)}
	b := AABB{Min: v3(-2, 0.5, 3), Max: v3(-1, 4, 4)}

	grown := a.Expand(0.5)
	assertVec(t, v3(-0.5, -0.5, -0.5), grown.Min)
	assertVec(t, v3(1.5, 1.5, 1.5), grown.Max)

	u := a.Union(b)
	assertVec(t, v3(-2, 0, 0), u.Min)
	assertVec(t, v3(1, 4, 4), u.Max)
	assert.Equal(t, u, b.Union(a))
}

func TestSlide(t *testing.T) {
	assertVec(t, v3(1, 0, 0), Slide(v3(1, 1, 0), v3(0, 1, 0)))
	assertVec(t, v3(0, 0, 0), Slide(v3(0, 3, 0), v3(0, 1, 0)), "parallel motion is fully removed")
	assertVec(t, v3(0, 0, 0), Slide(v3(0, -2, 0), v3(0, 1, 0)))
	assertVec(t, v3(2, 0, 5), Slide(v3(2, 0, 5), v3(0, 1, 0)), "motion along the plane is untouched")
}

func TestPenetrationSphereAABB(t *testing.T) {
	t.Run("separated", func(t *testing.T) {
		hit := PenetrationSphereAABB(Sphere{Center: v3(0, 3, 0), Radius: 1}, unitBox())
		assert.Equal(t, CollisionHit{}, hit)
	})

	t.Run("outside face", func(t *testing.T) {
		hit := PenetrationSphereAABB(Sphere{Center: v3(0, 1.5, 0), Radius: 1}, unitBox())
		require.True(t, hit.Hit)
		assertVec(t, v3(0, 1, 0), hit.Point)
		assertVec(t, v3(0, 1, 0), hit.Normal)
		assert.InDelta(t, 0.5, hit.PenetrationDepth, tolerance)
	})

	t.Run("center inside uses nearest face", func(t *testing.T) {
		hit := PenetrationSphereAABB(Sphere{Center: v3(0, 0.9, 0), Radius: 1}, unitBox())
		require.True(t, hit.Hit)
		assertVec(t, v3(0, 1, 0), hit.Normal)
		assert.InDelta(t, 1, hit.PenetrationDepth, tolerance)
	})

	t.Run("center inside near negative face", func(t *testing.T) {
		hit := PenetrationSphereAABB(Sphere{Center: v3(-0.95, 0.2, 0), Radius: 0.5}, unitBox())
		require.True(t, hit.Hit)
		assertVec(t, v3(-1, 0, 0), hit.Normal)
		assert.InDelta(t, 0.5, hit.PenetrationDepth, tolerance)
	})
}

func TestPenetrationSphereOBB(t *testing.T) {
	obb := NewOBB(v3(0, 0, 0), v3(4, 2, 2), v3(0, 90, 0))
	hit := PenetrationSphereOBB(Sphere{Center: v3(0, 0, 2.5), Radius: 1}, obb)

	require.True(t, hit.Hit)
	assertVec(t, v3(0, 0, 1), hit.Normal)
	assert.InDelta(t, 0.5, hit.PenetrationDepth, tolerance)
}

func TestPenetrationAABB(t *testing.T) {
	a := AABB{Min: v3(0, 0, 0), Max: v3(2, 2, 2)}
	b := AABB{Min: v3(1.5, 0, 0), Max: v3(3.5, 2, 2)}

	hit := PenetrationAABB(a, b)
	require.True(t, hit.Hit)
	assertVec(t, v3(-1, 0, 0), hit.Normal, "a is pushed away from b")
	assert.InDelta(t, 0.5, hit.PenetrationDepth, tolerance)

	reverse := PenetrationAABB(b, a)
	assertVec(t, v3(1, 0, 0), reverse.Normal)

	assert.False(t, PenetrationAABB(a, AABB{Min: v3(5, 5, 5), Max: v3(6, 6, 6)}).Hit)
}
