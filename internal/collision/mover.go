package collision

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/broadphase"
	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

const (
	DefaultMaxIterations = 3
	// DefaultSkin is the distance the mover is pushed off a contact surface.
	DefaultSkin = 1e-6

	remainingEpsilon = 1e-12
)

type MoverInput struct {
	Position      rl.Vector3
	Radius        float32
	Delta         rl.Vector3 // full displacement for this tick
	MaxIterations int        // <= 0 uses DefaultMaxIterations
	Skin          float32    // <= 0 uses DefaultSkin
	Filter        *broadphase.QueryFilter
}

// Contact is one resolved hit. Normal points out of the obstacle.
type Contact struct {
	Entity       engine.EntityID
	TimeOfImpact float32
	Point        rl.Vector3
	Normal       rl.Vector3
}

// MoverResult summarises one solve.
//
// FirstTimeOfImpact is the smallest time of impact over all iterations
// (+Inf without contact). HitEntity and LastNormal describe only the most
// recent contact; LastNormal is the direction the mover was blocked in, the
// reverse of that contact's surface normal. Contacts keeps every contact in
// resolution order for callers that need the whole sequence.
type MoverResult struct {
	HitEntity         engine.EntityID
	HasHit            bool
	NewPosition       rl.Vector3
	Collided          bool
	FirstTimeOfImpact float32
	LastNormal        rl.Vector3
	Contacts          []Contact
}

// Solve moves a sphere through the world, querying fresh candidates along the
// remaining displacement on every iteration. Trigger volumes never block.
// A contact whose normal does not oppose the motion (dot(dir, normal) >= 0)
// is separating and is ignored, so a resting mover can slide or back away.
func Solve(in MoverInput, qs QueryService) (MoverResult, error) {
	return solve(in, qs, nil, true)
}

// SolveCandidates is Solve against a candidate list the caller already
// gathered and filtered.
func SolveCandidates(in MoverInput, qs QueryService, candidates []engine.EntityID) (MoverResult, error) {
	return solve(in, qs, candidates, false)
}

func solve(in MoverInput, qs QueryService, candidates []engine.EntityID, query bool) (MoverResult, error) {
	maxIterations := in.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	skin := in.Skin
	if skin <= 0 {
		skin = DefaultSkin
	}

	result := MoverResult{FirstTimeOfImpact: float32(math.Inf(1))}
	position := in.Position
	remaining := in.Delta
	var scratch []engine.EntityID

	for iteration := 0; iteration < maxIterations && rl.Vector3LengthSqr(remaining) > remainingEpsilon; iteration++ {
		if query {
			scratch = qs.QuerySphereSweep(position, remaining, in.Radius, in.Filter, scratch)
			candidates = scratch
		}

		length := rl.Vector3Length(remaining)
		dir := rl.Vector3Scale(remaining, 1/length)
		mover := physics.Sphere{Center: position, Radius: in.Radius}

		var best physics.CollisionHit
		bestEntity := engine.InvalidEntity
		for _, id := range candidates {
			if qs.IsTrigger(id) {
				continue
			}
			hit, err := sweepCandidate(qs, mover, remaining, id)
			if err != nil {
				return MoverResult{}, err
			}
			// Contacts whose surface does not face the motion would pin the
			// mover at time zero while it slides or backs away.
			if !hit.Hit || rl.Vector3DotProduct(dir, hit.Normal) >= 0 {
				continue
			}
			if bestEntity == engine.InvalidEntity || hit.TimeOfImpact < best.TimeOfImpact {
				best = hit
				bestEntity = id
			}
		}

		if bestEntity == engine.InvalidEntity || best.TimeOfImpact > length {
			position = rl.Vector3Add(position, remaining)
			remaining = rl.Vector3{}
			continue
		}

		travel := rl.Vector3Scale(dir, best.TimeOfImpact)
		position = rl.Vector3Add(position, travel)
		position = rl.Vector3Add(position, rl.Vector3Scale(best.Normal, skin))
		remaining = physics.Slide(rl.Vector3Subtract(remaining, travel), best.Normal)

		result.Collided = true
		result.HasHit = true
		result.HitEntity = bestEntity
		result.LastNormal = rl.Vector3Negate(best.Normal)
		if best.TimeOfImpact < result.FirstTimeOfImpact {
			result.FirstTimeOfImpact = best.TimeOfImpact
		}
		result.Contacts = append(result.Contacts, Contact{
			Entity:       bestEntity,
			TimeOfImpact: best.TimeOfImpact,
			Point:        best.Point,
			Normal:       best.Normal,
		})
	}

	result.NewPosition = position
	return result, nil
}

// sweepCandidate prefers the oriented box, then the axis-aligned box, then the sphere.
func sweepCandidate(qs QueryService, mover physics.Sphere, delta rl.Vector3, id engine.EntityID) (physics.CollisionHit, error) {
	if obb, ok := qs.GetOBB(id); ok {
		return physics.SweepSphereOBB(mover, delta, obb), nil
	}
	if box, ok := qs.GetAABB(id); ok {
		return physics.SweepSphereAABB(mover, delta, box), nil
	}
	if s, ok := qs.GetSphere(id); ok {
		return physics.SweepSphereSphere(mover, delta, s), nil
	}
	return physics.CollisionHit{}, fmt.Errorf("entity %d: %w", id, ErrShapeMissing)
}
