package collision

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/broadphase"
	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

// QueryService is what the mover needs from the world: candidates along a
// swept sphere and the exact shape of each candidate.
type QueryService interface {
	// QuerySphereSweep appends to out[:0] the entities near the sphere moving
	// from pos to pos+delta.
	QuerySphereSweep(pos, delta rl.Vector3, radius float32, filter *broadphase.QueryFilter, out []engine.EntityID) []engine.EntityID
	GetAABB(id engine.EntityID) (physics.AABB, bool)
	GetOBB(id engine.EntityID) (physics.OBB, bool)
	GetSphere(id engine.EntityID) (physics.Sphere, bool)
	IsTrigger(id engine.EntityID) bool
}

// CacheQueryService answers queries from a broadphase and a collider cache.
type CacheQueryService struct {
	broadphase broadphase.Broadphase
	cache      *ColliderCache
}

var _ QueryService = (*CacheQueryService)(nil)

func NewCacheQueryService(bp broadphase.Broadphase, cache *ColliderCache) *CacheQueryService {
	return &CacheQueryService{broadphase: bp, cache: cache}
}

func (q *CacheQueryService) QuerySphereSweep(pos, delta rl.Vector3, radius float32, filter *broadphase.QueryFilter, out []engine.EntityID) []engine.EntityID {
	return q.broadphase.QueryAABB(physics.SweptAABB(pos, delta, radius), filter, out)
}

func (q *CacheQueryService) GetAABB(id engine.EntityID) (physics.AABB, bool) {
	b, ok := q.cache.Boxes[id]
	return b.AABB, ok
}

func (q *CacheQueryService) GetOBB(id engine.EntityID) (physics.OBB, bool) {
	b, ok := q.cache.Boxes[id]
	return b.OBB, ok
}

func (q *CacheQueryService) GetSphere(id engine.EntityID) (physics.Sphere, bool) {
	s, ok := q.cache.Spheres[id]
	return s.Sphere, ok
}

func (q *CacheQueryService) IsTrigger(id engine.EntityID) bool {
	return q.cache.IsTrigger(id)
}
