// Package collision connects the broadphase and the collider shapes to the
// iterative sphere mover.
package collision

import (
	"errors"

	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

// ErrShapeMissing means the broadphase returned an entity the collider cache
// has no shape for. The two are out of sync and the current solve is aborted.
var ErrShapeMissing = errors.New("collision: broadphase candidate has no registered shape")

type BoxColliderInfo struct {
	OBB       physics.OBB
	AABB      physics.AABB // tight bounds of OBB
	IsStatic  bool
	IsTrigger bool
}

type SphereColliderInfo struct {
	Sphere    physics.Sphere
	IsStatic  bool
	IsTrigger bool
}

// ColliderCache holds the world-space shape of every collider, keyed by entity.
type ColliderCache struct {
	Boxes   map[engine.EntityID]BoxColliderInfo
	Spheres map[engine.EntityID]SphereColliderInfo
}

func NewColliderCache() *ColliderCache {
	return &ColliderCache{
		Boxes:   make(map[engine.EntityID]BoxColliderInfo),
		Spheres: make(map[engine.EntityID]SphereColliderInfo),
	}
}

// Bounds returns the AABB used for broadphase registration.
func (c *ColliderCache) Bounds(id engine.EntityID) (physics.AABB, bool) {
	if b, ok := c.Boxes[id]; ok {
		return b.AABB, true
	}
	if s, ok := c.Spheres[id]; ok {
		box, err := physics.AABBFromSphere(s.Sphere)
		return box, err == nil
	}
	return physics.AABB{}, false
}

// IsTrigger reports whether id is a registered trigger volume.
func (c *ColliderCache) IsTrigger(id engine.EntityID) bool {
	if b, ok := c.Boxes[id]; ok {
		return b.IsTrigger
	}
	if s, ok := c.Spheres[id]; ok {
		return s.IsTrigger
	}
	return false
}

// Has reports whether any shape is registered for id.
func (c *ColliderCache) Has(id engine.EntityID) bool {
	_, box := c.Boxes[id]
	_, sphere := c.Spheres[id]
	return box || sphere
}

// Remove drops every shape of id and reports whether one existed.
func (c *ColliderCache) Remove(id engine.EntityID) bool {
	had := c.Has(id)
	delete(c.Boxes, id)
	delete(c.Spheres, id)
	return had
}

// Overlaps tests a sphere against the cached shape of id.
func (c *ColliderCache) Overlaps(id engine.EntityID, s physics.Sphere) bool {
	if b, ok := c.Boxes[id]; ok {
		return physics.OverlapSphereOBB(s, b.OBB)
	}
	if other, ok := c.Spheres[id]; ok {
		return physics.OverlapSphereSphere(s, other.Sphere)
	}
	return false
}
