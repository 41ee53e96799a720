// Package broadphase indexes collider bounds so the mover only runs exact
// tests against nearby obstacles.
package broadphase

import (
	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

const (
	AllCategories uint32 = 0xFFFFFFFF
	AllMasks      uint32 = 0xFFFFFFFF
)

// Proxy is the broadphase's view of one collider.
type Proxy struct {
	Entity       engine.EntityID
	AABB         physics.AABB
	CategoryBits uint32
	MaskBits     uint32
	IsStatic     bool
}

// NewProxy returns a proxy that collides with everything.
func NewProxy(entity engine.EntityID, box physics.AABB, isStatic bool) Proxy {
	return Proxy{
		Entity:       entity,
		AABB:         box,
		CategoryBits: AllCategories,
		MaskBits:     AllMasks,
		IsStatic:     isStatic,
	}
}

// QueryFilter describes the querying body's layers.
type QueryFilter struct {
	CategoryBits uint32
	MaskBits     uint32
}

// DefaultFilter accepts every proxy that accepts some category.
var DefaultFilter = QueryFilter{CategoryBits: AllCategories, MaskBits: AllMasks}

// Accepts is symmetric: each side's category must be in the other's mask.
func (f QueryFilter) Accepts(p Proxy) bool {
	return f.CategoryBits&p.MaskBits != 0 && p.CategoryBits&f.MaskBits != 0
}

// Broadphase is the spatial index contract used by the collision query service.
type Broadphase interface {
	Insert(proxy Proxy)
	Remove(entity engine.EntityID)
	Update(entity engine.EntityID, box physics.AABB)
	// QueryAABB appends to out[:0] every entity whose cells overlap area,
	// sorted and without duplicates. A nil filter accepts everything.
	QueryAABB(area physics.AABB, filter *QueryFilter, out []engine.EntityID) []engine.EntityID
}
