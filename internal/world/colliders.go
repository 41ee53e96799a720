package world

import (
	"fmt"

	"spheremove/internal/broadphase"
	"spheremove/internal/collision"
	"spheremove/internal/components"
	"spheremove/internal/engine"
	"spheremove/internal/logging"
	"spheremove/internal/physics"
)

// hookRegistry mirrors collider components into the cache and broadphase.
func (w *PhysicsWorld) hookRegistry() {
	w.registry.OnComponentAdded.AddListener(func(ev engine.ComponentEvent) {
		if err := w.buildCollider(ev.Entity, ev.Component); err != nil {
			w.log.Warn("collider rejected", logging.Uint64("entity", uint64(ev.Entity)), logging.Err(err))
		}
	})
	w.registry.OnComponentRemoved.AddListener(func(ev engine.ComponentEvent) {
		switch ev.Component.(type) {
		case *components.BoxCollider:
			delete(w.cache.Boxes, ev.Entity)
			w.refreshProxy(ev.Entity)
		case *components.SphereCollider:
			delete(w.cache.Spheres, ev.Entity)
			w.refreshProxy(ev.Entity)
		}
	})
	w.registry.OnEntityDestroyed.AddListener(w.forget)
}

func (w *PhysicsWorld) buildCollider(id engine.EntityID, c engine.Component) error {
	t, ok := w.registry.Transform(id)
	if !ok {
		return fmt.Errorf("build collider for %d: %w", id, engine.ErrUnknownEntity)
	}

	switch col := c.(type) {
	case *components.BoxCollider:
		obb := col.WorldOBB(t)
		w.cache.Boxes[id] = collision.BoxColliderInfo{
			OBB:       obb,
			AABB:      physics.AABBFromOBB(obb),
			IsStatic:  col.IsStatic,
			IsTrigger: col.IsTrigger,
		}
		w.log.Debug("box collider registered", logging.Uint64("entity", uint64(id)), logging.Bool("static", col.IsStatic))
	case *components.SphereCollider:
		sphere, err := col.WorldSphere(t.Position)
		if err != nil {
			return err
		}
		w.cache.Spheres[id] = collision.SphereColliderInfo{
			Sphere:    sphere,
			IsStatic:  col.IsStatic,
			IsTrigger: col.IsTrigger,
		}
		w.log.Debug("sphere collider registered", logging.Uint64("entity", uint64(id)), logging.Bool("static", col.IsStatic))
	default:
		return nil
	}

	w.refreshProxy(id)
	return nil
}

// refreshProxy re-registers id in the broadphase from whatever shape is left
// in the cache. Only static colliders are indexed. A box wins over a sphere.
func (w *PhysicsWorld) refreshProxy(id engine.EntityID) {
	w.broadphase.Remove(id)

	e, ok := w.registry.Get(id)
	if !ok {
		return
	}
	if info, ok := w.cache.Boxes[id]; ok {
		if col := engine.GetComponent[*components.BoxCollider](e); col != nil && info.IsStatic {
			w.broadphase.Insert(proxyFor(id, info.AABB, col.CategoryBits, col.MaskBits))
		}
		return
	}
	if info, ok := w.cache.Spheres[id]; ok {
		col := engine.GetComponent[*components.SphereCollider](e)
		if col == nil || !info.IsStatic {
			return
		}
		box, err := physics.AABBFromSphere(info.Sphere)
		if err != nil {
			return
		}
		w.broadphase.Insert(proxyFor(id, box, col.CategoryBits, col.MaskBits))
	}
}

func proxyFor(id engine.EntityID, box physics.AABB, category, mask uint32) broadphase.Proxy {
	p := broadphase.NewProxy(id, box, true)
	p.CategoryBits = category
	p.MaskBits = mask
	return p
}

// SyncCollider rebuilds the shapes of id from its current transform. Call it
// after moving a collider by hand; movers are kept in sync by Step.
func (w *PhysicsWorld) SyncCollider(id engine.EntityID) error {
	e, ok := w.registry.Get(id)
	if !ok {
		return fmt.Errorf("sync collider %d: %w", id, engine.ErrUnknownEntity)
	}
	for _, c := range e.Components() {
		if err := w.buildCollider(id, c); err != nil {
			return err
		}
	}
	return nil
}

// forget drops every trace of a destroyed entity. Movers that were touching
// it get their exit events on their next move.
func (w *PhysicsWorld) forget(id engine.EntityID) {
	w.cache.Remove(id)
	w.broadphase.Remove(id)
	delete(w.collisions, id)
	delete(w.triggers, id)
}
