package world

import (
	"slices"

	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

// RaycastHit is the nearest collider along a ray.
type RaycastHit struct {
	Entity engine.EntityID
	physics.CollisionHit
}

// Raycast tests every cached collider, boxes as oriented boxes. Trigger
// volumes are skipped unless includeTriggers is set. Equal distances resolve
// to the lower entity.
func (w *PhysicsWorld) Raycast(ray physics.Ray, maxDistance float32, includeTriggers bool) (RaycastHit, bool) {
	ids := make([]engine.EntityID, 0, len(w.cache.Boxes)+len(w.cache.Spheres))
	for id := range w.cache.Boxes {
		ids = append(ids, id)
	}
	for id := range w.cache.Spheres {
		if _, boxed := w.cache.Boxes[id]; !boxed {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	var best RaycastHit
	for _, id := range ids {
		if !includeTriggers && w.cache.IsTrigger(id) {
			continue
		}
		var hit physics.CollisionHit
		if box, ok := w.cache.Boxes[id]; ok {
			hit = physics.RaycastOBB(ray, box.OBB, maxDistance)
		} else {
			hit = physics.RaycastSphere(ray, w.cache.Spheres[id].Sphere, maxDistance)
		}
		if hit.Hit && (!best.Hit || hit.TimeOfImpact < best.TimeOfImpact) {
			best = RaycastHit{Entity: id, CollisionHit: hit}
		}
	}
	return best, best.Hit
}
