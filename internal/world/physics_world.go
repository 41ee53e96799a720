// Package world runs the per-tick sphere movement over a registry of entities
// and loads level files into it.
package world

import (
	"fmt"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"spheremove/internal/broadphase"
	"spheremove/internal/collision"
	"spheremove/internal/components"
	"spheremove/internal/config"
	"spheremove/internal/engine"
	"spheremove/internal/logging"
	"spheremove/internal/physics"
)

type entitySet map[engine.EntityID]struct{}

// PhysicsWorld moves every entity carrying a MotionIntent and a SphereCollider
// through the static colliders of the registry. It is owned by a single tick
// loop and does no locking.
type PhysicsWorld struct {
	registry   *engine.Registry
	broadphase broadphase.Broadphase
	cache      *collision.ColliderCache
	query      *collision.CacheQueryService
	cfg        config.Physics
	log        *logging.Logger
	events     *engine.EventQueue

	collisions map[engine.EntityID]entitySet
	triggers   map[engine.EntityID]entitySet

	candidates []engine.EntityID
	blocking   []engine.EntityID
	volumes    []engine.EntityID
}

func NewPhysicsWorld(registry *engine.Registry, bp broadphase.Broadphase, cache *collision.ColliderCache,
	cfg config.Physics, log *logging.Logger, events *engine.EventQueue) *PhysicsWorld {
	w := &PhysicsWorld{
		registry:   registry,
		broadphase: bp,
		cache:      cache,
		query:      collision.NewCacheQueryService(bp, cache),
		cfg:        cfg,
		log:        log.With(logging.String("system", "physics")),
		events:     events,
		collisions: make(map[engine.EntityID]entitySet),
		triggers:   make(map[engine.EntityID]entitySet),
	}
	w.hookRegistry()
	return w
}

func (w *PhysicsWorld) Cache() *collision.ColliderCache { return w.cache }
func (w *PhysicsWorld) Query() collision.QueryService   { return w.query }
func (w *PhysicsWorld) Events() *engine.EventQueue      { return w.events }

// Step advances every mover by dt seconds in registry order. It stops at the
// first broadphase/cache desync and returns it.
func (w *PhysicsWorld) Step(dt float32) error {
	var stepErr error
	engine.Each(w.registry, func(id engine.EntityID, intent *components.MotionIntent) {
		if stepErr != nil {
			return
		}
		stepErr = w.moveEntity(id, intent, dt)
	})
	return stepErr
}

// IntentToDelta turns a movement intent into this tick's displacement.
// With LockVertical the Y component is discarded before anything else.
func IntentToDelta(intent *components.MotionIntent, cfg config.Physics, dt float32) rl.Vector3 {
	local := intent.Translation
	if cfg.LockVertical {
		local.Y = 0
	}

	lengthSqr := rl.Vector3LengthSqr(local)
	if lengthSqr < cfg.MoveEpsilon {
		return rl.Vector3{}
	}
	if lengthSqr > 1 {
		local = rl.Vector3Scale(local, 1/rl.Vector3Length(local))
	}

	multiplier := intent.SpeedMultiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	return rl.Vector3Scale(local, cfg.BaseSpeed*multiplier*dt)
}

func (w *PhysicsWorld) moveEntity(id engine.EntityID, intent *components.MotionIntent, dt float32) error {
	transform, ok := w.registry.Transform(id)
	if !ok {
		return nil
	}
	transform.Rotation = intent.Rotation
	transform.Scale = intent.Scale

	delta := IntentToDelta(intent, w.cfg, dt)
	if rl.Vector3LengthSqr(delta) < w.cfg.MoveEpsilon {
		w.registry.SetTransform(id, transform)
		return nil
	}

	info, ok := w.cache.Spheres[id]
	if !ok {
		// Movers without a sphere collider only turn and scale.
		w.registry.SetTransform(id, transform)
		return nil
	}
	radius := info.Sphere.Radius
	filter := w.moverFilter(id)

	w.splitCandidates(id, transform.Position, delta, radius, &filter)

	result, err := collision.SolveCandidates(collision.MoverInput{
		Position:      transform.Position,
		Radius:        radius,
		Delta:         delta,
		MaxIterations: w.cfg.MaxIterations,
		Skin:          w.cfg.Skin,
		Filter:        &filter,
	}, w.query, w.blocking)
	if err != nil {
		w.log.Error("broadphase and collider cache out of sync", logging.Uint64("entity", uint64(id)), logging.Err(err))
		return fmt.Errorf("move entity %d: %w", id, err)
	}

	for _, c := range result.Contacts {
		w.log.Debug("mover contact",
			logging.Uint64("entity", uint64(id)),
			logging.Uint64("other", uint64(c.Entity)),
			logging.Float32("toi", c.TimeOfImpact))
	}

	transform.Position = result.NewPosition
	w.registry.SetTransform(id, transform)
	w.syncMover(id, info, result.NewPosition)

	touching := make(entitySet, len(result.Contacts))
	for _, c := range result.Contacts {
		touching[c.Entity] = struct{}{}
	}
	w.raise(id, w.collisions, touching, engine.CollisionExit, engine.CollisionEnter)

	final := physics.Sphere{Center: result.NewPosition, Radius: radius}
	inside := make(entitySet)
	for _, other := range w.volumes {
		if w.cache.Overlaps(other, final) {
			inside[other] = struct{}{}
		}
	}
	w.raise(id, w.triggers, inside, engine.TriggerExit, engine.TriggerEnter)
	return nil
}

func (w *PhysicsWorld) moverFilter(id engine.EntityID) broadphase.QueryFilter {
	e, _ := w.registry.Get(id)
	col := engine.GetComponent[*components.SphereCollider](e)
	if col == nil {
		return broadphase.DefaultFilter
	}
	return broadphase.QueryFilter{CategoryBits: col.CategoryBits, MaskBits: col.MaskBits}
}

// splitCandidates fills w.blocking and w.volumes from the broadphase, leaving
// out the mover itself. Entities unknown to the cache stay blocking so the
// solver reports the desync.
func (w *PhysicsWorld) splitCandidates(id engine.EntityID, pos, delta rl.Vector3, radius float32, filter *broadphase.QueryFilter) {
	w.candidates = w.query.QuerySphereSweep(pos, delta, radius, filter, w.candidates)
	w.blocking = w.blocking[:0]
	w.volumes = w.volumes[:0]
	for _, other := range w.candidates {
		if other == id {
			continue
		}
		if w.cache.Has(other) && w.cache.IsTrigger(other) {
			w.volumes = append(w.volumes, other)
		} else {
			w.blocking = append(w.blocking, other)
		}
	}
}

// syncMover moves the cached shapes of id, and its proxy when indexed, to pos.
func (w *PhysicsWorld) syncMover(id engine.EntityID, info collision.SphereColliderInfo, pos rl.Vector3) {
	info.Sphere.Center = pos
	w.cache.Spheres[id] = info

	static := info.IsStatic
	if boxInfo, ok := w.cache.Boxes[id]; ok {
		e, _ := w.registry.Get(id)
		if col := engine.GetComponent[*components.BoxCollider](e); col != nil {
			boxInfo.OBB = col.WorldOBB(e.Transform)
			boxInfo.AABB = physics.AABBFromOBB(boxInfo.OBB)
			w.cache.Boxes[id] = boxInfo
		}
		static = boxInfo.IsStatic
	}
	if !static {
		return
	}
	if box, ok := w.cache.Bounds(id); ok {
		w.broadphase.Update(id, box)
	}
}

// raise diffs the previous contact set of target with current, enqueues
// exits then enters, each sorted by entity, and stores current.
func (w *PhysicsWorld) raise(target engine.EntityID, state map[engine.EntityID]entitySet, current entitySet, exit, enter engine.PhysicsEventType) {
	previous := state[target]

	var exited, entered []engine.EntityID
	for other := range previous {
		if _, still := current[other]; !still {
			exited = append(exited, other)
		}
	}
	for other := range current {
		if _, was := previous[other]; !was {
			entered = append(entered, other)
		}
	}
	slices.Sort(exited)
	slices.Sort(entered)

	for _, other := range exited {
		w.events.Enqueue(engine.PhysicsEvent{Type: exit, Target: target, Other: other})
	}
	for _, other := range entered {
		w.events.Enqueue(engine.PhysicsEvent{Type: enter, Target: target, Other: other})
	}

	if len(current) == 0 {
		delete(state, target)
		return
	}
	state[target] = current
}

// Touching lists what target collided with on its last move, sorted.
func (w *PhysicsWorld) Touching(target engine.EntityID) []engine.EntityID {
	return sortedIDs(w.collisions[target])
}

// Inside lists the trigger volumes target overlapped after its last move, sorted.
func (w *PhysicsWorld) Inside(target engine.EntityID) []engine.EntityID {
	return sortedIDs(w.triggers[target])
}

func sortedIDs(s entitySet) []engine.EntityID {
	out := make([]engine.EntityID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
