package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownEntity = errors.New("engine: unknown entity")

// Registry is an arena of entities addressed by EntityID. It owns the
// transforms and components and raises lifecycle events for systems that
// mirror component data, such as the physics collider cache.
type Registry struct {
	next     EntityID
	entities map[EntityID]*Entity
	order    []EntityID

	OnComponentAdded   EventWithArg[ComponentEvent]
	OnComponentRemoved EventWithArg[ComponentEvent]
	OnEntityDestroyed  EventWithArg[EntityID]
}

func NewRegistry() *Registry {
	return &Registry{
		entities: make(map[EntityID]*Entity),
		order:    make([]EntityID, 0),
	}
}

// Create allocates a new entity with the given transform.
func (r *Registry) Create(name string, transform Transform) EntityID {
	r.next++
	id := r.next
	r.entities[id] = &Entity{
		ID:         id,
		Name:       name,
		Transform:  transform,
		components: make([]Component, 0),
	}
	r.order = append(r.order, id)
	return id
}

func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

func (r *Registry) Transform(id EntityID) (Transform, bool) {
	e, ok := r.entities[id]
	if !ok {
		return Transform{}, false
	}
	return e.Transform, true
}

func (r *Registry) SetTransform(id EntityID, t Transform) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	e.Transform = t
	return true
}

// AddComponent attaches c to the entity and raises OnComponentAdded.
func (r *Registry) AddComponent(id EntityID, c Component) error {
	e, ok := r.entities[id]
	if !ok {
		return fmt.Errorf("add component to %d: %w", id, ErrUnknownEntity)
	}
	c.SetEntity(id)
	e.components = append(e.components, c)
	r.OnComponentAdded.Invoke(ComponentEvent{Entity: id, Component: c})
	return nil
}

// RemoveComponent detaches the first component of type T and raises
// OnComponentRemoved. It reports whether anything was removed.
func RemoveComponent[T Component](r *Registry, id EntityID) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	for i, c := range e.components {
		if _, ok := c.(T); ok {
			e.components = append(e.components[:i], e.components[i+1:]...)
			r.OnComponentRemoved.Invoke(ComponentEvent{Entity: id, Component: c})
			return true
		}
	}
	return false
}

// Destroy raises OnEntityDestroyed while the entity is still resolvable, then
// releases it. Destroying an unknown entity is a no-op.
func (r *Registry) Destroy(id EntityID) bool {
	if _, ok := r.entities[id]; !ok {
		return false
	}
	r.OnEntityDestroyed.Invoke(id)

	delete(r.entities, id)
	for i, other := range r.order {
		if other == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Entities lists live handles in creation order.
func (r *Registry) Entities() []EntityID {
	out := make([]EntityID, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) FindByName(name string) (EntityID, bool) {
	for _, id := range r.order {
		if r.entities[id].Name == name {
			return id, true
		}
	}
	return InvalidEntity, false
}

func (r *Registry) FindByTag(tag string) []EntityID {
	var result []EntityID
	for _, id := range r.order {
		if r.entities[id].HasTag(tag) {
			result = append(result, id)
		}
	}
	return result
}

// Each visits every entity carrying a component of type T, in creation order.
func Each[T Component](r *Registry, fn func(id EntityID, c T)) {
	for _, id := range r.order {
		e := r.entities[id]
		for _, c := range e.components {
			if typed, ok := c.(T); ok {
				fn(id, typed)
				break
			}
		}
	}
}

func (r *Registry) Len() int {
	return len(r.entities)
}
