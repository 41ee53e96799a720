package engine

// Component is data attached to an entity. The registry stamps the owner on attach.
type Component interface {
	SetEntity(id EntityID)
	Entity() EntityID
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	entity EntityID
}

func (b *BaseComponent) SetEntity(id EntityID) {
	b.entity = id
}

func (b *BaseComponent) Entity() EntityID {
	return b.entity
}

// ComponentEvent is raised when a component is attached to or detached from an entity.
type ComponentEvent struct {
	Entity    EntityID
	Component Component
}
