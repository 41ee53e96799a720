package engine

import "github.com/google/uuid"

type PhysicsEventType uint8

const (
	CollisionEnter PhysicsEventType = iota
	CollisionExit
	TriggerEnter
	TriggerExit
)

func (t PhysicsEventType) String() string {
	switch t {
	case CollisionEnter:
		return "collision_enter"
	case CollisionExit:
		return "collision_exit"
	case TriggerEnter:
		return "trigger_enter"
	case TriggerExit:
		return "trigger_exit"
	default:
		return "unknown"
	}
}

// PhysicsEvent reports that Target started or stopped touching Other.
type PhysicsEvent struct {
	Type   PhysicsEventType
	Target EntityID
	Other  EntityID
}

// EventQueue buffers physics events produced during a tick until they are drained.
type EventQueue struct {
	events []PhysicsEvent
}

func (q *EventQueue) Enqueue(ev PhysicsEvent) {
	q.events = append(q.events, ev)
}

// Drain returns the buffered events in enqueue order and empties the queue.
func (q *EventQueue) Drain() []PhysicsEvent {
	out := q.events
	q.events = nil
	return out
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// PhysicsHandler receives the target and the other collider of an event.
type PhysicsHandler func(target, other EntityID)

type subscription struct {
	id      uuid.UUID
	kind    PhysicsEventType
	handler PhysicsHandler
}

// PhysicsEventBus routes events to handlers subscribed per event type.
// Handlers run in subscription order.
type PhysicsEventBus struct {
	subs []subscription
}

func NewPhysicsEventBus() *PhysicsEventBus {
	return &PhysicsEventBus{}
}

// Subscribe registers handler for kind and returns a token for Unsubscribe.
func (b *PhysicsEventBus) Subscribe(kind PhysicsEventType, handler PhysicsHandler) uuid.UUID {
	id := uuid.New()
	b.subs = append(b.subs, subscription{id: id, kind: kind, handler: handler})
	return id
}

func (b *PhysicsEventBus) Unsubscribe(id uuid.UUID) bool {
	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (b *PhysicsEventBus) Publish(ev PhysicsEvent) {
	for _, s := range b.subs {
		if s.kind == ev.Type {
			s.handler(ev.Target, ev.Other)
		}
	}
}

// Dispatch drains q into the bus and returns how many events were published.
func (b *PhysicsEventBus) Dispatch(q *EventQueue) int {
	events := q.Drain()
	for _, ev := range events {
		b.Publish(ev)
	}
	return len(events)
}
