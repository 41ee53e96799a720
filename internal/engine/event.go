package engine

// EventWithArg is a multi-cast event: every listener sees each invocation in
// registration order.
type EventWithArg[T any] struct {
	listeners []func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) {
	if callback == nil {
		return
	}
	e.listeners = append(e.listeners, callback)
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners. Listeners added during the call
// first fire on the next invocation.
func (e *EventWithArg[T]) Invoke(arg T) {
	listeners := e.listeners
	for _, listener := range listeners {
		listener(arg)
	}
}

// ListenerCount returns the number of registered listeners (for debugging)
func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
