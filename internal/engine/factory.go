package engine

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownComponent = errors.New("engine: unknown component type")

// ComponentFactory creates a Component from level-file props.
type ComponentFactory func(props map[string]any) (Component, error)

// ComponentSerializer converts a Component back to props for saving.
// It returns nil for components it does not handle.
type ComponentSerializer func(c Component) map[string]any

type componentEntry struct {
	factory    ComponentFactory
	serializer ComponentSerializer
}

var componentRegistry = map[string]componentEntry{}

// RegisterComponent registers a named component type. Registering a name twice panics.
func RegisterComponent(name string, factory ComponentFactory, serializer ComponentSerializer) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = componentEntry{factory: factory, serializer: serializer}
}

// CreateComponent looks up a registered component by name and builds it from props.
func CreateComponent(name string, props map[string]any) (Component, error) {
	entry, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	c, err := entry.factory(props)
	if err != nil {
		return nil, fmt.Errorf("component %q: %w", name, err)
	}
	return c, nil
}

// SerializeComponent tries every registered serializer.
// Returns (name, props, true) if one recognizes c.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	for _, name := range RegisteredComponents() {
		entry := componentRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
