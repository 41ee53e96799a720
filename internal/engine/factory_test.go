package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock component for testing
type mockCollider struct {
	BaseComponent
	Radius  float32
	Trigger bool
}

func mockFactory(props map[string]any) (Component, error) {
	radius, err := PropFloat(props, "radius", 0.5)
	if err != nil {
		return nil, err
	}
	trigger, err := PropBool(props, "trigger", false)
	if err != nil {
		return nil, err
	}
	return &mockCollider{Radius: radius, Trigger: trigger}, nil
}

func mockSerializer(c Component) map[string]any {
	m, ok := c.(*mockCollider)
	if !ok {
		return nil
	}
	return map[string]any{
		"radius":  m.Radius,
		"trigger": m.Trigger,
	}
}

// withCleanRegistry swaps in an empty component registry for the duration of a test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	saved := componentRegistry
	componentRegistry = map[string]componentEntry{}
	t.Cleanup(func() { componentRegistry = saved })
}

func TestRegisterComponent(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("MockCollider", mockFactory, mockSerializer)

	assert.Contains(t, componentRegistry, "MockCollider")
}

func TestRegisterComponentDuplicate(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("Duplicate", mockFactory, mockSerializer)

	assert.Panics(t, func() {
		RegisterComponent("Duplicate", mockFactory, mockSerializer)
	})
}

func TestCreateComponent(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockCollider", mockFactory, mockSerializer)

	// yaml.v3 hands integers through as int
	c, err := CreateComponent("MockCollider", map[string]any{"radius": 2, "trigger": true})
	require.NoError(t, err)

	m, ok := c.(*mockCollider)
	require.True(t, ok, "got %T", c)
	assert.Equal(t, float32(2), m.Radius)
	assert.True(t, m.Trigger)
}

func TestCreateComponentDefaults(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockCollider", mockFactory, mockSerializer)

	c, err := CreateComponent("MockCollider", nil)
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), c.(*mockCollider).Radius)
}

func TestCreateComponentNotFound(t *testing.T) {
	withCleanRegistry(t)

	_, err := CreateComponent("DoesNotExist", nil)
	assert.ErrorIs(t, err, ErrUnknownComponent)
}

func TestCreateComponentBadProp(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockCollider", mockFactory, mockSerializer)

	_, err := CreateComponent("MockCollider", map[string]any{"radius": "big"})
	assert.Error(t, err, "non-numeric radius")
}

func TestSerializeComponent(t *testing.T) {
	withCleanRegistry(t)
	RegisterComponent("MockCollider", mockFactory, mockSerializer)

	name, props, ok := SerializeComponent(&mockCollider{Radius: 1.5})
	require.True(t, ok)
	assert.Equal(t, "MockCollider", name)
	assert.Equal(t, float32(1.5), props["radius"])

	_, _, ok = SerializeComponent(&BaseComponent{})
	assert.False(t, ok, "unregistered types are not recognized")
}

func TestRegisteredComponentsSorted(t *testing.T) {
	withCleanRegistry(t)

	RegisterComponent("C", mockFactory, mockSerializer)
	RegisterComponent("A", mockFactory, mockSerializer)
	RegisterComponent("B", mockFactory, mockSerializer)

	assert.Equal(t, []string{"A", "B", "C"}, RegisteredComponents())
}

func TestPropUint32(t *testing.T) {
	props := map[string]any{"all": float64(0xFFFFFFFF), "layer": 4, "neg": -1, "frac": 1.5}

	v, err := PropUint32(props, "all", 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xFFFFFFFF), v)

	v, err = PropUint32(props, "layer", 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), v)

	v, _ = PropUint32(props, "missing", 7)
	assert.Equal(t, uint32(7), v)

	_, err = PropUint32(props, "neg", 0)
	assert.Error(t, err, "negative mask")
	_, err = PropUint32(props, "frac", 0)
	assert.Error(t, err, "fractional mask")
}

func TestPropVec3(t *testing.T) {
	props := map[string]any{
		"size": []any{1, 2.5, float64(3)},
		"bad":  []any{1, 2},
	}

	v, err := PropVec3(props, "size", Transform{}.Position)
	require.NoError(t, err)
	assert.Equal(t, float32(1), v.X)
	assert.Equal(t, float32(2.5), v.Y)
	assert.Equal(t, float32(3), v.Z)

	_, err = PropVec3(props, "bad", v)
	assert.Error(t, err, "two element list")
}
