package injector

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spheremove/internal/components"
	"spheremove/internal/config"
	"spheremove/internal/engine"
)

func TestInitializeSimulation(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Physics.BaseSpeed = 10

	sim, err := InitializeSimulation(cfg)
	require.NoError(t, err)

	wall := sim.Registry.Create("wall", engine.NewTransform(rl.Vector3{Z: 1}))
	box := components.NewBoxCollider(rl.Vector3{X: 2, Y: 2, Z: 2})
	box.IsStatic = true
	require.NoError(t, sim.Registry.AddComponent(wall, box))

	mover := sim.Registry.Create("mover", engine.NewTransform(rl.Vector3{Z: 5}))
	require.NoError(t, sim.Registry.AddComponent(mover, components.NewSphereCollider(0.5)))
	intent := components.NewMotionIntent()
	intent.Translation = rl.Vector3{Z: -1}
	require.NoError(t, sim.Registry.AddComponent(mover, intent))

	var entered []engine.EntityID
	sim.Bus.Subscribe(engine.CollisionEnter, func(target, other engine.EntityID) {
		assert.Equal(t, mover, target)
		entered = append(entered, other)
	})

	n, err := sim.Tick(1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []engine.EntityID{wall}, entered)
	assert.Zero(t, sim.Events.Len())
}

func TestInitializeSimulationRejectsBadCellSize(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.CellSize = 0

	_, err := InitializeSimulation(cfg)
	assert.Error(t, err)
}
