// Package injector assembles a ready-to-step simulation from a Config.
package injector

import (
	"github.com/google/wire"

	"spheremove/internal/broadphase"
	"spheremove/internal/collision"
	"spheremove/internal/config"
	"spheremove/internal/engine"
	"spheremove/internal/logging"
	"spheremove/internal/world"
)

// Simulation bundles everything a tick loop needs.
type Simulation struct {
	Registry *engine.Registry
	World    *world.PhysicsWorld
	Bus      *engine.PhysicsEventBus
	Events   *engine.EventQueue
	Log      *logging.Logger
}

// Tick steps the world and dispatches the events it raised.
func (s *Simulation) Tick(dt float32) (int, error) {
	if err := s.World.Step(dt); err != nil {
		return 0, err
	}
	return s.Bus.Dispatch(s.Events), nil
}

func ProvideLogger(cfg config.Config) *logging.Logger {
	return logging.New(cfg.LogLevel())
}

func ProvidePhysicsConfig(cfg config.Config) config.Physics {
	return cfg.Physics
}

func ProvideSpatialHash(p config.Physics) (*broadphase.SpatialHash, error) {
	return broadphase.New(p.CellSize)
}

func ProvideEventQueue() *engine.EventQueue {
	return &engine.EventQueue{}
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvidePhysicsConfig,
	ProvideSpatialHash,
	wire.Bind(new(broadphase.Broadphase), new(*broadphase.SpatialHash)),
	collision.NewColliderCache,
	engine.NewRegistry,
	ProvideEventQueue,
	engine.NewPhysicsEventBus,
	world.NewPhysicsWorld,
	wire.Struct(new(Simulation), "*"),
)
