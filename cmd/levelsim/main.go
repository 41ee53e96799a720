// levelsim loads a level and steps its movers headlessly, logging every
// physics event.
package main

import (
	"flag"
	"fmt"
	"os"

	"spheremove/internal/config"
	"spheremove/internal/engine"
	"spheremove/internal/injector"
	"spheremove/internal/logging"
	"spheremove/internal/world"
)

func main() {
	configPath := flag.String("config", "", "YAML or JSON physics config (defaults when empty)")
	levelPath := flag.String("level", "assets/levels/sample.yaml", "level file")
	ticks := flag.Int("ticks", 120, "number of ticks to run")
	dt := flag.Float64("dt", 1.0/60.0, "tick length in seconds")
	flag.Parse()

	if err := run(*configPath, *levelPath, *ticks, float32(*dt)); err != nil {
		fmt.Fprintf(os.Stderr, "levelsim: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelPath string, ticks int, dt float32) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	sim, err := injector.InitializeSimulation(cfg)
	if err != nil {
		return err
	}
	log := sim.Log
	defer log.Sync()

	level, err := world.LoadLevelFile(levelPath)
	if err != nil {
		return err
	}
	ids, err := level.Spawn(sim.Registry)
	if err != nil {
		return err
	}
	log.Info("level loaded", logging.String("path", levelPath), logging.Int("entities", len(ids)))

	tick := 0
	for _, kind := range []engine.PhysicsEventType{
		engine.CollisionEnter, engine.CollisionExit, engine.TriggerEnter, engine.TriggerExit,
	} {
		sim.Bus.Subscribe(kind, func(target, other engine.EntityID) {
			log.Info("physics event",
				logging.Stringer("type", kind),
				logging.Int("tick", tick),
				logging.String("target", name(sim.Registry, target)),
				logging.String("other", name(sim.Registry, other)))
		})
	}

	for tick = 0; tick < ticks; tick++ {
		if _, err := sim.Tick(dt); err != nil {
			return fmt.Errorf("tick %d: %w", tick, err)
		}
	}

	for _, id := range sim.Registry.Entities() {
		e, _ := sim.Registry.Get(id)
		p := e.Transform.Position
		fmt.Printf("%-12s (%.3f, %.3f, %.3f)\n", e.Name, p.X, p.Y, p.Z)
	}

	return nil
}

func name(reg *engine.Registry, id engine.EntityID) string {
	if e, ok := reg.Get(id); ok && e.Name != "" {
		return e.Name
	}
	return fmt.Sprintf("#%d", id)
}
