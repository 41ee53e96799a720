package world

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spheremove/internal/components"
	"spheremove/internal/config"
	"spheremove/internal/engine"
	"spheremove/internal/physics"
)

const yamlLevel = `
objects:
  - name: floor
    position: [0, -2, 0]
    scale: [10, 1, 10]
    components:
      - type: BoxCollider
        size: [2, 2, 2]
        isStatic: true
  - name: wall
    tags: [solid]
    position: [0, 0, 1]
    components:
      - type: BoxCollider
        size: [2, 2, 2]
        isStatic: true
  - name: player
    position: [0, 0, 5]
    components:
      - type: SphereCollider
        radius: 0.5
      - type: MotionIntent
        translation: [0, 0, -1]
`

func TestLoadLevelYAMLAndStep(t *testing.T) {
	f := newFixture(t, func(p *config.Physics) { p.BaseSpeed = 10 })
	lf, err := LoadLevelYAML(strings.NewReader(yamlLevel))
	require.NoError(t, err)
	require.Len(t, lf.Objects, 3)

	ids, err := lf.Spawn(f.reg)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	floor, _ := f.reg.Get(ids[0])
	assert.Equal(t, v3(10, 1, 10), floor.Transform.Scale)
	wall, _ := f.reg.Get(ids[1])
	assert.True(t, wall.HasTag("solid"))
	player, _ := f.reg.Get(ids[2])
	assert.Equal(t, v3(1, 1, 1), player.Transform.Scale, "missing scale defaults to one")

	require.NoError(t, f.world.Step(1))
	assert.InDelta(t, 2.5, f.position(ids[2]).Z, tolerance)
	assert.Equal(t, []engine.EntityID{ids[1]}, f.world.Touching(ids[2]))
}

func TestLoadLevelRejectsUnknownComponent(t *testing.T) {
	f := newFixture(t, nil)
	lf, err := LoadLevelJSON(strings.NewReader(`{"objects": [{"name": "x", "components": [{"type": "Teleporter"}]}]}`))
	require.NoError(t, err)

	_, err = lf.Spawn(f.reg)
	assert.ErrorIs(t, err, engine.ErrUnknownComponent)
	assert.Zero(t, f.reg.Len(), "a broken object is not created")

	lf, err = LoadLevelJSON(strings.NewReader(`{"objects": [{"name": "x", "components": [{"radius": 1}]}]}`))
	require.NoError(t, err)
	_, err = lf.Spawn(f.reg)
	assert.ErrorIs(t, err, ErrLevelFormat)

	lf, err = LoadLevelJSON(strings.NewReader(`{"objects": [{"name": "dot", "components": [{"type": "SphereCollider", "radius": 0}]}]}`))
	require.NoError(t, err)
	_, err = lf.Spawn(f.reg)
	assert.ErrorIs(t, err, physics.ErrInvalidRadius)
	assert.Zero(t, f.reg.Len())
}

func TestCaptureLevelClonesIntoAnotherRegistry(t *testing.T) {
	src := newFixture(t, nil)
	lf, err := LoadLevelYAML(strings.NewReader(yamlLevel))
	require.NoError(t, err)
	_, err = lf.Spawn(src.reg)
	require.NoError(t, err)

	dst := newFixture(t, nil)
	ids, err := CaptureLevel(src.reg).Spawn(dst.reg)
	require.NoError(t, err)
	require.Len(t, ids, 3)

	wallID, ok := dst.reg.FindByName("wall")
	require.True(t, ok)
	wall, _ := dst.reg.Get(wallID)
	assert.True(t, wall.HasTag("solid"))
	col := engine.GetComponent[*components.BoxCollider](wall)
	require.NotNil(t, col)
	assert.Equal(t, v3(2, 2, 2), col.Size())
	assert.True(t, col.IsStatic)
	assert.True(t, dst.world.Cache().Has(wallID))

	playerID, _ := dst.reg.FindByName("player")
	player, _ := dst.reg.Get(playerID)
	intent := engine.GetComponent[*components.MotionIntent](player)
	require.NotNil(t, intent)
	assert.Equal(t, v3(0, 0, -1), intent.Translation)
}

func TestLoadLevelFileByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "level.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"objects": [{"name": "rock", "position": [1, 2, 3]}]}`), 0o644))
	yamlPath := filepath.Join(dir, "level.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlLevel), 0o644))

	lf, err := LoadLevelFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, lf.Objects, 1)
	assert.Equal(t, [3]float32{1, 2, 3}, lf.Objects[0].Position)

	lf, err = LoadLevelFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, lf.Objects, 3)

	_, err = LoadLevelFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
