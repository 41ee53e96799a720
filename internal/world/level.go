package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"spheremove/internal/engine"
)

var ErrLevelFormat = errors.New("world: malformed level file")

// LevelFile is the on-disk layout shared by the JSON and YAML encodings.
// Each component is a flat map whose "type" names a registered component;
// the remaining keys are its props.
type LevelFile struct {
	Objects []ObjectDef `json:"objects" yaml:"objects"`
}

type ObjectDef struct {
	Name       string           `json:"name" yaml:"name"`
	Tags       []string         `json:"tags,omitempty" yaml:"tags,omitempty"`
	Position   [3]float32       `json:"position" yaml:"position"`
	Rotation   [3]float32       `json:"rotation" yaml:"rotation"`
	Scale      [3]float32       `json:"scale" yaml:"scale"`
	Components []map[string]any `json:"components" yaml:"components"`
}

func LoadLevelJSON(r io.Reader) (*LevelFile, error) {
	var lf LevelFile
	if err := json.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return &lf, nil
}

func LoadLevelYAML(r io.Reader) (*LevelFile, error) {
	var lf LevelFile
	if err := yaml.NewDecoder(r).Decode(&lf); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	return &lf, nil
}

// LoadLevelFile reads .json files as JSON and anything else as YAML.
func LoadLevelFile(path string) (*LevelFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadLevelJSON(f)
	}
	return LoadLevelYAML(f)
}

// Spawn creates one entity per object. Components are attached in file order
// after the transform is set, so colliders are built at their final pose.
func (lf *LevelFile) Spawn(reg *engine.Registry) ([]engine.EntityID, error) {
	ids := make([]engine.EntityID, 0, len(lf.Objects))
	for i, obj := range lf.Objects {
		t := engine.Transform{
			Position: toVec3(obj.Position),
			Rotation: toVec3(obj.Rotation),
			Scale:    toVec3(obj.Scale),
		}
		// Default scale to 1 if zero
		if obj.Scale == [3]float32{} {
			t.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
		}

		comps := make([]engine.Component, 0, len(obj.Components))
		for j, raw := range obj.Components {
			c, err := buildComponent(raw)
			if err != nil {
				return ids, fmt.Errorf("object %d (%s) component %d: %w", i, obj.Name, j, err)
			}
			comps = append(comps, c)
		}

		id := reg.Create(obj.Name, t)
		if e, ok := reg.Get(id); ok {
			e.Tags = obj.Tags
		}
		for _, c := range comps {
			if err := reg.AddComponent(id, c); err != nil {
				return ids, err
			}
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func buildComponent(raw map[string]any) (engine.Component, error) {
	name, ok := raw["type"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("%w: component without a type", ErrLevelFormat)
	}
	props := make(map[string]any, len(raw))
	for k, v := range raw {
		if k != "type" {
			props[k] = v
		}
	}
	return engine.CreateComponent(name, props)
}

// CaptureLevel snapshots every entity of reg into a LevelFile that can be
// spawned into another registry. Components without a registered serializer
// are left out.
func CaptureLevel(reg *engine.Registry) *LevelFile {
	var lf LevelFile
	for _, id := range reg.Entities() {
		e, _ := reg.Get(id)
		obj := ObjectDef{
			Name:     e.Name,
			Tags:     e.Tags,
			Position: fromVec3(e.Transform.Position),
			Rotation: fromVec3(e.Transform.Rotation),
			Scale:    fromVec3(e.Transform.Scale),
		}
		for _, c := range e.Components() {
			name, props, ok := engine.SerializeComponent(c)
			if !ok {
				continue
			}
			raw := make(map[string]any, len(props)+1)
			for k, v := range props {
				raw[k] = v
			}
			raw["type"] = name
			obj.Components = append(obj.Components, raw)
		}
		lf.Objects = append(lf.Objects, obj)
	}
	return &lf
}

func toVec3(a [3]float32) rl.Vector3 {
	return rl.Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func fromVec3(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
