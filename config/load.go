package config

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// overlay mirrors the global configuration so a YAML document only needs to
// name the values it changes.
type overlay struct {
	Window    Config               `yaml:"window"`
	Physics   PhysicsConfig        `yaml:"physics"`
	Collision CollisionConfig      `yaml:"collision"`
	Player    PlayerConfig         `yaml:"player"`
	Powerup   PowerupConfig        `yaml:"powerup"`
	Animation AnimationConfig      `yaml:"animation"`
	Camera    CameraConfig         `yaml:"camera"`
	Enemies   map[string]yaml.Node `yaml:"enemies"`
}

// Apply overlays a YAML document onto the current configuration. Keys that
// are absent keep their current value. Nothing changes if decoding fails.
func Apply(data []byte) error {
	ov := overlay{
		Window:    *C,
		Physics:   Physics,
		Collision: Collision,
		Player:    Player,
		Powerup:   Powerup,
		Animation: Animation,
		Camera:    Camera,
	}
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("config: unmarshal: %w", err)
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, t := range Enemy.Types {
		types[name] = t
	}
	for name, node := range ov.Enemies {
		t := types[name]
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("config: enemy %s: %w", name, err)
		}
		types[name] = t
	}

	window := ov.Window
	C = &window
	Physics = ov.Physics
	Collision = ov.Collision
	Player = ov.Player
	Powerup = ov.Powerup
	Animation = ov.Animation
	Camera = ov.Camera
	Enemy.Types = types
	return nil
}

// LoadFile reads a YAML overlay from fsys and applies it.
func LoadFile(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}
