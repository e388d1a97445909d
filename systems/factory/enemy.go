package factory

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

var ErrUnknownEnemyKind = errors.New("unknown enemy kind")

var enemyKinds = map[string]components.EnemyKind{
	"walker": components.Walker,
	"jumper": components.Jumper,
	"flyer":  components.Flyer,
}

// EnemyOptions carries per-placement overrides.
type EnemyOptions struct {
	// PatrolDistance in pixels; zero keeps the type default.
	PatrolDistance float64
}

// CreateEnemy spawns an enemy of the named type with its bottom-center at (x, y).
func CreateEnemy(w *level.World, typeName string, x, y float64, opts EnemyOptions) (*donburi.Entry, error) {
	typeName = strings.ToLower(typeName)
	kind, ok := enemyKinds[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnemyKind, typeName)
	}
	enemyType, ok := cfg.Enemy.Types[typeName]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no configuration", ErrUnknownEnemyKind, typeName)
	}

	enemy := archetypes.Enemy.Spawn(w.ECS.World)

	width := float64(enemyType.CollisionWidth)
	height := float64(enemyType.CollisionHeight)
	r := gamemath.RectFromBottomCenter(x, y, width, height)

	obj := resolv.NewObject(r.X, r.Y, width, height, tags.ResolvEnemy)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = enemy.Entity()
	w.Space.Add(obj)
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})

	patrol := enemyType.PatrolDistance
	if opts.PatrolDistance > 0 {
		patrol = opts.PatrolDistance
	}

	data := components.EnemyData{
		Kind:           kind,
		TypeName:       enemyType.Name,
		Damage:         enemyType.Damage,
		Direction:      cfg.DirectionRight,
		PatrolOriginX:  r.CenterX(),
		PatrolDistance: patrol,
		JumpSpeed:      enemyType.JumpSpeed,
		JumpCooldown:   enemyType.JumpCooldown,
		OriginY:        r.Y,
		Amplitude:      enemyType.Amplitude,
	}
	if kind == components.Flyer && enemyType.Amplitude > 0 && enemyType.VerticalSpeed > 0 {
		// Start at the origin heading up; the system reverses at each end.
		data.SwingTime = swingDuration(enemyType)
		data.Swing = gween.New(0, float32(-enemyType.Amplitude), data.SwingTime/2, ease.InOutSine)
		data.Rising = true
	}
	components.Enemy.SetValue(enemy, data)

	components.State.SetValue(enemy, components.StateData{
		CurrentState:  cfg.Running,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Speed:   enemyType.Speed,
		Gravity: enemyType.Gravity,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})
	components.Sprite.SetValue(enemy, components.SpriteData{
		Key:    enemyType.SpriteKey,
		Width:  width,
		Height: height,
	})

	return enemy, nil
}

// swingDuration is the time in seconds a flyer takes to cross from one end
// of its oscillation to the other.
func swingDuration(t cfg.EnemyTypeConfig) float32 {
	if t.VerticalSpeed <= 0 {
		return 0
	}
	ticks := 2 * t.Amplitude / t.VerticalSpeed
	return float32(ticks / cfg.TickRate)
}
