package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player with its bottom-center at (x, y).
func CreatePlayer(w *level.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w.ECS.World)

	width := float64(cfg.Player.CollisionWidth)
	height := float64(cfg.Player.CollisionHeight)
	r := gamemath.RectFromBottomCenter(x, y, width, height)

	obj := resolv.NewObject(r.X, r.Y, width, height, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = player.Entity()
	w.Space.Add(obj)
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	spawn := math.NewVec2(x, y)
	components.Player.SetValue(player, components.PlayerData{
		Facing:             cfg.DirectionRight,
		InitialPosition:    spawn,
		CheckpointPosition: spawn,
		JumpBoost:          1,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Speed:   cfg.Player.Speed,
		Gravity: true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Lives.SetValue(player, components.LivesData{
		Lives: cfg.Player.StartingLives,
	})
	components.Sprite.SetValue(player, components.SpriteData{
		Key:    "player",
		Width:  float64(cfg.Player.FrameWidth),
		Height: float64(cfg.Player.FrameHeight),
	})

	return player
}
