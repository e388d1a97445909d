package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player one tick from the snapshot in its Input
// component: intent, then horizontal, then vertical resolution.
func UpdatePlayer(e *ecs.ECS) {
	w := level.FromECS(e)
	entry, ok := w.Player()
	if !ok || w.Level().OutOfLives {
		return
	}

	in := components.Input.Get(entry)
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)

	expireJumpBoost(w, player)

	dir := in.DirX()
	physics.SpeedX = dir * physics.Speed
	if dir != 0 {
		player.Facing = dir
	}

	resolveObjectHorizontalCollision(w, obj, physics, playerRules)

	updateLadder(w, obj.Rect(), physics, in)

	switch {
	case in.Jump && (physics.OnGround || physics.IsClimbing):
		physics.SpeedY = -cfg.Player.JumpSpeed * player.JumpBoost
		physics.IsClimbing = false
		physics.OnGround = false
	case physics.IsClimbing:
		physics.SpeedY = climbSpeed(in)
	default:
		if in.ClimbDown && physics.OnGround {
			dropThroughPlatform(w, obj.Rect(), physics)
		}
		applyGravity(physics)
	}

	if hit, ok := resolveObjectVerticalCollision(w, obj, physics, playerRules); ok && hit.upper {
		bumpDestructible(w, hit.tile)
	}

	if w.OutOfBounds(obj.Rect()) {
		Kill(w, entry)
	}
}

func expireJumpBoost(w *level.World, player *components.PlayerData) {
	if player.JumpBoost != 1 && w.Now() >= player.JumpBoostUntil {
		player.JumpBoost = 1
	}
}

// teleportPlayer moves the player's bottom-center to (x, y).
func teleportPlayer(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry)
	r := obj.Rect()
	r.X = x - r.W/2
	r.Y = y - r.H
	obj.SetRect(r)
}
