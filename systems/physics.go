package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
)

// applyGravity accelerates a falling actor. Climbers and flyers are exempt.
func applyGravity(physics *components.PhysicsData) {
	if !physics.Gravity || physics.IsClimbing {
		return
	}
	physics.SpeedY = gamemath.ApplyGravity(physics.SpeedY, cfg.Physics.Gravity, cfg.Physics.MaxFallSpeed)
}

// updateLadder refreshes OnLadder and the climbing state. Touching a ladder
// alone never suspends gravity; climb-up has to be pressed.
func updateLadder(w *level.World, r gamemath.Rect, physics *components.PhysicsData, in *components.InputData) {
	physics.OnLadder = w.Overlaps(r, tiles.LadderSet)
	switch {
	case !physics.OnLadder:
		physics.IsClimbing = false
	case in.ClimbUp:
		physics.IsClimbing = true
	}
}

func climbSpeed(in *components.InputData) float64 {
	switch {
	case in.ClimbUp && !in.ClimbDown:
		return -cfg.Player.ClimbSpeed
	case in.ClimbDown && !in.ClimbUp:
		return cfg.Player.ClimbSpeed
	}
	return 0
}

// dropThroughPlatform makes the actor ignore the platform it stands on until
// it has left it.
func dropThroughPlatform(w *level.World, r gamemath.Rect, physics *components.PhysicsData) bool {
	e, ok := standingPlatform(w, r)
	if !ok {
		return false
	}
	physics.IgnorePlatform = e
	physics.HasIgnorePlatform = true
	physics.OnGround = false
	return true
}
