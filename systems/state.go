package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each actor's animation state from its motion.
func UpdateStates(e *ecs.ECS) {
	w := level.FromECS(e)
	components.State.Each(w.ECS.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if e.HasComponent(components.Health) {
			// Keep the hit pose while flashing.
			if h := components.Health.Get(e); h.Invulnerable && state.CurrentState == cfg.Hit && state.StateTimer < hitPoseTicks {
				state.Set(cfg.Hit)
				return
			}
		}
		state.Set(motionState(components.Physics.Get(e)))
	})
}

// hitPoseTicks is how long the hit state is shown.
const hitPoseTicks = 12

func motionState(physics *components.PhysicsData) cfg.StateID {
	switch {
	case physics.IsClimbing:
		return cfg.Climb
	case !physics.OnGround && physics.Gravity:
		if physics.SpeedY < 0 {
			return cfg.Jump
		}
		return cfg.Fall
	case physics.SpeedX != 0:
		return cfg.Running
	}
	return cfg.Idle
}
