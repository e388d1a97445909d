package systems

import "github.com/yohamta/donburi/ecs"

// TickSystem is a named per-tick system.
type TickSystem struct {
	Name   string
	Update ecs.System
}

// TickOrder is the fixed order one simulation step runs in: player motion
// before enemies, side effects once everything has moved, then the
// derived animation state and the camera.
var TickOrder = []TickSystem{
	{"invulnerability", UpdateInvulnerability},
	{"player", UpdatePlayer},
	{"enemies", UpdateEnemies},
	{"hazards", UpdateHazards},
	{"pickups", UpdatePickups},
	{"portals", UpdatePortals},
	{"checkpoints", UpdateCheckpoints},
	{"finish", UpdateFinishLine},
	{"animation", UpdateTileAnimations},
	{"states", UpdateStates},
	{"camera", UpdateCamera},
}

// AddTickSystems schedules TickOrder on e.
func AddTickSystems(e *ecs.ECS) {
	for _, s := range TickOrder {
		e.AddSystem(s.Update)
	}
}
