package components

import (
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Facing float64 // config.DirectionLeft or config.DirectionRight
	Coins  int

	InitialPosition    math.Vec2 // bottom-center at spawn
	CheckpointPosition math.Vec2 // bottom-center respawn point

	NearPortal bool
	Portal     donburi.Entity // portal being overlapped when NearPortal

	JumpBoost      float64 // jump speed multiplier, 1 when inactive
	JumpBoostUntil time.Duration
}

var Player = donburi.NewComponentType[PlayerData]()
