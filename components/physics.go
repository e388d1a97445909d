package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX float64
	SpeedY float64
	Speed  float64 // horizontal speed for full input
	// Gravity is false for actors that fly.
	Gravity bool

	OnGround   bool
	OnLadder   bool
	IsClimbing bool
	OnConveyor bool

	// IgnorePlatform is the platform being dropped through, if any.
	IgnorePlatform    donburi.Entity
	HasIgnorePlatform bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
