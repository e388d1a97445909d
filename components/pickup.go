package components

import (
	"time"

	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Type      tiles.PickupType
	Value     int
	Collected bool

	// Jump boost only
	Strength float64
	Duration time.Duration
}

var Pickup = donburi.NewComponentType[PickupData]()
