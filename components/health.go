package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current int
	Max     int

	Invulnerable      bool
	InvulnerableUntil time.Duration
}

var Health = donburi.NewComponentType[HealthData]()
