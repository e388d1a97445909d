package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type PortalData struct {
	Group    int
	Cooldown time.Duration
	LastUsed time.Duration
	Used     bool
	Linked   donburi.Entity
	HasLink  bool
}

// Ready reports whether the cooldown since the last teleport has elapsed.
// A portal that was never used is ready.
func (p *PortalData) Ready(now time.Duration) bool {
	return !p.Used || now-p.LastUsed >= p.Cooldown
}

var Portal = donburi.NewComponentType[PortalData]()
