package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePortals flags the portal the player stands in and teleports on
// Activate.
func UpdatePortals(e *ecs.ECS) {
	w := level.FromECS(e)
	entry, ok := w.Player()
	if !ok || w.Level().OutOfLives {
		return
	}
	player := components.Player.Get(entry)
	r := components.Object.Get(entry).Rect()

	portal, ok := w.First(r, tiles.PortalSet)
	player.NearPortal = ok
	player.Portal = portal
	if !ok || !components.Input.Get(entry).Activate {
		return
	}
	Teleport(w, entry, portal)
}

// Teleport sends the player from portal e to its partner. Both portals
// start their cooldown together. It reports false when e has no live
// partner or either cooldown has not elapsed.
func Teleport(w *level.World, player *donburi.Entry, e donburi.Entity) bool {
	from, ok := portalData(w, e)
	if !ok || !from.HasLink {
		return false
	}
	to, ok := portalData(w, from.Linked)
	if !ok {
		return false
	}

	now := w.Now()
	if !from.Ready(now) || !to.Ready(now) {
		return false
	}

	x, y := w.Tile(from.Linked).Rect.BottomCenter()
	teleportPlayer(player, x, y)

	from.LastUsed, from.Used = now, true
	to.LastUsed, to.Used = now, true

	physics := components.Physics.Get(player)
	physics.SpeedY = 0
	physics.IsClimbing = false
	physics.HasIgnorePlatform = false
	return true
}

func portalData(w *level.World, e donburi.Entity) (*components.PortalData, bool) {
	if !w.ECS.World.Valid(e) {
		return nil, false
	}
	entry := w.ECS.World.Entry(e)
	if !entry.HasComponent(components.Portal) {
		return nil, false
	}
	return components.Portal.Get(entry), true
}
