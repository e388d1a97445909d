package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePickups collects every pickup the player overlaps. A pickup credits
// the player once and is then removed from the level.
func UpdatePickups(e *ecs.ECS) {
	w := level.FromECS(e)
	entry, ok := w.Player()
	if !ok || w.Level().OutOfLives {
		return
	}
	r := components.Object.Get(entry).Rect()
	for _, e := range w.Query(r, tiles.PickupSet) {
		Collect(w, entry, e)
	}
}

// Collect credits pickup e to the player. It reports false when e was
// already collected or is not a pickup.
func Collect(w *level.World, player *donburi.Entry, e donburi.Entity) bool {
	if !w.ECS.World.Valid(e) {
		return false
	}
	tile := w.ECS.World.Entry(e)
	if !tile.HasComponent(components.Pickup) {
		return false
	}
	pickup := components.Pickup.Get(tile)
	if pickup.Collected {
		return false
	}
	pickup.Collected = true

	switch pickup.Type {
	case tiles.CoinPickup:
		components.Player.Get(player).Coins += pickup.Value
	case tiles.ExtraLifePickup:
		components.Lives.Get(player).Lives += pickup.Value
	case tiles.JumpBoostPickup:
		data := components.Player.Get(player)
		data.JumpBoost = pickup.Strength
		data.JumpBoostUntil = w.Now() + pickup.Duration
	}

	w.RemoveTile(e)
	return true
}
