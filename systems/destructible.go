package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

// bumpDestructible takes one point of health from a destructible tile hit
// from below and removes it at zero.
func bumpDestructible(w *level.World, e donburi.Entity) bool {
	t := w.Tile(e)
	if t == nil || !t.Categories.Has(tiles.DestructibleSet) {
		return false
	}
	health := components.Health.Get(w.ECS.World.Entry(e))
	health.Current--
	if health.Current > 0 {
		return false
	}
	w.RemoveTile(e)
	return true
}
