package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFinishLine latches FinishReached once the player touches a finish
// tile. Ending the level is up to the caller.
func UpdateFinishLine(e *ecs.ECS) {
	w := level.FromECS(e)
	lvl := w.Level()
	if lvl.FinishReached || lvl.OutOfLives {
		return
	}
	entry, ok := w.Player()
	if !ok {
		return
	}
	if w.Overlaps(components.Object.Get(entry).Rect(), tiles.FinishSet) {
		lvl.FinishReached = true
		w.Infof("Finish reached")
	}
}
