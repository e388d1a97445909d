package systems

import (
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCheckpoints moves the respawn point to the checkpoint the player
// touches. Touching one again is harmless.
func UpdateCheckpoints(e *ecs.ECS) {
	w := level.FromECS(e)
	entry, ok := w.Player()
	if !ok || w.Level().OutOfLives {
		return
	}
	r := components.Object.Get(entry).Rect()

	checkpoint, ok := w.First(r, tiles.CheckpointSet)
	if !ok {
		return
	}
	x, y := w.Tile(checkpoint).Rect.BottomCenter()
	components.Player.Get(entry).CheckpointPosition = math.NewVec2(x, y)
}
