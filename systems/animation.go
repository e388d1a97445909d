package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTileAnimations advances every animated tile by the tick step, one frame per
// config.Animation.FrameDuration.
func UpdateTileAnimations(e *ecs.ECS) {
	w := level.FromECS(e)
	dt := w.Step()
	step := cfg.Animation.FrameDuration
	if step <= 0 {
		return
	}
	tags.Tile.Each(w.ECS.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if len(anim.Frames) < 2 {
			return
		}
		anim.Elapsed += dt
		if anim.Elapsed >= step {
			anim.Elapsed = 0
			anim.Cursor = (anim.Cursor + 1) % len(anim.Frames)
		}
	})
}
