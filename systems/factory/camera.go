package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera already centered on the player.
func CreateCamera(w *level.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w.ECS.World)
	components.Camera.Set(camera, &components.CameraData{})

	if player, ok := w.Player(); ok {
		r := components.Object.Get(player).Rect()
		components.Camera.Get(camera).Position = math.NewVec2(
			gamemath.Clamp(r.CenterX()-cfg.Camera.ViewWidth/2, 0, w.Width-cfg.Camera.ViewWidth),
			gamemath.Clamp(r.CenterY()-cfg.Camera.ViewHeight/2, 0, w.Height-cfg.Camera.ViewHeight),
		)
	}
	return camera
}
