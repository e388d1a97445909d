package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the view toward the player's center and keeps it inside
// the level. A level smaller than the view pins that axis to 0.
func UpdateCamera(e *ecs.ECS) {
	w := level.FromECS(e)
	cameraEntry, ok := w.Camera()
	if !ok {
		return
	}
	playerEntry, ok := w.Player()
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	r := components.Object.Get(playerEntry).Rect()

	viewW, viewH := cfg.Camera.ViewWidth, cfg.Camera.ViewHeight
	targetX := r.CenterX() - viewW/2
	targetY := r.CenterY() - viewH/2

	x := gamemath.Lerp(camera.Position.X, targetX, cfg.Camera.FollowSmoothing)
	y := gamemath.Lerp(camera.Position.Y, targetY, cfg.Camera.FollowSmoothing)

	camera.Position.X = gamemath.Clamp(x, 0, w.Width-viewW)
	camera.Position.Y = gamemath.Clamp(y, 0, w.Height-viewH)
}
