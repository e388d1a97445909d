package render

import (
	"image/color"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

var debugColors = []struct {
	set tiles.Category
	clr color.RGBA
}{
	{tiles.SolidSet, cfg.White},
	{tiles.PlatformSet, cfg.Orange},
	{tiles.LadderSet, cfg.Yellow},
	{tiles.HazardSet, cfg.Red},
	{tiles.PortalSet, cfg.Magenta},
	{tiles.PickupSet, cfg.LightGreen},
	{tiles.CheckpointSet, cfg.Green},
	{tiles.FinishSet, cfg.Green},
}

// drawHitboxes outlines tile hitboxes by category and actor hitboxes.
func drawHitboxes(screen *ebiten.Image, w *level.World, camX, camY float64) {
	stroke := func(r gamemath.Rect, clr color.Color) {
		vector.StrokeRect(screen,
			float32(r.X-camX), float32(r.Y-camY),
			float32(r.W), float32(r.H),
			1, clr, false)
	}

	for _, dc := range debugColors {
		for _, e := range w.Tiles(dc.set) {
			if t := w.Tile(e); t != nil {
				stroke(t.Hitbox, dc.clr)
			}
		}
	}

	actor := func(clr color.Color) func(*donburi.Entry) {
		return func(e *donburi.Entry) {
			stroke(components.Object.Get(e).Rect(), clr)
		}
	}
	tags.Enemy.Each(w.ECS.World, actor(cfg.Red))
	tags.Player.Each(w.ECS.World, actor(cfg.LightBlue))
}
