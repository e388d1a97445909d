package game

import (
	"sort"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
)

// Layer orders drawables back to front.
type Layer int

const (
	LayerBackground Layer = iota
	LayerTiles
	LayerActors
)

// Drawable is one thing the renderer draws this tick, in world pixels.
type Drawable struct {
	Rect     gamemath.Rect
	ImageRef string
	Layer    Layer
	State    cfg.StateID
	Facing   float64
	// Blink is set while the player is invulnerable.
	Blink bool
}

// Drawables lists every live tile and actor of the current level.
func (s *Session) Drawables() []Drawable {
	return Drawables(s.world)
}

// Drawables lists every live tile and actor with its current image, sorted
// by layer. Tiles keep grid order within a layer.
func Drawables(lw *level.World) []Drawable {
	w := lw.ECS.World
	var out []Drawable

	tags.Tile.Each(w, func(e *donburi.Entry) {
		t := components.Tile.Get(e)
		ref := components.Animation.Get(e).Current(t.Props.Image)
		if ref == "" {
			return
		}
		layer := LayerTiles
		if t.Background {
			layer = LayerBackground
		}
		out = append(out, Drawable{Rect: t.Rect, ImageRef: ref, Layer: layer, State: cfg.StateNone})
	})

	tags.Enemy.Each(w, func(e *donburi.Entry) {
		out = append(out, actorDrawable(e, components.Enemy.Get(e).Direction))
	})
	tags.Player.Each(w, func(e *donburi.Entry) {
		d := actorDrawable(e, components.Player.Get(e).Facing)
		d.Blink = components.Health.Get(e).Invulnerable
		out = append(out, d)
	})

	sortDrawables(out)
	return out
}

// sortDrawables orders by layer, then tiles by grid position so the output
// does not depend on entity storage order. Actors keep player-last order.
func sortDrawables(ds []Drawable) {
	sort.SliceStable(ds, func(i, j int) bool {
		a, b := ds[i], ds[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Layer == LayerActors {
			return false
		}
		if a.Rect.Y != b.Rect.Y {
			return a.Rect.Y < b.Rect.Y
		}
		return a.Rect.X < b.Rect.X
	})
}

func actorDrawable(e *donburi.Entry, facing float64) Drawable {
	hitbox := components.Object.Get(e).Rect()
	sprite := components.Sprite.Get(e)

	// The sprite is bottom-centered on the hitbox.
	x, y := hitbox.BottomCenter()
	w, h := sprite.Width, sprite.Height
	if w == 0 || h == 0 {
		w, h = hitbox.W, hitbox.H
	}
	return Drawable{
		Rect:     gamemath.RectFromBottomCenter(x, y, w, h),
		ImageRef: sprite.Key,
		Layer:    LayerActors,
		State:    components.State.Get(e).CurrentState,
		Facing:   facing,
	}
}
