package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards damages the player on hazard tiles and enemy contact. An
// enemy landed on from above is stomped instead of hurting the player.
func UpdateHazards(e *ecs.ECS) {
	w := level.FromECS(e)
	entry, ok := w.Player()
	if !ok || w.Level().OutOfLives {
		return
	}
	r := components.Object.Get(entry).Rect()

	if hazard, ok := w.First(r, tiles.HazardSet); ok {
		Damage(w, entry, w.Tile(hazard).Props.Damage)
	}

	for _, enemy := range touchingEnemies(w, entry) {
		if !enemy.Valid() {
			continue
		}
		if stomp(w, entry, enemy) {
			continue
		}
		Damage(w, entry, components.Enemy.Get(enemy).Damage)
	}
}

// touchingEnemies returns the enemies whose hitbox overlaps the player's.
func touchingEnemies(w *level.World, player *donburi.Entry) []*donburi.Entry {
	obj := components.Object.Get(player)
	check := obj.Check(0, 0, tags.ResolvEnemy)
	if check == nil {
		return nil
	}

	r := obj.Rect()
	var out []*donburi.Entry
	for _, o := range check.Objects {
		e, ok := o.Data.(donburi.Entity)
		if !ok || !w.ECS.World.Valid(e) {
			continue
		}
		enemy := w.ECS.World.Entry(e)
		if !enemy.HasComponent(components.Enemy) {
			continue
		}
		if components.Object.Get(enemy).Rect().Overlaps(r) {
			out = append(out, enemy)
		}
	}
	return out
}

// stomp resolves a falling player landing on an enemy's head: the enemy
// loses a point of health and the player bounces.
func stomp(w *level.World, player, enemy *donburi.Entry) bool {
	physics := components.Physics.Get(player)
	if physics.SpeedY <= 0 {
		return false
	}
	r := components.Object.Get(player).Rect()
	er := components.Object.Get(enemy).Rect()
	if r.Bottom()-physics.SpeedY > er.Top()+cfg.Collision.PlatformWasAboveEpsilon {
		return false
	}

	health := components.Health.Get(enemy)
	health.Current--
	if health.Current <= 0 {
		w.RemoveActor(enemy.Entity())
	}
	physics.SpeedY = -cfg.Player.JumpSpeed / 2
	return true
}
