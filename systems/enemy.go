package systems

import (
	"time"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies moves every enemy one tick. Enemies that fall out of the
// level are removed.
func UpdateEnemies(e *ecs.ECS) {
	w := level.FromECS(e)
	dt := w.Step()
	var fallen []donburi.Entity

	tags.Enemy.Each(w.ECS.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		switch enemy.Kind {
		case components.Walker:
			updateWalker(w, enemy, physics, obj)
		case components.Jumper:
			updateJumper(w, enemy, physics, obj)
		case components.Flyer:
			updateFlyer(w, enemy, physics, obj, dt)
		}

		if w.OutOfBounds(obj.Rect()) {
			fallen = append(fallen, e.Entity())
		}
	})

	for _, e := range fallen {
		w.RemoveActor(e)
	}
}

func updateWalker(w *level.World, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData) {
	patrol(w, enemy, physics, obj, walkerRules)
	applyGravity(physics)
	resolveObjectVerticalCollision(w, obj, physics, walkerRules)
}

func updateJumper(w *level.World, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData) {
	patrol(w, enemy, physics, obj, walkerRules)

	if now := w.Now(); physics.OnGround && now >= enemy.JumpReadyAt {
		physics.SpeedY = -enemy.JumpSpeed
		physics.OnGround = false
		enemy.JumpReadyAt = now + enemy.JumpCooldown
	} else {
		applyGravity(physics)
	}
	resolveObjectVerticalCollision(w, obj, physics, walkerRules)
}

func updateFlyer(w *level.World, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, dt time.Duration) {
	patrol(w, enemy, physics, obj, flyerRules)

	if enemy.Swing == nil {
		return
	}
	offset, done := enemy.Swing.Update(float32(dt.Seconds()))
	if done {
		// Reverse across the full range.
		from, to := float32(-enemy.Amplitude), float32(enemy.Amplitude)
		if !enemy.Rising {
			from, to = to, from
		}
		enemy.Rising = !enemy.Rising
		enemy.Swing = gween.New(from, to, enemy.SwingTime, ease.InOutSine)
	}

	physics.SpeedY = enemy.OriginY + float64(offset) - obj.Y
	resolveObjectVerticalCollision(w, obj, physics, flyerRules)
}

// patrol walks the enemy along its direction and turns it around at a wall
// or at either end of its patrol range.
func patrol(w *level.World, enemy *components.EnemyData, physics *components.PhysicsData, obj *components.ObjectData, rules motionRules) {
	physics.SpeedX = enemy.Direction * physics.Speed
	blocked := resolveObjectHorizontalCollision(w, obj, physics, rules)

	x := obj.Rect().CenterX()
	switch {
	case blocked:
		enemy.Direction = -enemy.Direction
	case enemy.Direction > 0 && x >= enemy.PatrolOriginX+enemy.PatrolDistance:
		enemy.Direction = cfg.DirectionLeft
	case enemy.Direction < 0 && x <= enemy.PatrolOriginX-enemy.PatrolDistance:
		enemy.Direction = cfg.DirectionRight
	}
}
