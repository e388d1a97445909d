package systems

import (
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DamageResult is the outcome of a Damage call.
type DamageResult int

const (
	// DamageIgnored means nothing changed: invulnerable, out of lives, or a
	// non-positive amount.
	DamageIgnored DamageResult = iota
	DamageTaken
	DamageRespawned
	DamageOutOfLives
)

func (r DamageResult) String() string {
	switch r {
	case DamageIgnored:
		return "ignored"
	case DamageTaken:
		return "taken"
	case DamageRespawned:
		return "respawned"
	case DamageOutOfLives:
		return "out of lives"
	}
	return "unknown"
}

// Damage hurts the player. A hit makes it invulnerable for
// config.Player.InvulnDuration; during that window further hits are no-ops.
// Health that reaches zero costs a life and respawns the player at its
// checkpoint, or ends the game when no lives remain.
func Damage(w *level.World, e *donburi.Entry, amount int) DamageResult {
	if amount <= 0 || w.Level().OutOfLives {
		return DamageIgnored
	}
	health := components.Health.Get(e)
	if health.Invulnerable {
		return DamageIgnored
	}

	health.Current = max(health.Current-amount, 0)
	health.Invulnerable = true
	health.InvulnerableUntil = w.Now() + cfg.Player.InvulnDuration
	components.State.Get(e).Set(cfg.Hit)

	if health.Current > 0 {
		return DamageTaken
	}
	return loseLife(w, e)
}

// Kill takes a life regardless of invulnerability. It is used when the
// player falls out of the level.
func Kill(w *level.World, e *donburi.Entry) DamageResult {
	if w.Level().OutOfLives {
		return DamageIgnored
	}
	health := components.Health.Get(e)
	health.Current = 0
	health.Invulnerable = true
	health.InvulnerableUntil = w.Now() + cfg.Player.InvulnDuration
	return loseLife(w, e)
}

func loseLife(w *level.World, e *donburi.Entry) DamageResult {
	lives := components.Lives.Get(e)
	lives.Lives--
	if lives.Lives <= 0 {
		lives.Lives = 0
		w.Level().OutOfLives = true
		w.Infof("Player out of lives")
		return DamageOutOfLives
	}
	respawnPlayer(e)
	return DamageRespawned
}

// respawnPlayer puts the player back on its last checkpoint with full health.
func respawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	teleportPlayer(e, player.CheckpointPosition.X, player.CheckpointPosition.Y)

	health := components.Health.Get(e)
	health.Current = health.Max

	physics := components.Physics.Get(e)
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.IsClimbing = false
	physics.OnGround = false
	physics.HasIgnorePlatform = false
}

// UpdateInvulnerability ends the invulnerability window once it has elapsed.
func UpdateInvulnerability(e *ecs.ECS) {
	w := level.FromECS(e)
	now := w.Now()
	components.Health.Each(w.ECS.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)
		if health.Invulnerable && now >= health.InvulnerableUntil {
			health.Invulnerable = false
		}
	})
}
