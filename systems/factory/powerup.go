package factory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

var ErrUnknownPowerupKind = errors.New("unknown powerup kind")

// CreatePowerup places a collectible at grid cell (col, row).
func CreatePowerup(w *level.World, p leveldata.EntityPlacement, col, row int) (*donburi.Entry, error) {
	var (
		kind  tiles.Kind
		props tiles.Properties
	)
	switch strings.ToLower(p.PowerupType) {
	case "coin":
		kind = tiles.PickupCoin
		props = w.Catalog.Lookup(kind)
	case "extra_life", "oneup", "life":
		kind = tiles.PickupLife
		props = w.Catalog.Lookup(kind)
	case "jump_boost":
		kind = tiles.PowerupSpawn
		props = tiles.Properties{
			HasHitbox:   true,
			PickupType:  tiles.JumpBoostPickup,
			PickupValue: 1,
			Image:       "powerup_jump_boost",
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPowerupKind, p.PowerupType)
	}
	if v := p.Float("value", 0); v > 0 {
		props.PickupValue = int(v)
	}

	tile := CreateTile(w, kind, props, col, row, false)
	if props.PickupType == tiles.JumpBoostPickup {
		pickup := components.Pickup.Get(tile)
		pickup.Strength = p.Float("strength", cfg.Powerup.JumpBoostStrength)
		pickup.Duration = cfg.Powerup.JumpBoostDuration
		if secs := p.Float("duration", 0); secs > 0 {
			pickup.Duration = time.Duration(secs * float64(time.Second))
		}
	}
	return tile, nil
}
