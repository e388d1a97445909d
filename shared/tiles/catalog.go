package tiles

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownKind     = errors.New("unknown tile kind")
	ErrInvalidProperty = errors.New("invalid tile properties")
)

// PickupType says what a pickup grants when collected.
type PickupType uint8

const (
	NoPickup PickupType = iota
	CoinPickup
	ExtraLifePickup
	JumpBoostPickup
)

func (p PickupType) String() string {
	switch p {
	case CoinPickup:
		return "coin"
	case ExtraLifePickup:
		return "extra_life"
	case JumpBoostPickup:
		return "jump_boost"
	}
	return "none"
}

// LayerBackground marks kinds that only decorate the background.
const LayerBackground = "background"

// Properties is the immutable behavior record of a tile kind. Optional
// integer fields use zero for "absent".
type Properties struct {
	Solid         bool
	HasHitbox     bool
	Damage        int
	Climbable     bool
	Platform      bool
	ConveyorSpeed int // signed, pixels per tick

	DestructibleHealth int
	PickupValue        int
	PickupType         PickupType
	PortalGroup        int
	PortalCooldown     time.Duration

	Checkpoint bool
	Finish     bool
	Layer      string

	Image           string
	AnimationFrames []string
}

// Catalog maps each kind to its properties. It is never written after
// construction and may be shared freely between readers.
type Catalog map[Kind]Properties

// DefaultCatalog returns the built-in tile table.
func DefaultCatalog() Catalog {
	return Catalog{
		Empty: {},
		Solid: {
			Solid:     true,
			HasHitbox: true,
			Image:     "tile_solid",
		},
		Platform: {
			Solid:     true,
			HasHitbox: true,
			Platform:  true,
			Image:     "tile_platform",
		},
		Ladder: {
			HasHitbox: true,
			Climbable: true,
			Image:     "tile_ladder",
		},
		ConveyorLeft: {
			Solid:           true,
			HasHitbox:       true,
			ConveyorSpeed:   -2,
			Image:           "tile_conveyor_left",
			AnimationFrames: []string{"conveyor_1", "conveyor_2", "conveyor_3"},
		},
		ConveyorRight: {
			Solid:           true,
			HasHitbox:       true,
			ConveyorSpeed:   2,
			Image:           "tile_conveyor_right",
			AnimationFrames: []string{"conveyor_1", "conveyor_2", "conveyor_3"},
		},
		Destructible: {
			Solid:              true,
			HasHitbox:          true,
			DestructibleHealth: 1,
			Image:              "tile_destructible",
		},
		Spike: {
			HasHitbox: true,
			Damage:    1,
			Image:     "tile_spike",
		},
		// Spawn markers are invisible; the entity list places the real actors.
		PowerupSpawn: {},
		EnemySpawn:   {},
		Checkpoint: {
			HasHitbox:       true,
			Checkpoint:      true,
			Image:           "tile_checkpoint",
			AnimationFrames: []string{"checkpoint_1", "checkpoint_2"},
		},
		Finish: {
			HasHitbox:       true,
			Finish:          true,
			Image:           "tile_finish",
			AnimationFrames: []string{"finish_1", "finish_2"},
		},
		Background: {
			Layer: LayerBackground,
			Image: "tile_background",
		},
		PortalA: {
			HasHitbox:       true,
			PortalGroup:     1,
			PortalCooldown:  time.Second,
			Image:           "tile_portal_a",
			AnimationFrames: []string{"portal_a_1", "portal_a_2"},
		},
		PortalB: {
			HasHitbox:       true,
			PortalGroup:     2,
			PortalCooldown:  time.Second,
			Image:           "tile_portal_b",
			AnimationFrames: []string{"portal_b_1", "portal_b_2"},
		},
		PickupCoin: {
			HasHitbox:   true,
			PickupType:  CoinPickup,
			PickupValue: 1,
			Image:       "tile_coin",
		},
		PickupLife: {
			HasHitbox:   true,
			PickupType:  ExtraLifePickup,
			PickupValue: 1,
			Image:       "tile_oneup",
		},
	}
}

// Lookup returns the properties for k, or the zero record for unknown kinds.
func (c Catalog) Lookup(k Kind) Properties {
	return c[k]
}

// Validate checks the cross-field rules every record must satisfy.
func (c Catalog) Validate() error {
	var errs []error
	for _, k := range Kinds() {
		p, ok := c[k]
		if !ok {
			continue
		}
		if p.HasHitbox && Categories(p)&CollisionSets == 0 {
			errs = append(errs, fmt.Errorf("%w: %s has a hitbox but no collision category", ErrInvalidProperty, k))
		}
		if p.ConveyorSpeed != 0 && !p.Solid {
			errs = append(errs, fmt.Errorf("%w: %s conveys but is not solid", ErrInvalidProperty, k))
		}
		if p.PortalGroup != 0 && p.PortalCooldown < 0 {
			errs = append(errs, fmt.Errorf("%w: %s has a negative portal cooldown", ErrInvalidProperty, k))
		}
	}
	return errors.Join(errs...)
}
