package tiles

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Kind identifies what occupies a grid cell. Every cell holds exactly one.
type Kind uint8

const (
	Empty Kind = iota
	Solid
	Platform
	Ladder
	ConveyorLeft
	ConveyorRight
	Destructible
	Spike
	PowerupSpawn
	EnemySpawn
	Checkpoint
	Finish
	Background
	PortalA
	PortalB
	PickupCoin
	PickupLife

	kindCount
)

var kindNames = [kindCount]string{
	Empty:         "empty",
	Solid:         "solid",
	Platform:      "platform",
	Ladder:        "ladder",
	ConveyorLeft:  "conveyor_left",
	ConveyorRight: "conveyor_right",
	Destructible:  "destructible",
	Spike:         "spike",
	PowerupSpawn:  "powerup_spawn",
	EnemySpawn:    "enemy_spawn",
	Checkpoint:    "checkpoint",
	Finish:        "finish",
	Background:    "background",
	PortalA:       "portal_a",
	PortalB:       "portal_b",
	PickupCoin:    "pickup_coin",
	PickupLife:    "pickup_life",
}

// aliases accepted by ParseKind besides the canonical names.
var kindAliases = map[string]Kind{
	"portal_set_1": PortalA,
	"portal_set_2": PortalB,
	"pickup_oneup": PickupLife,
	"coin":         PickupCoin,
	"oneup":        PickupLife,
	"spikes":       Spike,
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Empty; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a kind name. Matching ignores case, so both
// "conveyor_right" and "CONVEYOR_RIGHT" are accepted.
func ParseKind(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == key {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[key]; ok {
		return k, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}
