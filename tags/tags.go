package tags

import (
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Tile   = donburi.NewTag().SetName("Tile")
	Camera = donburi.NewTag().SetName("Camera")
	Level  = donburi.NewTag().SetName("Level")
)

// Resolv tags for physics collision
const (
	ResolvSolid        = "solid"
	ResolvPlatform     = "platform"
	ResolvLadder       = "ladder"
	ResolvConveyor     = "conveyor"
	ResolvHazard       = "hazard"
	ResolvCheckpoint   = "checkpoint"
	ResolvFinishLine   = "finishline"
	ResolvPortal       = "portal"
	ResolvPickup       = "pickup"
	ResolvDestructible = "destructible"
	ResolvPlayer       = "Player"
	ResolvEnemy        = "Enemy"
	ResolvQuery        = "query"
)

var categoryTags = map[tiles.Category]string{
	tiles.SolidSet:        ResolvSolid,
	tiles.PlatformSet:     ResolvPlatform,
	tiles.LadderSet:       ResolvLadder,
	tiles.ConveyorSet:     ResolvConveyor,
	tiles.HazardSet:       ResolvHazard,
	tiles.CheckpointSet:   ResolvCheckpoint,
	tiles.FinishSet:       ResolvFinishLine,
	tiles.PortalSet:       ResolvPortal,
	tiles.PickupSet:       ResolvPickup,
	tiles.DestructibleSet: ResolvDestructible,
}

// ForCategory returns the resolv tag objects of a category carry. Categories
// that never collide have no tag.
func ForCategory(c tiles.Category) (string, bool) {
	tag, ok := categoryTags[c]
	return tag, ok
}

// ForCategories returns the resolv tags for every collidable category in set.
func ForCategories(set tiles.CategorySet) []string {
	var out []string
	set.Each(func(c tiles.Category) {
		if tag, ok := categoryTags[c]; ok {
			out = append(out, tag)
		}
	})
	return out
}
