package tiles

import "math/bits"

// Category is one behavior set a tile can belong to.
type Category uint16

const (
	SolidSet Category = 1 << iota
	PlatformSet
	LadderSet
	ConveyorSet
	HazardSet
	CheckpointSet
	FinishSet
	PortalSet
	PickupSet
	DestructibleSet
	BackgroundSet
)

// CategorySet is a bit set of categories.
type CategorySet = Category

// CollisionSets holds every category the motion and side-effect systems query.
const CollisionSets = SolidSet | PlatformSet | LadderSet | ConveyorSet | HazardSet |
	CheckpointSet | FinishSet | PortalSet | PickupSet | DestructibleSet

// AllCategories lists every single category in a stable order.
var AllCategories = []Category{
	SolidSet, PlatformSet, LadderSet, ConveyorSet, HazardSet,
	CheckpointSet, FinishSet, PortalSet, PickupSet, DestructibleSet, BackgroundSet,
}

var categoryNames = map[Category]string{
	SolidSet:        "solid",
	PlatformSet:     "platform",
	LadderSet:       "ladder",
	ConveyorSet:     "conveyor",
	HazardSet:       "hazard",
	CheckpointSet:   "checkpoint",
	FinishSet:       "finish",
	PortalSet:       "portal",
	PickupSet:       "pickup",
	DestructibleSet: "destructible",
	BackgroundSet:   "background",
}

// Has reports whether every bit of other is set.
func (c Category) Has(other Category) bool {
	return other != 0 && c&other == other
}

// Count returns the number of categories in the set.
func (c Category) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Each calls fn for every category in the set, in AllCategories order.
func (c Category) Each(fn func(Category)) {
	for _, cat := range AllCategories {
		if c&cat != 0 {
			fn(cat)
		}
	}
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	s := ""
	c.Each(func(cat Category) {
		if s != "" {
			s += "|"
		}
		s += categoryNames[cat]
	})
	if s == "" {
		return "none"
	}
	return s
}

// Categories derives the behavior sets of a tile from its properties alone.
// One-way platforms are platforms only even though their record is solid.
func Categories(p Properties) CategorySet {
	var set CategorySet
	switch {
	case p.Platform:
		set |= PlatformSet
	case p.Solid:
		set |= SolidSet
	}
	if p.Climbable {
		set |= LadderSet
	}
	if p.ConveyorSpeed != 0 {
		set |= ConveyorSet
	}
	if p.Damage > 0 {
		set |= HazardSet
	}
	if p.Checkpoint {
		set |= CheckpointSet
	}
	if p.Finish {
		set |= FinishSet
	}
	if p.PortalGroup != 0 {
		set |= PortalSet
	}
	if p.PickupType != NoPickup {
		set |= PickupSet
	}
	if p.DestructibleHealth > 0 {
		set |= DestructibleSet
	}
	if p.Layer == LayerBackground {
		set |= BackgroundSet
	}
	return set
}
