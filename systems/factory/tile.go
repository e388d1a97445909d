package factory

import (
	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// BuildTiles instantiates every non-empty cell, background layer first, in
// row-major order.
func BuildTiles(w *level.World) {
	grid := w.Grid
	for _, layer := range []struct {
		cells      [][]tiles.Kind
		background bool
	}{
		{grid.Background, true},
		{grid.Main, false},
	} {
		for row, cells := range layer.cells {
			for col, kind := range cells {
				if kind == tiles.Empty {
					continue
				}
				CreateTile(w, kind, w.Catalog.Lookup(kind), col, row, layer.background)
			}
		}
	}
}

// CreateTile creates one tile at grid cell (col, row). Its categories come
// from props alone.
func CreateTile(w *level.World, kind tiles.Kind, props tiles.Properties, col, row int, background bool) *donburi.Entry {
	cats := tiles.Categories(props)
	rect := level.TileRect(col, row)

	var extras []donburi.IComponentType
	hasHitbox := props.HasHitbox && !rect.InsetY(cfg.Collision.TileHitboxInset).Empty()
	if hasHitbox {
		extras = append(extras, components.Object)
	}
	if cats.Has(tiles.PortalSet) {
		extras = append(extras, components.Portal)
	}
	if cats.Has(tiles.PickupSet) {
		extras = append(extras, components.Pickup)
	}
	if cats.Has(tiles.DestructibleSet) {
		extras = append(extras, components.Health)
	}

	tile := archetypes.Tile.Spawn(w.ECS.World, extras...)
	data := components.TileData{
		Kind:       kind,
		Props:      props,
		Categories: cats,
		Col:        col,
		Row:        row,
		Rect:       rect,
		Order:      w.NextOrder(),
		Background: background,
	}

	if hasHitbox {
		data.Hitbox = rect.InsetY(cfg.Collision.TileHitboxInset)
		hb := data.Hitbox
		obj := resolv.NewObject(hb.X, hb.Y, hb.W, hb.H, tags.ForCategories(cats)...)
		obj.SetShape(resolv.NewRectangle(0, 0, hb.W, hb.H))
		obj.Data = tile.Entity()
		w.Space.Add(obj)
		components.Object.SetValue(tile, components.ObjectData{Object: obj})
	}

	components.Tile.SetValue(tile, data)
	components.Animation.SetValue(tile, components.AnimationData{
		Frames: props.AnimationFrames,
	})

	if cats.Has(tiles.PickupSet) {
		components.Pickup.SetValue(tile, components.PickupData{
			Type:  props.PickupType,
			Value: props.PickupValue,
		})
	}
	if cats.Has(tiles.DestructibleSet) {
		components.Health.SetValue(tile, components.HealthData{
			Current: props.DestructibleHealth,
			Max:     props.DestructibleHealth,
		})
	}

	w.Register(tile.Entity(), data.Order, cats)

	if cats.Has(tiles.PortalSet) {
		components.Portal.SetValue(tile, components.PortalData{
			Group:    props.PortalGroup,
			Cooldown: props.PortalCooldown,
		})
		linkPortal(w, tile)
	}

	return tile
}

// linkPortal pairs the second portal of a group with the first. Any further
// portal in the group stays unlinked.
func linkPortal(w *level.World, tile *donburi.Entry) {
	portal := components.Portal.Get(tile)
	members := w.AddPortal(portal.Group, tile.Entity())

	switch len(members) {
	case 1:
		return
	case 2:
		first := w.ECS.World.Entry(members[0])
		other := components.Portal.Get(first)
		other.Linked, other.HasLink = tile.Entity(), true
		portal.Linked, portal.HasLink = first.Entity(), true
	default:
		t := components.Tile.Get(tile)
		w.Warnf("portal group %d already linked, portal at (%d,%d) stays inert", portal.Group, t.Col, t.Row)
	}
}
