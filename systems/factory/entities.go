package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

var (
	ErrUnknownEntityType = errors.New("unknown entity type")
	ErrEntityOutOfBounds = errors.New("entity position outside level")
)

// DefaultSpawnCell is used when a level has no player_spawn entity.
var DefaultSpawnCell = [2]int{2, 2}

// SpawnEntities instantiates the level's entity list and then the player.
// A bad entity does not stop the others; every failure is returned joined.
func SpawnEntities(w *level.World) error {
	var errs []error
	spawnCol, spawnRow := DefaultSpawnCell[0], DefaultSpawnCell[1]

	for i, p := range w.Grid.Entities {
		col, row, ok := p.Cell()
		if !ok || !w.Grid.InBounds(col, row) {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", i, p.Describe(), ErrEntityOutOfBounds))
			continue
		}

		var err error
		switch p.Type {
		case leveldata.EntityPlayerSpawn:
			spawnCol, spawnRow = col, row
		case leveldata.EntityEnemy:
			x, y := level.CellBottomCenter(col, row)
			opts := EnemyOptions{PatrolDistance: p.Float("patrol_distance", 0) * cfg.TileSize}
			var enemy *donburi.Entry
			if enemy, err = CreateEnemy(w, p.EnemyType, x, y, opts); err == nil {
				warnIfEmbedded(w, p.Describe(), enemy)
			}
		case leveldata.EntityPowerup:
			_, err = CreatePowerup(w, p, col, row)
		case leveldata.EntityCheckpoint:
			CreateTile(w, tiles.Checkpoint, w.Catalog.Lookup(tiles.Checkpoint), col, row, false)
		default:
			err = fmt.Errorf("%w: %q", ErrUnknownEntityType, p.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d (%s): %w", i, p.Describe(), err))
		}
	}

	x, y := level.CellBottomCenter(spawnCol, spawnRow)
	player := CreatePlayer(w, x, y)
	warnIfEmbedded(w, fmt.Sprintf("player at [%d %d]", spawnCol, spawnRow), player)

	for _, err := range errs {
		w.Warnf("%v", err)
	}
	return errors.Join(errs...)
}

// warnIfEmbedded logs an actor that starts overlapping a solid tile. Motion
// never pushes an actor out of a solid, so it would stay stuck there.
func warnIfEmbedded(w *level.World, what string, e *donburi.Entry) {
	if w.Overlaps(components.Object.Get(e).Rect(), tiles.SolidSet) {
		w.Warnf("%s starts inside a solid tile", what)
	}
}
