package factory

import (
	"fmt"

	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
)

// CreateLevel parses doc and builds a complete world: tiles, entities,
// player and camera. A document that cannot be parsed returns a nil world.
// Entity failures return the usable world together with the joined errors.
func CreateLevel(doc *leveldata.Document, catalog tiles.Catalog) (*level.World, error) {
	grid, err := doc.Grid()
	if err != nil {
		return nil, fmt.Errorf("create level: %w", err)
	}

	w := level.New(grid, catalog)
	BuildTiles(w)
	spawnErr := SpawnEntities(w)
	CreateCamera(w)

	w.Infof("Loaded level: %d solid, %d platform, %d portal tiles, %dx%d cells",
		len(w.Tiles(tiles.SolidSet)), len(w.Tiles(tiles.PlatformSet)), len(w.Tiles(tiles.PortalSet)),
		grid.Width, grid.Height)
	return w, spawnErr
}
