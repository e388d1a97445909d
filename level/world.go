// Package level owns the live state of one loaded level: the donburi world
// holding tiles and actors, the resolv space used as collision broad phase,
// and the per-category tile index the motion systems query.
package level

import (
	"log"
	"slices"
	"time"

	"github.com/automoto/tilerun/archetypes"
	"github.com/automoto/tilerun/components"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is a level instance. Only the tick driver mutates it.
type World struct {
	ECS     *ecs.ECS
	Space   *resolv.Space
	Grid    *leveldata.Grid
	Catalog tiles.Catalog

	Width  float64
	Height float64

	level  *donburi.Entry
	sets   map[tiles.Category][]donburi.Entity
	orders map[donburi.Entity]int
	groups map[int][]donburi.Entity
	cursor *resolv.Object
	seq    int
}

// New creates an empty world sized to grid. Tiles and entities are added by
// the factory package.
func New(grid *leveldata.Grid, catalog tiles.Catalog) *World {
	width := float64(grid.Width * config.TileSize)
	height := float64(grid.Height * config.TileSize)

	w := &World{
		ECS:     ecs.NewECS(donburi.NewWorld()),
		Space:   resolv.NewSpace(int(width), int(height), config.TileSize, config.TileSize),
		Grid:    grid,
		Catalog: catalog,
		Width:   width,
		Height:  height,
		sets:    make(map[tiles.Category][]donburi.Entity),
		orders:  make(map[donburi.Entity]int),
		groups:  make(map[int][]donburi.Entity),
	}

	w.cursor = resolv.NewObject(0, 0, 1, 1, tags.ResolvQuery)
	w.Space.Add(w.cursor)

	w.level = archetypes.Level.Spawn(w.ECS.World)
	components.Level.SetValue(w.level, components.LevelData{
		Name:   grid.Name,
		Width:  width,
		Height: height,
	})
	w.level.AddComponent(worldRef)
	worldRef.SetValue(w.level, ref{world: w})
	return w
}

type ref struct {
	world *World
}

// worldRef sits on the level singleton so systems can reach the World from
// the ECS they are scheduled on.
var worldRef = donburi.NewComponentType[ref]()

// FromECS returns the World a system is running in.
func FromECS(e *ecs.ECS) *World {
	entry, ok := worldRef.First(e.World)
	if !ok {
		panic("level: ecs has no level world")
	}
	return worldRef.Get(entry).world
}

// Level returns the level state polled by the game loop.
func (w *World) Level() *components.LevelData {
	return components.Level.Get(w.level)
}

// Now is the simulation clock.
func (w *World) Now() time.Duration {
	return w.Level().Now
}

// Advance moves the clock forward by dt and makes dt the step the next
// systems run with.
func (w *World) Advance(dt time.Duration) {
	lvl := w.Level()
	lvl.Step = dt
	lvl.Now += dt
}

// Step is the duration of the tick being simulated.
func (w *World) Step() time.Duration {
	return w.Level().Step
}

// NextOrder hands out the grid-scan index for the next tile.
func (w *World) NextOrder() int {
	w.seq++
	return w.seq
}

// Register adds a tile entity to the index of every category in set.
func (w *World) Register(e donburi.Entity, order int, set tiles.CategorySet) {
	w.orders[e] = order
	set.Each(func(c tiles.Category) {
		ids := w.sets[c]
		i, _ := slices.BinarySearchFunc(ids, order, func(id donburi.Entity, o int) int {
			return w.orders[id] - o
		})
		w.sets[c] = slices.Insert(ids, i, e)
	})
}

// Tiles returns the ids in category c in grid-scan order. The slice must not
// be modified.
func (w *World) Tiles(c tiles.Category) []donburi.Entity {
	return w.sets[c]
}

// Tile returns the tile data for e, or nil if e is gone or is not a tile.
func (w *World) Tile(e donburi.Entity) *components.TileData {
	if !w.ECS.World.Valid(e) {
		return nil
	}
	entry := w.ECS.World.Entry(e)
	if !entry.HasComponent(components.Tile) {
		return nil
	}
	return components.Tile.Get(entry)
}

// Candidates returns tiles in category c whose space cells touch r, in
// grid-scan order. It is a broad phase only; callers apply exact tests.
func (w *World) Candidates(r gamemath.Rect, c tiles.Category) []donburi.Entity {
	tag, ok := tags.ForCategory(c)
	if !ok {
		return nil
	}

	// resolv maps X+W-1 to the last cell, so grow the cursor to catch tiles
	// that only touch r.
	w.cursor.X, w.cursor.Y = r.X-1, r.Y-1
	w.cursor.W, w.cursor.H = r.W+2, r.H+2
	w.cursor.Update()

	check := w.cursor.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var out []donburi.Entity
	seen := make(map[donburi.Entity]bool, len(check.Objects))
	for _, obj := range check.Objects {
		e, ok := obj.Data.(donburi.Entity)
		if !ok || seen[e] {
			continue
		}
		seen[e] = true
		if _, indexed := w.orders[e]; indexed {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b donburi.Entity) int {
		return w.orders[a] - w.orders[b]
	})
	return out
}

// Query returns the tiles in category c whose hitbox overlaps r, in
// grid-scan order. Touching edges do not count.
func (w *World) Query(r gamemath.Rect, c tiles.Category) []donburi.Entity {
	var out []donburi.Entity
	for _, e := range w.Candidates(r, c) {
		if t := w.Tile(e); t != nil && t.Categories.Has(c) && t.Hitbox.Overlaps(r) {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first tile in category c overlapping r.
func (w *World) First(r gamemath.Rect, c tiles.Category) (donburi.Entity, bool) {
	hits := w.Query(r, c)
	if len(hits) == 0 {
		return donburi.Null, false
	}
	return hits[0], true
}

// Overlaps reports whether any tile in category c overlaps r.
func (w *World) Overlaps(r gamemath.Rect, c tiles.Category) bool {
	_, ok := w.First(r, c)
	return ok
}

// AddPortal appends a portal to its group and returns the group members.
func (w *World) AddPortal(group int, e donburi.Entity) []donburi.Entity {
	w.groups[group] = append(w.groups[group], e)
	return w.groups[group]
}

// PortalGroup returns the portals placed in group, in placement order.
func (w *World) PortalGroup(group int) []donburi.Entity {
	return w.groups[group]
}

// RemoveTile drops a tile from every category index, the space and the
// world. Removing a tile twice is a no-op.
func (w *World) RemoveTile(e donburi.Entity) {
	if _, ok := w.orders[e]; !ok {
		return
	}
	for c, ids := range w.sets {
		if i := slices.Index(ids, e); i >= 0 {
			w.sets[c] = slices.Delete(ids, i, i+1)
		}
	}
	delete(w.orders, e)
	w.removeEntity(e)
}

// RemoveActor drops a player or enemy from the space and the world.
func (w *World) RemoveActor(e donburi.Entity) {
	w.removeEntity(e)
}

func (w *World) removeEntity(e donburi.Entity) {
	if !w.ECS.World.Valid(e) {
		return
	}
	entry := w.ECS.World.Entry(e)
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry); obj.Object != nil {
			w.Space.Remove(obj.Object)
		}
	}
	w.ECS.World.Remove(e)
}

// Player returns the player entry if one has been spawned.
func (w *World) Player() (*donburi.Entry, bool) {
	return tags.Player.First(w.ECS.World)
}

// Camera returns the camera entry if one has been spawned.
func (w *World) Camera() (*donburi.Entry, bool) {
	return tags.Camera.First(w.ECS.World)
}

// OutOfBounds reports whether r has fallen below the level bottom.
func (w *World) OutOfBounds(r gamemath.Rect) bool {
	return r.Top() > w.Height+config.Collision.DeadZoneMargin
}

// TileRect returns the world rect of grid cell (col, row).
func TileRect(col, row int) gamemath.Rect {
	return gamemath.Rect{
		X: float64(col * config.TileSize),
		Y: float64(row * config.TileSize),
		W: config.TileSize,
		H: config.TileSize,
	}
}

// CellBottomCenter returns the reference point of an actor standing in cell (col, row).
func CellBottomCenter(col, row int) (x, y float64) {
	return TileRect(col, row).BottomCenter()
}

func (w *World) logf(format string, args ...any) {
	log.Printf("level %s: "+format, append([]any{w.Grid.Name}, args...)...)
}

// Infof logs level progress.
func (w *World) Infof(format string, args ...any) {
	w.logf(format, args...)
}

// Warnf logs a non-fatal level problem.
func (w *World) Warnf(format string, args ...any) {
	w.logf("Warning: "+format, args...)
}
