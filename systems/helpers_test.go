package systems

import (
	"testing"
	"time"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = time.Second / cfg.TickRate

// newTestWorld builds a level from rows in the default character mapping.
// Config changes made before the call apply to the spawned actors and are
// reset when the test ends.
func newTestWorld(t *testing.T, rows []string, entities ...leveldata.EntityPlacement) *level.World {
	t.Helper()
	t.Cleanup(cfg.Reset)

	doc := &leveldata.Document{Name: t.Name(), MainLayer: rows, Entities: entities}
	w, err := factory.CreateLevel(doc, tiles.DefaultCatalog())
	require.NoError(t, err)
	AddTickSystems(w.ECS)
	return w
}

func spawnAt(col, row int) leveldata.EntityPlacement {
	return leveldata.EntityPlacement{Type: leveldata.EntityPlayerSpawn, Position: []int{col, row}}
}

func enemyAt(kind string, col, row int, patrolTiles float64) leveldata.EntityPlacement {
	p := leveldata.EntityPlacement{Type: leveldata.EntityEnemy, EnemyType: kind, Position: []int{col, row}}
	if patrolTiles > 0 {
		p.Properties = map[string]any{"patrol_distance": patrolTiles}
	}
	return p
}

func playerEntry(t *testing.T, w *level.World) *donburi.Entry {
	t.Helper()
	e, ok := w.Player()
	require.True(t, ok)
	return e
}

func playerRect(t *testing.T, w *level.World) gamemath.Rect {
	t.Helper()
	return components.Object.Get(playerEntry(t, w)).Rect()
}

func playerPhysics(t *testing.T, w *level.World) *components.PhysicsData {
	t.Helper()
	return components.Physics.Get(playerEntry(t, w))
}

// step runs one tick the way the game session does.
func step(w *level.World, in components.InputData) {
	w.Advance(tick)
	if p, ok := w.Player(); ok {
		components.Input.SetValue(p, in)
	}
	w.ECS.Update()
}

func stepN(w *level.World, n int, in components.InputData) {
	for i := 0; i < n; i++ {
		step(w, in)
	}
}

// settle lets the player fall onto whatever is below it.
func settle(t *testing.T, w *level.World) {
	t.Helper()
	for i := 0; i < 120; i++ {
		step(w, components.InputData{})
		if playerPhysics(t, w).OnGround {
			return
		}
	}
	t.Fatalf("player never landed")
}

func firstTile(t *testing.T, w *level.World, c tiles.Category) donburi.Entity {
	t.Helper()
	ids := w.Tiles(c)
	require.NotEmpty(t, ids)
	return ids[0]
}
