package factory

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func createLevel(t *testing.T, doc *leveldata.Document) (*level.World, error) {
	t.Helper()
	t.Cleanup(cfg.Reset)
	return CreateLevel(doc, tiles.DefaultCatalog())
}

func TestBuildTilesClassification(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{
		Name:            "classify",
		BackgroundTiles: []string{"BB"},
		MainLayer: []string{
			"12LC",
			"DSKF",
		},
	})
	require.NoError(t, err)

	tests := []struct {
		set  tiles.Category
		want int
	}{
		{tiles.SolidSet, 3}, // solid, conveyor, destructible
		{tiles.PlatformSet, 1},
		{tiles.LadderSet, 1},
		{tiles.ConveyorSet, 1},
		{tiles.HazardSet, 1},
		{tiles.CheckpointSet, 1},
		{tiles.FinishSet, 1},
		{tiles.DestructibleSet, 1},
		{tiles.BackgroundSet, 2},
		{tiles.PortalSet, 0},
	}
	for _, tt := range tests {
		t.Run(tt.set.String(), func(t *testing.T) {
			assert.Len(t, w.Tiles(tt.set), tt.want)
		})
	}

	t.Run("platforms are not solid", func(t *testing.T) {
		platform := w.Tile(w.Tiles(tiles.PlatformSet)[0])
		assert.False(t, platform.Categories.Has(tiles.SolidSet))
	})

	t.Run("conveyor is solid and conveyor", func(t *testing.T) {
		conveyor := w.Tile(w.Tiles(tiles.ConveyorSet)[0])
		assert.True(t, conveyor.Categories.Has(tiles.SolidSet))
		assert.Equal(t, tiles.ConveyorRight, conveyor.Kind)
	})

	t.Run("background tiles come first and have no hitbox", func(t *testing.T) {
		bg := w.Tile(w.Tiles(tiles.BackgroundSet)[0])
		assert.True(t, bg.Background)
		assert.True(t, bg.Hitbox.Empty())
		solid := w.Tile(w.Tiles(tiles.SolidSet)[0])
		assert.Less(t, bg.Order, solid.Order)
	})

	t.Run("tiles sit on the grid with inset hitboxes", func(t *testing.T) {
		spike := w.Tile(w.Tiles(tiles.HazardSet)[0])
		assert.Equal(t, level.TileRect(1, 1), spike.Rect)
		assert.Equal(t, spike.Rect.Top()+cfg.Collision.TileHitboxInset, spike.Hitbox.Top())
		assert.Equal(t, spike.Rect.Bottom()-cfg.Collision.TileHitboxInset, spike.Hitbox.Bottom())
		assert.Equal(t, spike.Rect.X, spike.Hitbox.X)
	})
}

func TestNewKindNeedsOnlyProperties(t *testing.T) {
	catalog := tiles.DefaultCatalog()
	// Give the enemy spawn marker hazard behaviour; nothing else changes.
	catalog[tiles.EnemySpawn] = tiles.Properties{HasHitbox: true, Damage: 2, Image: "tile_lava"}
	t.Cleanup(cfg.Reset)

	w, err := CreateLevel(&leveldata.Document{Name: "lava", MainLayer: []string{"EE", "11"}}, catalog)
	require.NoError(t, err)
	require.Len(t, w.Tiles(tiles.HazardSet), 2)
	assert.Equal(t, 2, w.Tile(w.Tiles(tiles.HazardSet)[0]).Props.Damage)
}

func TestPortalLinking(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{
		Name:      "portals",
		MainLayer: []string{"A A A a", "1111111"},
	})
	require.NoError(t, err)

	group := w.PortalGroup(1)
	require.Len(t, group, 3)
	first := components.Portal.Get(w.ECS.World.Entry(group[0]))
	second := components.Portal.Get(w.ECS.World.Entry(group[1]))
	third := components.Portal.Get(w.ECS.World.Entry(group[2]))

	assert.True(t, first.HasLink)
	assert.Equal(t, group[1], first.Linked)
	assert.True(t, second.HasLink)
	assert.Equal(t, group[0], second.Linked)
	assert.False(t, third.HasLink, "a third portal stays inert")

	lone := components.Portal.Get(w.ECS.World.Entry(w.PortalGroup(2)[0]))
	assert.False(t, lone.HasLink)
	assert.Equal(t, time.Second, lone.Cooldown)
}

func TestSpawnEntitiesPartialFailure(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{
		Name:      "entities",
		MainLayer: []string{"          ", "1111111111"},
		Entities: []leveldata.EntityPlacement{
			{Type: leveldata.EntityPlayerSpawn, Position: []int{1, 0}},
			{Type: leveldata.EntityEnemy, EnemyType: "walker", Position: []int{3, 0}},
			{Type: leveldata.EntityEnemy, EnemyType: "dragon", Position: []int{4, 0}},
			{Type: leveldata.EntityPowerup, PowerupType: "rocket", Position: []int{5, 0}},
			{Type: leveldata.EntityPowerup, PowerupType: "coin", Position: []int{6, 0}},
			{Type: leveldata.EntityEnemy, EnemyType: "Flyer", Position: []int{7, 0}},
			{Type: leveldata.EntityCheckpoint, Position: []int{8, 0}},
			{Type: "teleporter", Position: []int{8, 0}},
			{Type: leveldata.EntityEnemy, EnemyType: "walker", Position: []int{40, 0}},
		},
	})
	require.NotNil(t, w, "the level still loads")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrUnknownEnemyKind)
	assert.ErrorIs(t, err, ErrUnknownPowerupKind)
	assert.ErrorIs(t, err, ErrUnknownEntityType)
	assert.ErrorIs(t, err, ErrEntityOutOfBounds)

	var joined interface{ Unwrap() []error }
	require.True(t, errors.As(err, &joined))
	assert.Len(t, joined.Unwrap(), 4)

	enemies := 0
	tags.Enemy.Each(w.ECS.World, func(*donburi.Entry) { enemies++ })
	assert.Equal(t, 2, enemies)
	assert.Len(t, w.Tiles(tiles.PickupSet), 1)
	assert.Len(t, w.Tiles(tiles.CheckpointSet), 1)

	player, ok := w.Player()
	require.True(t, ok)
	x, y := level.CellBottomCenter(1, 0)
	spawn := components.Player.Get(player).InitialPosition
	assert.Equal(t, x, spawn.X)
	assert.Equal(t, y, spawn.Y)
}

func TestSpawnInsideSolidWarns(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	w, err := createLevel(t, &leveldata.Document{
		Name:      "buried",
		MainLayer: []string{"          ", "  1   1   ", "1111111111"},
		Entities: []leveldata.EntityPlacement{
			{Type: leveldata.EntityPlayerSpawn, Position: []int{2, 1}},
			{Type: leveldata.EntityEnemy, EnemyType: "walker", Position: []int{6, 1}},
			{Type: leveldata.EntityEnemy, EnemyType: "walker", Position: []int{4, 1}},
		},
	})
	require.NoError(t, err, "a buried actor is a warning, not a load error")
	require.NotNil(t, w)

	out := buf.String()
	assert.Contains(t, out, "level buried: Warning: player at [2 1] starts inside a solid tile")
	assert.Equal(t, 2, strings.Count(out, "starts inside a solid tile"))

	player, ok := w.Player()
	require.True(t, ok)
	assert.True(t, w.Overlaps(components.Object.Get(player).Rect(), tiles.SolidSet))
}

func TestDefaultSpawnCell(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{Name: "nospawn", MainLayer: []string{"    ", "    ", "    ", "1111"}})
	require.NoError(t, err)

	player, ok := w.Player()
	require.True(t, ok)
	x, y := level.CellBottomCenter(DefaultSpawnCell[0], DefaultSpawnCell[1])
	r := components.Object.Get(player).Rect()
	bx, by := r.BottomCenter()
	assert.Equal(t, x, bx)
	assert.Equal(t, y, by)
	assert.Equal(t, float64(cfg.Player.CollisionWidth), r.W)
}

func TestCreateLevelRejectsBadDocument(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{Name: "bad"})
	assert.Nil(t, w)
	assert.ErrorIs(t, err, leveldata.ErrMissingMainLayer)
}

func TestCreateEnemy(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{Name: "enemies", MainLayer: []string{"     ", "11111"}})
	require.NoError(t, err)

	t.Run("patrol override", func(t *testing.T) {
		e, err := CreateEnemy(w, "walker", 40, 16, EnemyOptions{PatrolDistance: 48})
		require.NoError(t, err)
		enemy := components.Enemy.Get(e)
		assert.Equal(t, components.Walker, enemy.Kind)
		assert.Equal(t, 48.0, enemy.PatrolDistance)
		assert.Equal(t, 40.0, enemy.PatrolOriginX)
		assert.Nil(t, enemy.Swing)
	})

	t.Run("type defaults", func(t *testing.T) {
		e, err := CreateEnemy(w, "jumper", 40, 16, EnemyOptions{})
		require.NoError(t, err)
		enemy := components.Enemy.Get(e)
		assert.Equal(t, cfg.Enemy.Types["jumper"].PatrolDistance, enemy.PatrolDistance)
		assert.Equal(t, 2*time.Second, enemy.JumpCooldown)
		assert.True(t, components.Physics.Get(e).Gravity)
	})

	t.Run("flyer swings", func(t *testing.T) {
		e, err := CreateEnemy(w, "flyer", 40, 16, EnemyOptions{})
		require.NoError(t, err)
		enemy := components.Enemy.Get(e)
		require.NotNil(t, enemy.Swing)
		assert.True(t, enemy.Rising)
		assert.InDelta(t, 100.0/2.0/cfg.TickRate, enemy.SwingTime, 1e-6)
		assert.False(t, components.Physics.Get(e).Gravity)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := CreateEnemy(w, "dragon", 40, 16, EnemyOptions{})
		assert.ErrorIs(t, err, ErrUnknownEnemyKind)
	})
}

func TestCreatePowerup(t *testing.T) {
	w, err := createLevel(t, &leveldata.Document{Name: "powerups", MainLayer: []string{"     ", "11111"}})
	require.NoError(t, err)

	boost, err := CreatePowerup(w, leveldata.EntityPlacement{
		Type:        leveldata.EntityPowerup,
		PowerupType: "jump_boost",
		Properties:  map[string]any{"strength": 2.0, "duration": 3},
	}, 1, 0)
	require.NoError(t, err)
	pickup := components.Pickup.Get(boost)
	assert.Equal(t, tiles.JumpBoostPickup, pickup.Type)
	assert.Equal(t, 2.0, pickup.Strength)
	assert.Equal(t, 3*time.Second, pickup.Duration)

	life, err := CreatePowerup(w, leveldata.EntityPlacement{
		PowerupType: "extra_life",
		Properties:  map[string]any{"value": 2},
	}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, components.Pickup.Get(life).Value)
	assert.Equal(t, tiles.PickupLife, components.Tile.Get(life).Kind)
}
