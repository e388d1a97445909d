package game

import (
	"testing"
	"time"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/leveldata"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/automoto/tilerun/systems"
	"github.com/automoto/tilerun/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/ecs"
)

const tick = time.Second / cfg.TickRate

func doc(name string, spawn []int, rows ...string) *leveldata.Document {
	return &leveldata.Document{
		Name:      name,
		MainLayer: rows,
		Entities: []leveldata.EntityPlacement{
			{Type: leveldata.EntityPlayerSpawn, Position: spawn},
		},
	}
}

// courseDoc has a coin next to the spawn and a finish tile two cells on.
func courseDoc(name string) *leveldata.Document {
	return doc(name, []int{0, 1},
		"    ",
		" $F ",
		"1111",
	)
}

// voidDoc has no floor at all.
func voidDoc() *leveldata.Document {
	return doc("void", []int{0, 0}, "  ", "  ")
}

func newSession(t *testing.T, docs ...*leveldata.Document) *Session {
	t.Helper()
	t.Cleanup(cfg.Reset)
	s, err := NewCampaign(docs)
	require.NoError(t, err)
	return s
}

func runUntil(s *Session, ticks int, in Input, done func() bool) bool {
	for i := 0; i < ticks; i++ {
		if done() {
			return true
		}
		s.Tick(tick, in)
	}
	return done()
}

func TestNewCampaignErrors(t *testing.T) {
	t.Cleanup(cfg.Reset)

	_, err := NewCampaign(nil)
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = NewCampaign([]*leveldata.Document{courseDoc("a")}, WithStartLevel(3))
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = NewSession(&leveldata.Document{Name: "broken"})
	assert.ErrorIs(t, err, leveldata.ErrMissingMainLayer)

	catalog := tiles.DefaultCatalog()
	catalog[tiles.Background] = tiles.Properties{HasHitbox: true}
	_, err = NewSession(courseDoc("a"), WithCatalog(catalog))
	assert.ErrorIs(t, err, tiles.ErrInvalidProperty)
}

func TestFinishAndAdvance(t *testing.T) {
	s := newSession(t, courseDoc("first"), courseDoc("second"))
	assert.False(t, s.IsFinishReached())
	assert.False(t, s.IsNextLevel())

	require.True(t, runUntil(s, 60, Input{Right: true}, s.IsFinishReached))
	assert.True(t, s.IsNextLevel())
	assert.Equal(t, 1, s.Stats().Coins)

	require.NoError(t, s.AdvanceLevel())
	st := s.Stats()
	assert.Equal(t, "second", st.Level)
	assert.Equal(t, 1, st.LevelIndex)
	assert.Equal(t, 2, st.LevelCount)
	assert.Equal(t, 1, st.Coins, "coins carry over")
	assert.Equal(t, cfg.Player.StartingLives, st.Lives)
	assert.False(t, s.IsFinishReached())

	require.True(t, runUntil(s, 60, Input{Right: true}, s.IsFinishReached))
	assert.False(t, s.IsNextLevel(), "last level")
	assert.ErrorIs(t, s.AdvanceLevel(), ErrNoNextLevel)
}

func TestGameOverAndRestart(t *testing.T) {
	s := newSession(t, voidDoc())

	require.True(t, runUntil(s, 600, Input{}, s.IsGameOver))
	st := s.Stats()
	assert.Zero(t, st.Lives)

	// The world is frozen once the game is over.
	s.Tick(tick, Input{Right: true})
	assert.Equal(t, st.Elapsed, s.Stats().Elapsed)

	require.NoError(t, s.Restart())
	assert.False(t, s.IsGameOver())
	assert.Equal(t, cfg.Player.StartingLives, s.Stats().Lives)
	assert.Zero(t, s.Stats().Elapsed)
}

func TestRestartKeepsEntryProgress(t *testing.T) {
	s := newSession(t, courseDoc("first"), courseDoc("second"))
	require.True(t, runUntil(s, 60, Input{Right: true}, s.IsFinishReached))
	require.NoError(t, s.AdvanceLevel())

	require.True(t, runUntil(s, 60, Input{Right: true}, func() bool { return s.Stats().Coins == 2 }))
	require.NoError(t, s.Restart())
	assert.Equal(t, 1, s.Stats().Coins, "coins collected in the restarted level are lost")
	assert.Equal(t, "second", s.Stats().Level)
}

func TestReload(t *testing.T) {
	s := newSession(t, courseDoc("first"), courseDoc("second"))
	require.True(t, runUntil(s, 60, Input{Right: true}, s.IsFinishReached))
	require.NoError(t, s.AdvanceLevel())

	require.NoError(t, s.Reload([]*leveldata.Document{courseDoc("edited")}))
	st := s.Stats()
	assert.Equal(t, "edited", st.Level)
	assert.Equal(t, 0, st.LevelIndex, "index clamps to the new list")
	assert.Equal(t, 1, st.Coins)

	assert.ErrorIs(t, s.Reload(nil), ErrNoLevels)
}

func TestSpawnErrors(t *testing.T) {
	d := courseDoc("bad enemy")
	d.Entities = append(d.Entities, leveldata.EntityPlacement{
		Type:      leveldata.EntityEnemy,
		EnemyType: "dragon",
		Position:  []int{3, 1},
	})
	s := newSession(t, d)

	assert.ErrorIs(t, s.SpawnErrors(), factory.ErrUnknownEnemyKind)
	_, ok := s.World().Player()
	assert.True(t, ok, "the level is still playable")
}

func TestStats(t *testing.T) {
	s := newSession(t, courseDoc("stats"))
	for i := 0; i < 30; i++ {
		s.Tick(tick, Input{})
	}

	st := s.Stats()
	assert.Equal(t, "stats", st.Level)
	assert.Equal(t, cfg.Player.Health, st.Health)
	assert.Equal(t, cfg.Player.Health, st.MaxHealth)
	assert.False(t, st.JumpBoost)
	assert.False(t, st.NearPortal)
	assert.Equal(t, 30*tick, st.Elapsed)
}

func TestDrawables(t *testing.T) {
	d := doc("draw", []int{1, 1},
		"  E ",
		"    ",
		"1111",
	)
	d.BackgroundTiles = []string{"BB"}
	d.Entities = append(d.Entities, leveldata.EntityPlacement{
		Type:      leveldata.EntityEnemy,
		EnemyType: "walker",
		Position:  []int{3, 1},
	})
	s := newSession(t, d)

	ds := s.Drawables()
	// Two background tiles, four floor tiles, one enemy, the player. The
	// enemy spawn marker has no image.
	require.Len(t, ds, 8)

	for i := 1; i < len(ds); i++ {
		assert.LessOrEqual(t, ds[i-1].Layer, ds[i].Layer)
	}
	assert.Equal(t, LayerBackground, ds[0].Layer)
	assert.Equal(t, "tile_background", ds[0].ImageRef)
	assert.Less(t, ds[0].Rect.X, ds[1].Rect.X)

	floor := ds[2:6]
	for i, f := range floor {
		assert.Equal(t, LayerTiles, f.Layer)
		assert.Equal(t, "tile_solid", f.ImageRef)
		assert.Equal(t, float64(i*cfg.TileSize), f.Rect.X)
	}

	enemy, player := ds[6], ds[7]
	assert.Equal(t, LayerActors, enemy.Layer)
	assert.Equal(t, cfg.Enemy.Types["walker"].SpriteKey, enemy.ImageRef)
	assert.Equal(t, "player", player.ImageRef)
	assert.False(t, player.Blink)

	// Sprites stand on the hitbox bottom.
	p, ok := s.World().Player()
	require.True(t, ok)
	assert.Equal(t, 32.0, player.Rect.Bottom())
	assert.Equal(t, float64(cfg.Player.FrameHeight), player.Rect.H)

	systems.Damage(s.World(), p, 1)
	ds = s.Drawables()
	assert.True(t, ds[len(ds)-1].Blink)
}

func TestPauseFreezesTicks(t *testing.T) {
	s := newSession(t, courseDoc("a"))
	s.Tick(tick, Input{})
	now := s.World().Now()

	s.Pause()
	assert.True(t, s.IsPaused())
	s.Tick(tick, Input{Right: true})
	assert.Equal(t, now, s.World().Now(), "no time passes while paused")

	s.Resume()
	s.Tick(tick, Input{})
	assert.Equal(t, now+tick, s.World().Now())

	s.Pause()
	require.NoError(t, s.Restart())
	assert.False(t, s.IsPaused(), "a new level starts unpaused")
}

func TestRenderersRegisteredPerLevel(t *testing.T) {
	t.Cleanup(cfg.Reset)
	var levels []string
	register := func(e *ecs.ECS) {
		e.AddRenderer(0, func(e *ecs.ECS, out *[]string) {
			*out = append(*out, level.FromECS(e).Level().Name)
		})
	}
	s, err := NewCampaign([]*leveldata.Document{courseDoc("first"), courseDoc("second")}, WithRenderers(register))
	require.NoError(t, err)

	s.Draw(&levels)
	require.True(t, runUntil(s, 120, Input{Right: true}, s.IsNextLevel))
	require.NoError(t, s.AdvanceLevel())
	s.Draw(&levels)

	assert.Equal(t, []string{"first", "second"}, levels, "each level draws once through its own ecs")
}
