package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlatformAboveFloor(t *testing.T) {
	cfg.Player.CollisionWidth = 12
	cfg.Player.CollisionHeight = 12
	w := newTestWorld(t, []string{
		"          ",
		"     2    ",
		"1111111111",
	}, spawnAt(5, 0))

	settle(t, w)

	platform := w.Tile(firstTile(t, w, tiles.PlatformSet))
	floor := w.Tile(firstTile(t, w, tiles.SolidSet))
	r := playerRect(t, w)
	assert.Equal(t, platform.Hitbox.Top(), r.Bottom(), "lands on the platform")
	assert.Less(t, r.Bottom(), floor.Hitbox.Top())
	assert.Zero(t, playerPhysics(t, w).SpeedY)
}

func TestSolidImpenetrability(t *testing.T) {
	w := newTestWorld(t, []string{
		"111111111111",
		"1          1",
		"1    11    1",
		"1          1",
		"1  2    C  1",
		"1          1",
		"111111111111",
	}, spawnAt(2, 5))

	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 1200; i++ {
		in := components.InputData{
			Left:      rng.IntN(3) == 0,
			Right:     rng.IntN(3) == 0,
			Jump:      rng.IntN(6) == 0,
			ClimbDown: rng.IntN(10) == 0,
		}
		step(w, in)

		r := playerRect(t, w)
		for _, e := range w.Tiles(tiles.SolidSet) {
			if hb := w.Tile(e).Hitbox; hb.Overlaps(r) {
				t.Fatalf("tick %d: player %+v inside solid %+v", i, r, hb)
			}
		}
	}
}

func TestPlatformIsOneWay(t *testing.T) {
	cfg.Player.JumpSpeed = 6
	w := newTestWorld(t, []string{
		"          ",
		"          ",
		"          ",
		"    222   ",
		"          ",
		"1111111111",
	}, spawnAt(5, 4))
	settle(t, w)

	platform := w.Tile(firstTile(t, w, tiles.PlatformSet)).Hitbox

	step(w, components.InputData{Jump: true})
	apex := playerRect(t, w)
	for i := 0; i < 40; i++ {
		step(w, components.InputData{})
		if r := playerRect(t, w); r.Y < apex.Y {
			apex = r
		}
	}
	assert.Less(t, apex.Bottom(), platform.Top(), "rising passes through the platform")

	settle(t, w)
	assert.Equal(t, platform.Top(), playerRect(t, w).Bottom(), "lands exactly on top")
}

func TestPlatformLandingTolerances(t *testing.T) {
	w := newTestWorld(t, []string{
		"    ",
		" 22 ",
		"    ",
		"    ",
		"    ",
	}, spawnAt(0, 4))
	platforms := w.Tiles(tiles.PlatformSet)
	require.Len(t, platforms, 2)
	left := w.Tile(platforms[0]).Hitbox
	right := w.Tile(platforms[1]).Hitbox

	tol := cfg.Collision.PlatformEdgeTolerance
	eps := cfg.Collision.PlatformWasAboveEpsilon
	above := func(x, bottom float64) gamemath.Rect {
		return gamemath.Rect{X: x, Y: bottom - 12, W: 12, H: 12}
	}

	tests := []struct {
		name string
		r    gamemath.Rect
		dy   float64
		want bool
		hit  gamemath.Rect
	}{
		{"centered", above(left.CenterX()-6, left.Top()-2), 3, true, left},
		{"inside left tolerance", above(left.Left()-tol-12+0.5, left.Top()), 1, true, left},
		{"beyond left tolerance", above(left.Left()-tol-12, left.Top()), 1, false, gamemath.Rect{}},
		{"inside right tolerance", above(right.Right()+tol-0.5, right.Top()), 1, true, right},
		{"beyond right tolerance", above(right.Right()+tol, right.Top()), 1, false, gamemath.Rect{}},
		{"bottom within epsilon below top", above(left.CenterX()-6, left.Top()+eps), 1, true, left},
		{"bottom embedded past epsilon", above(left.CenterX()-6, left.Top()+eps+0.5), 1, false, gamemath.Rect{}},
		{"move does not reach top", above(left.CenterX()-6, left.Top()-3), 2, false, gamemath.Rect{}},
		{"closer center wins", above(left.CenterX()+1, left.Top()), 1, true, left},
		{"closer center wins right", above(right.CenterX()-7, right.Top()), 1, true, right},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hb, ok := platformLanding(w, tt.r, tt.dy, &components.PhysicsData{})
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, tt.hit, hb)
			}
		})
	}

	t.Run("dropping through skips the whole row", func(t *testing.T) {
		physics := &components.PhysicsData{IgnorePlatform: platforms[0], HasIgnorePlatform: true}
		_, ok := platformLanding(w, above(left.CenterX()-6, left.Top()), 1, physics)
		assert.False(t, ok, "the neighbour is within tolerance but on the same row")
	})
}

func TestHorizontalClampsAtWall(t *testing.T) {
	w := newTestWorld(t, []string{
		"        ",
		"       1",
		"11111111",
	}, spawnAt(1, 1))
	settle(t, w)

	wall := w.Tile(w.Tiles(tiles.SolidSet)[0]).Hitbox
	for i := 0; i < 60; i++ {
		step(w, components.InputData{Right: true})
		require.LessOrEqual(t, playerRect(t, w).Right(), wall.Left())
	}
	assert.Equal(t, wall.Left(), playerRect(t, w).Right(), "flush against the wall")
}

func TestConveyorDriftStopsAtWall(t *testing.T) {
	w := newTestWorld(t, []string{
		"         ",
		"        1",
		"CCCCCCCC1",
	}, spawnAt(2, 1))
	settle(t, w)
	require.True(t, playerPhysics(t, w).OnGround)

	x0 := playerRect(t, w).X
	step(w, components.InputData{})
	assert.Equal(t, x0+2, playerRect(t, w).X, "drifts by the conveyor speed")
	assert.True(t, playerPhysics(t, w).OnConveyor)

	wall := w.Tile(w.Tiles(tiles.SolidSet)[0]).Hitbox
	for i := 0; i < 120; i++ {
		step(w, components.InputData{})
		require.LessOrEqual(t, playerRect(t, w).Right(), wall.Left())
	}
	stopped := playerRect(t, w)
	assert.Equal(t, wall.Left(), stopped.Right())

	step(w, components.InputData{})
	assert.Equal(t, stopped, playerRect(t, w), "drift stops at the wall")
}

func TestConveyorKeepsIntentWhenPushBlocked(t *testing.T) {
	w := newTestWorld(t, []string{
		"        ",
		"1       ",
		"1ccccccc",
	}, spawnAt(3, 1))
	settle(t, w)

	wall := w.Tile(w.Tiles(tiles.SolidSet)[0]).Hitbox
	for i := 0; i < 40; i++ {
		step(w, components.InputData{Left: true})
		require.GreaterOrEqual(t, playerRect(t, w).Left(), wall.Right())
	}

	// Walking right against a left conveyor still moves: speed 5 minus 2.
	x := playerRect(t, w).X
	step(w, components.InputData{Right: true})
	assert.Equal(t, x+3, playerRect(t, w).X)
}

func TestLadderClimbing(t *testing.T) {
	w := newTestWorld(t, []string{
		"    ",
		"  L ",
		"  L ",
		"  L ",
		"1111",
	}, spawnAt(2, 3))
	settle(t, w)

	physics := playerPhysics(t, w)
	assert.True(t, physics.OnLadder)
	assert.False(t, physics.IsClimbing, "touching a ladder does not start a climb")

	y := playerRect(t, w).Y
	stepN(w, 3, components.InputData{ClimbUp: true})
	assert.True(t, physics.IsClimbing)
	assert.InDelta(t, y-3*cfg.Player.ClimbSpeed, playerRect(t, w).Y, 1e-9)

	y = playerRect(t, w).Y
	stepN(w, 5, components.InputData{})
	assert.Equal(t, y, playerRect(t, w).Y, "no gravity while climbing")

	stepN(w, 2, components.InputData{ClimbDown: true})
	assert.InDelta(t, y+2*cfg.Player.ClimbSpeed, playerRect(t, w).Y, 1e-9)

	step(w, components.InputData{Jump: true})
	assert.False(t, physics.IsClimbing, "jumping leaves the ladder")
	assert.Less(t, physics.SpeedY, 0.0)
}

func TestDropThroughPlatform(t *testing.T) {
	w := newTestWorld(t, []string{
		"     ",
		"     ",
		" 222 ",
		"     ",
		"     ",
		"11111",
	}, spawnAt(2, 1))
	settle(t, w)

	platform := w.Tile(firstTile(t, w, tiles.PlatformSet)).Hitbox
	require.Equal(t, platform.Top(), playerRect(t, w).Bottom())

	step(w, components.InputData{ClimbDown: true})
	settle(t, w)

	floor := w.Tile(firstTile(t, w, tiles.SolidSet)).Hitbox
	assert.Equal(t, floor.Top(), playerRect(t, w).Bottom())
	assert.False(t, playerPhysics(t, w).HasIgnorePlatform, "released once below")

	// Jumping back up lands on the platform again.
	for i := 0; i < 3 && playerRect(t, w).Bottom() > platform.Top(); i++ {
		step(w, components.InputData{Jump: true})
		settle(t, w)
	}
	assert.Equal(t, platform.Top(), playerRect(t, w).Bottom())
}

func TestBumpDestructible(t *testing.T) {
	w := newTestWorld(t, []string{
		"  D  ",
		"     ",
		"     ",
		"11111",
	}, spawnAt(2, 2))
	settle(t, w)

	block := firstTile(t, w, tiles.DestructibleSet)
	step(w, components.InputData{Jump: true})
	for i := 0; i < 10; i++ {
		step(w, components.InputData{})
	}

	assert.Nil(t, w.Tile(block), "destroyed by the bump")
	assert.Empty(t, w.Tiles(tiles.DestructibleSet))
	assert.Empty(t, w.Query(gamemath.Rect{X: 32, Y: 0, W: 16, H: 16}, tiles.SolidSet))
}

func TestFallingOutCostsALife(t *testing.T) {
	w := newTestWorld(t, []string{
		"   ",
		"   ",
	}, spawnAt(1, 1))
	p := playerEntry(t, w)
	lives := components.Lives.Get(p)
	start := lives.Lives

	for i := 0; i < 200 && lives.Lives == start; i++ {
		step(w, components.InputData{})
	}
	require.Equal(t, start-1, lives.Lives)

	x, y := playerRect(t, w).BottomCenter()
	spawn := components.Player.Get(p).InitialPosition
	assert.Equal(t, spawn.X, x)
	assert.Equal(t, spawn.Y, y)
	assert.Equal(t, components.Health.Get(p).Max, components.Health.Get(p).Current)
}
