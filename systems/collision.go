package systems

import (
	"math"

	"github.com/automoto/tilerun/components"
	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

// motionRules selects the tile interactions an actor takes part in.
type motionRules struct {
	conveyors bool
	platforms bool
}

var (
	playerRules = motionRules{conveyors: true, platforms: true}
	walkerRules = motionRules{platforms: true}
	flyerRules  = motionRules{}
)

// verticalHit describes the solid tile that stopped vertical movement.
type verticalHit struct {
	tile  donburi.Entity
	upper bool // hit while moving up
}

// resolveObjectHorizontalCollision moves the object by SpeedX, stopping flush
// against the nearest solid. Conveyors only push when no solid was hit, and a
// push that would enter a solid is dropped on its own.
func resolveObjectHorizontalCollision(w *level.World, obj *components.ObjectData, physics *components.PhysicsData, rules motionRules) (blocked bool) {
	r := obj.Rect()
	physics.OnConveyor = false

	if dx := physics.SpeedX; dx != 0 {
		target := r.Offset(dx, 0)
		if hb, ok := nearestSolidX(w, r, target, dx); ok {
			if dx > 0 {
				r.X = hb.Left() - r.W
			} else {
				r.X = hb.Right()
			}
			obj.SetRect(r)
			return true
		}
		r = target
	}

	if rules.conveyors {
		if speed, ok := conveyorUnder(w, r); ok {
			physics.OnConveyor = true
			pushed := r.Offset(float64(speed), 0)
			if !w.Overlaps(pushed, tiles.SolidSet) {
				r = pushed
			}
		}
	}

	obj.SetRect(r)
	return false
}

// nearestSolidX finds the closest solid hitbox ahead of r that the move to
// target would enter. Ties go to the earliest tile in grid order.
func nearestSolidX(w *level.World, r, target gamemath.Rect, dx float64) (gamemath.Rect, bool) {
	var (
		best  gamemath.Rect
		found bool
	)
	for _, e := range w.Query(r.Union(target), tiles.SolidSet) {
		hb := w.Tile(e).Hitbox
		if !hb.OverlapsY(r) {
			continue
		}
		if dx > 0 {
			if hb.Left() < r.Right() {
				continue
			}
			if !found || hb.Left() < best.Left() {
				best, found = hb, true
			}
		} else {
			if hb.Right() > r.Left() {
				continue
			}
			if !found || hb.Right() > best.Right() {
				best, found = hb, true
			}
		}
	}
	return best, found
}

// conveyorUnder returns the speed of the first conveyor directly below r.
func conveyorUnder(w *level.World, r gamemath.Rect) (int, bool) {
	feet := gamemath.Rect{X: r.X, Y: r.Bottom(), W: r.W, H: 1}
	e, ok := w.First(feet, tiles.ConveyorSet)
	if !ok {
		return 0, false
	}
	return w.Tile(e).Props.ConveyorSpeed, true
}

// resolveObjectVerticalCollision moves the object by SpeedY. One-way
// platforms are tried first when falling, then solids.
func resolveObjectVerticalCollision(w *level.World, obj *components.ObjectData, physics *components.PhysicsData, rules motionRules) (verticalHit, bool) {
	r := obj.Rect()
	dy := physics.SpeedY
	physics.OnGround = false

	releaseIgnoredPlatform(w, r, dy, physics)

	if rules.platforms && dy > 0 && !physics.IsClimbing {
		if hb, ok := platformLanding(w, r, dy, physics); ok {
			r.Y = hb.Top() - r.H
			physics.SpeedY = 0
			physics.OnGround = true
			obj.SetRect(r)
			return verticalHit{}, false
		}
	}

	if dy == 0 {
		return verticalHit{}, false
	}

	target := r.Offset(0, dy)
	e, hb, ok := nearestSolidY(w, r, target, dy)
	if !ok {
		obj.SetRect(target)
		return verticalHit{}, false
	}

	physics.SpeedY = 0
	if dy > 0 {
		r.Y = hb.Top() - r.H
		physics.OnGround = true
	} else {
		r.Y = hb.Bottom()
	}
	obj.SetRect(r)
	return verticalHit{tile: e, upper: dy < 0}, true
}

func nearestSolidY(w *level.World, r, target gamemath.Rect, dy float64) (donburi.Entity, gamemath.Rect, bool) {
	var (
		best   gamemath.Rect
		bestID donburi.Entity
		found  bool
	)
	for _, e := range w.Query(r.Union(target), tiles.SolidSet) {
		hb := w.Tile(e).Hitbox
		if !hb.OverlapsX(r) {
			continue
		}
		if dy > 0 {
			if hb.Top() < r.Bottom() {
				continue
			}
			if !found || hb.Top() < best.Top() {
				best, bestID, found = hb, e, true
			}
		} else {
			if hb.Bottom() > r.Top() {
				continue
			}
			if !found || hb.Bottom() > best.Bottom() {
				best, bestID, found = hb, e, true
			}
		}
	}
	return bestID, best, found
}

// platformLanding picks the platform a falling actor lands on. A platform
// qualifies when the actor overlaps it horizontally within the edge
// tolerance, the actor's bottom was at or above its top, and this move
// reaches the top. The highest platform wins, then the one whose center is
// closest, then grid order.
func platformLanding(w *level.World, r gamemath.Rect, dy float64, physics *components.PhysicsData) (gamemath.Rect, bool) {
	tol := cfg.Collision.PlatformEdgeTolerance
	eps := cfg.Collision.PlatformWasAboveEpsilon

	sweep := r.Union(r.Offset(0, dy))
	sweep.X -= tol
	sweep.W += 2 * tol

	ignoreTop, ignoring := ignoredPlatformTop(w, physics)

	var (
		best     gamemath.Rect
		bestDist float64
		found    bool
	)
	for _, e := range w.Candidates(sweep, tiles.PlatformSet) {
		t := w.Tile(e)
		if t == nil || !t.Categories.Has(tiles.PlatformSet) || t.Hitbox.Empty() {
			continue
		}
		hb := t.Hitbox
		if ignoring && hb.Top() == ignoreTop {
			continue
		}

		alignedX := r.Right() > hb.Left()-tol && r.Left() < hb.Right()+tol
		wasAbove := r.Bottom() <= hb.Top()+eps
		willCross := r.Bottom()+dy >= hb.Top()
		if !alignedX || !wasAbove || !willCross {
			continue
		}

		landed := r
		landed.Y = hb.Top() - r.H
		if w.Overlaps(landed, tiles.SolidSet) {
			continue
		}

		dist := math.Abs(hb.CenterX() - r.CenterX())
		switch {
		case !found, hb.Top() < best.Top():
		case hb.Top() == best.Top() && dist < bestDist:
		default:
			continue
		}
		best, bestDist, found = hb, dist, true
	}
	return best, found
}

// standingPlatform returns the platform directly under r, if any.
func standingPlatform(w *level.World, r gamemath.Rect) (donburi.Entity, bool) {
	feet := gamemath.Rect{X: r.X, Y: r.Bottom(), W: r.W, H: 1}
	return w.First(feet, tiles.PlatformSet)
}

// releaseIgnoredPlatform forgets a dropped-through platform row once the
// actor is fully below it or moving up again.
func releaseIgnoredPlatform(w *level.World, r gamemath.Rect, dy float64, physics *components.PhysicsData) {
	if !physics.HasIgnorePlatform {
		return
	}
	t := w.Tile(physics.IgnorePlatform)
	if t == nil || dy < 0 || r.Top() >= t.Hitbox.Bottom() {
		physics.HasIgnorePlatform = false
	}
}

// ignoredPlatformTop returns the top of the platform row being dropped
// through. Every platform on that row is skipped so that neighbours within
// the edge tolerance do not catch the actor.
func ignoredPlatformTop(w *level.World, physics *components.PhysicsData) (float64, bool) {
	if !physics.HasIgnorePlatform {
		return 0, false
	}
	t := w.Tile(physics.IgnorePlatform)
	if t == nil {
		return 0, false
	}
	return t.Hitbox.Top(), true
}
