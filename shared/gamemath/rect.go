package gamemath

import "math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectFromBottomCenter builds a w×h rect whose bottom edge is centered on (x, y).
func RectFromBottomCenter(x, y, w, h float64) Rect {
	return Rect{X: x - w/2, Y: y - h, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// BottomCenter is the reference point actors are positioned by.
func (r Rect) BottomCenter() (x, y float64) {
	return r.CenterX(), r.Bottom()
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Offset returns the rect moved by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether the interiors intersect. Rects that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal extents intersect.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right()
}

// OverlapsY reports whether the vertical extents intersect.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Union returns the smallest rect containing both.
func (r Rect) Union(o Rect) Rect {
	x := math.Min(r.X, o.X)
	y := math.Min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: math.Max(r.Right(), o.Right()) - x,
		H: math.Max(r.Bottom(), o.Bottom()) - y,
	}
}

// InsetY trims d from both the top and the bottom.
func (r Rect) InsetY(d float64) Rect {
	r.Y += d
	r.H -= 2 * d
	if r.H < 0 {
		r.H = 0
	}
	return r
}
