package components

import (
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData wraps the resolv object registered in the level space. For
// actors it is the authoritative hitbox.
type ObjectData struct {
	*resolv.Object
}

// Rect returns the object's bounds.
func (o *ObjectData) Rect() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetRect moves and resizes the object and refreshes its space cells.
func (o *ObjectData) SetRect(r gamemath.Rect) {
	o.X, o.Y, o.W, o.H = r.X, r.Y, r.W, r.H
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
