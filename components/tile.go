package components

import (
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/automoto/tilerun/shared/tiles"
	"github.com/yohamta/donburi"
)

type TileData struct {
	Kind       tiles.Kind
	Props      tiles.Properties
	Categories tiles.CategorySet
	Col, Row   int
	Rect       gamemath.Rect // visual bounds
	Hitbox     gamemath.Rect // zero when the kind has no hitbox
	Order      int           // grid-scan index, background layer first
	Background bool          // placed by the background layer
}

var Tile = donburi.NewComponentType[TileData]()
