package components

import "github.com/yohamta/donburi"

// SpriteData names the image an actor is drawn with and its visual size,
// bottom-centered on the hitbox.
type SpriteData struct {
	Key    string
	Width  float64
	Height float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
