package components

import "github.com/yohamta/donburi"

// LivesData counts the respawns left; zero ends the game.
type LivesData struct {
	Lives int
}

var Lives = donburi.NewComponentType[LivesData]()
