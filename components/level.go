package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// LevelData is the per-level session state polled by the game loop.
type LevelData struct {
	Name   string
	Width  float64 // pixels
	Height float64

	LevelIndex int
	LevelCount int

	Now           time.Duration
	Step          time.Duration
	FinishReached bool
	OutOfLives    bool
}

var Level = donburi.NewComponentType[LevelData]()
