package components

import (
	"time"

	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Frames  []string
	Cursor  int
	Elapsed time.Duration
}

// Current returns the frame to draw, or fallback for unanimated entities.
func (a *AnimationData) Current(fallback string) string {
	if len(a.Frames) == 0 {
		return fallback
	}
	return a.Frames[a.Cursor%len(a.Frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
