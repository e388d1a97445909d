package components

import (
	"github.com/automoto/tilerun/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

// Set changes the state and resets the timer when it differs.
func (s *StateData) Set(next config.StateID) {
	if s.CurrentState == next {
		s.StateTimer++
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
