package config

// StateID identifies the animation state of an actor.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	Fall
	Climb
	Hit
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "run",
	Jump:      "jump",
	Fall:      "fall",
	Climb:     "climb",
	Hit:       "hit",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
