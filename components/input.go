package components

import "github.com/yohamta/donburi"

// InputData is the boolean input snapshot for one tick.
type InputData struct {
	Left      bool
	Right     bool
	Jump      bool
	ClimbUp   bool
	ClimbDown bool
	Activate  bool
}

// DirX returns -1, 0 or 1 for the horizontal intent. Opposing keys cancel.
func (in InputData) DirX() float64 {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

var Input = donburi.NewComponentType[InputData]()
