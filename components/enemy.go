package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type EnemyKind int

const (
	Walker EnemyKind = iota
	Jumper
	Flyer
)

func (k EnemyKind) String() string {
	switch k {
	case Walker:
		return "walker"
	case Jumper:
		return "jumper"
	case Flyer:
		return "flyer"
	}
	return "unknown"
}

type EnemyData struct {
	Kind      EnemyKind
	TypeName  string
	Damage    int
	Direction float64

	PatrolOriginX  float64
	PatrolDistance float64

	// Jumper
	JumpSpeed    float64
	JumpCooldown time.Duration
	JumpReadyAt  time.Duration

	// Flyer
	OriginY   float64
	Amplitude float64
	Swing     *gween.Tween
	SwingTime float32 // seconds from one end to the other
	Rising    bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
