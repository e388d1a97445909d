// Package input turns keyboard and gamepad state into the per-tick input
// snapshot the simulation consumes.
package input

import (
	"github.com/automoto/tilerun/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionClimbUp
	ActionClimbDown
	ActionActivate
	ActionRestart
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// Binding is the set of keys and buttons that trigger one action.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings.
type Config struct {
	Bindings [ActionCount]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Default is the built-in mapping: arrows or WASD to move and climb, space
// or X to jump, E or Z to use portals, R to restart.
var Default = Config{
	AnalogDeadzone: 0.25,
	Bindings: [ActionCount]Binding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyX},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionClimbUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionClimbDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionActivate: {
			Keys: []ebiten.Key{ebiten.KeyE, ebiten.KeyZ},
			// X / Square button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
		},
		ActionRestart: {
			Keys:                   []ebiten.Key{ebiten.KeyR},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
		},
		ActionMenuSelect: {
			Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
	},
}

// Reader polls devices once per tick.
type Reader struct {
	cfg      Config
	gamepads []ebiten.GamepadID
}

func NewReader(cfg Config) *Reader {
	return &Reader{cfg: cfg}
}

// Poll returns the snapshot for this tick. Activate is edge triggered so a
// held key does not bounce between linked portals.
func (r *Reader) Poll() game.Input {
	r.gamepads = ebiten.AppendGamepadIDs(r.gamepads[:0])
	left, right, up, down := r.analogStick()

	return game.Input{
		Left:      r.Pressed(ActionMoveLeft) || left,
		Right:     r.Pressed(ActionMoveRight) || right,
		Jump:      r.Pressed(ActionJump),
		ClimbUp:   r.Pressed(ActionClimbUp) || up,
		ClimbDown: r.Pressed(ActionClimbDown) || down,
		Activate:  r.JustPressed(ActionActivate),
	}
}

// Pressed reports whether any binding of id is held.
func (r *Reader) Pressed(id ActionID) bool {
	b := r.cfg.Bindings[id]
	for _, k := range b.Keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	for _, gp := range r.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

// JustPressed reports whether any binding of id went down this tick.
func (r *Reader) JustPressed(id ActionID) bool {
	b := r.cfg.Bindings[id]
	for _, k := range b.Keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	for _, gp := range r.gamepads {
		for _, btn := range b.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gp, btn) {
				return true
			}
		}
	}
	return false
}

func (r *Reader) analogStick() (left, right, up, down bool) {
	dz := r.cfg.AnalogDeadzone
	for _, gp := range r.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gp) {
			continue
		}
		x := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickHorizontal)
		y := ebiten.StandardGamepadAxisValue(gp, ebiten.StandardGamepadAxisLeftStickVertical)
		left = left || x < -dz
		right = right || x > dz
		up = up || y < -dz
		down = down || y > dz
	}
	return left, right, up, down
}
