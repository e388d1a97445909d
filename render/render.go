// Package render draws a game session with ebiten. Every image key maps to
// a flat color; there are no sprite sheets.
package render

import (
	"image/color"
	"log"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/game"
	"github.com/automoto/tilerun/level"
	"github.com/automoto/tilerun/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Viewport culling skips drawables that are off-screen. A small padding
// keeps actors from popping at the edges.
const cullPadding = 32.0

// blinkPeriod is the number of frames in one invulnerability blink cycle.
const blinkPeriod = 8

// Palette maps image keys to colors.
type Palette map[string]color.RGBA

// DefaultPalette covers every key the default catalog and enemy types use.
func DefaultPalette() Palette {
	return Palette{
		"tile_solid":          cfg.Gray,
		"tile_platform":       cfg.Brown,
		"tile_ladder":         {R: 200, G: 160, B: 80, A: 255},
		"tile_conveyor_left":  cfg.DarkBlue,
		"tile_conveyor_right": cfg.DarkBlue,
		"conveyor_1":          cfg.DarkBlue,
		"conveyor_2":          {R: 70, G: 115, B: 180, A: 255},
		"conveyor_3":          {R: 80, G: 130, B: 200, A: 255},
		"tile_destructible":   {R: 170, G: 110, B: 60, A: 255},
		"tile_spike":          cfg.Red,
		"tile_checkpoint":     cfg.LightGreen,
		"checkpoint_1":        cfg.LightGreen,
		"checkpoint_2":        cfg.Green,
		"tile_finish":         cfg.Yellow,
		"finish_1":            cfg.Yellow,
		"finish_2":            cfg.Orange,
		"tile_background":     {R: 30, G: 30, B: 45, A: 255},
		"tile_portal_a":       cfg.Purple,
		"portal_a_1":          cfg.Purple,
		"portal_a_2":          cfg.Magenta,
		"tile_portal_b":       cfg.LightBlue,
		"portal_b_1":          cfg.LightBlue,
		"portal_b_2":          cfg.Blue,
		"tile_coin":           cfg.Yellow,
		"tile_oneup":          cfg.Green,
		"powerup_jump_boost":  cfg.Orange,
		"player":              cfg.Blue,
		"walker":              cfg.Red,
		"jumper":              cfg.Orange,
		"flyer":               cfg.Magenta,
	}
}

// Renderer draws sessions. It is used from the ebiten draw goroutine only.
type Renderer struct {
	Palette Palette
	// Debug outlines tile and actor hitboxes.
	Debug bool

	frame   int
	missing map[string]bool
}

func New() *Renderer {
	return &Renderer{
		Palette: DefaultPalette(),
		missing: make(map[string]bool),
	}
}

// Register adds the renderer's layers to a level's ECS. Pass it to
// game.WithRenderers so every loaded level draws through it.
func (r *Renderer) Register(e *ecs.ECS) {
	e.AddRenderer(cfg.LayerWorld, r.DrawWorld)
	e.AddRenderer(cfg.LayerDebug, r.DrawDebug)
	e.AddRenderer(cfg.LayerHUD, DrawHUD)
}

// DrawWorld draws tiles and actors relative to the camera.
func (r *Renderer) DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	r.frame++
	world := level.FromECS(e)
	camera := game.CameraOf(world)
	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	view := gamemath.Rect{
		X: camera.X - cullPadding,
		Y: camera.Y - cullPadding,
		W: width + 2*cullPadding,
		H: height + 2*cullPadding,
	}

	for _, d := range game.Drawables(world) {
		if !d.Rect.Overlaps(view) {
			continue
		}
		if d.Blink && r.frame%blinkPeriod < blinkPeriod/2 {
			continue
		}
		x := float32(d.Rect.X - camera.X)
		y := float32(d.Rect.Y - camera.Y)
		w, h := float32(d.Rect.W), float32(d.Rect.H)

		clr := r.color(d.ImageRef)
		if d.Layer == game.LayerActors {
			clr = actorShade(clr, d.State)
		}
		vector.FillRect(screen, x, y, w, h, clr, false)

		if d.Layer == game.LayerActors {
			drawFacing(screen, x, y, w, h, d.Facing)
		}
	}
}

// DrawDebug outlines hitboxes when Debug is set.
func (r *Renderer) DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !r.Debug {
		return
	}
	w := level.FromECS(e)
	camera := game.CameraOf(w)
	drawHitboxes(screen, w, camera.X, camera.Y)
}

func (r *Renderer) color(key string) color.RGBA {
	if c, ok := r.Palette[key]; ok {
		return c
	}
	if !r.missing[key] {
		r.missing[key] = true
		log.Printf("Warning: no color for image %q", key)
	}
	return cfg.Magenta
}

// actorShade darkens airborne actors so jumps read at a glance.
func actorShade(c color.RGBA, state cfg.StateID) color.RGBA {
	switch state {
	case cfg.Jump, cfg.Fall:
		return color.RGBA{R: c.R / 4 * 3, G: c.G / 4 * 3, B: c.B / 4 * 3, A: c.A}
	case cfg.Hit:
		return cfg.White
	}
	return c
}

// drawFacing marks the side the actor looks towards.
func drawFacing(screen *ebiten.Image, x, y, w, h float32, facing float64) {
	const eye = 3
	ex := x + w - eye - 1
	if facing < 0 {
		ex = x + 1
	}
	vector.FillRect(screen, ex, y+h/4, eye, eye, cfg.White, false)
}
