package render

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/game"
	"github.com/automoto/tilerun/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	livesMargin  = 5
	heartSize    = 9
	lineHeight   = 14
)

// DrawHUD renders the health bar and lives in the top-left corner and the
// level and coin counters in the top-right.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	st := game.StatsOf(level.FromECS(e))

	// Background (dark gray)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	if st.MaxHealth > 0 {
		ratio := float32(st.Health) / float32(st.MaxHealth)
		vector.FillRect(screen,
			float32(hudMargin), float32(hudMargin),
			float32(hudBarWidth)*ratio, float32(hudBarHeight),
			color.RGBA{40, 220, 40, 255}, false)
	}

	drawLives(screen, st.Lives)

	width := float64(screen.Bounds().Dx())
	right := width - hudMargin
	drawText(screen, fmt.Sprintf("%s  %d/%d", st.Level, st.LevelIndex+1, st.LevelCount), right, hudMargin, true, cfg.White)
	drawText(screen, fmt.Sprintf("Coins %d", st.Coins), right, hudMargin+lineHeight, true, cfg.Yellow)
	drawText(screen, fmt.Sprintf("%.1fs", st.Elapsed.Seconds()), right, hudMargin+2*lineHeight, true, cfg.Gray)

	y := float64(hudMargin + hudBarHeight + livesMargin + heartSize + livesMargin)
	if st.JumpBoost {
		drawText(screen, "JUMP BOOST", hudMargin, y, false, cfg.Orange)
		y += lineHeight
	}
	if st.NearPortal {
		drawText(screen, "Press E to teleport", hudMargin, y, false, cfg.LightBlue)
	}
}

func drawLives(screen *ebiten.Image, lives int) {
	livesY := float32(hudMargin + hudBarHeight + livesMargin)
	for i := 0; i < lives; i++ {
		x := float32(hudMargin + i*(heartSize+livesMargin))
		vector.FillRect(screen, x, livesY, heartSize, heartSize, cfg.Red, false)
	}
}

func drawText(screen *ebiten.Image, s string, x, y float64, alignRight bool, clr color.Color) {
	face := fonts.HUD.Get()
	op := &text.DrawOptions{}
	if alignRight {
		w, _ := text.Measure(s, face, 0)
		x -= w
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}
