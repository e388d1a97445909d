package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tilerun/input"
	"github.com/automoto/tilerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene displays the game over screen over the frozen level
type GameOverScene struct {
	ctx          *Context
	sceneChanger SceneChanger
	overlay      *ui.OverlayUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, ctx *Context) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, ctx: ctx}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.overlay.Update()

	if gs.ctx.Input.JustPressed(input.ActionMenuSelect) || gs.ctx.Input.JustPressed(input.ActionRestart) {
		gs.retry()
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	gs.ctx.Session.Draw(screen)
	if gs.overlay != nil {
		gs.overlay.Draw(screen)
	}
}

func (gs *GameOverScene) configure() {
	gs.overlay = ui.NewOverlayUI("GAME OVER", summary(gs.ctx.Session.Stats()),
		ui.Button{Label: "Retry", OnClicked: gs.retry},
		ui.Button{Label: "Menu", OnClicked: gs.toMenu},
	)
}

// retry replays the level with the lives the player entered it with.
func (gs *GameOverScene) retry() {
	if err := gs.ctx.Session.Restart(); err != nil {
		log.Printf("Warning: restart: %v", err)
		return
	}
	gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.ctx))
}

func (gs *GameOverScene) toMenu() {
	if err := gs.ctx.NewGame(); err != nil {
		log.Printf("Warning: new game: %v", err)
	}
	gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.ctx))
}
