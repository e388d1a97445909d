package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/game"
	"github.com/automoto/tilerun/input"
	"github.com/automoto/tilerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// tickDuration is the fixed simulation step.
const tickDuration = time.Second / cfg.TickRate

// PlatformerScene plays the campaign held by its context.
type PlatformerScene struct {
	ctx          *Context
	sceneChanger SceneChanger

	// overlay is shown between levels and after the last one; the
	// session is paused while it is up.
	overlay  *ui.OverlayUI
	onSelect func()

	once sync.Once
}

// NewPlatformerScene creates a scene for the context's current session.
func NewPlatformerScene(sc SceneChanger, ctx *Context) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, ctx: ctx}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)

	if ps.overlay != nil {
		ps.overlay.Update()
		if ps.overlay != nil && ps.ctx.Input.JustPressed(input.ActionMenuSelect) {
			ps.onSelect()
		}
		return
	}

	ps.ctx.reloadLevels()

	session := ps.ctx.Session
	if ps.ctx.Input.JustPressed(input.ActionRestart) {
		ps.restart()
		return
	}
	session.Tick(tickDuration, ps.ctx.Input.Poll())

	switch {
	case session.IsGameOver():
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.ctx))
	case session.IsNextLevel():
		ps.showOverlay("LEVEL COMPLETE", summary(session.Stats()),
			ui.Button{Label: "Next level", OnClicked: ps.advance})
	case session.IsFinishReached():
		ps.showOverlay("YOU WIN", summary(session.Stats()),
			ui.Button{Label: "Play again", OnClicked: ps.newGame},
			ui.Button{Label: "Menu", OnClicked: ps.toMenu})
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ctx.Session == nil {
		return
	}
	ps.ctx.Session.Draw(screen)
	if ps.overlay != nil {
		ps.overlay.Draw(screen)
	}
}

func (ps *PlatformerScene) configure() {
	ps.ctx.logSpawnErrors()
}

// showOverlay pauses play. The first button also answers the select key.
func (ps *PlatformerScene) showOverlay(title, detail string, buttons ...ui.Button) {
	ps.ctx.Session.Pause()
	ps.overlay = ui.NewOverlayUI(title, detail, buttons...)
	ps.onSelect = buttons[0].OnClicked
}

func (ps *PlatformerScene) closeOverlay() {
	ps.overlay = nil
	ps.onSelect = nil
}

func (ps *PlatformerScene) restart() {
	if err := ps.ctx.Session.Restart(); err != nil {
		log.Printf("Warning: restart: %v", err)
	}
}

func (ps *PlatformerScene) advance() {
	ps.closeOverlay()
	if err := ps.ctx.Session.AdvanceLevel(); err != nil {
		log.Printf("Warning: advance level: %v", err)
		return
	}
	ps.ctx.logSpawnErrors()
}

func (ps *PlatformerScene) newGame() {
	ps.closeOverlay()
	if err := ps.ctx.NewGame(); err != nil {
		log.Printf("Warning: new game: %v", err)
	}
}

func (ps *PlatformerScene) toMenu() {
	ps.closeOverlay()
	if err := ps.ctx.NewGame(); err != nil {
		log.Printf("Warning: new game: %v", err)
	}
	ps.sceneChanger.ChangeScene(NewMenuScene(ps.sceneChanger, ps.ctx))
}

func summary(st game.Stats) string {
	return fmt.Sprintf("%s  Coins %d  Time %.1fs", st.Level, st.Coins, st.Elapsed.Seconds())
}
