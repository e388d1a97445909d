package scenes

import (
	"fmt"
	"image/color"
	"os"
	"sync"

	"github.com/automoto/tilerun/input"
	"github.com/automoto/tilerun/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the title screen
type MenuScene struct {
	ctx          *Context
	sceneChanger SceneChanger
	overlay      *ui.OverlayUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, ctx *Context) *MenuScene {
	return &MenuScene{sceneChanger: sc, ctx: ctx}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.overlay.Update()

	if ms.ctx.Input.JustPressed(input.ActionMenuSelect) {
		ms.start()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.overlay == nil {
		return
	}
	ms.overlay.Draw(screen)
}

func (ms *MenuScene) configure() {
	detail := fmt.Sprintf("%d levels", len(ms.ctx.Docs))
	if ms.ctx.Watcher != nil {
		detail += " (live reload)"
	}
	ms.overlay = ui.NewOverlayUI("TILERUN", detail,
		ui.Button{Label: "Start", OnClicked: ms.start},
		ui.Button{Label: "Quit", OnClicked: func() { os.Exit(0) }},
	)
}

func (ms *MenuScene) start() {
	ms.sceneChanger.ChangeScene(NewPlatformerScene(ms.sceneChanger, ms.ctx))
}
