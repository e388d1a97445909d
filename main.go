package main

import (
	"flag"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/config"
	"github.com/automoto/tilerun/fonts"
	"github.com/automoto/tilerun/game"
	"github.com/automoto/tilerun/input"
	"github.com/automoto/tilerun/render"
	"github.com/automoto/tilerun/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(ctx *scenes.Context, skipMenu bool) *Game {
	fonts.Load()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipMenu {
		g.scene = scenes.NewPlatformerScene(g, ctx)
	} else {
		g.scene = scenes.NewMenuScene(g, ctx)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in tuning values")
	levelDir := flag.String("levels", "", "directory of level documents; edits are reloaded while playing")
	startLevel := flag.Int("level", 0, "index of the first level to play")
	debug := flag.Bool("debug", false, "draw hitboxes")
	skipMenu := flag.Bool("skip-menu", false, "start playing immediately")
	flag.Parse()

	if *configPath != "" {
		dir, name := filepath.Split(*configPath)
		if dir == "" {
			dir = "."
		}
		if err := config.LoadFile(os.DirFS(dir), name); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	renderer := render.New()
	renderer.Debug = *debug

	ctx := &scenes.Context{
		Options: []game.Option{
			game.WithStartLevel(*startLevel),
			game.WithRenderers(renderer.Register),
		},
		Input: input.NewReader(input.Default),
	}

	loader := assets.NewLevelLoader()
	if *levelDir != "" {
		loader = assets.NewDirLevelLoader(*levelDir)
		ctx.Loader = loader

		watcher, err := assets.NewWatcher(*levelDir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", *levelDir, err)
		} else {
			defer watcher.Close()
			ctx.Watcher = watcher
		}
	}

	docs, err := loader.LoadLevels()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	ctx.Docs = docs
	if err := ctx.NewGame(); err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("tilerun")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(ctx, *skipMenu)); err != nil {
		log.Fatal(err)
	}
}
