package scenes

import (
	"log"

	"github.com/automoto/tilerun/assets"
	"github.com/automoto/tilerun/game"
	"github.com/automoto/tilerun/input"
	"github.com/automoto/tilerun/shared/leveldata"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Context is the state shared by every scene of one run.
type Context struct {
	Docs    []*leveldata.Document
	Options []game.Option
	Session *game.Session
	Input   *input.Reader

	// Loader and Watcher are set when levels are read from disk.
	Loader  *assets.LevelLoader
	Watcher *assets.Watcher
}

// NewGame replaces the session with a fresh campaign over Docs.
func (c *Context) NewGame() error {
	s, err := game.NewCampaign(c.Docs, c.Options...)
	if err != nil {
		return err
	}
	c.Session = s
	c.logSpawnErrors()
	return nil
}

// reloadLevels rebuilds the current level when a watched file changed.
func (c *Context) reloadLevels() {
	if c.Watcher == nil || c.Loader == nil {
		return
	}
	changed, errs := c.Watcher.Drain()
	for _, err := range errs {
		log.Printf("Warning: level watcher: %v", err)
	}
	if !changed {
		return
	}

	docs, err := c.Loader.LoadLevels()
	if err != nil {
		log.Printf("Warning: reload levels: %v", err)
		return
	}
	if err := c.Session.Reload(docs); err != nil {
		log.Printf("Warning: reload levels: %v", err)
		return
	}
	c.Docs = docs
	log.Printf("Reloaded %d levels", len(docs))
	c.logSpawnErrors()
}

func (c *Context) logSpawnErrors() {
	if err := c.Session.SpawnErrors(); err != nil {
		log.Printf("Warning: level %s: %v", c.Session.Stats().Level, err)
	}
}
