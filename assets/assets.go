// Package assets ships the built-in level set and watches level directories
// for edits during development.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/automoto/tilerun/shared/leveldata"
)

// LevelDir is the directory holding level documents inside a level FS.
const LevelDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelLoader reads an ordered campaign from a level FS. Files are played in
// name order, so prefixes like "01-" set the sequence.
type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader reads the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: LevelDir}
}

// NewDirLevelLoader reads levels from a directory on disk.
func NewDirLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{fsys: os.DirFS(dir), dir: "."}
}

// LoadLevels parses every level document in order.
func (l *LevelLoader) LoadLevels() ([]*leveldata.Document, error) {
	byName, names, err := leveldata.LoadAll(l.fsys, l.dir)
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}
	docs := make([]*leveldata.Document, 0, len(names))
	for _, name := range names {
		docs = append(docs, byName[name])
	}
	return docs, nil
}

// MustLoadLevels is LoadLevels for the embedded set, which is known good.
func (l *LevelLoader) MustLoadLevels() []*leveldata.Document {
	docs, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return docs
}
