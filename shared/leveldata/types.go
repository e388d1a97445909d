// Package leveldata parses level documents into grids of tile kinds.
// It has no dependencies on ebitengine, donburi, or resolv, only pure data.
package leveldata

import (
	"errors"
	"fmt"

	"github.com/automoto/tilerun/shared/tiles"
)

// Limits beyond which a document is rejected instead of padded.
const (
	MaxLevelWidth  = 4096
	MaxLevelHeight = 1024
)

var (
	ErrMissingMainLayer = errors.New("level has no main layer")
	ErrEmptyLevel       = errors.New("level main layer has no columns")
	ErrLevelTooLarge    = errors.New("level exceeds size limit")
	ErrBadTileMapping   = errors.New("bad tile mapping")
)

// Document is a level as authored: character rows per layer plus entities.
type Document struct {
	Name              string            `yaml:"name"`
	BackgroundTiles   []string          `yaml:"backgroundTiles,omitempty"`
	MainLayer         []string          `yaml:"mainLayer"`
	Entities          []EntityPlacement `yaml:"entities,omitempty"`
	TileMapping       map[string]string `yaml:"tileMapping,omitempty"`
	BackgroundMapping map[string]string `yaml:"backgroundMapping,omitempty"`
}

// EntityType names what an entity placement spawns.
type EntityType string

const (
	EntityPlayerSpawn EntityType = "player_spawn"
	EntityEnemy       EntityType = "enemy"
	EntityPowerup     EntityType = "powerup"
	EntityCheckpoint  EntityType = "checkpoint"
)

// EntityPlacement is an entity record read verbatim from the document.
// Kinds and positions are validated when the entity is instantiated.
type EntityPlacement struct {
	Type        EntityType     `yaml:"type"`
	Position    []int          `yaml:"position"`
	EnemyType   string         `yaml:"enemyType,omitempty"`
	PowerupType string         `yaml:"powerupType,omitempty"`
	Properties  map[string]any `yaml:"properties,omitempty"`
}

// Cell returns the grid position, or ok=false if the record does not hold
// exactly two coordinates.
func (e EntityPlacement) Cell() (col, row int, ok bool) {
	if len(e.Position) != 2 {
		return 0, 0, false
	}
	return e.Position[0], e.Position[1], true
}

// Float reads a numeric property, falling back to def.
func (e EntityPlacement) Float(key string, def float64) float64 {
	switch v := e.Properties[key].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	}
	return def
}

// String reads a string property, falling back to def.
func (e EntityPlacement) String(key, def string) string {
	if v, ok := e.Properties[key].(string); ok {
		return v
	}
	return def
}

// Describe names the placement for error messages.
func (e EntityPlacement) Describe() string {
	return fmt.Sprintf("%s at %v", e.Type, e.Position)
}

// Grid is the parsed form of a Document. Both layers share the same
// dimensions; row 0 is the top of the level.
type Grid struct {
	Name       string
	Width      int
	Height     int
	Background [][]tiles.Kind
	Main       [][]tiles.Kind
	Entities   []EntityPlacement
}

// InBounds reports whether (col, row) addresses a cell.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.Width && row < g.Height
}

// At returns the main layer kind at (col, row), Empty when out of bounds.
func (g *Grid) At(col, row int) tiles.Kind {
	if !g.InBounds(col, row) {
		return tiles.Empty
	}
	return g.Main[row][col]
}

// BackgroundAt returns the background kind at (col, row).
func (g *Grid) BackgroundAt(col, row int) tiles.Kind {
	if !g.InBounds(col, row) {
		return tiles.Empty
	}
	return g.Background[row][col]
}
