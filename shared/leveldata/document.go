package leveldata

import (
	"fmt"
	"unicode/utf8"

	"github.com/automoto/tilerun/shared/tiles"
	"gopkg.in/yaml.v3"
)

// DefaultMapping is used for layers whose document carries no mapping.
var DefaultMapping = map[rune]tiles.Kind{
	'0': tiles.Empty,
	' ': tiles.Empty,
	'1': tiles.Solid,
	'2': tiles.Platform,
	'L': tiles.Ladder,
	'C': tiles.ConveyorRight,
	'c': tiles.ConveyorLeft,
	'D': tiles.Destructible,
	'S': tiles.Spike,
	'P': tiles.PowerupSpawn,
	'E': tiles.EnemySpawn,
	'K': tiles.Checkpoint,
	'F': tiles.Finish,
	'B': tiles.Background,
	'A': tiles.PortalA,
	'a': tiles.PortalB,
	'$': tiles.PickupCoin,
	'+': tiles.PickupLife,
}

// Parse decodes a YAML level document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &doc, nil
}

// Grid converts the document into a GridModel. Unmapped characters become
// Empty; ragged rows are padded with Empty.
func (d *Document) Grid() (*Grid, error) {
	if d.MainLayer == nil {
		return nil, fmt.Errorf("level %q: %w", d.Name, ErrMissingMainLayer)
	}

	mainMap, err := buildMapping(d.TileMapping)
	if err != nil {
		return nil, fmt.Errorf("level %q tileMapping: %w", d.Name, err)
	}
	bgMap := mainMap
	if len(d.BackgroundMapping) > 0 {
		if bgMap, err = buildMapping(d.BackgroundMapping); err != nil {
			return nil, fmt.Errorf("level %q backgroundMapping: %w", d.Name, err)
		}
	}

	width := maxRowWidth(d.MainLayer)
	if width == 0 {
		return nil, fmt.Errorf("level %q: %w", d.Name, ErrEmptyLevel)
	}
	width = max(width, maxRowWidth(d.BackgroundTiles))
	height := max(len(d.MainLayer), len(d.BackgroundTiles))
	if width > MaxLevelWidth || height > MaxLevelHeight {
		return nil, fmt.Errorf("level %q is %dx%d, limit %dx%d: %w",
			d.Name, width, height, MaxLevelWidth, MaxLevelHeight, ErrLevelTooLarge)
	}

	return &Grid{
		Name:       d.Name,
		Width:      width,
		Height:     height,
		Background: parseLayer(d.BackgroundTiles, bgMap, width, height),
		Main:       parseLayer(d.MainLayer, mainMap, width, height),
		Entities:   d.Entities,
	}, nil
}

func buildMapping(raw map[string]string) (map[rune]tiles.Kind, error) {
	if len(raw) == 0 {
		return DefaultMapping, nil
	}
	mapping := make(map[rune]tiles.Kind, len(raw))
	for key, name := range raw {
		if utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: key %q is not a single character", ErrBadTileMapping, key)
		}
		kind, err := tiles.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrBadTileMapping, key, err)
		}
		r, _ := utf8.DecodeRuneInString(key)
		mapping[r] = kind
	}
	return mapping, nil
}

func parseLayer(rows []string, mapping map[rune]tiles.Kind, width, height int) [][]tiles.Kind {
	layer := make([][]tiles.Kind, height)
	for y := range layer {
		layer[y] = make([]tiles.Kind, width)
		if y >= len(rows) {
			continue
		}
		x := 0
		for _, r := range rows[y] {
			// Unknown symbols stay Empty.
			layer[y][x] = mapping[r]
			x++
		}
	}
	return layer
}

func maxRowWidth(rows []string) int {
	width := 0
	for _, row := range rows {
		width = max(width, utf8.RuneCountInString(row))
	}
	return width
}
