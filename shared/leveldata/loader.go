package leveldata

import (
	"fmt"
	"io/fs"
	"log"
	"math"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/automoto/tilerun/shared/tiles"
	"github.com/lafriks/go-tiled"
)

// Tiled layer and object group names read by LoadTMX.
const (
	tmxBackgroundLayer = "background"
	tmxMainLayer       = "main"
	tmxEntityGroup     = "entities"
	tmxKindProperty    = "kind"
)

// LoadFile reads a level document from fsys. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS. The format is chosen by extension.
func LoadFile(fsys fs.FS, name string) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch strings.ToLower(path.Ext(name)) {
	case ".tmx":
		doc, err = LoadTMX(fsys, name)
	case ".yaml", ".yml":
		var data []byte
		if data, err = fs.ReadFile(fsys, name); err == nil {
			doc, err = Parse(data)
		}
	default:
		return nil, fmt.Errorf("load level %s: unsupported extension", name)
	}
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", name, err)
	}
	if doc.Name == "" {
		doc.Name = stem(name)
	}
	return doc, nil
}

// LoadAll discovers every level file in dir, loads each, and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Document, []string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", dir, err)
	}

	docs := make(map[string]*Document, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsLevelFile(entry.Name()) {
			continue
		}
		doc, err := LoadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, nil, err
		}
		name := stem(entry.Name())
		docs[name] = doc
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", dir)
	}

	sort.Strings(names)
	return docs, names, nil
}

// IsLevelFile reports whether name has a level document extension.
func IsLevelFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".tmx":
		return true
	}
	return false
}

// LoadTMX converts a Tiled map into a Document. Tile kinds come from the
// tileset tile property "kind"; main layer tiles without one are solid.
// Objects in the "entities" group become entity placements.
func LoadTMX(fsys fs.FS, tmxPath string) (*Document, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	doc := &Document{
		Name:        levelMap.Properties.GetString("name"),
		TileMapping: map[string]string{},
	}

	for _, layer := range levelMap.Layers {
		var fallback tiles.Kind
		switch strings.ToLower(layer.Name) {
		case tmxMainLayer:
			fallback = tiles.Solid
		case tmxBackgroundLayer:
			fallback = tiles.Background
		default:
			continue
		}

		rows := make([]string, levelMap.Height)
		for y := 0; y < levelMap.Height; y++ {
			var row strings.Builder
			for x := 0; x < levelMap.Width; x++ {
				kind := tmxTileKind(layer.Tiles[y*levelMap.Width+x], fallback)
				r := kindRune(kind)
				doc.TileMapping[string(r)] = kind.String()
				row.WriteRune(r)
			}
			rows[y] = row.String()
		}

		if fallback == tiles.Solid {
			doc.MainLayer = rows
		} else {
			doc.BackgroundTiles = rows
		}
	}

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, og := range levelMap.ObjectGroups {
		if !strings.EqualFold(og.Name, tmxEntityGroup) {
			continue
		}
		for _, o := range og.Objects {
			entityType := o.Class
			if entityType == "" {
				entityType = o.Type //nolint:staticcheck // older TMX files use type=
			}
			placement := EntityPlacement{
				Type:     EntityType(entityType),
				Position: []int{int(math.Floor(o.X / tileW)), int(math.Floor(o.Y / tileH))},
			}
			for _, p := range o.Properties {
				switch p.Name {
				case "enemyType":
					placement.EnemyType = p.Value
				case "powerupType":
					placement.PowerupType = p.Value
				default:
					if placement.Properties == nil {
						placement.Properties = map[string]any{}
					}
					placement.Properties[p.Name] = tmxPropertyValue(p.Type, p.Value)
				}
			}
			doc.Entities = append(doc.Entities, placement)
		}
	}

	return doc, nil
}

func tmxTileKind(tile *tiled.LayerTile, fallback tiles.Kind) tiles.Kind {
	if tile == nil || tile.IsNil() {
		return tiles.Empty
	}
	tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID)
	if err != nil {
		return fallback
	}
	name := tilesetTile.Properties.GetString(tmxKindProperty)
	if name == "" {
		return fallback
	}
	kind, err := tiles.ParseKind(name)
	if err != nil {
		log.Printf("Warning: tile %d: %v, treating as empty", tile.ID, err)
		return tiles.Empty
	}
	return kind
}

// kindRune gives every kind a stable character for synthesized documents.
func kindRune(k tiles.Kind) rune {
	if k == tiles.Empty {
		return '.'
	}
	return 'a' + rune(k)
}

func tmxPropertyValue(typ, value string) any {
	switch typ {
	case "int":
		if v, err := strconv.Atoi(value); err == nil {
			return v
		}
	case "float":
		if v, err := strconv.ParseFloat(value, 64); err == nil {
			return v
		}
	case "bool":
		if v, err := strconv.ParseBool(value); err == nil {
			return v
		}
	}
	return value
}

func stem(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
