// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"go-tower-siege/pkg/geom"
	"io/fs"
	"log"
	"os"
)

var (
	ErrInvalidDefinition = errors.New("invalid definition")
	ErrUnknownPath       = errors.New("unknown path")
)

//go:embed data/*.json
var embedded embed.FS

// PathDefinition is the on-disk form of a route: a list of [x, y] pairs.
type PathDefinition struct {
	ID     string       `json:"id"`
	Points [][2]float64 `json:"points"`
}

// Library holds every static definition a game session needs.
// It is read-only after loading.
type Library struct {
	Towers  map[TowerKind]TowerDefinition
	Enemies map[EnemyKind]EnemyDefinition
	Paths   map[string]*geom.Path
	PathIDs []string // в порядке файла, для стабильной отрисовки
	Levels  []LevelDefinition
}

// DefaultLibrary loads the definitions embedded into the binary.
func DefaultLibrary() (*Library, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded definitions: %w", err)
	}
	return LoadLibrary(sub)
}

// Load берёт определения из dir, а при пустом dir - встроенные.
func Load(dir string) (*Library, error) {
	if dir == "" {
		return DefaultLibrary()
	}
	return LoadLibraryDir(dir)
}

// LoadLibraryDir loads towers.json, enemies.json, paths.json and levels.json from dir.
func LoadLibraryDir(dir string) (*Library, error) {
	return LoadLibrary(os.DirFS(dir))
}

// LoadLibrary reads all definition files from fsys and validates cross references.
func LoadLibrary(fsys fs.FS) (*Library, error) {
	lib := &Library{
		Towers:  make(map[TowerKind]TowerDefinition),
		Enemies: make(map[EnemyKind]EnemyDefinition),
		Paths:   make(map[string]*geom.Path),
	}

	var towerDefs []TowerDefinition
	if err := readJSON(fsys, "towers.json", &towerDefs); err != nil {
		return nil, err
	}
	for _, def := range towerDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		lib.Towers[def.ID] = def
	}

	var enemyDefs []EnemyDefinition
	if err := readJSON(fsys, "enemies.json", &enemyDefs); err != nil {
		return nil, err
	}
	for _, def := range enemyDefs {
		if err := def.Validate(); err != nil {
			return nil, err
		}
		lib.Enemies[def.ID] = def
	}

	var pathDefs []PathDefinition
	if err := readJSON(fsys, "paths.json", &pathDefs); err != nil {
		return nil, err
	}
	for _, def := range pathDefs {
		points := make([]geom.Vec, len(def.Points))
		for i, p := range def.Points {
			points[i] = geom.Vec{X: p[0], Y: p[1]}
		}
		path, err := geom.NewPath(points)
		if err != nil {
			return nil, fmt.Errorf("path %s: %w", def.ID, err)
		}
		lib.Paths[def.ID] = path
		lib.PathIDs = append(lib.PathIDs, def.ID)
	}

	if err := readJSON(fsys, "levels.json", &lib.Levels); err != nil {
		return nil, err
	}
	if err := lib.validateLevels(); err != nil {
		return nil, err
	}

	log.Printf("Loaded %d tower, %d enemy, %d path and %d level definitions",
		len(lib.Towers), len(lib.Enemies), len(lib.Paths), len(lib.Levels))
	return lib, nil
}

// Tower returns the definition for kind.
func (lib *Library) Tower(kind TowerKind) (TowerDefinition, bool) {
	def, ok := lib.Towers[kind]
	return def, ok
}

func (lib *Library) validateLevels() error {
	if len(lib.Levels) == 0 {
		return fmt.Errorf("no levels defined: %w", ErrInvalidDefinition)
	}
	for _, level := range lib.Levels {
		if len(level.Waves) == 0 {
			return fmt.Errorf("level %s has no waves: %w", level.ID, ErrInvalidDefinition)
		}
		for _, id := range level.Paths {
			if _, ok := lib.Paths[id]; !ok {
				return fmt.Errorf("level %s: %q: %w", level.ID, id, ErrUnknownPath)
			}
		}
		for wi, wave := range level.Waves {
			total := 0
			for _, group := range wave.Groups {
				if _, ok := lib.Enemies[group.Enemy]; !ok {
					return fmt.Errorf("level %s wave %d: unknown enemy %q: %w", level.ID, wi+1, group.Enemy, ErrInvalidDefinition)
				}
				if group.Path != "" {
					if _, ok := lib.Paths[group.Path]; !ok {
						return fmt.Errorf("level %s wave %d: %q: %w", level.ID, wi+1, group.Path, ErrUnknownPath)
					}
				} else if len(level.Paths) == 0 {
					return fmt.Errorf("level %s wave %d: random path without pool: %w", level.ID, wi+1, ErrUnknownPath)
				}
				if group.Count < 0 {
					return fmt.Errorf("level %s wave %d: negative count: %w", level.ID, wi+1, ErrInvalidDefinition)
				}
				total += group.Count
			}
			if total == 0 {
				return fmt.Errorf("level %s wave %d spawns nothing: %w", level.ID, wi+1, ErrInvalidDefinition)
			}
		}
	}
	return nil
}

func readJSON(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}
