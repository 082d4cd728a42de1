package assets

import (
	"embed"
	"fmt"
	"strings"

	"github.com/automoto/gladiator/shared/arenadata"
)

const arenaDir = "arenas"

var (
	//go:embed all:arenas
	assetFS embed.FS

	// Cache of parsed arenas
	arenaCache map[string]*arenadata.Arena
	arenaNames []string
)

// LoadArenas parses every embedded arena once. Later calls return the cache.
func LoadArenas() error {
	if arenaCache != nil {
		return nil
	}
	arenas, names, err := arenadata.LoadAllArenas(assetFS, arenaDir)
	if err != nil {
		return err
	}
	arenaCache = arenas
	arenaNames = names
	return nil
}

// ArenaNames returns the sorted stems of the embedded .tmx files
func ArenaNames() ([]string, error) {
	if err := LoadArenas(); err != nil {
		return nil, err
	}
	return arenaNames, nil
}

// GetArena returns an embedded arena by name
func GetArena(name string) (*arenadata.Arena, error) {
	if err := LoadArenas(); err != nil {
		return nil, err
	}
	a, ok := arenaCache[strings.TrimSuffix(name, ".tmx")]
	if !ok {
		return nil, fmt.Errorf("unknown arena %q (have %s)", name, strings.Join(arenaNames, ", "))
	}
	return a, nil
}
