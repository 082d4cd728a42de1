package arenadata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS for arenas on disk.
//
// Spawns come from the PlayerSpawn object group: exactly one object per
// side, each with an int property "side" (0 left, 1 right).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	var seen [2]bool
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			side := duel.Side(o.Properties.GetInt("side"))
			if side != duel.SideLeft && side != duel.SideRight {
				return nil, fmt.Errorf("%s: spawn object %d has side %d, want 0 or 1", tmxPath, o.ID, side)
			}
			if seen[side] {
				return nil, fmt.Errorf("%s: duplicate %s spawn (object %d)", tmxPath, side, o.ID)
			}
			seen[side] = true
			arena.Spawns[side] = SpawnPoint{X: o.X, Y: o.Y, Side: side}
		}
	}

	for _, s := range duel.Sides {
		if !seen[s] {
			return nil, fmt.Errorf("%s: no %s spawn in object group %q", tmxPath, s, SpawnGroup)
		}
	}
	return arena, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
