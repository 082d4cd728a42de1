package arenadata

import (
	"fmt"
	"os"
	"testing"
	"testing/fstest"

	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tmx(objects string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="9">
 <objectgroup id="1" name="PlayerSpawn">%s
 </objectgroup>
</map>
`, objects))
}

func spawn(id int, side int, x, y float64) string {
	return fmt.Sprintf(`
  <object id="%d" x="%v" y="%v">
   <properties><property name="side" type="int" value="%d"/></properties>
   <point/>
  </object>`, id, x, y, side)
}

func TestLoadArena(t *testing.T) {
	fsys := fstest.MapFS{
		"arenas/small.tmx": {Data: tmx(spawn(1, 1, 500, 100) + spawn(2, 0, 100, 200))},
	}

	a, err := LoadArena(fsys, "arenas/small.tmx")
	require.NoError(t, err)

	assert.Equal(t, "small", a.Name)
	assert.Equal(t, 640, a.Width)
	assert.Equal(t, 320, a.Height)
	assert.Equal(t, SpawnPoint{X: 100, Y: 200, Side: duel.SideLeft}, a.Spawns[duel.SideLeft])
	assert.Equal(t, SpawnPoint{X: 500, Y: 100, Side: duel.SideRight}, a.Spawns[duel.SideRight])

	d := a.ToDuel()
	assert.Equal(t, 640.0, d.Width)
	assert.Equal(t, gamemath.V(100, 200), d.Spawns[duel.SideLeft])
	assert.NoError(t, d.Validate(duel.DefaultTunables()))
}

func TestLoadArenaSpawnErrors(t *testing.T) {
	tests := []struct {
		name    string
		objects string
		wantErr string
	}{
		{"missing right", spawn(1, 0, 100, 100), "no Right spawn"},
		{"duplicate", spawn(1, 0, 100, 100) + spawn(2, 0, 120, 100) + spawn(3, 1, 500, 100), "duplicate Left spawn"},
		{"bad side", spawn(1, 0, 100, 100) + spawn(2, 3, 500, 100), "side 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"a.tmx": {Data: tmx(tt.objects)}}
			_, err := LoadArena(fsys, "a.tmx")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadArenaMissingFile(t *testing.T) {
	_, err := LoadArena(fstest.MapFS{}, "arenas/none.tmx")
	assert.ErrorContains(t, err, "load TMX arenas/none.tmx")
}

func TestShippedArenas(t *testing.T) {
	arenas, names, err := LoadAllArenas(os.DirFS("../../assets"), "arenas")
	require.NoError(t, err)
	require.Contains(t, names, "colosseum")

	colosseum := arenas["colosseum"].ToDuel()
	assert.Equal(t, duel.DefaultArena(), colosseum)

	for _, name := range names {
		assert.NoError(t, arenas[name].ToDuel().Validate(duel.DefaultTunables()), name)
	}
}

func TestLoadAllArenasEmptyDir(t *testing.T) {
	_, _, err := LoadAllArenas(fstest.MapFS{"arenas/readme.txt": {}}, "arenas")
	assert.ErrorContains(t, err, "no .tmx files")
}
