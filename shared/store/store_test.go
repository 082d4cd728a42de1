package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openTemp points the data directory at a fresh home so tests never touch
// the real one.
func openTemp(t *testing.T) (*Store, string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	s, err := Open("gladiator_test")
	require.NoError(t, err)
	return s, filepath.Join(home, ".local", "share", "gladiator_test")
}

type settings struct {
	Arena string `json:"arena"`
	CPU   bool   `json:"cpu"`
}

func TestLoadMissingItem(t *testing.T) {
	s, _ := openTemp(t)
	var v settings
	ok, err := s.Load("settings", &v)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, settings{}, v)
}

func TestSaveThenLoad(t *testing.T) {
	s, _ := openTemp(t)
	require.NoError(t, s.Save("settings", settings{Arena: "pit", CPU: true}))

	var v settings
	ok, err := s.Load("settings", &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, settings{Arena: "pit", CPU: true}, v)
}

func TestLoadCorruptItem(t *testing.T) {
	s, dir := openTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings"), []byte("{not json"), 0o600))

	var v settings
	ok, err := s.Load("settings", &v)
	assert.False(t, ok)
	assert.ErrorContains(t, err, "parse settings")
}

func TestRecordKeepsOnlyTotals(t *testing.T) {
	s, dir := openTemp(t)

	r, err := s.LoadRecord()
	require.NoError(t, err)
	r.Add("hard", true)
	r.Add("hard", false)
	r.Add("hard", true)
	r.Add("easy", false)
	require.NoError(t, s.Save(RecordKey, r))

	got, err := s.LoadRecord()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"hard": 2}, got.Wins)
	assert.Equal(t, map[string]int{"hard": 1, "easy": 1}, got.Losses)

	// Two counters per difficulty and nothing per match
	raw, err := os.ReadFile(filepath.Join(dir, RecordKey))
	require.NoError(t, err)
	var doc map[string]map[string]int
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc, 2)
	assert.Contains(t, doc, "wins")
	assert.Contains(t, doc, "losses")
}

func TestRecordAddOnZeroValue(t *testing.T) {
	var r Record
	r.Add("normal", true)
	assert.Equal(t, 1, r.Wins["normal"])
	assert.Empty(t, r.Losses)
}

func TestCorruptRecordStartsEmpty(t *testing.T) {
	s, dir := openTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, RecordKey), []byte("[]"), 0o600))

	r, err := s.LoadRecord()
	assert.Error(t, err)
	assert.Empty(t, r.Wins)
	assert.Empty(t, r.Losses)
}
