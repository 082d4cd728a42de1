// Package store keeps small JSON documents in the per-user game data
// directory: menu settings and the tally against the CPU.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/quasilyte/gdata"
)

// RecordKey is the item the CPU tally is saved under.
const RecordKey = "record"

// Store wraps a gdata manager with JSON encoding.
type Store struct {
	m *gdata.Manager
}

// Open prepares the data directory for appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open game data %q: %w", appName, err)
	}
	return &Store{m: m}, nil
}

// Load decodes the item saved under key into v. It reports false, with a
// nil error, when nothing has been saved yet.
func (s *Store) Load(key string, v any) (bool, error) {
	data, err := s.m.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

// Save replaces the item under key with v.
func (s *Store) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.m.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Record counts the human's wins and losses against each CPU difficulty.
// Only the totals are kept, never individual matches.
type Record struct {
	Wins   map[string]int `json:"wins"`
	Losses map[string]int `json:"losses"`
}

// NewRecord returns an empty tally.
func NewRecord() *Record {
	return &Record{Wins: map[string]int{}, Losses: map[string]int{}}
}

// Add counts one finished match against the given difficulty.
func (r *Record) Add(difficulty string, humanWon bool) {
	if r.Wins == nil {
		r.Wins = map[string]int{}
	}
	if r.Losses == nil {
		r.Losses = map[string]int{}
	}
	if humanWon {
		r.Wins[difficulty]++
	} else {
		r.Losses[difficulty]++
	}
}

// LoadRecord returns the saved tally, or an empty one when none exists or it
// cannot be read. The error is returned for logging.
func (s *Store) LoadRecord() (*Record, error) {
	r := NewRecord()
	if _, err := s.Load(RecordKey, r); err != nil {
		return NewRecord(), err
	}
	if r.Wins == nil {
		r.Wins = map[string]int{}
	}
	if r.Losses == nil {
		r.Losses = map[string]int{}
	}
	return r, nil
}
