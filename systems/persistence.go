package systems

import (
	"log"

	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/botai"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/shared/store"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool   `json:"fullscreen"`
	ResolutionIndex int    `json:"resolutionIndex"`
	OpponentCPU     bool   `json:"opponentCpu"`
	Difficulty      string `json:"difficulty"`
	Arena           string `json:"arena"`
}

var dataStore *store.Store

// InitPersistence opens the game data directory for settings storage
func InitPersistence() error {
	st, err := store.Open("gladiator")
	if err != nil {
		return err
	}
	dataStore = st
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem("settings", &settings)
	if !ok {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// SaveCurrentSettings saves the current settings from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
		OpponentCPU:     s.Opponent == cfg.OpponentCPU,
		Difficulty:      s.Difficulty.String(),
		Arena:           s.Arena,
	}
	SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings to the window and the global config.
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}

	if saved.Arena != "" {
		cfg.Duel.ArenaName = saved.Arena
	}
	cfg.Bot.Enabled = saved.OpponentCPU
	if d, err := botai.ParseDifficulty(saved.Difficulty); err == nil {
		cfg.Bot.Difficulty = d
	} else {
		log.Printf("Warning: Ignoring saved difficulty: %v", err)
	}
}

// SettingsFromConfig captures the global config as a SettingsData value
func SettingsFromConfig(saved *SavedSettings) components.SettingsData {
	s := components.SettingsData{
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		Difficulty:      cfg.Bot.Difficulty,
		Arena:           cfg.Duel.ArenaName,
	}
	if cfg.Bot.Enabled {
		s.Opponent = cfg.OpponentCPU
	}
	if saved != nil {
		s.Fullscreen = saved.Fullscreen
		s.ResolutionIndex = saved.ResolutionIndex
	}
	return s
}

// LoadRecord returns the stored win/loss tally, empty if none
func LoadRecord() *store.Record {
	if dataStore == nil {
		return store.NewRecord()
	}
	record, err := dataStore.LoadRecord()
	if err != nil {
		log.Printf("Warning: Could not load record: %v", err)
	}
	return record
}

// recordBotResult updates the tally when a human beat or lost to the CPU
func recordBotResult(w donburi.World, winner duel.Side) {
	if dataStore == nil {
		return
	}
	var humanSide duel.Side
	humans, bots := 0, 0
	var difficulty botai.Difficulty
	components.Fighter.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(components.Bot) {
			bots++
			difficulty = components.Bot.Get(e).Brain.Difficulty
			return
		}
		humans++
		humanSide = components.Fighter.Get(e).Side
	})
	if humans != 1 || bots != 1 {
		return
	}

	record := LoadRecord()
	record.Add(difficulty.String(), winner == humanSide)
	saveItem(store.RecordKey, record)
}

func loadItem(key string, v any) (bool, error) {
	if dataStore == nil {
		return false, nil
	}
	ok, err := dataStore.Load(key, v)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
	}
	return ok, err
}

func saveItem(key string, v any) error {
	if dataStore == nil {
		return nil
	}
	err := dataStore.Save(key, v)
	if err != nil {
		log.Printf("Warning: %v", err)
	}
	return err
}
