package scenes

import (
	"image/color"
	"log"
	"os"
	"sync"

	"github.com/automoto/gladiator/assets"
	"github.com/automoto/gladiator/components"
	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/systems"
	"github.com/automoto/gladiator/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menu         *ui.MenuUI
	settings     *components.SettingsData
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menu.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menu == nil {
		return
	}
	ms.menu.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	entry := ms.ecs.World.Entry(ms.ecs.World.Create(components.Settings))
	components.Settings.SetValue(entry, systems.SettingsFromConfig(loadSavedSettings()))
	ms.settings = components.Settings.Get(entry)

	names, err := assets.ArenaNames()
	if err != nil {
		log.Printf("Warning: Could not list arenas: %v", err)
	}

	menu, err := ui.NewMenuUI(ms.settings, names, ms.start, func() { os.Exit(0) })
	if err != nil {
		panic("failed to build menu: " + err.Error())
	}
	ms.menu = menu

	// Enter / gamepad A starts straight away
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(func(e *ecs.ECS) {
		if systems.GetAction(systems.GetOrCreateInput(e), cfg.ActionMenuSelect).JustPressed {
			ms.start()
		}
	})
}

func (ms *MenuScene) start() {
	if err := ConfigureDuel(*ms.settings); err != nil {
		log.Printf("Warning: Could not start duel: %v", err)
		return
	}
	systems.SaveCurrentSettings(ms.settings)
	ms.sceneChanger.ChangeScene(NewDuelScene(ms.sceneChanger))
}

// ConfigureDuel copies menu choices into the global config and loads the
// chosen arena. The duel scene reads only the global config.
func ConfigureDuel(settings components.SettingsData) error {
	arena, err := assets.GetArena(settings.Arena)
	if err != nil {
		return err
	}
	duelArena := arena.ToDuel()
	if err := duelArena.Validate(cfg.Duel.Tunables); err != nil {
		return err
	}

	cfg.Duel.Arena = duelArena
	cfg.Duel.ArenaName = arena.Name
	cfg.C.Width = arena.Width
	cfg.C.Height = arena.Height

	cfg.Bot.Enabled = settings.Opponent == cfg.OpponentCPU
	cfg.Bot.Difficulty = settings.Difficulty
	return nil
}

func loadSavedSettings() *systems.SavedSettings {
	saved, err := systems.LoadSettings()
	if err != nil {
		return nil
	}
	return saved
}
