package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/shared/duel"
	"github.com/automoto/gladiator/systems"
	"github.com/automoto/gladiator/systems/factory"
	"github.com/automoto/gladiator/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DuelScene runs one duel (and its restarts) between two fighters
type DuelScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       *ui.ResultUI
	resultShown  bool
	once         sync.Once
}

// NewDuelScene creates a duel from the current global config
func NewDuelScene(sc SceneChanger) *DuelScene {
	return &DuelScene{sceneChanger: sc}
}

func (ds *DuelScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()

	if systems.GetOrCreatePause(ds.ecs).ExitRequested {
		ds.backToMenu()
		return
	}

	if !systems.IsDuelFinished(ds.ecs) {
		ds.resultShown = false
		return
	}
	if !ds.resultShown {
		ds.showResult()
		return
	}
	ds.result.Update()

	// Keyboard shortcuts for the result buttons
	input := systems.GetOrCreateInput(ds.ecs)
	switch {
	case systems.GetAction(input, cfg.ActionMenuSelect).JustPressed:
		ds.restart()
	case systems.GetAction(input, cfg.ActionMenuBack).JustPressed:
		ds.backToMenu()
	}
}

func (ds *DuelScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)

	if ds.resultShown {
		ds.result.UI.Draw(screen)
	}
}

func (ds *DuelScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause checks
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighterInput))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateBots)) // Must run after UpdateFighterInput
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDuel))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ds.ecs = ecs

	if _, err := factory.CreateDuel(ds.ecs); err != nil {
		panic(err)
	}
	factory.CreateEffects(ds.ecs)
	factory.CreateFighter(ds.ecs, duel.SideLeft, false)
	factory.CreateFighter(ds.ecs, duel.SideRight, cfg.Bot.Enabled)

	systems.RegisterDuelEvents(ds.ecs.World)

	result, err := ui.NewResultUI(ds.restart, ds.backToMenu)
	if err != nil {
		panic("failed to build result screen: " + err.Error())
	}
	ds.result = result
}

func (ds *DuelScene) showResult() {
	d, ok := systems.GetDuel(ds.ecs)
	if !ok {
		return
	}
	winner, ok := d.Match.Winner()
	if !ok {
		return
	}
	systems.HideBanner(ds.ecs)
	ds.result.SetResult(
		cfg.Fighters[winner].Label,
		cfg.Fighters[duel.SideLeft].Label, d.Wins[duel.SideLeft],
		cfg.Fighters[duel.SideRight].Label, d.Wins[duel.SideRight],
	)
	ds.resultShown = true
}

func (ds *DuelScene) restart() {
	systems.RestartDuel(ds.ecs)
	ds.resultShown = false
}

func (ds *DuelScene) backToMenu() {
	ds.sceneChanger.ChangeScene(NewMenuScene(ds.sceneChanger))
}
