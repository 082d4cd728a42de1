package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/gladiator/config"
	"github.com/automoto/gladiator/fonts"
	"github.com/automoto/gladiator/scenes"
	"github.com/automoto/gladiator/shared/botai"
	"github.com/automoto/gladiator/shared/tuning"
	"github.com/automoto/gladiator/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewDuelScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding combat tunables")
	arenaName := flag.String("arena", config.Duel.ArenaName, "arena to fight in (stem of a .tmx under assets/arenas)")
	cpu := flag.Bool("cpu", false, "the right-hand gladiator is played by the computer")
	difficulty := flag.String("difficulty", config.Bot.Difficulty.String(), "CPU difficulty: easy, normal or hard")
	seed := flag.Int64("seed", 0, "CPU random seed (0 = from the clock)")
	skipMenu := flag.Bool("skip-menu", false, "start the duel immediately")
	debug := flag.Bool("debug", false, "draw collision overlays and log parries and hits")
	dumpTuning := flag.Bool("dump-tuning", false, "print the effective tunables as YAML and exit")
	flag.Parse()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}
	if err := config.ValidateControlSchemes(); err != nil {
		log.Fatalf("Invalid controls: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	// Flags given explicitly win over saved settings
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "arena":
			config.Duel.ArenaName = *arenaName
		case "cpu":
			config.Bot.Enabled = *cpu
		case "difficulty":
			d, err := botai.ParseDifficulty(*difficulty)
			if err != nil {
				log.Fatalf("Invalid -difficulty: %v", err)
			}
			config.Bot.Difficulty = d
		}
	})
	config.Bot.Seed = *seed
	config.Debug.SkipMenu = *skipMenu
	config.Debug.Overlay = *debug
	config.Debug.LogCollisions = *debug

	if *tuningPath != "" {
		config.Duel.TuningPath = *tuningPath
		t, err := tuning.Load(*tuningPath, config.Duel.Tunables)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		config.Duel.Tunables = t
	}
	if *dumpTuning {
		if err := tuning.Encode(os.Stdout, config.Duel.Tunables); err != nil {
			log.Fatalf("Failed to write tuning: %v", err)
		}
		return
	}

	settings := systems.SettingsFromConfig(saved)
	if err := scenes.ConfigureDuel(settings); err != nil {
		log.Fatalf("Failed to prepare duel: %v", err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	if saved == nil {
		ebiten.SetWindowSize(config.C.Width, config.C.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
