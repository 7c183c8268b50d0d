package main

import (
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ld33/internal/application/game"
	"github.com/younwookim/ld33/internal/application/scene/playing"
	"github.com/younwookim/ld33/internal/application/system"
	"github.com/younwookim/ld33/internal/application/world"
	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/domain/phase"
	"github.com/younwookim/ld33/internal/infrastructure/config"
	"github.com/younwookim/ld33/internal/infrastructure/tilemap"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// tuningFrom maps the physics and movement sections of game.json onto the
// actor tuning
func tuningFrom(cfg *config.GameConfig) entity.Tuning {
	return entity.Tuning{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		JumpForce:    cfg.Physics.JumpForce,
		WalkSpeed:    cfg.Movement.Walk,
		WoundedSpeed: cfg.Movement.Wounded,
		SadSpeed:     cfg.Movement.Sad,
		RageSpeed:    cfg.Movement.Rage,
		ItemSpeed:    cfg.Movement.Item,
		MarioSpeed:   cfg.Movement.Mario,
		MarioJump:    cfg.Movement.MarioJump,
		StompBounce:  cfg.Movement.StompBounce,
	}
}

// newDeps wires the loaded assets into what every phase's world needs
func newDeps(assets fs.FS) (*config.Config, world.Deps, error) {
	configFS, err := fs.Sub(assets, "assets/configs")
	if err != nil {
		return nil, world.Deps{}, err
	}
	cfg, err := config.NewFSLoader(configFS, "configs").LoadAll()
	if err != nil {
		return nil, world.Deps{}, err
	}

	mapsFS, err := fs.Sub(assets, "assets/maps")
	if err != nil {
		return nil, world.Deps{}, err
	}

	return cfg, world.Deps{
		Maps:          tilemap.NewLoader(mapsFS),
		Text:          cfg.Text,
		Tweens:        tween.NewManager(),
		Tuning:        tuningFrom(cfg.Game),
		DialogueSpeed: cfg.Game.Dialogue.CharsPerSecond,
	}, nil
}

func main() {
	cfg, deps, err := newDeps(assetsFS)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	input := system.NewInputSystem(system.DefaultBindings())
	first, err := playing.New(phase.DayOne, world.NewCamera(), deps, input)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	display := cfg.Game.Display
	g := game.New(first, deps.Tweens, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
