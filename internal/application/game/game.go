// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ld33/internal/application/scene"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	tweens  *tween.Manager
	screenW int
	screenH int
	dt      float64
	frames  int
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately. tweens is advanced
// once per frame before the scene updates and may be nil.
func New(initialScene scene.Scene, tweens *tween.Manager, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		tweens:  tweens,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update ticks the tweens, then updates the current scene and handles scene
// transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.tweens != nil {
		g.tweens.Update(g.dt)
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.frames++

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the scene being played
func (g *Game) Current() scene.Scene {
	return g.current
}

// Frames returns the number of frames updated so far
func (g *Game) Frames() int {
	return g.frames
}
