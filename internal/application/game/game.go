// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/kingsdoor/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current     scene.Scene
	screenW     int
	screenH     int
	deltaMillis float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current:     initialScene,
		screenW:     screenW,
		screenH:     screenH,
		deltaMillis: 1000.0 / 60.0, // ebiten's default TPS
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one fixed tick and handles scene
// transitions. Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.deltaMillis)
	if err != nil {
		return err
	}

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
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// SetDeltaMillis sets the tick length handed to scenes.
// It must match the TPS given to ebiten.
func (g *Game) SetDeltaMillis(deltaMillis float64) {
	g.deltaMillis = deltaMillis
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
