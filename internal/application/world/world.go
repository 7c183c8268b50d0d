// Package world runs one scripted phase of the story: its map, actors, map
// objects, camera, dialogue box and the director that moves the scene along.
package world

import (
	"fmt"
	"log"

	"github.com/younwookim/ld33/internal/application/dialogue"
	"github.com/younwookim/ld33/internal/application/system"
	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/domain/phase"
	"github.com/younwookim/ld33/internal/infrastructure/tilemap"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// MapSource loads tiled maps by name
type MapSource interface {
	Load(name string) (*tilemap.Map, error)
}

// TextSource looks up dialogue text by key
type TextSource interface {
	Get(key string) string
}

// Deps are the collaborators a World needs
type Deps struct {
	Maps          MapSource
	Text          TextSource
	Tweens        *tween.Manager
	Tuning        entity.Tuning
	DialogueSpeed float64 // characters per second
}

// World is the container for one phase
type World struct {
	Phase   phase.Phase
	Segment int
	done    bool

	player *entity.Player
	Wife   *entity.NPC
	Kids   *entity.NPC

	actors  []entity.Actor
	objects []entity.MapObject
	Map     *tilemap.Map

	Camera          *Camera
	CameraLock      bool
	CameraLeftEdge  float64
	CameraRightEdge float64
	GameWidth       float64

	Dialogue   *dialogue.Dialogue
	Transition *entity.Color
	ClearColor entity.Color

	maps   MapSource
	text   TextSource
	tweens *tween.Manager
	tuning entity.Tuning
	input  entity.Input

	tileRects []entity.Rect
	err       error
}

// New builds the world for phase p. The camera is borrowed from the caller.
func New(cam *Camera, p phase.Phase, deps Deps) (*World, error) {
	if deps.Tweens == nil {
		deps.Tweens = tween.NewManager()
	}

	w := &World{
		Phase:      p,
		CameraLock: true,
		Camera:     cam,
		Dialogue:   dialogue.New(deps.DialogueSpeed),
		maps:       deps.Maps,
		text:       deps.Text,
		tweens:     deps.Tweens,
		tuning:     deps.Tuning,
	}

	if err := w.initPhase(); err != nil {
		return nil, err
	}

	w.GameWidth = float64(w.Map.Background.Width)
	w.CameraLeftEdge = float64(entity.ScreenTilesWide / 2)
	w.CameraRightEdge = w.GameWidth - w.CameraLeftEdge

	log.Printf("Entered phase %s (map %s, %d actors, %d objects)", p, w.Map.Name, len(w.actors), len(w.objects))
	return w, nil
}

// Update advances the world by one frame
func (w *World) Update(dt float64, in entity.Input) error {
	if w.err != nil {
		return w.err
	}
	if w.done {
		return nil
	}
	w.input = in

	w.Dialogue.Update(dt, in.Advance)

	// Actors spawned during the loop are first updated next frame.
	n := len(w.actors)
	for i := 0; i < n; i++ {
		a := w.actors[i]
		a.Update(dt)
		if a.IsDead() && a == entity.Actor(w.player) {
			w.player.Respawn()
		}
	}
	w.removeDead()

	for _, o := range w.objects {
		o.Update(dt)
	}

	w.step()

	w.Camera.Follow(w.player.Bounds().X)
	if w.CameraLock {
		w.Camera.Clamp(w.CameraLeftEdge, w.CameraRightEdge)
	}

	return w.err
}

func (w *World) removeDead() {
	alive := w.actors[:0]
	for _, a := range w.actors {
		if !a.IsDead() {
			alive = append(alive, a)
		}
	}
	for i := len(alive); i < len(w.actors); i++ {
		w.actors[i] = nil
	}
	w.actors = alive
}

// Done reports whether the phase has finished
func (w *World) Done() bool {
	return w.done
}

// Err returns the error that stopped the world, if any
func (w *World) Err() error {
	return w.err
}

// loadMap swaps in the named map and rebuilds its map objects
func (w *World) loadMap(name string) error {
	m, err := w.maps.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load map for %s: %w", w.Phase, err)
	}
	objects, err := system.LoadMapObjects(m, w)
	if err != nil {
		return fmt.Errorf("failed to load objects of map %s: %w", name, err)
	}
	w.Map = m
	w.objects = objects
	return nil
}

// GetTiles implements entity.Stage
func (w *World) GetTiles(startX, startY, endX, endY int) []entity.Rect {
	w.tileRects = w.tileRects[:0]
	fg := w.Map.Foreground
	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			if fg.Occupied(x, y) {
				w.tileRects = append(w.tileRects, entity.Rect{X: float64(x), Y: float64(y), W: 1, H: 1})
			}
		}
	}
	return w.tileRects
}

func (w *World) Objects() []entity.MapObject { return w.objects }
func (w *World) Actors() []entity.Actor      { return w.actors }
func (w *World) Player() *entity.Player      { return w.player }
func (w *World) Spawn(a entity.Actor)        { w.actors = append(w.actors, a) }
func (w *World) Input() entity.Input         { return w.input }
func (w *World) Tweens() *tween.Manager      { return w.tweens }
func (w *World) Width() float64              { return w.GameWidth }
func (w *World) Tuning() entity.Tuning       { return w.tuning }

// AllowPolling implements entity.Stage. Input is ignored while dialogue is open.
func (w *World) AllowPolling() bool {
	return !w.Dialogue.IsActive()
}
