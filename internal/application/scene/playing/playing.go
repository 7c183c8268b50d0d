// Package playing provides the scene that plays one phase of the story.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/ld33/internal/application/scene"
	"github.com/younwookim/ld33/internal/application/world"
	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/domain/phase"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// InputSource supplies the controls for each frame
type InputSource interface {
	GetInput() entity.Input
}

// Playing is the scene for one phase. It hands over to the next phase's
// scene once its world is done.
type Playing struct {
	phase  phase.Phase
	world  *world.World
	camera *world.Camera
	deps   world.Deps
	input  InputSource
	err    error
}

// New creates the scene for phase p and builds its world.
// The camera and the tween manager in deps are shared by every phase.
func New(p phase.Phase, cam *world.Camera, deps world.Deps, input InputSource) (*Playing, error) {
	if deps.Tweens == nil {
		deps.Tweens = tween.NewManager()
	}

	s := &Playing{
		phase:  p,
		camera: cam,
		deps:   deps,
		input:  input,
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Playing) load() error {
	w, err := world.New(s.camera, s.phase, s.deps)
	if err != nil {
		return fmt.Errorf("failed to start phase %s: %w", s.phase, err)
	}
	s.world = w
	return nil
}

// next returns the scene for the following phase. Its world is built in
// OnEnter, after this scene has cleared the shared tweens.
func (s *Playing) next() (*Playing, bool) {
	p, ok := s.phase.Next()
	if !ok {
		return nil, false
	}
	return &Playing{
		phase:  p,
		camera: s.camera,
		deps:   s.deps,
		input:  s.input,
	}, true
}

// Update implements scene.Scene
func (s *Playing) Update(dt float64) (scene.Scene, error) {
	if s.world == nil && s.err == nil {
		s.OnEnter()
	}
	if s.err != nil {
		return nil, s.err
	}

	if err := s.world.Update(dt, s.input.GetInput()); err != nil {
		return nil, fmt.Errorf("phase %s failed: %w", s.phase, err)
	}
	if !s.world.Done() {
		return nil, nil
	}

	next, ok := s.next()
	if !ok {
		// the story ends here
		return nil, nil
	}
	log.Printf("Finished phase %s, next is %s", s.phase, next.phase)
	return next, nil
}

// Draw implements scene.Scene
func (s *Playing) Draw(screen *ebiten.Image) {
	if s.world == nil {
		screen.Fill(color.Black)
		return
	}
	s.world.Render(screen)
	s.world.RenderUI(screen)
}

// OnEnter builds the world if the scene was created by a phase change
func (s *Playing) OnEnter() {
	if s.world != nil {
		return
	}
	s.err = s.load()
}

// OnExit drops every tween of the phase and puts the camera back
func (s *Playing) OnExit() {
	s.deps.Tweens.KillAll()
	s.camera.Reset()
}

// Phase returns the phase this scene plays
func (s *Playing) Phase() phase.Phase {
	return s.phase
}

// World returns the running world, nil until the scene is entered
func (s *Playing) World() *world.World {
	return s.world
}
