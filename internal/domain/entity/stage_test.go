package entity

import (
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

const frame = 1.0 / 60.0

// fakeStage is a minimal in-memory world for actor tests
type fakeStage struct {
	solid   map[[2]int]bool
	objects []MapObject
	actors  []Actor
	player  *Player
	input   Input
	blocked bool // dialogue open
	tweens  *tween.Manager
	width   float64
	tuning  Tuning
	rects   []Rect
}

// newFakeStage creates a stage with two rows of ground so actors stand at y=2
func newFakeStage(width int) *fakeStage {
	s := &fakeStage{
		solid:  make(map[[2]int]bool),
		tweens: tween.NewManager(),
		width:  float64(width),
		tuning: DefaultTuning(),
	}
	for x := 0; x < width; x++ {
		s.setSolid(x, 0)
		s.setSolid(x, 1)
	}
	return s
}

func (s *fakeStage) setSolid(x, y int) {
	s.solid[[2]int{x, y}] = true
}

func (s *fakeStage) GetTiles(startX, startY, endX, endY int) []Rect {
	s.rects = s.rects[:0]
	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			if s.solid[[2]int{x, y}] {
				s.rects = append(s.rects, Rect{X: float64(x), Y: float64(y), W: 1, H: 1})
			}
		}
	}
	return s.rects
}

func (s *fakeStage) Objects() []MapObject   { return s.objects }
func (s *fakeStage) Actors() []Actor        { return s.actors }
func (s *fakeStage) Player() *Player        { return s.player }
func (s *fakeStage) Spawn(a Actor)          { s.actors = append(s.actors, a) }
func (s *fakeStage) AllowPolling() bool     { return !s.blocked }
func (s *fakeStage) Input() Input           { return s.input }
func (s *fakeStage) Tweens() *tween.Manager { return s.tweens }
func (s *fakeStage) Width() float64         { return s.width }
func (s *fakeStage) Tuning() Tuning         { return s.tuning }

// addPlayer spawns the player at (x, y)
func (s *fakeStage) addPlayer(x, y float64) *Player {
	s.player = NewPlayer(s, x, y)
	s.Spawn(s.player)
	return s.player
}

// step runs frames of tweens then actors then map objects
func (s *fakeStage) step(frames int) {
	for i := 0; i < frames; i++ {
		s.tweens.Update(frame)
		actors := append([]Actor(nil), s.actors...)
		for _, a := range actors {
			a.Update(frame)
		}
		alive := s.actors[:0]
		for _, a := range s.actors {
			if !a.IsDead() || a == Actor(s.player) {
				alive = append(alive, a)
			}
		}
		s.actors = alive
		for _, o := range s.objects {
			o.Update(frame)
		}
	}
}

// seconds converts a duration to a frame count
func seconds(d float64) int {
	return int(d/frame + 0.5)
}
