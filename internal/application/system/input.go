package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/ld33/internal/domain/entity"
)

// Keyboard reports key state for one frame
type Keyboard interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

type ebitenKeyboard struct{}

func (ebitenKeyboard) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeyboard) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// Bindings maps game actions to keys. Any bound key triggers the action.
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Down    []ebiten.Key
	Jump    []ebiten.Key
	Advance []ebiten.Key
}

// DefaultBindings returns WASD and arrow key bindings
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right:   []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
		Down:    []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Jump:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeySpace},
		Advance: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyZ},
	}
}

// InputSystem reads player input from the keyboard
type InputSystem struct {
	keys     Keyboard
	bindings Bindings
}

// NewInputSystem creates an input system reading ebiten's keyboard
func NewInputSystem(bindings Bindings) *InputSystem {
	return NewInputSystemFrom(ebitenKeyboard{}, bindings)
}

// NewInputSystemFrom creates an input system over any keyboard
func NewInputSystemFrom(keys Keyboard, bindings Bindings) *InputSystem {
	return &InputSystem{keys: keys, bindings: bindings}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() entity.Input {
	return entity.Input{
		Left:        s.any(s.keys.Pressed, s.bindings.Left),
		Right:       s.any(s.keys.Pressed, s.bindings.Right),
		Down:        s.any(s.keys.Pressed, s.bindings.Down),
		Jump:        s.any(s.keys.Pressed, s.bindings.Jump),
		JumpPressed: s.any(s.keys.JustPressed, s.bindings.Jump),
		Advance:     s.any(s.keys.JustPressed, s.bindings.Advance),
	}
}

func (s *InputSystem) any(check func(ebiten.Key) bool, keys []ebiten.Key) bool {
	for _, k := range keys {
		if check(k) {
			return true
		}
	}
	return false
}
