package replay

import "github.com/younwookim/ld33/internal/domain/entity"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  // Frame number
	L  bool // Left
	R  bool // Right
	D  bool // Down
	J  bool // Jump
	JP bool // JumpPressed
	A  bool // Advance
}

// ReplayData contains all input needed to replay one phase
type ReplayData struct {
	Phase  string
	Frames []FrameInput
}

func newFrame(f int, in entity.Input) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Left,
		R:  in.Right,
		D:  in.Down,
		J:  in.Jump,
		JP: in.JumpPressed,
		A:  in.Advance,
	}
}

// Input converts the frame back to game input
func (fi FrameInput) Input() entity.Input {
	return entity.Input{
		Left:        fi.L,
		Right:       fi.R,
		Down:        fi.D,
		Jump:        fi.J,
		JumpPressed: fi.JP,
		Advance:     fi.A,
	}
}
