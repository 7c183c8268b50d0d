package replay

import "github.com/younwookim/ld33/internal/domain/entity"

// Script builds replay data by hand, one stretch of frames at a time
type Script struct {
	frames []FrameInput
}

// NewScript returns an empty script
func NewScript() *Script {
	return &Script{}
}

// Hold repeats in for the given number of frames
func (s *Script) Hold(in entity.Input, frames int) *Script {
	for i := 0; i < frames; i++ {
		s.frames = append(s.frames, newFrame(len(s.frames), in))
	}
	return s
}

func (s *Script) Idle(frames int) *Script  { return s.Hold(entity.Input{}, frames) }
func (s *Script) Left(frames int) *Script  { return s.Hold(entity.Input{Left: true}, frames) }
func (s *Script) Right(frames int) *Script { return s.Hold(entity.Input{Right: true}, frames) }

// Advance taps the advance key the given number of times, releasing it for a
// frame after each press.
func (s *Script) Advance(times int) *Script {
	for i := 0; i < times; i++ {
		s.Hold(entity.Input{Advance: true}, 1)
		s.Idle(1)
	}
	return s
}

// Jump taps jump once
func (s *Script) Jump() *Script {
	return s.Hold(entity.Input{Jump: true, JumpPressed: true}, 1)
}

// Len returns the number of scripted frames
func (s *Script) Len() int {
	return len(s.frames)
}

// Data returns the script as replay data for phase
func (s *Script) Data(phase string) ReplayData {
	frames := make([]FrameInput, len(s.frames))
	copy(frames, s.frames)
	return ReplayData{
		Phase:  phase,
		Frames: frames,
	}
}

// Replayer returns a replayer over the script
func (s *Script) Replayer() *Replayer {
	return NewReplayer(s.Data(""))
}
