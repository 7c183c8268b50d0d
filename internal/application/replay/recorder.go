package replay

import "github.com/younwookim/ld33/internal/domain/entity"

// InputSource supplies the controls for each frame
type InputSource interface {
	GetInput() entity.Input
}

// Recorder passes input through from its source and keeps a copy of every frame
type Recorder struct {
	source InputSource
	data   ReplayData
}

// NewRecorder starts recording the input read from source
func NewRecorder(source InputSource, phase string) *Recorder {
	return &Recorder{
		source: source,
		data: ReplayData{
			Phase:  phase,
			Frames: make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
	}
}

// GetInput reads the next frame from the source and records it
func (r *Recorder) GetInput() entity.Input {
	in := r.source.GetInput()
	r.data.Frames = append(r.data.Frames, newFrame(len(r.data.Frames), in))
	return in
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}
