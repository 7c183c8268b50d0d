package replay

import "github.com/younwookim/ld33/internal/domain/entity"

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// GetInput returns the input for the current frame and advances.
// Once the recording runs out it returns idle input.
func (r *Replayer) GetInput() entity.Input {
	if r.frame >= len(r.data.Frames) {
		return entity.Input{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input()
}
