package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/ld33/internal/domain/entity"
)

func TestFrameInput_Input(t *testing.T) {
	fi := FrameInput{F: 0, L: true, R: true, D: true, J: true, JP: true, A: true}

	in := fi.Input()

	assert.Equal(t, entity.Input{
		Left:        true,
		Right:       true,
		Down:        true,
		Jump:        true,
		JumpPressed: true,
		Advance:     true,
	}, in)
	assert.Equal(t, fi, newFrame(0, in))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Phase: "DayOne",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, J: true, JP: true},
			{F: 2, A: true},
		},
	}

	replayer := NewReplayer(data)

	assert.Equal(t, entity.Input{Left: true}, replayer.GetInput())
	assert.Equal(t, entity.Input{Jump: true, JumpPressed: true}, replayer.GetInput())
	assert.Equal(t, entity.Input{Advance: true}, replayer.GetInput())

	// idle once the recording runs out
	assert.Equal(t, entity.Input{}, replayer.GetInput())
	assert.Equal(t, entity.Input{}, replayer.GetInput())
}

func TestScript(t *testing.T) {
	tests := []struct {
		name   string
		script *Script
		want   []entity.Input
	}{
		{
			name:   "empty",
			script: NewScript(),
			want:   nil,
		},
		{
			name:   "idle then left",
			script: NewScript().Idle(1).Left(2),
			want:   []entity.Input{{}, {Left: true}, {Left: true}},
		},
		{
			name:   "advance is released between taps",
			script: NewScript().Advance(2),
			want:   []entity.Input{{Advance: true}, {}, {Advance: true}, {}},
		},
		{
			name:   "jump",
			script: NewScript().Right(1).Jump(),
			want:   []entity.Input{{Right: true}, {Jump: true, JumpPressed: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.script.Replayer()

			var got []entity.Input
			for range tt.script.Len() {
				got = append(got, r.GetInput())
			}

			assert.Equal(t, tt.want, got)
			assert.Equal(t, entity.Input{}, r.GetInput(), "idle past the end")
		})
	}
}

func TestScript_FrameNumbers(t *testing.T) {
	data := NewScript().Idle(2).Advance(1).Data("HeadingHome")

	assert.Equal(t, "HeadingHome", data.Phase)
	for i, f := range data.Frames {
		assert.Equal(t, i, f.F)
	}
}

func TestScript_DataIsACopy(t *testing.T) {
	s := NewScript().Left(1)
	data := s.Data("")

	s.Idle(5)

	assert.Len(t, data.Frames, 1)
}

type fakeSource struct {
	inputs []entity.Input
}

func (f *fakeSource) GetInput() entity.Input {
	if len(f.inputs) == 0 {
		return entity.Input{}
	}
	in := f.inputs[0]
	f.inputs = f.inputs[1:]
	return in
}

func TestRecorder_PassesInputThrough(t *testing.T) {
	src := &fakeSource{inputs: []entity.Input{{Left: true}, {Advance: true}}}
	rec := NewRecorder(src, "MeetTheWife")

	assert.Equal(t, entity.Input{Left: true}, rec.GetInput())
	assert.Equal(t, entity.Input{Advance: true}, rec.GetInput())
	assert.Equal(t, entity.Input{}, rec.GetInput())

	data := rec.Data()
	assert.Equal(t, 3, rec.FrameCount())
	assert.Equal(t, "MeetTheWife", data.Phase)
	assert.Equal(t, []FrameInput{{F: 0, L: true}, {F: 1, A: true}, {F: 2}}, data.Frames)
}
