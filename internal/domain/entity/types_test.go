package entity

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 2, Y: 2, W: 1, H: 1}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same rect", Rect{X: 2, Y: 2, W: 1, H: 1}, true},
		{"partial overlap", Rect{X: 2.5, Y: 2.5, W: 1, H: 1}, true},
		{"contained", Rect{X: 2.25, Y: 2.25, W: 0.5, H: 0.5}, true},
		{"touching right edge", Rect{X: 3, Y: 2, W: 1, H: 1}, false},
		{"touching top edge", Rect{X: 2, Y: 3, W: 1, H: 1}, false},
		{"far away", Rect{X: 10, Y: 10, W: 1, H: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base), "overlap is symmetric")
		})
	}
}

func TestRect_Edges(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}

	x, y := r.Center()
	assert.Equal(t, 2.5, x)
	assert.Equal(t, 4.0, y)
	assert.Equal(t, 6.0, r.Top())
	assert.Equal(t, 4.0, r.Right())
}

func TestColor_RGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want color.NRGBA
	}{
		{"opaque black", Color{0, 0, 0, 1}, color.NRGBA{0, 0, 0, 255}},
		{"crimson", Color{220.0 / 255, 20.0 / 255, 60.0 / 255, 1}, color.NRGBA{220, 20, 60, 255}},
		{"half alpha", Color{1, 1, 1, 0.5}, color.NRGBA{255, 255, 255, 128}},
		{"clamped", Color{-1, 2, 0, 1.5}, color.NRGBA{0, 255, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.RGBA())
		})
	}
}

func TestTuning_Speed(t *testing.T) {
	tuning := DefaultTuning()

	assert.Equal(t, tuning.WalkSpeed, tuning.Speed(ModeNormal))
	assert.Equal(t, tuning.WoundedSpeed, tuning.Speed(ModeWounded))
	assert.Equal(t, tuning.SadSpeed, tuning.Speed(ModeSad))
	assert.Equal(t, tuning.RageSpeed, tuning.Speed(ModeRage))
	assert.Greater(t, tuning.Speed(ModeRage), tuning.Speed(ModeNormal))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "Normal", ModeNormal.String())
	assert.Equal(t, "Wounded", ModeWounded.String())
	assert.Equal(t, "Sad", ModeSad.String())
	assert.Equal(t, "Rage", ModeRage.String())
	assert.Equal(t, "Unknown", Mode(42).String())
}

func TestParseItemType(t *testing.T) {
	tests := []struct {
		in      string
		want    ItemType
		wantErr bool
	}{
		{"coin", ItemCoin, false},
		{"mushroom", ItemMushroom, false},
		{"Mushroom", ItemMushroom, false},
		{"none", ItemNone, false},
		{"", ItemNone, false},
		{"star", ItemNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseItemType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTubeContents(t *testing.T) {
	tests := []struct {
		in      string
		want    TubeContents
		wantErr bool
	}{
		{"EMPTY", TubeEmpty, false},
		{"COIN", TubeCoin, false},
		{"MUSHROOM", TubeMushroom, false},
		{"mushroom", TubeEmpty, true},
		{"", TubeEmpty, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTubeContents(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}
