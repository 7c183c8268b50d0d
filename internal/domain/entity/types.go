package entity

import (
	"image/color"
	"math"
)

// Shared timing constants (seconds)
const (
	PipeDelay = 1.0 // entry/exit animations and default movement locks
	ItemDelay = 0.5 // time an item takes to rise out of its block
)

// World geometry. World units are tiles; y grows upward.
const (
	MapUnitScale    = 1.0 / 16.0 // tiles per source pixel
	ScreenTilesWide = 20
	ScreenTilesHigh = 15
)

// Rect is an axis-aligned box in tile units, (X, Y) is the bottom-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o share any area. Touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Center returns the center point of the rect
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Top returns the y coordinate of the upper edge
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Color is a float RGBA color, each channel in [0, 1]
type Color struct {
	R, G, B, A float64
}

// RGBA converts to a non-premultiplied 8-bit color
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Mode is the emotional state of a goomba
type Mode int

const (
	ModeNormal Mode = iota
	ModeWounded
	ModeSad
	ModeRage
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeWounded:
		return "Wounded"
	case ModeSad:
		return "Sad"
	case ModeRage:
		return "Rage"
	default:
		return "Unknown"
	}
}

// Kind identifies what an actor is, for rendering
type Kind int

const (
	KindPlayer Kind = iota
	KindWife
	KindKids
	KindMario
	KindCultist
	KindMushroom
	KindCoin
)

// Animation selects the sprite sequence used while the player is smashed
type Animation int

const (
	AnimSmashed Animation = iota
	AnimGrow
)

// Input represents the controls sampled for one frame
type Input struct {
	Left        bool
	Right       bool
	Down        bool
	Jump        bool // held
	JumpPressed bool // pressed this frame
	Advance     bool // pressed this frame, dismisses dialogue
}

// Tuning holds the physics constants shared by all actors (tiles, seconds)
type Tuning struct {
	Gravity      float64
	MaxFallSpeed float64
	JumpForce    float64
	WalkSpeed    float64
	WoundedSpeed float64
	SadSpeed     float64
	RageSpeed    float64
	ItemSpeed    float64
	MarioSpeed   float64
	MarioJump    float64
	StompBounce  float64
}

// DefaultTuning returns the tuning the game ships with
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      40,
		MaxFallSpeed: 20,
		JumpForce:    14,
		WalkSpeed:    4,
		WoundedSpeed: 2,
		SadSpeed:     2.5,
		RageSpeed:    6,
		ItemSpeed:    4,
		MarioSpeed:   5,
		MarioJump:    14,
		StompBounce:  8,
	}
}

// Speed returns the walking speed for a mode
func (t Tuning) Speed(m Mode) float64 {
	switch m {
	case ModeWounded:
		return t.WoundedSpeed
	case ModeSad:
		return t.SadSpeed
	case ModeRage:
		return t.RageSpeed
	default:
		return t.WalkSpeed
	}
}
