package entity

import "math"

// smashStun is the minimum time the player stays flat after a stomp
const smashStun = 1.0

// Player is the goomba the user controls
type Player struct {
	Body
	stage Stage

	CanJump  bool
	CanRight bool
	Raged    bool

	// Smashed is set by a stomp and cleared when the player can move again.
	// SmashedAnimation picks what is drawn meanwhile.
	Smashed          bool
	SmashedAnimation Animation

	FacingRight bool
	Coins       int

	spawnX, spawnY float64
}

// NewPlayer creates the player at a spawn tile
func NewPlayer(s Stage, x, y float64) *Player {
	p := &Player{
		stage:    s,
		CanJump:  true,
		CanRight: true,
		spawnX:   x,
		spawnY:   y,
	}
	p.rect = Rect{X: x, Y: y, W: 1, H: 1}
	return p
}

// Kind implements Actor
func (p *Player) Kind() Kind {
	return KindPlayer
}

// SetRageMode switches to rage and marks the player as raged
func (p *Player) SetRageMode() {
	p.Mode = ModeRage
	p.Raged = true
}

// Respawn puts the player back on its spawn tile
func (p *Player) Respawn() {
	p.rect.X = p.spawnX
	p.rect.Y = p.spawnY
	p.VX, p.VY = 0, 0
	p.Grounded = false
	p.Dead = false
}

// Smash flattens the player after a stomp
func (p *Player) Smash() {
	p.Smashed = true
	p.SmashedAnimation = AnimSmashed
	p.StateTime = 0
	p.MoveDelay = math.Max(p.MoveDelay, smashStun)
}

// Update applies input and physics
func (p *Player) Update(dt float64) {
	p.tick(dt)
	if p.holding(dt) {
		return
	}
	p.Smashed = false

	var in Input
	if p.stage.AllowPolling() {
		in = p.stage.Input()
	}

	t := p.stage.Tuning()
	speed := t.Speed(p.Mode)

	p.VX = 0
	switch {
	case in.Left && !in.Right:
		p.VX = -speed
		p.FacingRight = false
	case in.Right && !in.Left && p.CanRight:
		p.VX = speed
		p.FacingRight = true
	}

	if in.JumpPressed && p.CanJump && p.Grounded {
		p.VY = t.JumpForce
	}

	p.applyGravity(t, dt)
	c := p.Move(p.stage, dt)
	if c.Bumped != nil {
		c.Bumped.Bump(p)
	}
	p.touchObjects(p.stage, p)

	if p.rect.Top() < 0 {
		p.Kill()
	}
}
