package entity

import "math"

const (
	thoughtDuration = 2.0
	// contactSlack is how far below its feet a body still counts as standing on something
	contactSlack = 0.05
)

// Contact describes what a body ran into during Move
type Contact struct {
	Wall    bool
	Ground  bool
	Ceiling bool
	Bumped  MapObject // solid object hit from below, if any
}

// Body is the physical state shared by every actor.
// Position and velocity are in tiles and tiles per second, y up.
type Body struct {
	rect   Rect
	VX, VY float64

	Grounded  bool
	Dead      bool
	MoveDelay float64 // seconds; while positive the body ignores input and physics
	Mode      Mode
	StateTime float64

	thought      string
	thoughtTimer float64

	solids []solid
}

type solid struct {
	rect Rect
	obj  MapObject
}

// Bounds returns the live bounds. Tweens write through this pointer.
func (b *Body) Bounds() *Rect {
	return &b.rect
}

// IsDead reports whether the body has been killed
func (b *Body) IsDead() bool {
	return b.Dead
}

// Kill marks the body dead
func (b *Body) Kill() {
	b.Dead = true
}

// Thought returns the text floating above the actor, if any
func (b *Body) Thought() string {
	return b.thought
}

// AddThought shows a short text bubble above the actor
func (b *Body) AddThought(text string) {
	b.thought = text
	b.thoughtTimer = thoughtDuration
}

func (b *Body) SetNormalMode() { b.Mode = ModeNormal }
func (b *Body) SetWounded()    { b.Mode = ModeWounded }
func (b *Body) SetSadMode()    { b.Mode = ModeSad }
func (b *Body) SetRageMode()   { b.Mode = ModeRage }

// tick advances the timers every actor carries
func (b *Body) tick(dt float64) {
	b.StateTime += dt
	if b.thoughtTimer > 0 {
		b.thoughtTimer -= dt
		if b.thoughtTimer <= 0 {
			b.thought = ""
		}
	}
}

// holding counts MoveDelay down and reports whether the body is still held
// in place this frame
func (b *Body) holding(dt float64) bool {
	if b.MoveDelay <= 0 {
		return false
	}
	b.MoveDelay = math.Max(0, b.MoveDelay-dt)
	b.VX, b.VY = 0, 0
	return true
}

func (b *Body) applyGravity(t Tuning, dt float64) {
	b.VY -= t.Gravity * dt
	if b.VY < -t.MaxFallSpeed {
		b.VY = -t.MaxFallSpeed
	}
}

// Move integrates velocity one axis at a time and pushes the body out of
// solid tiles and solid map objects.
func (b *Body) Move(s Stage, dt float64) Contact {
	var c Contact
	b.Grounded = false

	if dx := b.VX * dt; dx != 0 {
		b.rect.X += dx
		for _, box := range b.collect(s) {
			if !b.rect.Overlaps(box.rect) {
				continue
			}
			if dx > 0 {
				b.rect.X = box.rect.X - b.rect.W
			} else {
				b.rect.X = box.rect.Right()
			}
			b.VX = 0
			c.Wall = true
		}
	}

	if dy := b.VY * dt; dy != 0 {
		b.rect.Y += dy
		for _, box := range b.collect(s) {
			if !b.rect.Overlaps(box.rect) {
				continue
			}
			if dy < 0 {
				b.rect.Y = box.rect.Top()
				b.Grounded = true
				c.Ground = true
			} else {
				b.rect.Y = box.rect.Y - b.rect.H
				c.Ceiling = true
				if c.Bumped == nil && box.obj != nil {
					c.Bumped = box.obj
				}
			}
			b.VY = 0
		}
	}

	return c
}

// collect gathers the solid boxes near the body
func (b *Body) collect(s Stage) []solid {
	b.solids = b.solids[:0]

	r := b.rect
	tiles := s.GetTiles(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Floor(r.Right())), int(math.Floor(r.Top())),
	)
	for _, t := range tiles {
		b.solids = append(b.solids, solid{rect: t})
	}

	for _, o := range s.Objects() {
		if o.Solid() {
			b.solids = append(b.solids, solid{rect: *o.Bounds(), obj: o})
		}
	}
	return b.solids
}

// touchObjects reports contact to every map object the body overlaps or stands on
func (b *Body) touchObjects(s Stage, self Actor) {
	probe := b.rect
	probe.Y -= contactSlack
	probe.H += contactSlack
	for _, o := range s.Objects() {
		if probe.Overlaps(*o.Bounds()) {
			o.Touch(self)
		}
	}
}

// standingOn reports whether the body's feet rest on top of r
func (b *Body) standingOn(r Rect) bool {
	return math.Abs(b.rect.Y-r.Top()) <= contactSlack &&
		b.rect.X < r.Right() && b.rect.Right() > r.X
}
