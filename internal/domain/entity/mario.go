package entity

import "math"

// MarioAI runs right across the level, headbutts stocked blocks on the way,
// stomps the player once and leaves the map on the right.
type MarioAI struct {
	Body
	stage Stage

	Stomped bool
	blocked bool
}

// NewMarioAI creates Mario at a tile position
func NewMarioAI(s Stage, x, y float64) *MarioAI {
	m := &MarioAI{stage: s}
	m.rect = Rect{X: x, Y: y, W: 1, H: 1}
	return m
}

// Kind implements Actor
func (m *MarioAI) Kind() Kind {
	return KindMario
}

// Update runs the AI and physics
func (m *MarioAI) Update(dt float64) {
	m.tick(dt)
	if m.holding(dt) {
		return
	}

	t := m.stage.Tuning()
	p := m.stage.Player()

	m.VX = t.MarioSpeed
	if m.Grounded && m.wantsJump(p) {
		m.VY = t.MarioJump
	}
	// Hang over the player's head so the landing is a stomp.
	if !m.Grounded && m.lockedOn(p) {
		m.VX = 0
	}

	m.applyGravity(t, dt)
	c := m.Move(m.stage, dt)
	m.blocked = c.Wall
	if c.Bumped != nil {
		c.Bumped.Bump(m)
	}

	if !m.Stomped && p != nil && m.VY <= 0 {
		pb := p.Bounds()
		if m.rect.Overlaps(*pb) && m.rect.Y > pb.Y+pb.H/2 {
			p.Smash()
			m.rect.Y = pb.Top()
			m.VY = t.StompBounce
			m.Stomped = true
		}
	}

	if m.rect.X > m.stage.Width()+1 || m.rect.Top() < 0 {
		m.Kill()
	}
}

func (m *MarioAI) wantsJump(p *Player) bool {
	if m.blocked {
		return true
	}

	for _, o := range m.stage.Objects() {
		q, ok := o.(*QuestionBlock)
		if !ok || !q.Stocked() {
			continue
		}
		b := q.Bounds()
		ahead := b.X - m.rect.X
		above := b.Y - m.rect.Top()
		if ahead > 0.5 && ahead < 1.5 && above >= 0 && above < 3 {
			return true
		}
	}

	if p != nil && !m.Stomped {
		gap := p.Bounds().X - m.rect.Right()
		if gap >= 0 && gap < 1 {
			return true
		}
	}
	return false
}

func (m *MarioAI) lockedOn(p *Player) bool {
	if p == nil || m.Stomped {
		return false
	}
	pb := p.Bounds()
	mx, _ := m.rect.Center()
	px, _ := pb.Center()
	return math.Abs(mx-px) < 0.1 && m.rect.Y > pb.Top()
}
