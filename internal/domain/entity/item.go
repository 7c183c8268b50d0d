package entity

import (
	"fmt"
	"strings"
)

// ItemType is what a question block drops
type ItemType int

const (
	ItemNone ItemType = iota
	ItemCoin
	ItemMushroom
)

// ParseItemType parses the `drops` property of a question block
func ParseItemType(name string) (ItemType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "":
		return ItemNone, nil
	case "coin":
		return ItemCoin, nil
	case "mushroom":
		return ItemMushroom, nil
	default:
		return ItemNone, fmt.Errorf("unknown item type %q", name)
	}
}

// String returns the item type name
func (t ItemType) String() string {
	switch t {
	case ItemNone:
		return "none"
	case ItemCoin:
		return "coin"
	case ItemMushroom:
		return "mushroom"
	default:
		return "unknown"
	}
}

const (
	coinRise     = 1.5
	coinDuration = 0.4
	mushroomRise = 1.1
)

// Mushroom rises out of its block, then walks and bounces off walls.
// It enrages the player on contact.
type Mushroom struct {
	Body
	stage Stage
	dir   float64
}

// NewMushroom creates a mushroom emerging upward from (x, y)
func NewMushroom(s Stage, x, y float64) *Mushroom {
	m := &Mushroom{stage: s, dir: 1}
	m.rect = Rect{X: x, Y: y, W: 1, H: 1}
	m.MoveDelay = ItemDelay + 0.1
	s.Tweens().To(ItemDelay, &m.rect.Y).Target(y + mushroomRise).Start()
	return m
}

// Kind implements Actor
func (m *Mushroom) Kind() Kind {
	return KindMushroom
}

// Update walks the mushroom and checks for the player
func (m *Mushroom) Update(dt float64) {
	m.tick(dt)
	if m.holding(dt) {
		return
	}

	t := m.stage.Tuning()
	m.VX = m.dir * t.ItemSpeed
	m.applyGravity(t, dt)
	if c := m.Move(m.stage, dt); c.Wall {
		m.dir = -m.dir
	}

	if p := m.stage.Player(); p != nil && m.rect.Overlaps(*p.Bounds()) {
		p.SetRageMode()
		m.Kill()
		return
	}
	if m.rect.Top() < 0 {
		m.Kill()
	}
}

// Coin pops up out of a block and vanishes
type Coin struct {
	Body
}

// NewCoin creates a coin popping up from (x, y)
func NewCoin(s Stage, x, y float64) *Coin {
	c := &Coin{}
	c.rect = Rect{X: x, Y: y, W: 1, H: 1}
	s.Tweens().To(coinDuration, &c.rect.Y).Target(y + coinRise).OnComplete(c.Kill).Start()
	return c
}

// Kind implements Actor
func (c *Coin) Kind() Kind {
	return KindCoin
}

// Update only advances timers; the tween moves the coin
func (c *Coin) Update(dt float64) {
	c.tick(dt)
}

// spawnItem creates the actor for an item type at (x, y), or nil for ItemNone
func spawnItem(s Stage, t ItemType, x, y float64) Actor {
	switch t {
	case ItemCoin:
		return NewCoin(s, x, y)
	case ItemMushroom:
		return NewMushroom(s, x, y)
	default:
		return nil
	}
}
