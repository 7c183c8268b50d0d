package entity

// Cultist names, in the order they stand around the cult room
const (
	Ganon       = "Ganon"
	KingHippo   = "KingHippo"
	MotherBrain = "MotherBrain"
	Dracula     = "Dracula"
	Luigi       = "Luigi"
	DrWily      = "DrWily"
)

// NPC is a scripted co-star. It only falls and stands where tweens put it.
type NPC struct {
	Body
	stage Stage
	kind  Kind
	Name  string
}

// NewWife creates the player's wife
func NewWife(s Stage, x, y float64) *NPC {
	return newNPC(s, KindWife, "Wife", Rect{X: x, Y: y, W: 1, H: 1})
}

// NewKids creates the goomba kids
func NewKids(s Stage, x, y float64) *NPC {
	return newNPC(s, KindKids, "Kids", Rect{X: x, Y: y, W: 1, H: 0.75})
}

// NewCultist creates a named cult member
func NewCultist(s Stage, name string, x, y float64) *NPC {
	return newNPC(s, KindCultist, name, Rect{X: x, Y: y, W: 1, H: 2})
}

func newNPC(s Stage, kind Kind, name string, r Rect) *NPC {
	n := &NPC{stage: s, kind: kind, Name: name}
	n.rect = r
	return n
}

// Kind implements Actor
func (n *NPC) Kind() Kind {
	return n.kind
}

// Update applies gravity once the NPC is no longer held
func (n *NPC) Update(dt float64) {
	n.tick(dt)
	if n.holding(dt) {
		return
	}
	n.applyGravity(n.stage.Tuning(), dt)
	n.Move(n.stage, dt)
}
