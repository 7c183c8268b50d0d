package entity

import "fmt"

const (
	bumpHeight   = 0.3
	bumpDuration = 0.1
)

// QuestionBlock is a solid block that dispenses one item when bumped from below
type QuestionBlock struct {
	rect  Rect
	stage Stage

	Drop    ItemType
	used    bool
	bumping bool

	// Offset is the visual lift of the block while it bounces
	Offset float64
}

// NewQuestionBlock creates a question block
func NewQuestionBlock(s Stage, r Rect, drop ItemType) *QuestionBlock {
	return &QuestionBlock{rect: r, stage: s, Drop: drop}
}

func (q *QuestionBlock) Bounds() *Rect  { return &q.rect }
func (q *QuestionBlock) Solid() bool    { return true }
func (q *QuestionBlock) Update(float64) {}
func (q *QuestionBlock) Touch(Actor)    {}
func (q *QuestionBlock) Used() bool     { return q.used }
func (q *QuestionBlock) Stocked() bool  { return !q.used && q.Drop != ItemNone }
func (q *QuestionBlock) Empty()         { q.used = true }
func (q *QuestionBlock) Bumping() bool  { return q.bumping }

// Bump bounces the block and releases its item the first time
func (q *QuestionBlock) Bump(by Actor) {
	if !q.bumping {
		q.bumping = true
		q.stage.Tweens().To(bumpDuration, &q.Offset).Target(bumpHeight).RepeatYoyo(1, 0).
			OnComplete(func() {
				if q.Offset == 0 {
					q.bumping = false
				}
			}).Start()
	}

	if !q.Stocked() {
		return
	}
	q.used = true

	y := q.rect.Y
	if q.Drop == ItemCoin {
		y = q.rect.Top()
		if p, ok := by.(*Player); ok {
			p.Coins++
		}
	}
	if item := spawnItem(q.stage, q.Drop, q.rect.X, y); item != nil {
		q.stage.Spawn(item)
	}
}

// Spike kills the player on contact
type Spike struct {
	rect Rect
}

// NewSpike creates a spike
func NewSpike(r Rect) *Spike {
	return &Spike{rect: r}
}

func (s *Spike) Bounds() *Rect  { return &s.rect }
func (s *Spike) Solid() bool    { return false }
func (s *Spike) Update(float64) {}
func (s *Spike) Bump(Actor)     {}

// Touch kills the player
func (s *Spike) Touch(by Actor) {
	if p, ok := by.(*Player); ok {
		p.Kill()
	}
}

// TubeContents is what a tube holds
type TubeContents int

const (
	TubeEmpty TubeContents = iota
	TubeCoin
	TubeMushroom
)

// ParseTubeContents parses the `contains` property of a tube
func ParseTubeContents(name string) (TubeContents, error) {
	switch name {
	case "EMPTY":
		return TubeEmpty, nil
	case "COIN":
		return TubeCoin, nil
	case "MUSHROOM":
		return TubeMushroom, nil
	default:
		return TubeEmpty, fmt.Errorf("unknown tube contents %q", name)
	}
}

// String returns the contents name as written in maps
func (c TubeContents) String() string {
	switch c {
	case TubeEmpty:
		return "EMPTY"
	case TubeCoin:
		return "COIN"
	case TubeMushroom:
		return "MUSHROOM"
	default:
		return "UNKNOWN"
	}
}

// Tube is a solid pipe. It releases its contents once when the player stands on it.
type Tube struct {
	rect  Rect
	stage Stage

	Contents  TubeContents
	dispensed bool
}

// NewTube creates a tube
func NewTube(s Stage, r Rect, contents TubeContents) *Tube {
	return &Tube{rect: r, stage: s, Contents: contents}
}

func (t *Tube) Bounds() *Rect   { return &t.rect }
func (t *Tube) Solid() bool     { return true }
func (t *Tube) Update(float64)  {}
func (t *Tube) Bump(Actor)      {}
func (t *Tube) Dispensed() bool { return t.dispensed }

// Touch dispenses the contents when the player is on top
func (t *Tube) Touch(by Actor) {
	p, ok := by.(*Player)
	if !ok || t.dispensed || t.Contents == TubeEmpty || !p.standingOn(t.rect) {
		return
	}
	t.dispensed = true

	var item Actor
	switch t.Contents {
	case TubeCoin:
		p.Coins++
		item = NewCoin(t.stage, t.rect.X, t.rect.Top())
	case TubeMushroom:
		item = NewMushroom(t.stage, t.rect.X, t.rect.Top()-1)
	}
	t.stage.Spawn(item)
}
