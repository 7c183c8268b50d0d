package entity

import "github.com/younwookim/ld33/internal/infrastructure/tween"

// Stage is the part of the world that actors and map objects interact with
type Stage interface {
	// GetTiles returns the solid foreground tiles inside the inclusive tile
	// range. The returned slice is only valid until the next call.
	GetTiles(startX, startY, endX, endY int) []Rect
	Objects() []MapObject
	Actors() []Actor
	Player() *Player
	Spawn(a Actor)
	AllowPolling() bool
	Input() Input
	Tweens() *tween.Manager
	Width() float64
	Tuning() Tuning
}

// Actor is any updatable entity other than a map object
type Actor interface {
	Update(dt float64)
	Bounds() *Rect
	IsDead() bool
	Kill()
	Kind() Kind
	Thought() string

	SetNormalMode()
	SetWounded()
	SetSadMode()
	SetRageMode()
}

// MapObject is a tile-aligned interactable parsed from the map
type MapObject interface {
	Update(dt float64)
	Bounds() *Rect
	Solid() bool
	// Bump is called when an actor moving up hits the object from below
	Bump(by Actor)
	// Touch is called every frame an actor overlaps or stands on the object
	Touch(by Actor)
}
