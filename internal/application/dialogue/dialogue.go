// Package dialogue implements the modal message box shown during cinematics.
//
// A Dialogue holds a queue of messages. The front message is revealed one
// character at a time; an advance press first completes the reveal and then
// dismisses the message. While any message is queued the dialogue is active
// and the world stops polling player input.
package dialogue

import (
	"unicode/utf8"

	"github.com/younwookim/ld33/internal/domain/entity"
)

// DefaultSpeed is the reveal speed in characters per second
const DefaultSpeed = 40.0

// Dialogue is a typewriter message queue
type Dialogue struct {
	box      entity.Rect // screen tiles, bottom-left origin
	queue    []string
	revealed float64 // characters of the front message shown so far
	speed    float64
}

// New creates an inactive dialogue revealing charsPerSecond characters per second
func New(charsPerSecond float64) *Dialogue {
	if charsPerSecond <= 0 {
		charsPerSecond = DefaultSpeed
	}
	return &Dialogue{speed: charsPerSecond}
}

// Show replaces the queue with messages inside the box (x, y, w, h)
func (d *Dialogue) Show(x, y, w, h float64, messages []string) {
	d.box = entity.Rect{X: x, Y: y, W: w, H: h}
	d.queue = append([]string(nil), messages...)
	d.revealed = 0
}

// Update advances the reveal. advance is the dismiss press for this frame.
func (d *Dialogue) Update(dt float64, advance bool) {
	if !d.IsActive() {
		return
	}

	length := float64(utf8.RuneCountInString(d.queue[0]))
	if advance {
		if d.revealed < length {
			d.revealed = length
			return
		}
		d.queue = d.queue[1:]
		d.revealed = 0
		return
	}

	d.revealed = min(length, d.revealed+dt*d.speed)
}

// IsActive reports whether a message is on screen
func (d *Dialogue) IsActive() bool {
	return len(d.queue) > 0
}

// Current returns the full front message
func (d *Dialogue) Current() string {
	if !d.IsActive() {
		return ""
	}
	return d.queue[0]
}

// Visible returns the revealed part of the front message
func (d *Dialogue) Visible() string {
	current := d.Current()
	n := int(d.revealed)
	if n >= utf8.RuneCountInString(current) {
		return current
	}
	i := 0
	for pos := range current {
		if i == n {
			return current[:pos]
		}
		i++
	}
	return current
}

// Revealed reports whether the front message is fully shown
func (d *Dialogue) Revealed() bool {
	return d.IsActive() && int(d.revealed) >= utf8.RuneCountInString(d.queue[0])
}

// Remaining returns the number of queued messages, including the current one
func (d *Dialogue) Remaining() int {
	return len(d.queue)
}

// Box returns the dialogue area in screen tiles
func (d *Dialogue) Box() entity.Rect {
	return d.box
}
