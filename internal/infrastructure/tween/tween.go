// Package tween schedules time-based interpolation of float64 fields.
//
// A Manager owns every running tween and is advanced once per frame by the
// game loop. Each Tween drives one or more fields from the values they hold
// when the tween first runs toward fixed targets, optionally yoyoing back and
// forth. OnComplete fires at the end of every cycle, OnFinish only once the
// last cycle is done.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing functions used by the game scripts
var (
	Linear    ease.TweenFunc = ease.Linear
	QuadInOut ease.TweenFunc = ease.InOutQuad
)

// Manager advances all registered tweens in registration order
type Manager struct {
	tweens   []*Tween
	pending  []*Tween
	updating bool
}

// NewManager creates an empty tween manager
func NewManager() *Manager {
	return &Manager{}
}

// To starts building a tween of the given fields over duration seconds.
// Call Target and Start to schedule it.
func (m *Manager) To(duration float64, fields ...*float64) *Tween {
	return &Tween{
		manager:  m,
		fields:   fields,
		targets:  make([]float64, len(fields)),
		duration: duration,
		easing:   Linear,
	}
}

// Call schedules fn to run once after delay seconds
func (m *Manager) Call(delay float64, fn func()) *Tween {
	return m.To(0).Delay(delay).OnComplete(fn).Start()
}

// Update advances every running tween by dt seconds.
// Tweens started from callbacks during Update begin on the next Update.
func (m *Manager) Update(dt float64) {
	m.updating = true
	for _, t := range m.tweens {
		t.update(dt)
	}
	m.updating = false

	alive := m.tweens[:0]
	for _, t := range m.tweens {
		if !t.finished {
			alive = append(alive, t)
		}
	}
	for i := len(alive); i < len(m.tweens); i++ {
		m.tweens[i] = nil
	}
	m.tweens = append(alive, m.pending...)
	m.pending = m.pending[:0]
}

// KillAll drops every tween without firing callbacks
func (m *Manager) KillAll() {
	for _, t := range m.tweens {
		t.finished = true
	}
	for _, t := range m.pending {
		t.finished = true
	}
	m.tweens = nil
	m.pending = nil
}

// Len returns the number of scheduled tweens
func (m *Manager) Len() int {
	return len(m.tweens) + len(m.pending)
}

func (m *Manager) add(t *Tween) {
	if m.updating {
		m.pending = append(m.pending, t)
		return
	}
	m.tweens = append(m.tweens, t)
}

// Tween interpolates a set of fields toward target values
type Tween struct {
	manager *Manager

	fields   []*float64
	targets  []float64
	duration float64
	delay    float64
	easing   ease.TweenFunc
	callback func()
	finish   func()

	repeats int
	pause   float64

	started  bool
	finished bool
	reversed bool
	waiting  float64
	elapsed  float64
	begin    []float64
	cycle    []*gween.Tween
}

// Target sets the end values, one per field
func (t *Tween) Target(values ...float64) *Tween {
	copy(t.targets, values)
	return t
}

// Ease sets the easing function (Linear by default)
func (t *Tween) Ease(fn ease.TweenFunc) *Tween {
	t.easing = fn
	return t
}

// RepeatYoyo plays the tween count more times, alternating direction,
// waiting pause seconds between cycles
func (t *Tween) RepeatYoyo(count int, pause float64) *Tween {
	t.repeats = count
	t.pause = pause
	return t
}

// Delay postpones the first cycle by d seconds
func (t *Tween) Delay(d float64) *Tween {
	t.delay = d
	return t
}

// OnComplete sets the callback fired at the end of each cycle
func (t *Tween) OnComplete(fn func()) *Tween {
	t.callback = fn
	return t
}

// OnFinish sets the callback fired once, after the last cycle
func (t *Tween) OnFinish(fn func()) *Tween {
	t.finish = fn
	return t
}

// Start registers the tween with its manager
func (t *Tween) Start() *Tween {
	t.manager.add(t)
	return t
}

// Done reports whether the tween has played all of its cycles
func (t *Tween) Done() bool {
	return t.finished
}

func (t *Tween) update(dt float64) {
	if t.finished {
		return
	}

	if t.delay > 0 {
		if dt < t.delay {
			t.delay -= dt
			return
		}
		dt -= t.delay
		t.delay = 0
	}

	if !t.started {
		t.started = true
		t.begin = make([]float64, len(t.fields))
		for i, f := range t.fields {
			t.begin[i] = *f
		}
		t.startCycle()
	}

	for {
		if t.waiting > 0 {
			if dt < t.waiting {
				t.waiting -= dt
				return
			}
			dt -= t.waiting
			t.waiting = 0
		}

		step := t.duration - t.elapsed
		if dt < step {
			step = dt
			t.elapsed += dt
		} else {
			t.elapsed = t.duration
		}
		dt -= step

		if t.elapsed < t.duration {
			for i, tw := range t.cycle {
				v, _ := tw.Update(float32(step))
				*t.fields[i] = float64(v)
			}
			return
		}

		// Snap exactly onto the cycle end so float32 drift never leaks out.
		for i, f := range t.fields {
			*f = t.cycleEnd(i)
		}
		if t.callback != nil {
			t.callback()
		}
		if t.repeats <= 0 {
			t.finished = true
			if t.finish != nil {
				t.finish()
			}
			return
		}
		t.repeats--
		t.reversed = !t.reversed
		t.waiting = t.pause
		t.startCycle()
		if dt <= 0 && t.waiting <= 0 && t.duration > 0 {
			return
		}
	}
}

func (t *Tween) startCycle() {
	t.elapsed = 0
	t.cycle = make([]*gween.Tween, len(t.fields))
	for i := range t.fields {
		from, to := t.begin[i], t.targets[i]
		if t.reversed {
			from, to = to, from
		}
		t.cycle[i] = gween.New(float32(from), float32(to), float32(t.duration), t.easing)
	}
}

func (t *Tween) cycleEnd(i int) float64 {
	if t.reversed {
		return t.begin[i]
	}
	return t.targets[i]
}
