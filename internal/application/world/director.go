package world

import (
	"fmt"
	"strings"

	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/domain/phase"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

// Clear colors
var (
	colorSky      = entity.Color{R: 92.0 / 255, G: 148.0 / 255, B: 252.0 / 255, A: 1}
	colorNight    = entity.Color{R: 16.0 / 255, G: 16.0 / 255, B: 48.0 / 255, A: 1}
	colorBlack    = entity.Color{A: 1}
	colorFactory  = entity.Color{R: 0.25, G: 0.25, B: 0.25, A: 1}
	colorCultRoom = entity.Color{R: 220.0 / 255, G: 20.0 / 255, B: 60.0 / 255, A: 1}
)

// Dialogue box in screen tiles
const (
	boxX = 1
	boxY = 10
	boxW = 18
	boxH = 4
)

// line is one dialogue message, built by joining the text of its keys
type line []string

type vec struct {
	x, y float64
}

type placement struct {
	name string
	x, y float64
}

// segment is one step of a phase: when guard holds, action runs once
type segment struct {
	guard  func(w *World) bool
	action func(w *World)
}

// script describes how a phase starts and how it progresses
type script struct {
	clear   entity.Color
	mapName string

	// gated phases forbid jumping and walking right
	spawn vec
	gated bool
	mode  entity.Mode
	// enter is the opening slide of the player over PipeDelay
	enter vec

	// emptyBlocks drains the question blocks so the plumber ignores them
	emptyBlocks bool
	// crowd is spawned before the player
	crowd   []placement
	cast    func(w *World)
	opening []line

	segments []segment
}

var cultists = []placement{
	{entity.Ganon, 0.5, 2},
	{entity.KingHippo, 2.5, 2},
	{entity.MotherBrain, 6, 2},
	{entity.Dracula, 13, 2},
	{entity.Luigi, 16, 2},
	{entity.DrWily, 18, 2},
}

var scripts = map[phase.Phase]script{
	phase.DayOne: {
		clear:       colorSky,
		mapName:     "level1",
		spawn:       vec{33.5, 3},
		gated:       true,
		mode:        entity.ModeNormal,
		enter:       vec{0, 1},
		emptyBlocks: true,
		opening:     []line{{"foremanLate"}},
		segments:    append(plumberShift(), headHome()...),
	},
	phase.HeadingHome: {
		clear:   colorNight,
		mapName: "enterhome",
		spawn:   vec{17, 2},
		gated:   true,
		mode:    entity.ModeWounded,
		enter:   vec{-1, 0},
		opening: []line{{"playerName", "playerLate"}},
		segments: []segment{
			{
				// enter, stage right
				guard:  playerLeftOf(16),
				action: func(w *World) { w.player.Bounds().X = 16 },
			},
			{
				// into the house
				guard: playerLeftOf(10),
				action: func(w *World) {
					w.player.Bounds().X = 10
					w.exit()
					w.slidePlayerX(8)
				},
			},
		},
	},
	phase.MeetTheWife: {
		clear:   colorBlack,
		mapName: "inhome-bedroom",
		spawn:   vec{20, 2},
		gated:   true,
		mode:    entity.ModeWounded,
		enter:   vec{-1, 0},
		cast:    meetTheFamily,
		opening: []line{
			{"wifeName", "wifeBitching"},
			{"playerName", "playerDontGo"},
		},
		segments: []segment{
			{
				guard: dialogueClosed,
				action: func(w *World) {
					w.player.MoveDelay = 2
					w.tweens.To(2, &w.Kids.Bounds().X).Target(w.Wife.Bounds().X).Start()
				},
			},
			{
				// she storms out and takes the kids
				guard: playerLeftOf(19),
				action: func(w *World) {
					w.player.AddThought(":(")
					w.player.Bounds().X = 19
					for _, npc := range []*entity.NPC{w.Wife, w.Kids} {
						w.tweens.To(4, &npc.Bounds().X).Target(-1).OnComplete(npc.Kill).Start()
					}
				},
			},
			{
				guard: playerLeftOf(12),
				action: func(w *World) {
					w.show(line{"playerName", "noTimeForThis"})
					w.player.Bounds().X = 12
				},
			},
			{
				guard:  playerLeftOf(9),
				action: (*World).getIntoBed,
			},
			{
				guard: moveDelayOver,
				action: func(w *World) {
					w.player.MoveDelay = 2
					w.sleep()
				},
			},
			{
				guard:  playerLeftOf(1),
				action: (*World).leaveThroughDoor,
			},
		},
	},
	phase.LeavingHome: {
		clear:   colorSky,
		mapName: "exithome",
		spawn:   vec{11, 2},
		gated:   true,
		mode:    entity.ModeSad,
		enter:   vec{-1, 0},
		opening: []line{{"playerName", "tooOld"}},
		segments: []segment{
			{
				guard:  playerLeftOf(10),
				action: func(w *World) { w.player.Bounds().X = 10 },
			},
			{
				// into the pipe
				guard: playerLeftOf(3.5),
				action: func(w *World) {
					w.player.Bounds().X = 3
					w.exit()
					w.slidePlayerX(w.player.Bounds().X - 1)
				},
			},
		},
	},
	phase.BackToWork: {
		clear:       colorSky,
		mapName:     "level1",
		spawn:       vec{33.5, 3},
		gated:       true,
		mode:        entity.ModeSad,
		enter:       vec{0, 1},
		emptyBlocks: true,
		opening:     []line{{"playerName", "impressBoss"}},
		segments:    append(plumberShift(), headHome()...),
	},
	phase.EmptyHouse: {
		clear:   colorBlack,
		mapName: "inhome-bedroom",
		spawn:   vec{20, 2},
		gated:   true,
		mode:    entity.ModeWounded,
		enter:   vec{-1, 0},
		opening: []line{{"playerName", "notComingBack"}},
		segments: []segment{
			{
				guard:  playerLeftOf(9),
				action: (*World).getIntoBed,
			},
			{
				guard: moveDelayOver,
				action: func(w *World) {
					w.player.MoveDelay = 2
					w.tweens.Call(0.5, func() {
						if err := w.loadMap("inhome-bedroom-sad"); err != nil {
							w.err = err
						}
					})
					w.sleep()
				},
			},
			{
				guard:  playerLeftOf(1),
				action: (*World).leaveThroughDoor,
			},
		},
	},
	phase.GetMushroom: {
		clear:   colorSky,
		mapName: "level1",
		spawn:   vec{33.5, 3},
		gated:   true,
		mode:    entity.ModeSad,
		enter:   vec{0, 1},
		opening: []line{{"foremanLate"}},
		segments: append(plumberShift(),
			segment{
				// the mushroom kicks in
				guard:  func(w *World) bool { return w.player.Raged },
				action: (*World).grow,
			},
			segment{
				guard: moveDelayOver,
				action: func(w *World) {
					w.CameraLock = true
					w.show(line{"gotMushroom"})
				},
			},
			segment{
				// off to the factory
				guard: playerAtMost(0.5),
				action: func(w *World) {
					w.player.MoveDelay = entity.PipeDelay
					r := w.player.Bounds()
					w.tweens.To(entity.PipeDelay, &r.X).Target(-2).OnComplete(w.finish).Start()
				},
			},
		),
	},
	phase.IntoTheFactory: {
		clear:   colorFactory,
		mapName: "level-factory",
		spawn:   vec{97, 2},
		mode:    entity.ModeRage,
		enter:   vec{-1, 0},
		opening: []line{{"playerName", "intoFactory"}},
		segments: []segment{
			{
				// down the pipe
				guard: func(w *World) bool {
					r := w.player.Bounds()
					return r.X < 2.5 && r.Y < 4.5
				},
				action: func(w *World) {
					r := w.player.Bounds()
					r.X, r.Y = 2.5, 4
					w.exit()
					w.tweens.To(entity.PipeDelay, &r.Y).Target(r.Y - 1).Start()
				},
			},
		},
	},
	phase.CultRoom: {
		clear:   colorCultRoom,
		mapName: "cadreroom",
		spawn:   vec{17.5, 13},
		mode:    entity.ModeNormal,
		enter:   vec{0, -1},
		crowd:   cultists,
		opening: []line{{"cultChant"}, {"cultEnter"}},
	},
}

// plumberShift is the wait for the plumber on the job: get in position, then
// release Mario once the player has read the warning.
func plumberShift() []segment {
	return []segment{
		{
			guard: playerLeftOf(27),
			action: func(w *World) {
				w.player.Bounds().X = 27
				w.player.MoveDelay = 6
				w.show(line{"hereComesMario"})
			},
		},
		{
			guard:  dialogueClosed,
			action: func(w *World) { w.Spawn(entity.NewMarioAI(w, 10, 2)) },
		},
	}
}

// headHome sends the flattened player back to the home pipe
func headHome() []segment {
	return []segment{
		{
			guard: moveDelayOver,
			action: func(w *World) {
				w.show(line{"headHome"})
				w.player.SetWounded()
			},
		},
		{
			guard: playerAtMost(5.5),
			action: func(w *World) {
				w.player.MoveDelay = entity.PipeDelay
				w.FadeOut()
				w.slidePlayerX(3.5)
			},
		},
	}
}

func playerLeftOf(x float64) func(w *World) bool {
	return func(w *World) bool { return w.player.Bounds().X < x }
}

func playerAtMost(x float64) func(w *World) bool {
	return func(w *World) bool { return w.player.Bounds().X <= x }
}

func dialogueClosed(w *World) bool { return !w.Dialogue.IsActive() }
func moveDelayOver(w *World) bool  { return w.player.MoveDelay <= 0 }

// initPhase sets up the stage for the current phase
func (w *World) initPhase() error {
	sc, ok := scripts[w.Phase]
	if !ok {
		return fmt.Errorf("unknown phase %d", int(w.Phase))
	}

	w.Segment = 0
	w.fadeIn()
	w.ClearColor = sc.clear

	if err := w.loadMap(sc.mapName); err != nil {
		return err
	}
	if sc.emptyBlocks {
		for _, o := range w.objects {
			if q, ok := o.(*entity.QuestionBlock); ok {
				q.Empty()
			}
		}
	}

	for _, c := range sc.crowd {
		w.Spawn(entity.NewCultist(w, c.name, c.x, c.y))
	}

	p := entity.NewPlayer(w, sc.spawn.x, sc.spawn.y)
	if sc.gated {
		p.CanJump = false
		p.CanRight = false
	}
	setMode(p, sc.mode)
	p.MoveDelay = entity.PipeDelay
	w.player = p
	w.Spawn(p)

	r := p.Bounds()
	if sc.enter.x != 0 {
		w.tweens.To(entity.PipeDelay, &r.X).Target(r.X + sc.enter.x).Start()
	} else {
		w.tweens.To(entity.PipeDelay, &r.Y).Target(r.Y + sc.enter.y).Start()
	}

	if sc.cast != nil {
		sc.cast(w)
	}
	w.show(sc.opening...)
	return nil
}

// step runs the director for one frame. At most one segment advances.
func (w *World) step() {
	sc, ok := scripts[w.Phase]
	if !ok || w.Segment >= len(sc.segments) {
		return
	}
	seg := sc.segments[w.Segment]
	if !seg.guard(w) {
		return
	}
	w.Segment++
	seg.action(w)
}

func setMode(a entity.Actor, m entity.Mode) {
	switch m {
	case entity.ModeWounded:
		a.SetWounded()
	case entity.ModeSad:
		a.SetSadMode()
	case entity.ModeRage:
		a.SetRageMode()
	default:
		a.SetNormalMode()
	}
}

// show opens the dialogue box with the given lines
func (w *World) show(lines ...line) {
	if len(lines) == 0 {
		return
	}
	messages := make([]string, len(lines))
	for i, l := range lines {
		var b strings.Builder
		for _, key := range l {
			b.WriteString(w.text.Get(key))
		}
		messages[i] = b.String()
	}
	w.Dialogue.Show(boxX, boxY, boxW, boxH, messages)
}

// fadeIn uncovers the scene from black
func (w *World) fadeIn() {
	w.Transition = &entity.Color{A: 1}
	w.tweens.To(entity.PipeDelay, &w.Transition.A).Target(0).Start()
}

// FadeOut covers the scene in black and finishes the phase
func (w *World) FadeOut() {
	w.Transition = &entity.Color{}
	w.tweens.To(entity.PipeDelay, &w.Transition.A).Target(1).OnComplete(w.finish).Start()
}

func (w *World) finish() {
	w.done = true
}

// exit holds the player for the walk-off animation and fades out
func (w *World) exit() {
	w.player.MoveDelay = entity.PipeDelay
	w.FadeOut()
}

func (w *World) slidePlayerX(x float64) {
	w.tweens.To(entity.PipeDelay, &w.player.Bounds().X).Target(x).Start()
}

func meetTheFamily(w *World) {
	w.Wife = entity.NewWife(w, 9, 2)
	w.Wife.MoveDelay = 1
	w.Spawn(w.Wife)
	r := w.Wife.Bounds()
	w.tweens.To(0.2, &r.Y).Target(r.Y+0.5).RepeatYoyo(3, 0).Start()

	w.Kids = entity.NewKids(w, 15, 2)
	w.Spawn(w.Kids)
	w.tweens.To(2, &w.Kids.Bounds().X).Target(19).Start()
}

func (w *World) getIntoBed() {
	r := w.player.Bounds()
	r.X = 9
	w.player.MoveDelay = 1
	w.tweens.To(1, &r.Y).Target(r.Y + 1).Start()
}

// sleep blinks the screen to black and back, the player waking up sad
func (w *World) sleep() {
	w.tweens.To(1, &w.Transition.A).Target(1).RepeatYoyo(1, 0).
		OnComplete(w.player.SetSadMode).Start()
}

// leaveThroughDoor walks the player out on the left. The second alpha tween
// is registered after the fade and wins, so the screen stays clear.
func (w *World) leaveThroughDoor() {
	w.exit()
	w.slidePlayerX(-1)
	w.tweens.To(entity.PipeDelay, &w.Transition.A).Target(0).Start()
}

// grow plays the mushroom power-up with a zoom onto the player
func (w *World) grow() {
	p := w.player
	p.MoveDelay = 3
	w.CameraLock = false
	p.SmashedAnimation = entity.AnimGrow
	p.StateTime = 0

	r := p.Bounds()
	w.Camera.TweenTo(w.tweens, 1.5, r.X+0.5, r.Y+0.5, 0.1).
		Ease(tween.QuadInOut).
		RepeatYoyo(1, 0).
		OnFinish(func() { p.SmashedAnimation = entity.AnimSmashed }).
		Start()
}
