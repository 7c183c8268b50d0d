package playing

import (
	"fmt"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/ld33/internal/application/replay"
	"github.com/younwookim/ld33/internal/application/scene"
	"github.com/younwookim/ld33/internal/application/world"
	"github.com/younwookim/ld33/internal/domain/entity"
	"github.com/younwookim/ld33/internal/domain/phase"
	"github.com/younwookim/ld33/internal/infrastructure/tilemap"
	"github.com/younwookim/ld33/internal/infrastructure/tween"
)

const (
	dt      = 1.0 / 60.0
	mapsDir = "../../../../cmd/game/assets/maps"
)

type echoText struct{}

func (echoText) Get(key string) string { return key }

type brokenMaps struct {
	world.MapSource
	missing string
}

func (b brokenMaps) Load(name string) (*tilemap.Map, error) {
	if name == b.missing {
		return nil, fmt.Errorf("%s: %w", name, fs.ErrNotExist)
	}
	return b.MapSource.Load(name)
}

func testDeps(maps world.MapSource) world.Deps {
	return world.Deps{
		Maps:          maps,
		Text:          echoText{},
		Tweens:        tween.NewManager(),
		Tuning:        entity.DefaultTuning(),
		DialogueSpeed: 40,
	}
}

func realMaps() world.MapSource {
	return tilemap.NewLoader(os.DirFS(mapsDir))
}

// headingHome walks through the HEADING_HOME phase
func headingHome() *replay.Script {
	return replay.NewScript().Idle(61).Advance(2).Left(600)
}

// runUntilNext plays s frame by frame, ticking tweens first the way the game
// does, and returns the next scene with the number of frames it took.
func runUntilNext(t *testing.T, s *Playing, tweens *tween.Manager, limit int) (scene.Scene, int) {
	t.Helper()
	for i := 1; i <= limit; i++ {
		tweens.Update(dt)
		next, err := s.Update(dt)
		require.NoError(t, err)
		if next != nil {
			return next, i
		}
	}
	t.Fatalf("no scene change after %d frames", limit)
	return nil, 0
}

func TestNew(t *testing.T) {
	deps := testDeps(realMaps())
	s, err := New(phase.DayOne, world.NewCamera(), deps, replay.NewScript().Replayer())
	require.NoError(t, err)

	assert.Equal(t, phase.DayOne, s.Phase())
	require.NotNil(t, s.World())
	assert.Equal(t, "level1", s.World().Map.Name)
	assert.Positive(t, deps.Tweens.Len(), "the opening is already scheduled")
}

func TestNew_NilTweens(t *testing.T) {
	deps := testDeps(realMaps())
	deps.Tweens = nil

	s, err := New(phase.DayOne, world.NewCamera(), deps, replay.NewScript().Replayer())
	require.NoError(t, err)

	assert.NotNil(t, s.deps.Tweens)
	assert.Same(t, s.deps.Tweens, s.World().Tweens())
}

func TestNew_MissingMap(t *testing.T) {
	deps := testDeps(brokenMaps{MapSource: realMaps(), missing: "level1"})

	_, err := New(phase.DayOne, world.NewCamera(), deps, replay.NewScript().Replayer())

	assert.ErrorContains(t, err, "failed to start phase DayOne")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestPlaying_StaysUntilDone(t *testing.T) {
	deps := testDeps(realMaps())
	s, err := New(phase.DayOne, world.NewCamera(), deps, replay.NewScript().Left(120).Replayer())
	require.NoError(t, err)

	for i := 0; i < 120; i++ {
		deps.Tweens.Update(dt)
		next, err := s.Update(dt)
		require.NoError(t, err)
		require.Nil(t, next)
	}
	assert.False(t, s.World().Done())
}

func TestPlaying_AdvancesToNextPhase(t *testing.T) {
	deps := testDeps(realMaps())
	cam := world.NewCamera()
	s, err := New(phase.HeadingHome, cam, deps, headingHome().Replayer())
	require.NoError(t, err)

	next, _ := runUntilNext(t, s, deps.Tweens, 1200)

	n, ok := next.(*Playing)
	require.True(t, ok)
	assert.Equal(t, phase.MeetTheWife, n.Phase())
	assert.Nil(t, n.World(), "built on enter")

	cam.X, cam.Zoom = 14, 0.5
	s.OnExit()
	assert.Zero(t, deps.Tweens.Len())
	assert.Equal(t, world.Camera{X: 10, Y: 7.5, Zoom: 1}, *cam)

	n.OnEnter()
	require.NotNil(t, n.World())
	assert.Equal(t, phase.MeetTheWife, n.World().Phase)
	assert.Equal(t, "inhome-bedroom", n.World().Map.Name)
	assert.Same(t, cam, n.World().Camera)
	assert.Positive(t, deps.Tweens.Len())
}

func TestPlaying_UpdateBuildsWorld(t *testing.T) {
	deps := testDeps(realMaps())
	s, err := New(phase.HeadingHome, world.NewCamera(), deps, replay.NewScript().Replayer())
	require.NoError(t, err)
	n, ok := s.next()
	require.True(t, ok)

	next, err := n.Update(dt)

	require.NoError(t, err)
	assert.Nil(t, next)
	require.NotNil(t, n.World())
	assert.Equal(t, phase.MeetTheWife, n.World().Phase)
}

func TestPlaying_CultRoomIsTheEnd(t *testing.T) {
	deps := testDeps(realMaps())
	s, err := New(phase.CultRoom, world.NewCamera(), deps, replay.NewScript().Replayer())
	require.NoError(t, err)

	s.World().FadeOut()
	deps.Tweens.Update(entity.PipeDelay + 0.01)
	require.True(t, s.World().Done())

	for i := 0; i < 5; i++ {
		next, err := s.Update(dt)
		require.NoError(t, err)
		assert.Nil(t, next)
	}
}

func TestPlaying_NextPhaseFailsToLoad(t *testing.T) {
	deps := testDeps(brokenMaps{MapSource: realMaps(), missing: "enterhome"})
	s, err := New(phase.DayOne, world.NewCamera(), deps, replay.NewScript().Replayer())
	require.NoError(t, err)

	s.World().FadeOut()
	deps.Tweens.Update(entity.PipeDelay + 0.01)
	next, err := s.Update(dt)
	require.NoError(t, err)
	require.NotNil(t, next)

	s.OnExit()
	next.OnEnter()
	_, err = next.Update(dt)

	assert.ErrorContains(t, err, "failed to start phase HeadingHome")
	_, again := next.Update(dt)
	assert.Equal(t, err, again, "stays failed")
}

func TestPlaying_ReplayIsDeterministic(t *testing.T) {
	deps := testDeps(realMaps())
	rec := replay.NewRecorder(headingHome().Replayer(), phase.HeadingHome.String())
	s, err := New(phase.HeadingHome, world.NewCamera(), deps, rec)
	require.NoError(t, err)
	_, recorded := runUntilNext(t, s, deps.Tweens, 1200)
	endX := s.World().Player().Bounds().X
	require.Equal(t, recorded, rec.FrameCount())

	deps = testDeps(realMaps())
	s, err = New(phase.HeadingHome, world.NewCamera(), deps, replay.NewReplayer(rec.Data()))
	require.NoError(t, err)
	_, replayed := runUntilNext(t, s, deps.Tweens, 1200)

	assert.Equal(t, recorded, replayed)
	assert.Equal(t, endX, s.World().Player().Bounds().X)
}
