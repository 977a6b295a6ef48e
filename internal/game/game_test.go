package game

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"puzzleland/internal/gamemap"
	"puzzleland/internal/generate"
	"puzzleland/internal/render"
	"puzzleland/internal/text"
)

// scriptTerm plays back keys and records everything shown.
type scriptTerm struct {
	keys   []byte
	frames []render.Frame
	notes  []string
}

func (s *scriptTerm) ReadKey() (byte, error) {
	if len(s.keys) == 0 {
		return 0, io.EOF
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k, nil
}

func (s *scriptTerm) Draw(f render.Frame) { s.frames = append(s.frames, f) }
func (s *scriptTerm) Notify(msg string)   { s.notes = append(s.notes, msg) }

func newTestEngine(t *testing.T, keys string, opts ...Option) (*Engine, *scriptTerm) {
	t.Helper()
	term := &scriptTerm{keys: []byte(keys)}
	opts = append([]Option{WithIntro(false)}, opts...)
	return New(term, opts...), term
}

// placeIn moves the player into room as if it had come through entry.
func placeIn(t *testing.T, e *Engine, room int, entry gamemap.Tile) {
	t.Helper()
	e.roomID = room
	e.entrance = entry
	e.pos = e.enter(context.Background(), entry)
	e.room.Board.Set(e.pos, gamemap.Player)
}

// moveTo puts the player marker on pos in the current room.
func moveTo(e *Engine, pos int) {
	e.room.Board.ClearIf(e.pos, gamemap.Player)
	e.pos = pos
	e.room.Board.Set(pos, gamemap.Player)
}

func TestQuit(t *testing.T) {
	e, _ := newTestEngine(t, "t")
	out := e.Run(context.Background())

	assert.Equal(t, StateExited, out.State)
	assert.Equal(t, 0, out.Code())
	assert.Equal(t, 1, out.Moves)
	assert.Equal(t, "Exiting...", out.Message)
	assert.False(t, out.ShowBoard())
}

func TestClosedInputExits(t *testing.T) {
	e, _ := newTestEngine(t, "")
	out := e.Run(context.Background())
	assert.Equal(t, StateExited, out.State)
	assert.Zero(t, out.Moves)
}

func TestCancelledContextExits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, _ := newTestEngine(t, "wwww")
	out := e.Run(ctx)
	assert.Equal(t, StateExited, out.State)
	assert.Zero(t, out.Moves)
}

func TestStartsInFrontRoom(t *testing.T) {
	e, term := newTestEngine(t, "")
	e.Run(context.Background())

	require.NotEmpty(t, term.frames)
	f := term.frames[0]
	assert.Equal(t, 45, f.Player)
	assert.Equal(t, gamemap.Player, f.Board.At(45))
	assert.Equal(t, "front room  moves: 0  ", f.Status)
	assert.Equal(t, generate.StartRoom, e.roomID)
	assert.Equal(t, gamemap.DoorNorth, e.entrance)
}

func TestWalkThroughDoor(t *testing.T) {
	e, _ := newTestEngine(t, "wwww")
	out := e.Run(context.Background())

	assert.Equal(t, 4, out.Moves)
	assert.Equal(t, generate.StartRoom-generate.MapWidth, e.roomID)
	assert.Equal(t, generate.RoomBig, e.world.At(e.roomID))
	assert.Equal(t, 3080, e.pos)
	assert.Equal(t, gamemap.DoorNorth, e.entrance)
	assert.Equal(t, gamemap.Player, out.Board.At(3080))
	assert.Equal(t, []int{3080}, out.Board.Find(gamemap.Player))
}

func TestResetReturnsToEntryLanding(t *testing.T) {
	e, _ := newTestEngine(t, "wwwwddx")
	e.Run(context.Background())
	assert.Equal(t, 3080, e.pos)
	assert.Equal(t, 1, e.runLog.Resets)
	assert.Equal(t, []int{3080}, e.room.Board.Find(gamemap.Player))
}

func TestDoorSymmetry(t *testing.T) {
	// North into the big room, straight back south and reset.
	e, _ := newTestEngine(t, "wwwws")
	e.Run(context.Background())
	require.Equal(t, generate.StartRoom, e.roomID)
	assert.Equal(t, 15, e.pos)
	assert.Equal(t, gamemap.DoorSouth, e.entrance)

	e, _ = newTestEngine(t, "wwwwsx")
	e.Run(context.Background())
	assert.Equal(t, 15, e.pos)
	assert.Equal(t, []int{15}, e.room.Board.Find(gamemap.Player))
}

func TestWalkingIntoHazardEndsTheGame(t *testing.T) {
	e, term := newTestEngine(t, "w")
	ctx := context.Background()
	e.begin(ctx)
	e.room.Board.Set(35, gamemap.Hazard)
	e.play(ctx)
	out := e.outcome()

	assert.Equal(t, StateGameOver, out.State)
	assert.Equal(t, 1, out.Code())
	assert.Equal(t, "Game over.", out.Message)
	assert.True(t, out.ShowBoard())
	assert.Equal(t, gamemap.Player, out.Board.At(45), "the fatal step is not committed")
	assert.Equal(t, gamemap.Hazard, out.Board.At(35))
	assert.Len(t, term.frames, 1)
}

func TestReachingTheGoalWins(t *testing.T) {
	cases := []struct {
		name   string
		cheese bool
	}{
		{"plain", false},
		{"with cheese", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, _ := newTestEngine(t, "zw")
			ctx := context.Background()
			e.begin(ctx)
			if tc.cheese {
				e.flags |= FlagCheese
			}
			e.room.Board.Set(35, gamemap.Goal)
			e.play(ctx)
			out := e.outcome()

			assert.Equal(t, StateWon, out.State)
			assert.Equal(t, 2, out.Code())
			assert.Contains(t, out.Message, "You found your bagel!")
			assert.Contains(t, out.Message, "Moves taken: 2")
			cheese := "With a bit of cream cheese"
			if tc.cheese {
				assert.Contains(t, out.Message, cheese)
			} else {
				assert.NotContains(t, out.Message, cheese)
			}
		})
	}
}

func TestIntroCheat(t *testing.T) {
	cases := []struct {
		name  string
		allow bool
		key   string
		want  Flags
	}{
		{"allowed", true, "C", CheatFlags},
		{"lowercase", true, "c", 0},
		{"disallowed", false, "C", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term := &scriptTerm{keys: []byte(tc.key + "t")}
			e := New(term, WithCheats(tc.allow))
			out := e.Run(context.Background())

			assert.Equal(t, tc.want, e.flags)
			assert.Equal(t, 1, out.Moves, "the intro key is not a move")
			require.NotEmpty(t, term.notes)
			assert.Equal(t, text.Default().Get(text.Intro), term.notes[0])
		})
	}
}

func TestCheatShowsAbilities(t *testing.T) {
	term := &scriptTerm{keys: []byte("Ce")}
	e := New(term, WithCheats(true))
	e.Run(context.Background())

	require.Len(t, term.frames, 2)
	assert.Equal(t, "front room  moves: 0  warp knight sticky", term.frames[0].Status)
	assert.Equal(t, "front room  moves: 1  warp knight sticky x-ray", term.frames[1].Status)
	assert.True(t, term.frames[1].Gripping)
}

func TestCustomCatalog(t *testing.T) {
	c := text.Parse([]byte("msgid \"EXITING\"\nmsgstr \"Bye.\"\n"))
	e, _ := newTestEngine(t, "t", WithCatalog(c))
	assert.Equal(t, "Bye.", e.Run(context.Background()).Message)
}

func TestRunLogIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	e, _ := newTestEngine(t, "wwwwt", WithLogger(zap.New(core)))
	e.Run(context.Background())

	entries := logs.FilterMessage("run finished").All()
	require.Len(t, entries, 1)
	run, ok := entries[0].ContextMap()["run"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 5, run["moves"])
	assert.Equal(t, 2, run["rooms_entered"])
	assert.Equal(t, "big room", run["final_room"])
	assert.Equal(t, "exited", run["outcome"])

	assert.Len(t, logs.FilterMessage("room entered").All(), 2)
}

func TestTurnsAreTraced(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	e, _ := newTestEngine(t, "wwww", WithTracer(tp.Tracer("test")))
	e.Run(context.Background())

	counts := map[string]int{}
	for _, s := range sr.Ended() {
		counts[s.Name()]++
	}
	assert.Equal(t, map[string]int{"game.run": 1, "game.turn": 4, "game.enter": 2}, counts)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "game-over", StateGameOver.String())
	assert.Equal(t, "state(9)", State(9).String())
	assert.Equal(t, 0, StateRunning.ExitCode())
}
