package game

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"puzzleland/internal/gamemap"
	"puzzleland/internal/generate"
	"puzzleland/internal/observability"
	"puzzleland/internal/render"
	"puzzleland/internal/text"
)

// State tracks the main state machine.
type State uint8

const (
	StateRunning State = iota
	StateGameOver
	StateWon
	StateExited
)

var stateNames = [...]string{
	StateRunning:  "running",
	StateGameOver: "game-over",
	StateWon:      "won",
	StateExited:   "exited",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ExitCode is the process status for a finished run: 0 quit, 1 hazard, 2 win.
func (s State) ExitCode() int {
	switch s {
	case StateGameOver:
		return 1
	case StateWon:
		return 2
	}
	return 0
}

// Terminal is the display the engine plays on.
type Terminal interface {
	// ReadKey blocks for the next key.
	ReadKey() (byte, error)
	// Draw repaints the room.
	Draw(f render.Frame)
	// Notify shows a message over the current frame.
	Notify(msg string)
}

// Outcome is how a run ended.
type Outcome struct {
	State    State
	Moves    int
	Board    *gamemap.Board // last frame, for printing after the terminal is released
	Gripping bool
	Message  string
}

// Code returns the process exit status for the outcome.
func (o Outcome) Code() int { return o.State.ExitCode() }

// ShowBoard reports whether the final board belongs above the message.
func (o Outcome) ShowBoard() bool {
	return o.State == StateGameOver || o.State == StateWon
}

// Engine owns one run: the room being played, the world map and the flags.
type Engine struct {
	term   Terminal
	text   *text.Catalog
	log    *zap.Logger
	tracer trace.Tracer

	intro       bool
	allowCheats bool

	room     *generate.Room
	world    *generate.World
	roomID   int
	entrance gamemap.Tile
	pos      int
	warp     int
	flags    Flags
	state    State
	moves    int
	runLog   RunLog
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option { return func(e *Engine) { e.log = l } }

// WithTracer sets the tracer; the default records nothing.
func WithTracer(t trace.Tracer) Option { return func(e *Engine) { e.tracer = t } }

// WithCatalog replaces the built-in messages.
func WithCatalog(c *text.Catalog) Option { return func(e *Engine) { e.text = c } }

// WithIntro controls the welcome prompt.
func WithIntro(show bool) Option { return func(e *Engine) { e.intro = show } }

// WithCheats lets the intro prompt unlock every ability.
func WithCheats(allow bool) Option { return func(e *Engine) { e.allowCheats = allow } }

// New creates an Engine playing on term.
func New(term Terminal, opts ...Option) *Engine {
	e := &Engine{
		term:   term,
		text:   text.Default(),
		log:    zap.NewNop(),
		tracer: observability.NoopTracer(),
		intro:  true,
		room:   generate.NewRoom(),
		world:  generate.NewWorld(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run plays until the player dies, wins or quits, or ctx is cancelled.
func (e *Engine) Run(ctx context.Context) Outcome {
	ctx, span := e.tracer.Start(ctx, "game.run")
	defer span.End()

	e.begin(ctx)
	e.play(ctx)

	out := e.outcome()
	span.SetAttributes(
		attribute.String("outcome", out.State.String()),
		attribute.Int("moves", out.Moves),
	)
	return out
}

// begin shows the intro and enters the front room.
func (e *Engine) begin(ctx context.Context) {
	if e.intro {
		e.term.Notify(e.text.Get(text.Intro))
		key, err := e.term.ReadKey()
		if err != nil {
			e.log.Warn("intro key read failed", zap.Error(err))
			e.state = StateExited
		} else if key == cheatKey && e.allowCheats {
			e.flags |= CheatFlags
			e.runLog.Cheated = true
			e.log.Info("cheats enabled")
		}
	}
	e.roomID = generate.StartRoom
	e.entrance = gamemap.DoorNorth
	e.pos = e.enter(ctx, gamemap.NoEntry)
	e.log.Info("run started", zap.Int("room", e.roomID))
}

// play runs turns until the state leaves StateRunning.
func (e *Engine) play(ctx context.Context) {
	for e.state == StateRunning {
		if err := ctx.Err(); err != nil {
			e.log.Info("run cancelled", zap.Error(err))
			e.state = StateExited
			break
		}
		if e.flags.Has(FlagRevealPending) {
			e.world.RevealSecret()
			e.flags &^= FlagRevealPending
			e.runLog.SecretFound = true
			e.log.Info("secret room revealed", zap.Int("room", generate.CageRoom))
		}
		e.draw()
		key, err := e.term.ReadKey()
		if err != nil {
			e.log.Warn("key read failed", zap.Error(err))
			e.state = StateExited
			break
		}
		e.moves++
		e.turn(ctx, key)
	}
}

// enter paints the current room for an arrival through entry and returns
// the landing cell.
func (e *Engine) enter(ctx context.Context, entry gamemap.Tile) int {
	kind := e.world.At(e.roomID)
	_, span := e.tracer.Start(ctx, "game.enter", trace.WithAttributes(
		attribute.Int("room", e.roomID),
		attribute.String("kind", kind.String()),
		attribute.String("entry", entry.String()),
	))
	defer span.End()

	pos := e.room.Enter(kind, entry)
	e.runLog.RoomsEntered++
	e.log.Info("room entered",
		zap.Int("room", e.roomID),
		zap.Stringer("kind", kind),
		zap.Stringer("entry", entry),
		zap.Int("actions", e.room.Actions.Len()),
	)
	return pos
}

func (e *Engine) draw() {
	kind := e.world.At(e.roomID)
	status := e.text.Format(text.Status, kind.String(), e.moves,
		strings.Join(e.flags.abilities(e.text), " "))
	e.term.Draw(render.Frame{
		Board:    e.room.Board,
		Player:   e.pos,
		Gripping: e.flags.Has(FlagGrip),
		Status:   status,
	})
}

// notify shows msg and waits for the key that dismisses it.
func (e *Engine) notify(msg string) {
	e.draw()
	e.term.Notify(msg)
	if _, err := e.term.ReadKey(); err != nil {
		e.log.Warn("key read failed", zap.Error(err))
	}
}

func (e *Engine) outcome() Outcome {
	out := Outcome{
		State:    e.state,
		Moves:    e.moves,
		Board:    e.room.Board,
		Gripping: e.flags.Has(FlagGrip),
	}
	switch e.state {
	case StateGameOver:
		out.Message = e.text.Get(text.GameOver)
	case StateWon:
		lines := []string{e.text.Get(text.Win)}
		if e.flags.Has(FlagCheese) {
			lines = append(lines, e.text.Get(text.WinCheese))
		}
		lines = append(lines, e.text.Format(text.WinFarewell, e.moves))
		out.Message = strings.Join(lines, "\n")
	default:
		out.Message = e.text.Get(text.Exiting)
	}

	e.runLog.Moves = e.moves
	e.runLog.Outcome = e.state
	e.runLog.FinalRoom = e.world.At(e.roomID).String()
	e.runLog.Abilities = e.flags.abilities(e.text)
	e.log.Info("run finished", zap.Object("run", e.runLog))
	return out
}
