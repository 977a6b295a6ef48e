package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"puzzleland/internal/gamemap"
	"puzzleland/internal/generate"
	"puzzleland/internal/system"
	"puzzleland/internal/text"
)

// turn resolves one key: the candidate move, every room action, the tile
// the player lands on and finally the commit of the new position.
func (e *Engine) turn(ctx context.Context, key byte) {
	ctx, span := e.tracer.Start(ctx, "game.turn", trace.WithAttributes(
		attribute.String("key", string(key)),
		attribute.Int("pos", e.pos),
	))
	defer span.End()

	b := e.room.Board
	pos := e.pos
	next := pos
	// behind is the cell the sticky grip drags from; off-board for keys
	// that don't step.
	behind := -1

	action := keyToAction(key)
	switch action {
	case ActionMove:
		step, _ := system.Step(b, key)
		behind = pos - step
		next = pos + step
	case ActionMark:
		b.ClearIf(e.warp, gamemap.WarpMark)
		e.warp = pos
	case ActionWarp:
		if e.flags.Has(FlagWarp) && e.warp != 0 {
			next = e.warp
		}
	case ActionGrip:
		if e.flags.Has(FlagSticky) {
			e.flags ^= FlagGrip
		}
	case ActionKnight:
		if e.flags.Has(FlagKnight) {
			next += system.KnightOffset(b, pos, key)
		}
	case ActionReset:
		e.runLog.Resets++
		next = e.enter(ctx, e.entrance)
	case ActionQuit:
		// Quitting still plays out the rest of the turn.
	}

	t := system.Turn{Board: b, Player: pos, Key: key}
	e.room.Actions.Run(&t)
	if t.RevealPending {
		e.flags |= FlagRevealPending
	}
	e.log.Debug("turn",
		zap.String("key", string(key)),
		zap.Int("pos", pos),
		zap.Int("next", next),
		zap.Int("actions", e.room.Actions.Len()),
	)

	if b.At(next) == gamemap.Wall || system.Push(b, next, key) == system.MoveBlocked {
		next = pos
	}

	switch tile := b.At(next); {
	case tile.IsDoor():
		e.roomID = generate.Neighbor(e.roomID, tile)
		next = e.enter(ctx, tile)
		e.entrance = tile
		e.warp = 0
	case tile == gamemap.Hazard:
		e.state = StateGameOver
		e.log.Info("player hit a hazard", zap.Int("pos", next))
		return
	case tile == gamemap.Button:
		e.room.Actions.Activate()
	case tile == gamemap.Pad:
		if step, ok := system.Step(b, key); ok {
			next = e.room.Partner(next) + step
		} else {
			next = pos
		}
	case tile == gamemap.Pickup:
		e.pickup()
	case tile == gamemap.Cheese:
		e.flags |= FlagCheese
		e.room.CheeseFound = true
		e.runLog.Pickups++
		e.log.Info("cream cheese found")
		e.notify(e.text.Get(text.PickupCheese))
	case tile == gamemap.Goal:
		e.state = StateWon
		return
	}

	if e.flags.Has(FlagGrip) && pos != next && b.At(behind) == gamemap.Block {
		b.Set(behind, gamemap.Empty)
		b.Set(pos, gamemap.Block)
	} else {
		b.ClearIf(pos, gamemap.Player)
	}
	e.pos = next
	if e.flags.Has(FlagWarp) && e.warp != 0 && b.At(e.warp) == gamemap.Empty {
		b.Set(e.warp, gamemap.WarpMark)
	}
	b.Set(next, gamemap.Player)

	if action == ActionQuit {
		e.state = StateExited
	}
}

// pickup unlocks the ability the current room holds.
func (e *Engine) pickup() {
	b := e.room.Board
	var msg string
	switch e.roomID {
	case generate.WarpRoom:
		e.flags |= FlagWarp
		msg = text.PickupWarp
	case generate.KnightRoom:
		e.flags |= FlagKnight
		b.ClearIf(e.warp, gamemap.WarpMark)
		msg = text.PickupKnight
	default:
		e.flags |= FlagSticky
		b.ClearIf(e.warp, gamemap.WarpMark)
		msg = text.PickupSticky
	}
	e.flags &^= FlagGrip
	e.warp = 0
	e.runLog.Pickups++
	e.log.Info("ability unlocked", zap.String("ability", msg), zap.Int("room", e.roomID))
	e.notify(e.text.Get(msg))
}
