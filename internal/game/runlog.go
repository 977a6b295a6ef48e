package game

import (
	"go.uber.org/zap/zapcore"
)

// RunLog records statistics gathered during one run.
type RunLog struct {
	Moves        int
	RoomsEntered int
	Resets       int
	Pickups      int
	FinalRoom    string
	Outcome      State
	Abilities    []string
	Cheated      bool
	SecretFound  bool
}

// MarshalLogObject writes the summary as a structured log field.
func (r RunLog) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("moves", r.Moves)
	enc.AddInt("rooms_entered", r.RoomsEntered)
	enc.AddInt("resets", r.Resets)
	enc.AddInt("pickups", r.Pickups)
	enc.AddString("final_room", r.FinalRoom)
	enc.AddString("outcome", r.Outcome.String())
	enc.AddBool("cheated", r.Cheated)
	enc.AddBool("secret_found", r.SecretFound)
	return enc.AddArray("abilities", zapcore.ArrayMarshalerFunc(func(arr zapcore.ArrayEncoder) error {
		for _, a := range r.Abilities {
			arr.AppendString(a)
		}
		return nil
	}))
}
