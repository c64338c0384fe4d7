package game

import (
	"time"

	"skirmish/internal/skirmish"
)

// GameState is one client's view of the authoritative board. Board is
// replaced wholesale on every sync and never mutated in place, so a caller
// holding a GameState may query it without locking.
type GameState struct {
	ID        string
	Board     *skirmish.Board
	Revision  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardCodec turns boards into snapshot strings and back.
type BoardCodec interface {
	EncodeBoard(b *skirmish.Board) string
	DecodeBoard(s string) (*skirmish.Board, error)
}
