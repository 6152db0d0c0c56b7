package equity

import "errors"

var (
	// ErrInvalidPlayers is returned for tables outside 2..MaxPlayers seats.
	ErrInvalidPlayers = errors.New("equity: player count out of range")

	// ErrInvalidRevealed is returned when the revealed pair count is not 0..5.
	ErrInvalidRevealed = errors.New("equity: revealed pairs out of range")

	// ErrSuperseded is returned by Latest when a newer request replaced the
	// one that produced the result.
	ErrSuperseded = errors.New("equity: request superseded by a newer one")
)
