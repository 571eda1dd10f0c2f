package event

import "fmt"

// Event is reported by the engine when a tick changes the board.
type Event interface {
	Message() string
}

type LockEvent struct {
	Piece string
	X, Y  int
}

func (e *LockEvent) Message() string {
	return fmt.Sprintf("locked %s at (%d,%d)", e.Piece, e.X, e.Y)
}

type ClearEvent struct {
	Lines int
	Score int
}

func (e *ClearEvent) Message() string {
	if e.Lines == 1 {
		return fmt.Sprintf("cleared 1 line +%d", e.Score)
	}
	return fmt.Sprintf("cleared %d lines +%d", e.Lines, e.Score)
}

type GameOverEvent struct {
	Score int
	Lines int
}

func (e *GameOverEvent) Message() string {
	return fmt.Sprintf("game over - score %d, lines %d", e.Score, e.Lines)
}
