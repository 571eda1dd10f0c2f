package game

import (
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Spawn replaces the active piece with the front of the queue, randomly
// pre-rotated, centered and raised so only its bottom row is on the board.
func (s *State) Spawn() error {
	index := s.Queue.Take()

	p, err := NewPiece(index, s.randomizer.Intn(4))
	if err != nil {
		return errors.Wrap(err, "failed to spawn piece")
	}

	w, h := p.Mask.Size()
	p.X = (s.Board.W - w) / 2
	p.Y = -h + 1

	s.Piece = p
	return nil
}

// Collides reports whether mask, placed at the active piece's position moved
// by (dx, dy), would hit a wall, the floor or a locked cell. Cells at or
// above row 0 are only checked against the walls.
func (s *State) Collides(mask mino.Mask, dx int, dy int) bool {
	var x, y int
	for _, c := range mask.Cells() {
		x = c.X + s.Piece.X + dx
		y = c.Y + s.Piece.Y + dy

		if x < 0 || x >= s.Board.W {
			return true
		} else if y <= 0 {
			continue
		}

		if y >= s.Board.H || s.Board.IsOccupied(x, y) {
			return true
		}
	}

	return false
}

// Resting reports whether the active piece cannot move down.
func (s *State) Resting() bool {
	return s.Collides(s.Piece.Mask, 0, 1)
}

func (s *State) TryMove(dx int, dy int) bool {
	if s.GameOver || (dx == 0 && dy == 0) {
		return false
	} else if s.Collides(s.Piece.Mask, dx, dy) {
		return false
	}

	s.Piece.X += dx
	s.Piece.Y += dy
	return true
}

// TryRotateClockwise rotates the active piece in place. The rotation is
// rejected when the rotated mask collides where it is or one row below.
func (s *State) TryRotateClockwise() bool {
	if s.GameOver {
		return false
	}

	rotated := s.Piece.Mask.RotateCW()
	if s.Collides(rotated, 0, 0) || s.Collides(rotated, 0, 1) {
		return false
	}

	s.Piece.Mask = rotated
	return true
}

// HardDrop moves the active piece down until it rests and returns the number
// of rows it fell. Locking is left to the next lock step.
func (s *State) HardDrop() int {
	rows := 0
	for s.TryMove(0, 1) {
		rows++
	}

	return rows
}

// GhostY returns the row the active piece would hard drop to.
func (s *State) GhostY() int {
	dy := 0
	for !s.Collides(s.Piece.Mask, 0, dy+1) {
		dy++
	}

	return s.Piece.Y + dy
}

// LockIfResting writes the active piece into the board when it cannot move
// down and spawns the next piece. A cell above the board tops out the stack
// and ends the game.
func (s *State) LockIfResting() (bool, error) {
	if s.GameOver || !s.Resting() {
		return false, nil
	}

	p := s.Piece

	toppedOut := false
	for _, c := range p.Cells() {
		if c.Y < 0 {
			toppedOut = true
			continue
		}

		err := s.Board.SetCell(c.X, c.Y, p.Color)
		if err != nil {
			return false, errors.Wrapf(err, "failed to lock %s", p)
		}
	}

	s.Pieces++
	s.emit(&event.LockEvent{Piece: p.Name, X: p.X, Y: p.Y})

	if toppedOut {
		s.GameOver = true
		s.emit(&event.GameOverEvent{Score: s.Score, Lines: s.Lines})
	}

	if err := s.Spawn(); err != nil {
		return true, err
	}

	return true, nil
}
