package game

import (
	"io"
	"log"
	"testing"

	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/require"
)

func newTestState(t testing.TB) *State {
	t.Helper()

	s, err := NewState(1)
	require.NoError(t, err)

	return s
}

func newTestGame(t testing.TB) *Game {
	t.Helper()

	g, err := NewGame(1, log.New(io.Discard, "", 0))
	require.NoError(t, err)

	return g
}

// place replaces the active piece with the named piece at (x, y).
func place(t testing.TB, s *State, name string, rotations int, x int, y int) {
	t.Helper()

	i, err := mino.Lookup(name)
	require.NoError(t, err)

	p, err := NewPiece(i, rotations)
	require.NoError(t, err)

	p.X, p.Y = x, y
	s.Piece = p
}

func fillRow(t testing.TB, b *mino.Board, y int, block mino.Block, skip ...int) {
	t.Helper()

	for x := 0; x < b.W; x++ {
		skipped := false
		for _, s := range skip {
			if s == x {
				skipped = true
			}
		}
		if skipped {
			continue
		}

		require.NoError(t, b.SetCell(x, y, block))
	}
}

func cell(t testing.TB, b *mino.Board, x int, y int) mino.Block {
	t.Helper()

	block, err := b.CellAt(x, y)
	require.NoError(t, err)

	return block
}
