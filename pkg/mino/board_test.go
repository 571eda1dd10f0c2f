package mino

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(t *testing.T, b *Board, y int, block Block, skip ...int) {
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

func TestBoardCells(t *testing.T) {
	b := NewBoard()
	require.Equal(t, Width, b.W)
	require.Equal(t, Height, b.H)

	require.NoError(t, b.SetCell(3, 7, BlockCyan))

	block, err := b.CellAt(3, 7)
	require.NoError(t, err)
	assert.Equal(t, BlockCyan, block)

	assert.True(t, b.IsOccupied(3, 7))
	assert.False(t, b.IsOccupied(4, 7))
	assert.Equal(t, 1, b.Occupied())
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard()

	for _, p := range []Point{{-1, 0}, {0, -1}, {Width, 0}, {0, Height}} {
		_, err := b.CellAt(p.X, p.Y)
		assert.True(t, errors.Is(err, ErrOutOfRange), "CellAt%s", p)

		err = b.SetCell(p.X, p.Y, BlockRed)
		assert.True(t, errors.Is(err, ErrOutOfRange), "SetCell%s", p)
	}

	err := b.SetCell(0, 0, BlockMax+1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	err = b.RemoveRowAndShiftDown(Height)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestBoardIsOccupiedOutside(t *testing.T) {
	b := NewBoard()

	assert.False(t, b.IsOccupied(4, -1))
	assert.False(t, b.IsOccupied(-3, -5))
	assert.True(t, b.IsOccupied(-1, 5))
	assert.True(t, b.IsOccupied(Width, 5))
	assert.True(t, b.IsOccupied(4, Height))
}

func TestBoardRowIsFull(t *testing.T) {
	b := NewBoard()
	fillRow(t, b, 19, BlockRed, 0)
	assert.False(t, b.RowIsFull(19))

	require.NoError(t, b.SetCell(0, 19, BlockBlue))
	assert.True(t, b.RowIsFull(19))
	assert.False(t, b.RowIsFull(18))
	assert.False(t, b.RowIsFull(-1))
}

func TestBoardRemoveRowAndShiftDown(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.SetCell(0, 0, BlockOrange))
	require.NoError(t, b.SetCell(2, 17, BlockGreen))
	require.NoError(t, b.SetCell(5, 18, BlockYellow))
	fillRow(t, b, 19, BlockRed)

	require.NoError(t, b.RemoveRowAndShiftDown(19))

	assert.False(t, b.RowIsFull(19))
	assert.Equal(t, 3, b.Occupied())

	for _, c := range []struct {
		x, y  int
		block Block
	}{
		{0, 1, BlockOrange},
		{2, 18, BlockGreen},
		{5, 19, BlockYellow},
		{0, 0, BlockNone},
	} {
		block, err := b.CellAt(c.x, c.y)
		require.NoError(t, err)
		assert.Equal(t, c.block, block, "cell (%d,%d)", c.x, c.y)
	}
}

func TestBoardRemoveTopRow(t *testing.T) {
	b := NewBoard()
	fillRow(t, b, 0, BlockCyan)
	require.NoError(t, b.SetCell(1, 1, BlockCyan))

	require.NoError(t, b.RemoveRowAndShiftDown(0))
	assert.Equal(t, 1, b.Occupied())
	assert.True(t, b.IsOccupied(1, 1))
}

func TestBoardCopy(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.SetCell(1, 2, BlockMagenta))

	c := b.Copy()
	assert.True(t, b.Equal(c))

	require.NoError(t, c.SetCell(1, 2, BlockNone))
	assert.False(t, b.Equal(c))
	assert.True(t, b.IsOccupied(1, 2))

	rows := b.Rows()
	rows[2][1] = BlockNone
	assert.True(t, b.IsOccupied(1, 2))
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.SetCell(0, 19, BlockMagenta))
	require.NoError(t, b.SetCell(9, 19, BlockOrange))

	s := b.String()
	assert.Equal(t, Height*(Width+1)-1, len(s))
	assert.Equal(t, "7........1", s[len(s)-Width:])

	b.Clear()
	assert.Equal(t, 0, b.Occupied())
}
