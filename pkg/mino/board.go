package mino

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	Width  = 10
	Height = 20
)

// Board is the fixed grid of locked cells. Row 0 is the top row.
type Board struct {
	W int // Width
	H int // Height

	M []Block // Row-major cells
}

func I(x int, y int, w int) int {
	return (y * w) + x
}

func NewBoard() *Board {
	return &Board{W: Width, H: Height, M: make([]Block, Width*Height)}
}

func (b *Board) inBounds(x int, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

func (b *Board) CellAt(x int, y int) (Block, error) {
	if !b.inBounds(x, y) {
		return BlockNone, errors.Wrapf(ErrOutOfRange, "cell (%d,%d) outside %dx%d board", x, y, b.W, b.H)
	}

	return b.M[I(x, y, b.W)], nil
}

func (b *Board) SetCell(x int, y int, block Block) error {
	if !b.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "cell (%d,%d) outside %dx%d board", x, y, b.W, b.H)
	} else if !block.Valid() {
		return errors.Wrapf(ErrOutOfRange, "block %d not in [0,%d]", block, BlockMax)
	}

	b.M[I(x, y, b.W)] = block
	return nil
}

// IsOccupied reports whether (x, y) blocks a piece. Cells above the board are
// never occupied. Cells beside or below the board are walls and floor.
func (b *Board) IsOccupied(x int, y int) bool {
	if y < 0 {
		return false
	} else if !b.inBounds(x, y) {
		return true
	}

	return b.M[I(x, y, b.W)] != BlockNone
}

func (b *Board) RowIsFull(y int) bool {
	if y < 0 || y >= b.H {
		return false
	}

	for x := 0; x < b.W; x++ {
		if b.M[I(x, y, b.W)] == BlockNone {
			return false
		}
	}

	return true
}

// RemoveRowAndShiftDown deletes row y, moves every row above it down by one
// and inserts an empty row at the top.
func (b *Board) RemoveRowAndShiftDown(y int) error {
	if y < 0 || y >= b.H {
		return errors.Wrapf(ErrOutOfRange, "row %d outside %dx%d board", y, b.W, b.H)
	}

	copy(b.M[b.W:I(0, y+1, b.W)], b.M[:I(0, y, b.W)])
	for x := 0; x < b.W; x++ {
		b.M[x] = BlockNone
	}

	return nil
}

// Occupied returns the number of non-empty cells.
func (b *Board) Occupied() int {
	n := 0
	for _, block := range b.M {
		if block != BlockNone {
			n++
		}
	}

	return n
}

func (b *Board) Clear() {
	for i := range b.M {
		b.M[i] = BlockNone
	}
}

// Copy returns a board that shares no storage with b.
func (b *Board) Copy() *Board {
	c := &Board{W: b.W, H: b.H, M: make([]Block, len(b.M))}
	copy(c.M, b.M)

	return c
}

func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}

	for i := range b.M {
		if b.M[i] != other.M[i] {
			return false
		}
	}

	return true
}

// Rows returns a copy of the cells as rows, top first.
func (b *Board) Rows() [][]Block {
	rows := make([][]Block, b.H)
	for y := range rows {
		rows[y] = make([]Block, b.W)
		copy(rows[y], b.M[I(0, y, b.W):I(0, y+1, b.W)])
	}

	return rows
}

// String renders the board one row per line, top first, using digits for
// locked cells and '.' for empty ones.
func (b *Board) String() string {
	var s strings.Builder

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			block := b.M[I(x, y, b.W)]
			if block == BlockNone {
				s.WriteRune('.')
			} else {
				s.WriteRune(rune('0' + block))
			}
		}

		if y < b.H-1 {
			s.WriteRune('\n')
		}
	}

	return s.String()
}
