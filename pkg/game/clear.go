package game

import (
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// FullRows returns the full rows of b from the bottom up. Row 0 is never
// reported.
func FullRows(b *mino.Board) []int {
	var rows []int
	for y := b.H - 1; y > 0; y-- {
		if b.RowIsFull(y) {
			rows = append(rows, y)
		}
	}

	return rows
}

// ScanAndClear removes every full row found in a single scan of b and returns
// how many were removed.
func ScanAndClear(b *mino.Board) (int, error) {
	rows := FullRows(b)

	for i, y := range rows {
		// Each removal below y has already shifted it down by one.
		err := b.RemoveRowAndShiftDown(y + i)
		if err != nil {
			return i, errors.Wrapf(err, "failed to clear row %d", y)
		}
	}

	return len(rows), nil
}

// ScoreDelta returns the score awarded for clearing lines rows at once.
func ScoreDelta(lines int) int {
	switch {
	case lines <= 0:
		return 0
	case lines == 1:
		return 100
	case lines == 2:
		return 300
	case lines == 3:
		return 500
	case lines == 4:
		return 800
	default:
		return 800 + (400 * lines)
	}
}
