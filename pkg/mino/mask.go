package mino

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

const (
	maskFilled = '#'
	maskEmpty  = '.'
)

// Mask is a rectangular grid of occupied cells in piece-local coordinates.
// The zero value is an empty 0x0 mask and is never a valid piece shape.
type Mask struct {
	W int // Width
	H int // Height

	cells []bool
}

// NewMask builds a mask from rows of cells. Every row must have the same
// non-zero length and at least one cell must be occupied.
func NewMask(rows [][]bool) (Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Mask{}, errors.Wrap(ErrInvalidShape, "empty mask")
	}

	m := Mask{W: len(rows[0]), H: len(rows)}
	m.cells = make([]bool, m.W*m.H)

	filled := 0
	for y, row := range rows {
		if len(row) != m.W {
			return Mask{}, errors.Wrapf(ErrInvalidShape, "row %d has %d cells, want %d", y, len(row), m.W)
		}

		for x, c := range row {
			m.cells[y*m.W+x] = c
			if c {
				filled++
			}
		}
	}

	if filled == 0 {
		return Mask{}, errors.Wrap(ErrInvalidShape, "mask has no occupied cells")
	}

	return m, nil
}

// ParseMask builds a mask from rows written with '#' for occupied and '.' for
// empty cells.
func ParseMask(rows ...string) (Mask, error) {
	grid := make([][]bool, len(rows))
	for y, row := range rows {
		grid[y] = make([]bool, len(row))
		for x, r := range row {
			switch r {
			case maskFilled:
				grid[y][x] = true
			case maskEmpty:
			default:
				return Mask{}, errors.Wrapf(ErrInvalidShape, "unexpected %q at (%d,%d)", r, x, y)
			}
		}
	}

	return NewMask(grid)
}

// MustParseMask is ParseMask for static shapes. It panics on invalid input.
func MustParseMask(rows ...string) Mask {
	m, err := ParseMask(rows...)
	if err != nil {
		panic(err)
	}

	return m
}

// At reports whether the local cell (x, y) is occupied. Coordinates outside
// the mask are empty.
func (m Mask) At(x int, y int) bool {
	if x < 0 || x >= m.W || y < 0 || y >= m.H {
		return false
	}

	return m.cells[y*m.W+x]
}

func (m Mask) Size() (int, int) {
	return m.W, m.H
}

// Copy returns a mask that shares no storage with m.
func (m Mask) Copy() Mask {
	c := Mask{W: m.W, H: m.H, cells: make([]bool, len(m.cells))}
	copy(c.cells, m.cells)

	return c
}

// RotateCW returns m rotated 90 degrees clockwise. An MxN mask becomes NxM
// with result[x][M-1-y] = source[y][x].
func (m Mask) RotateCW() Mask {
	r := Mask{W: m.H, H: m.W, cells: make([]bool, len(m.cells))}

	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			// Row x, column M-1-y of the rotated mask
			r.cells[x*r.W+(m.H-1-y)] = m.cells[y*m.W+x]
		}
	}

	return r
}

// Rotate applies n clockwise rotations.
func (m Mask) Rotate(n int) Mask {
	n %= 4
	if n < 0 {
		n += 4
	}

	r := m.Copy()
	for i := 0; i < n; i++ {
		r = r.RotateCW()
	}

	return r
}

func (m Mask) Equal(other Mask) bool {
	if m.W != other.W || m.H != other.H {
		return false
	}

	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}

	return true
}

// Cells returns the occupied cells in row-major order.
func (m Mask) Cells() []Point {
	var points []Point
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.cells[y*m.W+x] {
				points = append(points, Point{x, y})
			}
		}
	}

	return points
}

func (m Mask) Rows() []string {
	rows := make([]string, m.H)

	var b strings.Builder
	for y := 0; y < m.H; y++ {
		b.Reset()
		for x := 0; x < m.W; x++ {
			if m.cells[y*m.W+x] {
				b.WriteRune(maskFilled)
			} else {
				b.WriteRune(maskEmpty)
			}
		}
		rows[y] = b.String()
	}

	return rows
}

func (m Mask) String() string {
	return strings.Join(m.Rows(), "\n")
}

func (m Mask) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

func (m *Mask) UnmarshalJSON(data []byte) error {
	var rows []string
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}

	parsed, err := ParseMask(rows...)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
