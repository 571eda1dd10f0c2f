package game

import (
	"fmt"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Piece is the falling piece. Point is the board position of the mask's
// top-left cell. Mask is a private copy of the catalog shape.
type Piece struct {
	mino.Point

	Index int
	Name  string
	Color mino.Block
	Mask  mino.Mask
}

func NewPiece(index int, rotations int) (*Piece, error) {
	d, err := mino.DefinitionAt(index)
	if err != nil {
		return nil, err
	}

	return &Piece{Index: index, Name: d.Name, Color: d.Color, Mask: d.Mask.Rotate(rotations)}, nil
}

// Cells returns the absolute board positions of the occupied cells.
func (p *Piece) Cells() []mino.Point {
	cells := p.Mask.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.Point)
	}

	return cells
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s at %s", p.Name, p.Point)
}
