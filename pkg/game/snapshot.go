package game

import (
	"encoding/json"
	"log"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// PieceView describes a piece for rendering. X and Y are zero for queued
// pieces.
type PieceView struct {
	Name  string     `json:"name"`
	Color mino.Block `json:"color"`
	Mask  mino.Mask  `json:"mask"`
	X     int        `json:"x"`
	Y     int        `json:"y"`
}

// Snapshot is a read-only copy of the state handed to renderers. It shares
// no storage with the engine.
type Snapshot struct {
	Board  [][]mino.Block `json:"board"`
	Piece  PieceView      `json:"piece"`
	GhostY int            `json:"ghostY"`
	Next   []PieceView    `json:"next"`

	Score  int `json:"score"`
	Lines  int `json:"lines"`
	Pieces int `json:"pieces"`

	GameOver bool `json:"gameOver"`
}

func (s *State) Snapshot() Snapshot {
	p := s.Piece

	snap := Snapshot{
		Board: s.Board.Rows(),
		Piece: PieceView{
			Name:  p.Name,
			Color: p.Color,
			Mask:  p.Mask.Copy(),
			X:     p.X,
			Y:     p.Y,
		},
		GhostY:   s.GhostY(),
		Score:    s.Score,
		Lines:    s.Lines,
		Pieces:   s.Pieces,
		GameOver: s.GameOver,
	}

	for _, index := range s.Queue.Peek() {
		d, err := mino.DefinitionAt(index)
		if err != nil {
			log.Panicf("queued piece: %+v", err)
		}

		snap.Next = append(snap.Next, PieceView{Name: d.Name, Color: d.Color, Mask: d.Mask})
	}

	return snap
}

func (s Snapshot) Encode() json.RawMessage {
	data, err := json.Marshal(s)
	if err != nil {
		log.Panic(err)
	}

	return data
}
