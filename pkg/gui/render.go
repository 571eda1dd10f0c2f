package gui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var (
	renderEmpty = []byte("  ")
	renderSolid = "██"
	renderGhost = "░░"

	renderHLine    = "─"
	renderVLine    = "│"
	renderULCorner = "┌"
	renderURCorner = "┐"
	renderLLCorner = "└"
	renderLRCorner = "┘"
)

// colorTag returns the tview color tag for c. The terminal default resets
// the foreground.
func colorTag(c tcell.Color) string {
	if c.Hex() < 0 {
		return "[-]"
	}

	return fmt.Sprintf("[#%06x]", c.Hex())
}

func colored(c tcell.Color, s string) string {
	return colorTag(c) + s + "[-]"
}

// RenderBoard draws the board with the falling piece and its ghost as
// tview color-tagged text, each cell two columns wide.
func RenderBoard(snap game.Snapshot, t Theme) string {
	var buf bytes.Buffer

	h := len(snap.Board)
	if h == 0 {
		return ""
	}
	w := len(snap.Board[0])

	overlay := make(map[mino.Point]string)
	p := snap.Piece
	if !snap.GameOver {
		for _, c := range p.Mask.Cells() {
			overlay[mino.Point{X: p.X + c.X, Y: snap.GhostY + c.Y}] = colored(t.Ghost, renderGhost)
		}
	}
	for _, c := range p.Mask.Cells() {
		overlay[mino.Point{X: p.X + c.X, Y: p.Y + c.Y}] = colored(t.BlockColor(p.Color), renderSolid)
	}

	buf.WriteString(colorTag(t.Border))
	buf.WriteString(renderULCorner)
	buf.WriteString(strings.Repeat(renderHLine, w*len(renderEmpty)))
	buf.WriteString(renderURCorner)
	buf.WriteString("[-]\n")

	for y := 0; y < h; y++ {
		buf.WriteString(colored(t.Border, renderVLine))

		for x := 0; x < w; x++ {
			if s, ok := overlay[mino.Point{X: x, Y: y}]; ok {
				buf.WriteString(s)
			} else if b := snap.Board[y][x]; b != mino.BlockNone {
				buf.WriteString(colored(t.BlockColor(b), renderSolid))
			} else {
				buf.Write(renderEmpty)
			}
		}

		buf.WriteString(colored(t.Border, renderVLine))
		buf.WriteRune('\n')
	}

	buf.WriteString(colorTag(t.Border))
	buf.WriteString(renderLLCorner)
	buf.WriteString(strings.Repeat(renderHLine, w*len(renderEmpty)))
	buf.WriteString(renderLRCorner)
	buf.WriteString("[-]")

	return buf.String()
}

// RenderPiece draws a piece's mask alone, one line per mask row.
func RenderPiece(v game.PieceView, t Theme) string {
	var buf bytes.Buffer

	w, h := v.Mask.Size()
	for y := 0; y < h; y++ {
		if y > 0 {
			buf.WriteRune('\n')
		}

		for x := 0; x < w; x++ {
			if v.Mask.At(x, y) {
				buf.WriteString(colored(t.BlockColor(v.Color), renderSolid))
			} else {
				buf.Write(renderEmpty)
			}
		}
	}

	return buf.String()
}

// RenderSide draws the player's name, statistics and the next pieces.
func RenderSide(snap game.Snapshot, t Theme, name string) string {
	var buf bytes.Buffer

	field := func(label string, value interface{}) {
		fmt.Fprintf(&buf, "%s\n%s\n\n", colored(t.Label, label), colored(t.Value, fmt.Sprint(value)))
	}

	field("Player", name)
	field("Score", snap.Score)
	field("Lines", snap.Lines)
	field("Pieces", snap.Pieces)

	buf.WriteString(colored(t.Label, "Next"))
	buf.WriteRune('\n')
	for _, v := range snap.Next {
		buf.WriteString(RenderPiece(v, t))
		buf.WriteString("\n\n")
	}

	if snap.GameOver {
		buf.WriteString(colored(t.GameOver, "GAME OVER"))
		buf.WriteRune('\n')
		buf.WriteString(colored(t.Label, "r restart  q quit"))
	}

	return buf.String()
}
