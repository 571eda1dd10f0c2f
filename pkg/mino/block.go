package mino

// Block is the value stored in a board cell. BlockNone is empty, every other
// value identifies the piece type that locked there.
type Block int

const (
	BlockNone Block = iota
	BlockOrange
	BlockBlue
	BlockYellow
	BlockCyan
	BlockRed
	BlockGreen
	BlockMagenta

	BlockMax = BlockMagenta
)

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch {
	case b == BlockNone:
		return ' '
	case b.Valid():
		return '█'
	default:
		return '?'
	}
}

// Valid reports whether b may be stored in a board cell.
func (b Block) Valid() bool {
	return b >= BlockNone && b <= BlockMax
}
