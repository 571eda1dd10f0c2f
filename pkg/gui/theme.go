package gui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Terminal safe color palette is available here
// Themes should be limited to the colors defined in this reference
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

var ErrThemeNotFound = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name     string      `json:"name"`
	Orange   tcell.Color `json:"orange"`
	Blue     tcell.Color `json:"blue"`
	Yellow   tcell.Color `json:"yellow"`
	Cyan     tcell.Color `json:"cyan"`
	Red      tcell.Color `json:"red"`
	Green    tcell.Color `json:"green"`
	Magenta  tcell.Color `json:"magenta"`
	Ghost    tcell.Color `json:"ghost"`
	Border   tcell.Color `json:"border"`
	Label    tcell.Color `json:"label"`
	Value    tcell.Color `json:"value"`
	Status   tcell.Color `json:"status"`
	GameOver tcell.Color `json:"gameOver"`
}

// ThemeHex is the form a Theme takes in configuration files
type ThemeHex struct {
	Name     string `json:"name"`
	Orange   string `json:"orange"`
	Blue     string `json:"blue"`
	Yellow   string `json:"yellow"`
	Cyan     string `json:"cyan"`
	Red      string `json:"red"`
	Green    string `json:"green"`
	Magenta  string `json:"magenta"`
	Ghost    string `json:"ghost"`
	Border   string `json:"border"`
	Label    string `json:"label"`
	Value    string `json:"value"`
	Status   string `json:"status"`
	GameOver string `json:"gameOver"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.Orange.Hex()),
		fmtHex(t.Blue.Hex()),
		fmtHex(t.Yellow.Hex()),
		fmtHex(t.Cyan.Hex()),
		fmtHex(t.Red.Hex()),
		fmtHex(t.Green.Hex()),
		fmtHex(t.Magenta.Hex()),
		fmtHex(t.Ghost.Hex()),
		fmtHex(t.Border.Hex()),
		fmtHex(t.Label.Hex()),
		fmtHex(t.Value.Hex()),
		fmtHex(t.Status.Hex()),
		fmtHex(t.GameOver.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.Orange),
		tcell.GetColor(t.Blue),
		tcell.GetColor(t.Yellow),
		tcell.GetColor(t.Cyan),
		tcell.GetColor(t.Red),
		tcell.GetColor(t.Green),
		tcell.GetColor(t.Magenta),
		tcell.GetColor(t.Ghost),
		tcell.GetColor(t.Border),
		tcell.GetColor(t.Label),
		tcell.GetColor(t.Value),
		tcell.GetColor(t.Status),
		tcell.GetColor(t.GameOver),
	}
}

// BlockColor returns the color a locked or falling block is drawn with
func (t Theme) BlockColor(b mino.Block) tcell.Color {
	switch b {
	case mino.BlockOrange:
		return t.Orange
	case mino.BlockBlue:
		return t.Blue
	case mino.BlockYellow:
		return t.Yellow
	case mino.BlockCyan:
		return t.Cyan
	case mino.BlockRed:
		return t.Red
	case mino.BlockGreen:
		return t.Green
	case mino.BlockMagenta:
		return t.Magenta
	default:
		return tcell.ColorDefault
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. The built-in themes
// are searched after the provided ones.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}

	return Theme{}, errors.Wrap(ErrThemeNotFound, want)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color208,     // Orange
	tcell.Color27,      // Blue
	tcell.Color226,     // Yellow
	tcell.Color51,      // Cyan
	tcell.Color196,     // Red
	tcell.Color46,      // Green
	tcell.Color165,     // Magenta
	tcell.Color240,     // Ghost
	tcell.Color247,     // Border
	tcell.Color247,     // Label
	tcell.ColorDefault, // Value
	tcell.Color160,     // Status
	tcell.Color196,     // GameOver
}

// ThemeMono draws every block in the terminal's default color
var ThemeMono = Theme{
	"mono",             // Name
	tcell.ColorDefault, // Orange
	tcell.ColorDefault, // Blue
	tcell.ColorDefault, // Yellow
	tcell.ColorDefault, // Cyan
	tcell.ColorDefault, // Red
	tcell.ColorDefault, // Green
	tcell.ColorDefault, // Magenta
	tcell.Color244,     // Ghost
	tcell.ColorDefault, // Border
	tcell.ColorDefault, // Label
	tcell.ColorDefault, // Value
	tcell.ColorDefault, // Status
	tcell.ColorDefault, // GameOver
}

// Themes lists the built-in themes
var Themes = []Theme{ThemeBasic, ThemeMono}
