package gui

import (
	"encoding/json"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeHex(t *testing.T) {
	for _, theme := range Themes {
		hex := theme.Hex()
		assert.Equal(t, theme.Name, hex.Name)
		assert.Equal(t, hex, hex.Theme().Hex(), theme.Name)
	}

	assert.Equal(t, "#0", ThemeMono.Hex().Orange)
	assert.Equal(t, tcell.ColorDefault, ThemeHex{Orange: "#0"}.Theme().Orange)
}

func TestImportThemes(t *testing.T) {
	var custom []ThemeHex
	require.NoError(t, json.Unmarshal([]byte(`[{"name":"dark","cyan":"#00eeee","ghost":"#0"}]`), &custom))

	theme, err := ImportThemes("dark", custom)
	require.NoError(t, err)
	assert.Equal(t, int32(0x00eeee), theme.Cyan.Hex())
	assert.Equal(t, tcell.ColorDefault, theme.Ghost)

	theme, err = ImportThemes("mono", custom)
	require.NoError(t, err)
	assert.Equal(t, ThemeMono, theme)

	_, err = ImportThemes("missing", custom)
	assert.True(t, errors.Is(err, ErrThemeNotFound))
}

func TestThemeBlockColor(t *testing.T) {
	assert.Equal(t, ThemeBasic.Cyan, ThemeBasic.BlockColor(mino.BlockCyan))
	assert.Equal(t, ThemeBasic.Magenta, ThemeBasic.BlockColor(mino.BlockMagenta))
	assert.Equal(t, tcell.ColorDefault, ThemeBasic.BlockColor(mino.BlockNone))
}
