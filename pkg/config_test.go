package pkg

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
	"log": "/tmp/tetris.log",
	"seed": 42,
	"theme": "dark",
	"debug": true,
	"themes": [{"name": "dark", "cyan": "#00eeee"}],
	"keybindings": {"hardDrop": ["Enter"]}
}`

func writeConfig(t *testing.T, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(data), 0600))

	return path
}

func TestParseFlagsDefaults(t *testing.T) {
	c, err := ParseFlags(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), c)
	assert.Equal(t, game.LogStandard, c.LogLevel())

	theme, err := c.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, gui.ThemeBasic, theme)

	kbs, err := c.LoadKeybindings()
	require.NoError(t, err)
	assert.Equal(t, gui.DefaultKeybindings, kbs)
}

func TestParseFlagsConfigFile(t *testing.T) {
	path := writeConfig(t, testConfig)

	c, err := ParseFlags([]string{"-config", path, "-seed", "7", "-verbose"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tetris.log", c.LogPath)
	assert.Equal(t, int64(7), c.Seed)
	assert.True(t, c.Debug)
	assert.Equal(t, game.LogVerbose, c.LogLevel())

	theme, err := c.LoadTheme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Name)
	assert.Equal(t, int32(0x00eeee), theme.Cyan.Hex())

	kbs, err := c.LoadKeybindings()
	require.NoError(t, err)
	assert.Equal(t, event.ActionHardDrop, kbs.Action(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
}

func TestParseFlagsErrors(t *testing.T) {
	_, err := ParseFlags([]string{"-config", filepath.Join(t.TempDir(), "missing.json")})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-config", writeConfig(t, "{")})
	assert.Error(t, err)

	_, err = ParseFlags([]string{"-nope"})
	assert.Error(t, err)

	c, err := ParseFlags([]string{"-theme", "missing"})
	require.NoError(t, err)
	_, err = c.LoadTheme()
	assert.ErrorIs(t, err, gui.ErrThemeNotFound)
}
