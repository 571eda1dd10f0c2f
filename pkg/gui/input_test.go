package gui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestDefaultKeybindings(t *testing.T) {
	for ev, want := range map[*tcell.EventKey]event.Action{
		key(tcell.KeyLeft):  event.ActionMoveLeft,
		key(tcell.KeyRight): event.ActionMoveRight,
		key(tcell.KeyDown):  event.ActionSoftDrop,
		key(tcell.KeyUp):    event.ActionRotateCW,
		keyRune(' '):        event.ActionHardDrop,
		keyRune('x'):        event.ActionRotateCW,
		keyRune('h'):        event.ActionMoveLeft,
		keyRune('L'):        event.ActionMoveRight,
		keyRune('z'):        event.ActionUnknown,
		key(tcell.KeyEnter): event.ActionUnknown,
	} {
		assert.Equal(t, want, DefaultKeybindings.Action(ev), ev.Name())
	}
}

func TestParseKeybindings(t *testing.T) {
	kbs, err := ParseKeybindings(map[string][]string{
		"hardDrop": {"Enter", "w"},
		"rotatecw": {"Space"},
	})
	require.NoError(t, err)

	assert.Equal(t, event.ActionHardDrop, kbs.Action(key(tcell.KeyEnter)))
	assert.Equal(t, event.ActionHardDrop, kbs.Action(keyRune('w')))
	assert.Equal(t, event.ActionRotateCW, kbs.Action(keyRune(' ')))
	assert.Equal(t, event.ActionUnknown, kbs.Action(keyRune('x')))
	assert.Equal(t, event.ActionUnknown, kbs.Action(key(tcell.KeyUp)))
	assert.Equal(t, event.ActionMoveLeft, kbs.Action(key(tcell.KeyLeft)))

	kbs, err = ParseKeybindings(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeybindings, kbs)
}

func TestParseKeybindingsErrors(t *testing.T) {
	_, err := ParseKeybindings(map[string][]string{"fly": {"f"}})
	assert.True(t, errors.Is(err, ErrUnknownAction))

	_, err = ParseKeybindings(map[string][]string{"moveLeft": {"NotAKey"}})
	assert.True(t, errors.Is(err, ErrUnknownKey))
}
