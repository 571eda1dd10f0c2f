package gui

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/qnkhuat/tetristerm/pkg/event"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

type Keybinding struct {
	k tcell.Key
	r rune
	m tcell.ModMask

	a event.Action
}

func (kb *Keybinding) matches(ev *tcell.EventKey) bool {
	if kb.k != 0 {
		if kb.k != ev.Key() {
			return false
		}
	} else if ev.Key() != tcell.KeyRune || kb.r != ev.Rune() {
		return false
	}

	return kb.m == 0 || kb.m == ev.Modifiers()
}

type Keybindings []*Keybinding

var DefaultKeybindings = Keybindings{
	{r: 'x', a: event.ActionRotateCW},
	{r: 'X', a: event.ActionRotateCW},
	{k: tcell.KeyUp, a: event.ActionRotateCW},
	{k: tcell.KeyLeft, a: event.ActionMoveLeft},
	{r: 'h', a: event.ActionMoveLeft},
	{r: 'H', a: event.ActionMoveLeft},
	{k: tcell.KeyDown, a: event.ActionSoftDrop},
	{r: 'j', a: event.ActionSoftDrop},
	{r: 'J', a: event.ActionSoftDrop},
	{r: ' ', a: event.ActionHardDrop},
	{r: 'k', a: event.ActionHardDrop},
	{r: 'K', a: event.ActionHardDrop},
	{k: tcell.KeyRight, a: event.ActionMoveRight},
	{r: 'l', a: event.ActionMoveRight},
	{r: 'L', a: event.ActionMoveRight},
}

// Action returns the action bound to ev, or ActionUnknown.
func (kbs Keybindings) Action(ev *tcell.EventKey) event.Action {
	for _, kb := range kbs {
		if kb.matches(ev) {
			return kb.a
		}
	}

	return event.ActionUnknown
}

// parseKey accepts a single character or a tcell key name such as "Left"
// or "Ctrl-A". "Space" is accepted for the space bar.
func parseKey(name string) (*Keybinding, error) {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return &Keybinding{r: r}, nil
	} else if strings.EqualFold(name, "space") {
		return &Keybinding{r: ' '}, nil
	}

	for k, n := range tcell.KeyNames {
		if strings.EqualFold(n, name) {
			return &Keybinding{k: k}, nil
		}
	}

	return nil, errors.Wrap(ErrUnknownKey, name)
}

// ParseKeybindings builds keybindings from a map of action names to key
// names. Actions missing from bindings keep their default keys.
func ParseKeybindings(bindings map[string][]string) (Keybindings, error) {
	if len(bindings) == 0 {
		return DefaultKeybindings, nil
	}

	configured := make(map[event.Action]bool)

	var kbs Keybindings
	for name, keys := range bindings {
		a := event.ParseAction(name)
		if a == event.ActionUnknown {
			return nil, errors.Wrap(ErrUnknownAction, name)
		}
		configured[a] = true

		for _, key := range keys {
			kb, err := parseKey(key)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to bind %s", name)
			}

			kb.a = a
			kbs = append(kbs, kb)
		}
	}

	for _, kb := range DefaultKeybindings {
		if !configured[kb.a] {
			kbs = append(kbs, kb)
		}
	}

	return kbs, nil
}
