package event

import "strings"

type Action int

const (
	ActionUnknown Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotateCW
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	default:
		return "Unknown"
	}
}

// ParseAction returns the action named s, ignoring case. Unrecognized names
// return ActionUnknown.
func ParseAction(s string) Action {
	for a := ActionMoveLeft; a <= ActionRotateCW; a++ {
		if strings.EqualFold(a.String(), s) {
			return a
		}
	}

	return ActionUnknown
}
