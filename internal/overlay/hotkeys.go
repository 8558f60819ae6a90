package overlay

import (
	"fmt"
	"strings"
)

// Action is something a hotkey can trigger
type Action int

const (
	ActionToggleClickThrough Action = iota
	ActionReload
	ActionQuit
	ActionToggleDrag
)

func (a Action) String() string {
	switch a {
	case ActionToggleClickThrough:
		return "Toggle click-through"
	case ActionReload:
		return "Reload"
	case ActionQuit:
		return "Quit"
	case ActionToggleDrag:
		return "Toggle drag mode"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Modifier is the modifier key held with a hotkey
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModAlt
)

// Hotkey binds a key, scoped to the overlay window, to an action
type Hotkey struct {
	Key      string // lowercase key name, e.g. "f8" or "q"
	Modifier Modifier
	Action   Action
}

// String renders the hotkey the way it is shown to users
func (h Hotkey) String() string {
	key := strings.ToUpper(h.Key)

	switch h.Modifier {
	case ModCtrl:
		return "Ctrl+" + key
	case ModAlt:
		return "Alt+" + key
	default:
		return key
	}
}

// Hotkeys returns the fixed hotkey table
func Hotkeys() []Hotkey {
	return []Hotkey{
		{Key: "f8", Action: ActionToggleClickThrough},
		{Key: "f5", Action: ActionReload},
		{Key: "q", Modifier: ModCtrl, Action: ActionQuit},
		{Key: "d", Modifier: ModAlt, Action: ActionToggleDrag},
	}
}

// LookupHotkey returns the action bound to a hotkey name as rendered by
// Hotkey.String, ignoring case
func LookupHotkey(name string) (Action, bool) {
	for _, hk := range Hotkeys() {
		if strings.EqualFold(hk.String(), name) {
			return hk.Action, true
		}
	}
	return 0, false
}
