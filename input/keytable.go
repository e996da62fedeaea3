package input

import "github.com/gdamore/tcell/v2"

// Action is a semantic command bound to a key
type Action uint8

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionReset
	ActionZoomIn
	ActionZoomOut
	ActionZoomToggle
	ActionFaster
	ActionSlower
	ActionTrails
	ActionMute
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
)

// keyActions maps special keys
var keyActions = map[tcell.Key]Action{
	tcell.KeyEscape: ActionQuit,
	tcell.KeyCtrlC:  ActionQuit,
	tcell.KeyLeft:   ActionPanLeft,
	tcell.KeyRight:  ActionPanRight,
	tcell.KeyUp:     ActionPanUp,
	tcell.KeyDown:   ActionPanDown,
}

// runeActions maps printable keys; digits are handled as follow targets
var runeActions = map[rune]Action{
	'q': ActionQuit,
	' ': ActionPause,
	'p': ActionPause,
	'r': ActionReset,
	'+': ActionZoomIn,
	'=': ActionZoomIn,
	'-': ActionZoomOut,
	'_': ActionZoomOut,
	'z': ActionZoomToggle,
	']': ActionFaster,
	'[': ActionSlower,
	't': ActionTrails,
	'm': ActionMute,
	'h': ActionPanLeft,
	'l': ActionPanRight,
	'k': ActionPanUp,
	'j': ActionPanDown,
}

// Lookup resolves a key event to an action
func Lookup(key tcell.Key, r rune) Action {
	if key == tcell.KeyRune {
		return runeActions[r]
	}
	return keyActions[key]
}
