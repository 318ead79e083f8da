package ui

import "github.com/gdamore/tcell/v2"

// Action is what a key press should do to the watch face.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionTap
)

// KeyAction classifies a key event. Quit keys exit; every other key press
// counts as a tap gesture and wakes the face.
func KeyAction(key tcell.Key, r rune) Action {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return ActionQuit
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return ActionQuit
	}
	return ActionTap
}
