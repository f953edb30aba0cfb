package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainshield/internal/core"
)

// holdFor is how long a directional key counts as held after its last
// press or auto-repeat. Terminals never report key releases.
const holdFor = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "f3", "`":
		return core.ActionDebug, false
	}

	return core.ActionNone, false
}

// isHeld reports whether a is a directional intent rather than a one-shot trigger.
func isHeld(a core.Action) bool {
	switch a {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		return true
	}
	return false
}

// heldKeys latches directional keys between auto-repeats.
type heldKeys map[core.Action]time.Time

// press marks a as held until holdFor after now. Pressing the opposite
// direction releases the previous one.
func (h heldKeys) press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		delete(h, core.ActionRight)
	case core.ActionRight:
		delete(h, core.ActionLeft)
	case core.ActionUp:
		delete(h, core.ActionDown)
	case core.ActionDown:
		delete(h, core.ActionUp)
	}
	h[a] = now.Add(holdFor)
}

// apply sets every action still held at now and forgets expired ones.
func (h heldKeys) apply(frame *core.InputFrame, now time.Time) {
	for a, until := range h {
		if now.After(until) {
			delete(h, a)
			continue
		}
		frame.Set(a)
	}
}

func (h heldKeys) clear() {
	clear(h)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
