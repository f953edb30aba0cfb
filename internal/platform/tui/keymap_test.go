package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rainshield/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")}, core.ActionDown, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")}, core.ActionPause, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{tea.KeyMsg{Type: tea.KeyF3}, core.ActionDebug, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v, expected %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestHeldKeys(t *testing.T) {
	h := heldKeys{}
	now := time.Unix(0, 0)

	h.press(core.ActionLeft, now)
	h.press(core.ActionUp, now.Add(50*time.Millisecond))

	frame := core.NewInputFrame()
	h.apply(&frame, now.Add(100*time.Millisecond))
	if x, y := frame.Axis(); x != -1 || y != 1 {
		t.Errorf("Axis() = %d, %d while held, expected -1, 1", x, y)
	}

	frame = core.NewInputFrame()
	h.apply(&frame, now.Add(180*time.Millisecond))
	if x, y := frame.Axis(); x != 0 || y != 1 {
		t.Errorf("Axis() = %d, %d after left expired, expected 0, 1", x, y)
	}
	if _, ok := h[core.ActionLeft]; ok {
		t.Error("expired key should be forgotten")
	}

	h.press(core.ActionDown, now.Add(190*time.Millisecond))
	if _, ok := h[core.ActionUp]; ok {
		t.Error("pressing down should release up")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		key  string
		want MenuAction
	}{
		{"k", MenuActionUp},
		{"j", MenuActionDown},
		{"enter", MenuActionSelect},
		{"tab", MenuActionScoreboard},
		{"q", MenuActionQuit},
	}

	for _, tt := range tests {
		var msg tea.KeyMsg
		switch tt.key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
		}
		if got := km.MapKeyToMenuAction(msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}
