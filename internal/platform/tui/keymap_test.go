package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestKeyMapMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, ActionLeft},
		{"a", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, ActionRight},
		{"d", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, ActionFire},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, ActionQuit},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{"?", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}, ActionHelp},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.MapKey(tt.msg); got != tt.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    core.Direction
		ok     bool
	}{
		{ActionLeft, core.DirLeft, true},
		{ActionRight, core.DirRight, true},
		{ActionFire, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		d, ok := tt.action.Direction()
		if ok != tt.ok || (ok && d != tt.dir) {
			t.Errorf("Action(%d).Direction() = %v, %v, expected %v, %v", tt.action, d, ok, tt.dir, tt.ok)
		}
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	total := 0
	for _, col := range keys.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp() has %d bindings, expected 6", total)
	}
}
