package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termsnake/termsnake/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestActionFor(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key      string
		expected core.Action
	}{
		{"up", core.ActionUp},
		{"w", core.ActionUp},
		{"down", core.ActionDown},
		{"s", core.ActionDown},
		{"left", core.ActionLeft},
		{"a", core.ActionLeft},
		{"right", core.ActionRight},
		{"d", core.ActionRight},
		{"enter", core.ActionStart},
		{" ", core.ActionPause},
		{"r", core.ActionRestart},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"p", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := keys.ActionFor(keyMsg(tc.key))
			if got != tc.expected {
				t.Errorf("ActionFor(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestHelpSets(t *testing.T) {
	keys := DefaultKeyMap()

	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	if len(keys.FullHelp()) == 0 {
		t.Error("FullHelp should not be empty")
	}
}
