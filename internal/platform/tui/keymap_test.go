package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

func TestKeyMapMap(t *testing.T) {
	idle := core.GameState{}
	running := core.GameState{Running: true}
	over := core.GameState{Over: true}

	tests := []struct {
		name     string
		key      string
		state    core.GameState
		expected core.Intent
	}{
		{"space starts", " ", idle, core.Start},
		{"enter starts", "enter", idle, core.Start},
		{"space acts while running", " ", running, core.Primary},
		{"enter restarts after game over", "enter", over, core.Restart},
		{"arrow up", "up", running, core.Steer(core.DirUp)},
		{"w", "w", running, core.Steer(core.DirUp)},
		{"s", "s", running, core.Steer(core.DirDown)},
		{"arrow left", "left", running, core.Steer(core.DirLeft)},
		{"a", "a", running, core.Steer(core.DirLeft)},
		{"d", "d", running, core.Steer(core.DirRight)},
		{"plus", "+", running, core.SpeedUp},
		{"equals", "=", running, core.SpeedUp},
		{"minus", "-", running, core.SpeedDown},
		{"unknown key", "x", running, core.Intent{}},
	}

	keys := DefaultKeyMap()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Map(keyPress(tc.key), tc.state); got != tc.expected {
				t.Errorf("Map(%q) = %+v, expected %+v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.MouseMsg
		state    core.GameState
		expected core.Intent
	}{
		{
			name:     "left press starts",
			msg:      tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			expected: core.Start,
		},
		{
			name:     "left press jumps",
			msg:      tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			state:    core.GameState{Running: true},
			expected: core.Primary,
		},
		{
			name: "release is ignored",
			msg:  tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "right button is ignored",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapMouse(tc.msg, tc.state); got != tc.expected {
				t.Errorf("MapMouse() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}
