package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Action     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Faster     key.Binding
	Slower     key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Action: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/action"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "slower"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Action, k.Back, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Action, k.Up, k.Down, k.Left, k.Right},
		{k.Faster, k.Slower},
		{k.Back, k.Screenshot, k.Help, k.Quit},
	}
}

// Map translates a key press into an intent for a game in state st.
// The action key resolves to start, restart or the in-game primary action.
// Keys the games do not use yield core.IntentNone.
func (k KeyMap) Map(msg tea.KeyMsg, st core.GameState) core.Intent {
	switch {
	case key.Matches(msg, k.Action):
		return core.ResolvePrimary(st)
	case key.Matches(msg, k.Up):
		return core.Steer(core.DirUp)
	case key.Matches(msg, k.Down):
		return core.Steer(core.DirDown)
	case key.Matches(msg, k.Left):
		return core.Steer(core.DirLeft)
	case key.Matches(msg, k.Right):
		return core.Steer(core.DirRight)
	case key.Matches(msg, k.Faster):
		return core.SpeedUp
	case key.Matches(msg, k.Slower):
		return core.SpeedDown
	}
	return core.Intent{}
}

// MapMouse treats a left-button press as the action key.
func MapMouse(msg tea.MouseMsg, st core.GameState) core.Intent {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ResolvePrimary(st)
	}
	return core.Intent{}
}
