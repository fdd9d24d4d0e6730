package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// KeyMap translates Bubble Tea key messages to game actions.
// Bindings come from the config; Quit is fixed to ctrl+c.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding

	move key.Binding // Help-only summary of the four directions
}

// NewKeyMap builds key bindings from configured key lists.
func NewKeyMap(k config.KeysConfig) KeyMap {
	return KeyMap{
		Left:    binding(k.Left, "left"),
		Right:   binding(k.Right, "right"),
		Up:      binding(k.Up, "up"),
		Down:    binding(k.Down, "down"),
		Confirm: binding(k.Confirm, "new game"),
		Cancel:  binding(k.Cancel, "quit"),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		move: key.NewBinding(
			key.WithKeys(slices.Concat(k.Left, k.Right, k.Up, k.Down)...),
			key.WithHelp(strings.Join([]string{first(k.Left), first(k.Right), first(k.Up), first(k.Down)}, "/"), "move"),
		),
	}
}

func first(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// MapKey translates a key message to an action.
// Unbound keys map to ActionNone. Quit is handled by the caller.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Cancel):
		return core.ActionCancel
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.move, k.Confirm, k.Cancel}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Confirm, k.Cancel, k.Quit},
	}
}
