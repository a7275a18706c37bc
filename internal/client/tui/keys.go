package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings of the users dashboard.
type KeyMap struct {
	PrevPage key.Binding
	NextPage key.Binding
	Up       key.Binding
	Down     key.Binding

	// Filter (admin only).
	FilterActivate key.Binding
	FilterField    key.Binding // Cycle email/phone.
	FilterClear    key.Binding // Clear the text, then leave filter mode.
	FilterConfirm  key.Binding

	// Row actions.
	Delete        key.Binding // Ask to delete the selected row (admin only).
	ConfirmDelete key.Binding

	Reload  key.Binding
	Dismiss key.Binding
	Logout  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev page"),
	),
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next page"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "down"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "field"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
	FilterConfirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "done"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	ConfirmDelete: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "dismiss"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logout"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
