// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat interface.
type KeyMap struct {
	Submit      key.Binding
	Quit        key.Binding
	NewConv     key.Binding
	ToggleRail  key.Binding
	TogglePanel key.Binding
	ToggleView  key.Binding
	PanelNarrow key.Binding
	PanelWiden  key.Binding
	Resend      key.Binding
	Edit        key.Binding
	Export      key.Binding
	Cancel      key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
}

// DefaultKeyMap returns the default key bindings for the chat interface.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
		NewConv: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "new conversation"),
		),
		ToggleRail: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "conversations"),
		),
		TogglePanel: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "artifact panel"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "code/preview"),
		),
		PanelNarrow: key.NewBinding(
			key.WithKeys("ctrl+left"),
			key.WithHelp("C-left", "narrow panel"),
		),
		PanelWiden: key.NewBinding(
			key.WithKeys("ctrl+right"),
			key.WithHelp("C-right", "widen panel"),
		),
		Resend: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "resend last"),
		),
		Edit: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("C-e", "edit last"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "export"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "scroll down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page down"),
		),
	}
}
