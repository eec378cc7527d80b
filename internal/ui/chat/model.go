// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/genx-tui/internal/config"
	"github.com/jeranaias/genx-tui/internal/controller"
	"github.com/jeranaias/genx-tui/internal/store"
	"github.com/jeranaias/genx-tui/internal/ui/styles"
)

// =============================================================================
// FOCUS
// =============================================================================

// focusArea identifies which part of the UI receives key input.
type focusArea int

const (
	focusInput focusArea = iota // typing into the message input
	focusRail                   // navigating the conversation rail
)

// railWidth is the fixed width of the conversation rail in columns.
const railWidth = 28

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// Collaborators
	store *store.Store
	ctrl  *controller.Controller
	cfg   *config.Config

	// Styling
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// UI components
	viewport   viewport.Model
	input      textinput.Model
	spinner    spinner.Model
	railSearch textinput.Model

	// Key bindings
	keyMap KeyMap

	// Focus and rail state
	focus       focusArea
	railOpen    bool
	railMatches []int
	railCursor  int

	// Edit state. When editing, submit resubmits the turn at editIndex
	// instead of sending new text.
	editing   bool
	editIndex int

	// Streaming display state
	streaming bool

	// Status line message (export results, rejections)
	statusMsg string

	// Markdown renderer for the artifact preview
	renderer *glamour.TermRenderer
}

// New creates the chat model.
func New(st *store.Store, ctrl *controller.Controller, cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask anything. Use Ctrl+N for a new conversation."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 0
	input.Focus()

	railSearch := textinput.New()
	railSearch.Placeholder = "search conversations"
	railSearch.Prompt = "/ "
	railSearch.PlaceholderStyle = theme.InputPlaceholder

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Streaming

	return Model{
		store:      st,
		ctrl:       ctrl,
		cfg:        cfg,
		theme:      theme,
		input:      input,
		railSearch: railSearch,
		spinner:    sp,
		keyMap:     DefaultKeyMap(),
		focus:      focusInput,
		editIndex:  -1,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// initRenderer builds the glamour renderer for the current panel width.
// Glamour renderers are cheap to rebuild and wrap is width-dependent.
func (m *Model) initRenderer() {
	wrap := m.store.PanelWidth() - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		m.renderer = nil
		return
	}
	m.renderer = renderer
}

// refreshRail recomputes the rail match list for the current search term,
// keeping the cursor in range.
func (m *Model) refreshRail() {
	m.railMatches = m.store.SearchConversations(m.railSearch.Value())
	if m.railCursor >= len(m.railMatches) {
		m.railCursor = len(m.railMatches) - 1
	}
	if m.railCursor < 0 {
		m.railCursor = 0
	}
}
