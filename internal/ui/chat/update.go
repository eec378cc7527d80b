// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/genx-tui/internal/controller"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.initRenderer()
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case StreamEventMsg:
		return m.handleStreamEvent(msg.Event)

	case SubmitResultMsg:
		if !msg.Started {
			m.streaming = false
			if m.store.InFlight() {
				m.statusMsg = "a reply is already in progress"
			}
		}
		return m, nil

	case SessionCreatedMsg:
		m.refreshRail()
		m.syncViewport()
		return m, nil

	case ExportDoneMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", msg.Err)
		} else {
			m.statusMsg = "exported to " + msg.Path
		}
		return m, nil

	case ConfigReloadedMsg:
		m.cfg = msg.Config
		m.store.SetPanelWidth(msg.Config.UI.PanelWidth)
		m.initRenderer()
		m.recalcLayout()
		m.syncViewport()
		m.statusMsg = "configuration reloaded"
		return m, nil

	case spinner.TickMsg:
		if !m.streaming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleStreamEvent folds a controller event into the view state.
func (m Model) handleStreamEvent(ev controller.Event) (tea.Model, tea.Cmd) {
	switch ev.Kind {
	case controller.EventChunk:
		m.syncViewport()
		return m, nil

	case controller.EventCommitted:
		m.streaming = false
		m.recalcLayout() // artifact detection may have opened the panel
		m.syncViewport()
		return m, nil

	case controller.EventFailed:
		m.streaming = false
		m.syncViewport()
		return m, nil
	}
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.focus == focusRail {
		return m.handleRailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submit()

	case key.Matches(msg, m.keyMap.NewConv):
		m.editing = false
		m.editIndex = -1
		m.input.SetValue("")
		return m, newConversationCmd(m.ctrl)

	case key.Matches(msg, m.keyMap.ToggleRail):
		m.railOpen = !m.railOpen
		if m.railOpen {
			m.focus = focusRail
			m.railSearch.SetValue("")
			m.railSearch.Focus()
			m.input.Blur()
			m.refreshRail()
		} else {
			m.focus = focusInput
			m.input.Focus()
		}
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.TogglePanel):
		m.store.SetPanelOpen(!m.store.PanelOpen())
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.ToggleView):
		m.store.ToggleViewMode()
		return m, nil

	case key.Matches(msg, m.keyMap.PanelNarrow):
		m.store.SetPanelWidth(m.store.PanelWidth() - 4)
		m.initRenderer()
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.PanelWiden):
		m.store.SetPanelWidth(m.store.PanelWidth() + 4)
		m.initRenderer()
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Resend):
		turn, _ := m.store.Active().LastUserTurn()
		if turn == nil {
			return m, nil
		}
		m.streaming = true
		return m, tea.Batch(resendCmd(m.ctrl, turn.Content), m.spinner.Tick)

	case key.Matches(msg, m.keyMap.Edit):
		turn, index := m.store.Active().LastUserTurn()
		if turn == nil {
			return m, nil
		}
		m.editing = true
		m.editIndex = index
		m.input.SetValue(turn.Content)
		m.input.CursorEnd()
		return m, nil

	case key.Matches(msg, m.keyMap.Export):
		dir, err := m.cfg.ExportDir()
		if err != nil {
			m.statusMsg = fmt.Sprintf("export failed: %v", err)
			return m, nil
		}
		return m, exportCmd(m.store.Active(), m.cfg.Export.Format, dir)

	case key.Matches(msg, m.keyMap.Cancel):
		if m.editing {
			m.editing = false
			m.editIndex = -1
			m.input.SetValue("")
		}
		m.statusMsg = ""
		return m, nil

	case key.Matches(msg, m.keyMap.Up),
		key.Matches(msg, m.keyMap.Down),
		key.Matches(msg, m.keyMap.PageUp),
		key.Matches(msg, m.keyMap.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the input value as a send or an edit-resubmit.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.input.Value()

	var cmd tea.Cmd
	if m.editing {
		cmd = editCmd(m.ctrl, m.editIndex, text)
		m.editing = false
		m.editIndex = -1
	} else {
		cmd = sendCmd(m.ctrl, text)
	}

	m.input.SetValue("")
	m.statusMsg = ""
	m.streaming = true
	m.syncViewport()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) handleRailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Up):
		if m.railCursor > 0 {
			m.railCursor--
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		if m.railCursor < len(m.railMatches)-1 {
			m.railCursor++
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		if m.railCursor < len(m.railMatches) {
			// Switching cannot fail for an index from the match list.
			_ = m.store.SwitchConversation(m.railMatches[m.railCursor])
		}
		m.railOpen = false
		m.focus = focusInput
		m.input.Focus()
		m.recalcLayout()
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keyMap.Cancel), key.Matches(msg, m.keyMap.ToggleRail):
		m.railOpen = false
		m.focus = focusInput
		m.input.Focus()
		m.recalcLayout()
		m.syncViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.railSearch, cmd = m.railSearch.Update(msg)
	m.refreshRail()
	return m, cmd
}

// =============================================================================
// LAYOUT
// =============================================================================

// chromeHeight is the vertical space taken by the header, the input box,
// and the status bar.
const chromeHeight = 6

// recalcLayout resizes the viewport for the current rail and panel state.
func (m *Model) recalcLayout() {
	if !m.ready {
		return
	}

	width := m.width
	if m.railOpen {
		width -= railWidth
	}
	if m.store.PanelOpen() {
		width -= m.store.PanelWidth()
	}
	if width < 20 {
		width = 20
	}

	height := m.height - chromeHeight
	if height < 3 {
		height = 3
	}

	m.viewport.Width = width
	m.viewport.Height = height
	m.input.Width = width - 4
}
