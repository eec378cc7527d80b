// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/genx-tui/internal/artifact"
	"github.com/jeranaias/genx-tui/internal/controller"
	"github.com/jeranaias/genx-tui/internal/model"
	"github.com/jeranaias/genx-tui/internal/store"
	"github.com/jeranaias/genx-tui/internal/ui/components"
	"github.com/jeranaias/genx-tui/internal/util"
)

// ArtifactHint replaces fenced code in the transcript; the code itself lives
// in the artifact panel.
const ArtifactHint = "Code artifact detected. See the Artifact panel."

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "starting..."
	}

	var columns []string
	if m.railOpen {
		columns = append(columns, m.renderRail())
	}
	columns = append(columns, m.viewport.View())
	if m.store.PanelOpen() {
		columns = append(columns, m.renderPanel())
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderInput(),
		m.renderStatusBar(),
	)
}

// syncViewport re-renders the transcript into the viewport and scrolls to
// the bottom.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// =============================================================================
// HEADER
// =============================================================================

func (m Model) renderHeader() string {
	title := m.store.Active().Title(40)
	count := m.store.ConversationCount()
	index := m.store.ActiveIndex() + 1

	left := m.theme.HeaderTitle.Render("GenX")
	right := fmt.Sprintf("%s  [%d/%d]", title, index, count)

	return m.theme.Header.Width(m.width).Render(left + "  " + right)
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

func (m Model) renderTranscript() string {
	turns := m.store.Turns()
	wrap := m.viewport.Width - 10
	if wrap < 20 {
		wrap = 20
	}

	var sb strings.Builder
	for _, turn := range turns {
		sb.WriteString(m.renderTurn(turn, wrap))
		sb.WriteString("\n")
	}

	// Live reply, not yet committed.
	if m.store.InFlight() {
		live := m.store.Live()
		if live != "" {
			label := m.theme.RoleLabel.Render(model.RoleModel.DisplayName())
			bubble := m.theme.AssistantBubble.Width(wrap).Render(live)
			sb.WriteString(label + "\n" + bubble + "\n")
		}
	}

	return sb.String()
}

func (m Model) renderTurn(turn *model.Turn, wrap int) string {
	label := m.theme.RoleLabel.Render(turn.Role.DisplayName()) +
		" " + m.theme.Timestamp.Render(turn.Timestamp.Format("15:04"))

	content := turn.Content

	var bubble lipgloss.Style
	switch {
	case turn.Role == model.RoleUser:
		bubble = m.theme.UserBubble
	case content == controller.ErrorTurnContent:
		bubble = m.theme.ErrorBubble
	default:
		bubble = m.theme.AssistantBubble
		if artifact.HasFenced(content) {
			content = m.theme.ArtifactHint.Render(ArtifactHint)
		}
	}

	return label + "\n" + bubble.Width(wrap).Render(content) + "\n"
}

// =============================================================================
// CONVERSATION RAIL
// =============================================================================

func (m Model) renderRail() string {
	var sb strings.Builder
	sb.WriteString(m.theme.RailSearch.Render(m.railSearch.View()))
	sb.WriteString("\n")

	if len(m.railMatches) == 0 {
		sb.WriteString(m.theme.RailItem.Render("no matches"))
	}

	active := m.store.ActiveIndex()
	for i, idx := range m.railMatches {
		conv, err := m.store.Conversation(idx)
		if err != nil {
			continue
		}
		title := util.TruncateWidth(conv.Title(railWidth-6), railWidth-6)

		marker := "  "
		if idx == active {
			marker = "* "
		}

		line := marker + title
		if i == m.railCursor {
			line = m.theme.RailItemSelected.Render("> " + title)
		} else {
			line = m.theme.RailItem.Render(line)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return m.theme.Rail.
		Width(railWidth - 2).
		Height(m.viewport.Height).
		Render(sb.String())
}

// =============================================================================
// ARTIFACT PANEL
// =============================================================================

func (m Model) renderPanel() string {
	code := m.store.Artifact()
	width := m.store.PanelWidth()

	var title string
	var body string
	if code == "" {
		title = m.theme.PanelTitle.Render("Artifact")
		body = m.theme.PanelEmpty.Width(width - 4).Render("no artifact yet")
	} else {
		language := artifact.Classify(code)
		title = m.theme.PanelTitle.Render("Artifact") + " " +
			m.theme.PanelBadge.Render(fmt.Sprintf("%s · %s", language, m.store.GetViewMode()))

		switch m.store.GetViewMode() {
		case store.ViewPreview:
			body = m.renderPreview(code)
		default:
			cb := components.NewCodeBlock(language, code)
			cb.MaxWidth = width - 2
			body = cb.Render()
		}
	}

	return m.theme.Panel.
		Width(width - 2).
		Height(m.viewport.Height).
		Render(title + "\n\n" + body)
}

// renderPreview renders the artifact through the markdown renderer. Falls
// back to raw text when rendering fails.
func (m Model) renderPreview(code string) string {
	if m.renderer == nil {
		return code
	}
	out, err := m.renderer.Render(code)
	if err != nil {
		return code
	}
	return strings.TrimSpace(out)
}

// =============================================================================
// INPUT AND STATUS
// =============================================================================

func (m Model) renderInput() string {
	prompt := m.input.View()
	if m.editing {
		prompt = m.theme.Streaming.Render("[edit] ") + prompt
	}
	return m.theme.InputContainer.Width(m.viewport.Width).Render(prompt)
}

func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.streaming || m.store.InFlight():
		left = m.spinner.View() + m.theme.Streaming.Render(" streaming")
	case m.statusMsg != "":
		left = m.statusMsg
	default:
		left = m.theme.ShortcutKey.Render("C-n") + m.theme.ShortcutDesc.Render(" new  ") +
			m.theme.ShortcutKey.Render("C-b") + m.theme.ShortcutDesc.Render(" convs  ") +
			m.theme.ShortcutKey.Render("C-a") + m.theme.ShortcutDesc.Render(" panel  ") +
			m.theme.ShortcutKey.Render("C-t") + m.theme.ShortcutDesc.Render(" view  ") +
			m.theme.ShortcutKey.Render("C-e") + m.theme.ShortcutDesc.Render(" edit  ") +
			m.theme.ShortcutKey.Render("C-r") + m.theme.ShortcutDesc.Render(" resend  ") +
			m.theme.ShortcutKey.Render("C-s") + m.theme.ShortcutDesc.Render(" export")
	}
	return m.theme.StatusBar.Width(m.width).Render(left)
}
