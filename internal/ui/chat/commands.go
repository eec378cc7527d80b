// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/genx-tui/internal/controller"
	"github.com/jeranaias/genx-tui/internal/export"
	"github.com/jeranaias/genx-tui/internal/model"
)

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// The controller blocks until the stream resolves, so every submit command
// runs on the command goroutine Bubble Tea provides. Chunk progress arrives
// separately through the notifier as StreamEventMsg.

// sendCmd submits text as a new user turn.
func sendCmd(ctrl *controller.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		started := ctrl.Send(context.Background(), text)
		return SubmitResultMsg{Started: started}
	}
}

// resendCmd resubmits historical text as a fresh user turn.
func resendCmd(ctrl *controller.Controller, text string) tea.Cmd {
	return func() tea.Msg {
		started := ctrl.Resend(context.Background(), text)
		return SubmitResultMsg{Started: started}
	}
}

// editCmd rewrites the turn at index and resubmits.
func editCmd(ctrl *controller.Controller, index int, text string) tea.Cmd {
	return func() tea.Msg {
		started := ctrl.EditResubmit(context.Background(), index, text)
		return SubmitResultMsg{Started: started}
	}
}

// newConversationCmd creates a conversation and resolves its session id.
func newConversationCmd(ctrl *controller.Controller) tea.Cmd {
	return func() tea.Msg {
		index := ctrl.NewConversation(context.Background())
		return SessionCreatedMsg{Index: index}
	}
}

// exportCmd writes the conversation transcript to dir.
func exportCmd(conv *model.Conversation, format, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.ExportToFile(conv, export.ForFormat(format), dir)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
