// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the Bubble Tea message types used by the chat interface:
//   - Streaming: controller events forwarded from the notifier, and turn
//     submission results
//   - Session: session id assignment for new conversations
//   - Export: transcript export completion
//   - Config: live configuration reload
package chat

import (
	"github.com/jeranaias/genx-tui/internal/config"
	"github.com/jeranaias/genx-tui/internal/controller"
)

// =============================================================================
// STREAMING MESSAGES
// =============================================================================

// StreamEventMsg wraps a controller event for delivery into the Bubble Tea
// loop. The notifier runs on the streaming goroutine; main forwards events
// with Program.Send so they arrive here serialized.
type StreamEventMsg struct {
	Event controller.Event
}

// SubmitResultMsg reports that a submit operation finished. Started is false
// when the submission was rejected (blank text or a turn already in flight).
type SubmitResultMsg struct {
	Started bool
}

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionCreatedMsg reports that a new conversation was created and its
// session id resolved (or left as the placeholder on backend error).
type SessionCreatedMsg struct {
	Index int
}

// =============================================================================
// EXPORT MESSAGES
// =============================================================================

// ExportDoneMsg reports the result of a transcript export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// =============================================================================
// CONFIG MESSAGES
// =============================================================================

// ConfigReloadedMsg delivers a freshly loaded configuration after the config
// file changed on disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}
