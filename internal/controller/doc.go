// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller orchestrates a conversation turn: append the user turn,
// stream the reply, surface chunks into the live buffer, commit the full
// reply, and route any detected code artifact to the panel.
//
// All three submit operations (Send, Resend, EditResubmit) are gated by a
// single in-flight flag; while a turn is unresolved they are silent no-ops.
// The conversation and session id are captured when the turn starts, so a
// completion always lands on the conversation it was requested for, even if
// the user switches conversations mid-stream. There is no cancellation: an
// opened stream runs to completion or failure.
package controller
