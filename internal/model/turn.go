// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/genx-tui/internal/util"
)

// =============================================================================
// ROLE TYPE
// =============================================================================

// Role represents the author of a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case RoleUser:
		return "You"
	case RoleModel:
		return "Assistant"
	default:
		return string(r)
	}
}

// =============================================================================
// TURN TYPE
// =============================================================================

// Turn represents a single message in a conversation.
// Content is immutable once the turn is committed; edits go through the
// conversation's ReplaceTurns, never through in-place mutation of a shared
// Turn.
type Turn struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewTurn creates a new turn with a generated ID.
func NewTurn(role Role, content string) *Turn {
	return &Turn{
		ID:        "turn_" + uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserTurn creates a new user turn.
func NewUserTurn(content string) *Turn {
	return NewTurn(RoleUser, content)
}

// NewModelTurn creates a new model turn.
func NewModelTurn(content string) *Turn {
	return NewTurn(RoleModel, content)
}

// WithContent returns a copy of the turn carrying new content.
// The role and timestamp are preserved; the copy keeps the original ID so an
// edited turn remains the "same" turn to the presentation layer.
func (t *Turn) WithContent(content string) *Turn {
	dup := *t
	dup.Content = content
	return &dup
}

// Preview returns a truncated single-line preview of the turn content.
func (t *Turn) Preview(maxWidth int) string {
	return util.TruncateWidth(util.FirstLine(t.Content), maxWidth)
}

// IsEmpty returns true if the turn has no content.
func (t *Turn) IsEmpty() bool {
	return len(t.Content) == 0
}
