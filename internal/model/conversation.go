// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlaceholderSessionID is the local session identifier a conversation carries
// until the backend assigns a real one via /new-chat.
const PlaceholderSessionID = "default"

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds an ordered sequence of turns paired with one backend
// session identifier. The session identifier starts as the local placeholder
// and is overwritten once the backend responds.
type Conversation struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Turns []*Turn `json:"turns"`
}

// NewConversation creates a new empty conversation with a placeholder
// session identifier.
func NewConversation() *Conversation {
	now := time.Now()
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		SessionID: PlaceholderSessionID,
		CreatedAt: now,
		UpdatedAt: now,
		Turns:     make([]*Turn, 0),
	}
}

// =============================================================================
// TURN MANAGEMENT
// =============================================================================

// AddTurn appends a turn to the conversation.
func (c *Conversation) AddTurn(t *Turn) {
	c.Turns = append(c.Turns, t)
	c.UpdatedAt = time.Now()
}

// ReplaceTurns overwrites the conversation's full turn sequence.
// Used by the edit-truncation flow; the slice is used as-is.
func (c *Conversation) ReplaceTurns(turns []*Turn) {
	c.Turns = turns
	c.UpdatedAt = time.Now()
}

// LastTurn returns the most recent turn, or nil if empty.
func (c *Conversation) LastTurn() *Turn {
	if len(c.Turns) == 0 {
		return nil
	}
	return c.Turns[len(c.Turns)-1]
}

// LastUserTurn returns the most recent user turn and its index, or nil and -1.
func (c *Conversation) LastUserTurn() (*Turn, int) {
	for i := len(c.Turns) - 1; i >= 0; i-- {
		if c.Turns[i].Role == RoleUser {
			return c.Turns[i], i
		}
	}
	return nil, -1
}

// TurnCount returns the number of turns.
func (c *Conversation) TurnCount() int {
	return len(c.Turns)
}

// IsEmpty returns true if there are no turns.
func (c *Conversation) IsEmpty() bool {
	return len(c.Turns) == 0
}

// =============================================================================
// DISPLAY HELPERS
// =============================================================================

// Title returns a preview of the first user turn, or a default for empty
// conversations.
func (c *Conversation) Title(maxWidth int) string {
	for _, t := range c.Turns {
		if t.Role == RoleUser && t.Content != "" {
			return t.Preview(maxWidth)
		}
	}
	return "New conversation"
}

// ContainsFold reports whether any turn's content contains the term,
// case-insensitively. A blank term matches every conversation.
func (c *Conversation) ContainsFold(term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, t := range c.Turns {
		if strings.Contains(strings.ToLower(t.Content), term) {
			return true
		}
	}
	return false
}
