// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory application state.
package store

import (
	"strings"
	"sync"

	"github.com/jeranaias/genx-tui/internal/model"
)

// =============================================================================
// VIEW MODE
// =============================================================================

// ViewMode selects how the artifact panel renders its content.
type ViewMode string

const (
	ViewCode    ViewMode = "code"
	ViewPreview ViewMode = "preview"
)

// ParseViewMode returns the view mode for a string, defaulting to ViewCode.
func ParseViewMode(s string) ViewMode {
	if s == string(ViewPreview) {
		return ViewPreview
	}
	return ViewCode
}

// =============================================================================
// ERRORS
// =============================================================================

// IndexError reports a conversation index outside the conversation list.
// It indicates a caller bug, not a user-facing condition.
type IndexError struct {
	Index int
	Count int
}

// Error implements the error interface.
func (e *IndexError) Error() string {
	return "conversation index out of range"
}

// =============================================================================
// PANEL BOUNDS
// =============================================================================

// PanelBounds configures the artifact panel width limits.
type PanelBounds struct {
	Min     int
	Max     int
	Default int
}

// DefaultPanelBounds returns the default panel width configuration.
func DefaultPanelBounds() PanelBounds {
	return PanelBounds{Min: 30, Max: 120, Default: 48}
}

// =============================================================================
// STORE
// =============================================================================

// Store is the application state container. The zero value is not usable;
// construct with New.
//
// The artifact slot is deliberately process-wide rather than per-conversation:
// switching conversations does not change or clear it, matching the observed
// product behavior.
type Store struct {
	mu sync.Mutex

	// Conversations
	conversations []*model.Conversation
	active        int

	// Live streaming state
	live     strings.Builder
	inFlight bool

	// Artifact panel state
	artifact   string
	viewMode   ViewMode
	panelOpen  bool
	panelWidth int
	bounds     PanelBounds
}

// New creates a store seeded with one empty conversation, matching the
// initial application state.
func New(bounds PanelBounds) *Store {
	if bounds.Min <= 0 || bounds.Max < bounds.Min {
		bounds = DefaultPanelBounds()
	}
	width := bounds.Default
	if width < bounds.Min {
		width = bounds.Min
	}
	if width > bounds.Max {
		width = bounds.Max
	}
	return &Store{
		conversations: []*model.Conversation{model.NewConversation()},
		active:        0,
		viewMode:      ViewCode,
		panelWidth:    width,
		bounds:        bounds,
	}
}

// =============================================================================
// CONVERSATION OPERATIONS
// =============================================================================

// Active returns the active conversation. Callers that start a stream must
// hold on to this reference and commit the reply to it, never to whatever is
// active at completion time.
func (s *Store) Active() *model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations[s.active]
}

// ActiveIndex returns the index of the active conversation.
func (s *Store) ActiveIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// ConversationCount returns the number of conversations.
func (s *Store) ConversationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

// Conversation returns the conversation at index.
func (s *Store) Conversation(index int) (*model.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.conversations) {
		return nil, &IndexError{Index: index, Count: len(s.conversations)}
	}
	return s.conversations[index], nil
}

// Turns returns a snapshot of the active conversation's turn slice.
func (s *Store) Turns() []*model.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.conversations[s.active]
	turns := make([]*model.Turn, len(conv.Turns))
	copy(turns, conv.Turns)
	return turns
}

// ReplaceTurns overwrites the active conversation's full turn sequence.
// The stored conversation and the view exposed by Turns are the same object,
// so there is no separate cache to desync.
func (s *Store) ReplaceTurns(turns []*model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[s.active].ReplaceTurns(turns)
}

// AppendTurn appends a turn to the active conversation.
func (s *Store) AppendTurn(turn *model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[s.active].AddTurn(turn)
}

// AppendTurnTo appends a turn to the given conversation, which need not be
// the active one. Streaming completions use this with the conversation
// captured at send time so a reply cannot land on a conversation the user
// has since navigated away from.
func (s *Store) AppendTurnTo(conv *model.Conversation, turn *model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv.AddTurn(turn)
}

// CreateConversation appends a new empty conversation with a placeholder
// session id, makes it active, and returns its index. The previously active
// conversation is left untouched.
func (s *Store) CreateConversation() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations = append(s.conversations, model.NewConversation())
	s.active = len(s.conversations) - 1
	return s.active
}

// SwitchConversation sets the active index. An out-of-range index is a
// caller bug and returns an IndexError without mutating anything.
func (s *Store) SwitchConversation(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.conversations) {
		return &IndexError{Index: index, Count: len(s.conversations)}
	}
	s.active = index
	return nil
}

// SetSessionID overwrites the session id of the conversation at index.
// Callers must pass the index captured when the conversation was created,
// not one re-derived at callback time, so a delayed assignment cannot land
// on a later-created conversation.
func (s *Store) SetSessionID(index int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.conversations) {
		return &IndexError{Index: index, Count: len(s.conversations)}
	}
	s.conversations[index].SessionID = id
	return nil
}

// SessionID returns the session id of the conversation at index.
func (s *Store) SessionID(index int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.conversations) {
		return "", &IndexError{Index: index, Count: len(s.conversations)}
	}
	return s.conversations[index].SessionID, nil
}

// SearchConversations returns the indices of conversations where any turn's
// content contains the term, case-insensitively. A blank term matches all.
func (s *Store) SearchConversations(term string) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matches []int
	for i, conv := range s.conversations {
		if conv.ContainsFold(term) {
			matches = append(matches, i)
		}
	}
	return matches
}

// =============================================================================
// LIVE BUFFER / IN-FLIGHT
// =============================================================================

// BeginTurn marks a turn in flight. Returns false if one is already in
// flight; the same gate covers send, resend, and edit-resubmit.
func (s *Store) BeginTurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

// EndTurn clears the in-flight flag and the live buffer.
func (s *Store) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.live.Reset()
}

// InFlight reports whether a turn is currently in flight.
func (s *Store) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// AppendLive appends a streamed chunk to the live, uncommitted buffer.
func (s *Store) AppendLive(chunk string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live.WriteString(chunk)
}

// Live returns the accumulated live buffer.
func (s *Store) Live() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.live.String()
}

// ResetLive clears the live buffer without touching the in-flight flag.
func (s *Store) ResetLive() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live.Reset()
}

// =============================================================================
// ARTIFACT PANEL STATE
// =============================================================================

// SetArtifact stores the current code artifact text.
func (s *Store) SetArtifact(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artifact = text
}

// Artifact returns the current code artifact text.
func (s *Store) Artifact() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifact
}

// SetViewMode sets the artifact panel view mode.
func (s *Store) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// GetViewMode returns the artifact panel view mode.
func (s *Store) GetViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// ToggleViewMode flips between code and preview.
func (s *Store) ToggleViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewMode == ViewCode {
		s.viewMode = ViewPreview
	} else {
		s.viewMode = ViewCode
	}
	return s.viewMode
}

// SetPanelOpen sets the artifact panel visibility.
func (s *Store) SetPanelOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panelOpen = open
}

// PanelOpen reports whether the artifact panel is visible.
func (s *Store) PanelOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panelOpen
}

// SetPanelWidth sets the panel width, clamped into the configured bounds.
// Clamping never fails; out-of-range requests land on the nearest bound.
func (s *Store) SetPanelWidth(width int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width < s.bounds.Min {
		width = s.bounds.Min
	}
	if width > s.bounds.Max {
		width = s.bounds.Max
	}
	s.panelWidth = width
}

// PanelWidth returns the current panel width.
func (s *Store) PanelWidth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.panelWidth
}

// PanelBounds returns the configured panel width bounds.
func (s *Store) PanelBounds() PanelBounds {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}
