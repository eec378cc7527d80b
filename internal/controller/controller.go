// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package controller orchestrates conversation turns.
package controller

import (
	"context"
	"strings"

	"github.com/jeranaias/genx-tui/internal/artifact"
	"github.com/jeranaias/genx-tui/internal/backend"
	"github.com/jeranaias/genx-tui/internal/model"
	"github.com/jeranaias/genx-tui/internal/store"
)

// ErrorTurnContent is committed as the model turn when the stream fails.
// The literal is part of the product surface; transcripts show it as if the
// assistant had replied with it.
const ErrorTurnContent = "[Error: failed to connect to backend]"

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Backend is the slice of the backend client the controller needs.
// *backend.Client satisfies it; tests substitute fakes.
type Backend interface {
	NewChat(ctx context.Context) (string, error)
	StreamReply(ctx context.Context, sessionID, text string, callback backend.ChunkCallback) error
}

// =============================================================================
// EVENTS
// =============================================================================

// EventKind identifies a controller event.
type EventKind int

const (
	// EventChunk: a stream chunk was appended to the live buffer.
	EventChunk EventKind = iota
	// EventCommitted: the reply was committed as a model turn.
	EventCommitted
	// EventFailed: the stream failed; the sentinel turn was committed.
	EventFailed
)

// Event notifies the presentation layer of streaming progress. Events for
// one turn are delivered in order from the streaming goroutine.
type Event struct {
	Kind         EventKind
	Chunk        string
	Err          error
	Conversation *model.Conversation
}

// Notifier receives controller events. A nil notifier is valid.
type Notifier func(Event)

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller drives conversation turns against the store and the backend.
type Controller struct {
	store   *store.Store
	backend Backend
	notify  Notifier
}

// New creates a controller. notify may be nil.
func New(st *store.Store, be Backend, notify Notifier) *Controller {
	return &Controller{store: st, backend: be, notify: notify}
}

// SetNotifier replaces the event notifier. Intended for wiring the TUI
// program after construction; not safe to call mid-stream.
func (c *Controller) SetNotifier(notify Notifier) {
	c.notify = notify
}

func (c *Controller) emit(ev Event) {
	if c.notify != nil {
		c.notify(ev)
	}
}

// =============================================================================
// SUBMIT OPERATIONS
// =============================================================================

// Send submits text as a new user turn on the active conversation and
// drives the reply stream to completion. Blank text or an in-flight turn is
// a silent no-op; the return value reports whether a turn was started.
//
// Send blocks until the stream resolves; callers that must stay responsive
// run it on a goroutine and observe progress through the notifier.
func (c *Controller) Send(ctx context.Context, text string) bool {
	return c.submit(ctx, text)
}

// Resend submits historical text as a fresh user turn. The original turn is
// not mutated or removed. Identical contract to Send.
func (c *Controller) Resend(ctx context.Context, text string) bool {
	return c.submit(ctx, text)
}

// EditResubmit replaces the turn at index with newText (role preserved),
// truncates the active conversation to turns [0..index], then resends
// newText as a fresh user turn. After truncation the conversation therefore
// holds the edited turn at index and a new user turn at index+1 with the
// same text. That duplication is the long-observed behavior and is kept
// deliberately; collapsing it to a replace-in-place would change transcripts.
func (c *Controller) EditResubmit(ctx context.Context, index int, newText string) bool {
	if strings.TrimSpace(newText) == "" {
		return false
	}
	if !c.store.BeginTurn() {
		return false
	}

	turns := c.store.Turns()
	if index < 0 || index >= len(turns) {
		c.store.EndTurn()
		return false
	}

	truncated := make([]*model.Turn, index+1)
	copy(truncated, turns[:index+1])
	truncated[index] = turns[index].WithContent(newText)
	c.store.ReplaceTurns(truncated)

	c.start(ctx, newText)
	return true
}

// submit is the shared Send/Resend path.
func (c *Controller) submit(ctx context.Context, text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	if !c.store.BeginTurn() {
		return false
	}
	c.start(ctx, text)
	return true
}

// start appends the user turn and drives the stream. The caller has already
// acquired the in-flight flag.
func (c *Controller) start(ctx context.Context, text string) {
	c.store.AppendTurn(model.NewUserTurn(text))

	// Capture the conversation and session id now. The reply must land here
	// no matter where the user navigates while the stream is open.
	conv := c.store.Active()
	sessionID := conv.SessionID

	c.store.ResetLive()
	defer c.store.EndTurn()

	err := c.backend.StreamReply(ctx, sessionID, text, func(chunk string) {
		c.store.AppendLive(chunk)
		c.emit(Event{Kind: EventChunk, Chunk: chunk, Conversation: conv})
	})

	if err != nil {
		c.store.AppendTurnTo(conv, model.NewModelTurn(ErrorTurnContent))
		c.emit(Event{Kind: EventFailed, Err: err, Conversation: conv})
		return
	}

	reply := c.store.Live()
	c.store.AppendTurnTo(conv, model.NewModelTurn(reply))

	if code, ok := artifact.Extract(reply); ok {
		c.store.SetArtifact(code)
		c.store.SetPanelOpen(true)
	}

	c.emit(Event{Kind: EventCommitted, Conversation: conv})
}

// =============================================================================
// CONVERSATION MANAGEMENT
// =============================================================================

// NewConversation creates an empty conversation, makes it active, and asks
// the backend for a session id. The target index is captured as a value
// before the network round trip, so a second create racing the first cannot
// receive the wrong id. If the backend is unreachable the conversation is
// still usable with its placeholder session id.
func (c *Controller) NewConversation(ctx context.Context) int {
	index := c.store.CreateConversation()

	sessionID, err := c.backend.NewChat(ctx)
	if err != nil {
		return index
	}
	// The captured index stays valid: conversations are never removed.
	_ = c.store.SetSessionID(index, sessionID)
	return index
}
