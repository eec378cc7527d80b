// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"errors"
	"testing"

	"github.com/jeranaias/genx-tui/internal/model"
)

func newStore() *Store {
	return New(DefaultPanelBounds())
}

func TestNewStoreSeedsOneEmptyConversation(t *testing.T) {
	s := newStore()

	if s.ConversationCount() != 1 {
		t.Fatalf("count = %d, want 1", s.ConversationCount())
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("active = %d, want 0", s.ActiveIndex())
	}
	if !s.Active().IsEmpty() {
		t.Error("seeded conversation not empty")
	}
	if id, _ := s.SessionID(0); id != model.PlaceholderSessionID {
		t.Errorf("session id = %q, want placeholder", id)
	}
	if s.GetViewMode() != ViewCode {
		t.Errorf("view mode = %s, want code", s.GetViewMode())
	}
	if s.PanelOpen() {
		t.Error("panel open initially")
	}
}

func TestCreateConversationPreservesPrevious(t *testing.T) {
	s := newStore()
	s.AppendTurn(model.NewUserTurn("kept"))

	index := s.CreateConversation()
	if index != 1 {
		t.Fatalf("index = %d, want 1", index)
	}
	if s.ActiveIndex() != 1 {
		t.Errorf("active = %d, want 1", s.ActiveIndex())
	}
	if !s.Active().IsEmpty() {
		t.Error("new conversation not empty")
	}

	prev, err := s.Conversation(0)
	if err != nil {
		t.Fatal(err)
	}
	if prev.TurnCount() != 1 || prev.Turns[0].Content != "kept" {
		t.Error("previous conversation lost its turns")
	}
}

func TestSwitchConversation(t *testing.T) {
	s := newStore()
	s.CreateConversation()

	if err := s.SwitchConversation(0); err != nil {
		t.Fatal(err)
	}
	if s.ActiveIndex() != 0 {
		t.Errorf("active = %d, want 0", s.ActiveIndex())
	}

	var indexErr *IndexError
	for _, index := range []int{-1, 2, 99} {
		err := s.SwitchConversation(index)
		if err == nil {
			t.Errorf("SwitchConversation(%d) succeeded", index)
			continue
		}
		if !errors.As(err, &indexErr) {
			t.Errorf("SwitchConversation(%d) error %T, want IndexError", index, err)
		}
		if s.ActiveIndex() != 0 {
			t.Error("failed switch mutated the active index")
		}
	}
}

func TestSessionIDByIndex(t *testing.T) {
	s := newStore()
	second := s.CreateConversation()

	if err := s.SetSessionID(second, "sess-b"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSessionID(0, "sess-a"); err != nil {
		t.Fatal(err)
	}

	if id, _ := s.SessionID(0); id != "sess-a" {
		t.Errorf("session 0 = %q", id)
	}
	if id, _ := s.SessionID(second); id != "sess-b" {
		t.Errorf("session 1 = %q", id)
	}

	if err := s.SetSessionID(5, "x"); err == nil {
		t.Error("out-of-range SetSessionID succeeded")
	}
	if _, err := s.SessionID(-1); err == nil {
		t.Error("out-of-range SessionID succeeded")
	}
}

func TestAppendTurnToTargetsCapturedConversation(t *testing.T) {
	s := newStore()
	captured := s.Active()

	s.CreateConversation()
	s.AppendTurnTo(captured, model.NewModelTurn("landed"))

	first, _ := s.Conversation(0)
	if first.TurnCount() != 1 || first.Turns[0].Content != "landed" {
		t.Error("turn did not land on the captured conversation")
	}
	if !s.Active().IsEmpty() {
		t.Error("turn leaked into the active conversation")
	}
}

func TestTurnsReturnsSnapshot(t *testing.T) {
	s := newStore()
	s.AppendTurn(model.NewUserTurn("a"))

	turns := s.Turns()
	s.AppendTurn(model.NewUserTurn("b"))

	if len(turns) != 1 {
		t.Errorf("snapshot grew with the store: %d", len(turns))
	}
}

func TestBeginEndTurnGate(t *testing.T) {
	s := newStore()

	if !s.BeginTurn() {
		t.Fatal("first BeginTurn failed")
	}
	if s.BeginTurn() {
		t.Error("second BeginTurn succeeded while in flight")
	}
	if !s.InFlight() {
		t.Error("InFlight false during turn")
	}

	s.AppendLive("partial")
	s.EndTurn()

	if s.InFlight() {
		t.Error("InFlight true after EndTurn")
	}
	if s.Live() != "" {
		t.Error("live buffer survived EndTurn")
	}
	if !s.BeginTurn() {
		t.Error("BeginTurn failed after EndTurn")
	}
}

func TestLiveBufferAccumulatesInOrder(t *testing.T) {
	s := newStore()
	for _, chunk := range []string{"a", "b", "c"} {
		s.AppendLive(chunk)
	}
	if s.Live() != "abc" {
		t.Errorf("live = %q, want abc", s.Live())
	}
	s.ResetLive()
	if s.Live() != "" {
		t.Error("ResetLive left content")
	}
}

func TestSearchConversations(t *testing.T) {
	s := newStore()
	s.AppendTurn(model.NewUserTurn("talk about Python"))
	s.CreateConversation()
	s.AppendTurn(model.NewUserTurn("talk about Go"))
	s.CreateConversation() // empty

	if got := s.SearchConversations("python"); len(got) != 1 || got[0] != 0 {
		t.Errorf("python matches = %v", got)
	}
	if got := s.SearchConversations(""); len(got) != 3 {
		t.Errorf("blank term matched %d, want all 3", len(got))
	}
	if got := s.SearchConversations("ruby"); got != nil {
		t.Errorf("ruby matches = %v, want none", got)
	}
}

func TestPanelWidthClamps(t *testing.T) {
	s := newStore()
	bounds := s.PanelBounds()

	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"below min", bounds.Min - 10, bounds.Min},
		{"above max", bounds.Max + 50, bounds.Max},
		{"at min", bounds.Min, bounds.Min},
		{"at max", bounds.Max, bounds.Max},
		{"in range", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.SetPanelWidth(tt.width)
			if got := s.PanelWidth(); got != tt.want {
				t.Errorf("PanelWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestViewModeToggle(t *testing.T) {
	s := newStore()

	if got := s.ToggleViewMode(); got != ViewPreview {
		t.Errorf("first toggle = %s, want preview", got)
	}
	if got := s.ToggleViewMode(); got != ViewCode {
		t.Errorf("second toggle = %s, want code", got)
	}
}

func TestArtifactIsProcessWide(t *testing.T) {
	s := newStore()
	s.SetArtifact("print(1)")

	s.CreateConversation()
	if s.Artifact() != "print(1)" {
		t.Error("artifact cleared by conversation switch")
	}
	_ = s.SwitchConversation(0)
	if s.Artifact() != "print(1)" {
		t.Error("artifact cleared by switching back")
	}
}

func TestParseViewMode(t *testing.T) {
	if ParseViewMode("preview") != ViewPreview {
		t.Error("preview not parsed")
	}
	if ParseViewMode("code") != ViewCode {
		t.Error("code not parsed")
	}
	if ParseViewMode("bogus") != ViewCode {
		t.Error("unknown mode did not default to code")
	}
}

func TestNewStoreRejectsInvalidBounds(t *testing.T) {
	s := New(PanelBounds{Min: 50, Max: 10, Default: 30})
	bounds := s.PanelBounds()
	if bounds != DefaultPanelBounds() {
		t.Errorf("bounds = %+v, want defaults", bounds)
	}
}
