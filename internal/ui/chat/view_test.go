// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/genx-tui/internal/config"
	"github.com/jeranaias/genx-tui/internal/controller"
	"github.com/jeranaias/genx-tui/internal/model"
	"github.com/jeranaias/genx-tui/internal/store"
	"github.com/jeranaias/genx-tui/internal/ui/styles"
)

func newTestModel() (Model, *store.Store) {
	st := store.New(store.DefaultPanelBounds())
	ctrl := controller.New(st, nil, nil)
	m := New(st, ctrl, config.Default(), styles.NewTheme())
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(Model), st
}

func TestTranscriptShowsTurnContent(t *testing.T) {
	m, st := newTestModel()
	st.AppendTurn(model.NewUserTurn("hello there"))
	st.AppendTurn(model.NewModelTurn("general reply"))

	out := m.renderTranscript()
	if !strings.Contains(out, "hello there") {
		t.Error("missing user turn content")
	}
	if !strings.Contains(out, "general reply") {
		t.Error("missing model turn content")
	}
	if !strings.Contains(out, "You") || !strings.Contains(out, "Assistant") {
		t.Error("missing role labels")
	}
}

func TestTranscriptReplacesFencedCodeWithHint(t *testing.T) {
	m, st := newTestModel()
	st.AppendTurn(model.NewModelTurn("```python\nsecret_code()\n```"))

	out := m.renderTranscript()
	if !strings.Contains(out, ArtifactHint) {
		t.Error("missing artifact hint for fenced model turn")
	}
	if strings.Contains(out, "secret_code()") {
		t.Error("fenced code rendered in transcript instead of the panel")
	}
}

func TestTranscriptKeepsFencedCodeInUserTurns(t *testing.T) {
	m, st := newTestModel()
	st.AppendTurn(model.NewUserTurn("what does ```python\nfoo()\n``` do?"))

	out := m.renderTranscript()
	if strings.Contains(out, ArtifactHint) {
		t.Error("user turn replaced with artifact hint")
	}
}

func TestTranscriptShowsLiveBuffer(t *testing.T) {
	m, st := newTestModel()
	st.BeginTurn()
	st.AppendLive("partial re")
	defer st.EndTurn()

	out := m.renderTranscript()
	if !strings.Contains(out, "partial re") {
		t.Error("live buffer not rendered")
	}
}

func TestPanelRendersArtifactCode(t *testing.T) {
	m, st := newTestModel()
	st.SetArtifact("print(1)")
	st.SetPanelOpen(true)

	out := m.renderPanel()
	if !strings.Contains(out, "Artifact") {
		t.Error("missing panel title")
	}
}

func TestRailFiltersConversations(t *testing.T) {
	m, st := newTestModel()
	st.AppendTurn(model.NewUserTurn("about golang"))
	st.CreateConversation()
	st.AppendTurn(model.NewUserTurn("about rust"))

	m.railSearch.SetValue("golang")
	m.refreshRail()

	if len(m.railMatches) != 1 || m.railMatches[0] != 0 {
		t.Errorf("matches = %v, want [0]", m.railMatches)
	}

	m.railSearch.SetValue("")
	m.refreshRail()
	if len(m.railMatches) != 2 {
		t.Errorf("blank search matched %d conversations, want 2", len(m.railMatches))
	}
}

func TestConfigReloadUpdatesPanelWidth(t *testing.T) {
	m, st := newTestModel()

	cfg := config.Default()
	cfg.UI.PanelWidth = 60
	updated, _ := m.Update(ConfigReloadedMsg{Config: cfg})
	m = updated.(Model)

	if st.PanelWidth() != 60 {
		t.Errorf("panel width = %d, want 60", st.PanelWidth())
	}
}

func TestViewRendersAllRegions(t *testing.T) {
	m, st := newTestModel()
	st.AppendTurn(model.NewUserTurn("hi"))
	m.syncViewport()

	out := m.View()
	if !strings.Contains(out, "GenX") {
		t.Error("missing header")
	}
	if !strings.Contains(out, "C-n") {
		t.Error("missing shortcut hints")
	}
}
