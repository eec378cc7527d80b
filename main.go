// genx-tui - A terminal chat interface for the GenX coding assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/genx-tui/internal/backend"
	"github.com/jeranaias/genx-tui/internal/config"
	"github.com/jeranaias/genx-tui/internal/controller"
	"github.com/jeranaias/genx-tui/internal/store"
	"github.com/jeranaias/genx-tui/internal/ui/chat"
	"github.com/jeranaias/genx-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	backendURL := flag.String("backend", "", "backend base URL (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("genx-tui %s (%s, %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: genx-tui requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *backendURL != "" {
		cfg.Backend.URL = *backendURL
	}

	theme := styles.NewTheme()

	client := backend.NewClientWithConfig(&backend.ClientConfig{
		BaseURL: cfg.Backend.URL,
		Timeout: time.Duration(cfg.Backend.TimeoutSecs) * time.Second,
	})

	st := store.New(store.PanelBounds{
		Min:     cfg.UI.PanelMinWidth,
		Max:     cfg.UI.PanelMaxWidth,
		Default: cfg.UI.PanelWidth,
	})
	st.SetViewMode(store.ParseViewMode(cfg.UI.DefaultView))

	ctrl := controller.New(st, client, nil)

	p := tea.NewProgram(
		chat.New(st, ctrl, cfg, theme),
		tea.WithAltScreen(),
	)

	// Streaming events originate on the controller's goroutine; Program.Send
	// serializes them into the update loop.
	ctrl.SetNotifier(func(ev controller.Event) {
		p.Send(chat.StreamEventMsg{Event: ev})
	})

	// Live config reload. Best effort: the TUI keeps working without it.
	if path, err := config.ConfigPath(); err == nil {
		if watcher, err := config.NewWatcher(path, func(next *config.Config) {
			p.Send(chat.ConfigReloadedMsg{Config: next})
		}); err == nil {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
