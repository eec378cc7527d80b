// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Backend.URL != "http://localhost:5051" {
		t.Errorf("backend url = %q", cfg.Backend.URL)
	}
	if cfg.Backend.TimeoutSecs != 30 {
		t.Errorf("timeout = %d", cfg.Backend.TimeoutSecs)
	}
	if cfg.UI.PanelWidth != 48 || cfg.UI.PanelMinWidth != 30 || cfg.UI.PanelMaxWidth != 120 {
		t.Errorf("panel widths = %d [%d, %d]", cfg.UI.PanelWidth, cfg.UI.PanelMinWidth, cfg.UI.PanelMaxWidth)
	}
	if cfg.UI.DefaultView != "code" {
		t.Errorf("default view = %q", cfg.UI.DefaultView)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != "http://localhost:5051" {
		t.Errorf("backend url = %q, want default", cfg.Backend.URL)
	}
}

func TestLoadFromPathPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[backend]\nurl = \"http://example.com:9000\"\n\n[ui]\npanel_width = 60\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != "http://example.com:9000" {
		t.Errorf("backend url = %q", cfg.Backend.URL)
	}
	if cfg.UI.PanelWidth != 60 {
		t.Errorf("panel width = %d", cfg.UI.PanelWidth)
	}
	// Unspecified fields fall back to defaults.
	if cfg.UI.Theme != "auto" {
		t.Errorf("theme = %q, want default", cfg.UI.Theme)
	}
	if cfg.Export.Format != "markdown" {
		t.Errorf("export format = %q, want default", cfg.Export.Format)
	}
}

func TestLoadFromPathRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[backend\nurl = "), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GENX_BACKEND_URL", "http://10.0.0.5:5051")
	t.Setenv("GENX_THEME", "dark")
	t.Setenv("GENX_PANEL_WIDTH", "72")
	t.Setenv("GENX_EXPORT_FORMAT", "json")

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Backend.URL != "http://10.0.0.5:5051" {
		t.Errorf("backend url = %q", cfg.Backend.URL)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("theme = %q", cfg.UI.Theme)
	}
	if cfg.UI.PanelWidth != 72 {
		t.Errorf("panel width = %d", cfg.UI.PanelWidth)
	}
	if cfg.Export.Format != "json" {
		t.Errorf("export format = %q", cfg.Export.Format)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad url", func(c *Config) { c.Backend.URL = "::not-a-url" }, "backend.url"},
		{"negative timeout", func(c *Config) { c.Backend.TimeoutSecs = -1 }, "backend.timeout_secs"},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"inverted bounds", func(c *Config) { c.UI.PanelMinWidth = 100; c.UI.PanelMaxWidth = 50 }, "ui.panel_min_width"},
		{"bad view", func(c *Config) { c.UI.DefaultView = "split" }, "ui.default_view"},
		{"bad format", func(c *Config) { c.Export.Format = "pdf" }, "export.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestSetDefaultsClampsPanelWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"below min", 5, 30},
		{"above max", 500, 120},
		{"in range", 80, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.UI.PanelWidth = tt.width
			cfg.SetDefaults()
			if cfg.UI.PanelWidth != tt.want {
				t.Errorf("panel width = %d, want %d", cfg.UI.PanelWidth, tt.want)
			}
		})
	}
}

func TestSaveTOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.Backend.URL = "http://backend.internal:5051"
	cfg.UI.Theme = "light"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file mode = %o, want 0600", perm)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Backend.URL != cfg.Backend.URL {
		t.Errorf("backend url = %q, want %q", loaded.Backend.URL, cfg.Backend.URL)
	}
	if loaded.UI.Theme != "light" {
		t.Errorf("theme = %q", loaded.UI.Theme)
	}
}
