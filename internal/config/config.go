// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete genx-tui configuration.
type Config struct {
	// Backend configuration
	Backend BackendConfig `toml:"backend"`

	// UI configuration
	UI UIConfig `toml:"ui"`

	// Export configuration
	Export ExportConfig `toml:"export"`
}

// BackendConfig contains backend connection configuration.
type BackendConfig struct {
	// URL is the base URL of the GenX backend
	URL string `toml:"url"`
	// TimeoutSecs is the request timeout for non-streaming calls in seconds.
	// Streaming replies are never subject to this timeout.
	TimeoutSecs int `toml:"timeout_secs"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// PanelWidth is the initial artifact panel width in terminal columns
	PanelWidth int `toml:"panel_width"`
	// PanelMinWidth is the lower clamp bound for the artifact panel
	PanelMinWidth int `toml:"panel_min_width"`
	// PanelMaxWidth is the upper clamp bound for the artifact panel
	PanelMaxWidth int `toml:"panel_max_width"`
	// DefaultView is the initial artifact panel view: "code" or "preview"
	DefaultView string `toml:"default_view"`
}

// ExportConfig contains transcript export configuration.
type ExportConfig struct {
	// Dir is the directory exports are written to (empty = ~/.genx/exports)
	Dir string `toml:"dir"`
	// Format is the default export format: "markdown" or "json"
	Format string `toml:"format"`
}

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			URL:         "http://localhost:5051",
			TimeoutSecs: 30,
		},
		UI: UIConfig{
			Theme:         "auto",
			PanelWidth:    48,
			PanelMinWidth: 30,
			PanelMaxWidth: 120,
			DefaultView:   "code",
		},
		Export: ExportConfig{
			Dir:    "",
			Format: "markdown",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the genx configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".genx"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// ExportDir returns the resolved export directory for the config.
func (c *Config) ExportDir() (string, error) {
	if c.Export.Dir != "" {
		return c.Export.Dir, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exports"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to defaults
// when no file exists. Environment overrides are applied last, then the
// result is validated.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		return cfg, cfg.Validate()
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific TOML file path.
// A missing file is not an error; defaults are used.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# genx-tui configuration file")
	fmt.Fprintln(file, "# Generated by genx-tui - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if c.Backend.URL != "" {
		u, err := url.Parse(c.Backend.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, ValidationError{
				Field:   "backend.url",
				Message: fmt.Sprintf("invalid URL '%s'", c.Backend.URL),
			})
		}
	}

	if c.Backend.TimeoutSecs < 0 {
		errs = append(errs, ValidationError{
			Field:   "backend.timeout_secs",
			Message: "must be non-negative",
		})
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		})
	}

	if c.UI.PanelMinWidth <= 0 || c.UI.PanelMaxWidth < c.UI.PanelMinWidth {
		errs = append(errs, ValidationError{
			Field:   "ui.panel_min_width",
			Message: fmt.Sprintf("bounds [%d, %d] are not a valid range", c.UI.PanelMinWidth, c.UI.PanelMaxWidth),
		})
	}

	validViews := map[string]bool{"code": true, "preview": true}
	if !validViews[strings.ToLower(c.UI.DefaultView)] {
		errs = append(errs, ValidationError{
			Field:   "ui.default_view",
			Message: fmt.Sprintf("invalid view '%s', must be one of: code, preview", c.UI.DefaultView),
		})
	}

	validFormats := map[string]bool{"markdown": true, "json": true}
	if !validFormats[strings.ToLower(c.Export.Format)] {
		errs = append(errs, ValidationError{
			Field:   "export.format",
			Message: fmt.Sprintf("invalid format '%s', must be one of: markdown, json", c.Export.Format),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults sets default values for any missing or zero-value fields.
// Out-of-range panel widths are clamped into bounds rather than rejected.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Backend.URL == "" {
		c.Backend.URL = defaults.Backend.URL
	}
	if c.Backend.TimeoutSecs == 0 {
		c.Backend.TimeoutSecs = defaults.Backend.TimeoutSecs
	}

	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.UI.PanelMinWidth == 0 {
		c.UI.PanelMinWidth = defaults.UI.PanelMinWidth
	}
	if c.UI.PanelMaxWidth == 0 {
		c.UI.PanelMaxWidth = defaults.UI.PanelMaxWidth
	}
	if c.UI.PanelWidth == 0 {
		c.UI.PanelWidth = defaults.UI.PanelWidth
	}
	if c.UI.PanelWidth < c.UI.PanelMinWidth {
		c.UI.PanelWidth = c.UI.PanelMinWidth
	}
	if c.UI.PanelMaxWidth >= c.UI.PanelMinWidth && c.UI.PanelWidth > c.UI.PanelMaxWidth {
		c.UI.PanelWidth = c.UI.PanelMaxWidth
	}
	if c.UI.DefaultView == "" {
		c.UI.DefaultView = defaults.UI.DefaultView
	}

	if c.Export.Format == "" {
		c.Export.Format = defaults.Export.Format
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - GENX_BACKEND_URL: overrides backend.url
//   - GENX_THEME: overrides ui.theme
//   - GENX_PANEL_WIDTH: overrides ui.panel_width
//   - GENX_EXPORT_DIR: overrides export.dir
//   - GENX_EXPORT_FORMAT: overrides export.format
func (c *Config) ApplyEnvOverrides() {
	if backendURL := os.Getenv("GENX_BACKEND_URL"); backendURL != "" {
		c.Backend.URL = backendURL
	}

	if theme := os.Getenv("GENX_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	if width := os.Getenv("GENX_PANEL_WIDTH"); width != "" {
		if n, err := strconv.Atoi(width); err == nil {
			c.UI.PanelWidth = n
		}
	}

	if dir := os.Getenv("GENX_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}

	if format := os.Getenv("GENX_EXPORT_FORMAT"); format != "" {
		c.Export.Format = format
	}
}
