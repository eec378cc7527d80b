// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for genx-tui.
//
// Supports TOML configuration with sensible defaults, environment variable
// overrides, validation, and live reload via a filesystem watcher.
//
// Configuration file locations (in order of precedence):
//   - ~/.genx/config.toml
//   - Built-in defaults
package config
