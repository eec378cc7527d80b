// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the genx-tui application.
//
// This package contains common helper functions used throughout the
// application for string manipulation and file operations.
//
// # Key Functions
//
//   - TruncateWidth: display-width aware truncation with ellipsis
//   - TruncateRunes: UTF-8 safe string truncation
//   - AtomicWriteFile: crash-safe file writing with fsync
package util
