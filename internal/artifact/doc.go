// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package artifact extracts fenced code blocks from reply text and
// classifies their language for display.
//
// Extract returns the first complete triple-backtick block; unterminated
// fences never match. Classify applies an ordered rule list where the first
// matching rule wins; the rule order is part of the contract and changing it
// changes classifications.
package artifact
