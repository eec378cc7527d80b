// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// The chat view is a Bubble Tea model composed of a scrolling transcript
// viewport, a single-line input, a collapsible conversation rail on the
// left, and a collapsible artifact panel on the right. Streaming progress
// arrives as messages forwarded from the controller's notifier; the view
// renders the live buffer in place until the turn commits.
package chat
