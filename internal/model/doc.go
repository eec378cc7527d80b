// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and turns.
//
// A Conversation is an ordered list of Turns sharing one backend session
// identifier. A Turn is a single message authored by the user or the model.
//
// # Key Types
//
//   - Conversation: ordered turns plus the backend session identifier
//   - Turn: one message with role, content, and timestamp
//   - Role: turn author enumeration (user, model)
//
// # Usage
//
//	conv := model.NewConversation()
//	conv.AddTurn(model.NewUserTurn("Hello!"))
package model
