// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store holds the in-memory application state: the conversation
// list, the active selection, the live streaming buffer, and the artifact
// panel state.
//
// The store performs no I/O. All mutation goes through its methods, which
// are safe for concurrent use; the streaming goroutine appends to the live
// buffer while the presentation layer reads snapshots.
//
// # Invariants
//
//   - every conversation carries exactly one session identifier
//   - the active index always addresses an existing conversation
//   - turns are appended only to the conversation they were created for
package store
