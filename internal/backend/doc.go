// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the GenX assistant backend.
//
// The backend exposes two endpoints:
//
//   - POST /new-chat with an empty body returns {"session_id": "..."},
//     issuing a fresh server-side session.
//   - POST /chat with {"message": m, "session_id": s} streams the reply as
//     raw text chunks; end of stream is the transport closing the body.
//
// StreamReply surfaces chunks in arrival order through a stateful UTF-8
// decoder, so a multi-byte character split across reads still decodes
// correctly. The client performs no retries, imposes no timeout on the
// streaming body, and never retracts chunks already delivered; a transport
// failure terminates the sequence with an error and the caller decides what
// to show.
package backend
