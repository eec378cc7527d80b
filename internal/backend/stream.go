// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the GenX assistant backend.
package backend

import (
	"context"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// STREAM READER
// =============================================================================

// StreamReader decodes a raw streamed text body into ordered chunks.
//
// The wire format has no framing: the body is the reply text itself, and a
// read may end in the middle of a multi-byte UTF-8 sequence. The transform
// reader keeps incomplete sequences pending until the following read, so
// every chunk handed to the callback is valid text and the concatenation of
// all chunks equals the full body.
type StreamReader struct {
	reader io.Reader
	// PERFORMANCE: strings.Builder avoids quadratic allocations
	accumulator strings.Builder
	chunkCount  int
	buf         []byte
}

// NewStreamReader creates a stream reader over a response body.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{
		reader: transform.NewReader(r, unicode.UTF8.NewDecoder()),
		buf:    make([]byte, 4096),
	}
}

// Process reads the stream and calls the callback for each chunk, in arrival
// order. Blocks until the stream is complete, the transport fails, or the
// context is cancelled. Chunks delivered before a failure are not retracted.
func (s *StreamReader) Process(ctx context.Context, callback ChunkCallback) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := s.reader.Read(s.buf)
		if n > 0 {
			chunk := string(s.buf[:n])
			s.accumulator.WriteString(chunk)
			s.chunkCount++
			if callback != nil {
				callback(chunk)
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return &ClientError{Type: ErrTypeConnection, Message: "stream read failed", Cause: err}
		}
	}
}

// GetAccumulated returns all content read so far.
func (s *StreamReader) GetAccumulated() string {
	return s.accumulator.String()
}

// ChunkCount returns the number of chunks delivered.
func (s *StreamReader) ChunkCount() int {
	return s.chunkCount
}
