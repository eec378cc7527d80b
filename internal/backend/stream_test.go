// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package backend

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"
)

// chunkedReader yields one predefined byte slice per Read call, simulating
// network reads that split the body at arbitrary byte offsets.
type chunkedReader struct {
	chunks [][]byte
	pos    int
}

func (r *chunkedReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.chunks) {
		return 0, io.EOF
	}
	n := copy(p, r.chunks[r.pos])
	r.pos++
	return n, nil
}

// failingReader returns some data then an error.
type failingReader struct {
	data []byte
	done bool
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if !r.done {
		r.done = true
		return copy(p, r.data), nil
	}
	return 0, r.err
}

func TestProcessDeliversChunksInOrder(t *testing.T) {
	reader := NewStreamReader(strings.NewReader("hello world"))

	var chunks []string
	err := reader.Process(context.Background(), func(chunk string) {
		chunks = append(chunks, chunk)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(chunks, ""); got != "hello world" {
		t.Errorf("concatenation = %q", got)
	}
	if reader.GetAccumulated() != "hello world" {
		t.Errorf("accumulated = %q", reader.GetAccumulated())
	}
	if reader.ChunkCount() != len(chunks) {
		t.Errorf("chunk count = %d, want %d", reader.ChunkCount(), len(chunks))
	}
}

func TestProcessSplitMultiByteSequences(t *testing.T) {
	// Byte-split inside the three-byte encoding of 日 and 本.
	full := []byte("日本語 text")
	src := &chunkedReader{chunks: [][]byte{
		full[:1],
		full[1:4],
		full[4:5],
		full[5:],
	}}

	reader := NewStreamReader(src)
	var chunks []string
	err := reader.Process(context.Background(), func(chunk string) {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %q is not valid UTF-8", chunk)
		}
		if strings.ContainsRune(chunk, utf8.RuneError) {
			t.Errorf("chunk %q contains a replacement rune", chunk)
		}
		chunks = append(chunks, chunk)
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(chunks, ""); got != "日本語 text" {
		t.Errorf("concatenation = %q, want the original text", got)
	}
}

func TestProcessTransportFailureKeepsDeliveredChunks(t *testing.T) {
	cause := errors.New("connection reset")
	reader := NewStreamReader(&failingReader{data: []byte("partial "), err: cause})

	var got string
	err := reader.Process(context.Background(), func(chunk string) {
		got += chunk
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var clientErr *ClientError
	if !errors.As(err, &clientErr) {
		t.Fatalf("error type %T", err)
	}
	if clientErr.Type != ErrTypeConnection {
		t.Errorf("error type = %v, want connection", clientErr.Type)
	}
	// Chunks delivered before the failure stand.
	if got != "partial " {
		t.Errorf("delivered = %q", got)
	}
	if reader.GetAccumulated() != "partial " {
		t.Errorf("accumulated = %q", reader.GetAccumulated())
	}
}

func TestProcessContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := NewStreamReader(strings.NewReader("never read"))
	err := reader.Process(ctx, nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestProcessNilCallback(t *testing.T) {
	reader := NewStreamReader(strings.NewReader("content"))
	if err := reader.Process(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if reader.GetAccumulated() != "content" {
		t.Errorf("accumulated = %q", reader.GetAccumulated())
	}
}
