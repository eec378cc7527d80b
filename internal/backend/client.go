// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package backend provides the HTTP client for the GenX assistant backend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the backend client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable"}
)

// IsUnreachable checks if an error indicates the backend could not be reached.
func IsUnreachable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeConnection
	}
	return errors.Is(err, ErrUnreachable)
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the backend client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://localhost:5051)
	BaseURL string

	// Timeout for non-streaming requests such as /new-chat (default: 30s).
	// Streaming requests never carry a client timeout; the body stays open
	// as long as the backend keeps sending.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://localhost:5051",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the GenX backend.
// It is safe for concurrent use.
//
// Example:
//
//	client := backend.NewClient()
//	session, err := client.NewChat(ctx)
//	if err != nil {
//	    // backend down; conversation keeps its placeholder session
//	}
//	err = client.StreamReply(ctx, session, "hello", func(chunk string) {
//	    // chunks arrive in order
//	})
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new backend client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new backend client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:5051"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// =============================================================================
// SESSION CREATION
// =============================================================================

// newChatResponse is the /new-chat response shape.
type newChatResponse struct {
	SessionID string `json:"session_id"`
}

// NewChat asks the backend for a fresh session and returns its identifier.
func (c *Client) NewChat(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/new-chat", nil)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "new-chat request failed: " + resp.Status,
		}
	}

	var result newChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	if result.SessionID == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "backend returned an empty session id"}
	}

	return result.SessionID, nil
}

// =============================================================================
// STREAMING CHAT
// =============================================================================

// chatRequest is the /chat request shape.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChunkCallback is called for each text chunk received during streaming.
// Callbacks run synchronously in the order chunks arrive.
type ChunkCallback func(chunk string)

// StreamReply submits a user turn for the given session and streams the
// reply, calling the callback for each decoded text chunk. It returns when
// the backend closes the stream or the transport fails. Chunks already
// delivered stand regardless of how the stream ends.
func (c *Client) StreamReply(ctx context.Context, sessionID, text string, callback ChunkCallback) error {
	body, err := json.Marshal(chatRequest{Message: text, SessionID: sessionID})
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	// A dedicated client without timeout: the reply stream is open-ended and
	// only the caller's context may end it early.
	streamClient := &http.Client{}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := streamClient.Do(req)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "backend is unreachable", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "chat request failed: " + resp.Status,
		}
	}

	reader := NewStreamReader(resp.Body)
	return reader.Process(ctx, callback)
}

// Chunk is one element of the channel-based streaming API.
type Chunk struct {
	Text string
	Err  error
	Done bool
}

// StreamReplyChan is like StreamReply but delivers chunks on a channel.
// The channel is closed after a final element with Done set; a transport
// failure is delivered as that final element's Err.
func (c *Client) StreamReplyChan(ctx context.Context, sessionID, text string) <-chan Chunk {
	ch := make(chan Chunk)

	go func() {
		defer close(ch)

		err := c.StreamReply(ctx, sessionID, text, func(chunk string) {
			select {
			case ch <- Chunk{Text: chunk}:
			case <-ctx.Done():
			}
		})

		select {
		case ch <- Chunk{Err: err, Done: true}:
		case <-ctx.Done():
		}
	}()

	return ch
}
