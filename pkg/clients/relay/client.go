// Package relay talks to a remote notification endpoint that accepts
// {"text": "..."} and answers {"ok": bool, "error": "..."}.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/ragecodemaster/landing/pkg/models"
)

// Client defines the interface for interacting with a notification relay
type Client interface {
	Send(ctx context.Context, text string) error
}

type clientImpl struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a relay client for the given endpoint URL
func NewClient(endpoint string, timeout time.Duration) Client {
	return &clientImpl{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *clientImpl) Send(ctx context.Context, text string) error {
	jsonPayload, err := json.Marshal(models.NotifyRequest{Text: text})
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error calling relay: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	var envelope models.NotifyResponse
	// A non-JSON body still tells us something through the status code.
	_ = json.Unmarshal(body, &envelope)

	if resp.StatusCode != http.StatusOK || !envelope.OK {
		msg := envelope.Error
		if msg == "" {
			msg = string(body)
		}
		return &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	log.Printf("Relay accepted notification (%d bytes)", len(text))
	return nil
}

// Error is a failure reported by the relay.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("relay: %s (status %d)", e.Message, e.StatusCode)
}
