package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public Telegram Bot API.
const DefaultBaseURL = "https://api.telegram.org"

// ErrMissingCredentials is returned when the bot token or chat ID is not configured.
var ErrMissingCredentials = errors.New("Missing Telegram credentials")

// Client defines the interface for interacting with the Telegram Bot API
type Client interface {
	SendMessage(ctx context.Context, text string) error
}

// Config holds the bot credentials and target chat.
type Config struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Timeout  time.Duration
}

type clientImpl struct {
	botToken string
	chatID   string
	baseURL  string
	http     *http.Client
}

// NewClient creates a new Telegram client
func NewClient(cfg Config) Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &clientImpl{
		botToken: cfg.BotToken,
		chatID:   cfg.ChatID,
		baseURL:  baseURL,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
}

// SendMessage posts text to the configured chat using HTML parse mode.
func (c *clientImpl) SendMessage(ctx context.Context, text string) error {
	if c.botToken == "" || c.chatID == "" {
		return ErrMissingCredentials
	}

	sendURL := fmt.Sprintf("%s/bot%s/sendMessage", c.baseURL, c.botToken)

	// Create payload
	payload := map[string]interface{}{
		"chat_id":    c.chatID,
		"text":       text,
		"parse_mode": "HTML",
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("error creating payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendURL, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// The URL carries the bot token; keep it out of logs.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return fmt.Errorf("error sending message: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Parse response
	var sendResponse struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		Result      struct {
			MessageID int `json:"message_id"`
		} `json:"result"`
	}

	if err := json.Unmarshal(body, &sendResponse); err != nil {
		return fmt.Errorf("error parsing response: %w", err)
	}

	if !sendResponse.OK {
		return &Error{StatusCode: resp.StatusCode, Body: sendResponse.Description}
	}

	log.Printf("Successfully sent Telegram message ID: %d", sendResponse.Result.MessageID)
	return nil
}

// Error is a non-OK answer from the Telegram API.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("error from Telegram API (status %d): %s", e.StatusCode, e.Body)
}
