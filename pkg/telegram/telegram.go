// Package telegram provides a client for the Telegram Bot API, used to
// announce saved game results to a club's chat and to resolve the bot
// identity for Mini App deep links.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ekazakov/tiersort/internal/logger"
)

const defaultAPIBase = "https://api.telegram.org"

// Bot describes the bot account as returned by getMe
type Bot struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"first_name"`
}

// apiResponse is the generic Bot API envelope
type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

// Client defines the interface for Telegram Bot API operations
type Client interface {
	// GetMe returns the bot account the configured token belongs to
	GetMe(ctx context.Context) (*Bot, error)
	// SendMessage posts a text message to a chat
	SendMessage(ctx context.Context, chatID string, text string) error
	// SetToken updates the bot token
	SetToken(token string)
}

// HTTPClient is a real HTTP client for the Telegram Bot API
type HTTPClient struct {
	apiBase    string
	token      string
	httpClient *http.Client
	log        logger.Logger
}

// NewHTTPClient creates a new Bot API client
func NewHTTPClient(token string, log logger.Logger) *HTTPClient {
	return &HTTPClient{
		apiBase: defaultAPIBase,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

// NewHTTPClientWithBase creates a client against a custom API base URL
// (used by tests to point at a local server).
func NewHTTPClientWithBase(apiBase, token string, log logger.Logger) *HTTPClient {
	c := NewHTTPClient(token, log)
	c.apiBase = apiBase
	return c
}

// SetToken updates the bot token
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// doRequest executes a Bot API method call and decodes the result field.
// The Bot API wraps every response in an {ok, description, result}
// envelope; a transport-level 200 with ok=false is still a failure.
func (c *HTTPClient) doRequest(ctx context.Context, method string, payload interface{}, result interface{}) error {
	if c.token == "" {
		return fmt.Errorf("telegram: no bot token configured")
	}

	apiURL := fmt.Sprintf("%s/bot%s/%s", c.apiBase, c.token, method)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("telegram: failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, body)
	if err != nil {
		return fmt.Errorf("telegram: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug("Telegram request", "method", method)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram: failed to read response: %w", err)
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return fmt.Errorf("telegram: failed to parse response: %w", err)
	}
	if !envelope.OK {
		return fmt.Errorf("telegram: %s failed: %s", method, envelope.Description)
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("telegram: failed to parse %s result: %w", method, err)
		}
	}
	return nil
}

// GetMe returns the bot account the configured token belongs to
func (c *HTTPClient) GetMe(ctx context.Context) (*Bot, error) {
	var bot Bot
	if err := c.doRequest(ctx, "getMe", nil, &bot); err != nil {
		return nil, err
	}
	return &bot, nil
}

// SendMessage posts a text message to a chat
func (c *HTTPClient) SendMessage(ctx context.Context, chatID string, text string) error {
	payload := map[string]string{
		"chat_id": chatID,
		"text":    text,
	}
	return c.doRequest(ctx, "sendMessage", payload, nil)
}

// DeepLink builds the Mini App start link for a club
func DeepLink(botUsername string, clubID int64) string {
	return fmt.Sprintf("https://t.me/%s?startapp=club_%d", botUsername, clubID)
}
