package telegram

import (
	"context"
	"sync"
)

// MockClient is a mock Telegram client for testing
type MockClient struct {
	mu       sync.Mutex
	bot      Bot
	getMeErr error
	sendErr  error

	// SentMessages records every SendMessage call in order
	SentMessages []SentMessage
}

// SentMessage is one recorded SendMessage call
type SentMessage struct {
	ChatID string
	Text   string
}

// MockOption configures the mock client
type MockOption func(*MockClient)

// WithBot sets the bot returned by GetMe
func WithBot(bot Bot) MockOption {
	return func(m *MockClient) {
		m.bot = bot
	}
}

// WithGetMeError sets an error to return from GetMe
func WithGetMeError(err error) MockOption {
	return func(m *MockClient) {
		m.getMeErr = err
	}
}

// WithSendError sets an error to return from SendMessage
func WithSendError(err error) MockOption {
	return func(m *MockClient) {
		m.sendErr = err
	}
}

// NewMockClient creates a mock client with the given options
func NewMockClient(opts ...MockOption) *MockClient {
	m := &MockClient{
		bot: Bot{ID: 1, Username: "tiersort_bot", Name: "TierSort"},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetMe returns the configured bot or error
func (m *MockClient) GetMe(ctx context.Context) (*Bot, error) {
	if m.getMeErr != nil {
		return nil, m.getMeErr
	}
	bot := m.bot
	return &bot, nil
}

// SendMessage records the message or returns the configured error
func (m *MockClient) SendMessage(ctx context.Context, chatID string, text string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.mu.Lock()
	m.SentMessages = append(m.SentMessages, SentMessage{ChatID: chatID, Text: text})
	m.mu.Unlock()
	return nil
}

// SetToken is a no-op on the mock
func (m *MockClient) SetToken(token string) {}

// Sent returns a copy of the recorded messages
func (m *MockClient) Sent() []SentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMessage, len(m.SentMessages))
	copy(out, m.SentMessages)
	return out
}
