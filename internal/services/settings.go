package services

import (
	"context"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
)

// Broadcaster defines the interface for broadcasting messages to clients
type Broadcaster interface {
	BroadcastGamesStatus(open bool)
	BroadcastGameEvent(event string, payload interface{})
}

// SettingsService handles settings-related business logic
type SettingsService struct {
	log         logger.Logger
	repo        repository.SettingsRepository
	broadcaster Broadcaster
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(log logger.Logger, repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{log: log, repo: repo}
}

// SetBroadcaster sets the broadcaster for sending updates to clients
func (s *SettingsService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// AreGamesOpen checks if new games can currently be started
func (s *SettingsService) AreGamesOpen(ctx context.Context) (bool, error) {
	value, err := s.repo.GetSetting(ctx, "games_open")
	if err != nil {
		if err == repository.ErrNotFound {
			return true, nil // Default to open if setting doesn't exist
		}
		return false, err // Propagate database errors
	}
	return value == "true", nil
}

// SetGamesOpen sets whether new games can be started
func (s *SettingsService) SetGamesOpen(ctx context.Context, open bool) error {
	value := "false"
	if open {
		value = "true"
	}
	if err := s.repo.SetSetting(ctx, "games_open", value); err != nil {
		return err
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastGamesStatus(open)
	}
	return nil
}

// GetBotUsername returns the configured Telegram bot username
func (s *SettingsService) GetBotUsername(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "bot_username")
	if err != nil {
		if err == repository.ErrNotFound {
			return "", nil // No default - setting not yet configured
		}
		return "", err // Propagate database errors
	}
	return value, nil
}

// SetBotUsername saves the Telegram bot username
func (s *SettingsService) SetBotUsername(ctx context.Context, username string) error {
	return s.repo.SetSetting(ctx, "bot_username", username)
}

// GetShareChatID returns the chat used for game completion notifications
func (s *SettingsService) GetShareChatID(ctx context.Context) (string, error) {
	value, err := s.repo.GetSetting(ctx, "share_chat_id")
	if err != nil {
		if err == repository.ErrNotFound {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// SetShareChatID saves the chat used for game completion notifications
func (s *SettingsService) SetShareChatID(ctx context.Context, chatID string) error {
	return s.repo.SetSetting(ctx, "share_chat_id", chatID)
}

// GetSetting retrieves an arbitrary setting
func (s *SettingsService) GetSetting(ctx context.Context, key string) (string, error) {
	return s.repo.GetSetting(ctx, key)
}

// SetSetting saves an arbitrary setting
func (s *SettingsService) SetSetting(ctx context.Context, key, value string) error {
	return s.repo.SetSetting(ctx, key, value)
}

// AllSettings returns commonly used settings as a map
func (s *SettingsService) AllSettings(ctx context.Context) (map[string]interface{}, error) {
	settings := make(map[string]interface{})

	gamesOpen, _ := s.AreGamesOpen(ctx)
	settings["games_open"] = gamesOpen

	botUsername, _ := s.GetBotUsername(ctx)
	settings["bot_username"] = botUsername

	shareChatID, _ := s.GetShareChatID(ctx)
	settings["share_chat_id"] = shareChatID

	return settings, nil
}

// Settings represents application settings for update operations
type Settings struct {
	BotUsername string
	ShareChatID string
	GamesOpen   *bool
}

// UpdateSettings updates multiple settings at once
func (s *SettingsService) UpdateSettings(ctx context.Context, settings Settings) error {
	if settings.BotUsername != "" {
		if err := s.SetBotUsername(ctx, settings.BotUsername); err != nil {
			return err
		}
	}
	if settings.ShareChatID != "" {
		if err := s.SetShareChatID(ctx, settings.ShareChatID); err != nil {
			return err
		}
	}
	if settings.GamesOpen != nil {
		if err := s.SetGamesOpen(ctx, *settings.GamesOpen); err != nil {
			return err
		}
	}
	return nil
}
