package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/models"
	"github.com/ekazakov/tiersort/internal/repository"
	"github.com/ekazakov/tiersort/pkg/telegram"
)

// ClubService handles club-related business logic
type ClubService struct {
	log      logger.Logger
	repo     clubRepository
	settings SettingsServicer
}

// clubRepository is the slice of the repository the club service needs
type clubRepository interface {
	repository.ClubRepository
	repository.PlayerRepository
	repository.ResultRepository
}

// NewClubService creates a new ClubService
func NewClubService(log logger.Logger, repo clubRepository, settings SettingsServicer) *ClubService {
	return &ClubService{log: log, repo: repo, settings: settings}
}

// ClubSummary is a club together with its player and game counts
type ClubSummary struct {
	models.Club
	PlayerCount int `json:"playerCount"`
	GamesPlayed int `json:"gamesPlayed"`
}

// ListClubs returns all clubs with player and game counts
func (s *ClubService) ListClubs(ctx context.Context) ([]ClubSummary, error) {
	clubs, err := s.repo.ListClubs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ClubSummary, 0, len(clubs))
	for _, club := range clubs {
		players, err := s.repo.ListPlayersByClub(ctx, club.ID)
		if err != nil {
			return nil, err
		}
		games, err := s.repo.CountResultsByClub(ctx, club.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ClubSummary{
			Club:        club,
			PlayerCount: len(players),
			GamesPlayed: games,
		})
	}
	return summaries, nil
}

// GetClub returns a single club by id
func (s *ClubService) GetClub(ctx context.Context, id int64) (*models.Club, error) {
	return s.repo.GetClub(ctx, id)
}

// CreateClub creates a new club
func (s *ClubService) CreateClub(ctx context.Context, name, logoURL string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrClubNameRequired
	}
	return s.repo.CreateClub(ctx, name, logoURL)
}

// UpdateClub updates a club
func (s *ClubService) UpdateClub(ctx context.Context, id int64, name, logoURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrClubNameRequired
	}
	return s.repo.UpdateClub(ctx, id, name, logoURL)
}

// DeleteClub deletes a club and its players
func (s *ClubService) DeleteClub(ctx context.Context, id int64) error {
	return s.repo.DeleteClub(ctx, id)
}

// ClubShareLink builds the Telegram deep link that opens the mini app
// directly on this club
func (s *ClubService) ClubShareLink(ctx context.Context, clubID int64) (string, error) {
	if _, err := s.repo.GetClub(ctx, clubID); err != nil {
		return "", err
	}

	botUsername, err := s.settings.GetBotUsername(ctx)
	if err != nil || botUsername == "" {
		return "", fmt.Errorf("bot_username not configured")
	}
	return telegram.DeepLink(botUsername, clubID), nil
}

// GenerateClubQR generates a QR code PNG image encoding the club's deep link
func (s *ClubService) GenerateClubQR(ctx context.Context, clubID int64) ([]byte, error) {
	link, err := s.ClubShareLink(ctx, clubID)
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(link, qrcode.Medium, 256)
}
