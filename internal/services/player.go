package services

import (
	"context"
	"strings"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/models"
	"github.com/ekazakov/tiersort/internal/repository"
)

// PlayerService handles player-related business logic
type PlayerService struct {
	log  logger.Logger
	repo repository.PlayerRepository
}

// NewPlayerService creates a new PlayerService
func NewPlayerService(log logger.Logger, repo repository.PlayerRepository) *PlayerService {
	return &PlayerService{log: log, repo: repo}
}

// ListPlayers returns a club's players in display order
func (s *PlayerService) ListPlayers(ctx context.Context, clubID int64) ([]models.Player, error) {
	return s.repo.ListPlayersByClub(ctx, clubID)
}

// GetPlayer returns a single player by id
func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	return s.repo.GetPlayer(ctx, id)
}

// CreatePlayer creates a new player at the end of the club's display order
func (s *PlayerService) CreatePlayer(ctx context.Context, clubID int64, name, imageURL string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, ErrPlayerNameRequired
	}
	return s.repo.CreatePlayer(ctx, clubID, name, imageURL)
}

// UpdatePlayer updates a player
func (s *PlayerService) UpdatePlayer(ctx context.Context, id int64, name, imageURL string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPlayerNameRequired
	}
	return s.repo.UpdatePlayer(ctx, id, name, imageURL)
}

// DeletePlayer deletes a player
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	return s.repo.DeletePlayer(ctx, id)
}

// ReorderPlayers sets a club's player display order. All ids must belong
// to the club.
func (s *PlayerService) ReorderPlayers(ctx context.Context, clubID int64, orderedIDs []int64) error {
	return s.repo.ReorderPlayers(ctx, clubID, orderedIDs)
}
