package services

import (
	"context"
	"math"
	"sort"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
)

// StatsService computes aggregated ratings from stored game results
type StatsService struct {
	log  logger.Logger
	repo statsRepository
}

type statsRepository interface {
	repository.ClubRepository
	repository.ResultRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(log logger.Logger, repo statsRepository) *StatsService {
	return &StatsService{log: log, repo: repo}
}

// PlayerRating is one player's standing within a category
type PlayerRating struct {
	PlayerID      int64   `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	PlayerAvatar  string  `json:"playerAvatar,omitempty"`
	CategoryName  string  `json:"categoryName"`
	TotalGames    int     `json:"totalGames"`
	CategoryHits  int     `json:"categoryHits"`
	HitPercentage float64 `json:"hitPercentage"`
}

// ClubRatings is the full ratings breakdown for one club
type ClubRatings struct {
	ClubID     int64                     `json:"clubId"`
	ClubName   string                    `json:"clubName"`
	TotalGames int                       `json:"totalGames"`
	Categories map[string][]PlayerRating `json:"categories"`
}

// GetClubRatings aggregates all saved games for a club into per-category
// player rankings, ordered by hit count descending
func (s *StatsService) GetClubRatings(ctx context.Context, clubID int64) (*ClubRatings, error) {
	club, err := s.repo.GetClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	totalGames, err := s.repo.CountResultsByClub(ctx, clubID)
	if err != nil {
		return nil, err
	}

	hits, err := s.repo.GetCategoryHits(ctx, clubID)
	if err != nil {
		return nil, err
	}

	categories := make(map[string][]PlayerRating)
	for _, hit := range hits {
		percentage := 0.0
		if totalGames > 0 {
			percentage = math.Round(float64(hit.Hits)/float64(totalGames)*1000) / 10
		}
		categories[hit.CategoryName] = append(categories[hit.CategoryName], PlayerRating{
			PlayerID:      hit.PlayerID,
			PlayerName:    hit.PlayerName,
			PlayerAvatar:  hit.PlayerImage,
			CategoryName:  hit.CategoryName,
			TotalGames:    totalGames,
			CategoryHits:  hit.Hits,
			HitPercentage: percentage,
		})
	}

	for name := range categories {
		ratings := categories[name]
		sort.SliceStable(ratings, func(i, j int) bool {
			if ratings[i].CategoryHits != ratings[j].CategoryHits {
				return ratings[i].CategoryHits > ratings[j].CategoryHits
			}
			return ratings[i].PlayerName < ratings[j].PlayerName
		})
		categories[name] = ratings
	}

	return &ClubRatings{
		ClubID:     club.ID,
		ClubName:   club.Name,
		TotalGames: totalGames,
		Categories: categories,
	}, nil
}
