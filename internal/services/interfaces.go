package services

import (
	"context"

	"github.com/ekazakov/tiersort/internal/models"
)

// ClubServicer defines the interface for club operations
type ClubServicer interface {
	ListClubs(ctx context.Context) ([]ClubSummary, error)
	GetClub(ctx context.Context, id int64) (*models.Club, error)
	CreateClub(ctx context.Context, name, logoURL string) (int64, error)
	UpdateClub(ctx context.Context, id int64, name, logoURL string) error
	DeleteClub(ctx context.Context, id int64) error
	ClubShareLink(ctx context.Context, clubID int64) (string, error)
	GenerateClubQR(ctx context.Context, clubID int64) ([]byte, error)
}

// PlayerServicer defines the interface for player operations
type PlayerServicer interface {
	ListPlayers(ctx context.Context, clubID int64) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	CreatePlayer(ctx context.Context, clubID int64, name, imageURL string) (int64, error)
	UpdatePlayer(ctx context.Context, id int64, name, imageURL string) error
	DeletePlayer(ctx context.Context, id int64) error
	ReorderPlayers(ctx context.Context, clubID int64, orderedIDs []int64) error
}

// GameServicer defines the interface for game session operations
type GameServicer interface {
	StartGame(ctx context.Context, clubID int64) (*GameState, error)
	GetState(ctx context.Context, sessionID string) (*GameState, error)
	PlacePlayer(ctx context.Context, sessionID, categoryName string) (*MoveOutcome, error)
	ReplacePlayer(ctx context.Context, sessionID, categoryName string, playerID int64) (*MoveOutcome, error)
	Undo(ctx context.Context, sessionID string) (*GameState, bool, error)
	EnterEditMode(ctx context.Context, sessionID string) (*GameState, error)
	ExitEditMode(ctx context.Context, sessionID string) (*GameState, error)
	SelectForSwap(ctx context.Context, sessionID string, playerID int64, categoryName string) (*GameState, error)
	SwapSelected(ctx context.Context, sessionID string) (*GameState, bool, error)
	SaveEdits(ctx context.Context, sessionID string) (*GameState, error)
	Complete(ctx context.Context, sessionID string) (int64, error)
	Abandon(ctx context.Context, sessionID string) error
	ActiveSessions(ctx context.Context) (int, error)
	SetBroadcaster(b Broadcaster)
}

// StatsServicer defines the interface for ratings operations
type StatsServicer interface {
	GetClubRatings(ctx context.Context, clubID int64) (*ClubRatings, error)
}

// AdminServicer defines the interface for admin-user operations
type AdminServicer interface {
	ListAdmins(ctx context.Context) ([]models.AdminUser, error)
	IsAdmin(ctx context.Context, telegramID string) (bool, error)
	AddAdmin(ctx context.Context, telegramID, username, role, addedBy string) (int64, error)
	RemoveAdmin(ctx context.Context, id int64) error
}

// SettingsServicer defines the interface for settings operations
type SettingsServicer interface {
	AreGamesOpen(ctx context.Context) (bool, error)
	SetGamesOpen(ctx context.Context, open bool) error
	GetBotUsername(ctx context.Context) (string, error)
	SetBotUsername(ctx context.Context, username string) error
	GetShareChatID(ctx context.Context) (string, error)
	SetShareChatID(ctx context.Context, chatID string) error
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	AllSettings(ctx context.Context) (map[string]interface{}, error)
	UpdateSettings(ctx context.Context, settings Settings) error
	SetBroadcaster(b Broadcaster)
}

// Ensure concrete types implement interfaces
var (
	_ ClubServicer     = (*ClubService)(nil)
	_ PlayerServicer   = (*PlayerService)(nil)
	_ GameServicer     = (*GameService)(nil)
	_ StatsServicer    = (*StatsService)(nil)
	_ AdminServicer    = (*AdminService)(nil)
	_ SettingsServicer = (*SettingsService)(nil)
)
