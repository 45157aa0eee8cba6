package repository

import (
	"context"

	"github.com/ekazakov/tiersort/internal/models"
)

// ClubRepository defines club data operations
type ClubRepository interface {
	ListClubs(ctx context.Context) ([]models.Club, error)
	GetClub(ctx context.Context, id int64) (*models.Club, error)
	CreateClub(ctx context.Context, name, logoURL string) (int64, error)
	UpdateClub(ctx context.Context, id int64, name, logoURL string) error
	DeleteClub(ctx context.Context, id int64) error
}

// PlayerRepository defines player data operations. Players within a club
// carry an explicit display order; ListPlayersByClub returns them in that
// order, which is the order the game queue consumes them in.
type PlayerRepository interface {
	ListPlayersByClub(ctx context.Context, clubID int64) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	CreatePlayer(ctx context.Context, clubID int64, name, imageURL string) (int64, error)
	UpdatePlayer(ctx context.Context, id int64, name, imageURL string) error
	DeletePlayer(ctx context.Context, id int64) error
	ReorderPlayers(ctx context.Context, clubID int64, orderedIDs []int64) error
}

// AdminRepository defines admin-user data operations
type AdminRepository interface {
	ListAdmins(ctx context.Context) ([]models.AdminUser, error)
	GetAdminByTelegramID(ctx context.Context, telegramID string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, telegramID, username, role, addedBy string) (int64, error)
	DeleteAdmin(ctx context.Context, id int64) error
}

// SessionRepository persists game-session snapshots keyed by session id.
// The snapshot blob is opaque to the repository.
type SessionRepository interface {
	SaveSession(ctx context.Context, id string, clubID int64, state []byte) error
	GetSession(ctx context.Context, id string) (clubID int64, state []byte, err error)
	DeleteSession(ctx context.Context, id string) error
	CountSessions(ctx context.Context) (int, error)
}

// CategoryHit is one (player, category) occurrence count across a club's
// stored game results.
type CategoryHit struct {
	PlayerID     int64
	PlayerName   string
	PlayerImage  string
	CategoryName string
	Hits         int
}

// ResultRepository defines finished-game result operations
type ResultRepository interface {
	SaveGameResult(ctx context.Context, sessionID string, clubID int64, placement map[string][]int64) (int64, error)
	CountResultsByClub(ctx context.Context, clubID int64) (int, error)
	GetCategoryHits(ctx context.Context, clubID int64) ([]CategoryHit, error)
	GetGameResult(ctx context.Context, id int64) (*models.GameResult, error)
}

// SettingsRepository defines settings data operations
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
}

// FullRepository combines all repository interfaces.
// Use this when a service needs access to multiple domains.
type FullRepository interface {
	ClubRepository
	PlayerRepository
	AdminRepository
	SessionRepository
	ResultRepository
	SettingsRepository
}

// Ensure Repository implements all interfaces
var _ FullRepository = (*Repository)(nil)
