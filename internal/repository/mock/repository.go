package mock

import (
	"context"

	"github.com/ekazakov/tiersort/internal/models"
	"github.com/ekazakov/tiersort/internal/repository"
)

// Repository wraps a real repository and allows injecting errors for
// testing. This provides a way to test error paths without database
// manipulation.
//
// Usage:
//
//	realRepo := testutil.NewTestRepository(t)
//	mockRepo := mock.NewRepository(realRepo)
//	mockRepo.ListPlayersByClubError = errors.New("database error")
//	svc := services.NewGameService(log, mockRepo, nil, nil)
//	_, err := svc.StartGame(ctx, clubID)
//	// err now contains the injected error
type Repository struct {
	repository.FullRepository

	// ===== Club Errors =====
	ListClubsError  error
	GetClubError    error
	CreateClubError error
	UpdateClubError error
	DeleteClubError error

	// ===== Player Errors =====
	ListPlayersByClubError error
	GetPlayerError         error
	CreatePlayerError      error
	UpdatePlayerError      error
	DeletePlayerError      error
	ReorderPlayersError    error

	// ===== Session Errors =====
	SaveSessionError   error
	GetSessionError    error
	DeleteSessionError error

	// ===== Result Errors =====
	SaveGameResultError     error
	CountResultsByClubError error
	GetCategoryHitsError    error

	// ===== Admin Errors =====
	ListAdminsError  error
	CreateAdminError error
	DeleteAdminError error

	// ===== Settings Errors =====
	GetSettingError error
	SetSettingError error
}

// NewRepository creates a mock repository wrapping a real one
func NewRepository(real repository.FullRepository) *Repository {
	return &Repository{
		FullRepository: real,
	}
}

func (m *Repository) ListClubs(ctx context.Context) ([]models.Club, error) {
	if m.ListClubsError != nil {
		return nil, m.ListClubsError
	}
	return m.FullRepository.ListClubs(ctx)
}

func (m *Repository) GetClub(ctx context.Context, id int64) (*models.Club, error) {
	if m.GetClubError != nil {
		return nil, m.GetClubError
	}
	return m.FullRepository.GetClub(ctx, id)
}

func (m *Repository) CreateClub(ctx context.Context, name, logoURL string) (int64, error) {
	if m.CreateClubError != nil {
		return 0, m.CreateClubError
	}
	return m.FullRepository.CreateClub(ctx, name, logoURL)
}

func (m *Repository) UpdateClub(ctx context.Context, id int64, name, logoURL string) error {
	if m.UpdateClubError != nil {
		return m.UpdateClubError
	}
	return m.FullRepository.UpdateClub(ctx, id, name, logoURL)
}

func (m *Repository) DeleteClub(ctx context.Context, id int64) error {
	if m.DeleteClubError != nil {
		return m.DeleteClubError
	}
	return m.FullRepository.DeleteClub(ctx, id)
}

func (m *Repository) ListPlayersByClub(ctx context.Context, clubID int64) ([]models.Player, error) {
	if m.ListPlayersByClubError != nil {
		return nil, m.ListPlayersByClubError
	}
	return m.FullRepository.ListPlayersByClub(ctx, clubID)
}

func (m *Repository) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	if m.GetPlayerError != nil {
		return nil, m.GetPlayerError
	}
	return m.FullRepository.GetPlayer(ctx, id)
}

func (m *Repository) CreatePlayer(ctx context.Context, clubID int64, name, imageURL string) (int64, error) {
	if m.CreatePlayerError != nil {
		return 0, m.CreatePlayerError
	}
	return m.FullRepository.CreatePlayer(ctx, clubID, name, imageURL)
}

func (m *Repository) UpdatePlayer(ctx context.Context, id int64, name, imageURL string) error {
	if m.UpdatePlayerError != nil {
		return m.UpdatePlayerError
	}
	return m.FullRepository.UpdatePlayer(ctx, id, name, imageURL)
}

func (m *Repository) DeletePlayer(ctx context.Context, id int64) error {
	if m.DeletePlayerError != nil {
		return m.DeletePlayerError
	}
	return m.FullRepository.DeletePlayer(ctx, id)
}

func (m *Repository) ReorderPlayers(ctx context.Context, clubID int64, orderedIDs []int64) error {
	if m.ReorderPlayersError != nil {
		return m.ReorderPlayersError
	}
	return m.FullRepository.ReorderPlayers(ctx, clubID, orderedIDs)
}

func (m *Repository) SaveSession(ctx context.Context, id string, clubID int64, state []byte) error {
	if m.SaveSessionError != nil {
		return m.SaveSessionError
	}
	return m.FullRepository.SaveSession(ctx, id, clubID, state)
}

func (m *Repository) GetSession(ctx context.Context, id string) (int64, []byte, error) {
	if m.GetSessionError != nil {
		return 0, nil, m.GetSessionError
	}
	return m.FullRepository.GetSession(ctx, id)
}

func (m *Repository) DeleteSession(ctx context.Context, id string) error {
	if m.DeleteSessionError != nil {
		return m.DeleteSessionError
	}
	return m.FullRepository.DeleteSession(ctx, id)
}

func (m *Repository) SaveGameResult(ctx context.Context, sessionID string, clubID int64, placement map[string][]int64) (int64, error) {
	if m.SaveGameResultError != nil {
		return 0, m.SaveGameResultError
	}
	return m.FullRepository.SaveGameResult(ctx, sessionID, clubID, placement)
}

func (m *Repository) CountResultsByClub(ctx context.Context, clubID int64) (int, error) {
	if m.CountResultsByClubError != nil {
		return 0, m.CountResultsByClubError
	}
	return m.FullRepository.CountResultsByClub(ctx, clubID)
}

func (m *Repository) GetCategoryHits(ctx context.Context, clubID int64) ([]repository.CategoryHit, error) {
	if m.GetCategoryHitsError != nil {
		return nil, m.GetCategoryHitsError
	}
	return m.FullRepository.GetCategoryHits(ctx, clubID)
}

func (m *Repository) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	if m.ListAdminsError != nil {
		return nil, m.ListAdminsError
	}
	return m.FullRepository.ListAdmins(ctx)
}

func (m *Repository) CreateAdmin(ctx context.Context, telegramID, username, role, addedBy string) (int64, error) {
	if m.CreateAdminError != nil {
		return 0, m.CreateAdminError
	}
	return m.FullRepository.CreateAdmin(ctx, telegramID, username, role, addedBy)
}

func (m *Repository) DeleteAdmin(ctx context.Context, id int64) error {
	if m.DeleteAdminError != nil {
		return m.DeleteAdminError
	}
	return m.FullRepository.DeleteAdmin(ctx, id)
}

func (m *Repository) GetSetting(ctx context.Context, key string) (string, error) {
	if m.GetSettingError != nil {
		return "", m.GetSettingError
	}
	return m.FullRepository.GetSetting(ctx, key)
}

func (m *Repository) SetSetting(ctx context.Context, key, value string) error {
	if m.SetSettingError != nil {
		return m.SetSettingError
	}
	return m.FullRepository.SetSetting(ctx, key, value)
}
