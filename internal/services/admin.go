package services

import (
	"context"
	"strings"

	"github.com/ekazakov/tiersort/internal/errors"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/models"
	"github.com/ekazakov/tiersort/internal/repository"
)

// AdminService handles admin-user management
type AdminService struct {
	log  logger.Logger
	repo repository.AdminRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(log logger.Logger, repo repository.AdminRepository) *AdminService {
	return &AdminService{log: log, repo: repo}
}

// ListAdmins returns all admin users
func (s *AdminService) ListAdmins(ctx context.Context) ([]models.AdminUser, error) {
	return s.repo.ListAdmins(ctx)
}

// IsAdmin reports whether the given Telegram id belongs to an admin
func (s *AdminService) IsAdmin(ctx context.Context, telegramID string) (bool, error) {
	_, err := s.repo.GetAdminByTelegramID(ctx, telegramID)
	if err == repository.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// AddAdmin creates a new admin user. Telegram ids are unique; adding an
// existing one is a conflict.
func (s *AdminService) AddAdmin(ctx context.Context, telegramID, username, role, addedBy string) (int64, error) {
	telegramID = strings.TrimSpace(telegramID)
	if telegramID == "" {
		return 0, errors.Validation("telegram id is required")
	}
	if role == "" {
		role = "admin"
	}

	if _, err := s.repo.GetAdminByTelegramID(ctx, telegramID); err == nil {
		return 0, errors.Conflictf("admin with telegram id %s already exists", telegramID)
	} else if err != repository.ErrNotFound {
		return 0, err
	}

	return s.repo.CreateAdmin(ctx, telegramID, username, role, addedBy)
}

// RemoveAdmin deletes an admin user
func (s *AdminService) RemoveAdmin(ctx context.Context, id int64) error {
	return s.repo.DeleteAdmin(ctx, id)
}
