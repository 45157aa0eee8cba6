package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ekazakov/tiersort/internal/errors"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/testutil"
)

func setupAdminService(t *testing.T) *services.AdminService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewAdminService(logger.New(), repo)
}

func TestAddAdmin_AndIsAdmin(t *testing.T) {
	adminSvc := setupAdminService(t)
	ctx := context.Background()

	id, err := adminSvc.AddAdmin(ctx, "12345", "ekazakov", "", "system")
	if err != nil {
		t.Fatalf("AddAdmin failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive admin id, got %d", id)
	}

	isAdmin, err := adminSvc.IsAdmin(ctx, "12345")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if !isAdmin {
		t.Error("expected 12345 to be an admin")
	}

	isAdmin, err = adminSvc.IsAdmin(ctx, "99999")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if isAdmin {
		t.Error("expected 99999 not to be an admin")
	}

	admins, err := adminSvc.ListAdmins(ctx)
	if err != nil {
		t.Fatalf("ListAdmins failed: %v", err)
	}
	if len(admins) != 1 {
		t.Fatalf("expected 1 admin, got %d", len(admins))
	}
	if admins[0].Role != "admin" {
		t.Errorf("expected default role admin, got %s", admins[0].Role)
	}
}

func TestAddAdmin_DuplicateTelegramID(t *testing.T) {
	adminSvc := setupAdminService(t)
	ctx := context.Background()

	if _, err := adminSvc.AddAdmin(ctx, "12345", "first", "admin", "system"); err != nil {
		t.Fatalf("AddAdmin failed: %v", err)
	}

	_, err := adminSvc.AddAdmin(ctx, "12345", "second", "admin", "system")
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != errors.ErrConflict {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestAddAdmin_RequiresTelegramID(t *testing.T) {
	adminSvc := setupAdminService(t)

	_, err := adminSvc.AddAdmin(context.Background(), "  ", "user", "admin", "system")
	var appErr *errors.Error
	if !stderrors.As(err, &appErr) || appErr.Kind != errors.ErrValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRemoveAdmin(t *testing.T) {
	adminSvc := setupAdminService(t)
	ctx := context.Background()

	id, err := adminSvc.AddAdmin(ctx, "12345", "ekazakov", "admin", "system")
	if err != nil {
		t.Fatalf("AddAdmin failed: %v", err)
	}

	if err := adminSvc.RemoveAdmin(ctx, id); err != nil {
		t.Fatalf("RemoveAdmin failed: %v", err)
	}

	isAdmin, err := adminSvc.IsAdmin(ctx, "12345")
	if err != nil {
		t.Fatalf("IsAdmin failed: %v", err)
	}
	if isAdmin {
		t.Error("expected admin removed")
	}
}
