package services_test

import (
	"context"
	"testing"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/testutil"
)

func setupPlayerService(t *testing.T) (*services.PlayerService, *repository.Repository) {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewPlayerService(logger.New(), repo), repo
}

func TestCreatePlayer_RequiresName(t *testing.T) {
	playerSvc, repo := setupPlayerService(t)
	ctx := context.Background()

	clubID, err := repo.CreateClub(ctx, "Milan", "")
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}

	if _, err := playerSvc.CreatePlayer(ctx, clubID, "  ", ""); err != services.ErrPlayerNameRequired {
		t.Errorf("expected ErrPlayerNameRequired, got %v", err)
	}
}

func TestListPlayers_KeepsDisplayOrder(t *testing.T) {
	playerSvc, repo := setupPlayerService(t)
	ctx := context.Background()

	clubID, err := repo.CreateClub(ctx, "Milan", "")
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}

	names := []string{"Maldini", "Baresi", "Kaka"}
	ids := make([]int64, len(names))
	for i, name := range names {
		id, err := playerSvc.CreatePlayer(ctx, clubID, name, "")
		if err != nil {
			t.Fatalf("CreatePlayer failed: %v", err)
		}
		ids[i] = id
	}

	players, err := playerSvc.ListPlayers(ctx, clubID)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	for i, name := range names {
		if players[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, players[i].Name)
		}
	}

	// Reverse the order
	reversed := []int64{ids[2], ids[1], ids[0]}
	if err := playerSvc.ReorderPlayers(ctx, clubID, reversed); err != nil {
		t.Fatalf("ReorderPlayers failed: %v", err)
	}

	players, err = playerSvc.ListPlayers(ctx, clubID)
	if err != nil {
		t.Fatalf("ListPlayers failed: %v", err)
	}
	if players[0].Name != "Kaka" || players[2].Name != "Maldini" {
		t.Errorf("expected reversed order, got %v", players)
	}
}

func TestUpdatePlayer_RequiresName(t *testing.T) {
	playerSvc, repo := setupPlayerService(t)
	ctx := context.Background()

	clubID, err := repo.CreateClub(ctx, "Milan", "")
	if err != nil {
		t.Fatalf("CreateClub failed: %v", err)
	}
	id, err := playerSvc.CreatePlayer(ctx, clubID, "Maldini", "")
	if err != nil {
		t.Fatalf("CreatePlayer failed: %v", err)
	}

	if err := playerSvc.UpdatePlayer(ctx, id, "", ""); err != services.ErrPlayerNameRequired {
		t.Errorf("expected ErrPlayerNameRequired, got %v", err)
	}
}
