package services_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository/mock"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/testutil"
)

func setupSettingsService(t *testing.T) *services.SettingsService {
	t.Helper()
	repo := testutil.NewTestRepository(t)
	return services.NewSettingsService(logger.New(), repo)
}

func TestAreGamesOpen_DefaultsOpen(t *testing.T) {
	svc := setupSettingsService(t)

	open, err := svc.AreGamesOpen(context.Background())
	if err != nil {
		t.Fatalf("AreGamesOpen failed: %v", err)
	}
	if !open {
		t.Error("expected games open by default")
	}
}

func TestSetGamesOpen_RoundTripAndBroadcast(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	broadcaster := &recordingBroadcaster{}
	svc.SetBroadcaster(broadcaster)

	if err := svc.SetGamesOpen(ctx, false); err != nil {
		t.Fatalf("SetGamesOpen failed: %v", err)
	}

	open, err := svc.AreGamesOpen(ctx)
	if err != nil {
		t.Fatalf("AreGamesOpen failed: %v", err)
	}
	if open {
		t.Error("expected games closed")
	}

	events := broadcaster.Events()
	if len(events) != 1 || events[0] != "games_status:false" {
		t.Errorf("expected closed-status broadcast, got %v", events)
	}
}

func TestBotUsername_RoundTrip(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	username, err := svc.GetBotUsername(ctx)
	if err != nil {
		t.Fatalf("GetBotUsername failed: %v", err)
	}
	if username != "" {
		t.Errorf("expected empty default, got %q", username)
	}

	if err := svc.SetBotUsername(ctx, "tiersort_bot"); err != nil {
		t.Fatalf("SetBotUsername failed: %v", err)
	}

	username, err = svc.GetBotUsername(ctx)
	if err != nil {
		t.Fatalf("GetBotUsername failed: %v", err)
	}
	if username != "tiersort_bot" {
		t.Errorf("expected tiersort_bot, got %q", username)
	}
}

func TestUpdateSettings_AppliesAllFields(t *testing.T) {
	svc := setupSettingsService(t)
	ctx := context.Background()

	open := false
	err := svc.UpdateSettings(ctx, services.Settings{
		BotUsername: "tiersort_bot",
		ShareChatID: "-100456",
		GamesOpen:   &open,
	})
	if err != nil {
		t.Fatalf("UpdateSettings failed: %v", err)
	}

	all, err := svc.AllSettings(ctx)
	if err != nil {
		t.Fatalf("AllSettings failed: %v", err)
	}
	if all["bot_username"] != "tiersort_bot" {
		t.Errorf("expected bot_username set, got %v", all["bot_username"])
	}
	if all["share_chat_id"] != "-100456" {
		t.Errorf("expected share_chat_id set, got %v", all["share_chat_id"])
	}
	if all["games_open"] != false {
		t.Errorf("expected games_open false, got %v", all["games_open"])
	}
}

func TestAreGamesOpen_RepositoryErrorPropagates(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	mockRepo := mock.NewRepository(repo)
	mockRepo.GetSettingError = stderrors.New("database locked")

	svc := services.NewSettingsService(logger.New(), mockRepo)

	_, err := svc.AreGamesOpen(context.Background())
	if err == nil || err.Error() != "database locked" {
		t.Errorf("expected injected error, got %v", err)
	}
}
