package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/ekazakov/tiersort/internal/auth"
	"github.com/ekazakov/tiersort/internal/handlers"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/testutil"
	"github.com/ekazakov/tiersort/pkg/telegram"
)

// testSetup creates all the dependencies needed for testing handlers
type testSetup struct {
	repo       *repository.Repository
	handlers   *handlers.Handlers
	router     chi.Router
	settings   *services.SettingsService
	tg         *telegram.MockClient
	authCookie *http.Cookie
}

// newTestSetup creates a new test setup with in-memory repository
func newTestSetup(t *testing.T) *testSetup {
	t.Helper()

	repo := testutil.NewTestRepository(t)
	log := logger.New()

	tg := telegram.NewMockClient()
	settingsService := services.NewSettingsService(log, repo)
	clubService := services.NewClubService(log, repo, settingsService)
	playerService := services.NewPlayerService(log, repo)
	adminService := services.NewAdminService(log, repo)
	statsService := services.NewStatsService(log, repo)
	gameService := services.NewGameService(log, repo, settingsService, tg)

	h := handlers.NewForTesting(
		gameService,
		clubService,
		playerService,
		statsService,
		adminService,
		settingsService,
	)

	// Login to get a session cookie for authenticated requests
	token, _ := h.Auth.Login("test-password")
	authCookie := &http.Cookie{
		Name:  auth.CookieName,
		Value: token,
	}

	return &testSetup{
		repo:       repo,
		handlers:   h,
		router:     h.Router(),
		settings:   settingsService,
		tg:         tg,
		authCookie: authCookie,
	}
}

// authRequest adds the auth cookie to a request
func (ts *testSetup) authRequest(req *http.Request) *http.Request {
	req.AddCookie(ts.authCookie)
	return req
}

// seedClub creates a club with the given players in display order
func (ts *testSetup) seedClub(t *testing.T, name string, playerNames ...string) int64 {
	t.Helper()
	ctx := context.Background()

	clubID, err := ts.repo.CreateClub(ctx, name, "")
	if err != nil {
		t.Fatalf("failed to create club: %v", err)
	}
	for _, playerName := range playerNames {
		if _, err := ts.repo.CreatePlayer(ctx, clubID, playerName, ""); err != nil {
			t.Fatalf("failed to create player %s: %v", playerName, err)
		}
	}
	return clubID
}

func TestNew(t *testing.T) {
	repo := testutil.NewTestRepository(t)
	log := logger.New()

	tg := telegram.NewMockClient()
	settingsService := services.NewSettingsService(log, repo)
	clubService := services.NewClubService(log, repo, settingsService)
	playerService := services.NewPlayerService(log, repo)
	adminService := services.NewAdminService(log, repo)
	statsService := services.NewStatsService(log, repo)
	gameService := services.NewGameService(log, repo, settingsService, tg)
	adminAuth := auth.New("secret")

	h := handlers.New(
		gameService,
		clubService,
		playerService,
		statsService,
		adminService,
		settingsService,
		adminAuth,
		nil,
		log,
	)

	if h == nil {
		t.Fatal("expected handlers to be created")
	}
	if h.Auth != adminAuth {
		t.Error("expected auth to be wired")
	}
	if h.Router() == nil {
		t.Error("expected router to be created")
	}
}

func TestNewForTesting(t *testing.T) {
	setup := newTestSetup(t)

	if setup.handlers.Auth == nil {
		t.Error("expected test auth to be created")
	}
	if setup.handlers.Hub != nil {
		t.Error("expected no websocket hub in test handlers")
	}
	if _, ok := setup.handlers.Auth.Login("test-password"); !ok {
		t.Error("expected test password to be accepted")
	}
}
