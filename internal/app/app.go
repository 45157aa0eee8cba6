package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ekazakov/tiersort/internal/auth"
	"github.com/ekazakov/tiersort/internal/handlers"
	"github.com/ekazakov/tiersort/internal/logger"
	"github.com/ekazakov/tiersort/internal/repository"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/websocket"
	"github.com/ekazakov/tiersort/pkg/telegram"
)

// App holds all application dependencies
type App struct {
	log      logger.Logger
	handlers *handlers.Handlers
	repo     *repository.Repository
	settings *services.SettingsService
	telegram telegram.Client
}

// New creates and initializes a new application instance
func New(log logger.Logger, dbPath string, tg telegram.Client, adminAuth *auth.Auth) (*App, error) {
	repo, err := repository.New(dbPath)
	if err != nil {
		return nil, err
	}

	// Initialize services
	settingsService := services.NewSettingsService(log, repo)
	clubService := services.NewClubService(log, repo, settingsService)
	playerService := services.NewPlayerService(log, repo)
	adminService := services.NewAdminService(log, repo)
	statsService := services.NewStatsService(log, repo)
	gameService := services.NewGameService(log, repo, settingsService, tg)

	// Initialize WebSocket hub with DI
	hub := websocket.New(log, settingsService)
	hub.Start()
	settingsService.SetBroadcaster(hub)
	gameService.SetBroadcaster(hub)

	h := handlers.New(
		gameService,
		clubService,
		playerService,
		statsService,
		adminService,
		settingsService,
		adminAuth,
		hub,
		log,
	)

	return &App{
		log:      log,
		handlers: h,
		repo:     repo,
		settings: settingsService,
		telegram: tg,
	}, nil
}

// Router returns the configured HTTP router
func (a *App) Router() chi.Router {
	return a.handlers.Router()
}

// Close releases app resources
func (a *App) Close() error {
	return a.repo.Close()
}

// Run starts the HTTP server
func (a *App) Run(addr string) error {
	a.setDefaultBotUsername()

	a.log.Info("Server starting", "addr", addr)
	return http.ListenAndServe(addr, a.Router())
}

// setDefaultBotUsername fills in the bot_username setting from getMe when
// it hasn't been configured yet. Share links and QR codes need it.
func (a *App) setDefaultBotUsername() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	existing, err := a.settings.GetBotUsername(ctx)
	if err != nil || existing != "" {
		return
	}

	bot, err := a.telegram.GetMe(ctx)
	if err != nil {
		a.log.Warn("Failed to resolve bot account", "error", err)
		return
	}
	if bot.Username == "" {
		return
	}

	if err := a.settings.SetBotUsername(ctx, bot.Username); err != nil {
		a.log.Warn("Failed to set default bot_username", "error", err)
		return
	}
	a.log.Info("Default bot username set", "username", bot.Username)
}
