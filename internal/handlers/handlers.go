package handlers

import (
	"log/slog"

	"github.com/ekazakov/tiersort/internal/auth"
	"github.com/ekazakov/tiersort/internal/services"
	"github.com/ekazakov/tiersort/internal/websocket"
)

// Handlers holds all HTTP handler dependencies
type Handlers struct {
	Game     services.GameServicer
	Club     services.ClubServicer
	Player   services.PlayerServicer
	Stats    services.StatsServicer
	Admin    services.AdminServicer
	Settings services.SettingsServicer
	Auth     *auth.Auth
	Hub      *websocket.Hub
	Log      HTTPLogger
}

// HTTPLogger exposes the current log level; HTTP request logging is
// enabled at debug level
type HTTPLogger interface {
	GetLevel() slog.Level
}

// New creates a new Handlers instance with all dependencies
func New(
	game services.GameServicer,
	club services.ClubServicer,
	player services.PlayerServicer,
	stats services.StatsServicer,
	admin services.AdminServicer,
	settings services.SettingsServicer,
	adminAuth *auth.Auth,
	hub *websocket.Hub,
	log HTTPLogger,
) *Handlers {
	return &Handlers{
		Game:     game,
		Club:     club,
		Player:   player,
		Stats:    stats,
		Admin:    admin,
		Settings: settings,
		Auth:     adminAuth,
		Hub:      hub,
		Log:      log,
	}
}

// NoopHTTPLogger is a test logger that keeps HTTP request logging off
type NoopHTTPLogger struct{}

func (NoopHTTPLogger) GetLevel() slog.Level { return slog.LevelInfo }

// NewForTesting creates a Handlers instance with a fixed-password auth
// and no websocket hub
func NewForTesting(
	game services.GameServicer,
	club services.ClubServicer,
	player services.PlayerServicer,
	stats services.StatsServicer,
	admin services.AdminServicer,
	settings services.SettingsServicer,
) *Handlers {
	return &Handlers{
		Game:     game,
		Club:     club,
		Player:   player,
		Stats:    stats,
		Admin:    admin,
		Settings: settings,
		Auth:     auth.New("test-password"),
		Log:      NoopHTTPLogger{},
	}
}
