package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// conditionalHTTPLogger only logs HTTP requests at debug level
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.GetLevel() <= slog.LevelDebug {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))

	// WebSocket
	if h.Hub != nil {
		r.Get("/ws", h.Hub.ServeWs)
	}

	// Clubs (public: the mini app lists clubs and their players)
	r.Get("/api/clubs", h.handleListClubs)
	r.Get("/api/clubs/{id}", h.handleGetClub)
	r.Get("/api/clubs/{id}/players", h.handleListPlayers)
	r.Get("/api/clubs/{id}/share-link", h.handleClubShareLink)

	// Ratings (public)
	r.Get("/api/ratings/{clubID}", h.handleGetRatings)

	// Game sessions (public)
	r.Post("/api/games", h.handleStartGame)
	r.Get("/api/games/{sessionID}", h.handleGetGame)
	r.Post("/api/games/{sessionID}/place", h.handlePlacePlayer)
	r.Post("/api/games/{sessionID}/replace", h.handleReplacePlayer)
	r.Post("/api/games/{sessionID}/undo", h.handleUndo)
	r.Post("/api/games/{sessionID}/edit-mode", h.handleEnterEditMode)
	r.Delete("/api/games/{sessionID}/edit-mode", h.handleExitEditMode)
	r.Post("/api/games/{sessionID}/selection", h.handleSelectForSwap)
	r.Post("/api/games/{sessionID}/swap", h.handleSwapSelected)
	r.Post("/api/games/{sessionID}/positions", h.handleSaveEdits)
	r.Post("/api/games/{sessionID}/complete", h.handleCompleteGame)
	r.Delete("/api/games/{sessionID}", h.handleAbandonGame)

	// Auth routes (public)
	r.Post("/api/admin/login", h.handleLogin)
	r.Post("/api/admin/logout", h.handleLogout)

	// Admin API (protected)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAuthAPI)

		// Clubs
		r.Post("/api/admin/clubs", h.handleCreateClub)
		r.Put("/api/admin/clubs/{id}", h.handleUpdateClub)
		r.Delete("/api/admin/clubs/{id}", h.handleDeleteClub)
		r.Get("/api/admin/clubs/{id}/qr", h.handleClubQR)

		// Players
		r.Post("/api/admin/clubs/{id}/players", h.handleCreatePlayer)
		r.Put("/api/admin/players/{id}", h.handleUpdatePlayer)
		r.Delete("/api/admin/players/{id}", h.handleDeletePlayer)
		r.Put("/api/admin/clubs/{id}/players/order", h.handleReorderPlayers)

		// Games control
		r.Post("/api/admin/games-control", h.handleSetGamesStatus)

		// Dashboard
		r.Get("/api/admin/stats", h.handleAdminStats)

		// Admin users
		r.Get("/api/admin/admins", h.handleListAdmins)
		r.Post("/api/admin/admins", h.handleCreateAdmin)
		r.Delete("/api/admin/admins/{id}", h.handleDeleteAdmin)

		// Settings
		r.Get("/api/admin/settings", h.handleGetSettings)
		r.Post("/api/admin/settings", h.handleUpdateSettings)
		r.Put("/api/admin/settings", h.handleUpdateSettings)
	})

	return r
}
