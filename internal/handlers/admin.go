package handlers

import (
	"net/http"

	"github.com/ekazakov/tiersort/internal/services"
)

// handleSetGamesStatus opens or closes new games
func (h *Handlers) handleSetGamesStatus(w http.ResponseWriter, r *http.Request) {
	var req GamesStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Settings.SetGamesOpen(r.Context(), req.Open); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, GamesStatusResponse{Open: req.Open})
}

// handleAdminStats returns dashboard counters
func (h *Handlers) handleAdminStats(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.Club.ListClubs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	active, err := h.Game.ActiveSessions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	totalPlayers := 0
	totalGames := 0
	for _, club := range clubs {
		totalPlayers += club.PlayerCount
		totalGames += club.GamesPlayed
	}

	respondOK(w, AdminStatsResponse{
		Clubs:          len(clubs),
		Players:        totalPlayers,
		GamesPlayed:    totalGames,
		ActiveSessions: active,
	})
}

// handleListAdmins returns all admin users
func (h *Handlers) handleListAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.Admin.ListAdmins(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, admins)
}

// handleCreateAdmin adds an admin user
func (h *Handlers) handleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req AdminCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Admin.AddAdmin(r.Context(), req.TelegramID, req.Username, req.Role, "api")
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

// handleDeleteAdmin removes an admin user
func (h *Handlers) handleDeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Admin.RemoveAdmin(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleGetSettings returns commonly used settings
func (h *Handlers) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.AllSettings(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, settings)
}

// handleUpdateSettings updates multiple settings at once
func (h *Handlers) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	err := h.Settings.UpdateSettings(r.Context(), services.Settings{
		BotUsername: req.BotUsername,
		ShareChatID: req.ShareChatID,
		GamesOpen:   req.GamesOpen,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Settings updated")
}
