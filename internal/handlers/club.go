package handlers

import (
	"net/http"
)

// handleListClubs returns all clubs with player and game counts
func (h *Handlers) handleListClubs(w http.ResponseWriter, r *http.Request) {
	clubs, err := h.Club.ListClubs(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, clubs)
}

// handleGetClub returns a single club
func (h *Handlers) handleGetClub(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	club, err := h.Club.GetClub(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, club)
}

// handleListPlayers returns a club's players in display order
func (h *Handlers) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	players, err := h.Player.ListPlayers(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, players)
}

// handleClubShareLink returns the Telegram deep link for a club
func (h *Handlers) handleClubShareLink(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	link, err := h.Club.ClubShareLink(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, ShareLinkResponse{Link: link})
}

// handleCreateClub creates a new club
func (h *Handlers) handleCreateClub(w http.ResponseWriter, r *http.Request) {
	var req ClubCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Club.CreateClub(r.Context(), req.Name, req.LogoURL)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

// handleUpdateClub updates a club
func (h *Handlers) handleUpdateClub(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req ClubUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Club.UpdateClub(r.Context(), id, req.Name, req.LogoURL); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Club updated")
}

// handleDeleteClub deletes a club and its players
func (h *Handlers) handleDeleteClub(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Club.DeleteClub(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleClubQR returns a QR code PNG encoding the club's deep link
func (h *Handlers) handleClubQR(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	img, err := h.Club.GenerateClubQR(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(img)
}

// handleCreatePlayer adds a player to a club
func (h *Handlers) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	id, err := h.Player.CreatePlayer(r.Context(), clubID, req.Name, req.ImageURL)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, IDResponse{ID: id})
}

// handleUpdatePlayer updates a player
func (h *Handlers) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req PlayerUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.Player.UpdatePlayer(r.Context(), id, req.Name, req.ImageURL); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Player updated")
}

// handleDeletePlayer deletes a player
func (h *Handlers) handleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Player.DeletePlayer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondDeleted(w)
}

// handleReorderPlayers sets a club's player display order
func (h *Handlers) handleReorderPlayers(w http.ResponseWriter, r *http.Request) {
	clubID, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req PlayerReorderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if len(req.PlayerIDs) == 0 {
		respondError(w, BadRequest("Missing player_ids"))
		return
	}

	if err := h.Player.ReorderPlayers(r.Context(), clubID, req.PlayerIDs); err != nil {
		respondError(w, err)
		return
	}
	respondSuccess(w, "Players reordered")
}
